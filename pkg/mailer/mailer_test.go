package mailer

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestEnabled(t *testing.T) {
	cases := []struct {
		name     string
		username string
		password string
		want     bool
	}{
		{"both set", "bot@hs21digital.com", "secret", true},
		{"no password", "bot@hs21digital.com", "", false},
		{"no username", "", "secret", false},
		{"neither", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := New(Config{Username: tc.username, Password: tc.password})
			if m.Enabled() != tc.want {
				t.Errorf("Enabled() = %v, want %v", m.Enabled(), tc.want)
			}
		})
	}
}

// A disabled mailer swallows sends instead of erroring so the submission
// flow does not depend on SMTP credentials being configured.
func TestSend_DisabledIsNoOp(t *testing.T) {
	m := New(Config{})
	n := SubmissionNotice{Name: "Asha", Email: "asha@example.com", Message: "hello there"}

	if err := m.SendAlert(context.Background(), n); err != nil {
		t.Errorf("SendAlert on disabled mailer: %v", err)
	}
	if err := m.SendConfirmation(context.Background(), n); err != nil {
		t.Errorf("SendConfirmation on disabled mailer: %v", err)
	}
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage(
		"HS21 Digital <bot@hs21digital.com>", "ops@hs21digital.com",
		"New Contact Form Submission from Asha",
		"<p>hi</p>", "hi",
	))

	for _, want := range []string{
		"From: HS21 Digital <bot@hs21digital.com>\r\n",
		"To: ops@hs21digital.com\r\n",
		"Subject: New Contact Form Submission from Asha\r\n",
		"MIME-Version: 1.0\r\n",
		"Content-Type: multipart/alternative",
		"Content-Type: text/plain; charset=UTF-8",
		"Content-Type: text/html; charset=UTF-8",
		"--" + boundary + "--\r\n",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildMessage_TextOnly(t *testing.T) {
	msg := string(buildMessage("a@b.c", "d@e.f", "subject", "", "plain body"))

	if strings.Contains(msg, "text/html") {
		t.Error("expected no HTML part when htmlBody is empty")
	}
	if !strings.Contains(msg, "plain body") {
		t.Error("expected the plain text body")
	}
}

func TestEmailBodiesCarrySubmission(t *testing.T) {
	n := SubmissionNotice{
		ID:          "sub-42",
		Name:        "Asha",
		Email:       "asha@example.com",
		Message:     "I need a new website",
		IPAddress:   "203.0.113.9",
		SubmittedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	alert := alertHTML(n) + alertText(n)
	for _, want := range []string{"Asha", "asha@example.com", "I need a new website", "sub-42", "203.0.113.9"} {
		if !strings.Contains(alert, want) {
			t.Errorf("alert missing %q", want)
		}
	}

	confirmation := confirmationHTML(n) + confirmationText(n)
	for _, want := range []string{"Asha", "I need a new website", "2025"} {
		if !strings.Contains(confirmation, want) {
			t.Errorf("confirmation missing %q", want)
		}
	}
	if strings.Contains(confirmation, "203.0.113.9") {
		t.Error("confirmation must not leak the submitter IP back in the body")
	}
}
