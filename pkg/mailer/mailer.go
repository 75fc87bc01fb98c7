// Package mailer sends the contact-form notification emails over SMTP.
// When no credentials are configured the mailer is disabled and every send
// is a silent no-op; the rest of the backend degrades gracefully.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
)

// Config carries the SMTP account and addressing settings.
type Config struct {
	SMTPHost string
	SMTPPort int
	Username string
	Password string
	// FromName is the display name on outgoing mail, e.g. "HS21 Digital".
	FromName string
	// NotifyTo is the operator address that receives the internal alert.
	NotifyTo string
}

// SubmissionNotice is the submission data echoed into both emails.
type SubmissionNotice struct {
	ID          string
	Name        string
	Email       string
	Message     string
	IPAddress   string
	SubmittedAt time.Time
}

// Mailer delivers contact-form notifications.
type Mailer struct {
	cfg Config
}

// New creates a Mailer. Missing credentials leave it disabled rather than
// erroring; callers check Enabled.
func New(cfg Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// Enabled reports whether a delivery channel is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Username != "" && m.cfg.Password != ""
}

// SendAlert delivers the internal notification to the operator address.
func (m *Mailer) SendAlert(ctx context.Context, n SubmissionNotice) error {
	subject := fmt.Sprintf("New Contact Form Submission from %s", n.Name)
	return m.send(ctx, m.cfg.NotifyTo, subject, alertHTML(n), alertText(n))
}

// SendConfirmation delivers the acknowledgement to the submitter.
func (m *Mailer) SendConfirmation(ctx context.Context, n SubmissionNotice) error {
	subject := "We've received your message!"
	return m.send(ctx, n.Email, subject, confirmationHTML(n), confirmationText(n))
}

// send builds a multipart/alternative message (plain text plus HTML) and
// delivers it. The context bounds the whole delivery; a timed-out send is
// indistinguishable from any other delivery failure.
func (m *Mailer) send(ctx context.Context, to, subject, htmlBody, textBody string) error {
	if !m.Enabled() {
		return nil
	}

	from := m.cfg.Username
	if m.cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", m.cfg.FromName, m.cfg.Username)
	}
	msg := buildMessage(from, to, subject, htmlBody, textBody)

	addr := fmt.Sprintf("%s:%d", m.cfg.SMTPHost, m.cfg.SMTPPort)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.SMTPHost)

	// smtp.SendMail has no context support; run it in a goroutine and bail
	// out when the context expires. The abandoned attempt finishes (or
	// fails) on its own without anyone waiting on it.
	done := make(chan error, 1)
	go func() {
		done <- smtp.SendMail(addr, auth, m.cfg.Username, []string{to}, msg)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("send email to %s: %w", to, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("send email to %s: %w", to, ctx.Err())
	}
}

const boundary = "----=_Part_hs21_0001"

// buildMessage assembles a multipart/alternative MIME message.
func buildMessage(from, to, subject, htmlBody, textBody string) []byte {
	msg := fmt.Sprintf("From: %s\r\n", from) +
		fmt.Sprintf("To: %s\r\n", to) +
		fmt.Sprintf("Subject: %s\r\n", subject) +
		"MIME-Version: 1.0\r\n" +
		fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n", boundary) +
		"\r\n" +
		fmt.Sprintf("--%s\r\n", boundary) +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		textBody + "\r\n"

	if htmlBody != "" {
		msg += fmt.Sprintf("--%s\r\n", boundary) +
			"Content-Type: text/html; charset=UTF-8\r\n" +
			"\r\n" +
			htmlBody + "\r\n"
	}

	msg += fmt.Sprintf("--%s--\r\n", boundary)
	return []byte(msg)
}

func alertHTML(n SubmissionNotice) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
    <h2 style="color: #6366f1;">New Contact Form Submission</h2>
    <div style="background: #f5f5f5; padding: 20px; border-radius: 10px; margin: 20px 0;">
        <p><strong>From:</strong> %s</p>
        <p><strong>Email:</strong> <a href="mailto:%s">%s</a></p>
        <p><strong>Message:</strong></p>
        <p style="background: white; padding: 15px; border-left: 4px solid #6366f1;">%s</p>
    </div>
    <hr style="border: none; border-top: 1px solid #ddd; margin: 20px 0;">
    <p style="color: #666; font-size: 12px;">
        Submission ID: %s<br>
        Submitted at: %s<br>
        IP Address: %s
    </p>
</div>`, n.Name, n.Email, n.Email, n.Message, n.ID, n.SubmittedAt.Format(time.RFC1123), n.IPAddress)
}

func alertText(n SubmissionNotice) string {
	return fmt.Sprintf(`New Contact Form Submission

From: %s
Email: %s

Message:
%s

Submission ID: %s
Submitted at: %s
IP Address: %s`, n.Name, n.Email, n.Message, n.ID, n.SubmittedAt.Format(time.RFC1123), n.IPAddress)
}

func confirmationHTML(n SubmissionNotice) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Thank You</title>
</head>
<body style="margin: 0; padding: 0; background-color: #f4f4f5; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif;">
    <div style="max-width: 600px; margin: 40px auto; background-color: #ffffff; border-radius: 16px; overflow: hidden;">
        <div style="padding: 40px;">
            <h1 style="color: #1a1a1a; margin: 0 0 10px 0; font-size: 28px; text-align: center;">Let's Build Something Great!</h1>
            <p style="color: #6366f1; margin: 0 0 30px 0; font-size: 16px; font-weight: 600; text-align: center; letter-spacing: 1px;">HS21 DIGITAL SOLUTIONS</p>
            <p style="color: #4b5563; font-size: 16px; line-height: 1.6;">Hi <strong>%s</strong>,</p>
            <p style="color: #4b5563; font-size: 16px; line-height: 1.6;">
                Thank you for reaching out to us! We've received your message and are excited to explore how
                we can help elevate your digital presence. One of our experts will review your inquiry and get
                back to you within 24 hours.
            </p>
            <div style="background-color: #f8fafc; border-left: 4px solid #6366f1; padding: 20px; border-radius: 4px; margin: 30px 0;">
                <p style="color: #64748b; font-size: 12px; font-weight: 700; text-transform: uppercase; margin: 0 0 10px 0;">Your Message:</p>
                <p style="color: #334155; font-size: 15px; line-height: 1.6; margin: 0; font-style: italic;">"%s"</p>
            </div>
            <p style="color: #4b5563; font-size: 16px; line-height: 1.6; margin: 0;">
                Best regards,<br>
                <strong>The HS21 Team</strong>
            </p>
        </div>
        <div style="background-color: #111827; padding: 30px; text-align: center;">
            <p style="color: #ffffff; font-size: 18px; font-weight: 700; margin: 0 0 10px 0;">HS21<span style="color: #6366f1;">.</span></p>
            <p style="color: #9ca3af; font-size: 14px; margin: 0 0 20px 0;">Elevating businesses through digital innovation.</p>
            <p style="color: #4b5563; font-size: 12px; margin: 0;">&copy; %s HS21 Digital Solutions. All rights reserved.</p>
        </div>
    </div>
</body>
</html>`, n.Name, n.Message, n.SubmittedAt.Format("2006"))
}

func confirmationText(n SubmissionNotice) string {
	return fmt.Sprintf(`Hi %s,

Thank you for reaching out to us! We've received your message and one of our
experts will get back to you within 24 hours.

Your message:
"%s"

Best regards,
The HS21 Team
hello@hs21digital.com`, n.Name, n.Message)
}
