package service

import (
	"context"
	"log/slog"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hs21digital/backend/internal/model"
	"github.com/hs21digital/backend/internal/repository"
	"github.com/hs21digital/backend/pkg/mailer"
)

const (
	minNameLen    = 2
	maxNameLen    = 100
	minMessageLen = 10
	maxMessageLen = 1000

	// Bounded timeouts so a slow store or SMTP server cannot stall a request
	// indefinitely. Timeout is treated the same as the underlying failure.
	persistTimeout = 5 * time.Second
	sendTimeout    = 10 * time.Second
)

// emailPattern accepts local@domain.tld: no whitespace around the @, at
// least one dot after it. Deliberately loose beyond that.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.SubmissionRepository
	notifier Notifier
}

// NewContactService creates a ContactService backed by the given repository
// and notification channel.
func NewContactService(repo repository.SubmissionRepository, notifier Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit runs the submission flow: validate, best-effort persist, send the
// operator alert and then the submitter confirmation. Each step is
// independent of the next's success except that the confirmation is only
// attempted after the alert went out.
func (s *contactServiceImpl) Submit(ctx context.Context, input SubmitInput, meta RequestMeta) (*SubmitResult, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	message := strings.TrimSpace(input.Message)

	if err := validateSubmission(name, email, message); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	sub := &model.Submission{
		Name:      name,
		Email:     email,
		Message:   message,
		Status:    model.StatusNew,
		IPAddress: orUnknown(meta.IP),
		UserAgent: orUnknown(meta.UserAgent),
		CreatedAt: now,
		UpdatedAt: now,
	}

	// The caller always gets some reference value, even when the store is
	// down. Persistence is best-effort: failure is logged and swallowed.
	submissionID := strconv.FormatInt(now.UnixMilli(), 10)
	stored := false

	persistCtx, cancel := context.WithTimeout(ctx, persistTimeout)
	defer cancel()
	if err := s.repo.Save(persistCtx, sub); err != nil {
		slog.Error("contact submission not persisted", "error", err, "email", sub.Email)
	} else {
		submissionID = sub.ID
		stored = true
	}

	if s.notifier.Enabled() {
		notice := mailer.SubmissionNotice{
			ID:          submissionID,
			Name:        sub.Name,
			Email:       sub.Email,
			Message:     sub.Message,
			IPAddress:   sub.IPAddress,
			SubmittedAt: sub.CreatedAt,
		}
		if err := s.sendBounded(ctx, s.notifier.SendAlert, notice); err != nil {
			slog.Error("alert email failed", "error", err, "submission_id", submissionID)
			return nil, &DeliveryError{Err: err}
		}
		if err := s.sendBounded(ctx, s.notifier.SendConfirmation, notice); err != nil {
			slog.Error("confirmation email failed", "error", err, "submission_id", submissionID)
			return nil, &DeliveryError{Err: err}
		}
	}

	return &SubmitResult{SubmissionID: submissionID, Stored: stored}, nil
}

// List returns submissions according to the given options, newest first.
func (s *contactServiceImpl) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	return s.repo.List(ctx, opts)
}

// UpdateStatus changes the status of a submission. The backend enforces no
// transition graph; any known status can replace any other.
func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidStatus(status) {
		return &ValidationError{Message: "Status must be one of: new, read, replied, archived"}
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// UnreadCount returns the number of submissions still in status "new".
func (s *contactServiceImpl) UnreadCount(ctx context.Context) (int, error) {
	return s.repo.CountByStatus(ctx, model.StatusNew)
}

func (s *contactServiceImpl) sendBounded(ctx context.Context, send func(context.Context, mailer.SubmissionNotice) error, n mailer.SubmissionNotice) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return send(sendCtx, n)
}

// validateSubmission applies the strict rule set (the persistence schema's
// constraints) before any side effect. Presence first, then email shape,
// then lengths, matching the order callers see the messages in.
func validateSubmission(name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Message: "Please provide a valid email address"}
	}
	if n := len([]rune(name)); n < minNameLen {
		return &ValidationError{Message: "Name must be at least 2 characters"}
	} else if n > maxNameLen {
		return &ValidationError{Message: "Name cannot exceed 100 characters"}
	}
	if n := len([]rune(message)); n < minMessageLen {
		return &ValidationError{Message: "Message must be at least 10 characters"}
	} else if n > maxMessageLen {
		return &ValidationError{Message: "Message cannot exceed 1000 characters"}
	}
	return nil
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
