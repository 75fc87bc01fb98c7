package service

import (
	"context"

	"github.com/hs21digital/backend/internal/model"
	"github.com/hs21digital/backend/pkg/mailer"
)

// SubmitInput is the caller-supplied contact form content.
type SubmitInput struct {
	Name    string
	Email   string
	Message string
}

// RequestMeta carries request metadata recorded alongside a submission.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	// SubmissionID is the store-assigned identifier, or a locally generated
	// fallback when the submission could not be persisted.
	SubmissionID string
	// Stored reports whether the submission actually reached the database.
	// It is informational only; callers never surface it to the submitter.
	Stored bool
}

// ContactService defines the business logic for contact-form submissions.
type ContactService interface {
	// Submit validates the input, persists it best-effort and sends the
	// notification emails. It returns *ValidationError on bad input and
	// *DeliveryError when an email send fails; persistence failure alone
	// never produces an error.
	Submit(ctx context.Context, input SubmitInput, meta RequestMeta) (*SubmitResult, error)

	// List returns submissions according to the given options, newest first.
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error)

	// UpdateStatus changes the status of a submission.
	UpdateStatus(ctx context.Context, id, status string) error

	// UnreadCount returns the number of submissions still in status "new".
	UnreadCount(ctx context.Context) (int, error)
}

// Notifier is the outbound email channel used by the contact service.
// *mailer.Mailer satisfies it; tests substitute a mock.
type Notifier interface {
	// Enabled reports whether a delivery channel is configured at all.
	Enabled() bool
	// SendAlert delivers the internal alert to the configured operator address.
	SendAlert(ctx context.Context, n mailer.SubmissionNotice) error
	// SendConfirmation delivers the acknowledgement to the submitter.
	SendConfirmation(ctx context.Context, n mailer.SubmissionNotice) error
}
