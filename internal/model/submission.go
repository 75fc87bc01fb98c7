package model

import "time"

// Submission statuses. "new" is assigned on creation; the others are set by
// an admin reviewing submissions. No transition is rejected by the backend.
const (
	StatusNew      = "new"
	StatusRead     = "read"
	StatusReplied  = "replied"
	StatusArchived = "archived"
)

// ValidStatus reports whether s is one of the known submission statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusRead, StatusReplied, StatusArchived:
		return true
	}
	return false
}

// Submission represents a persisted contact-form entry.
type Submission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmissionListOptions carries filter parameters for listing submissions.
type SubmissionListOptions struct {
	// Status filters by submission status: "", "all" or one of the status
	// constants. Empty string and "all" return all submissions.
	Status string
	// Limit caps the number of rows returned; 0 means no limit.
	Limit int
}
