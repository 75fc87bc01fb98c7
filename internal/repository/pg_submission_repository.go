package repository

import (
	"context"
	"strconv"
	"strings"

	"github.com/hs21digital/backend/internal/model"
)

// SubmissionRepository defines the persistence interface for contact-form
// submissions. It is defined here (in repository) to avoid an import cycle
// with service.
type SubmissionRepository interface {
	Save(ctx context.Context, sub *model.Submission) error
	List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error)
	UpdateStatus(ctx context.Context, id, status string) error
	CountByStatus(ctx context.Context, status string) (int, error)
}

// PgSubmissionRepository is the PostgreSQL implementation of SubmissionRepository.
type PgSubmissionRepository struct {
	store *Store
}

// NewPgSubmissionRepository creates a PgSubmissionRepository backed by the given store.
func NewPgSubmissionRepository(store *Store) *PgSubmissionRepository {
	return &PgSubmissionRepository{store: store}
}

// Ensure PgSubmissionRepository implements SubmissionRepository at compile time.
var _ SubmissionRepository = (*PgSubmissionRepository)(nil)

// Save inserts a new contact_submissions row and populates sub.ID and
// timestamps from the database RETURNING clause.
func (r *PgSubmissionRepository) Save(ctx context.Context, sub *model.Submission) error {
	if !r.store.Ready() {
		return ErrUnavailable
	}
	return r.store.pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (name, email, message, status, ip_address, user_agent)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id, created_at, updated_at`,
		sub.Name, sub.Email, sub.Message, sub.Status, sub.IPAddress, sub.UserAgent,
	).Scan(&sub.ID, &sub.CreatedAt, &sub.UpdatedAt)
}

// List returns submissions newest first, optionally filtered by status and
// capped by opts.Limit. Status "" or "all" returns all submissions.
func (r *PgSubmissionRepository) List(ctx context.Context, opts model.SubmissionListOptions) ([]*model.Submission, error) {
	if !r.store.Ready() {
		return nil, ErrUnavailable
	}

	var args []any
	where := ""

	status := strings.TrimSpace(opts.Status)
	if status != "" && status != "all" {
		args = append(args, status)
		where = "WHERE status = $1"
	}

	query := `SELECT id, name, email, message, status,
	                 COALESCE(ip_address, ''), COALESCE(user_agent, ''),
	                 created_at, updated_at
	          FROM contact_submissions ` + where + `
	          ORDER BY created_at DESC`
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += " LIMIT $" + strconv.Itoa(len(args))
	}

	rows, err := r.store.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []*model.Submission
	for rows.Next() {
		var s model.Submission
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Message, &s.Status,
			&s.IPAddress, &s.UserAgent, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, &s)
	}
	return subs, rows.Err()
}

// UpdateStatus sets the status of a submission. Returns ErrNotFound when no
// row matches the id.
func (r *PgSubmissionRepository) UpdateStatus(ctx context.Context, id, status string) error {
	if !r.store.Ready() {
		return ErrUnavailable
	}
	tag, err := r.store.pool.Exec(ctx,
		`UPDATE contact_submissions SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CountByStatus returns the number of submissions with the given status.
func (r *PgSubmissionRepository) CountByStatus(ctx context.Context, status string) (int, error) {
	if !r.store.Ready() {
		return 0, ErrUnavailable
	}
	var count int
	err := r.store.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM contact_submissions WHERE status = $1`, status,
	).Scan(&count)
	return count, err
}
