package repository

import (
	"context"

	"github.com/hs21digital/backend/internal/model"
)

// ChatLogRepository defines the persistence interface for chatbot exchange logs.
type ChatLogRepository interface {
	Save(ctx context.Context, entry *model.ChatLogEntry) error
	SessionHistory(ctx context.Context, sessionID string) ([]*model.ChatLogEntry, error)
	CountByCategory(ctx context.Context) ([]model.CategoryCount, error)
}

// PgChatLogRepository is the PostgreSQL implementation of ChatLogRepository.
type PgChatLogRepository struct {
	store *Store
}

// NewPgChatLogRepository creates a PgChatLogRepository backed by the given store.
func NewPgChatLogRepository(store *Store) *PgChatLogRepository {
	return &PgChatLogRepository{store: store}
}

var _ ChatLogRepository = (*PgChatLogRepository)(nil)

// Save appends a chat_logs row and populates entry.ID and entry.CreatedAt
// from the database RETURNING clause.
func (r *PgChatLogRepository) Save(ctx context.Context, entry *model.ChatLogEntry) error {
	if !r.store.Ready() {
		return ErrUnavailable
	}
	return r.store.pool.QueryRow(ctx,
		`INSERT INTO chat_logs (session_id, user_message, bot_response, category, user_email, ip_address)
		 VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''))
		 RETURNING id, created_at`,
		entry.SessionID, entry.UserMessage, entry.BotResponse, entry.Category,
		entry.UserEmail, entry.IPAddress,
	).Scan(&entry.ID, &entry.CreatedAt)
}

// SessionHistory returns all exchanges for a session, oldest first.
func (r *PgChatLogRepository) SessionHistory(ctx context.Context, sessionID string) ([]*model.ChatLogEntry, error) {
	if !r.store.Ready() {
		return nil, ErrUnavailable
	}
	rows, err := r.store.pool.Query(ctx,
		`SELECT id, session_id, user_message, bot_response, category,
		        COALESCE(user_email, ''), COALESCE(ip_address, ''), created_at
		 FROM chat_logs
		 WHERE session_id = $1
		 ORDER BY created_at ASC`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.ChatLogEntry
	for rows.Next() {
		var e model.ChatLogEntry
		if err := rows.Scan(&e.ID, &e.SessionID, &e.UserMessage, &e.BotResponse,
			&e.Category, &e.UserEmail, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// CountByCategory returns exchange counts per category, most frequent first.
func (r *PgChatLogRepository) CountByCategory(ctx context.Context) ([]model.CategoryCount, error) {
	if !r.store.Ready() {
		return nil, ErrUnavailable
	}
	rows, err := r.store.pool.Query(ctx,
		`SELECT category, COUNT(*) FROM chat_logs GROUP BY category ORDER BY COUNT(*) DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []model.CategoryCount
	for rows.Next() {
		var c model.CategoryCount
		if err := rows.Scan(&c.Category, &c.Count); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}
