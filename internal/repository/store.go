package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store owns the PostgreSQL connection pool for the whole process. It is
// created once in main and injected into every repository so there is a
// single source of truth for connection state.
//
// A Store that never connected (no DATABASE_URL, or the connect attempt
// failed) stays usable: Ready reports false and every repository backed by
// it returns ErrUnavailable, which callers treat as a degraded store rather
// than a fatal condition.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a disconnected Store.
func NewStore() *Store {
	return &Store{}
}

// Connect establishes and verifies the connection pool. On failure the Store
// remains disconnected and can be retried or left as-is.
func (s *Store) Connect(ctx context.Context, connString string) error {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return err
	}
	s.pool = pool
	return nil
}

// Ready reports whether the store has a connection pool.
func (s *Store) Ready() bool {
	return s.pool != nil
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	if s.pool == nil {
		return ErrUnavailable
	}
	return s.pool.Ping(ctx)
}

// Close releases the connection pool if one was established.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
