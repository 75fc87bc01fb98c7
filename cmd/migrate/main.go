package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hs21digital/backend/internal/logging"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: migrate [command]

Commands:
  (default)   apply pending migrations
  reset       drop all tables and reapply every migration`)
	os.Exit(1)
}

func main() {
	_ = godotenv.Load()
	_ = godotenv.Load("../.env")
	logging.Setup()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logging.Fatal("DATABASE_URL must be set to run migrations")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		logging.Fatal("connect failed", "error", err)
	}
	defer pool.Close()

	migrationDir := findMigrationDir()

	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}

	switch cmd {
	case "":
		applyPending(ctx, pool, migrationDir)
	case "reset":
		dropAll(ctx, pool)
		applyPending(ctx, pool, migrationDir)
	default:
		usage()
	}
}

func findMigrationDir() string {
	dir := "migrations"
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		dir = "../migrations"
	}
	return dir
}

// collectUpFiles returns the .up.sql file names in apply order.
func collectUpFiles(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Fatal("read migrations dir failed", "error", err)
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".up.sql") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)
	return files
}

// applyPending applies every .up.sql file not yet recorded in
// schema_migrations, each inside its own transaction.
func applyPending(ctx context.Context, pool *pgxpool.Pool, dir string) {
	_, err := pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS schema_migrations (version TEXT PRIMARY KEY, applied_at TIMESTAMPTZ NOT NULL DEFAULT now())`)
	if err != nil {
		logging.Fatal("create schema_migrations failed", "error", err)
	}

	for _, name := range collectUpFiles(dir) {
		var exists bool
		if err := pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE version = $1)`, name,
		).Scan(&exists); err != nil {
			logging.Fatal("check migration failed", "file", name, "error", err)
		}
		if exists {
			continue
		}

		sql, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			logging.Fatal("read migration failed", "file", name, "error", err)
		}

		tx, err := pool.Begin(ctx)
		if err != nil {
			logging.Fatal("begin failed", "file", name, "error", err)
		}
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			_ = tx.Rollback(ctx)
			logging.Fatal("apply migration failed", "file", name, "error", err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version) VALUES ($1)`, name); err != nil {
			_ = tx.Rollback(ctx)
			logging.Fatal("record migration failed", "file", name, "error", err)
		}
		if err := tx.Commit(ctx); err != nil {
			logging.Fatal("commit failed", "file", name, "error", err)
		}
		fmt.Println("applied", name)
	}
}

// dropAll drops the application tables so reset can start clean.
func dropAll(ctx context.Context, pool *pgxpool.Pool) {
	for _, table := range []string{"chat_logs", "contact_submissions", "schema_migrations"} {
		if _, err := pool.Exec(ctx, "DROP TABLE IF EXISTS "+table+" CASCADE"); err != nil {
			logging.Fatal("drop table failed", "table", table, "error", err)
		}
		fmt.Println("dropped", table)
	}
}
