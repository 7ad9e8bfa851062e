// Package store persists accounts, profile documents, and the LLM request
// log in a local SQLite database through an ent client.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/parlolabs/parlo/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the ent client and provides access to repositories.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// Open connects to the SQLite database at dsn, applies pragmas, and runs
// ent auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	client := ent.NewClient(ent.Driver(drv))

	if err := client.Schema.Create(context.Background()); err != nil {
		client.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, client: client}, nil
}

// Client returns the underlying ent client.
func (s *Store) Client() *ent.Client {
	return s.client
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.client.Close()
}

// Accounts returns the account repository backed by this store.
func (s *Store) Accounts() AccountRepo {
	return &accountRepo{client: s.client}
}

// Profiles returns the profile repository backed by this store.
func (s *Store) Profiles() ProfileRepo {
	return &profileRepo{client: s.client}
}

// Events returns the event repository backed by this store.
func (s *Store) Events() (EventRepo, error) {
	seq, err := newSequenceCounter(s.db)
	if err != nil {
		return nil, err
	}
	return &eventRepo{client: s.client, seq: seq}, nil
}

// applyPragmas tunes SQLite for a single local user: WAL for concurrent
// reads during writes, relaxed fsync, and enforced foreign keys.
func applyPragmas(db *sql.DB) error {
	for _, p := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. PARLO_DB environment variable
// 2. $XDG_DATA_HOME/parlo/parlo.db
// 3. ~/.local/share/parlo/parlo.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PARLO_DB"); p != "" {
		return p, EnsureDir(p)
	}
	dataHome, err := xdgDataHome()
	if err != nil {
		return "", err
	}
	p := filepath.Join(dataHome, "parlo", "parlo.db")
	return p, EnsureDir(p)
}

func xdgDataHome() (string, error) {
	if d := os.Getenv("XDG_DATA_HOME"); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".local", "share"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
