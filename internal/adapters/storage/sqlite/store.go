// Package sqlite implements the todo repository port on SQLite.
//
// The database runs in WAL mode on a single pooled connection, and every
// write transaction is opened with BEGIN IMMEDIATE, so the count-then-write
// sequence behind the per-category cap is serialized. A lock file next to
// the database keeps a second server process from opening it.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/jsamuelsen11/go-todo-service/internal/platform/config"
	"github.com/jsamuelsen11/go-todo-service/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.TodoRepository = (*Store)(nil)
	_ ports.HealthChecker  = (*Store)(nil)
)

// ErrLocked is returned by Open when another process holds the database lock.
var ErrLocked = errors.New("database is locked by another process")

// Store is a SQLite-backed todo repository.
type Store struct {
	db     *sql.DB
	lock   *flock.Flock
	logger *slog.Logger
}

// Open acquires the lock file, opens the database at cfg.Path (creating its
// directory if needed) and applies pending migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	lock := flock.New(cfg.Path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring lock for %s: %w", cfg.Path, err)
	}
	if !locked {
		return nil, fmt.Errorf("%s: %w", cfg.Path, ErrLocked)
	}

	db, err := sql.Open("sqlite3", dsn(cfg))
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// One connection: SQLite allows a single writer.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, err
	}

	logger.InfoContext(ctx, "database ready", slog.String("path", cfg.Path))

	return &Store{db: db, lock: lock, logger: logger}, nil
}

// Close closes the database and releases the lock file.
func (s *Store) Close() error {
	return errors.Join(s.db.Close(), s.lock.Unlock())
}

// Name identifies the store in health reports.
func (s *Store) Name() string {
	return "sqlite"
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite: %w", err)
	}
	return nil
}

func dsn(cfg config.DatabaseConfig) string {
	return fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=%d&_txlock=immediate&_foreign_keys=ON",
		cfg.Path, cfg.BusyTimeout.Milliseconds())
}
