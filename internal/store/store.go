package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/quizzine/engine/ent"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store is the on-device durable cache: one SQLite file holding the
// resumable session state and the pending remote-write queue. It survives
// process restarts and is the authoritative source for session resume.
type Store struct {
	db     *sql.DB
	client *ent.Client
}

// sqlitePragmas tunes the file for a single app process: WAL journaling,
// a busy timeout instead of immediate SQLITE_BUSY, NORMAL sync.
var sqlitePragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA foreign_keys = ON",
	"PRAGMA synchronous = NORMAL",
}

// Open opens the cache database at dsn and migrates its schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, p := range sqlitePragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
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

// SessionCache returns a SessionCacheRepo backed by this store.
func (s *Store) SessionCache() SessionCacheRepo {
	return &sessionCacheRepo{client: s.client}
}

// Outbox returns an OutboxRepo backed by this store.
func (s *Store) Outbox() OutboxRepo {
	return &outboxRepo{client: s.client}
}

// DefaultDBPath resolves the cache file location. QUIZZINE_DB wins when
// set; otherwise the file lives under $XDG_DATA_HOME/quizzine, falling
// back to ~/.local/share/quizzine. The parent directory is created as
// needed.
func DefaultDBPath() (string, error) {
	p := os.Getenv("QUIZZINE_DB")
	if p == "" {
		dataHome := os.Getenv("XDG_DATA_HOME")
		if dataHome == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve home dir: %w", err)
			}
			dataHome = filepath.Join(home, ".local", "share")
		}
		p = filepath.Join(dataHome, "quizzine", "quizzine.db")
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return "", fmt.Errorf("create data dir: %w", err)
	}
	return p, nil
}
