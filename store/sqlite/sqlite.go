/*
Package sqlite provides a SQLite-backed implementation of state.Backend.

PURPOSE:
  Durable key/value storage for the state store. Each collection is one row
  holding its JSON document; a write replaces the whole row, matching the
  copy-on-write semantics of the store above it.

NEVER-FAIL CONTRACT:
  Backend methods absorb database errors: Get reports absence, writes report
  false, and the underlying cause is logged. The engine keeps running on
  defaults when the database is unavailable.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  backend, err := sqlite.New("./data/attendance.db")
  if err != nil {
      log.Fatal(err)
  }
  defer backend.Close()

  store := state.New(backend)
  store.Load()

SEE ALSO:
  - state/storage.go: Backend contract
  - state/storage/memory.go: In-memory implementation for testing
  - store/postgres: PostgreSQL implementation
*/
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "github.com/mattn/go-sqlite3"
)

// Backend implements state.Backend over a single kv table.
type Backend struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Backend, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	b := &Backend{db: db}
	if err := b.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return b, nil
}

// Close closes the database connection.
func (b *Backend) Close() error {
	return b.db.Close()
}

func (b *Backend) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS state_kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	_, err := b.db.Exec(schema)
	return err
}

func (b *Backend) Get(key string) ([]byte, bool) {
	var value []byte
	err := b.db.QueryRow(`SELECT value FROM state_kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		slog.Error("sqlite: read failed", "key", key, "error", err)
		return nil, false
	}
	return value, true
}

func (b *Backend) Set(key string, value []byte) bool {
	_, err := b.db.Exec(`
		INSERT INTO state_kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	if err != nil {
		slog.Error("sqlite: write failed", "key", key, "error", err)
		return false
	}
	return true
}

func (b *Backend) Remove(key string) bool {
	if _, err := b.db.Exec(`DELETE FROM state_kv WHERE key = ?`, key); err != nil {
		slog.Error("sqlite: remove failed", "key", key, "error", err)
		return false
	}
	return true
}

func (b *Backend) Clear() bool {
	if _, err := b.db.Exec(`DELETE FROM state_kv`); err != nil {
		slog.Error("sqlite: clear failed", "error", err)
		return false
	}
	return true
}
