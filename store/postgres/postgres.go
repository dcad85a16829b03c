/*
Package postgres provides a PostgreSQL-backed implementation of state.Backend.

PURPOSE:
  Same single-table key/value layout as the SQLite backend, for deployments
  that already run Postgres. Uses a pgx connection pool.

NEVER-FAIL CONTRACT:
  The Backend interface is synchronous and error-free; database failures are
  logged and reported as absence/false. Each call runs under a short internal
  timeout so an unreachable database degrades the engine to defaults instead
  of hanging it.

SEE ALSO:
  - state/storage.go: Backend contract
  - store/sqlite: SQLite implementation
*/
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const opTimeout = 5 * time.Second

// Backend implements state.Backend over a single kv table.
type Backend struct {
	pool *pgxpool.Pool
}

// New connects to the database at dsn and ensures the schema exists.
func New(ctx context.Context, dsn string) (*Backend, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	b := &Backend{pool: pool}
	if err := b.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return b, nil
}

// Close releases the connection pool.
func (b *Backend) Close() {
	b.pool.Close()
}

func (b *Backend) migrate(ctx context.Context) error {
	_, err := b.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS state_kv (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)`)
	return err
}

func (b *Backend) Get(key string) ([]byte, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var value []byte
	err := b.pool.QueryRow(ctx, `SELECT value FROM state_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false
	}
	if err != nil {
		slog.Error("postgres: read failed", "key", key, "error", err)
		return nil, false
	}
	return value, true
}

func (b *Backend) Set(key string, value []byte) bool {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := b.pool.Exec(ctx, `
		INSERT INTO state_kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		key, value)
	if err != nil {
		slog.Error("postgres: write failed", "key", key, "error", err)
		return false
	}
	return true
}

func (b *Backend) Remove(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := b.pool.Exec(ctx, `DELETE FROM state_kv WHERE key = $1`, key); err != nil {
		slog.Error("postgres: remove failed", "key", key, "error", err)
		return false
	}
	return true
}

func (b *Backend) Clear() bool {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := b.pool.Exec(ctx, `DELETE FROM state_kv`); err != nil {
		slog.Error("postgres: clear failed", "error", err)
		return false
	}
	return true
}
