// internal/store/postgres.go
package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tidraft/tidraft/internal/models"
)

// PostgresStore persists rooms as JSONB rows keyed by code.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore connects using the POSTGRES_USER / POSTGRES_PASSWORD /
// PG_HOST / PG_PORT / PG_DATABASE environment variables, pings the server,
// and ensures the rooms table exists.
func NewPostgresStore(ctx context.Context) (*PostgresStore, error) {
	connStr := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("PG_HOST"),
		os.Getenv("PG_PORT"),
		os.Getenv("PG_DATABASE"),
	)

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to parse pgx config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	s := &PostgresStore{pool: pool}
	if err := s.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) ensureSchema(ctx context.Context) error {
	q := `
	CREATE TABLE IF NOT EXISTS rooms (
		code       TEXT PRIMARY KEY,
		data       JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
	`
	_, err := s.pool.Exec(ctx, q)
	if err != nil {
		return fmt.Errorf("ensure rooms schema: %w", err)
	}
	return nil
}

// Get fetches the room row for code. pgx scans the JSONB column straight
// into the Room struct.
func (s *PostgresStore) Get(ctx context.Context, code string) (*models.Room, error) {
	q := `SELECT data FROM rooms WHERE code = $1`
	var room models.Room
	err := s.pool.QueryRow(ctx, q, code).Scan(&room)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", code, err)
	}
	return &room, nil
}

// Put upserts the full room record under its code.
func (s *PostgresStore) Put(ctx context.Context, code string, room *models.Room) error {
	q := `
	INSERT INTO rooms (code, data, updated_at)
	VALUES ($1, $2, now())
	ON CONFLICT (code) DO UPDATE SET data = EXCLUDED.data, updated_at = now()
	`
	_, err := s.pool.Exec(ctx, q, code, room)
	if err != nil {
		return fmt.Errorf("put room %s: %w", code, err)
	}
	return nil
}

// Exists checks for a row under code.
func (s *PostgresStore) Exists(ctx context.Context, code string) (bool, error) {
	q := `SELECT 1 FROM rooms WHERE code = $1 LIMIT 1`
	var tmp int
	err := s.pool.QueryRow(ctx, q, code).Scan(&tmp)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("room exists %s: %w", code, err)
	}
	return true, nil
}

// Close releases the underlying connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}
