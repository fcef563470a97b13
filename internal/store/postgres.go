package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PG wraps a PostgreSQL connection pool holding the slots table.
type PG struct {
	pool *pgxpool.Pool
}

// ConnectPG establishes a connection pool and ensures the slots table
// exists.
func ConnectPG(ctx context.Context, databaseURL string) (*PG, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS slots (
			name       TEXT PRIMARY KEY,
			payload    JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure slots table: %w", err)
	}

	return &PG{pool: pool}, nil
}

// Close closes the connection pool.
func (pg *PG) Close() {
	if pg.pool != nil {
		pg.pool.Close()
	}
}

// Slot returns the named slot backed by this database.
func (pg *PG) Slot(name string) *PGSlot {
	return &PGSlot{pool: pg.pool, name: name}
}

// PGSlot is one row of the slots table.
type PGSlot struct {
	pool *pgxpool.Pool
	name string
}

// Read returns the slot payload, or nil if the slot has never been
// written.
func (s *PGSlot) Read(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM slots WHERE name = $1`, s.name,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read slot %s: %w", s.name, err)
	}
	return payload, nil
}

// Write upserts the slot payload.
func (s *PGSlot) Write(ctx context.Context, payload []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO slots (name, payload, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (name) DO UPDATE SET payload = $2, updated_at = NOW()`,
		s.name, payload)
	if err != nil {
		return fmt.Errorf("failed to write slot %s: %w", s.name, err)
	}
	return nil
}
