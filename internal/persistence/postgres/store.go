// Package postgres provides a PostgreSQL-backed save store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/persistence"
)

const schema = `
CREATE TABLE IF NOT EXISTS saves (
	slot TEXT PRIMARY KEY,
	version INTEGER NOT NULL,
	depth INTEGER NOT NULL,
	turn INTEGER NOT NULL,
	data BYTEA NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS legacies (
	id SERIAL PRIMARY KEY,
	slot TEXT NOT NULL,
	name TEXT NOT NULL,
	outcome TEXT NOT NULL,
	depth INTEGER NOT NULL,
	turn INTEGER NOT NULL,
	messages TEXT[] NOT NULL,
	recorded_at TIMESTAMP WITH TIME ZONE NOT NULL
);
`

// Store persists save slots and legacy records in PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ persistence.Store = (*Store)(nil)

// Open connects with the given DSN and creates the schema if missing.
func Open(ctx context.Context, dsn string) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("postgres dsn is required")
	}
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGame inserts or replaces the slot.
func (s *Store) SaveGame(ctx context.Context, slot string, state *game.SaveState) error {
	data, err := persistence.Encode(state)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
	INSERT INTO saves (slot, version, depth, turn, data)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (slot)
	DO UPDATE SET
		version = $2, depth = $3, turn = $4, data = $5,
		updated_at = NOW()
	`, slot, state.Version, len(state.Previous)+1, state.Turn, data)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// LoadGame returns persistence.ErrNotFound for an empty slot.
func (s *Store) LoadGame(ctx context.Context, slot string) (*game.SaveState, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = $1`, slot).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, persistence.ErrNotFound
		}
		return nil, fmt.Errorf("load game: %w", err)
	}
	return persistence.Decode(data)
}

// DeleteGame removes the slot if present.
func (s *Store) DeleteGame(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = $1`, slot); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

// RecordLegacy appends a legacy row; messages are stored as a text array.
func (s *Store) RecordLegacy(ctx context.Context, rec persistence.Legacy) error {
	_, err := s.db.ExecContext(ctx, `
	INSERT INTO legacies (slot, name, outcome, depth, turn, messages, recorded_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rec.Slot, rec.Name, rec.Outcome.String(), rec.Depth, rec.Turn,
		pq.Array(rec.Messages), rec.RecordedAt)
	if err != nil {
		return fmt.Errorf("record legacy: %w", err)
	}
	return nil
}

// IsUnavailable reports whether err means the server could not be reached
// or refused the connection, as opposed to a query failure.
func IsUnavailable(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "08"
	}
	return false
}
