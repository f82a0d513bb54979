// Package sqlite provides a SQLite-backed save store.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/samdwyer/lampdelve/internal/game"
	"github.com/samdwyer/lampdelve/internal/persistence"
	"github.com/samdwyer/lampdelve/internal/persistence/sqlite/migrations"
)

// Store persists save slots and legacy records in SQLite.
type Store struct {
	sqlDB *sql.DB
}

var _ persistence.Store = (*Store)(nil)

// Open opens the database at path and applies the embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveGame inserts or replaces the slot.
func (s *Store) SaveGame(ctx context.Context, slot string, state *game.SaveState) error {
	data, err := persistence.Encode(state)
	if err != nil {
		return err
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO saves (slot, version, depth, turn, data, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT (slot) DO UPDATE SET
		   version = excluded.version,
		   depth = excluded.depth,
		   turn = excluded.turn,
		   data = excluded.data,
		   updated_at = excluded.updated_at`,
		slot,
		state.Version,
		len(state.Previous)+1,
		state.Turn,
		data,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// LoadGame returns persistence.ErrNotFound for an empty slot.
func (s *Store) LoadGame(ctx context.Context, slot string) (*game.SaveState, error) {
	var data []byte
	err := s.sqlDB.QueryRowContext(ctx, `SELECT data FROM saves WHERE slot = ?`, slot).Scan(&data)
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
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot); err != nil {
		return fmt.Errorf("delete game: %w", err)
	}
	return nil
}

// RecordLegacy appends a legacy row.
func (s *Store) RecordLegacy(ctx context.Context, rec persistence.Legacy) error {
	msgs, err := json.Marshal(rec.Messages)
	if err != nil {
		return fmt.Errorf("encode legacy messages: %w", err)
	}
	_, err = s.sqlDB.ExecContext(ctx,
		`INSERT INTO legacies (slot, name, outcome, depth, turn, messages, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Slot,
		rec.Name,
		rec.Outcome.String(),
		rec.Depth,
		rec.Turn,
		string(msgs),
		rec.RecordedAt.UTC().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("record legacy: %w", err)
	}
	return nil
}

// Legacies returns the most recent legacy records, newest first.
func (s *Store) Legacies(ctx context.Context, limit int) ([]persistence.Legacy, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT slot, name, outcome, depth, turn, messages, recorded_at
		 FROM legacies ORDER BY recorded_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list legacies: %w", err)
	}
	defer rows.Close()

	var out []persistence.Legacy
	for rows.Next() {
		var (
			rec      persistence.Legacy
			outcome  string
			msgs     string
			recorded int64
		)
		if err := rows.Scan(&rec.Slot, &rec.Name, &outcome, &rec.Depth, &rec.Turn, &msgs, &recorded); err != nil {
			return nil, fmt.Errorf("scan legacy: %w", err)
		}
		if err := rec.Outcome.UnmarshalText([]byte(outcome)); err != nil {
			return nil, fmt.Errorf("decode legacy outcome: %w", err)
		}
		if err := json.Unmarshal([]byte(msgs), &rec.Messages); err != nil {
			return nil, fmt.Errorf("decode legacy messages: %w", err)
		}
		rec.RecordedAt = time.UnixMilli(recorded).UTC()
		out = append(out, rec)
	}
	return out, rows.Err()
}
