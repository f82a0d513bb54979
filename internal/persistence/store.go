// Package persistence saves and loads game sessions and keeps a record of
// finished runs.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/samdwyer/lampdelve/internal/game"
)

// ErrNotFound is returned when a save slot holds no game.
var ErrNotFound = errors.New("save not found")

// Store persists save slots and legacy records.
type Store interface {
	SaveGame(ctx context.Context, slot string, state *game.SaveState) error
	LoadGame(ctx context.Context, slot string) (*game.SaveState, error)
	DeleteGame(ctx context.Context, slot string) error
	RecordLegacy(ctx context.Context, rec Legacy) error
	Close() error
}

// Legacy is the record left behind by a finished run: how it ended and
// everything the player was told along the way.
type Legacy struct {
	Slot       string
	Name       string
	Outcome    game.Status
	Depth      int
	Turn       int
	Messages   []string
	RecordedAt time.Time
}

// NewLegacy builds the legacy record for a finished session.
func NewLegacy(slot string, s *game.Session, now time.Time) Legacy {
	entries := s.Messages().Entries()
	msgs := make([]string, len(entries))
	for i, e := range entries {
		msgs[i] = e.Text
	}
	name := ""
	if c := s.Player().Creature; c != nil {
		name = c.Name
	}
	return Legacy{
		Slot:       slot,
		Name:       name,
		Outcome:    s.Status(),
		Depth:      s.Depth(),
		Turn:       s.Turn(),
		Messages:   msgs,
		RecordedAt: now.UTC(),
	}
}

// Banner is the headline written at the top of a legacy record.
func (l Legacy) Banner() string {
	if l.Outcome == game.StatusWon {
		return "******THIS CHARACTER WON!******"
	}
	return "******THIS CHARACTER LOST!******"
}
