package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/fov"
	"github.com/samdwyer/lampdelve/internal/message"
)

// SaveVersion is bumped whenever SaveState changes shape.
const SaveVersion = 1

// SaveState is everything needed to resume a session.
type SaveState struct {
	Version  int             `json:"version"`
	Seed     int64           `json:"seed"`
	Turn     int             `json:"turn"`
	Status   Status          `json:"status"`
	Player   entity.Handle   `json:"player"`
	Current  *Level          `json:"current"`
	Previous []LevelSnapshot `json:"previous"`
	Next     []LevelSnapshot `json:"next"`
	Actors   []*entity.Actor `json:"actors"`
	Messages []message.Entry `json:"messages"`
}

// Snapshot captures the session for saving. The state shares memory with
// the session, so encode it before the next command.
func (s *Session) Snapshot() *SaveState {
	return &SaveState{
		Version:  SaveVersion,
		Seed:     s.cfg.Seed,
		Turn:     s.turn,
		Status:   s.status,
		Player:   s.player,
		Current:  s.level,
		Previous: s.previous,
		Next:     s.next,
		Actors:   s.reg.All(),
		Messages: s.messages.Entries(),
	}
}

// Restore resumes a saved session. The random source is reseeded from the
// saved seed and turn, so play after a load diverges from play without one.
func Restore(ctx context.Context, state *SaveState, opts Options) (*Session, error) {
	if state == nil {
		return nil, errors.New("restore: nil state")
	}
	if state.Version != SaveVersion {
		return nil, fmt.Errorf("restore: unsupported save version %d", state.Version)
	}
	if state.Current == nil || state.Current.Grid == nil {
		return nil, errors.New("restore: save has no current level")
	}

	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	_, span := s.tracer.Start(ctx, "game.restore")
	defer span.End()

	reg, err := entity.RestoreRegistry(state.Actors)
	if err != nil {
		return nil, fmt.Errorf("restore: %w", err)
	}
	player, ok := reg.Get(state.Player)
	if !ok || player.Creature == nil || player.Container == nil {
		return nil, fmt.Errorf("restore: player %d missing or incomplete", state.Player)
	}

	s.reg = reg
	s.player = state.Player
	s.level = state.Current
	s.previous = state.Previous
	s.next = state.Next
	s.status = state.Status
	s.turn = state.Turn
	s.messages = message.NewLog(state.Messages...)
	s.cfg.Seed = state.Seed
	s.rng = rand.New(rand.NewSource(state.Seed ^ int64(state.Turn+1)))
	s.fov = fov.Build(s.level.Grid)
	s.refreshFOV()

	s.log.Info("game restored", "turn", s.turn, "depth", s.Depth(), "actors", reg.Len())
	return s, nil
}
