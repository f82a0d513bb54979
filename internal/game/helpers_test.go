package game

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/fov"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/world"
)

// stubSelector answers tile selections with a fixed point.
type stubSelector struct {
	point    world.Point
	decline  bool
	requests []TargetRequest
}

func (s *stubSelector) SelectTile(_ context.Context, req TargetRequest) (world.Point, bool) {
	s.requests = append(s.requests, req)
	return s.point, !s.decline
}

// stubSounder records played cues.
type stubSounder struct {
	cues []Cue
}

func (s *stubSounder) Play(c Cue) { s.cues = append(s.cues, c) }

func (s *stubSounder) count(c Cue) int {
	n := 0
	for _, got := range s.cues {
		if got == c {
			n++
		}
	}
	return n
}

var testData = gamedata.MustLoadAll()

// newArena builds a session on a hand-made level: a w x h grid whose
// border is wall and whose interior is floor, with the player at (1, 1).
func newArena(t *testing.T, w, h int) (*Session, *stubSounder) {
	t.Helper()
	grid := world.NewGrid(w, h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			grid.SetPassable(x, y, true)
		}
	}
	return newSessionOn(t, grid, 1, 1)
}

// newSessionOn builds a session on the given grid with the player at
// (px, py) and no other actors.
func newSessionOn(t *testing.T, grid *world.Grid, px, py int) (*Session, *stubSounder) {
	t.Helper()
	snd := &stubSounder{}
	s, err := newSession(Options{Config: DefaultConfig(), Data: testData, Sounder: snd})
	if err != nil {
		t.Fatalf("newSession() error = %v", err)
	}
	s.cfg.Seed = 1
	s.rng = rand.New(rand.NewSource(1))
	s.level = &Level{Depth: 1, Grid: grid}
	s.player = s.reg.Spawn(s.newPlayer())
	s.Player().SetPosition(px, py)
	s.fov = fov.Build(grid)
	s.refreshFOV()
	return s, snd
}

// addMonster places a creature with the given stats and behavior.
func addMonster(s *Session, name string, x, y, atk, def, hp int, kind entity.BehaviorKind) *entity.Actor {
	a := &entity.Actor{
		Name:     "anaconda",
		Kind:     "anaconda",
		X:        x,
		Y:        y,
		Depth:    entity.DepthCreature,
		Creature: entity.NewCreature(name, atk, def, hp, entity.DeathCorpse),
	}
	a.SetBehavior(entity.NewBehavior(kind))
	s.spawn(a)
	return a
}

// addItem places a plain item of the given volume.
func addItem(s *Session, name string, x, y int, volume float64) *entity.Actor {
	a := &entity.Actor{
		Name:  name,
		X:     x,
		Y:     y,
		Depth: entity.DepthItem,
		Item:  &entity.Item{Volume: volume},
	}
	s.spawn(a)
	return a
}

// give puts an item straight into the player's inventory.
func give(s *Session, a *entity.Actor) *entity.Actor {
	if a.ID == entity.NoHandle {
		s.reg.Spawn(a)
	}
	p := s.Player()
	p.Container.Add(a.ID)
	a.Item.Holder = p.ID
	return a
}

// countMessages counts logged messages containing substr.
func countMessages(s *Session, substr string) int {
	n := 0
	for _, e := range s.messages.Entries() {
		if strings.Contains(e.Text, substr) {
			n++
		}
	}
	return n
}
