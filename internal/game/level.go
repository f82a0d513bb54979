package game

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/fov"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/world"
)

// Level is one dungeon floor: its map, rooms and the handles of the actors
// lying on it. The player is not part of Actors.
type Level struct {
	Depth  int             `json:"depth"`
	Grid   *world.Grid     `json:"grid"`
	Rooms  []world.Room    `json:"rooms"`
	Actors []entity.Handle `json:"actors"`
}

// LevelSnapshot is a level set aside by a transition, together with where
// the player stood on it.
type LevelSnapshot struct {
	PlayerX int    `json:"player_x"`
	PlayerY int    `json:"player_y"`
	Level   *Level `json:"level"`
}

func (l *Level) remove(h entity.Handle) {
	for i, held := range l.Actors {
		if held == h {
			l.Actors = append(l.Actors[:i], l.Actors[i+1:]...)
			return
		}
	}
}

func (l *Level) contains(h entity.Handle) bool {
	for _, held := range l.Actors {
		if held == h {
			return true
		}
	}
	return false
}

// PreviousLevels returns the snapshots above the current level, top first.
func (s *Session) PreviousLevels() []LevelSnapshot { return s.previous }

// NextLevels returns the cached snapshots below the current level.
func (s *Session) NextLevels() []LevelSnapshot { return s.next }

// generateLevel carves a new level and populates it. The player is moved
// to the spawn point.
func (s *Session) generateLevel(ctx context.Context, depth int) *Level {
	grid, rooms := world.Generate(ctx, s.cfg.Map, s.rng)
	lvl := &Level{Depth: depth, Grid: grid, Rooms: rooms}

	prev := s.level
	s.level = lvl
	s.placeObjects(depth)
	s.level = prev
	return lvl
}

// placeObjects spawns the player, fixtures, the key item, monsters and
// items on s.level.
func (s *Session) placeObjects(depth int) {
	lvl := s.level
	player := s.Player()
	top := depth == 1
	final := depth >= s.cfg.Levels

	if len(lvl.Rooms) == 0 {
		// Nothing could be carved; give the player a single floor tile
		// holding whatever the level's exit would be.
		x, y := lvl.Grid.Width/2, lvl.Grid.Height/2
		lvl.Grid.SetPassable(x, y, true)
		player.SetPosition(x, y)
		s.placeExit(top, final, x, y)
		s.log.Warn("level generated without rooms", "depth", depth)
		return
	}

	for i, room := range lvl.Rooms {
		first := i == 0
		last := i == len(lvl.Rooms)-1
		cx, cy := room.Center()

		if first {
			player.SetPosition(cx, cy)
			if top {
				s.spawn(newPortal(cx, cy))
			} else {
				s.spawn(newStairs(cx, cy, false))
			}
		}
		if last {
			if final {
				s.spawn(s.data.Items.NewKeyActor(s.rng, cx, cy))
			} else {
				s.spawn(newStairs(cx, cy, true))
			}
		}

		x, y := world.RandomPointInRoom(s.rng, room)
		s.spawnMonster(x, y)

		x, y = world.RandomPointInRoom(s.rng, room)
		s.spawnItem(x, y)
	}
}

// placeExit puts the level's fixtures on one tile when there are no rooms.
func (s *Session) placeExit(top, final bool, x, y int) {
	if top {
		s.spawn(newPortal(x, y))
	} else {
		s.spawn(newStairs(x, y, false))
	}
	if final {
		s.spawn(s.data.Items.NewKeyActor(s.rng, x, y))
	} else {
		s.spawn(newStairs(x, y, true))
	}
}

func (s *Session) spawn(a *entity.Actor) entity.Handle {
	h := s.reg.Spawn(a)
	s.addToLevel(h)
	return h
}

func (s *Session) spawnMonster(x, y int) {
	def, err := s.data.Monsters.SpawnRandom(s.rng)
	if err != nil {
		s.log.Warn("no monster to spawn", "error", err)
		return
	}
	name := s.data.Names.Generate(s.rng, def.NamePool)
	a := def.NewActor(s.rng, name, x, y)
	a.Kind = def.ID
	s.spawn(a)
}

func (s *Session) spawnItem(x, y int) {
	def, err := s.data.Items.Table.SpawnRandom(s.rng)
	if err != nil {
		s.log.Warn("no item to spawn", "error", err)
		return
	}
	a := def.NewActor(s.rng, x, y)
	a.Kind = def.ID
	s.spawn(a)
}

func newStairs(x, y int, down bool) *entity.Actor {
	glyph := "<"
	if down {
		glyph = ">"
	}
	return &entity.Actor{
		Name:   "stairs",
		X:      x,
		Y:      y,
		Depth:  entity.DepthFixture,
		Glyph:  glyph,
		Color:  gamedata.ColorStairs,
		Stairs: &entity.Stairs{Down: down},
	}
}

func newPortal(x, y int) *entity.Actor {
	return &entity.Actor{
		Name:   "exit portal",
		X:      x,
		Y:      y,
		Depth:  entity.DepthFixture,
		Glyph:  "O",
		Color:  gamedata.ColorPortalClosed,
		Portal: &entity.Portal{State: entity.PortalClosed},
	}
}

// TransitionNext descends. The current level is pushed onto the previous
// stack with the player's position; the next level is restored from the
// next stack if one is cached, otherwise generated.
func (s *Session) TransitionNext(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "level.transition")
	defer span.End()

	player := s.Player()
	s.previous = append(s.previous, LevelSnapshot{PlayerX: player.X, PlayerY: player.Y, Level: s.level})

	cached := len(s.next) > 0
	if cached {
		snap := s.next[len(s.next)-1]
		s.next = s.next[:len(s.next)-1]
		s.level = snap.Level
		player.SetPosition(snap.PlayerX, snap.PlayerY)
	} else {
		s.level = s.generateLevel(ctx, s.Depth())
	}
	s.enterLevel()

	span.SetAttributes(
		attribute.String("direction", "down"),
		attribute.Int("level.depth", s.Depth()),
		attribute.Bool("level.cached", cached),
	)
	s.log.Info("level transition", "direction", "down", "depth", s.Depth(), "cached", cached)
}

// TransitionPrevious ascends. It returns false when already on the top
// level.
func (s *Session) TransitionPrevious(ctx context.Context) bool {
	if len(s.previous) == 0 {
		return false
	}
	_, span := s.tracer.Start(ctx, "level.transition")
	defer span.End()

	player := s.Player()
	s.next = append(s.next, LevelSnapshot{PlayerX: player.X, PlayerY: player.Y, Level: s.level})

	snap := s.previous[len(s.previous)-1]
	s.previous = s.previous[:len(s.previous)-1]
	s.level = snap.Level
	player.SetPosition(snap.PlayerX, snap.PlayerY)
	s.enterLevel()

	span.SetAttributes(
		attribute.String("direction", "up"),
		attribute.Int("level.depth", s.Depth()),
	)
	s.log.Info("level transition", "direction", "up", "depth", s.Depth())
	return true
}

// enterLevel rebuilds visibility for the new current level.
func (s *Session) enterLevel() {
	s.fov = fov.Build(s.level.Grid)
	s.fov.MarkDirty()
}
