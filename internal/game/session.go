package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/lampdelve/internal/entity"
	"github.com/samdwyer/lampdelve/internal/fov"
	"github.com/samdwyer/lampdelve/internal/gamedata"
	"github.com/samdwyer/lampdelve/internal/message"
	"github.com/samdwyer/lampdelve/internal/telemetry"
	"github.com/samdwyer/lampdelve/internal/world"
)

// Options configures a Session. Data is required; every other field has a
// usable zero value.
type Options struct {
	Config   Config
	Data     *gamedata.Data
	Logger   *slog.Logger
	Selector TileSelector // nil cancels every targeted effect
	Sounder  Sounder      // nil plays nothing
}

// Session is the explicit context of one game: the current level, both
// level stacks, every actor, the player, the visibility map, the message
// log and the random source. All operations run on the caller's goroutine.
type Session struct {
	cfg      Config
	data     *gamedata.Data
	log      *slog.Logger
	tracer   trace.Tracer
	selector TileSelector
	sounder  Sounder
	rng      *rand.Rand

	reg      *entity.Registry
	player   entity.Handle
	level    *Level
	previous []LevelSnapshot
	next     []LevelSnapshot
	fov      *fov.Map
	messages *message.Log
	status   Status
	turn     int

	// Set while the behavior pass runs; level list edits are queued.
	dispatching bool
	pendingAdd  []entity.Handle
	pendingDrop []entity.Handle
}

// NewSession creates the player, generates the top level and places its
// objects.
func NewSession(ctx context.Context, opts Options) (*Session, error) {
	s, err := newSession(opts)
	if err != nil {
		return nil, err
	}
	if s.cfg.Seed == 0 {
		s.cfg.Seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.cfg.Seed))

	ctx, span := s.tracer.Start(ctx, "game.new")
	defer span.End()

	s.player = s.reg.Spawn(s.newPlayer())
	s.level = s.generateLevel(ctx, 1)
	s.fov = fov.Build(s.level.Grid)
	s.refreshFOV()

	span.SetAttributes(
		attribute.Int64("game.seed", s.cfg.Seed),
		attribute.Int("level.rooms", len(s.level.Rooms)),
	)
	s.log.Info("new game", "seed", s.cfg.Seed, "rooms", len(s.level.Rooms), "levels", s.cfg.Levels)
	s.messages.Addf(message.SeverityGood, "Welcome, %s. Find the lamp and escape!", s.cfg.Player.Name)
	return s, nil
}

func newSession(opts Options) (*Session, error) {
	if opts.Data == nil {
		return nil, errors.New("game: options missing data tables")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sounder := opts.Sounder
	if sounder == nil {
		sounder = silent{}
	}
	return &Session{
		cfg:      opts.Config.withDefaults(),
		data:     opts.Data,
		log:      logger.With("component", "game"),
		tracer:   telemetry.Tracer("game"),
		selector: opts.Selector,
		sounder:  sounder,
		reg:      entity.NewRegistry(),
		messages: message.NewLog(),
	}, nil
}

func (s *Session) newPlayer() *entity.Actor {
	p := s.cfg.Player
	return &entity.Actor{
		Name:      p.Object,
		Depth:     entity.DepthPlayer,
		Glyph:     "@",
		Color:     gamedata.ColorPlayer,
		Creature:  entity.NewCreature(p.Name, p.Attack, p.Defense, p.HP, entity.DeathPlayer),
		Container: entity.NewContainer(p.Volume),
	}
}

// Player returns the player actor.
func (s *Session) Player() *entity.Actor {
	a, ok := s.reg.Get(s.player)
	if !ok {
		panic(fmt.Sprintf("game: player handle %d not in registry", s.player))
	}
	return a
}

// PlayerHandle returns the player's handle.
func (s *Session) PlayerHandle() entity.Handle { return s.player }

// Registry returns the actor arena.
func (s *Session) Registry() *entity.Registry { return s.reg }

// Level returns the current level.
func (s *Session) Level() *Level { return s.level }

// Depth returns the current level depth, 1 at the top.
func (s *Session) Depth() int { return len(s.previous) + 1 }

// Messages returns the message log.
func (s *Session) Messages() *message.Log { return s.messages }

// Status returns whether the game is running, lost or won.
func (s *Session) Status() Status { return s.status }

// Turn returns the number of accepted turns.
func (s *Session) Turn() int { return s.turn }

// Config returns the effective configuration.
func (s *Session) Config() Config { return s.cfg }

// FOV returns the player's visibility map for the current level.
func (s *Session) FOV() *fov.Map { return s.fov }

// IsVisible reports whether the player can currently see (x, y).
func (s *Session) IsVisible(x, y int) bool { return s.fov.IsVisible(x, y) }

// SetSelector replaces the tile selector. The terminal client installs
// itself once the session exists.
func (s *Session) SetSelector(sel TileSelector) { s.selector = sel }

// refreshFOV recomputes visibility from the player if it is dirty.
func (s *Session) refreshFOV() {
	p := s.Player()
	s.fov.Refresh(world.Pt(p.X, p.Y), s.cfg.FOV.Radius, s.cfg.FOV.LightWalls, s.cfg.FOV.Algorithm)
}

// Active returns the player followed by the current level's actors.
func (s *Session) Active() []*entity.Actor {
	out := make([]*entity.Actor, 0, len(s.level.Actors)+1)
	out = append(out, s.Player())
	return append(out, s.reg.Resolve(s.level.Actors)...)
}

// ActorsAt returns every active actor standing on (x, y).
func (s *Session) ActorsAt(x, y int) []*entity.Actor {
	var out []*entity.Actor
	for _, a := range s.Active() {
		if a.At(x, y) {
			out = append(out, a)
		}
	}
	return out
}

// CreatureAt returns the first active actor with a Creature on (x, y),
// ignoring exclude.
func (s *Session) CreatureAt(x, y int, exclude *entity.Actor) *entity.Actor {
	for _, a := range s.Active() {
		if a != exclude && a.Creature != nil && a.At(x, y) {
			return a
		}
	}
	return nil
}

// addToLevel puts an actor on the current level's active list.
func (s *Session) addToLevel(h entity.Handle) {
	if s.dispatching {
		s.pendingAdd = append(s.pendingAdd, h)
		return
	}
	s.level.Actors = append(s.level.Actors, h)
}

// removeFromLevel takes an actor off the current level's active list.
func (s *Session) removeFromLevel(h entity.Handle) {
	if s.dispatching {
		s.pendingDrop = append(s.pendingDrop, h)
		return
	}
	s.level.remove(h)
}

// flushPending applies list edits queued during the behavior pass.
func (s *Session) flushPending() {
	for _, h := range s.pendingDrop {
		s.level.remove(h)
	}
	s.level.Actors = append(s.level.Actors, s.pendingAdd...)
	s.pendingAdd = nil
	s.pendingDrop = nil
}
