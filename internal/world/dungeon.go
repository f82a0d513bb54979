package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/lampdelve/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 50
	DefaultHeight = 30

	// Default room placement parameters
	DefaultMaxRooms      = 10
	DefaultRoomMinWidth  = 3
	DefaultRoomMaxWidth  = 5
	DefaultRoomMinHeight = 3
	DefaultRoomMaxHeight = 7

	// edgeMargin is the minimum distance between a room and any grid edge.
	edgeMargin = 2
)

// GenConfig controls room and corridor generation.
type GenConfig struct {
	Width, Height                int
	MaxRooms                     int // Placement attempts, not a guaranteed room count
	RoomMinWidth, RoomMaxWidth   int
	RoomMinHeight, RoomMaxHeight int
}

// DefaultGenConfig returns the standard 50x30 ten-attempt configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Width:         DefaultWidth,
		Height:        DefaultHeight,
		MaxRooms:      DefaultMaxRooms,
		RoomMinWidth:  DefaultRoomMinWidth,
		RoomMaxWidth:  DefaultRoomMaxWidth,
		RoomMinHeight: DefaultRoomMinHeight,
		RoomMaxHeight: DefaultRoomMaxHeight,
	}
}

// Generate builds a grid and its ordered room list.
//
// Every attempt samples a room size and position; a room touching any
// previously accepted room is discarded and the attempt is spent. Each
// accepted room after the first is tunnelled to the room accepted just
// before it, so the accepted set is connected as a chain.
func Generate(ctx context.Context, cfg GenConfig, rng *rand.Rand) (*Grid, []Room) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	grid := NewGrid(cfg.Width, cfg.Height)
	rooms := make([]Room, 0, max(cfg.MaxRooms, 0))

	for attempt := 0; attempt < cfg.MaxRooms; attempt++ {
		w := randRange(rng, cfg.RoomMinWidth, cfg.RoomMaxWidth)
		h := randRange(rng, cfg.RoomMinHeight, cfg.RoomMaxHeight)

		maxX := cfg.Width - w - edgeMargin
		maxY := cfg.Height - h - edgeMargin
		if w <= 0 || h <= 0 || maxX < edgeMargin || maxY < edgeMargin {
			continue // no legal placement for this size
		}

		candidate := NewRoom(
			randRange(rng, edgeMargin, maxX),
			randRange(rng, edgeMargin, maxY),
			w, h,
		)

		if overlapsAny(candidate, rooms) {
			continue
		}

		grid.carveRoom(candidate)
		if len(rooms) > 0 {
			grid.carveCorridor(rng, candidate, rooms[len(rooms)-1])
		}
		rooms = append(rooms, candidate)
	}

	span.SetAttributes(
		attribute.Int("map.width", cfg.Width),
		attribute.Int("map.height", cfg.Height),
		attribute.Int("map.attempts", cfg.MaxRooms),
		attribute.Int("map.room_count", len(rooms)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return grid, rooms
}

// overlapsAny reports whether the candidate intersects any accepted room.
func overlapsAny(candidate Room, rooms []Room) bool {
	for _, other := range rooms {
		if candidate.Intersects(other) {
			return true
		}
	}
	return false
}

// randRange returns a uniform integer in [lo, hi]. A reversed range yields lo.
func randRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// carveRoom sets all tiles within the room to floor.
func (g *Grid) carveRoom(room Room) {
	for y := room.Y; y < room.Y2(); y++ {
		for x := room.X; x < room.X2(); x++ {
			g.SetPassable(x, y, true)
		}
	}
}

// carveCorridor creates an L-shaped corridor from one room's center to another's.
func (g *Grid) carveCorridor(rng *rand.Rand, from, to Room) {
	x1, y1 := from.Center()
	x2, y2 := to.Center()

	// Randomly choose to go horizontal-then-vertical or vertical-then-horizontal
	if rng.Intn(2) == 0 {
		g.carveHorizontalTunnel(x1, x2, y1)
		g.carveVerticalTunnel(y1, y2, x2)
	} else {
		g.carveVerticalTunnel(y1, y2, x1)
		g.carveHorizontalTunnel(x1, x2, y2)
	}
}

// carveHorizontalTunnel carves a horizontal tunnel.
func (g *Grid) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		g.SetPassable(x, y, true)
	}
}

// carveVerticalTunnel carves a vertical tunnel.
func (g *Grid) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.SetPassable(x, y, true)
	}
}

// RandomPointInRoom returns a random carved tile of the room, skipping its
// top row and left column when the room is wide enough.
func RandomPointInRoom(rng *rand.Rand, room Room) (int, int) {
	x := randRange(rng, min(room.X+1, room.X2()-1), room.X2()-1)
	y := randRange(rng, min(room.Y+1, room.Y2()-1), room.Y2()-1)
	return x, y
}
