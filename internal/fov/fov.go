// Package fov computes which tiles are visible from a point and records
// everything ever seen as explored.
package fov

import (
	"fmt"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"

	"github.com/samdwyer/lampdelve/internal/world"
)

// Algorithm selects the visibility computation.
type Algorithm int

const (
	// AlgorithmBasic follows light rays outward from the origin, each ray
	// stopping at the first wall (rl.FOV.VisionMap).
	AlgorithmBasic Algorithm = iota
	// AlgorithmShadowcast uses symmetric shadowcasting
	// (rl.FOV.SSCVisionMap).
	AlgorithmShadowcast
)

// String returns the algorithm's configuration name.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmBasic:
		return "basic"
	case AlgorithmShadowcast:
		return "shadowcast"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "basic", "":
		*a = AlgorithmBasic
	case "shadowcast", "shadow":
		*a = AlgorithmShadowcast
	default:
		return fmt.Errorf("unknown fov algorithm %q", string(text))
	}
	return nil
}

// Map is the visibility index for one grid.
type Map struct {
	grid        *world.Grid
	width       int
	height      int
	transparent []bool
	visible     []bool
	dirty       bool
	fov         *rl.FOV
	lt          lighter
}

// Build indexes per-tile transparency for the grid. A new map starts dirty
// so the first Refresh always computes.
func Build(grid *world.Grid) *Map {
	m := &Map{
		grid:        grid,
		width:       grid.Width,
		height:      grid.Height,
		transparent: make([]bool, grid.Width*grid.Height),
		visible:     make([]bool, grid.Width*grid.Height),
		dirty:       true,
		fov:         rl.NewFOV(gruid.NewRange(0, 0, grid.Width, grid.Height)),
	}
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			m.transparent[m.index(x, y)] = grid.Tiles[y][x].IsTransparent()
		}
	}
	m.lt.m = m
	return m
}

// MarkDirty requests a recompute on the next Refresh.
func (m *Map) MarkDirty() {
	m.dirty = true
}

// Dirty reports whether a recompute is pending.
func (m *Map) Dirty() bool {
	return m.dirty
}

// Refresh recomputes visibility only when the map is dirty, then clears the
// flag. It returns true when a computation ran.
func (m *Map) Refresh(origin world.Point, radius int, lightWalls bool, algo Algorithm) bool {
	if !m.dirty {
		return false
	}
	m.dirty = false
	m.Compute(origin, radius, lightWalls, algo)
	return true
}

// Compute replaces the visible set with the tiles in line of sight of
// origin within the Euclidean radius (radius <= 0 means unlimited), and
// marks every visible tile explored on the grid.
func (m *Map) Compute(origin world.Point, radius int, lightWalls bool, algo Algorithm) {
	clear(m.visible)
	if !m.inBounds(origin.X, origin.Y) {
		return
	}

	reach := radius
	limit := radius * radius
	if radius <= 0 {
		reach = m.width + m.height
		limit = -1
	}

	src := gruid.Point{X: origin.X, Y: origin.Y}
	light := func(p gruid.Point) {
		if !m.inBounds(p.X, p.Y) || !withinLimit(p.X-origin.X, p.Y-origin.Y, limit) {
			return
		}
		idx := m.index(p.X, p.Y)
		if !m.transparent[idx] && !lightWalls && p != src {
			return
		}
		m.visible[idx] = true
	}

	switch algo {
	case AlgorithmShadowcast:
		for _, p := range m.fov.SSCVisionMap(src, reach, m.passable, true) {
			light(p)
		}
	default:
		m.lt.max = reach
		for _, n := range m.fov.VisionMap(&m.lt, src) {
			if n.Cost <= reach {
				light(n.P)
			}
		}
	}
	m.visible[m.index(origin.X, origin.Y)] = true

	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.visible[m.index(x, y)] {
				m.grid.MarkExplored(x, y)
			}
		}
	}
}

// IsVisible reports whether (x, y) was visible in the last computation.
func (m *Map) IsVisible(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.visible[m.index(x, y)]
}

// IsTransparent reports whether light passes through (x, y).
func (m *Map) IsTransparent(x, y int) bool {
	if !m.inBounds(x, y) {
		return false
	}
	return m.transparent[m.index(x, y)]
}

// VisibleCount returns the number of currently visible tiles.
func (m *Map) VisibleCount() int {
	n := 0
	for _, v := range m.visible {
		if v {
			n++
		}
	}
	return n
}

func (m *Map) inBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

func (m *Map) index(x, y int) int {
	return y*m.width + x
}

func (m *Map) passable(p gruid.Point) bool {
	return m.IsTransparent(p.X, p.Y)
}

// lighter prices one step of a light ray for rl.FOV. Light leaving a wall
// costs more than any reach, so nothing behind it is lit.
type lighter struct {
	m   *Map
	max int
}

func (lt *lighter) Cost(src, from, _ gruid.Point) int {
	if from == src || lt.m.IsTransparent(from.X, from.Y) {
		return 1
	}
	return lt.max + 1
}

func (lt *lighter) MaxCost(gruid.Point) int {
	return lt.max
}

// withinLimit reports whether (dx, dy) lies inside the squared radius.
func withinLimit(dx, dy, limit int) bool {
	return limit < 0 || dx*dx+dy*dy <= limit
}
