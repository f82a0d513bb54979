package game

import (
	"context"

	"github.com/samdwyer/lampdelve/internal/world"
)

// TargetRequest constrains a tile selection for a targeted effect.
type TargetRequest struct {
	Origin          *world.Point // Path start; nil allows any tile
	MaxRange        int          // Path length cap; 0 is unlimited
	Radius          int          // Area of effect around the selected tile, for display
	PenetrateWalls  bool         // Path continues through walls
	PierceCreatures bool         // Path continues through creatures
}

// TileSelector asks the player to pick a tile. It returns false if the
// player declines. Turn progression waits until it returns.
type TileSelector interface {
	SelectTile(ctx context.Context, req TargetRequest) (world.Point, bool)
}

// TargetPath returns the tiles from the origin toward cursor that the
// request allows, ending at the tile that would be selected. With no
// origin the path is the cursor itself. The cursor is clamped to the map.
func (s *Session) TargetPath(req TargetRequest, cursor world.Point) []world.Point {
	cursor = s.clampToMap(cursor)
	if req.Origin == nil {
		return []world.Point{cursor}
	}

	line := world.Line(*req.Origin, cursor)
	path := make([]world.Point, 0, len(line))
	for i, p := range line {
		path = append(path, p)
		if req.MaxRange > 0 && i == req.MaxRange-1 {
			break
		}
		if !req.PenetrateWalls && !s.level.Grid.IsPassable(p.X, p.Y) {
			break
		}
		if !req.PierceCreatures && s.CreatureAt(p.X, p.Y, nil) != nil {
			break
		}
	}
	return path
}

// TargetArea returns the tiles an effect centered on target would cover.
func (s *Session) TargetArea(req TargetRequest, target world.Point) []world.Point {
	if req.Radius <= 0 {
		return []world.Point{target}
	}
	return world.Square(target, req.Radius)
}

// selectTarget runs the tile selector and snaps its answer to the end of
// the allowed path.
func (s *Session) selectTarget(ctx context.Context, req TargetRequest) (world.Point, bool) {
	if s.selector == nil {
		return world.Point{}, false
	}
	p, ok := s.selector.SelectTile(ctx, req)
	if !ok {
		return world.Point{}, false
	}
	path := s.TargetPath(req, p)
	return path[len(path)-1], true
}

func (s *Session) clampToMap(p world.Point) world.Point {
	g := s.level.Grid
	p.X = max(0, min(p.X, g.Width-1))
	p.Y = max(0, min(p.Y, g.Height-1))
	return p
}
