// Package world provides the tile grid, rooms and level generation.
package world

// Tile represents a single map tile.
type Tile struct {
	BlocksPath bool `json:"blocksPath"` // Walls block both movement and sight
	Explored   bool `json:"explored"`   // Set once the tile has been seen; never cleared
}

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return !t.BlocksPath
}

// IsTransparent returns true if light passes through the tile.
// Transparency is identical to walkability.
func (t Tile) IsTransparent() bool {
	return !t.BlocksPath
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	if t.BlocksPath {
		return '#'
	}
	return '.'
}
