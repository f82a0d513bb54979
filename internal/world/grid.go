package world

// Grid is the tile map of one level.
type Grid struct {
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Tiles  [][]Tile `json:"tiles"` // Indexed [y][x]
}

// NewGrid creates a grid with every tile blocked.
func NewGrid(width, height int) *Grid {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = Tile{BlocksPath: true}
		}
	}

	return &Grid{
		Width:  width,
		Height: height,
		Tiles:  tiles,
	}
}

// InBounds reports whether (x, y) lies on the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// IsPassable returns true if the given position can be walked on.
// Positions off the grid are never passable.
func (g *Grid) IsPassable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.Tiles[y][x].IsPassable()
}

// GetTile returns the tile at the given position.
func (g *Grid) GetTile(x, y int) Tile {
	if !g.InBounds(x, y) {
		return Tile{BlocksPath: true}
	}
	return g.Tiles[y][x]
}

// SetPassable carves or fills a single tile.
func (g *Grid) SetPassable(x, y int, passable bool) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[y][x].BlocksPath = !passable
}

// MarkExplored flags a tile as explored. Only the visibility engine calls
// this; there is deliberately no way to clear the flag.
func (g *Grid) MarkExplored(x, y int) {
	if !g.InBounds(x, y) {
		return
	}
	g.Tiles[y][x].Explored = true
}

// IsExplored reports whether the tile has ever been seen.
func (g *Grid) IsExplored(x, y int) bool {
	return g.InBounds(x, y) && g.Tiles[y][x].Explored
}
