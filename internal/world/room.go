package world

// Room represents a rectangular room on the map.
// Rooms are immutable once accepted by the generator.
type Room struct {
	X, Y          int // Top-left corner position
	Width, Height int // Dimensions of the room
}

// NewRoom creates a room with its top-left corner at (x, y).
func NewRoom(x, y, width, height int) Room {
	return Room{X: x, Y: y, Width: width, Height: height}
}

// X2 returns the exclusive right edge of the room.
func (r Room) X2() int { return r.X + r.Width }

// Y2 returns the exclusive bottom edge of the room.
func (r Room) Y2() int { return r.Y + r.Height }

// Center returns the center coordinates of the room, truncated to integers.
func (r Room) Center() (int, int) {
	return (r.X + r.X2()) / 2, (r.Y + r.Y2()) / 2
}

// Contains returns true if the given point is inside the carved interior.
func (r Room) Contains(x, y int) bool {
	return x >= r.X && x < r.X2() && y >= r.Y && y < r.Y2()
}

// Intersects returns true if this room's bounding box touches or overlaps
// another room's. Edges are inclusive, so rooms sharing a border intersect.
func (r Room) Intersects(other Room) bool {
	return r.X <= other.X2() &&
		r.X2() >= other.X &&
		r.Y <= other.Y2() &&
		r.Y2() >= other.Y
}
