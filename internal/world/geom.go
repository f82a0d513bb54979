package world

import "math"

// Point is a map coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for constructing a Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Line returns the tiles on a Bresenham line from a to b, excluding a and
// including b. A zero-length line returns just the start point.
func Line(a, b Point) []Point {
	if a == b {
		return []Point{a}
	}

	dx := abs(b.X - a.X)
	dy := -abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}

	points := make([]Point, 0, max(dx, -dy))
	x, y := a.X, a.Y
	e := dx + dy
	for x != b.X || y != b.Y {
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// Square returns every tile within a square of the given radius around c,
// c included. Tiles may lie outside the map; callers bounds-check.
func Square(c Point, radius int) []Point {
	if radius < 0 {
		return nil
	}
	side := 2*radius + 1
	points := make([]Point, 0, side*side)
	for x := c.X - radius; x <= c.X+radius; x++ {
		for y := c.Y - radius; y <= c.Y+radius; y++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
