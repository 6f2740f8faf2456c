// Package types holds the grid primitives shared by the simulation and the
// renderers: cells, directions and toroidal coordinate arithmetic.
package types

// Point is a cell on the grid.
type Point struct {
	X, Y int
}

// Color is an opaque display attribute carried by snakes and food. The
// simulation never inspects it.
type Color struct {
	R, G, B uint8
}

// Direction is one of the four cardinal movement directions.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a fixed order.
var Directions = [4]Direction{Up, Down, Left, Right}

var deltas = [4]Point{
	Up:    {0, -1},
	Down:  {0, 1},
	Left:  {-1, 0},
	Right: {1, 0},
}

var opposites = [4]Direction{
	Up:    Down,
	Down:  Up,
	Left:  Right,
	Right: Left,
}

// Delta returns the unit step for the direction.
func (d Direction) Delta() Point {
	return deltas[d]
}

// Opposite returns the reversing direction. Snakes may never turn this way.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Grid describes the playfield dimensions. The topology is a torus: stepping
// off one edge wraps to the opposite edge, there are no walls.
type Grid struct {
	Width  int
	Height int
}

// Wrap applies one step in the given direction with wraparound on both axes.
func (g Grid) Wrap(p Point, d Direction) Point {
	delta := d.Delta()
	return Point{
		X: mod(p.X+delta.X, g.Width),
		Y: mod(p.Y+delta.Y, g.Height),
	}
}

// Distance is the Chebyshev distance between two cells on the torus: each
// axis takes the shorter way around, the result is the larger of the two.
func (g Grid) Distance(a, b Point) int {
	dx := abs(a.X - b.X)
	if g.Width-dx < dx {
		dx = g.Width - dx
	}
	dy := abs(a.Y - b.Y)
	if g.Height-dy < dy {
		dy = g.Height - dy
	}
	if dx > dy {
		return dx
	}
	return dy
}

func mod(v, size int) int {
	v %= size
	if v < 0 {
		v += size
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
