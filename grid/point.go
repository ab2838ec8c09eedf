// Package grid holds the geometry shared by the board and the move policy:
// integer points, the four cardinal directions and the helpers that move
// between them.
//
// Coordinates follow the snake API: (0,0) is the top left cell, x grows to
// the right and y grows downwards, so Up decreases Y.
package grid // import "github.com/tonobo/floodsnake/grid"

import (
	"fmt"

	"github.com/joonazan/vec2"
)

// Point is a cell on the board. It is comparable and used directly as a map
// key.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (p Point) Vec() vec2.Vector {
	return vec2.Vector{X: float64(p.X), Y: float64(p.Y)}
}

func (p Point) Left() Point  { return Point{X: p.X - 1, Y: p.Y} }
func (p Point) Right() Point { return Point{X: p.X + 1, Y: p.Y} }
func (p Point) Up() Point    { return Point{X: p.X, Y: p.Y - 1} }
func (p Point) Down() Point  { return Point{X: p.X, Y: p.Y + 1} }

// SurroundingFour returns the neighbours in a fixed order: left, right, up,
// down. Traversals rely on this order being stable.
func (p Point) SurroundingFour() [4]Point {
	return [4]Point{p.Left(), p.Right(), p.Up(), p.Down()}
}

// Move returns the neighbour in direction d. Unknown directions return p.
func (p Point) Move(d Direction) Point {
	switch d {
	case Up:
		return p.Up()
	case Down:
		return p.Down()
	case Left:
		return p.Left()
	case Right:
		return p.Right()
	}
	return p
}

func (p Point) Manhattan(q Point) int {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Closest returns the member of points nearest to p by Manhattan distance.
// The first one wins ties. ok is false for an empty slice.
func (p Point) Closest(points []Point) (closest Point, ok bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	closest = points[0]
	for _, q := range points[1:] {
		if p.Manhattan(q) < p.Manhattan(closest) {
			closest = q
		}
	}
	return closest, true
}

// DirectionOf returns roughly which way to is from p: the axis with the larger
// absolute delta wins and horizontal wins ties. For p == to it returns Left,
// so a degenerate path still yields a move.
func (p Point) DirectionOf(to Point) Direction {
	delta := to.Vec().Minus(p.Vec())
	switch {
	case delta.X == 0 && delta.Y == 0:
		return Left
	case absf(delta.X) >= absf(delta.Y):
		if delta.X > 0 {
			return Right
		}
		return Left
	case delta.Y > 0:
		return Down
	default:
		return Up
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
