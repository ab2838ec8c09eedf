package grid

import "github.com/joonazan/vec2"

// Direction is one of the four move tokens understood by the snake API.
type Direction string

const (
	Up    Direction = "up"
	Down  Direction = "down"
	Left  Direction = "left"
	Right Direction = "right"
)

// Directions is the canonical enumeration order. Move candidates are always
// built in this order so that ties resolve the same way every turn.
var Directions = [4]Direction{Up, Down, Left, Right}

var direction2Vector = map[Direction]vec2.Vector{
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Vector is the unit step of d. Unknown directions return the zero vector.
func (d Direction) Vector() vec2.Vector {
	return direction2Vector[d]
}

func (d Direction) String() string {
	return string(d)
}

// ParseDirection accepts the lower case API tokens.
func ParseDirection(s string) (Direction, bool) {
	d := Direction(s)
	_, ok := direction2Vector[d]
	return d, ok
}
