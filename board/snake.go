package board

import "github.com/tonobo/floodsnake/grid"

// Snake is one participant of the current turn.
type Snake struct {
	ID     string
	Name   string
	Health int
	Head   grid.Point
	// Body excludes the head and runs from the neck to the tail.
	Body []grid.Point
	Tail grid.Point
	// Length counts every segment, head included.
	Length int

	stacked bool
}

func newSnake(data SnakeData) *Snake {
	segments := data.Body
	s := &Snake{
		ID:     data.ID,
		Name:   data.Name,
		Health: data.Health,
		Head:   segments[0],
		Body:   append([]grid.Point(nil), segments[1:]...),
		Tail:   segments[len(segments)-1],
		Length: len(segments),
	}
	if n := len(segments); n > 1 && segments[n-1] == segments[n-2] {
		s.stacked = true
	}
	return s
}

// Vacates reports whether the tail cell frees up on the next turn. A tail
// stacked on the segment before it (just fed, or the opening turns) stays put.
func (s *Snake) Vacates() bool {
	return s.Length > 1 && !s.stacked
}

// Segments returns head and body in order.
func (s *Snake) Segments() []grid.Point {
	return append([]grid.Point{s.Head}, s.Body...)
}
