package board

import (
	"github.com/pkg/errors"
	"github.com/tonobo/floodsnake/grid"
)

// ErrInvalidSnapshot is the cause of every error returned by New.
var ErrInvalidSnapshot = errors.New("invalid snapshot")

// SnakeData is a snake as it arrives from the caller. Body[0] is the head.
type SnakeData struct {
	ID     string
	Name   string
	Health int
	Body   []grid.Point
}

// Snapshot is the parsed per-turn input of the engine.
type Snapshot struct {
	Width  int
	Height int
	Turn   int
	You    SnakeData
	Snakes []SnakeData
	Food   []grid.Point
}

func (s Snapshot) validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Wrapf(ErrInvalidSnapshot, "board size %dx%d", s.Width, s.Height)
	}
	if s.You.ID == "" {
		return errors.Wrap(ErrInvalidSnapshot, "player has no id")
	}
	if len(s.You.Body) == 0 {
		return errors.Wrapf(ErrInvalidSnapshot, "player %s has no body", s.You.ID)
	}
	for i, snake := range s.Snakes {
		if len(snake.Body) == 0 {
			return errors.Wrapf(ErrInvalidSnapshot, "snake %d (%s) has no body", i, snake.ID)
		}
	}
	return nil
}

// New builds the board for one turn. The player's body is always treated as
// an obstacle, even when the snake list leaves the player out.
func New(s Snapshot) (*Board, error) {
	if err := s.validate(); err != nil {
		return nil, err
	}
	b := &Board{
		Width:     s.Width,
		Height:    s.Height,
		Turn:      s.Turn,
		Player:    newSnake(s.You),
		obstacles: make(map[grid.Point]struct{}),
		food:      make(map[grid.Point]struct{}, len(s.Food)),
		heads:     make(map[grid.Point]struct{}),
		tails:     make(map[grid.Point]struct{}),
		vacating:  make(map[grid.Point]struct{}),
	}

	snakes := s.Snakes
	if !containsSnake(snakes, s.You.ID) {
		snakes = append([]SnakeData{s.You}, snakes...)
	}
	for _, data := range snakes {
		snake := b.Player
		if data.ID != b.Player.ID {
			snake = newSnake(data)
			b.Enemies = append(b.Enemies, snake)
		}
		for _, p := range data.Body {
			b.obstacles[p] = struct{}{}
		}
		b.heads[snake.Head] = struct{}{}
		b.tails[snake.Tail] = struct{}{}
		if snake.Vacates() {
			b.vacating[snake.Tail] = struct{}{}
		}
	}

	for _, p := range s.Food {
		if _, dup := b.food[p]; dup {
			continue
		}
		b.food[p] = struct{}{}
		b.Food = append(b.Food, p)
	}
	b.fingerprint = fingerprint(s, snakes)
	return b, nil
}

func containsSnake(snakes []SnakeData, id string) bool {
	for _, s := range snakes {
		if s.ID == id {
			return true
		}
	}
	return false
}
