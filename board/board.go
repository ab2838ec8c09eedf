// Package board models a single turn of the game: the grid extent, every
// snake body as an obstacle, food, and the head and tail cells that the
// reachability engine needs to tell sealed pockets from ones about to open.
//
// A Board is built once per request by New and is read-only afterwards, so it
// is safe to share between goroutines.
package board // import "github.com/tonobo/floodsnake/board"

import (
	"encoding/binary"

	"github.com/tonobo/floodsnake/grid"
	"github.com/zeebo/xxh3"
)

type Board struct {
	Width  int
	Height int
	Turn   int
	// Food in the order the caller supplied it, without duplicates.
	Food    []grid.Point
	Player  *Snake
	Enemies []*Snake

	obstacles   map[grid.Point]struct{}
	food        map[grid.Point]struct{}
	heads       map[grid.Point]struct{}
	tails       map[grid.Point]struct{}
	vacating    map[grid.Point]struct{}
	fingerprint uint64
}

// IsOutside reports whether p lies off the board.
func (b *Board) IsOutside(p grid.Point) bool {
	return p.X < 0 || p.Y < 0 || p.X >= b.Width || p.Y >= b.Height
}

// IsOccupied reports whether a snake segment sits on p.
func (b *Board) IsOccupied(p grid.Point) bool {
	_, found := b.obstacles[p]
	return found
}

// Blocked is true for cells a snake cannot enter this turn.
func (b *Board) Blocked(p grid.Point) bool {
	return b.IsOutside(p) || b.IsOccupied(p)
}

func (b *Board) IsHead(p grid.Point) bool {
	_, found := b.heads[p]
	return found
}

func (b *Board) IsTail(p grid.Point) bool {
	_, found := b.tails[p]
	return found
}

func (b *Board) HasFood(p grid.Point) bool {
	_, found := b.food[p]
	return found
}

// NeighborsOf returns the free in-bounds cells around p, in SurroundingFour
// order. Both flood fill and A* expand through it.
func (b *Board) NeighborsOf(p grid.Point) []grid.Point {
	res := make([]grid.Point, 0, 4)
	for _, next := range p.SurroundingFour() {
		if b.Blocked(next) {
			continue
		}
		res = append(res, next)
	}
	return res
}

// FoodAround reports whether any cell next to p holds food.
func (b *Board) FoodAround(p grid.Point) bool {
	for _, next := range p.SurroundingFour() {
		if b.HasFood(next) {
			return true
		}
	}
	return false
}

// IsThreatenedByEnemy is true when an enemy at least as long as the player has
// its head next to p. Only proximity counts; the enemy's move is not simulated.
func (b *Board) IsThreatenedByEnemy(p grid.Point) bool {
	for _, enemy := range b.Enemies {
		if enemy.Length < b.Player.Length {
			continue
		}
		for _, strike := range enemy.Head.SurroundingFour() {
			if strike == p {
				return true
			}
		}
	}
	return false
}

// Fingerprint is a stable hash of the snapshot the board was built from.
func (b *Board) Fingerprint() uint64 {
	return b.fingerprint
}

func fingerprint(s Snapshot, snakes []SnakeData) uint64 {
	buf := make([]byte, 0, 64)
	putInt := func(v int) {
		buf = binary.LittleEndian.AppendUint64(buf, uint64(int64(v)))
	}
	putPoints := func(points []grid.Point) {
		putInt(len(points))
		for _, p := range points {
			putInt(p.X)
			putInt(p.Y)
		}
	}
	putInt(s.Width)
	putInt(s.Height)
	putInt(s.Turn)
	buf = append(buf, s.You.ID...)
	putPoints(s.Food)
	for _, snake := range snakes {
		buf = append(buf, snake.ID...)
		putInt(snake.Health)
		putPoints(snake.Body)
	}
	return xxh3.Hash(buf)
}
