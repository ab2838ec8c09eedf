package policy

import (
	"github.com/tonobo/floodsnake/board"
	"github.com/tonobo/floodsnake/grid"
)

// Candidate is one valid move together with the pocket it leads into.
type Candidate struct {
	Direction grid.Direction
	Target    grid.Point
	Pocket    board.Pocket
}

// Candidates sorts best pocket first.
type Candidates []Candidate

func (c Candidates) Len() int           { return len(c) }
func (c Candidates) Less(i, j int) bool { return better(c[i].Pocket, c[j].Pocket) }
func (c Candidates) Swap(i, j int)      { c[i], c[j] = c[j], c[i] }

// better ranks pockets by, in order: more bordering tails, tails outnumbering
// heads, any bordering head, fewer heads, then larger area.
func better(a, b board.Pocket) bool {
	if a.Tails != b.Tails {
		return a.Tails > b.Tails
	}
	if x, y := a.Tails > a.Heads, b.Tails > b.Heads; x != y {
		return x
	}
	if x, y := a.Heads > 0, b.Heads > 0; x != y {
		return x
	}
	if a.Heads != b.Heads {
		return a.Heads < b.Heads
	}
	return a.Area > b.Area
}

func (c Candidates) directions() []grid.Direction {
	res := make([]grid.Direction, len(c))
	for i, cand := range c {
		res[i] = cand.Direction
	}
	return res
}
