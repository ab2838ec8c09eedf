package policy

import (
	"math/rand"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/tonobo/floodsnake/board"
	"github.com/tonobo/floodsnake/grid"
)

// Turn evaluates moves for the player on one board. Results are cached, so a
// Turn must not outlive its board.
type Turn struct {
	board *board.Board
	walk  WalkMode
	rng   *rand.Rand
	log   log.FieldLogger

	candidates Candidates
	smart      []grid.Direction
	evaluated  bool
}

// ValidMoves lists the directions that do not run into a snake or a wall, in
// canonical order.
func (t *Turn) ValidMoves() []grid.Direction {
	return t.evaluate().directions()
}

// SmartMoves keeps the valid moves that stay out of a same-or-longer enemy's
// reach and lead into a pocket ranked as good as the best one available.
func (t *Turn) SmartMoves() []grid.Direction {
	t.evaluate()
	return t.smart
}

func (t *Turn) IsSmartMove(d grid.Direction) bool {
	for _, smart := range t.SmartMoves() {
		if smart == d {
			return true
		}
	}
	return false
}

// Candidates returns the valid moves with their pockets, best first.
func (t *Turn) Candidates() Candidates {
	ranked := append(Candidates(nil), t.evaluate()...)
	sort.Stable(ranked)
	return ranked
}

func (t *Turn) evaluate() Candidates {
	if t.evaluated {
		return t.candidates
	}
	t.evaluated = true

	head := t.board.Player.Head
	for _, d := range grid.Directions {
		next := head.Move(d)
		if t.board.Blocked(next) {
			continue
		}
		t.candidates = append(t.candidates, Candidate{
			Direction: d,
			Target:    next,
			Pocket:    t.board.CountReachableWithSnakeData(next),
		})
	}
	if len(t.candidates) == 0 {
		return t.candidates
	}

	best := t.candidates[0].Pocket
	for _, c := range t.candidates[1:] {
		if better(c.Pocket, best) {
			best = c.Pocket
		}
	}
	for _, c := range t.candidates {
		fields := log.Fields{
			"move":      c.Direction,
			"area":      c.Pocket.Area,
			"heads":     c.Pocket.Heads,
			"tails":     c.Pocket.Tails,
			"food_near": t.board.FoodAround(c.Target),
		}
		if t.board.IsThreatenedByEnemy(c.Target) {
			t.log.WithFields(fields).Debug("threatened by enemy")
			continue
		}
		if c.Pocket != best {
			t.log.WithFields(fields).Debug("worse pocket")
			continue
		}
		t.smart = append(t.smart, c.Direction)
	}
	return t.candidates
}

// EatClosestFood heads for the food with the shortest path. Ties go to the
// food listed first. ok is false when no food can be reached.
func (t *Turn) EatClosestFood() (grid.Direction, bool) {
	head := t.board.Player.Head
	distances := t.board.Distances(head, t.board.Food)
	var (
		closest grid.Point
		best    = -1
	)
	for _, food := range t.board.Food {
		if d, found := distances[food]; found && (best < 0 || d < best) {
			closest, best = food, d
		}
	}
	if best < 0 {
		return "", false
	}
	return t.MoveTowards(closest)
}

// ChaseTail heads for the player's own tail, which frees up as the snake
// moves. ok is false when there is no path to it.
func (t *Turn) ChaseTail() (grid.Direction, bool) {
	player := t.board.Player
	if player.Length < 2 {
		return "", false
	}
	return t.follow(t.board.PathToTail(player.Head, player.Tail), player.Tail)
}

// MoveTowards returns the first step of the shortest path to goal.
func (t *Turn) MoveTowards(goal grid.Point) (grid.Direction, bool) {
	return t.follow(t.board.ShortestPath(t.board.Player.Head, goal), goal)
}

func (t *Turn) follow(path []grid.Point, goal grid.Point) (grid.Direction, bool) {
	if len(path) == 0 {
		t.log.WithField("goal", goal.String()).Debug("no path found")
		return "", false
	}
	return t.board.Player.Head.DirectionOf(path[0]), true
}

// SmartWalk picks one of the smart moves.
func (t *Turn) SmartWalk() (grid.Direction, bool) {
	return t.pick(t.SmartMoves())
}

// RandomWalk picks one of the valid moves.
func (t *Turn) RandomWalk() (grid.Direction, bool) {
	return t.pick(t.ValidMoves())
}

func (t *Turn) pick(moves []grid.Direction) (grid.Direction, bool) {
	if len(moves) == 0 {
		return "", false
	}
	if t.walk == WalkFirst || t.rng == nil {
		return moves[0], true
	}
	return moves[t.rng.Intn(len(moves))], true
}
