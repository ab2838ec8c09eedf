package board

import "github.com/tonobo/floodsnake/grid"

// Pocket summarises the region reachable from a cell. Heads and Tails count
// the distinct snake heads (other than the player's) and tails bordering it.
type Pocket struct {
	Area  int
	Heads int
	Tails int
}

// CountReachable returns how many cells are reachable from start through free
// cells, start included. A blocked start yields 0.
func (b *Board) CountReachable(start grid.Point) int {
	return len(b.ReachablePoints(start))
}

// ReachablePoints returns the region around start in visiting order.
func (b *Board) ReachablePoints(start grid.Point) []grid.Point {
	var region []grid.Point
	b.flood(start, func(p grid.Point) { region = append(region, p) }, nil)
	return region
}

// CountReachableWithSnakeData fills like CountReachable and also tallies the
// heads and tails found on the border of the region. A tail on the border is
// an exit that opens next turn, a head is a cell another snake contests.
func (b *Board) CountReachableWithSnakeData(start grid.Point) Pocket {
	var pocket Pocket
	heads := make(map[grid.Point]struct{})
	tails := make(map[grid.Point]struct{})
	b.flood(start,
		func(grid.Point) { pocket.Area++ },
		func(p grid.Point) {
			if b.IsHead(p) && p != b.Player.Head {
				if _, seen := heads[p]; !seen {
					heads[p] = struct{}{}
					pocket.Heads++
				}
			}
			if b.IsTail(p) {
				if _, seen := tails[p]; !seen {
					tails[p] = struct{}{}
					pocket.Tails++
				}
			}
		})
	return pocket
}

// flood runs a breadth first traversal from start. visit is called once per
// reachable cell, rejected (if set) for every blocked cell examined on the way.
func (b *Board) flood(start grid.Point, visit, rejected func(grid.Point)) {
	if b.Blocked(start) {
		return
	}
	visited := map[grid.Point]struct{}{start: {}}
	queue := []grid.Point{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		visit(current)
		for _, next := range current.SurroundingFour() {
			if _, seen := visited[next]; seen {
				continue
			}
			if b.Blocked(next) {
				if rejected != nil {
					rejected(next)
				}
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}
}
