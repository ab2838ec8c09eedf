package board

import (
	"container/heap"

	"github.com/tonobo/floodsnake/grid"
)

// ShortestPath returns an A* path from start to goal, excluding start and
// including goal. It is empty when start == goal or no path exists, and never
// contains an occupied or off-board cell.
func (b *Board) ShortestPath(start, goal grid.Point) []grid.Point {
	return b.aStar(start, goal, false)
}

// PathToTail is ShortestPath for a tail that is about to move: the last step
// may enter tail if some snake's tail there vacates next turn.
func (b *Board) PathToTail(start, tail grid.Point) []grid.Point {
	_, vacates := b.vacating[tail]
	return b.aStar(start, tail, vacates)
}

// Distances maps every point with a path from start to that path's length.
// Unreachable points are left out.
func (b *Board) Distances(start grid.Point, points []grid.Point) map[grid.Point]int {
	distances := make(map[grid.Point]int, len(points))
	for _, p := range points {
		if path := b.ShortestPath(start, p); len(path) > 0 {
			distances[p] = len(path)
		}
	}
	return distances
}

type node struct {
	point grid.Point
	f     int
	seq   int
}

// openSet orders by f, then by insertion sequence so that the first node
// pushed wins ties.
type openSet []node

func (o openSet) Len() int { return len(o) }
func (o openSet) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	return o[i].seq < o[j].seq
}
func (o openSet) Swap(i, j int)       { o[i], o[j] = o[j], o[i] }
func (o *openSet) Push(x interface{}) { *o = append(*o, x.(node)) }
func (o *openSet) Pop() interface{} {
	old := *o
	n := old[len(old)-1]
	*o = old[:len(old)-1]
	return n
}

func (b *Board) aStar(start, goal grid.Point, enterGoal bool) []grid.Point {
	if start == goal || b.IsOutside(goal) {
		return nil
	}
	gScore := map[grid.Point]int{start: 0}
	cameFrom := make(map[grid.Point]grid.Point)
	closed := make(map[grid.Point]struct{})
	open := &openSet{{point: start, f: start.Manhattan(goal)}}
	seq := 1

	for open.Len() > 0 {
		current := heap.Pop(open).(node)
		if _, done := closed[current.point]; done {
			// stale entry left behind by a later improvement
			continue
		}
		if current.point == goal {
			return reconstructPath(cameFrom, start, goal)
		}
		closed[current.point] = struct{}{}

		for _, next := range current.point.SurroundingFour() {
			if _, done := closed[next]; done {
				continue
			}
			if b.Blocked(next) && !(enterGoal && next == goal) {
				continue
			}
			tentative := gScore[current.point] + 1
			if g, found := gScore[next]; found && tentative >= g {
				continue
			}
			cameFrom[next] = current.point
			gScore[next] = tentative
			heap.Push(open, node{point: next, f: tentative + next.Manhattan(goal), seq: seq})
			seq++
		}
	}
	return nil
}

func reconstructPath(cameFrom map[grid.Point]grid.Point, start, goal grid.Point) []grid.Point {
	var reversed []grid.Point
	for current := goal; current != start; current = cameFrom[current] {
		reversed = append(reversed, current)
	}
	path := make([]grid.Point, len(reversed))
	for i, p := range reversed {
		path[len(reversed)-1-i] = p
	}
	return path
}
