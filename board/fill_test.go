package board

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tonobo/floodsnake/grid"
)

// splitBoard is a 5x5 board cut in two by an enemy lying along column 2 with
// its head at the top and tail at the bottom. The player sits in the right
// half, head at (4,4), tail at (4,3).
func splitBoard(t *testing.T) *Board {
	me := snakeData("me", pt(4, 4), pt(4, 3))
	wall := snakeData("wall", pt(2, 0), pt(2, 1), pt(2, 2), pt(2, 3), pt(2, 4))
	return mustBoard(t, Snapshot{Width: 5, Height: 5, You: me, Snakes: []SnakeData{me, wall}})
}

func TestCountReachableOpenBoard(t *testing.T) {
	b := soloBoard(t)
	require.Equal(t, 11*11-2, b.CountReachable(pt(5, 4)))
	require.Equal(t, 11*11-2, b.CountReachable(pt(0, 0)))
}

func TestCountReachableBlockedStart(t *testing.T) {
	b := soloBoard(t)
	require.Zero(t, b.CountReachable(pt(5, 5)))
	require.Zero(t, b.CountReachable(pt(4, 5)))
	require.Zero(t, b.CountReachable(pt(-1, 3)))
	require.Zero(t, b.CountReachable(pt(3, 11)))
}

func TestCountReachableAtLeastItself(t *testing.T) {
	b := splitBoard(t)
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			p := pt(x, y)
			if b.IsOccupied(p) {
				require.Zero(t, b.CountReachable(p), "%v", p)
				continue
			}
			require.GreaterOrEqual(t, b.CountReachable(p), 1, "%v", p)
		}
	}
}

func TestCountReachableSplitBoard(t *testing.T) {
	b := splitBoard(t)
	require.Equal(t, 10, b.CountReachable(pt(0, 0)))
	require.Equal(t, 8, b.CountReachable(pt(3, 0)))
}

func TestCountReachableSingleCellPocket(t *testing.T) {
	me := snakeData("me", pt(1, 0), pt(1, 1), pt(0, 1))
	b := mustBoard(t, Snapshot{Width: 3, Height: 3, You: me})
	require.Equal(t, 1, b.CountReachable(pt(0, 0)))
}

func TestReachablePoints(t *testing.T) {
	me := snakeData("me", pt(1, 0), pt(1, 1), pt(0, 1))
	b := mustBoard(t, Snapshot{Width: 3, Height: 3, You: me})
	require.Equal(t, []grid.Point{pt(0, 0)}, b.ReachablePoints(pt(0, 0)))

	region := b.ReachablePoints(pt(2, 0))
	require.Equal(t, []grid.Point{pt(2, 0), pt(2, 1), pt(2, 2), pt(1, 2), pt(0, 2)}, region)
	require.Nil(t, b.ReachablePoints(pt(1, 1)))
}

func TestCountReachableWithSnakeData(t *testing.T) {
	b := splitBoard(t)

	// left pocket borders the wall's head and tail
	require.Equal(t, Pocket{Area: 10, Heads: 1, Tails: 1}, b.CountReachableWithSnakeData(pt(0, 0)))

	// right pocket also borders the player's own tail; the player's head
	// never counts
	require.Equal(t, Pocket{Area: 8, Heads: 1, Tails: 2}, b.CountReachableWithSnakeData(pt(3, 0)))

	require.Equal(t, Pocket{}, b.CountReachableWithSnakeData(pt(2, 4)))
	require.Equal(t, Pocket{}, b.CountReachableWithSnakeData(pt(5, 0)))
}

func TestCountReachableWithSnakeDataMatchesCount(t *testing.T) {
	b := splitBoard(t)
	for x := 0; x < b.Width; x++ {
		for y := 0; y < b.Height; y++ {
			p := pt(x, y)
			require.Equal(t, b.CountReachable(p), b.CountReachableWithSnakeData(p).Area, "%v", p)
		}
	}
}
