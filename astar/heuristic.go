package astar

import "github.com/katalvlaran/astargrid/grid"

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|. It is admissible and
// consistent on a 4-directional unit-cost grid.
func Manhattan(a, b grid.Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Zero always returns 0, which turns A* into uniform-cost search.
func Zero(_, _ grid.Position) int { return 0 }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
