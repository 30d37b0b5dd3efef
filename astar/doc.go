// Package astar implements A* shortest-path search over a grid.Grid with
// unit edge costs and 4-directional adjacency.
//
// The search explores cells best-first by fScore = gScore + h, breaking ties
// by insertion order, and writes its progress back onto the grid: discovered
// cells become Open, expanded cells become Closed, and on success the cells
// between start and end become Path. An optional step hook is called after
// every expansion and every path marking, so a front end can redraw the grid
// and watch the frontier move.
//
// Complexity:
//
//   - Time:  O(E log V), V = N² cells, E ≤ 4V edges.
//   - Space: O(V) for gScore, fScore, cameFrom, the open set and its membership set.
//
// Notes on implementation choices:
//
//   - The open set is a binary min-heap keyed on (fScore, seq). seq is a
//     strictly increasing counter handed out on every push, so equal fScores
//     pop in FIFO order and no ordering on cells is ever needed.
//   - There is no decrease-key. A cell is pushed once when first discovered;
//     a membership set suppresses re-pushes while it is pending, and its heap
//     entry keeps the priority it was pushed with.
//   - Unit edge cost and the Manhattan heuristic keep h consistent, which is
//     what makes the first pop of end optimal.
//   - All bookkeeping is local to one call; nothing is stored on cells besides
//     their State.
//
// Preconditions (errors wrap ErrPrecondition and one of):
//
//   - ErrNilGrid, ErrNilCell: missing arguments.
//   - ErrForeignCell: start or end is not a current cell of the grid.
//   - ErrSameCell: start == end.
//   - ErrStaleNeighbors: neighbor lists were not recomputed after the last wall edit.
//
// "No path" is not an error: Search returns false and Run returns a Result
// with Found == false.
//
// Example usage:
//
//	g.RecomputeNeighbors()
//	found, err := astar.Search(g, start, end,
//	    astar.WithOnStep(redraw),
//	    astar.WithContext(ctx),
//	)
package astar
