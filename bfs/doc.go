// Package bfs computes breadth-first hop distances over a grid.Grid.
//
// Adjacency is read from live cell states (4-directional, walls excluded),
// never from the cached neighbor lists, so results do not depend on
// grid.Cell.RecomputeNeighbors. The astar tests use it as the reference for
// shortest path lengths.
//
// Neighbors are enqueued in grid order (down, up, right, left), so Order is
// reproducible.
//
// Complexity: O(V) time and memory for V = N² cells.
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartNotInGrid   if start is nil or not a current cell of the grid.
//   - ErrStartIsWall      if start is a wall.
//   - ctx.Err()           on cancellation.
package bfs
