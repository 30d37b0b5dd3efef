package bfs

import (
	"context"

	"github.com/katalvlaran/astargrid/grid"
)

// BFS floods g from start and returns hop distances to every reachable cell.
// ctx is checked once per dequeued cell; cancellation returns ctx.Err() with
// the partial result.
//
// Complexity: O(V) time and memory, V = N².
func BFS(ctx context.Context, g *grid.Grid, start *grid.Cell) (*Result, error) {
	// 1) Validate input
	switch {
	case g == nil:
		return nil, ErrGridNil
	case !g.Contains(start):
		return nil, ErrStartNotInGrid
	case start.IsWall():
		return nil, ErrStartIsWall
	}

	// 2) Seed with start at depth 0
	n := g.Size() * g.Size()
	res := &Result{
		Order:  make([]grid.Position, 0, n),
		Depth:  make(map[grid.Position]int, n),
		Parent: make(map[grid.Position]grid.Position, n),
	}
	queue := make([]grid.Position, 0, n)
	queue = append(queue, start.Position())
	res.Depth[start.Position()] = 0

	// 3) Drain the queue in FIFO order
	for head := 0; head < len(queue); head++ {
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		default:
		}

		cur := queue[head]
		res.Order = append(res.Order, cur)
		next := res.Depth[cur] + 1
		for _, d := range grid.Offsets() {
			nb, ok := g.At(cur.Row+d[0], cur.Col+d[1])
			if !ok || nb.IsWall() {
				continue
			}
			p := nb.Position()
			if _, seen := res.Depth[p]; seen {
				continue
			}
			res.Depth[p] = next
			res.Parent[p] = cur
			queue = append(queue, p)
		}
	}
	return res, nil
}
