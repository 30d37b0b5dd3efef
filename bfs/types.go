package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/astargrid/grid"
)

// Sentinel errors for invalid input.
var (
	// ErrGridNil is returned for a nil grid.
	ErrGridNil = errors.New("bfs: grid is nil")
	// ErrStartNotInGrid is returned when start is nil or not a current cell of the grid.
	ErrStartNotInGrid = errors.New("bfs: start cell not in grid")
	// ErrStartIsWall is returned when start is a wall.
	ErrStartIsWall = errors.New("bfs: start cell is a wall")
)

// Result is the breadth-first tree rooted at the start cell.
type Result struct {
	// Order lists positions in dequeue order.
	Order []grid.Position
	// Depth is the step count from start to every reached position.
	Depth map[grid.Position]int
	// Parent links every reached position except start to its predecessor.
	Parent map[grid.Position]grid.Position
}

// Reached reports whether dest was discovered.
func (r *Result) Reached(dest grid.Position) bool {
	_, ok := r.Depth[dest]
	return ok
}

// PathTo walks Parent back from dest and returns the route start → dest.
func (r *Result) PathTo(dest grid.Position) ([]grid.Position, error) {
	d, ok := r.Depth[dest]
	if !ok {
		return nil, fmt.Errorf("bfs: %v not reached", dest)
	}
	path := make([]grid.Position, d+1)
	cur := dest
	for i := d; i > 0; i-- {
		path[i] = cur
		cur = r.Parent[cur]
	}
	path[0] = cur
	return path, nil
}
