package grid

// Cell is a single grid unit. Cells are created by New/Reset and belong to
// exactly one Grid; their identity (pointer) is what the search keys on.
type Cell struct {
	pos       Position
	state     State
	neighbors []*Cell
	epoch     uint64 // owner's wall epoch at last RecomputeNeighbors; 0 = never
	owner     *Grid
}

// Position returns the cell's (row, column).
func (c *Cell) Position() Position { return c.pos }

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.pos.Row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.pos.Col }

// State returns the current state tag.
func (c *Cell) State() State { return c.state }

// IsWall reports whether the cell is a wall.
func (c *Cell) IsWall() bool { return c.state == Wall }

// SetState replaces the state tag. Moving into or out of Wall invalidates
// every neighbor list in the owning grid.
// It panics if s is not a declared State.
func (c *Cell) SetState(s State) {
	if !s.Valid() {
		panic("grid: invalid state " + s.String())
	}
	if (c.state == Wall) != (s == Wall) && c.owner != nil {
		c.owner.epoch++
	}
	c.state = s
}

// Neighbors returns the cached adjacency computed by the last
// RecomputeNeighbors call. The slice must not be modified.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// Fresh reports whether the cached neighbor list reflects the current walls.
func (c *Cell) Fresh() bool {
	return c.owner != nil && c.epoch == c.owner.epoch
}

// RecomputeNeighbors rebuilds the neighbor list from g: the in-bounds,
// non-wall cells directly below, above, right and left of c, in that order.
// Calling it twice with no wall change in between yields the same list.
func (c *Cell) RecomputeNeighbors(g *Grid) {
	nbs := make([]*Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		r, col := c.pos.Row+d[0], c.pos.Col+d[1]
		if !g.InBounds(r, col) {
			continue
		}
		if nb := g.cells[r][col]; !nb.IsWall() {
			nbs = append(nbs, nb)
		}
	}
	c.neighbors = nbs
	c.epoch = g.epoch
}
