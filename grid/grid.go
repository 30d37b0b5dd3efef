package grid

// Grid is a fixed N×N board of cells. It is not safe for concurrent use:
// at most one search may run against a grid, and walls must not change while
// it runs.
type Grid struct {
	size  int
	cells [][]*Cell
	epoch uint64 // bumped on every wall-ness change
}

// New allocates an n×n grid of Empty cells with positions set.
// Returns ErrInvalidSize if n < 1.
// Complexity: O(n²) time and memory.
func New(n int) (*Grid, error) {
	if n < 1 {
		return nil, ErrInvalidSize
	}
	g := &Grid{size: n, epoch: 1}
	g.build()
	return g, nil
}

// build allocates a fresh set of cells. Previous *Cell values are orphaned.
func (g *Grid) build() {
	g.cells = make([][]*Cell, g.size)
	for r := 0; r < g.size; r++ {
		row := make([]*Cell, g.size)
		for c := 0; c < g.size; c++ {
			row[c] = &Cell{pos: Position{Row: r, Col: c}, owner: g}
		}
		g.cells[r] = row
	}
}

// Size returns N.
func (g *Grid) Size() int { return g.size }

// InBounds reports whether (row, col) lies on the grid.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.size && col >= 0 && col < g.size
}

// At returns the cell at (row, col), or false when out of bounds.
func (g *Grid) At(row, col int) (*Cell, bool) {
	if !g.InBounds(row, col) {
		return nil, false
	}
	return g.cells[row][col], true
}

// Cell returns the cell at p, or nil when p is out of bounds.
func (g *Grid) Cell(p Position) *Cell {
	c, _ := g.At(p.Row, p.Col)
	return c
}

// Contains reports whether c is one of g's current cells. Cells orphaned by
// Reset are not contained.
func (g *Grid) Contains(c *Cell) bool {
	if c == nil || c.owner != g || !g.InBounds(c.pos.Row, c.pos.Col) {
		return false
	}
	return g.cells[c.pos.Row][c.pos.Col] == c
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Find returns every cell currently in state s, in row-major order.
func (g *Grid) Find(s State) []*Cell {
	var out []*Cell
	g.Each(func(c *Cell) {
		if c.state == s {
			out = append(out, c)
		}
	})
	return out
}

// Count returns how many cells are currently in state s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.state == s {
			n++
		}
	})
	return n
}

// RecomputeNeighbors refreshes every cell's neighbor list.
// Complexity: O(N²).
func (g *Grid) RecomputeNeighbors() {
	g.Each(func(c *Cell) { c.RecomputeNeighbors(g) })
}

// Stale reports whether any cell's neighbor list predates the latest wall change.
func (g *Grid) Stale() bool {
	for _, row := range g.cells {
		for _, c := range row {
			if !c.Fresh() {
				return true
			}
		}
	}
	return false
}

// Reset discards every cell and rebuilds the grid with Empty cells.
// Callers holding *Cell references (start, end) must drop them; the old cells
// are detached, so later SetState calls on them no longer affect g.
func (g *Grid) Reset() {
	g.Each(func(c *Cell) { c.owner = nil })
	g.epoch++
	g.build()
}

// ClearSearch turns Open, Closed and Path cells back into Empty, leaving
// walls, start and end untouched.
func (g *Grid) ClearSearch() {
	g.Each(func(c *Cell) {
		switch c.state {
		case Open, Closed, Path:
			c.state = Empty
		}
	})
}
