package astar

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astargrid/grid"
)

// Search runs A* from start to end on g and reports whether end was reached.
// It mutates cell states as it goes (Open, Closed, and Path on success) and
// calls the OnStep hook after every expansion and every path marking.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. start and end must be non-nil (ErrNilCell).
//  4. start and end must be current cells of g (ErrForeignCell).
//  5. start != end (ErrSameCell).
//  6. every neighbor list must be fresh (ErrStaleNeighbors).
//
// Cancellation of the context is returned as ctx.Err().
func Search(g *grid.Grid, start, end *grid.Cell, opts ...Option) (bool, error) {
	res, err := Run(g, start, end, opts...)
	if err != nil {
		return false, err
	}
	return res.Found, nil
}

// Run is Search returning the full Result: path, cost, and expansion order.
//
// Complexity:
//
//   - Time:  O(E log V)
//   - Space: O(V)
func Run(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	// 1) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 2) Validate arguments
	if err := validate(g, start, end); err != nil {
		return nil, err
	}

	// 3) Prepare state and run
	r := &runner{
		grid:     g,
		start:    start,
		end:      end,
		opts:     cfg,
		log:      cfg.Logger.WithFields(logrus.Fields{"start": start.Position(), "end": end.Position()}),
		gScore:   make(map[*grid.Cell]int),
		fScore:   make(map[*grid.Cell]int),
		cameFrom: make(map[*grid.Cell]*grid.Cell),
		open:     newOpenSet(),
		res:      &Result{},
	}
	r.init()
	if err := r.loop(); err != nil {
		r.log.WithError(err).WithField("expanded", r.res.Expanded).Debug("search interrupted")
		return nil, err
	}

	if r.res.Found {
		r.log.WithFields(logrus.Fields{"expanded": r.res.Expanded, "cost": r.res.Cost}).Debug("path found")
	} else {
		r.log.WithField("expanded", r.res.Expanded).Debug("no path")
	}
	return r.res, nil
}

func validate(g *grid.Grid, start, end *grid.Cell) error {
	switch {
	case g == nil:
		return fmt.Errorf("%w: %w", ErrPrecondition, ErrNilGrid)
	case start == nil || end == nil:
		return fmt.Errorf("%w: %w", ErrPrecondition, ErrNilCell)
	case !g.Contains(start):
		return fmt.Errorf("%w: %w: start %v", ErrPrecondition, ErrForeignCell, start.Position())
	case !g.Contains(end):
		return fmt.Errorf("%w: %w: end %v", ErrPrecondition, ErrForeignCell, end.Position())
	case start == end:
		return fmt.Errorf("%w: %w: %v", ErrPrecondition, ErrSameCell, start.Position())
	case g.Stale():
		return fmt.Errorf("%w: %w", ErrPrecondition, ErrStaleNeighbors)
	}
	return nil
}

// runner holds the mutable state for a single search.
type runner struct {
	grid       *grid.Grid
	start, end *grid.Cell
	opts       Options
	log        logrus.FieldLogger

	gScore   map[*grid.Cell]int // absent = +∞
	fScore   map[*grid.Cell]int // absent = +∞
	cameFrom map[*grid.Cell]*grid.Cell
	open     *openSet
	res      *Result

	endMark grid.State // end's state before the search touched it
}

// init scores the start cell and seeds the open set with it at seq 0.
func (r *runner) init() {
	r.endMark = r.end.State()
	r.gScore[r.start] = 0
	r.fScore[r.start] = r.h(r.start)
	r.open.push(r.start, r.fScore[r.start])
	r.log.Debug("search started")
}

func (r *runner) h(c *grid.Cell) int {
	return r.opts.Heuristic(c.Position(), r.end.Position())
}

// loop pops cells in (fScore, seq) order until end is reached, the open set
// is exhausted, or the context is cancelled.
func (r *runner) loop() error {
	for r.open.len() > 0 {
		// cancellation check (once per iteration)
		select {
		case <-r.opts.Ctx.Done():
			r.restoreEnd()
			return r.opts.Ctx.Err()
		default:
		}

		current, _ := r.open.pop()
		r.res.Expanded++
		r.res.Order = append(r.res.Order, current.Position())

		if current == r.end {
			r.reconstruct()
			return nil
		}

		r.relax(current)
		r.opts.OnStep()

		if current != r.start {
			current.SetState(grid.Closed)
		}
	}
	return nil
}

// restoreEnd undoes the Open mark relax puts on end when a search stops
// before reaching it.
func (r *runner) restoreEnd() {
	if r.end.State() == grid.Open {
		r.end.SetState(r.endMark)
	}
}

// relax offers current's neighbors a path through current.
// Only strictly shorter paths update the scores; a neighbor is pushed and
// marked Open only if it is not already pending.
func (r *runner) relax(current *grid.Cell) {
	tentative := r.gScore[current] + 1
	for _, nb := range current.Neighbors() {
		if old, seen := r.gScore[nb]; seen && tentative >= old {
			continue
		}
		r.cameFrom[nb] = current
		r.gScore[nb] = tentative
		r.fScore[nb] = tentative + r.h(nb)
		if !r.open.has(nb) {
			r.open.push(nb, r.fScore[nb])
			nb.SetState(grid.Open)
		}
	}
}

// reconstruct walks cameFrom from end back towards start, marking every cell
// strictly between them as Path and calling OnStep after each mark, then
// restores end's marker.
func (r *runner) reconstruct() {
	path := []grid.Position{r.end.Position()}
	for cur := r.cameFrom[r.end]; cur != nil; cur = r.cameFrom[cur] {
		path = append(path, cur.Position())
		if cur == r.start {
			break
		}
		cur.SetState(grid.Path)
		r.opts.OnStep()
	}
	r.end.SetState(grid.End)

	// reverse to start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	r.res.Found = true
	r.res.Path = path
	r.res.Cost = len(path) - 1
}
