// Package session holds the interactive state around a grid: which cells are
// the start and end, how clicks turn into cell-state changes, and how a search
// is launched against the current walls.
package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
)

// Sentinel errors for session operations.
var (
	// ErrOutOfRange indicates a position outside the grid.
	ErrOutOfRange = errors.New("session: position out of range")
	// ErrNotReady indicates Run was called before both start and end were placed.
	ErrNotReady = errors.New("session: start and end must be placed")
	// ErrBusy indicates a mutation or second run while a search is in progress.
	ErrBusy = errors.New("session: search in progress")
)

// Session owns a grid and the start/end references into it.
// Mutating methods may be called from any goroutine but refuse to run while a
// search is active, so the grid is only ever touched by one search at a time.
type Session struct {
	mu      sync.Mutex
	grid    *grid.Grid
	start   *grid.Cell
	end     *grid.Cell
	running bool
	log     logrus.FieldLogger
}

// New creates a session over a fresh n×n grid.
func New(n int, log logrus.FieldLogger) (*Session, error) {
	g, err := grid.New(n)
	if err != nil {
		return nil, err
	}
	return FromGrid(g, log), nil
}

// FromGrid wraps an existing grid, adopting its first Start and End cells.
func FromGrid(g *grid.Grid, log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	s := &Session{grid: g, log: log}
	if c := g.Find(grid.Start); len(c) > 0 {
		s.start = c[0]
	}
	if c := g.Find(grid.End); len(c) > 0 {
		s.end = c[0]
	}
	return s
}

// Grid returns the underlying grid. Callers must not mutate it while Running.
func (s *Session) Grid() *grid.Grid { return s.grid }

// Start returns the start cell, or nil.
func (s *Session) Start() *grid.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start
}

// End returns the end cell, or nil.
func (s *Session) End() *grid.Cell {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.end
}

// Ready reports whether both start and end are placed.
func (s *Session) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.start != nil && s.end != nil
}

// Running reports whether a search is in progress.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Paint applies a primary click at p: the first free click places the start,
// the next places the end, and any further click on another cell makes it a
// wall. It returns the state the cell ends up in.
func (s *Session) Paint(p grid.Position) (grid.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cellLocked(p)
	if err != nil {
		return grid.Empty, err
	}

	switch {
	case s.start == nil && c != s.end:
		s.start = c
		c.SetState(grid.Start)
	case s.end == nil && c != s.start:
		s.end = c
		c.SetState(grid.End)
	case c != s.start && c != s.end:
		c.SetState(grid.Wall)
	}
	s.log.WithFields(logrus.Fields{"pos": p, "state": c.State()}).Debug("paint")
	return c.State(), nil
}

// Erase applies a secondary click at p: the cell becomes Empty, and if it was
// the start or end that reference is dropped.
func (s *Session) Erase(p grid.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cellLocked(p)
	if err != nil {
		return err
	}

	c.SetState(grid.Empty)
	switch c {
	case s.start:
		s.start = nil
	case s.end:
		s.end = nil
	}
	s.log.WithField("pos", p).Debug("erase")
	return nil
}

// Reset rebuilds the grid and forgets start and end.
func (s *Session) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running {
		return ErrBusy
	}
	s.grid.Reset()
	s.start, s.end = nil, nil
	s.log.Debug("grid reset")
	return nil
}

func (s *Session) cellLocked(p grid.Position) (*grid.Cell, error) {
	if s.running {
		return nil, ErrBusy
	}
	c := s.grid.Cell(p)
	if c == nil {
		return nil, fmt.Errorf("%w: %v", ErrOutOfRange, p)
	}
	return c, nil
}

// Run clears marks left by a previous search, recomputes every neighbor list
// and runs A* from start to end, calling onStep after each step. Only one Run
// may be active at a time; Paint, Erase and Reset fail with ErrBusy meanwhile.
func (s *Session) Run(ctx context.Context, onStep func(), opts ...astar.Option) (*astar.Result, error) {
	s.mu.Lock()
	switch {
	case s.running:
		s.mu.Unlock()
		return nil, ErrBusy
	case s.start == nil || s.end == nil:
		s.mu.Unlock()
		return nil, ErrNotReady
	}
	s.running = true
	start, end := s.start, s.end
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	s.grid.ClearSearch()
	start.SetState(grid.Start)
	end.SetState(grid.End)
	s.grid.RecomputeNeighbors()

	log := s.log.WithFields(logrus.Fields{"start": start.Position(), "end": end.Position()})
	log.Info("search started")

	opts = append([]astar.Option{
		astar.WithContext(ctx),
		astar.WithOnStep(onStep),
		astar.WithLogger(s.log),
	}, opts...)
	res, err := astar.Run(s.grid, start, end, opts...)
	if err != nil {
		log.WithError(err).Warn("search aborted")
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"found":    res.Found,
		"cost":     res.Cost,
		"expanded": res.Expanded,
	}).Info("search finished")
	return res, nil
}
