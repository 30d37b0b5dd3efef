package astar

import (
	"context"
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/astargrid/grid"
)

// Sentinel errors returned by Search and Run.
var (
	// ErrPrecondition is wrapped by every argument-validation failure.
	ErrPrecondition = errors.New("astar: precondition violated")

	// ErrNilGrid indicates a nil *grid.Grid.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrNilCell indicates a nil start or end cell.
	ErrNilCell = errors.New("astar: start and end must be non-nil")

	// ErrForeignCell indicates start or end does not belong to the grid.
	ErrForeignCell = errors.New("astar: cell is not a member of the grid")

	// ErrSameCell indicates start and end are the same cell.
	ErrSameCell = errors.New("astar: start and end must differ")

	// ErrStaleNeighbors indicates that walls changed after the last
	// RecomputeNeighbors, so cached adjacency cannot be trusted.
	ErrStaleNeighbors = errors.New("astar: neighbor lists are stale")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Heuristic estimates the remaining cost between two positions. It must never
// overestimate the true grid distance for the search to stay optimal.
type Heuristic func(a, b grid.Position) int

// Result describes one search.
//
//   - Found:    end was reached.
//   - Path:     positions from start to end inclusive (nil when not found).
//   - Cost:     number of steps along Path (len(Path)-1), 0 when not found.
//   - Expanded: number of cells popped from the open set.
//   - Order:    popped cells, in pop order.
type Result struct {
	Found    bool
	Path     []grid.Position
	Cost     int
	Expanded int
	Order    []grid.Position
}

// Options configures a search.
type Options struct {
	// Ctx is consulted once per outer iteration; cancellation stops the search.
	Ctx context.Context

	// OnStep is called after each expansion and after each path marking.
	OnStep func()

	// Heuristic defaults to Manhattan.
	Heuristic Heuristic

	// Logger receives Debug-level progress. Defaults to a discarding logger.
	Logger logrus.FieldLogger

	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns background context, a no-op step hook, Manhattan
// distance and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnStep:    func() {},
		Heuristic: Manhattan,
		Logger:    discardLogger(),
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers the redraw hook. A nil fn is ignored.
func WithOnStep(fn func()) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithHeuristic replaces Manhattan distance. Passing nil is an option violation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = errors.Join(ErrOptionViolation, errors.New("astar: heuristic is nil"))
			return
		}
		o.Heuristic = h
	}
}

// WithLogger routes Debug-level progress to l. A nil l is ignored.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
