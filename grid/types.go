package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and text decoding.
var (
	// ErrInvalidSize indicates New was asked for a grid smaller than 1×1.
	ErrInvalidSize = errors.New("grid: size must be at least 1")
	// ErrEmptyGrid indicates text input without any rows.
	ErrEmptyGrid = errors.New("grid: input must have at least one row")
	// ErrNonSquare indicates text rows of differing lengths, or a row count that differs from the column count.
	ErrNonSquare = errors.New("grid: input must be square")
	// ErrUnknownSymbol indicates a rune that does not map to any State.
	ErrUnknownSymbol = errors.New("grid: unknown cell symbol")
	// ErrDuplicateStart indicates more than one Start cell in text input.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateEnd indicates more than one End cell in text input.
	ErrDuplicateEnd = errors.New("grid: more than one end cell")
)

// State is the logical tag carried by a Cell.
type State uint8

const (
	// Empty is an unvisited, passable cell.
	Empty State = iota
	// Open marks a cell discovered by the search and waiting in the open set.
	Open
	// Closed marks a cell whose neighbors have all been considered.
	Closed
	// Wall excludes a cell from adjacency and traversal.
	Wall
	// Start is the search origin.
	Start
	// End is the search target.
	End
	// Path marks a cell on the reconstructed route.
	Path

	numStates
)

var stateNames = [numStates]string{"empty", "open", "closed", "wall", "start", "end", "path"}

var stateSymbols = [numStates]rune{'.', 'o', 'x', '#', 'S', 'E', '*'}

// Valid reports whether s is one of the declared states.
func (s State) Valid() bool { return s < numStates }

// String returns the lower-case name of s.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("state(%d)", uint8(s))
	}
	return stateNames[s]
}

// Symbol returns the rune used for s by String and Parse.
func (s State) Symbol() rune {
	if !s.Valid() {
		return '?'
	}
	return stateSymbols[s]
}

// StateFromSymbol maps a text rune back to its State.
func StateFromSymbol(r rune) (State, bool) {
	for i, sym := range stateSymbols {
		if sym == r {
			return State(i), true
		}
	}
	return Empty, false
}

// Position is a 0-based (row, column) coordinate.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// neighborOffsets lists the 4-directional steps in the order neighbors are
// collected: down, up, right, left.
var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Offsets returns the (dRow, dCol) steps used for adjacency, in neighbor order.
func Offsets() [4][2]int { return neighborOffsets }
