package grid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Parse builds a grid from one string per row, one rune per cell, using the
// State symbols: '.' empty, 'o' open, 'x' closed, '#' wall, 'S' start,
// 'E' end, '*' path. Input must be square and hold at most one S and one E.
// Neighbor lists are left uncomputed.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}
	n := len(lines)
	for i, line := range lines {
		if w := utf8.RuneCountInString(line); w != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, i, w, n)
		}
	}

	g, err := New(n)
	if err != nil {
		return nil, err
	}
	var starts, ends int
	for r, line := range lines {
		c := 0
		for _, sym := range line {
			s, ok := StateFromSymbol(sym)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownSymbol, sym, r, c)
			}
			switch s {
			case Start:
				starts++
				if starts > 1 {
					return nil, fmt.Errorf("%w: second at (%d,%d)", ErrDuplicateStart, r, c)
				}
			case End:
				ends++
				if ends > 1 {
					return nil, fmt.Errorf("%w: second at (%d,%d)", ErrDuplicateEnd, r, c)
				}
			}
			g.cells[r][c].SetState(s)
			c++
		}
	}
	return g, nil
}

// Load reads a grid in the Parse format from r. Blank lines and lines
// starting with ';' are skipped; trailing whitespace is trimmed.
func Load(r io.Reader) (*Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("grid: read: %w", err)
	}
	return Parse(lines)
}

// Lines renders the grid in the Parse format, one string per row.
func (g *Grid) Lines() []string {
	out := make([]string, g.size)
	var b strings.Builder
	for r, row := range g.cells {
		b.Reset()
		for _, c := range row {
			b.WriteRune(c.state.Symbol())
		}
		out[r] = b.String()
	}
	return out
}

// String renders the grid in the Parse format, rows separated by newlines.
func (g *Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
