package grid_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/astargrid/grid"
)

// TestParse_Errors verifies that Parse rejects malformed input.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"Empty", nil, grid.ErrEmptyGrid},
		{"Ragged", []string{"..", "."}, grid.ErrNonSquare},
		{"Wide", []string{"...", "..."}, grid.ErrNonSquare},
		{"Unknown", []string{".?", ".."}, grid.ErrUnknownSymbol},
		{"TwoStarts", []string{"S.", ".S"}, grid.ErrDuplicateStart},
		{"TwoEnds", []string{"EE", ".."}, grid.ErrDuplicateEnd},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.Parse(tc.lines)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_RoundTrip ensures every symbol survives Parse → String.
func TestParse_RoundTrip(t *testing.T) {
	lines := []string{
		"S.o#",
		"x*..",
		"..#.",
		"...E",
	}
	g, err := grid.Parse(lines)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n"), g.String())
	assert.Equal(t, grid.Start, g.Cell(grid.Position{Row: 0, Col: 0}).State())
	assert.Equal(t, grid.End, g.Cell(grid.Position{Row: 3, Col: 3}).State())
}

// TestLoad_SkipsCommentsAndBlankLines reads a map file with annotations.
func TestLoad_SkipsCommentsAndBlankLines(t *testing.T) {
	src := `; corridor with a gap
S.#

..#
..E
`
	g, err := grid.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, []string{"S.#", "..#", "..E"}, g.Lines())
}

func TestStateFromSymbol(t *testing.T) {
	for s := grid.Empty; s.Valid(); s++ {
		got, ok := grid.StateFromSymbol(s.Symbol())
		require.True(t, ok, s.String())
		assert.Equal(t, s, got)
	}
	_, ok := grid.StateFromSymbol('z')
	assert.False(t, ok)
}
