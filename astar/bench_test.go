package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/astargrid/astar"
	"github.com/katalvlaran/astargrid/grid"
)

// BenchmarkRun_OpenGrid runs corner-to-corner on an unobstructed 50×50 grid,
// the size the interactive demo uses.
func BenchmarkRun_OpenGrid(b *testing.B) {
	const n = 50
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	start, end := g.Cell(grid.Position{}), g.Cell(grid.Position{Row: n - 1, Col: n - 1})
	start.SetState(grid.Start)
	end.SetState(grid.End)
	g.RecomputeNeighbors()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.ClearSearch()
		_, _ = astar.Run(g, start, end)
	}
}

// BenchmarkRun_RandomWalls compares Manhattan against the zero heuristic on
// a 100×100 grid with ~25% walls.
func BenchmarkRun_RandomWalls(b *testing.B) {
	const n = 100
	g, err := grid.New(n)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}
	rng := rand.New(rand.NewSource(9))
	g.Each(func(c *grid.Cell) {
		if rng.Intn(4) == 0 {
			c.SetState(grid.Wall)
		}
	})
	start, end := g.Cell(grid.Position{}), g.Cell(grid.Position{Row: n - 1, Col: n - 1})
	start.SetState(grid.Start)
	end.SetState(grid.End)
	g.RecomputeNeighbors()

	for _, bc := range []struct {
		name string
		h    astar.Heuristic
	}{{"Manhattan", astar.Manhattan}, {"Zero", astar.Zero}} {
		b.Run(bc.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				g.ClearSearch()
				_, _ = astar.Run(g, start, end, astar.WithHeuristic(bc.h))
			}
		})
	}
}
