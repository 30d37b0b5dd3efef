// File: grid/example_test.go
package grid_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/astargrid/grid"
)

////////////////////////////////////////////////////////////////////////////////
// Example: neighbor recompute after painting walls
////////////////////////////////////////////////////////////////////////////////

// ExampleCell_RecomputeNeighbors paints a wall next to the center of a 3×3
// grid and shows that the cached adjacency only changes after a recompute.
func ExampleCell_RecomputeNeighbors() {
	g, _ := grid.New(3)
	g.RecomputeNeighbors()
	center := g.Cell(grid.Position{Row: 1, Col: 1})
	fmt.Println("before:", len(center.Neighbors()), "stale:", g.Stale())

	g.Cell(grid.Position{Row: 0, Col: 1}).SetState(grid.Wall)
	fmt.Println("painted:", len(center.Neighbors()), "stale:", g.Stale())

	g.RecomputeNeighbors()
	var around []string
	for _, nb := range center.Neighbors() {
		around = append(around, nb.Position().String())
	}
	fmt.Println(strings.Join(around, " "))
	fmt.Println(g)

	// Output:
	// before: 4 stale: false
	// painted: 4 stale: true
	// (2,1) (1,2) (1,0)
	// .#.
	// ...
	// ...
}
