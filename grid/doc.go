// Package grid models the square board an A* search runs on.
//
// What:
//
//   - Grid is a fixed N×N array of *Cell, built once by New and rebuilt by Reset.
//   - Each Cell carries a position, a logical State tag and a cached list of
//     orthogonal non-wall neighbors.
//   - Neighbor lists are derived data: they are computed on demand by
//     RecomputeNeighbors and go stale when any cell changes wall-ness.
//   - Parse/Load/String provide a one-rune-per-cell text form for fixtures,
//     map files and debugging.
//
// Why:
//
//   - The search core reads neighbors from the cache and writes Open/Closed/Path
//     states back onto cells, so a front end can observe the frontier by simply
//     rendering the grid after each step.
//   - State is a pure enum. Presentation (colors, glyphs) is derived elsewhere.
//
// Staleness:
//
//	The grid keeps a wall epoch. SetState bumps it whenever a cell moves into or
//	out of Wall. RecomputeNeighbors stamps the cell with the current epoch, so
//	Fresh/Stale answer in O(1)/O(N²) whether caches still reflect the walls.
//
// Complexity:
//
//   - New, Reset, RecomputeNeighbors (grid-wide), Stale: O(N²) time.
//   - Cell.RecomputeNeighbors, At, InBounds, Contains: O(1).
//
// Errors:
//
//   - ErrInvalidSize: requested size < 1.
//   - ErrEmptyGrid: text input has no rows.
//   - ErrNonSquare: text rows differ in length or row count ≠ column count.
//   - ErrUnknownSymbol: text contains a rune with no State.
//   - ErrDuplicateStart / ErrDuplicateEnd: more than one S or E in text input.
package grid
