// Package astargrid is an interactive A* path-finding playground on a square
// grid, drawn in the terminal.
//
// What is astargrid?
//
//	A small module that keeps search logic apart from presentation:
//		• grid/   cells, states, neighbor lists and the text map format
//		• astar/  A* over a grid with a step hook and cancellation
//		• bfs/    breadth-first reference search for hop distances
//		• internal/session, internal/view, internal/app: the terminal demo
//		• cmd/astar-grid: the binary
//
// Search state lives in the cells themselves, so every step the algorithm
// takes is visible the moment the step hook redraws the screen.
//
// Quick ASCII example (S start, E end, # wall, * path):
//
//	S***.
//	###*.
//	...*E
//
//	go run github.com/katalvlaran/astargrid/cmd/astar-grid -size 40
package astargrid
