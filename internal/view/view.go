// Package view renders a grid onto a tcell screen and maps screen
// coordinates back to grid positions. Presentation lives here only: cell
// states are plain tags and the palette decides how each one looks.
package view

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/astargrid/grid"
)

// CellWidth is the number of terminal columns per grid cell. Two columns
// make cells roughly square in most terminal fonts.
const CellWidth = 2

// Palette maps each state to the style its cells are drawn with.
type Palette map[grid.State]tcell.Style

// DefaultPalette mirrors the classic A* demo colors.
func DefaultPalette() Palette {
	bg := func(c tcell.Color) tcell.Style { return tcell.StyleDefault.Background(c) }
	return Palette{
		grid.Empty:  bg(tcell.ColorWhite),
		grid.Open:   bg(tcell.ColorGreen),
		grid.Closed: bg(tcell.ColorRed),
		grid.Wall:   bg(tcell.ColorBlack),
		grid.Start:  bg(tcell.ColorOrange),
		grid.End:    bg(tcell.ColorTurquoise),
		grid.Path:   bg(tcell.ColorPurple),
	}
}

var (
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
)

// HelpLine lists the key and mouse bindings.
const HelpLine = "left: start/end/wall  right: erase  space: run  esc: stop  c: clear  q: quit"

// View draws a grid with its top-left corner at the screen origin, followed
// by a status line and a help line.
type View struct {
	screen  tcell.Screen
	palette Palette
	status  string
}

// New creates a view over screen. A nil palette selects DefaultPalette.
func New(screen tcell.Screen, palette Palette) *View {
	if palette == nil {
		palette = DefaultPalette()
	}
	return &View{screen: screen, palette: palette}
}

// Screen returns the underlying screen.
func (v *View) Screen() tcell.Screen { return v.screen }

// SetStatus replaces the status line text shown on the next Draw.
func (v *View) SetStatus(msg string) { v.status = msg }

// Status returns the current status line text.
func (v *View) Status() string { return v.status }

// Style returns the style used for state s.
func (v *View) Style(s grid.State) tcell.Style {
	if st, ok := v.palette[s]; ok {
		return st
	}
	return tcell.StyleDefault
}

// Draw paints every cell of g, the status line and the help line, then
// shows the frame.
func (v *View) Draw(g *grid.Grid) {
	v.screen.Clear()
	g.Each(func(c *grid.Cell) {
		st := v.Style(c.State())
		x, y := c.Col()*CellWidth, c.Row()
		for dx := 0; dx < CellWidth; dx++ {
			v.screen.SetContent(x+dx, y, ' ', nil, st)
		}
	})
	v.text(0, g.Size(), v.status, styleStatus)
	v.text(0, g.Size()+1, HelpLine, styleHelp)
	v.screen.Show()
}

// DrawStatus repaints only the status line under g and shows the frame.
// It reads g's size and no cell state.
func (v *View) DrawStatus(g *grid.Grid) {
	w, _ := v.screen.Size()
	y := g.Size()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
	}
	v.text(0, y, v.status, styleStatus)
	v.screen.Show()
}

func (v *View) text(x, y int, s string, st tcell.Style) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, st)
		x++
	}
}

// CellAt translates a screen coordinate into a grid position, reporting
// false for coordinates outside the drawn grid.
func (v *View) CellAt(x, y int, g *grid.Grid) (grid.Position, bool) {
	if x < 0 || y < 0 {
		return grid.Position{}, false
	}
	p := grid.Position{Row: y, Col: x / CellWidth}
	if !g.InBounds(p.Row, p.Col) {
		return grid.Position{}, false
	}
	return p, true
}

// Fits reports whether the whole grid plus the two text lines fit on screen.
func (v *View) Fits(g *grid.Grid) bool {
	w, h := v.screen.Size()
	return w >= g.Size()*CellWidth && h >= g.Size()+2
}
