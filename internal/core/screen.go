package core

import (
	"strings"
)

// Cell is a single display position: a glyph with a foreground/background color pair.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
}

// BlankCell is what a cleared screen holds.
var BlankCell = Cell{Rune: ' ', Fg: ColorLightGray, Bg: ColorBlack}

// Display is the sink a game draws into. Reads return what is currently shown,
// so a game can treat the display as the source of truth for its grid.
type Display interface {
	WriteCell(x, y int, c Cell)
	ReadCell(x, y int) Cell
}

// Screen is an in-memory Display. Hosts that render frames themselves (the
// Bubble Tea host) hand it to the game and turn it into text each frame.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

var _ Display = (*Screen)(nil)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with blank cells.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = BlankCell
		}
	}
}

func (s *Screen) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// WriteCell places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) WriteCell(x, y int, c Cell) {
	if !s.inBounds(x, y) {
		return
	}
	s.cells[y][x] = c
}

// ReadCell returns the cell at the given position.
// Returns BlankCell for out-of-bounds coordinates.
func (s *Screen) ReadCell(x, y int) Cell {
	if !s.inBounds(x, y) {
		return BlankCell
	}
	return s.cells[y][x]
}

// String converts the screen buffer to plain text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the glyphs of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
