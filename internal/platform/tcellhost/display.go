// Package tcellhost runs a game directly on a tcell screen. The tcell cell
// buffer is the game's display: writes go through SetContent and collision
// reads come back through GetContent.
package tcellhost

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/glimmer/internal/core"
)

// Display adapts a tcell.Screen to core.Display.
type Display struct {
	screen tcell.Screen
	styles [core.ColorCount][core.ColorCount]tcell.Style
}

var _ core.Display = (*Display)(nil)

// NewDisplay wraps screen. The screen must already be initialized.
func NewDisplay(screen tcell.Screen) *Display {
	d := &Display{screen: screen}
	for fg := core.Color(0); fg < core.ColorCount; fg++ {
		for bg := core.Color(0); bg < core.ColorCount; bg++ {
			d.styles[fg][bg] = tcell.StyleDefault.
				Foreground(toTcell(fg)).
				Background(toTcell(bg))
		}
	}
	return d
}

// WriteCell sets the glyph and colors at (x, y).
func (d *Display) WriteCell(x, y int, c core.Cell) {
	style := tcell.StyleDefault
	if c.Fg.Valid() && c.Bg.Valid() {
		style = d.styles[c.Fg][c.Bg]
	}
	d.screen.SetContent(x, y, c.Rune, nil, style)
}

// ReadCell returns what the screen currently holds at (x, y). Colors outside
// the 16-color palette read back as the blank cell's colors.
func (d *Display) ReadCell(x, y int) core.Cell {
	r, _, style, _ := d.screen.GetContent(x, y)
	fg, bg, _ := style.Decompose()
	return core.Cell{
		Rune: r,
		Fg:   fromTcell(fg, core.BlankCell.Fg),
		Bg:   fromTcell(bg, core.BlankCell.Bg),
	}
}

// Size returns the screen dimensions.
func (d *Display) Size() (int, int) {
	return d.screen.Size()
}

func toTcell(c core.Color) tcell.Color {
	return tcell.PaletteColor(c.ANSI())
}

func fromTcell(c tcell.Color, fallback core.Color) core.Color {
	for idx := range int(core.ColorCount) {
		if tcell.PaletteColor(idx) == c {
			if col, ok := core.ColorFromANSI(idx); ok {
				return col
			}
		}
	}
	return fallback
}
