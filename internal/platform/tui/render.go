package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/glimmer/internal/core"
)

// cellStyles holds one lipgloss style per foreground/background pair.
var cellStyles = func() (styles [core.ColorCount][core.ColorCount]lipgloss.Style) {
	for fg := core.Color(0); fg < core.ColorCount; fg++ {
		for bg := core.Color(0); bg < core.ColorCount; bg++ {
			styles[fg][bg] = lipgloss.NewStyle().
				Foreground(termColor(fg)).
				Background(termColor(bg))
		}
	}
	return styles
}()

// termColor converts a grid color to its 16-color terminal index.
func termColor(c core.Color) lipgloss.Color {
	return lipgloss.Color(strconv.Itoa(c.ANSI()))
}

func styleFor(c core.Cell) lipgloss.Style {
	if !c.Fg.Valid() || !c.Bg.Valid() {
		return lipgloss.NewStyle()
	}
	return cellStyles[c.Fg][c.Bg]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.ReadCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.ReadCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
