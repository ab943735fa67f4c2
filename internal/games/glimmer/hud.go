package glimmer

import "github.com/vovakirdan/glimmer/internal/core"

const hudDigits = 3

// repaint redraws every playfield cell except the player's and the
// collectibles. The result depends only on (level, x, y, offset), so it also
// erases the marker the player left behind.
func (g *Game) repaint() {
	collectible := g.reserved.Collectible
	field := g.playfield()
	for y := field.Y; y < field.Bottom(); y++ {
		for x := field.X; x < field.Right(); x++ {
			if x == g.pos.X && y == g.pos.Y {
				continue
			}
			if g.display.ReadCell(x, y).Fg == collectible {
				continue
			}
			g.display.WriteCell(x, y, EncodeDecoration(g.level, x, y, g.rngOffset, g.palette))
		}
	}
}

// drawHUD writes the score at the top-left and the level at the top-right.
func (g *Game) drawHUD() {
	g.drawNumber(0, g.score)
	g.drawNumber(g.width-hudDigits, g.level)
}

func (g *Game) drawNumber(x, n int) {
	fg := g.cfg.Colors.HUD.Color()
	bg := g.reserved.Hazard
	for i, div := range [hudDigits]int{100, 10, 1} {
		digit := rune('0' + (n/div)%10)
		g.display.WriteCell(x+i, 0, core.Cell{Rune: digit, Fg: fg, Bg: bg})
	}
}

func (g *Game) drawMarker() {
	marker := g.cfg.Colors.Marker.Color()
	g.display.WriteCell(g.pos.X, g.pos.Y, core.Cell{Rune: ' ', Fg: marker, Bg: marker})
}

// drawBanner writes two centered lines over the middle of the grid.
func (g *Game) drawBanner(title, hint string) {
	fg := g.cfg.Colors.HUD.Color()
	bg := g.reserved.Hazard
	mid := g.height / 2
	for i, line := range []string{title, hint} {
		y := mid - 1 + i*2
		if y <= 0 || y >= g.height {
			continue
		}
		text := []rune(line)
		if len(text) > g.width-2 {
			text = text[:g.width-2]
		}
		core.DrawText(g.display, (g.width-len(text))/2, y, string(text), fg, bg)
	}
}
