package glimmer

import "github.com/vovakirdan/glimmer/internal/core"

// playfield is the decorated interior. Everything else, the HUD row and the
// left and right columns, is hazard.
func (g *Game) playfield() core.Rect {
	return core.NewRect(1, 1, g.width-2, g.height-1)
}

// generate rebuilds the palette, repaints every cell for the current level,
// seeds the collectibles and re-centers the player.
func (g *Game) generate() {
	g.palette = BuildPalette(g.rngOffset, g.reserved)

	hazard := EncodeHazard(g.reserved)
	core.FillRect(g.display, core.NewRect(0, 0, g.width, 1), hazard)
	core.FillRect(g.display, core.NewRect(0, 1, 1, g.height-1), hazard)
	core.FillRect(g.display, core.NewRect(g.width-1, 1, 1, g.height-1), hazard)

	field := g.playfield()
	for y := field.Y; y < field.Bottom(); y++ {
		for x := field.X; x < field.Right(); x++ {
			g.display.WriteCell(x, y, EncodeDecoration(g.level, x, y, g.rngOffset, g.palette))
		}
	}

	g.seedCollectibles()
	g.pos = g.center()
}

// seedCollectibles places the level's collectibles. Each slot first draws an
// index, and the placement is drawn again from that index. A placement that
// lands on a cell already holding a collectible counts as collected.
func (g *Game) seedCollectibles() {
	bonus := g.cfg.Colors.Bonus.Color()
	for i := 0; i < g.cfg.Rules.CollectiblesPerLevel; i++ {
		p := g.placement(g.slotIndex(i))
		if g.classifyAt(p) == KindCollectible {
			g.progress++
			g.score++
		}
		g.display.WriteCell(p.X, p.Y, EncodeCollectible(g.level, p.X, p.Y, g.rngOffset, g.palette, g.reserved, bonus))
	}
}

func (g *Game) slotIndex(i int) int {
	return Next(uint(i+g.level*10)+g.rngOffset, g.width-1)
}

// placement maps a slot index to an interior cell.
func (g *Game) placement(slot int) core.Point {
	return core.Point{
		X: 1 + Next(uint(slot), g.width-2),
		Y: 1 + Next(uint(slot)<<4|1, g.height-1),
	}
}
