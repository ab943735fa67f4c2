package glimmer

import "github.com/vovakirdan/glimmer/internal/core"

// CellKind is the gameplay meaning of a displayed cell.
type CellKind int

const (
	// KindEmpty is the zero value. Classify never returns it: a blank cell is
	// simply a decoration drawn with a space.
	KindEmpty CellKind = iota
	KindCollectible
	KindHazard
	KindDecoration
)

func (k CellKind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindCollectible:
		return "collectible"
	case KindHazard:
		return "hazard"
	case KindDecoration:
		return "decoration"
	default:
		return "unknown"
	}
}

const (
	glyphCount    = 95 // printable ASCII ' '..'~'
	indexModulus  = 12
	levelsPerTier = 5
)

// Reserved holds the two colors that carry meaning on the grid.
type Reserved struct {
	Collectible core.Color // foreground of a collectible cell
	Hazard      core.Color // background of a hazard cell
}

// IsReserved reports whether c may not be used as a decoration color.
func (r Reserved) IsReserved(c core.Color) bool {
	return c == r.Collectible || c == r.Hazard
}

// Classify maps a displayed cell to its meaning. A collectible foreground wins
// over a hazard background.
func (r Reserved) Classify(c core.Cell) CellKind {
	switch {
	case c.Fg == r.Collectible:
		return KindCollectible
	case c.Bg == r.Hazard:
		return KindHazard
	default:
		return KindDecoration
	}
}

// paletteIndex draws the bounded palette slot for a cell. The bound widens by
// one every five levels.
func paletteIndex(level, x, y int, offset uint) int {
	return Next(uint(level+x*y)+offset, indexModulus) % (1 + level/levelsPerTier)
}

func glyphDraw(level, x, y int, offset uint) int {
	seed := (uint(x) << 12) ^ (uint(y) << 4)
	return Next(seed+uint(level)+offset, glyphCount)
}

// EncodeDecoration returns the cosmetic cell for (x, y) on the given level.
func EncodeDecoration(level, x, y int, offset uint, p Palette) core.Cell {
	idx := paletteIndex(level, x, y, offset)
	return core.Cell{
		Rune: rune(' ' + glyphDraw(level, x, y, offset)),
		Fg:   p.At(idx),
		Bg:   p.At(idx + 1),
	}
}

// EncodeCollectible returns the collectible cell for (x, y). When the glyph
// draw is exactly zero the cell gets the bonus background instead of a
// palette color.
func EncodeCollectible(level, x, y int, offset uint, p Palette, r Reserved, bonus core.Color) core.Cell {
	g := glyphDraw(level, x, y, offset)
	bg := p.At(paletteIndex(level, x, y, offset))
	if g == 0 {
		bg = bonus
	}
	return core.Cell{Rune: rune(' ' + g), Fg: r.Collectible, Bg: bg}
}

// EncodeHazard returns a solid hazard cell.
func EncodeHazard(r Reserved) core.Cell {
	return core.Cell{Rune: ' ', Fg: r.Hazard, Bg: r.Hazard}
}
