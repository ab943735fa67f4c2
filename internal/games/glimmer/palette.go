package glimmer

import "github.com/vovakirdan/glimmer/internal/core"

// PaletteSize is the number of decoration colors per level.
const PaletteSize = 13

const (
	maxRedraws = 16
	redrawStep = 17
)

// Palette is the ordered set of decoration colors for one level.
// Indexing wraps, so At never goes out of range.
type Palette [PaletteSize]core.Color

// At returns the color at i mod PaletteSize.
func (p Palette) At(i int) core.Color {
	return p[((i%PaletteSize)+PaletteSize)%PaletteSize]
}

// BuildPalette draws PaletteSize colors seeded by slot index and offset.
// Reserved colors are rejected and redrawn; after maxRedraws the slot takes
// the next non-reserved color after the last draw.
func BuildPalette(offset uint, r Reserved) Palette {
	var p Palette
	for i := range p {
		p[i] = drawColor(uint(i)+offset, r)
	}
	return p
}

func drawColor(seed uint, r Reserved) core.Color {
	var c core.Color
	for redraw := uint(0); redraw < maxRedraws; redraw++ {
		c = core.Color(Next(seed+redraw*redrawStep, int(core.ColorCount)))
		if !r.IsReserved(c) {
			return c
		}
	}
	// Two reserved colors out of sixteen, so this scan ends within three steps.
	for r.IsReserved(c) {
		c = (c + 1) % core.ColorCount
	}
	return c
}
