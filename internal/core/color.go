package core

import "strings"

// Color is one of the 16 text-mode colors a cell can carry.
// Values follow the classic VGA ordering (0 = black, 15 = white).
type Color uint8

const (
	ColorBlack Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorBrown
	ColorLightGray
	ColorDarkGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorPink
	ColorYellow
	ColorWhite
	ColorCount // Sentinel value for iteration
)

var colorNames = [ColorCount]string{
	"black", "blue", "green", "cyan", "red", "magenta", "brown", "lightgray",
	"darkgray", "lightblue", "lightgreen", "lightcyan", "lightred", "pink", "yellow", "white",
}

// vgaToANSI maps VGA ordering to the ANSI 16-color terminal palette.
var vgaToANSI = [ColorCount]int{0, 4, 2, 6, 1, 5, 3, 7, 8, 12, 10, 14, 9, 13, 11, 15}

// Valid reports whether c is one of the 16 colors.
func (c Color) Valid() bool {
	return c < ColorCount
}

// String returns the lowercase color name.
func (c Color) String() string {
	if !c.Valid() {
		return "unknown"
	}
	return colorNames[c]
}

// ANSI returns the terminal palette index (0-15) for this color.
func (c Color) ANSI() int {
	if !c.Valid() {
		return 7
	}
	return vgaToANSI[c]
}

// ColorFromANSI converts a terminal palette index back to a Color.
// Returns ColorLightGray and false for indexes outside 0-15.
func ColorFromANSI(idx int) (Color, bool) {
	for c, a := range vgaToANSI {
		if a == idx {
			return Color(c), true
		}
	}
	return ColorLightGray, false
}

// ParseColor converts a color name to a Color.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for c, name := range colorNames {
		if name == s {
			return Color(c), true
		}
	}
	return ColorLightGray, false
}
