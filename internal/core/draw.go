package core

// DrawText writes text left to right from (x, y) in one color pair. Clipping
// is up to the display.
func DrawText(d Display, x, y int, text string, fg, bg Color) {
	i := 0
	for _, r := range text {
		d.WriteCell(x+i, y, Cell{Rune: r, Fg: fg, Bg: bg})
		i++
	}
}

// FillRect writes c to every position of r.
func FillRect(d Display, r Rect, c Cell) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			d.WriteCell(x, y, c)
		}
	}
}
