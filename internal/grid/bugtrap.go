package grid

// BugtrapOptions sizes the U-shaped trap. All spans are in cells.
type BugtrapOptions struct {
	Width     int // outer vertical span of the U
	Length    int // outer horizontal span (arm length)
	Thickness int // wall thickness of the back wall and both arms
	Aperture  int // height of the centered gap in the back wall, 0 for none
}

// DefaultBugtrapOptions returns the classic planner-stressing trap.
func DefaultBugtrapOptions() BugtrapOptions {
	return BugtrapOptions{Width: 20, Length: 30, Thickness: 2, Aperture: 0}
}

// Bugtrap stamps a U-shaped Occupied structure centered on the grid,
// mutating cells in place. The caller owns the buffer and pre-clears it if a
// clean slate is wanted. The U opens to the right: a vertical back wall on
// the left and two horizontal arms. An aperture leaves a centered gap in the
// back wall, split floor(a/2) rows above the wall's vertical midpoint and
// ceil(a/2) below. Everything is clipped silently at the grid edges.
func Bugtrap(cells []Cell, width, height int, opt BugtrapOptions) {
	g := Grid{Width: width, Height: height, Cells: cells}
	cx, cy := width/2, height/2

	x0 := cx - opt.Length/2
	y0 := cy - opt.Width/2
	x1 := x0 + opt.Length - 1
	y1 := y0 + opt.Width - 1

	gapTop := cy - opt.Aperture/2
	gapBottom := cy + (opt.Aperture+1)/2 - 1

	// Back wall, skipping the aperture rows.
	for x := x0; x < x0+opt.Thickness; x++ {
		for y := y0; y <= y1; y++ {
			if opt.Aperture > 0 && y >= gapTop && y <= gapBottom {
				continue
			}
			g.Set(x, y, Occupied)
		}
	}

	// Top and bottom arms.
	for x := x0; x <= x1; x++ {
		for y := y0; y < y0+opt.Thickness; y++ {
			g.Set(x, y, Occupied)
		}
		for y := y1 - opt.Thickness + 1; y <= y1; y++ {
			g.Set(x, y, Occupied)
		}
	}
}
