package grid

// ShapeType names one of the stampable obstacle shapes.
type ShapeType string

const (
	ShapeRect     ShapeType = "rect"
	ShapeSquare   ShapeType = "square"
	ShapeCircle   ShapeType = "circle"
	ShapeTriangle ShapeType = "triangle"
	ShapeCross    ShapeType = "cross"
	ShapeRoom     ShapeType = "room"
)

// AllShapes lists every supported shape type.
var AllShapes = []ShapeType{
	ShapeRect, ShapeSquare, ShapeCircle, ShapeTriangle, ShapeCross, ShapeRoom,
}

// ShapeOptions configures random shape scattering.
type ShapeOptions struct {
	Shapes       []ShapeType // enabled shapes; empty falls back to AllShapes
	Count        int         // target number of placed shapes
	MinSize      int         // inclusive size range for each shape
	MaxSize      int
	Spacing      int  // Chebyshev margin kept clear around each shape
	AllowOverlap bool // skip the occupancy check entirely
	ClearFirst   bool // start from an all-Free buffer instead of a copy
}

// DefaultShapeOptions returns a moderate scatter over all shapes.
func DefaultShapeOptions() ShapeOptions {
	return ShapeOptions{
		Shapes:  AllShapes,
		Count:   12,
		MinSize: 3,
		MaxSize: 9,
		Spacing: 1,
	}
}

// shapeAttemptFactor bounds rejection sampling: the total attempt budget is
// Count * shapeAttemptFactor.
const shapeAttemptFactor = 100

// Shapes scatters random Occupied shapes over the grid by rejection
// sampling and returns a new buffer; the input is never mutated. Each
// attempt picks a shape, center, and size at random; without AllowOverlap
// the placement is rejected when any covered cell, padded by Spacing, is
// already Occupied. Placing fewer than Count shapes is a normal outcome when
// the attempt budget runs out — dense options simply stop fitting.
func (g *Generator) Shapes(cells []Cell, width, height int, opt ShapeOptions) []Cell {
	var out Grid
	if opt.ClearFirst {
		out = NewGrid(width, height)
	} else {
		out = Grid{Width: width, Height: height, Cells: append([]Cell(nil), cells...)}
	}

	shapes := opt.Shapes
	if len(shapes) == 0 {
		shapes = AllShapes
	}

	placed := 0
	for attempt := 0; attempt < opt.Count*shapeAttemptFactor && placed < opt.Count; attempt++ {
		shape := shapes[g.rng.Intn(len(shapes))]
		cx := g.rng.Intn(width)
		cy := g.rng.Intn(height)
		size := g.randSize(opt)
		size2 := g.randSize(opt)

		cover := shapeCells(shape, cx, cy, size, size2)
		if !opt.AllowOverlap && !placementClear(out, cover, opt.Spacing) {
			continue
		}
		for _, p := range cover {
			out.Set(p.X, p.Y, Occupied)
		}
		placed++
	}
	return out.Cells
}

// randSize draws a size uniformly from [MinSize, MaxSize].
func (g *Generator) randSize(opt ShapeOptions) int {
	span := opt.MaxSize - opt.MinSize + 1
	if span <= 1 {
		return opt.MinSize
	}
	return opt.MinSize + g.rng.Intn(span)
}

// placementClear reports whether every covered cell, padded by the spacing
// margin, is free of existing Occupied cells. Off-grid cells never conflict.
func placementClear(g Grid, cover []Point, spacing int) bool {
	for _, p := range cover {
		for dy := -spacing; dy <= spacing; dy++ {
			for dx := -spacing; dx <= spacing; dx++ {
				if g.At(p.X+dx, p.Y+dy) == Occupied {
					return false
				}
			}
		}
	}
	return true
}

// shapeCells enumerates the integer cells covered by a shape centered at
// (cx, cy). size2 is the secondary extent for rect and room; the other
// shapes ignore it. Cells may be off-grid; callers clip at stamp time.
func shapeCells(shape ShapeType, cx, cy, size, size2 int) []Point {
	switch shape {
	case ShapeSquare:
		return rectCells(cx, cy, size, size)
	case ShapeRect:
		return rectCells(cx, cy, size, size2)
	case ShapeCircle:
		return circleCells(cx, cy, size/2)
	case ShapeTriangle:
		return triangleCells(cx, cy, size)
	case ShapeCross:
		return crossCells(cx, cy, size)
	case ShapeRoom:
		return roomCells(cx, cy, size, size2)
	default:
		return nil
	}
}

// rectCells fills a w×h axis-aligned rectangle centered at (cx, cy).
func rectCells(cx, cy, w, h int) []Point {
	pts := make([]Point, 0, w*h)
	x0, y0 := cx-w/2, cy-h/2
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			pts = append(pts, Point{X: x, Y: y})
		}
	}
	return pts
}

// circleCells fills a disk of the given radius: dx²+dy² ≤ r².
func circleCells(cx, cy, r int) []Point {
	var pts []Point
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				pts = append(pts, Point{X: cx + dx, Y: cy + dy})
			}
		}
	}
	return pts
}

// triangleCells fills an isosceles triangle of the given height, apex up.
// Row r below the apex has half-width r, a one-cell-per-row taper.
func triangleCells(cx, cy, height int) []Point {
	var pts []Point
	apexY := cy - height/2
	for row := 0; row < height; row++ {
		half := row
		for dx := -half; dx <= half; dx++ {
			pts = append(pts, Point{X: cx + dx, Y: apexY + row})
		}
	}
	return pts
}

// crossCells overlays a horizontal and a vertical bar of length size and
// thickness max(1, size/3), both centered at (cx, cy).
func crossCells(cx, cy, size int) []Point {
	t := size / 3
	if t < 1 {
		t = 1
	}
	pts := rectCells(cx, cy, size, t)
	for _, p := range rectCells(cx, cy, t, size) {
		pts = append(pts, p)
	}
	return pts
}

// roomCells traces the border of a w×h rectangle centered at (cx, cy):
// a hollow room with 1-cell walls.
func roomCells(cx, cy, w, h int) []Point {
	var pts []Point
	x0, y0 := cx-w/2, cy-h/2
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if x == x0 || x == x0+w-1 || y == y0 || y == y0+h-1 {
				pts = append(pts, Point{X: x, Y: y})
			}
		}
	}
	return pts
}
