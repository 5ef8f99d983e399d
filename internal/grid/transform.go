package grid

// Frame tags the coordinate frame of a serialized point. Import/export must
// carry the frame explicitly; inferring it from whether a point happens to
// fall inside the grid bounds is ambiguous for small grids.
type Frame string

const (
	// FrameInternal is 0-based with a top-left origin, the storage frame.
	FrameInternal Frame = "internal"
	// FrameDisplay is centered: the grid's geometric center maps to (0,0).
	FrameDisplay Frame = "display"
)

// Center returns the internal coordinates of the grid's geometric center,
// floor(width/2) and floor(height/2). This is the display-frame origin.
func Center(width, height int) Point {
	return Point{X: width / 2, Y: height / 2}
}

// InternalToDisplay converts a point from the internal frame to the
// center-based display frame. Exact inverse of DisplayToInternal over
// integers.
func InternalToDisplay(p Point, width, height int) Point {
	c := Center(width, height)
	return Point{X: p.X - c.X, Y: p.Y - c.Y}
}

// DisplayToInternal converts a point from the display frame back to the
// internal frame.
func DisplayToInternal(p Point, width, height int) Point {
	c := Center(width, height)
	return Point{X: p.X + c.X, Y: p.Y + c.Y}
}

// ShiftOriginToStart returns metadata whose world origin is recomputed so
// the start cell's world coordinate becomes (0,0). The buffer and the stored
// internal start/goal indices are untouched: only the world-to-cell mapping
// changes. Moving pixels instead would force a repaint and corrupt any
// absolute obstacle layout. Identity when no start is set.
func ShiftOriginToStart(s State) Metadata {
	m := s.Meta.Clone()
	if m.Start == nil {
		return m
	}
	r := m.Resolution
	m.Origin.X = -(float64(m.Start.X) * r)
	m.Origin.Y = -(float64(m.Start.Y) * r)
	return m
}
