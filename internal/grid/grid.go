package grid

import "fmt"

// Point is an integer cell coordinate. Unless stated otherwise it is in the
// internal frame: 0-based, top-left origin, x < Width, y < Height.
type Point struct {
	X int
	Y int
}

// Pose is a world-space position and rotation, in meters and radians.
type Pose struct {
	X     float64
	Y     float64
	Theta float64
}

// Metadata is the navigation metadata attached to a grid: physical resolution,
// the world pose of internal cell (0,0), and optional start/goal cells.
// Start and Goal are independent; neither implies the other.
type Metadata struct {
	Resolution float64 // meters per cell, > 0
	Origin     Pose
	Start      *Point // internal frame, nil when unset
	Goal       *Point // internal frame, nil when unset
}

// Clone returns a deep copy. The optional points are copied so that a
// snapshot never aliases live metadata.
func (m Metadata) Clone() Metadata {
	out := m
	if m.Start != nil {
		p := *m.Start
		out.Start = &p
	}
	if m.Goal != nil {
		p := *m.Goal
		out.Goal = &p
	}
	return out
}

// Grid is a rectangular occupancy grid stored as a flat row-major buffer.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell // len == Width*Height, index = y*Width + x
}

// NewGrid creates an all-Free grid of the given dimensions.
func NewGrid(width, height int) Grid {
	return Grid{Width: width, Height: height, Cells: NewCells(width, height, Free)}
}

// InBounds returns true if (x, y) is inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the cell at (x, y), or Unknown if out of bounds.
func (g Grid) At(x, y int) Cell {
	if !g.InBounds(x, y) {
		return Unknown
	}
	return g.Cells[y*g.Width+x]
}

// Set writes the cell at (x, y). Out-of-bounds writes are silently dropped.
func (g Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.Cells[y*g.Width+x] = c
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{Width: g.Width, Height: g.Height, Cells: cells}
}

// State is a full editable map: grid content plus navigation metadata.
type State struct {
	Grid Grid
	Meta Metadata
}

// NewState creates an all-Free state with the given resolution and a zero
// world origin.
func NewState(width, height int, resolution float64) State {
	return State{
		Grid: NewGrid(width, height),
		Meta: Metadata{Resolution: resolution},
	}
}

// Clone returns a deep copy suitable for a history snapshot.
func (s State) Clone() State {
	return State{Grid: s.Grid.Clone(), Meta: s.Meta.Clone()}
}

// Validate checks the structural invariants: buffer length matches the
// dimensions, every cell holds a legal value, and start/goal (when set) are
// in bounds.
func (s State) Validate() error {
	if s.Grid.Width <= 0 || s.Grid.Height <= 0 {
		return fmt.Errorf("grid: non-positive dimensions %dx%d", s.Grid.Width, s.Grid.Height)
	}
	if len(s.Grid.Cells) != s.Grid.Width*s.Grid.Height {
		return fmt.Errorf("grid: buffer length %d does not match %dx%d",
			len(s.Grid.Cells), s.Grid.Width, s.Grid.Height)
	}
	for i, c := range s.Grid.Cells {
		if !c.Valid() {
			return fmt.Errorf("grid: invalid cell value %d at index %d", int8(c), i)
		}
	}
	if s.Meta.Resolution <= 0 {
		return fmt.Errorf("grid: non-positive resolution %g", s.Meta.Resolution)
	}
	if p := s.Meta.Start; p != nil && !s.Grid.InBounds(p.X, p.Y) {
		return fmt.Errorf("grid: start (%d,%d) out of bounds", p.X, p.Y)
	}
	if p := s.Meta.Goal; p != nil && !s.Grid.InBounds(p.X, p.Y) {
		return fmt.Errorf("grid: goal (%d,%d) out of bounds", p.X, p.Y)
	}
	return nil
}
