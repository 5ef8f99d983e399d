package grid

// Cell is the occupancy value of one grid cell. The three values match the
// occupancy-grid convention used by map servers: 0 free, 100 occupied,
// -1 unknown. No other values are valid in a committed grid.
type Cell int8

const (
	Free     Cell = 0
	Occupied Cell = 100
	Unknown  Cell = -1
)

// Valid returns true if c is one of the three legal cell values.
func (c Cell) Valid() bool {
	return c == Free || c == Occupied || c == Unknown
}

// String returns a short name for logs and error messages.
func (c Cell) String() string {
	switch c {
	case Free:
		return "free"
	case Occupied:
		return "occupied"
	case Unknown:
		return "unknown"
	default:
		return "invalid"
	}
}

// NewCells allocates a row-major buffer of the given dimensions, filled with
// the fill value. Index = y*width + x, top-left origin.
func NewCells(width, height int, fill Cell) []Cell {
	cells := make([]Cell, width*height)
	if fill != Free {
		for i := range cells {
			cells[i] = fill
		}
	}
	return cells
}
