package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gridmapper/internal/grid"
)

// TaggedPoint is a point with an explicit coordinate frame. The frame
// travels with the point: an importer must never guess the frame from
// whether the coordinates happen to fall inside the grid, because a small
// grid makes display-centered coordinates in-bounds too.
type TaggedPoint struct {
	X     int        `json:"x"`
	Y     int        `json:"y"`
	Frame grid.Frame `json:"frame"`
}

// Document is the JSON serialization of a full grid state.
type Document struct {
	Width      int          `json:"width"`
	Height     int          `json:"height"`
	Resolution float64      `json:"resolution"`
	Origin     [3]float64   `json:"origin"` // x, y, theta
	Start      *TaggedPoint `json:"start,omitempty"`
	Goal       *TaggedPoint `json:"goal,omitempty"`
	Cells      []int8       `json:"cells"` // row-major occupancy values
}

// NewDocument builds a document from a state, tagging points as internal.
func NewDocument(s grid.State) Document {
	doc := Document{
		Width:      s.Grid.Width,
		Height:     s.Grid.Height,
		Resolution: s.Meta.Resolution,
		Origin:     [3]float64{s.Meta.Origin.X, s.Meta.Origin.Y, s.Meta.Origin.Theta},
		Cells:      make([]int8, len(s.Grid.Cells)),
	}
	for i, c := range s.Grid.Cells {
		doc.Cells[i] = int8(c)
	}
	if p := s.Meta.Start; p != nil {
		doc.Start = &TaggedPoint{X: p.X, Y: p.Y, Frame: grid.FrameInternal}
	}
	if p := s.Meta.Goal; p != nil {
		doc.Goal = &TaggedPoint{X: p.X, Y: p.Y, Frame: grid.FrameInternal}
	}
	return doc
}

// WriteJSON writes the state as an indented JSON document.
func WriteJSON(w io.Writer, s grid.State) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(s)); err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	return nil
}

// ReadJSON parses a document and reconstructs a validated state. Points
// tagged with the display frame are converted to internal storage
// coordinates; a missing or unknown frame tag is an error.
func ReadJSON(r io.Reader) (grid.State, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return grid.State{}, fmt.Errorf("decode document: %w", err)
	}
	return doc.State()
}

// State converts the document back into a grid state, validating every
// invariant on the way.
func (d Document) State() (grid.State, error) {
	if d.Width <= 0 || d.Height <= 0 {
		return grid.State{}, fmt.Errorf("document: non-positive dimensions %dx%d", d.Width, d.Height)
	}
	if len(d.Cells) != d.Width*d.Height {
		return grid.State{}, fmt.Errorf("document: %d cells for %dx%d grid",
			len(d.Cells), d.Width, d.Height)
	}
	s := grid.State{
		Grid: grid.NewGrid(d.Width, d.Height),
		Meta: grid.Metadata{
			Resolution: d.Resolution,
			Origin:     grid.Pose{X: d.Origin[0], Y: d.Origin[1], Theta: d.Origin[2]},
		},
	}
	for i, v := range d.Cells {
		s.Grid.Cells[i] = grid.Cell(v)
	}

	start, err := resolvePoint(d.Start, d.Width, d.Height, "start")
	if err != nil {
		return grid.State{}, err
	}
	goal, err := resolvePoint(d.Goal, d.Width, d.Height, "goal")
	if err != nil {
		return grid.State{}, err
	}
	s.Meta.Start = start
	s.Meta.Goal = goal

	if err := s.Validate(); err != nil {
		return grid.State{}, fmt.Errorf("document: %w", err)
	}
	return s, nil
}

// resolvePoint maps a tagged point into the internal frame.
func resolvePoint(tp *TaggedPoint, width, height int, name string) (*grid.Point, error) {
	if tp == nil {
		return nil, nil
	}
	p := grid.Point{X: tp.X, Y: tp.Y}
	switch tp.Frame {
	case grid.FrameInternal:
	case grid.FrameDisplay:
		p = grid.DisplayToInternal(p, width, height)
	default:
		return nil, fmt.Errorf("document: %s has no coordinate frame tag", name)
	}
	if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
		return nil, fmt.Errorf("document: %s (%d,%d) out of bounds", name, p.X, p.Y)
	}
	return &p, nil
}
