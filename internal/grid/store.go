package grid

import "fmt"

// Store owns the current grid state and its undo history. Every mutating
// operation pushes exactly one history entry; Undo and Redo only move the
// history cursor. The store is single-threaded by design: callers are the
// UI / CLI layer, which serialises all access.
type Store struct {
	current State
	history *History
}

// NewStore creates a store holding an all-Free grid of the given dimensions.
// The initial state is recorded as the first history entry so that the first
// commit can be undone.
func NewStore(width, height int, resolution float64) *Store {
	s := &Store{
		current: NewState(width, height, resolution),
		history: NewHistory(),
	}
	s.history.Push(s.current)
	return s
}

// NewStoreFrom creates a store seeded with an existing state, e.g. one
// decoded from a saved document.
func NewStoreFrom(initial State) (*Store, error) {
	if err := initial.Validate(); err != nil {
		return nil, err
	}
	s := &Store{current: initial.Clone(), history: NewHistory()}
	s.history.Push(s.current)
	return s, nil
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return s.current.Clone()
}

// Width returns the current grid width.
func (s *Store) Width() int { return s.current.Grid.Width }

// Height returns the current grid height.
func (s *Store) Height() int { return s.current.Grid.Height }

// History exposes the undo history, mainly for availability queries
// (CanUndo / CanRedo) by the UI.
func (s *Store) History() *History {
	return s.history
}

// commit replaces the current state and records it.
func (s *Store) commit(next State) State {
	s.current = next
	s.history.Push(next)
	return next.Clone()
}

// Commit replaces the grid content with the given buffer and dimensions,
// leaving metadata untouched, and pushes a history entry. A buffer whose
// length does not match width*height is a caller contract violation and is
// rejected without touching the store.
func (s *Store) Commit(cells []Cell, width, height int) (State, error) {
	if width <= 0 || height <= 0 {
		return State{}, fmt.Errorf("commit: non-positive dimensions %dx%d", width, height)
	}
	if len(cells) != width*height {
		return State{}, fmt.Errorf("commit: buffer length %d does not match %dx%d",
			len(cells), width, height)
	}
	next := s.current.Clone()
	next.Grid = Grid{Width: width, Height: height, Cells: append([]Cell(nil), cells...)}
	next.Meta = clipPointsToBounds(next.Meta, width, height)
	return s.commit(next), nil
}

// Resize produces a new all-Free buffer of the requested size and pastes the
// old content shifted by (offsetX, offsetY), clipping cells that land
// outside. Positive offsets grow from the left/top edge; source cells that
// fall outside the new bounds are discarded. Start/goal points are shifted
// with the content and cleared if they leave the grid.
func (s *Store) Resize(newWidth, newHeight, offsetX, offsetY int) (State, error) {
	if newWidth <= 0 || newHeight <= 0 {
		return State{}, fmt.Errorf("resize: non-positive dimensions %dx%d", newWidth, newHeight)
	}
	old := s.current.Grid
	next := s.current.Clone()
	next.Grid = NewGrid(newWidth, newHeight)
	for y := 0; y < old.Height; y++ {
		for x := 0; x < old.Width; x++ {
			next.Grid.Set(x+offsetX, y+offsetY, old.At(x, y))
		}
	}
	next.Meta.Start = shiftPoint(next.Meta.Start, offsetX, offsetY)
	next.Meta.Goal = shiftPoint(next.Meta.Goal, offsetX, offsetY)
	next.Meta = clipPointsToBounds(next.Meta, newWidth, newHeight)
	return s.commit(next), nil
}

// SetStart places the start cell. Out-of-bounds coordinates are rejected.
func (s *Store) SetStart(x, y int) (State, error) {
	if !s.current.Grid.InBounds(x, y) {
		return State{}, fmt.Errorf("set start: (%d,%d) out of bounds for %dx%d",
			x, y, s.current.Grid.Width, s.current.Grid.Height)
	}
	next := s.current.Clone()
	next.Meta.Start = &Point{X: x, Y: y}
	return s.commit(next), nil
}

// SetGoal places the goal cell. Out-of-bounds coordinates are rejected.
func (s *Store) SetGoal(x, y int) (State, error) {
	if !s.current.Grid.InBounds(x, y) {
		return State{}, fmt.Errorf("set goal: (%d,%d) out of bounds for %dx%d",
			x, y, s.current.Grid.Width, s.current.Grid.Height)
	}
	next := s.current.Clone()
	next.Meta.Goal = &Point{X: x, Y: y}
	return s.commit(next), nil
}

// ClearStart removes the start cell. Committed even when already unset.
func (s *Store) ClearStart() State {
	next := s.current.Clone()
	next.Meta.Start = nil
	return s.commit(next)
}

// ClearGoal removes the goal cell. Committed even when already unset.
func (s *Store) ClearGoal() State {
	next := s.current.Clone()
	next.Meta.Goal = nil
	return s.commit(next)
}

// SetResolution updates the physical resolution. Non-positive values are
// rejected.
func (s *Store) SetResolution(res float64) (State, error) {
	if res <= 0 {
		return State{}, fmt.Errorf("set resolution: non-positive value %g", res)
	}
	next := s.current.Clone()
	next.Meta.Resolution = res
	return s.commit(next), nil
}

// SetOrigin updates the world pose of internal cell (0,0).
func (s *Store) SetOrigin(origin Pose) State {
	next := s.current.Clone()
	next.Meta.Origin = origin
	return s.commit(next)
}

// Clear replaces the content with an all-Free buffer of the same size.
func (s *Store) Clear() State {
	next := s.current.Clone()
	next.Grid = NewGrid(next.Grid.Width, next.Grid.Height)
	return s.commit(next)
}

// Undo steps back one history entry. The second return is false when no
// older entry exists; the store is unchanged in that case.
func (s *Store) Undo() (State, bool) {
	prev, ok := s.history.Undo()
	if !ok {
		return State{}, false
	}
	s.current = prev
	return prev.Clone(), true
}

// Redo steps forward one history entry. The second return is false when no
// newer entry exists.
func (s *Store) Redo() (State, bool) {
	next, ok := s.history.Redo()
	if !ok {
		return State{}, false
	}
	s.current = next
	return next.Clone(), true
}

// shiftPoint translates an optional point, preserving nil.
func shiftPoint(p *Point, dx, dy int) *Point {
	if p == nil {
		return nil
	}
	return &Point{X: p.X + dx, Y: p.Y + dy}
}

// clipPointsToBounds clears start/goal that no longer fit the dimensions.
// A shrink that orphans a point drops it rather than clamping: a clamped
// point would silently mark a cell the user never chose.
func clipPointsToBounds(m Metadata, width, height int) Metadata {
	if p := m.Start; p != nil && (p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height) {
		m.Start = nil
	}
	if p := m.Goal; p != nil && (p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height) {
		m.Goal = nil
	}
	return m
}
