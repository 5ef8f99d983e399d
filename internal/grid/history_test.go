package grid

import "testing"

// mark stamps a recognizable value into a state's first cell.
func mark(s State, v Cell) State {
	c := s.Clone()
	c.Grid.Cells[0] = v
	return c
}

func TestHistory_UndoRedo(t *testing.T) {
	h := NewHistory()
	base := NewState(3, 3, 0.05)
	h.Push(base)
	h.Push(mark(base, Occupied))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after two pushes")
	}
	s, ok := h.Undo()
	if !ok {
		t.Fatal("undo reported unavailable")
	}
	if s.Grid.Cells[0] != Free {
		t.Fatalf("undo returned cell %v, want free", s.Grid.Cells[0])
	}
	if _, ok := h.Undo(); ok {
		t.Fatal("undo at the oldest entry must report unavailable")
	}

	s, ok = h.Redo()
	if !ok {
		t.Fatal("redo reported unavailable")
	}
	if s.Grid.Cells[0] != Occupied {
		t.Fatalf("redo returned cell %v, want occupied", s.Grid.Cells[0])
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("redo at the newest entry must report unavailable")
	}
}

func TestHistory_PushTruncatesRedoTail(t *testing.T) {
	h := NewHistory()
	base := NewState(3, 3, 0.05)
	h.Push(base)
	h.Push(mark(base, Occupied))
	h.Push(mark(base, Unknown))

	h.Undo()
	h.Undo()
	h.Push(mark(base, Occupied)) // discards the two undone entries

	if h.CanRedo() {
		t.Fatal("push after undo must discard the redo tail")
	}
	if h.Len() != 2 {
		t.Fatalf("history length %d, want 2", h.Len())
	}
}

func TestHistory_CapEvictsOldest(t *testing.T) {
	h := NewHistory()
	base := NewState(3, 3, 0.05)
	for i := 0; i < HistoryCap+10; i++ {
		h.Push(mark(base, Cell(0)))
	}
	if h.Len() != HistoryCap {
		t.Fatalf("history length %d, want %d", h.Len(), HistoryCap)
	}
}

func TestHistory_SnapshotsAreIsolated(t *testing.T) {
	h := NewHistory()
	base := NewState(3, 3, 0.05)
	h.Push(base)
	h.Push(base)

	s, _ := h.Undo()
	s.Grid.Cells[0] = Occupied // mutate the returned copy
	h.Redo()
	prev, _ := h.Undo()
	if prev.Grid.Cells[0] != Free {
		t.Fatal("mutating a returned state must not corrupt the stored snapshot")
	}
}
