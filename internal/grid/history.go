package grid

// HistoryCap is the maximum number of snapshots kept. Pushing past the cap
// evicts the oldest entry.
const HistoryCap = 20

// History is a bounded linear undo history: an ordered list of full-state
// snapshots and a single cursor pointing at the current one. Pushing after an
// undo discards the entries past the cursor; there is no redo-branch
// preservation.
type History struct {
	entries []State
	cursor  int // index of the current entry, -1 when empty
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.entries)
}

// Push records a snapshot of s as the new current entry. Entries after the
// cursor are dropped first, then the oldest entry is evicted if the list
// would exceed HistoryCap.
func (h *History) Push(s State) {
	h.entries = append(h.entries[:h.cursor+1], s.Clone())
	if len(h.entries) > HistoryCap {
		h.entries = h.entries[len(h.entries)-HistoryCap:]
	}
	h.cursor = len(h.entries) - 1
}

// CanUndo reports whether a previous snapshot exists.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool {
	return h.cursor >= 0 && h.cursor < len(h.entries)-1
}

// Undo moves the cursor back one entry and returns a copy of it. The second
// return is false when already at the oldest entry; the history is unchanged
// in that case.
func (h *History) Undo() (State, bool) {
	if !h.CanUndo() {
		return State{}, false
	}
	h.cursor--
	return h.entries[h.cursor].Clone(), true
}

// Redo moves the cursor forward one entry and returns a copy of it. The
// second return is false when already at the newest entry.
func (h *History) Redo() (State, bool) {
	if !h.CanRedo() {
		return State{}, false
	}
	h.cursor++
	return h.entries[h.cursor].Clone(), true
}
