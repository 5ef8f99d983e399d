package grid

import "testing"

func TestTransform_RoundTrip(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {2, 2}, {5, 3}, {8, 8}, {17, 9}} {
		w, h := dims[0], dims[1]
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				p := Point{X: x, Y: y}
				got := DisplayToInternal(InternalToDisplay(p, w, h), w, h)
				if got != p {
					t.Fatalf("%dx%d: round trip of (%d,%d) gave (%d,%d)",
						w, h, x, y, got.X, got.Y)
				}
			}
		}
	}
}

func TestTransform_CenterMapsToZero(t *testing.T) {
	for _, dims := range [][2]int{{5, 5}, {6, 4}, {7, 10}} {
		w, h := dims[0], dims[1]
		c := Center(w, h)
		if c.X != w/2 || c.Y != h/2 {
			t.Fatalf("center of %dx%d = (%d,%d), want floor halves", w, h, c.X, c.Y)
		}
		d := InternalToDisplay(c, w, h)
		if d.X != 0 || d.Y != 0 {
			t.Fatalf("center of %dx%d maps to (%d,%d), want (0,0)", w, h, d.X, d.Y)
		}
	}
}

func TestShiftOriginToStart_Formula(t *testing.T) {
	s := NewState(10, 10, 0.5)
	s.Meta.Start = &Point{X: 3, Y: 7}
	s.Meta.Goal = &Point{X: 8, Y: 2}
	s.Meta.Origin = Pose{X: 4, Y: -2, Theta: 1.25}

	m := ShiftOriginToStart(s)
	if m.Origin.X != -1.5 || m.Origin.Y != -3.5 {
		t.Fatalf("origin = (%g,%g), want (-1.5,-3.5)", m.Origin.X, m.Origin.Y)
	}
	if m.Origin.Theta != 1.25 {
		t.Fatal("rotation must be unchanged")
	}
}

func TestShiftOriginToStart_OnlyOriginChanges(t *testing.T) {
	s := NewState(6, 6, 0.1)
	s.Grid.Set(2, 2, Occupied)
	s.Meta.Start = &Point{X: 1, Y: 1}
	s.Meta.Goal = &Point{X: 4, Y: 4}
	before := s.Clone()

	m := ShiftOriginToStart(s)

	// Source state untouched.
	for i, c := range s.Grid.Cells {
		if c != before.Grid.Cells[i] {
			t.Fatal("shift must never touch the buffer")
		}
	}
	if *s.Meta.Start != *before.Meta.Start || *s.Meta.Goal != *before.Meta.Goal {
		t.Fatal("shift must never move the stored start/goal indices")
	}
	// Returned metadata keeps the same indices too.
	if *m.Start != *before.Meta.Start || *m.Goal != *before.Meta.Goal {
		t.Fatal("returned metadata must keep the internal start/goal indices")
	}
}

func TestShiftOriginToStart_IdentityWithoutStart(t *testing.T) {
	s := NewState(6, 6, 0.1)
	s.Meta.Origin = Pose{X: 3, Y: 4, Theta: 0.5}
	m := ShiftOriginToStart(s)
	if m.Origin != s.Meta.Origin {
		t.Fatal("no start set: shift must be the identity")
	}
}
