package grid

import "testing"

func TestShapeCells_Circle(t *testing.T) {
	pts := circleCells(0, 0, 2)
	member := make(map[Point]bool, len(pts))
	for _, p := range pts {
		member[p] = true
	}
	if !member[(Point{X: 0, Y: 0})] || !member[(Point{X: 2, Y: 0})] || !member[(Point{X: 0, Y: -2})] {
		t.Fatal("disk must contain its center and axis extremes")
	}
	if member[(Point{X: 2, Y: 2})] {
		t.Fatal("corner (2,2) lies outside radius 2")
	}
}

func TestShapeCells_RoomIsHollow(t *testing.T) {
	pts := roomCells(5, 5, 6, 4)
	member := make(map[Point]bool, len(pts))
	for _, p := range pts {
		member[p] = true
	}
	// 6x4 border: 2*6 + 2*4 - 4 corners counted once.
	if len(pts) != 16 {
		t.Fatalf("6x4 room border has %d cells, want 16", len(pts))
	}
	if member[(Point{X: 5, Y: 5})] {
		t.Fatal("room interior must stay empty")
	}
}

func TestShapeCells_CrossThickness(t *testing.T) {
	pts := crossCells(10, 10, 9) // thickness 3
	member := make(map[Point]bool, len(pts))
	for _, p := range pts {
		member[p] = true
	}
	if !member[(Point{X: 10, Y: 10})] {
		t.Fatal("cross must cover its center")
	}
	// Horizontal bar spans 9 cells at thickness 3.
	if !member[(Point{X: 6, Y: 9})] || !member[(Point{X: 6, Y: 11})] {
		t.Fatal("horizontal bar should be 3 cells thick")
	}
	// Minimum thickness is 1.
	thin := crossCells(0, 0, 2)
	if len(thin) == 0 {
		t.Fatal("size-2 cross must still produce cells")
	}
}

func TestShapeCells_Triangle(t *testing.T) {
	pts := triangleCells(0, 0, 5)
	member := make(map[Point]bool, len(pts))
	for _, p := range pts {
		member[p] = true
	}
	apexY := -2
	if !member[(Point{X: 0, Y: apexY})] {
		t.Fatal("apex row missing")
	}
	if member[(Point{X: 1, Y: apexY})] {
		t.Fatal("apex row must be a single cell")
	}
	// Row 4 below the apex spans half-width 4.
	if !member[(Point{X: -4, Y: apexY + 4})] || !member[(Point{X: 4, Y: apexY + 4})] {
		t.Fatal("base row should span the full taper")
	}
}

func TestShapes_ClearFirst(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(3)
	w, h := 30, 30
	cells := NewCells(w, h, Unknown)
	out := g.Shapes(cells, w, h, ShapeOptions{
		Shapes: []ShapeType{ShapeSquare}, Count: 2, MinSize: 3, MaxSize: 3,
		ClearFirst: true,
	})
	for _, c := range out {
		if c == Unknown {
			t.Fatal("ClearFirst must start from an all-free buffer")
		}
	}
	// Input is never mutated.
	for _, c := range cells {
		if c != Unknown {
			t.Fatal("shape scatter must not mutate its input buffer")
		}
	}
}

func TestShapes_KeepsExistingContent(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(5)
	w, h := 20, 20
	cells := NewCells(w, h, Free)
	cells[0] = Unknown
	out := g.Shapes(cells, w, h, ShapeOptions{
		Shapes: []ShapeType{ShapeSquare}, Count: 1, MinSize: 3, MaxSize: 3,
		AllowOverlap: true,
	})
	if out[0] != Unknown && out[0] != Occupied {
		t.Fatal("without ClearFirst the existing content must be preserved")
	}
}

// TestShapes_SpacingKeepsClearance seeds the grid with a block and checks
// that rejection sampling never stamps a cell adjacent to it.
func TestShapes_SpacingKeepsClearance(t *testing.T) {
	w, h := 40, 40
	base := NewCells(w, h, Free)
	seeded := Grid{Width: w, Height: h, Cells: base}
	for y := 18; y <= 21; y++ {
		for x := 18; x <= 21; x++ {
			seeded.Set(x, y, Occupied)
		}
	}

	g := NewGenerator()
	for seed := int64(0); seed < 4; seed++ {
		g.SetSeed(seed)
		out := g.Shapes(base, w, h, ShapeOptions{
			Shapes: AllShapes, Count: 10, MinSize: 3, MaxSize: 6, Spacing: 1,
		})
		res := Grid{Width: w, Height: h, Cells: out}
		// Every cell Chebyshev-adjacent to the seeded block must still be free.
		for y := 17; y <= 22; y++ {
			for x := 17; x <= 22; x++ {
				onBlock := x >= 18 && x <= 21 && y >= 18 && y <= 21
				if !onBlock && res.At(x, y) == Occupied {
					t.Fatalf("seed %d: cell (%d,%d) violates the spacing margin", seed, x, y)
				}
			}
		}
	}
}

func TestShapes_BudgetExhaustionIsNotAnError(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(1)
	// A 5x5 grid cannot fit 50 non-overlapping size-4 shapes; the generator
	// must stop at the attempt budget and return what it placed.
	out := g.Shapes(NewCells(5, 5, Free), 5, 5, ShapeOptions{
		Shapes: []ShapeType{ShapeSquare}, Count: 50, MinSize: 4, MaxSize: 4, Spacing: 1,
	})
	if len(out) != 25 {
		t.Fatalf("output length %d, want 25", len(out))
	}
}

func TestShapes_AllowOverlapStampsEverything(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(9)
	w, h := 15, 15
	out := g.Shapes(NewCells(w, h, Free), w, h, ShapeOptions{
		Shapes: []ShapeType{ShapeCircle}, Count: 30, MinSize: 5, MaxSize: 9,
		AllowOverlap: true,
	})
	occupied := 0
	for _, c := range out {
		if c == Occupied {
			occupied++
		}
	}
	if occupied == 0 {
		t.Fatal("overlapping scatter on a small grid should occupy cells")
	}
}
