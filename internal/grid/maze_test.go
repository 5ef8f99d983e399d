package grid

import "testing"

func TestMaze_TooSmallStaysOccupied(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(1)
	for _, dims := range [][2]int{{1, 1}, {2, 5}, {5, 2}} {
		cells := g.Maze(dims[0], dims[1])
		for _, c := range cells {
			if c != Occupied {
				t.Fatalf("%dx%d maze should be fully occupied", dims[0], dims[1])
			}
		}
	}
}

func TestMaze_BorderIsOccupied(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(7)
	w, h := 21, 15
	cells := g.Maze(w, h)
	grid := Grid{Width: w, Height: h, Cells: cells}
	for x := 0; x < w; x++ {
		if grid.At(x, 0) != Occupied || grid.At(x, h-1) != Occupied {
			t.Fatalf("border cell in column %d is not occupied", x)
		}
	}
	for y := 0; y < h; y++ {
		if grid.At(0, y) != Occupied || grid.At(w-1, y) != Occupied {
			t.Fatalf("border cell in row %d is not occupied", y)
		}
	}
}

// TestMaze_Perfect checks the two structural properties of a perfect maze:
// every free cell is reachable from (1,1) by 4-connectivity, and the free
// subgraph is a tree (edge count = free cells - 1).
func TestMaze_Perfect(t *testing.T) {
	g := NewGenerator()
	for seed := int64(0); seed < 5; seed++ {
		g.SetSeed(seed)
		w, h := 31, 23
		grid := Grid{Width: w, Height: h, Cells: g.Maze(w, h)}

		free := 0
		for _, c := range grid.Cells {
			if c == Free {
				free++
			}
		}
		if free == 0 {
			t.Fatalf("seed %d: maze carved nothing", seed)
		}

		// Flood fill from the lattice root.
		seen := make([]bool, w*h)
		queue := []Point{{X: 1, Y: 1}}
		seen[1*w+1] = true
		reached := 0
		edges := 0
		for len(queue) > 0 {
			p := queue[0]
			queue = queue[1:]
			reached++
			for _, d := range [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
				nx, ny := p.X+d.X, p.Y+d.Y
				if grid.At(nx, ny) != Free {
					continue
				}
				// Count each undirected edge once (toward higher index).
				if ny*w+nx > p.Y*w+p.X {
					edges++
				}
				if !seen[ny*w+nx] {
					seen[ny*w+nx] = true
					queue = append(queue, Point{X: nx, Y: ny})
				}
			}
		}
		if reached != free {
			t.Fatalf("seed %d: %d of %d free cells reachable from (1,1)", seed, reached, free)
		}
		if edges != free-1 {
			t.Fatalf("seed %d: free subgraph has %d edges for %d cells, want a tree", seed, edges, free)
		}
	}
}

func TestMaze_DeterministicForSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(42)
	a := g.Maze(21, 21)
	g.SetSeed(42)
	b := g.Maze(21, 21)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed must produce the same maze")
		}
	}
}
