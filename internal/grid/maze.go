package grid

// Maze generates a brand-new width×height buffer containing a perfect maze:
// every Free cell reachable from every other, no cycles, bordered by a
// 1-cell Occupied wall. Existing grid content is ignored.
//
// The algorithm is a randomized depth-first backtracker over the step-2
// lattice: carveable cells are those with both coordinates odd, walls sit on
// the even rows/columns between them. Grids smaller than 3×3 in either axis
// have no lattice to carve and come back fully Occupied.
func (g *Generator) Maze(width, height int) []Cell {
	cells := NewCells(width, height, Occupied)
	if width < 3 || height < 3 {
		return cells
	}

	idx := func(x, y int) int { return y*width + x }

	visited := make([]bool, width*height)
	start := Point{X: 1, Y: 1}
	cells[idx(start.X, start.Y)] = Free
	visited[idx(start.X, start.Y)] = true

	stack := []Point{start}
	steps := [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		// Unvisited lattice neighbors at distance 2, strictly inside the
		// 1-cell border.
		var next []Point
		for _, d := range steps {
			n := Point{X: cur.X + d.X, Y: cur.Y + d.Y}
			if n.X < 1 || n.X > width-2 || n.Y < 1 || n.Y > height-2 {
				continue
			}
			if visited[idx(n.X, n.Y)] {
				continue
			}
			next = append(next, n)
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		n := next[g.rng.Intn(len(next))]
		// Open the connecting wall (the midpoint) and the neighbor itself.
		cells[idx((cur.X+n.X)/2, (cur.Y+n.Y)/2)] = Free
		cells[idx(n.X, n.Y)] = Free
		visited[idx(n.X, n.Y)] = true
		stack = append(stack, n)
	}
	return cells
}
