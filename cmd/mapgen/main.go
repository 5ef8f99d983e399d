// mapgen generates occupancy-grid maps from the command line and writes
// them in any of the editor's export formats. Useful for scripting planner
// test fixtures without opening the UI.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gridmapper/internal/export"
	"gridmapper/internal/grid"
)

func main() {
	var (
		mode       string
		width      int
		height     int
		seed       int64
		resolution float64
		format     string
		out        string
		startFlag  string
		goalFlag   string
		startRel   bool
		pngScale   int

		trapWidth     int
		trapLength    int
		trapThickness int
		trapAperture  int

		shapeList    string
		shapeCount   int
		shapeMin     int
		shapeMax     int
		shapeSpacing int
		allowOverlap bool
	)

	flag.StringVar(&mode, "mode", "maze", "generator: maze, bugtrap, shapes, empty")
	flag.IntVar(&width, "width", 64, "grid width in cells")
	flag.IntVar(&height, "height", 48, "grid height in cells")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.Float64Var(&resolution, "resolution", 0.05, "meters per cell")
	flag.StringVar(&format, "format", "mapserver", "output: mapserver, csv, json, png, text")
	flag.StringVar(&out, "out", "map", "output path (extension added per format)")
	flag.StringVar(&startFlag, "start", "", "start cell as x,y (internal frame)")
	flag.StringVar(&goalFlag, "goal", "", "goal cell as x,y (internal frame)")
	flag.BoolVar(&startRel, "start-relative", false, "shift the exported origin so the start is world (0,0)")
	flag.IntVar(&pngScale, "scale", 8, "pixels per cell for png output")

	flag.IntVar(&trapWidth, "trap-width", 20, "bugtrap: outer vertical span")
	flag.IntVar(&trapLength, "trap-length", 30, "bugtrap: outer horizontal span")
	flag.IntVar(&trapThickness, "trap-thickness", 2, "bugtrap: wall thickness")
	flag.IntVar(&trapAperture, "trap-aperture", 0, "bugtrap: back-wall gap height")

	flag.StringVar(&shapeList, "shapes", "", "shapes: comma list of rect,square,circle,triangle,cross,room (empty = all)")
	flag.IntVar(&shapeCount, "count", 12, "shapes: target number of placements")
	flag.IntVar(&shapeMin, "min-size", 3, "shapes: minimum size")
	flag.IntVar(&shapeMax, "max-size", 9, "shapes: maximum size")
	flag.IntVar(&shapeSpacing, "spacing", 1, "shapes: clearance margin in cells")
	flag.BoolVar(&allowOverlap, "allow-overlap", false, "shapes: allow overlapping placements")
	flag.Parse()

	if width <= 0 || height <= 0 {
		fail("width and height must be positive, got %dx%d", width, height)
	}
	if resolution <= 0 {
		fail("resolution must be positive, got %g", resolution)
	}

	gen := grid.NewGenerator()
	if seed != 0 {
		gen.SetSeed(seed)
	}

	var cells []grid.Cell
	switch mode {
	case "maze":
		cells = gen.Maze(width, height)
	case "bugtrap":
		cells = grid.NewCells(width, height, grid.Free)
		grid.Bugtrap(cells, width, height, grid.BugtrapOptions{
			Width:     trapWidth,
			Length:    trapLength,
			Thickness: trapThickness,
			Aperture:  trapAperture,
		})
	case "shapes":
		opt := grid.ShapeOptions{
			Shapes:       parseShapes(shapeList),
			Count:        shapeCount,
			MinSize:      shapeMin,
			MaxSize:      shapeMax,
			Spacing:      shapeSpacing,
			AllowOverlap: allowOverlap,
			ClearFirst:   true,
		}
		if opt.Count <= 0 || opt.MinSize <= 0 || opt.MaxSize < opt.MinSize {
			fail("invalid shape options: count=%d min=%d max=%d", opt.Count, opt.MinSize, opt.MaxSize)
		}
		cells = gen.Shapes(grid.NewCells(width, height, grid.Free), width, height, opt)
	case "empty":
		cells = grid.NewCells(width, height, grid.Free)
	default:
		fail("unknown mode %q (supported: maze, bugtrap, shapes, empty)", mode)
	}

	store := grid.NewStore(width, height, resolution)
	if _, err := store.Commit(cells, width, height); err != nil {
		fail("commit: %v", err)
	}
	if startFlag != "" {
		p := parsePoint(startFlag, "start")
		if _, err := store.SetStart(p.X, p.Y); err != nil {
			fail("%v", err)
		}
	}
	if goalFlag != "" {
		p := parsePoint(goalFlag, "goal")
		if _, err := store.SetGoal(p.X, p.Y); err != nil {
			fail("%v", err)
		}
	}
	state := store.State()
	if startRel {
		state.Meta = grid.ShiftOriginToStart(state)
	}

	switch format {
	case "mapserver":
		if err := export.SaveMapServerPair(out, state, export.MapServerOptions{}); err != nil {
			fail("%v", err)
		}
		fmt.Printf("wrote %s.pgm + %s.yaml\n", out, out)
	case "csv":
		writeOne(out+".csv", state, export.WriteCSV)
	case "json":
		writeOne(out+".json", state, export.WriteJSON)
	case "png":
		writeOne(out+".png", state, func(w io.Writer, s grid.State) error {
			return export.WritePNG(w, s, export.PNGOptions{Scale: pngScale, MarkPoints: true})
		})
	case "text":
		fmt.Print(export.EncodeText(state))
	default:
		fail("unknown format %q (supported: mapserver, csv, json, png, text)", format)
	}
}

// writeOne creates a file and runs one encoder against it.
func writeOne(name string, s grid.State, write func(io.Writer, grid.State) error) {
	f, err := os.Create(name)
	if err != nil {
		fail("create %s: %v", name, err)
	}
	defer f.Close()
	if err := write(f, s); err != nil {
		fail("%v", err)
	}
	fmt.Printf("wrote %s\n", name)
}

// parsePoint parses an "x,y" flag value.
func parsePoint(s, name string) grid.Point {
	var p grid.Point
	if _, err := fmt.Sscanf(s, "%d,%d", &p.X, &p.Y); err != nil {
		fail("-%s: %q is not x,y", name, s)
	}
	return p
}

// parseShapes splits a comma list into shape types, validating each.
func parseShapes(s string) []grid.ShapeType {
	if s == "" {
		return nil // generator falls back to all shapes
	}
	var shapes []grid.ShapeType
	for _, part := range strings.Split(s, ",") {
		shape := grid.ShapeType(strings.TrimSpace(part))
		known := false
		for _, k := range grid.AllShapes {
			if shape == k {
				known = true
				break
			}
		}
		if !known {
			fail("-shapes: unknown shape %q", part)
		}
		shapes = append(shapes, shape)
	}
	return shapes
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
