// Package export turns a grid state into the formats consumed outside the
// editor: a map-server PGM+YAML pair, a CSV table, a JSON document, a PNG
// raster, and plain text for the clipboard. Every encoder uses the same
// palette contract: Occupied darkest, Free lightest, Unknown in between.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"gridmapper/internal/grid"
)

// Map-server raster palette (the map_saver convention): 0 is a wall, 254 is
// open space, 205 is unexplored.
const (
	pgmOccupied = 0
	pgmFree     = 254
	pgmUnknown  = 205
)

// mapServerMeta is the YAML sidecar a map server loads next to the PGM.
type mapServerMeta struct {
	Image          string     `yaml:"image"`
	Resolution     float64    `yaml:"resolution"`
	Origin         [3]float64 `yaml:"origin"`
	Negate         int        `yaml:"negate"`
	OccupiedThresh float64    `yaml:"occupied_thresh"`
	FreeThresh     float64    `yaml:"free_thresh"`
}

// MapServerOptions configures the PGM+YAML pair.
type MapServerOptions struct {
	// StartRelative recomputes the written origin so the start cell's world
	// coordinate is (0,0). The grid content is untouched; no-op without a
	// start.
	StartRelative bool
}

// WritePGM writes the grid as a binary (P5) PGM raster.
func WritePGM(w io.Writer, s grid.State) error {
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", s.Grid.Width, s.Grid.Height); err != nil {
		return fmt.Errorf("pgm header: %w", err)
	}
	row := make([]byte, s.Grid.Width)
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			switch s.Grid.At(x, y) {
			case grid.Occupied:
				row[x] = pgmOccupied
			case grid.Free:
				row[x] = pgmFree
			default:
				row[x] = pgmUnknown
			}
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("pgm row %d: %w", y, err)
		}
	}
	return nil
}

// WriteMapServerYAML writes the metadata sidecar referencing imageName.
func WriteMapServerYAML(w io.Writer, s grid.State, imageName string, opt MapServerOptions) error {
	meta := s.Meta
	if opt.StartRelative {
		meta = grid.ShiftOriginToStart(s)
	}
	out := mapServerMeta{
		Image:          imageName,
		Resolution:     meta.Resolution,
		Origin:         [3]float64{meta.Origin.X, meta.Origin.Y, meta.Origin.Theta},
		Negate:         0,
		OccupiedThresh: 0.65,
		FreeThresh:     0.196,
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("marshal map metadata: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write map metadata: %w", err)
	}
	return nil
}

// SaveMapServerPair writes <base>.pgm and <base>.yaml next to each other.
func SaveMapServerPair(base string, s grid.State, opt MapServerOptions) error {
	pgmPath := base + ".pgm"
	yamlPath := base + ".yaml"

	pgm, err := os.Create(pgmPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", pgmPath, err)
	}
	defer pgm.Close()
	if err := WritePGM(pgm, s); err != nil {
		return err
	}

	meta, err := os.Create(yamlPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", yamlPath, err)
	}
	defer meta.Close()
	return WriteMapServerYAML(meta, s, filepath.Base(pgmPath), opt)
}

// Text cell glyphs for the clipboard / terminal encoding.
const (
	textOccupied = '#'
	textFree     = '.'
	textUnknown  = '?'
)

// EncodeText renders the grid as one line of glyphs per row, darkest glyph
// for occupied cells. Start and goal, when set, are marked S and G.
func EncodeText(s grid.State) string {
	var b strings.Builder
	b.Grow((s.Grid.Width + 1) * s.Grid.Height)
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			switch {
			case s.Meta.Start != nil && s.Meta.Start.X == x && s.Meta.Start.Y == y:
				b.WriteByte('S')
			case s.Meta.Goal != nil && s.Meta.Goal.X == x && s.Meta.Goal.Y == y:
				b.WriteByte('G')
			case s.Grid.At(x, y) == grid.Occupied:
				b.WriteByte(textOccupied)
			case s.Grid.At(x, y) == grid.Unknown:
				b.WriteByte(textUnknown)
			default:
				b.WriteByte(textFree)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
