package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"gridmapper/internal/grid"
)

// WriteCSV writes the grid as a table of raw cell values, one record per
// grid row, top row first. Values are the occupancy integers themselves
// (0, 100, -1) so the table reimports losslessly.
func WriteCSV(w io.Writer, s grid.State) error {
	cw := csv.NewWriter(w)
	record := make([]string, s.Grid.Width)
	for y := 0; y < s.Grid.Height; y++ {
		for x := 0; x < s.Grid.Width; x++ {
			record[x] = strconv.Itoa(int(s.Grid.At(x, y)))
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("csv row %d: %w", y, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("csv flush: %w", err)
	}
	return nil
}

// ReadCSV parses a table written by WriteCSV back into a grid buffer.
// Every record must have the same width and every value must be a legal
// cell.
func ReadCSV(r io.Reader) (grid.Grid, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return grid.Grid{}, fmt.Errorf("csv parse: %w", err)
	}
	if len(records) == 0 {
		return grid.Grid{}, fmt.Errorf("csv: empty table")
	}
	width := len(records[0])
	g := grid.NewGrid(width, len(records))
	for y, record := range records {
		if len(record) != width {
			return grid.Grid{}, fmt.Errorf("csv row %d: %d values, want %d", y, len(record), width)
		}
		for x, field := range record {
			v, err := strconv.Atoi(field)
			if err != nil {
				return grid.Grid{}, fmt.Errorf("csv cell (%d,%d): %w", x, y, err)
			}
			c := grid.Cell(v)
			if !c.Valid() {
				return grid.Grid{}, fmt.Errorf("csv cell (%d,%d): invalid value %d", x, y, v)
			}
			g.Set(x, y, c)
		}
	}
	return g, nil
}
