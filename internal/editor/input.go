package editor

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"

	"gridmapper/internal/export"
	"gridmapper/internal/grid"
)

// handleInput processes one tick of keyboard and mouse input. Toggle-style
// keys are edge-triggered against the previous tick's key state.
func (a *App) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	// Brush selection.
	if pressed(ebiten.Key1) {
		a.brush = grid.Free
	}
	if pressed(ebiten.Key2) {
		a.brush = grid.Occupied
	}
	if pressed(ebiten.Key3) {
		a.brush = grid.Unknown
	}

	// Painting. A drag is one stroke: the working copy collects every cell
	// and the release commits it as a single history entry.
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if left || right {
		if !a.painting {
			g := a.store.State().Grid
			a.stroke = &g
			a.painting = true
		}
		if p, ok := a.screenToCell(ebiten.CursorPosition()); ok {
			value := a.brush
			if right {
				value = grid.Free
			}
			a.stroke.Set(p.X, p.Y, value)
		}
	} else if a.painting {
		a.painting = false
		if a.stroke != nil {
			if _, err := a.store.Commit(a.stroke.Cells, a.stroke.Width, a.stroke.Height); err != nil {
				a.setStatus("paint: %v", err)
			} else {
				a.saveSession()
			}
			a.stroke = nil
		}
	}

	// Start / goal placement at the cursor.
	if pressed(ebiten.KeyS) {
		if p, ok := a.screenToCell(ebiten.CursorPosition()); ok {
			if _, err := a.store.SetStart(p.X, p.Y); err == nil {
				a.setStatus("start set to (%d,%d)", p.X, p.Y)
				a.saveSession()
			}
		}
	}
	if pressed(ebiten.KeyG) {
		if p, ok := a.screenToCell(ebiten.CursorPosition()); ok {
			if _, err := a.store.SetGoal(p.X, p.Y); err == nil {
				a.setStatus("goal set to (%d,%d)", p.X, p.Y)
				a.saveSession()
			}
		}
	}
	if pressed(ebiten.KeyX) {
		a.store.ClearStart()
		a.setStatus("start cleared")
		a.saveSession()
	}
	if pressed(ebiten.KeyV) {
		a.store.ClearGoal()
		a.setStatus("goal cleared")
		a.saveSession()
	}

	// Generators.
	if pressed(ebiten.KeyM) {
		w, h := a.store.Width(), a.store.Height()
		if _, err := a.store.Commit(a.gen.Maze(w, h), w, h); err == nil {
			a.setStatus("maze generated")
			a.saveSession()
		}
	}
	if pressed(ebiten.KeyB) {
		st := a.store.State()
		cells := st.Grid.Cells // a copy: State() deep-copies
		grid.Bugtrap(cells, st.Grid.Width, st.Grid.Height, grid.DefaultBugtrapOptions())
		if _, err := a.store.Commit(cells, st.Grid.Width, st.Grid.Height); err == nil {
			a.setStatus("bugtrap placed")
			a.saveSession()
		}
	}
	if pressed(ebiten.KeyN) {
		st := a.store.State()
		out := a.gen.Shapes(st.Grid.Cells, st.Grid.Width, st.Grid.Height, grid.DefaultShapeOptions())
		if _, err := a.store.Commit(out, st.Grid.Width, st.Grid.Height); err == nil {
			a.setStatus("shapes scattered")
			a.saveSession()
		}
	}
	if pressed(ebiten.KeyC) {
		a.store.Clear()
		a.setStatus("grid cleared")
		a.saveSession()
	}

	// Undo / redo.
	if pressed(ebiten.KeyZ) {
		if _, ok := a.store.Undo(); ok {
			a.setStatus("undo")
			a.saveSession()
		} else {
			a.setStatus("nothing to undo")
		}
	}
	if pressed(ebiten.KeyY) {
		if _, ok := a.store.Redo(); ok {
			a.setStatus("redo")
			a.saveSession()
		} else {
			a.setStatus("nothing to redo")
		}
	}

	// Resize: shift+arrow grows one cell on that edge, ctrl+arrow shrinks.
	// Growing from the left/top uses a +1 offset so the content stays put.
	if shift || ctrl {
		a.handleResizeKeys(pressed, shift)
	} else {
		// Camera pan.
		panSpeed := 8.0 / a.camZoom
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			a.camY -= panSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			a.camY += panSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			a.camX -= panSpeed
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			a.camX += panSpeed
		}
	}

	// Zoom: mouse wheel, clamped to keep cells visible.
	const zoomMin, zoomMax = 2.0, 48.0
	if _, wy := ebiten.Wheel(); wy != 0 {
		a.camZoom *= math.Pow(1.15, wy)
		if a.camZoom < zoomMin {
			a.camZoom = zoomMin
		}
		if a.camZoom > zoomMax {
			a.camZoom = zoomMax
		}
	}

	// Exports.
	if pressed(ebiten.KeyF5) {
		a.exportMapServer()
	}
	if pressed(ebiten.KeyF6) {
		a.exportFile("csv", func(f *os.File, st grid.State) error {
			return export.WriteCSV(f, st)
		})
	}
	if pressed(ebiten.KeyF7) {
		a.exportFile("json", func(f *os.File, st grid.State) error {
			return export.WriteJSON(f, st)
		})
	}
	if pressed(ebiten.KeyF8) {
		a.exportFile("png", func(f *os.File, st grid.State) error {
			return export.WritePNG(f, st, export.PNGOptions{Scale: 8, MarkPoints: true})
		})
	}
	if pressed(ebiten.KeyF9) {
		text := export.EncodeText(a.store.State())
		if err := clipboard.WriteAll(text); err != nil {
			a.setStatus("clipboard: %v", err)
		} else {
			a.setStatus("map copied to clipboard as text")
		}
	}

	if pressed(ebiten.KeyH) {
		a.showHelp = !a.showHelp
	}

	a.prevKeys = currentKeys
}

// handleResizeKeys applies a one-cell grow (shift) or shrink (ctrl) on the
// edge named by the arrow key.
func (a *App) handleResizeKeys(pressed func(ebiten.Key) bool, grow bool) {
	w, h := a.store.Width(), a.store.Height()
	type change struct {
		w, h, offX, offY int
	}
	var c *change
	switch {
	case pressed(ebiten.KeyArrowLeft):
		if grow {
			c = &change{w + 1, h, 1, 0}
		} else {
			c = &change{w - 1, h, -1, 0}
		}
	case pressed(ebiten.KeyArrowRight):
		if grow {
			c = &change{w + 1, h, 0, 0}
		} else {
			c = &change{w - 1, h, 0, 0}
		}
	case pressed(ebiten.KeyArrowUp):
		if grow {
			c = &change{w, h + 1, 0, 1}
		} else {
			c = &change{w, h - 1, 0, -1}
		}
	case pressed(ebiten.KeyArrowDown):
		if grow {
			c = &change{w, h + 1, 0, 0}
		} else {
			c = &change{w, h - 1, 0, 0}
		}
	}
	if c == nil {
		return
	}
	if _, err := a.store.Resize(c.w, c.h, c.offX, c.offY); err != nil {
		a.setStatus("resize: %v", err)
		return
	}
	a.setStatus("resized to %dx%d", c.w, c.h)
	a.saveSession()
}

// exportMapServer writes the PGM+YAML pair next to the working directory.
func (a *App) exportMapServer() {
	base := exportBase()
	if err := export.SaveMapServerPair(base, a.store.State(), export.MapServerOptions{}); err != nil {
		a.setStatus("export: %v", err)
		return
	}
	a.setStatus("wrote %s.pgm + %s.yaml", base, base)
}

// exportFile writes one export format to a timestamped file.
func (a *App) exportFile(ext string, write func(*os.File, grid.State) error) {
	name := fmt.Sprintf("%s.%s", exportBase(), ext)
	f, err := os.Create(name)
	if err != nil {
		a.setStatus("export: %v", err)
		return
	}
	defer f.Close()
	if err := write(f, a.store.State()); err != nil {
		a.setStatus("export: %v", err)
		return
	}
	a.setStatus("wrote %s", name)
}

// exportBase returns a timestamped file stem so exports never clobber each
// other.
func exportBase() string {
	return "map-" + time.Now().Format("20060102-150405")
}

// saveSession persists the current state; failures are shown but never
// fatal.
func (a *App) saveSession() {
	if err := a.session.Save(a.store.State()); err != nil {
		a.setStatus("autosave: %v", err)
	}
}
