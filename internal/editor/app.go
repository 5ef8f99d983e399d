// Package editor is the interactive map editor: an ebiten app that paints
// into the grid store, drives the procedural generators, and hands finished
// states to the export encoders. All map semantics live in internal/grid;
// this package only translates input events into store calls and pixels.
package editor

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridmapper/internal/grid"
)

// Window and default map dimensions.
const (
	WindowWidth  = 1280
	WindowHeight = 840

	defaultGridWidth  = 64
	defaultGridHeight = 48
	defaultResolution = 0.05 // meters per cell

	borderWidth = 16
)

// statusTicks is how long a status line stays on screen (~3s at 60 TPS).
const statusTicks = 180

// Cell render palette. Same darkness ordering as the exporters.
var (
	cellColors = map[grid.Cell]color.RGBA{
		grid.Free:     {R: 232, G: 232, B: 228, A: 255},
		grid.Occupied: {R: 28, G: 28, B: 32, A: 255},
		grid.Unknown:  {R: 150, G: 150, B: 146, A: 255},
	}
	startColor    = color.RGBA{R: 40, G: 170, B: 60, A: 255}
	goalColor     = color.RGBA{R: 200, G: 50, B: 40, A: 255}
	gridLineColor = color.RGBA{R: 70, G: 70, B: 76, A: 90}
	cursorColor   = color.RGBA{R: 255, G: 200, B: 40, A: 200}
	backColor     = color.RGBA{R: 18, G: 20, B: 24, A: 255}
)

// App is the editor application. It owns the store, the generator, the
// camera, and the in-progress paint stroke.
type App struct {
	store *grid.Store
	gen   *grid.Generator

	brush grid.Cell // value painted by the left mouse button

	// In-progress stroke: a working copy of the grid that collects every
	// cell the drag touches, committed as one history entry on release.
	stroke   *grid.Grid
	painting bool

	// Camera pan + zoom over the cell canvas.
	camX    float64 // cell-space X at the viewport centre
	camY    float64
	camZoom float64 // pixels per cell

	prevKeys map[ebiten.Key]bool

	showHelp bool
	status   string
	statusTL int // ticks left before the status line fades

	session *Session
}

// New creates the editor, restoring the previous session when one exists.
func New() *App {
	a := &App{
		brush:    grid.Occupied,
		camZoom:  12,
		prevKeys: make(map[ebiten.Key]bool),
		showHelp: true,
		gen:      grid.NewGenerator(),
		session:  OpenSession("gridmapper"),
	}
	if st, ok := a.session.Restore(); ok {
		store, err := grid.NewStoreFrom(st)
		if err == nil {
			a.store = store
			log.Printf("editor: restored %dx%d session", st.Grid.Width, st.Grid.Height)
		} else {
			log.Printf("editor: discarding saved session: %v", err)
		}
	}
	if a.store == nil {
		a.store = grid.NewStore(defaultGridWidth, defaultGridHeight, defaultResolution)
	}
	a.camX = float64(a.store.Width()) / 2
	a.camY = float64(a.store.Height()) / 2
	return a
}

// Update advances the editor one tick.
func (a *App) Update() error {
	a.handleInput()
	if a.statusTL > 0 {
		a.statusTL--
	}
	return nil
}

// setStatus shows a transient one-line message in the HUD.
func (a *App) setStatus(format string, args ...any) {
	a.status = fmt.Sprintf(format, args...)
	a.statusTL = statusTicks
}

// cellToScreen converts a cell coordinate to the pixel of its top-left
// corner.
func (a *App) cellToScreen(x, y float64) (float32, float32) {
	sx := (x-a.camX)*a.camZoom + WindowWidth/2
	sy := (y-a.camY)*a.camZoom + WindowHeight/2
	return float32(sx), float32(sy)
}

// screenToCell converts a pixel to the internal cell under it. ok is false
// outside the grid.
func (a *App) screenToCell(mx, my int) (grid.Point, bool) {
	cx := (float64(mx)-WindowWidth/2)/a.camZoom + a.camX
	cy := (float64(my)-WindowHeight/2)/a.camZoom + a.camY
	if cx < 0 || cy < 0 {
		return grid.Point{}, false
	}
	p := grid.Point{X: int(cx), Y: int(cy)}
	if p.X >= a.store.Width() || p.Y >= a.store.Height() {
		return grid.Point{}, false
	}
	return p, true
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backColor)

	st := a.store.State()
	g := st.Grid
	if a.painting && a.stroke != nil {
		g = *a.stroke // preview the uncommitted stroke
	}

	// Cells.
	cell := float32(a.camZoom)
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			sx, sy := a.cellToScreen(float64(x), float64(y))
			if sx < -cell || sy < -cell || sx > WindowWidth || sy > WindowHeight {
				continue
			}
			vector.FillRect(screen, sx, sy, cell, cell, cellColors[g.At(x, y)], false)
		}
	}

	// Grid lines, skipped when cells get too small to matter.
	if a.camZoom >= 6 {
		for x := 0; x <= g.Width; x++ {
			sx, sy0 := a.cellToScreen(float64(x), 0)
			_, sy1 := a.cellToScreen(float64(x), float64(g.Height))
			vector.StrokeLine(screen, sx, sy0, sx, sy1, 1.0, gridLineColor, false)
		}
		for y := 0; y <= g.Height; y++ {
			sx0, sy := a.cellToScreen(0, float64(y))
			sx1, _ := a.cellToScreen(float64(g.Width), float64(y))
			vector.StrokeLine(screen, sx0, sy, sx1, sy, 1.0, gridLineColor, false)
		}
	}

	// Start / goal markers.
	if p := st.Meta.Start; p != nil {
		sx, sy := a.cellToScreen(float64(p.X), float64(p.Y))
		vector.FillCircle(screen, sx+cell/2, sy+cell/2, cell*0.4, startColor, false)
	}
	if p := st.Meta.Goal; p != nil {
		sx, sy := a.cellToScreen(float64(p.X), float64(p.Y))
		vector.FillCircle(screen, sx+cell/2, sy+cell/2, cell*0.4, goalColor, false)
	}

	// Outline around the whole grid.
	ox, oy := a.cellToScreen(0, 0)
	ex, ey := a.cellToScreen(float64(g.Width), float64(g.Height))
	vector.StrokeRect(screen, ox-1, oy-1, ex-ox+2, ey-oy+2, 2.0, gridLineColor, false)

	// Cursor highlight.
	if p, ok := a.screenToCell(ebiten.CursorPosition()); ok {
		sx, sy := a.cellToScreen(float64(p.X), float64(p.Y))
		vector.StrokeRect(screen, sx, sy, cell, cell, 2.0, cursorColor, false)
	}

	a.drawHUD(screen, st)
}

// drawHUD renders the status line, cursor readout, and the key legend.
func (a *App) drawHUD(screen *ebiten.Image, st grid.State) {
	line := fmt.Sprintf("%dx%d @ %.3gm/cell  brush:%s  undo:%v redo:%v",
		st.Grid.Width, st.Grid.Height, st.Meta.Resolution, a.brush,
		a.store.History().CanUndo(), a.store.History().CanRedo())
	ebitenutil.DebugPrintAt(screen, line, borderWidth, 8)

	if p, ok := a.screenToCell(ebiten.CursorPosition()); ok {
		d := grid.InternalToDisplay(p, st.Grid.Width, st.Grid.Height)
		readout := fmt.Sprintf("cell (%d,%d)  display (%d,%d)", p.X, p.Y, d.X, d.Y)
		ebitenutil.DebugPrintAt(screen, readout, borderWidth, 24)
	}

	if a.statusTL > 0 {
		ebitenutil.DebugPrintAt(screen, a.status, borderWidth, WindowHeight-24)
	}

	if a.showHelp {
		help := []string{
			"1/2/3 brush free/occupied/unknown   LMB paint   RMB erase",
			"S/G set start/goal at cursor   X/V clear start/goal",
			"M maze   B bugtrap   N scatter shapes   C clear   Z undo   Y redo",
			"shift+arrows grow edge   ctrl+arrows shrink edge",
			"F5 map-server pair   F6 csv   F7 json   F8 png   F9 copy as text",
			"arrows pan   wheel zoom   H hide help",
		}
		for i, l := range help {
			ebitenutil.DebugPrintAt(screen, l, borderWidth, 48+i*16)
		}
	}
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return WindowWidth, WindowHeight
}
