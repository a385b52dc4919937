package render

import "strings"

// HUDRows is the number of terminal rows reserved below the image for the label.
const HUDRows = 1

// TerminalBackdrop fills terminal cells not covered by the image.
var TerminalBackdrop = RGB{R: 10, G: 10, B: 15}

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch     rune
	Fg, Bg RGB
}

var sentinel = Cell{Ch: '\x00', Fg: RGB{R: 255}, Bg: RGB{B: 255}}

// Engine is a per-session double-buffer diff renderer.
type Engine struct {
	width, height int
	current       [][]Cell
	next          [][]Cell
	firstFrame    bool
}

// NewEngine creates a renderer for the given terminal dimensions.
func NewEngine(width, height int) *Engine {
	e := &Engine{}
	e.Resize(width, height)
	return e
}

// Resize adjusts the renderer for a new terminal size.
// The next frame is emitted in full.
func (e *Engine) Resize(width, height int) {
	e.width = max(width, 0)
	e.height = max(height, 0)
	e.current = e.makeBuffer(sentinel)
	e.next = e.makeBuffer(Cell{})
	e.firstFrame = true
}

// Size returns the terminal dimensions the engine renders for.
func (e *Engine) Size() (int, int) { return e.width, e.height }

func (e *Engine) makeBuffer(fill Cell) [][]Cell {
	buf := make([][]Cell, e.height)
	for y := 0; y < e.height; y++ {
		buf[y] = make([]Cell, e.width)
		for x := 0; x < e.width; x++ {
			buf[y][x] = fill
		}
	}
	return buf
}

// Render produces the ANSI byte output for the current frame: the raster
// scaled into half-block cells, and label on the HUD row. Only cells that
// changed since the previous frame are emitted.
func (e *Engine) Render(r *Raster, label string, termW, termH int) string {
	if termW != e.width || termH != e.height {
		e.Resize(termW, termH)
	}

	bgCell := Cell{Ch: ' ', Bg: TerminalBackdrop}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.next[y][x] = bgCell
		}
	}

	b := r.Bounds()
	vp := FitViewport(b.Dx(), b.Dy(), e.width, e.height, HUDRows)
	vp.sample(r, TerminalBackdrop, func(cx, cy int, top, bottom RGB) {
		e.next[cy][cx] = Cell{Ch: HalfBlock, Fg: top, Bg: bottom}
	})

	e.drawHUD(label)

	// Diff current vs next, emit only changed cells
	var sb strings.Builder
	sb.Grow(16384)

	lastRow, lastCol := -1, -1
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			nc := e.next[y][x]
			if e.firstFrame || nc != e.current[y][x] {
				// Only emit cursor position if not consecutive
				if y != lastRow || x != lastCol {
					sb.WriteString(MoveTo(y+1, x+1))
				}
				WriteCellSGR(&sb, nc)
				lastRow = y
				lastCol = x + 1
			}
		}
	}

	if sb.Len() > 0 {
		sb.WriteString(Reset)
	}

	// Swap buffers
	e.current, e.next = e.next, e.current
	e.firstFrame = false

	return sb.String()
}

// CellAt returns the cell shown at (x, y) after the last Render.
func (e *Engine) CellAt(x, y int) (Cell, bool) {
	if x < 0 || x >= e.width || y < 0 || y >= e.height {
		return Cell{}, false
	}
	return e.current[y][x], true
}

func (e *Engine) drawHUD(label string) {
	hudY := e.height - HUDRows
	if hudY < 0 {
		return
	}
	for x := 0; x < e.width; x++ {
		e.next[hudY][x] = Cell{Ch: ' ', Fg: LabelColor, Bg: BackgroundColor}
	}
	x := 1
	for _, ch := range label {
		if x >= e.width {
			break
		}
		e.next[hudY][x] = Cell{Ch: ch, Fg: LabelColor, Bg: BackgroundColor}
		x++
	}
}
