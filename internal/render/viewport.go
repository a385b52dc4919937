package render

// Viewport maps a raster onto terminal cells. Each cell shows two vertically
// stacked samples (a half block), and each sample covers Step x Step pixels.
type Viewport struct {
	Step             int // raster pixels per sample edge
	OffsetX, OffsetY int // terminal cells before the image
	Cols, Rows       int // terminal cells covered by the image
}

// FitViewport picks the smallest integer step that fits a pixelW x pixelH
// raster into the terminal, centered. hudRows are reserved at the bottom.
func FitViewport(pixelW, pixelH, termW, termH, hudRows int) Viewport {
	viewH := termH - hudRows
	if termW < 1 || viewH < 1 || pixelW < 1 || pixelH < 1 {
		return Viewport{Step: 1}
	}

	step := max(ceilDiv(pixelW, termW), ceilDiv(pixelH, 2*viewH), 1)
	cols := ceilDiv(pixelW, step)
	rows := ceilDiv(pixelH, 2*step)

	return Viewport{
		Step:    step,
		OffsetX: (termW - cols) / 2,
		OffsetY: (viewH - rows) / 2,
		Cols:    cols,
		Rows:    rows,
	}
}

// CellToPixel returns the pixel sampled by the top half of terminal cell (cx, cy).
// ok is false if the cell is outside the image.
func (v Viewport) CellToPixel(cx, cy int) (x, y int, ok bool) {
	tx, ty := cx-v.OffsetX, cy-v.OffsetY
	if tx < 0 || tx >= v.Cols || ty < 0 || ty >= v.Rows {
		return 0, 0, false
	}
	return tx * v.Step, ty * 2 * v.Step, true
}

// PixelToCell returns the terminal cell showing pixel (x, y).
// ok is false if the pixel is outside the image.
func (v Viewport) PixelToCell(x, y int) (cx, cy int, ok bool) {
	if x < 0 || y < 0 {
		return 0, 0, false
	}
	tx, ty := x/v.Step, y/(2*v.Step)
	if tx >= v.Cols || ty >= v.Rows {
		return 0, 0, false
	}
	return tx + v.OffsetX, ty + v.OffsetY, true
}

// sample walks every cell of the image, passing the colors of its upper and
// lower half. Samples past the raster edge take bg.
func (v Viewport) sample(r *Raster, bg RGB, fn func(cx, cy int, top, bottom RGB)) {
	b := r.Bounds()
	pick := func(x, y int) RGB {
		if x >= b.Max.X || y >= b.Max.Y {
			return bg
		}
		return r.At(x, y)
	}
	for ty := 0; ty < v.Rows; ty++ {
		for tx := 0; tx < v.Cols; tx++ {
			x, y := tx*v.Step, ty*2*v.Step
			fn(tx+v.OffsetX, ty+v.OffsetY, pick(x, y), pick(x, y+v.Step))
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
