package render

import "github.com/gdamore/tcell/v2"

func tcellColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present draws the raster onto a tcell screen with the same half-block
// sampling as Engine, puts label on the HUD row, and shows the screen.
func Present(screen tcell.Screen, r *Raster, label string) {
	w, h := screen.Size()

	backdrop := tcell.StyleDefault.Background(tcellColor(TerminalBackdrop))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, y, ' ', nil, backdrop)
		}
	}

	b := r.Bounds()
	vp := FitViewport(b.Dx(), b.Dy(), w, h, HUDRows)
	vp.sample(r, TerminalBackdrop, func(cx, cy int, top, bottom RGB) {
		style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
		screen.SetContent(cx, cy, HalfBlock, nil, style)
	})

	if hudY := h - HUDRows; hudY >= 0 {
		hud := tcell.StyleDefault.Foreground(tcellColor(LabelColor)).Background(tcellColor(BackgroundColor))
		for x := 0; x < w; x++ {
			screen.SetContent(x, hudY, ' ', nil, hud)
		}
		x := 1
		for _, ch := range label {
			if x >= w {
				break
			}
			screen.SetContent(x, hudY, ch, nil, hud)
			x++
		}
	}

	screen.Show()
}
