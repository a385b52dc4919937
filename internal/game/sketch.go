package game

import (
	"maze-level/internal/level"
	"maze-level/internal/render"
)

// DefaultLabel identifies the scene on screen.
const DefaultLabel = "Level class → grid render"

// Label position, baseline origin in pixels.
const (
	LabelX = 10
	LabelY = 16
)

// Sketch is the host-side context: the level plus what surrounds it on screen.
// Hosts build one at startup and pass it to every redraw.
type Sketch struct {
	Level      *level.Level
	Label      string
	Background render.RGB
}

// NewSketch wraps a level with the default background.
func NewSketch(l *level.Level, label string) *Sketch {
	return &Sketch{
		Level:      l,
		Label:      label,
		Background: render.BackgroundColor,
	}
}

// Size returns the canvas size that exactly fits the level.
func (s *Sketch) Size() (int, int) {
	return s.Level.PixelWidth(), s.Level.PixelHeight()
}

// NewCanvas allocates a raster sized to the level.
func (s *Sketch) NewCanvas() *render.Raster {
	w, h := s.Size()
	return render.NewRaster(w, h)
}

// DrawScene clears the canvas and renders the level.
func (s *Sketch) DrawScene(c render.Canvas) {
	c.Background(s.Background)
	s.Level.Render(c)
}

// Draw is one full redraw: scene, then label.
func (s *Sketch) Draw(c render.Canvas) {
	s.DrawScene(c)
	if s.Label != "" {
		c.SetFill(render.LabelColor)
		c.Text(s.Label, LabelX, LabelY)
	}
}
