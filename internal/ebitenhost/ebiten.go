// Package ebitenhost runs a sketch in a desktop window with Ebiten.
package ebitenhost

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"

	"maze-level/internal/game"
	"maze-level/internal/render"
)

const labelSize = 14

// canvas adapts an ebiten.Image to render.Canvas for the duration of one Draw.
type canvas struct {
	dst  *ebiten.Image
	fill render.RGB
	face *text.GoTextFace
}

func (c *canvas) SetFill(col render.RGB) { c.fill = col }

func (c *canvas) DrawRect(x, y, w, h int) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), c.fill, false)
}

func (c *canvas) Background(col render.RGB) { c.dst.Fill(col) }

func (c *canvas) Text(s string, x, y int) {
	op := &text.DrawOptions{}
	// text/v2 positions the top of the line box; shift up so y is the baseline
	op.GeoM.Translate(float64(x), float64(y)-c.face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(c.fill)
	text.Draw(c.dst, s, c.face, op)
}

// Game implements ebiten.Game around a sketch.
type Game struct {
	sketch *game.Sketch
	canvas canvas
}

// New prepares the label font and returns a game for the sketch.
func New(sketch *game.Sketch) (*Game, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	return &Game{
		sketch: sketch,
		canvas: canvas{face: &text.GoTextFace{Source: src, Size: labelSize}},
	}, nil
}

// Update quits on Escape; the scene itself has no state to advance.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// Draw redraws the whole sketch every frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.dst = screen
	g.sketch.Draw(&g.canvas)
	g.canvas.dst = nil
}

// Layout keeps the logical screen at the level's pixel size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sketch.Size()
}

// Run opens a window sized to the level and blocks until it closes.
func Run(sketch *game.Sketch, title string, fps int) error {
	g, err := New(sketch)
	if err != nil {
		return err
	}

	fps = game.EffectiveFPS(fps)
	w, h := sketch.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(fps)

	log.Info().Int("width", w).Int("height", h).Int("tps", fps).Msg("opening window")
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}
