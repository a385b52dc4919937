package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// Raster is an in-memory Canvas backed by an RGBA image.
type Raster struct {
	img  *image.RGBA
	fill RGB
	face font.Face
}

// NewRaster allocates a w x h canvas cleared to black.
func NewRaster(w, h int) *Raster {
	r := &Raster{
		img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		face: inconsolata.Regular8x16,
	}
	r.Background(RGB{})
	return r
}

// Bounds returns the pixel extent of the raster.
func (r *Raster) Bounds() image.Rectangle { return r.img.Bounds() }

// Image exposes the backing image. Callers must not keep it across frames.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) SetFill(c RGB) { r.fill = c }

// DrawRect fills the rectangle, clipped to the raster bounds.
func (r *Raster) DrawRect(x, y, w, h int) {
	rect := image.Rect(x, y, x+w, y+h).Intersect(r.img.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(r.img, rect, image.NewUniform(r.fill), image.Point{}, draw.Src)
}

func (r *Raster) Background(c RGB) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

func (r *Raster) Text(s string, x, y int) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.fill),
		Face: r.face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// At returns the color of pixel (x, y); out-of-bounds pixels are black.
func (r *Raster) At(x, y int) RGB {
	if !(image.Point{X: x, Y: y}).In(r.img.Bounds()) {
		return RGB{}
	}
	c := r.img.RGBAAt(x, y)
	return RGB{R: c.R, G: c.G, B: c.B}
}

// EncodePNG writes the raster as a PNG image.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
