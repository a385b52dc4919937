package render

import (
	"fmt"

	"maze-level/internal/maps"
)

// RGB is an opaque 24-bit color. It implements color.Color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Gray returns the gray with all channels set to v.
func Gray(v uint8) RGB {
	return RGB{R: v, G: v, B: v}
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette.
var (
	FloorColor      = Gray(230)
	WallColor       = RGB{R: 30, G: 50, B: 60}
	BackgroundColor = Gray(240)
	LabelColor      = Gray(0)
)

// TileColor resolves the fill color of a tile code.
// Anything that is not a wall draws as floor.
func TileColor(code maps.TileCode) RGB {
	if code == maps.Wall {
		return WallColor
	}
	return FloorColor
}
