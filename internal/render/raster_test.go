package render

import (
	"bytes"
	"image/png"
	"testing"

	"maze-level/internal/maps"
)

func TestRasterDrawRect(t *testing.T) {
	r := NewRaster(8, 6)
	r.Background(BackgroundColor)
	r.SetFill(WallColor)
	r.DrawRect(2, 1, 3, 2)

	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			want := BackgroundColor
			if x >= 2 && x < 5 && y >= 1 && y < 3 {
				want = WallColor
			}
			if got := r.At(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestRasterDrawRectClips(t *testing.T) {
	r := NewRaster(4, 4)
	r.SetFill(FloorColor)
	r.DrawRect(-2, -2, 3, 3)
	r.DrawRect(3, 3, 10, 10)
	r.DrawRect(10, 10, 2, 2)

	if got := r.At(0, 0); got != FloorColor {
		t.Errorf("top-left = %v, want floor", got)
	}
	if got := r.At(1, 1); got != (RGB{}) {
		t.Errorf("(1,1) = %v, want untouched black", got)
	}
	if got := r.At(3, 3); got != FloorColor {
		t.Errorf("bottom-right = %v, want floor", got)
	}
	if got := r.At(9, 9); got != (RGB{}) {
		t.Errorf("out of bounds At = %v, want black", got)
	}
}

func TestRasterText(t *testing.T) {
	r := NewRaster(120, 24)
	r.Background(BackgroundColor)
	r.SetFill(LabelColor)
	r.Text("Level", 10, 16)

	dark := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 120; x++ {
			if r.At(x, y) != BackgroundColor {
				dark++
				if x < 10 {
					t.Fatalf("text drawn left of its origin at (%d,%d)", x, y)
				}
			}
		}
	}
	if dark == 0 {
		t.Errorf("expected label pixels, found none")
	}
}

func TestRasterEncodePNG(t *testing.T) {
	r := NewRaster(5, 3)
	r.SetFill(WallColor)
	r.DrawRect(0, 0, 5, 3)

	var buf bytes.Buffer
	if err := r.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 5 || b.Dy() != 3 {
		t.Fatalf("decoded size %dx%d", b.Dx(), b.Dy())
	}
	cr, cg, cb, _ := img.At(4, 2).RGBA()
	if uint8(cr>>8) != WallColor.R || uint8(cg>>8) != WallColor.G || uint8(cb>>8) != WallColor.B {
		t.Errorf("decoded pixel does not match wall color")
	}
}

func TestTileColor(t *testing.T) {
	tests := []struct {
		code maps.TileCode
		want RGB
	}{
		{maps.Floor, RGB{230, 230, 230}},
		{maps.Wall, RGB{30, 50, 60}},
		{maps.TileCode(7), FloorColor},
	}
	for _, tt := range tests {
		if got := TileColor(tt.code); got != tt.want {
			t.Errorf("TileColor(%v) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestRGBImplementsColor(t *testing.T) {
	r, g, b, a := RGB{R: 0xff, G: 0x80, B: 0}.RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
	if s := WallColor.String(); s != "#1e323c" {
		t.Errorf("String() = %q", s)
	}
}

func TestRecorderRects(t *testing.T) {
	var rec Recorder
	rec.Background(BackgroundColor)
	rec.SetFill(WallColor)
	rec.DrawRect(0, 0, 4, 4)
	rec.DrawRect(4, 0, 4, 4)
	rec.SetFill(FloorColor)
	rec.DrawRect(0, 4, 4, 4)
	rec.Text("x", 1, 2)

	rects := rec.Rects()
	if len(rects) != 3 {
		t.Fatalf("expected 3 rects, got %d", len(rects))
	}
	if rects[1].Color != WallColor || rects[2].Color != FloorColor {
		t.Errorf("fill not carried onto rects: %+v", rects)
	}

	rec.Reset()
	if len(rec.Commands) != 0 {
		t.Errorf("Reset left %d commands", len(rec.Commands))
	}
}
