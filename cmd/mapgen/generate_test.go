package main

import (
	"testing"

	"maze-level/internal/maps"
)

func countFloor(tiles [][]int) (int, point) {
	n := 0
	var first point
	for r, row := range tiles {
		for c, v := range row {
			if v == floor {
				if n == 0 {
					first = point{r, c}
				}
				n++
			}
		}
	}
	return n, first
}

func TestGenerators(t *testing.T) {
	tests := []struct {
		name               string
		gen                func(rows, cols int, seed int64) [][]int
		rows, cols         int
		wantRows, wantCols int
	}{
		{"maze odd", generateMaze, 11, 15, 11, 15},
		{"maze even trims", generateMaze, 12, 16, 11, 15},
		{"cave", generateCave, 30, 40, 30, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := tt.gen(tt.rows, tt.cols, 42)

			grid, err := maps.NewTileGrid(tiles)
			if err != nil {
				t.Fatalf("generated grid invalid: %v", err)
			}
			if grid.RowCount() != tt.wantRows || grid.ColCount() != tt.wantCols {
				t.Errorf("size = %dx%d, want %dx%d", grid.RowCount(), grid.ColCount(), tt.wantRows, tt.wantCols)
			}

			grid.Each(func(row, col int, code maps.TileCode) {
				edge := row == 0 || col == 0 || row == grid.RowCount()-1 || col == grid.ColCount()-1
				if edge && code != maps.Wall {
					t.Errorf("border cell (%d,%d) = %v, want wall", row, col, code)
				}
			})

			n, first := countFloor(tiles)
			if n == 0 {
				t.Skip("no open floor for this seed")
			}
			if got := len(floodFill(tiles, first)); got != n {
				t.Errorf("reachable floor = %d, want all %d", got, n)
			}
		})
	}
}

func TestMazeVisitsEveryRoom(t *testing.T) {
	tiles := generateMaze(11, 15, 7)
	for r := 1; r < 11; r += 2 {
		for c := 1; c < 15; c += 2 {
			if tiles[r][c] != floor {
				t.Errorf("room (%d,%d) not carved", r, c)
			}
		}
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	for name, gen := range generators {
		t.Run(name, func(t *testing.T) {
			a, b := gen(21, 21, 99), gen(21, 21, 99)
			for r := range a {
				for c := range a[r] {
					if a[r][c] != b[r][c] {
						t.Fatalf("cell (%d,%d) differs between runs with the same seed", r, c)
					}
				}
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	tests := []struct {
		in      string
		w, h    int
		wantErr bool
	}{
		{"16x11", 16, 11, false},
		{"5x5", 5, 5, false},
		{"4x10", 0, 0, true},
		{"10x", 0, 0, true},
		{"10", 0, 0, true},
		{"axb", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			w, h, err := parseSize(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseSize(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if w != tt.w || h != tt.h {
				t.Errorf("parseSize(%q) = %d, %d, want %d, %d", tt.in, w, h, tt.w, tt.h)
			}
		})
	}
}

func TestSimplexRange(t *testing.T) {
	sn := newSimplex(1)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v := sn.fractal(float64(x), float64(y), 0.08, 3)
			if v < 0 || v > 1 {
				t.Fatalf("fractal(%d,%d) = %f, outside [0,1]", x, y, v)
			}
		}
	}
}
