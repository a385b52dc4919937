package maps

import (
	"errors"
	"testing"
)

func TestNewTileGridErrors(t *testing.T) {
	tests := []struct {
		name  string
		cells [][]int
		opts  []GridOption
		check func(t *testing.T, err error)
	}{
		{"nil outer", nil, nil, wantIs(ErrEmptyGrid)},
		{"empty outer", [][]int{}, nil, wantIs(ErrEmptyGrid)},
		{"empty first row", [][]int{{}}, nil, wantIs(ErrEmptyGrid)},
		{"ragged", [][]int{{1, 1}, {1, 0, 1}}, nil, func(t *testing.T, err error) {
			var se *ShapeError
			if !errors.As(err, &se) {
				t.Fatalf("expected ShapeError, got %v", err)
			}
			if se.Row != 1 || se.Got != 3 || se.Want != 2 {
				t.Errorf("unexpected shape error %+v", se)
			}
		}},
		{"short later row", [][]int{{0, 0, 0}, {0, 0, 0}, {0}}, nil, func(t *testing.T, err error) {
			var se *ShapeError
			if !errors.As(err, &se) || se.Row != 2 {
				t.Errorf("expected ShapeError on row 2, got %v", err)
			}
		}},
		{"negative code", [][]int{{0, -1}}, nil, wantCode(0, 1, -1)},
		{"negative code lenient", [][]int{{0, -1}}, []GridOption{Lenient()}, wantCode(0, 1, -1)},
		{"too large lenient", [][]int{{256}}, []GridOption{Lenient()}, wantCode(0, 0, 256)},
		{"unknown code strict", [][]int{{0, 1}, {7, 0}}, nil, wantCode(1, 0, 7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewTileGrid(tt.cells, tt.opts...)
			if err == nil {
				t.Fatalf("expected error, got grid %dx%d", g.RowCount(), g.ColCount())
			}
			if g != nil {
				t.Errorf("expected nil grid on error")
			}
			tt.check(t, err)
		})
	}
}

func wantIs(target error) func(*testing.T, error) {
	return func(t *testing.T, err error) {
		if !errors.Is(err, target) {
			t.Errorf("expected %v, got %v", target, err)
		}
	}
}

func wantCode(row, col, code int) func(*testing.T, error) {
	return func(t *testing.T, err error) {
		var ie *InvalidTileCodeError
		if !errors.As(err, &ie) {
			t.Fatalf("expected InvalidTileCodeError, got %v", err)
		}
		if ie.Row != row || ie.Col != col || ie.Code != code {
			t.Errorf("expected (%d,%d)=%d, got %+v", row, col, code, ie)
		}
	}
}

func TestTileGridQueries(t *testing.T) {
	g, err := NewTileGrid([][]int{
		{1, 1, 1, 1},
		{1, 0, 0, 1},
		{1, 1, 1, 1},
	})
	if err != nil {
		t.Fatalf("NewTileGrid: %v", err)
	}

	if g.RowCount() != 3 || g.ColCount() != 4 {
		t.Fatalf("expected 3x4, got %dx%d", g.RowCount(), g.ColCount())
	}

	v, err := g.ValueAt(1, 2)
	if err != nil || v != Floor {
		t.Errorf("ValueAt(1,2) = %v, %v; want floor", v, err)
	}
	v, err = g.ValueAt(2, 3)
	if err != nil || v != Wall {
		t.Errorf("ValueAt(2,3) = %v, %v; want wall", v, err)
	}

	for _, rc := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 4}, {3, 4}} {
		_, err := g.ValueAt(rc[0], rc[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("ValueAt(%d,%d): expected ErrOutOfBounds, got %v", rc[0], rc[1], err)
		}
		var oob *OutOfBoundsError
		if !errors.As(err, &oob) || oob.Rows != 3 || oob.Cols != 4 {
			t.Errorf("ValueAt(%d,%d): unexpected error detail %v", rc[0], rc[1], err)
		}
	}

	if n := g.Count(Floor); n != 2 {
		t.Errorf("Count(floor) = %d, want 2", n)
	}
	if n := g.Count(Wall); n != 10 {
		t.Errorf("Count(wall) = %d, want 10", n)
	}
}

func TestTileGridEachRowMajor(t *testing.T) {
	g := MustTileGrid([][]int{{0, 1, 0}, {1, 0, 1}})

	var visited [][2]int
	g.Each(func(row, col int, code TileCode) {
		want, _ := g.ValueAt(row, col)
		if code != want {
			t.Errorf("Each(%d,%d) code %v, ValueAt says %v", row, col, code, want)
		}
		visited = append(visited, [2]int{row, col})
	})

	expected := [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}
	if len(visited) != len(expected) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(expected))
	}
	for i := range expected {
		if visited[i] != expected[i] {
			t.Errorf("step %d: got %v, want %v", i, visited[i], expected[i])
		}
	}
}

func TestTileGridCopiesInput(t *testing.T) {
	cells := [][]int{{0, 1}, {1, 0}}
	g := MustTileGrid(cells)
	cells[0][0] = 1

	if v, _ := g.ValueAt(0, 0); v != Floor {
		t.Errorf("grid changed after caller mutated input: got %v", v)
	}

	rows := g.Rows()
	rows[1][1] = 1
	if v, _ := g.ValueAt(1, 1); v != Floor {
		t.Errorf("grid changed after mutating Rows() copy: got %v", v)
	}
}

func TestLenientKeepsUnknownCodes(t *testing.T) {
	g, err := NewTileGrid([][]int{{0, 9}}, Lenient())
	if err != nil {
		t.Fatalf("NewTileGrid lenient: %v", err)
	}
	v, _ := g.ValueAt(0, 1)
	if v != 9 || v.Known() {
		t.Errorf("expected unknown code 9, got %v (known=%v)", v, v.Known())
	}
	if v.String() != "tile(9)" {
		t.Errorf("String() = %q", v.String())
	}
	if def := v.Def(); def.Name != "unknown" || def.Walkable {
		t.Errorf("unexpected def for unknown code: %+v", def)
	}
}

func TestMustTileGridPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic for ragged literal")
		}
	}()
	MustTileGrid([][]int{{1, 1}, {1}})
}
