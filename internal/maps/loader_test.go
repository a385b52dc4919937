package maps

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeMap(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		errText string
	}{
		{"valid", `{"name":"tiny","width":2,"height":2,"tiles":[[1,1],[1,0]]}`, nil, ""},
		{"no declared size", `{"name":"tiny","tiles":[[1,0,1]]}`, nil, ""},
		{"ragged", `{"name":"bad","tiles":[[1,1],[1,0,1]]}`, nil, "row 1 has 3 tiles"},
		{"empty", `{"name":"none","tiles":[]}`, ErrEmptyGrid, ""},
		{"height mismatch", `{"name":"h","height":3,"tiles":[[1]]}`, nil, "declared height 3"},
		{"width mismatch", `{"name":"w","width":2,"tiles":[[1]]}`, nil, "declared width 2"},
		{"bad json", `{"name":`, nil, "parse map JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := DecodeMap(strings.NewReader(tt.input))
			if tt.wantErr == nil && tt.errText == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if m.Grid == nil {
					t.Fatalf("expected grid")
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error, got map %+v", m)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.errText != "" && !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("expected error containing %q, got %v", tt.errText, err)
			}
		})
	}
}

func TestDecodeMapShapeErrorUnwraps(t *testing.T) {
	_, err := DecodeMap(strings.NewReader(`{"tiles":[[1,1],[1,0,1]]}`))
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("expected wrapped ShapeError, got %v", err)
	}
}

func TestEncodeDecodeDefaultMaze(t *testing.T) {
	dm := DefaultMaze()

	var buf bytes.Buffer
	if err := EncodeMap(&buf, dm); err != nil {
		t.Fatalf("EncodeMap: %v", err)
	}
	got, err := DecodeMap(&buf)
	if err != nil {
		t.Fatalf("DecodeMap: %v", err)
	}
	if got.Name != dm.Name {
		t.Errorf("name %q, want %q", got.Name, dm.Name)
	}
	if got.Grid.RowCount() != 11 || got.Grid.ColCount() != 16 {
		t.Errorf("expected 11x16, got %dx%d", got.Grid.RowCount(), got.Grid.ColCount())
	}
	dm.Grid.Each(func(row, col int, code TileCode) {
		if v, _ := got.Grid.ValueAt(row, col); v != code {
			t.Errorf("cell (%d,%d) = %v, want %v", row, col, v, code)
		}
	})
}

func TestLoadMaps(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("a.json", `{"name":"A","tiles":[[1,1],[1,0]]}`)
	write("b.json", `{"tiles":[[0]]}`)
	write("notes.txt", "ignored")

	all, err := LoadMaps(dir)
	if err != nil {
		t.Fatalf("LoadMaps: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 maps, got %d", len(all))
	}
	if _, ok := all["A"]; !ok {
		t.Errorf("missing map A")
	}
	// unnamed maps fall back to the file name
	if _, ok := all["b"]; !ok {
		t.Errorf("missing map b")
	}

	write("c.json", `{"name":"A","tiles":[[0]]}`)
	if _, err := LoadMaps(dir); err == nil || !strings.Contains(err.Error(), "duplicate map name") {
		t.Errorf("expected duplicate name error, got %v", err)
	}
}

func TestLoadMapMissingFile(t *testing.T) {
	_, err := LoadMap(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
