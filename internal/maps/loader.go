package maps

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Map is a named tile grid loaded from a file or built in.
type Map struct {
	Name string
	Grid *TileGrid
}

// jsonMap is the on-disk JSON format.
type jsonMap struct {
	Name   string  `json:"name"`
	Width  int     `json:"width,omitempty"`
	Height int     `json:"height,omitempty"`
	Tiles  [][]int `json:"tiles"`
}

// LoadMap reads a JSON map file from disk.
func LoadMap(path string, opts ...GridOption) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read map file: %w", err)
	}
	defer f.Close()

	m, err := DecodeMap(f, opts...)
	if err != nil {
		return nil, err
	}
	if m.Name == "" {
		m.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return m, nil
}

// DecodeMap parses a JSON map and validates its grid.
func DecodeMap(r io.Reader, opts ...GridOption) (*Map, error) {
	var jm jsonMap
	if err := json.NewDecoder(r).Decode(&jm); err != nil {
		return nil, fmt.Errorf("parse map JSON: %w", err)
	}

	grid, err := NewTileGrid(jm.Tiles, opts...)
	if err != nil {
		return nil, fmt.Errorf("map %q: %w", jm.Name, err)
	}

	// Declared dimensions are optional, but must agree with the tiles when given.
	if jm.Height != 0 && jm.Height != grid.RowCount() {
		return nil, fmt.Errorf("map %q: tile rows %d != declared height %d", jm.Name, grid.RowCount(), jm.Height)
	}
	if jm.Width != 0 && jm.Width != grid.ColCount() {
		return nil, fmt.Errorf("map %q: tile columns %d != declared width %d", jm.Name, grid.ColCount(), jm.Width)
	}

	return &Map{Name: jm.Name, Grid: grid}, nil
}

// EncodeMap writes m in the JSON map format.
func EncodeMap(w io.Writer, m *Map) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonMap{
		Name:   m.Name,
		Width:  m.Grid.ColCount(),
		Height: m.Grid.RowCount(),
		Tiles:  m.Grid.Rows(),
	})
}

// LoadMaps scans a directory for *.json files, loads each as a Map,
// and returns them indexed by Name.
func LoadMaps(dir string, opts ...GridOption) (map[string]*Map, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read maps directory: %w", err)
	}

	allMaps := make(map[string]*Map)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		m, err := LoadMap(filepath.Join(dir, entry.Name()), opts...)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", entry.Name(), err)
		}
		if _, exists := allMaps[m.Name]; exists {
			return nil, fmt.Errorf("duplicate map name %q in %s", m.Name, entry.Name())
		}
		allMaps[m.Name] = m
	}
	return allMaps, nil
}

// DefaultMaze returns the built-in 16x11 maze.
func DefaultMaze() *Map {
	return &Map{
		Name: "Maze",
		Grid: MustTileGrid([][]int{
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1},
			{1, 0, 1, 1, 0, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 1},
			{1, 0, 1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1},
			{1, 0, 1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1},
			{1, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1},
			{1, 0, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 1},
			{1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1},
			{1, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 0, 1},
			{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		}),
	}
}
