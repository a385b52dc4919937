package game

import (
	"fmt"

	"maze-level/internal/level"
	"maze-level/internal/maps"
)

// DefaultTileSize is the pixel edge of one tile.
const DefaultTileSize = 32

// Config selects what a host shows.
type Config struct {
	MapPath  string // empty uses the built-in maze
	TileSize int
	Label    string
	Lenient  bool // accept tile codes outside the tile set
}

// Setup loads the map once and builds the sketch for a host run.
// It returns the map name alongside the sketch.
func Setup(cfg Config) (*Sketch, string, error) {
	m := maps.DefaultMaze()
	if cfg.MapPath != "" {
		var opts []maps.GridOption
		if cfg.Lenient {
			opts = append(opts, maps.Lenient())
		}
		loaded, err := maps.LoadMap(cfg.MapPath, opts...)
		if err != nil {
			return nil, "", fmt.Errorf("load %s: %w", cfg.MapPath, err)
		}
		m = loaded
	}

	tileSize := cfg.TileSize
	if tileSize == 0 {
		tileSize = DefaultTileSize
	}
	l, err := level.New(m.Grid, tileSize)
	if err != nil {
		return nil, "", err
	}
	return NewSketch(l, cfg.Label), m.Name, nil
}
