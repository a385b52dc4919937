// Package level binds a tile grid to a pixel scale and draws it.
package level

import (
	"errors"
	"fmt"
	"image"

	"maze-level/internal/maps"
	"maze-level/internal/render"
)

// MaxPixelExtent bounds the level's pixel width and height.
const MaxPixelExtent = 1 << 14

var (
	// ErrNilGrid is returned by New when no grid is given.
	ErrNilGrid = errors.New("level requires a grid")
	// ErrInvalidTileSize is returned when the tile size is not positive.
	ErrInvalidTileSize = errors.New("tile size must be positive")
	// ErrTooLarge is returned when a pixel dimension would exceed MaxPixelExtent.
	ErrTooLarge = errors.New("level exceeds maximum pixel extent")
)

// Level owns a tile grid and the pixel edge length of one tile.
type Level struct {
	grid     *maps.TileGrid
	tileSize int
}

// New creates a level. The grid must not be shared with code that could change it.
func New(grid *maps.TileGrid, tileSize int) (*Level, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if tileSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTileSize, tileSize)
	}
	if n := max(grid.RowCount(), grid.ColCount()); tileSize > MaxPixelExtent/n {
		return nil, fmt.Errorf("%w: %d tiles of %dpx, limit %dpx", ErrTooLarge, n, tileSize, MaxPixelExtent)
	}
	return &Level{grid: grid, tileSize: tileSize}, nil
}

// FromCells validates cells as a grid and wraps it in a level.
func FromCells(cells [][]int, tileSize int, opts ...maps.GridOption) (*Level, error) {
	grid, err := maps.NewTileGrid(cells, opts...)
	if err != nil {
		return nil, fmt.Errorf("build grid: %w", err)
	}
	return New(grid, tileSize)
}

// Columns is the grid's column count.
func (l *Level) Columns() int { return l.grid.ColCount() }

// RowsCount is the grid's row count.
func (l *Level) RowsCount() int { return l.grid.RowCount() }

// TileSize is the pixel edge length of one tile.
func (l *Level) TileSize() int { return l.tileSize }

// PixelWidth is Columns() * TileSize().
func (l *Level) PixelWidth() int { return l.Columns() * l.tileSize }

// PixelHeight is RowsCount() * TileSize().
func (l *Level) PixelHeight() int { return l.RowsCount() * l.tileSize }

// TileAt returns the tile code at (row, col).
func (l *Level) TileAt(row, col int) (maps.TileCode, error) {
	return l.grid.ValueAt(row, col)
}

// CellRect returns the pixel rectangle covered by cell (row, col).
func (l *Level) CellRect(row, col int) image.Rectangle {
	x, y := col*l.tileSize, row*l.tileSize
	return image.Rect(x, y, x+l.tileSize, y+l.tileSize)
}

// CellAt converts a pixel position to the cell containing it.
// ok is false outside the level's pixel extent.
func (l *Level) CellAt(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || x >= l.PixelWidth() || y >= l.PixelHeight() {
		return 0, 0, false
	}
	return y / l.tileSize, x / l.tileSize, true
}

// Render draws every cell as a filled square, row by row.
func (l *Level) Render(s render.Surface) {
	ts := l.tileSize
	l.grid.Each(func(row, col int, code maps.TileCode) {
		s.SetFill(render.TileColor(code))
		s.DrawRect(col*ts, row*ts, ts, ts)
	})
}
