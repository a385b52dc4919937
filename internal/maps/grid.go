package maps

import (
	"errors"
	"fmt"
)

// MaxTileCode is the largest value a cell may hold.
const MaxTileCode = 255

var (
	// ErrEmptyGrid is returned when a grid has zero rows or zero columns.
	ErrEmptyGrid = errors.New("empty grid")
	// ErrOutOfBounds matches every *OutOfBoundsError via errors.Is.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// ShapeError reports a row whose length differs from the first row.
type ShapeError struct {
	Row  int
	Got  int
	Want int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("row %d has %d tiles, expected %d", e.Row, e.Got, e.Want)
}

// OutOfBoundsError reports a query outside the grid extent.
type OutOfBoundsError struct {
	Row, Col   int
	Rows, Cols int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("cell (%d,%d) outside %dx%d grid", e.Row, e.Col, e.Rows, e.Cols)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}

// InvalidTileCodeError reports a cell value that is not an acceptable tile code.
type InvalidTileCodeError struct {
	Row, Col int
	Code     int
}

func (e *InvalidTileCodeError) Error() string {
	return fmt.Sprintf("cell (%d,%d) has invalid tile code %d", e.Row, e.Col, e.Code)
}

// GridOption configures grid construction.
type GridOption func(*gridConfig)

type gridConfig struct {
	lenient bool
}

// Lenient accepts any code in [0, MaxTileCode], including codes outside the tile set.
func Lenient() GridOption {
	return func(c *gridConfig) { c.lenient = true }
}

// TileGrid is an immutable rectangular grid of tile codes, addressed [row][col].
type TileGrid struct {
	rows, cols int
	cells      []TileCode // row-major
}

// NewTileGrid validates cells and copies them into a new grid.
// By default every value must be a known tile code.
func NewTileGrid(cells [][]int, opts ...GridOption) (*TileGrid, error) {
	var cfg gridConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	rows, cols := len(cells), len(cells[0])
	g := &TileGrid{
		rows:  rows,
		cols:  cols,
		cells: make([]TileCode, 0, rows*cols),
	}
	for r, row := range cells {
		if len(row) != cols {
			return nil, &ShapeError{Row: r, Got: len(row), Want: cols}
		}
		for c, v := range row {
			if v < 0 || v > MaxTileCode || (!cfg.lenient && !TileCode(v).Known()) {
				return nil, &InvalidTileCodeError{Row: r, Col: c, Code: v}
			}
			g.cells = append(g.cells, TileCode(v))
		}
	}
	return g, nil
}

// MustTileGrid is NewTileGrid for literals known to be valid. It panics on error.
func MustTileGrid(cells [][]int, opts ...GridOption) *TileGrid {
	g, err := NewTileGrid(cells, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// RowCount returns the number of rows.
func (g *TileGrid) RowCount() int { return g.rows }

// ColCount returns the number of columns in every row.
func (g *TileGrid) ColCount() int { return g.cols }

// ValueAt returns the code at (row, col).
func (g *TileGrid) ValueAt(row, col int) (TileCode, error) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return 0, &OutOfBoundsError{Row: row, Col: col, Rows: g.rows, Cols: g.cols}
	}
	return g.cells[row*g.cols+col], nil
}

// Each calls fn for every cell in row-major order.
func (g *TileGrid) Each(fn func(row, col int, code TileCode)) {
	for r := 0; r < g.rows; r++ {
		base := r * g.cols
		for c := 0; c < g.cols; c++ {
			fn(r, c, g.cells[base+c])
		}
	}
}

// Count returns how many cells hold code.
func (g *TileGrid) Count(code TileCode) int {
	n := 0
	for _, v := range g.cells {
		if v == code {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as nested int slices.
func (g *TileGrid) Rows() [][]int {
	out := make([][]int, g.rows)
	for r := range out {
		out[r] = make([]int, g.cols)
		for c := range out[r] {
			out[r][c] = int(g.cells[r*g.cols+c])
		}
	}
	return out
}
