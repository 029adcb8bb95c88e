package model

import (
	"crypto/md5"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// Grid is a rectangular board of 0/1 cells stored row-major (index = row*cols + col)
type Grid struct {
	rows  int
	cols  int
	cells []uint8
}

// CellCount returns rows*cols, or false when either dimension is not positive
// or the product does not fit in an int
func CellCount(rows, cols int) (int, bool) {
	if rows <= 0 || cols <= 0 || cols > math.MaxInt/rows {
		return 0, false
	}
	return rows * cols, true
}

// NewGrid creates a grid from a flat row-major slice of 0/1 values. The values are copied.
func NewGrid(rows, cols int, cells []uint8) (*Grid, error) {
	size, ok := CellCount(rows, cols)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	if len(cells) == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "[NewGrid] rows=%d cols=%d", rows, cols)
	}
	if len(cells) != size {
		return nil, errors.Wrapf(ErrSizeMismatch, "[NewGrid] got %d cells, want %d", len(cells), size)
	}
	for i, v := range cells {
		if v > 1 {
			return nil, errors.Wrapf(ErrInvalidCellValue, "[NewGrid] value %d at index %d", v, i)
		}
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: slices.Clone(cells),
	}, nil
}

// NewGridFromRows creates a grid from nested rows, which must all have the same length
func NewGridFromRows(rows [][]uint8) (*Grid, error) {
	if !slices.ContainsFunc(rows, func(row []uint8) bool { return len(row) > 0 }) {
		return nil, errors.Wrap(ErrEmptyInput, "[NewGridFromRows] no cells supplied")
	}
	cols := len(rows[0])
	flat := make([]uint8, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, errors.Wrapf(ErrSizeMismatch, "[NewGridFromRows] row %d has %d cells, want %d", i, len(row), cols)
		}
		flat = append(flat, row...)
	}
	return NewGrid(len(rows), cols, flat)
}

// NewEmptyGrid creates an all-dead grid with the specified dimensions
func NewEmptyGrid(rows, cols int) (*Grid, error) {
	size, ok := CellCount(rows, cols)
	if !ok {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewEmptyGrid] rows=%d cols=%d", rows, cols)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]uint8, size),
	}, nil
}

// Rows returns the number of rows
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns
func (g *Grid) Cols() int {
	return g.cols
}

// Cells returns a copy of the flat cell buffer
func (g *Grid) Cells() []uint8 {
	return slices.Clone(g.cells)
}

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Get returns the state of a cell
func (g *Grid) Get(row, col int) (uint8, error) {
	if !g.inBounds(row, col) {
		return 0, errors.Wrapf(ErrIndexOutOfBounds, "[Get] (%d,%d) outside %dx%d", row, col, g.rows, g.cols)
	}
	return g.cells[row*g.cols+col], nil
}

// Set sets a cell to alive (1) or dead (0)
func (g *Grid) Set(row, col int, value uint8) error {
	if !g.inBounds(row, col) {
		return errors.Wrapf(ErrIndexOutOfBounds, "[Set] (%d,%d) outside %dx%d", row, col, g.rows, g.cols)
	}
	if value > 1 {
		return errors.Wrapf(ErrInvalidCellValue, "[Set] value %d at (%d,%d)", value, row, col)
	}
	g.cells[row*g.cols+col] = value
	return nil
}

// Clear kills every cell
func (g *Grid) Clear() {
	clear(g.cells)
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: slices.Clone(g.cells),
	}
}

// Equal reports whether both grids have the same shape and cells
func (g *Grid) Equal(other *Grid) bool {
	if other == nil {
		return false
	}
	return g.rows == other.rows && g.cols == other.cols && slices.Equal(g.cells, other.cells)
}

// ToRows reshapes the buffer into a fresh rows x cols nested slice
func (g *Grid) ToRows() [][]uint8 {
	out := make([][]uint8, g.rows)
	for r := range g.rows {
		out[r] = slices.Clone(g.cells[r*g.cols : (r+1)*g.cols])
	}
	return out
}

// RenderText dumps the grid as digits, one line per row, followed by a blank line
func (g *Grid) RenderText() string {
	var sb strings.Builder
	sb.Grow(g.rows*(g.cols+1) + 1)
	for i, v := range g.cells {
		sb.WriteByte('0' + v)
		if (i+1)%g.cols == 0 {
			sb.WriteByte('\n')
		}
	}
	sb.WriteByte('\n')
	return sb.String()
}

// CountLivingCells returns the total number of living cells
func (g *Grid) CountLivingCells() (count int) {
	for _, v := range g.cells {
		count += int(v)
	}
	return
}

// GetGridHash returns an MD5 hash of the current grid state
func (g *Grid) GetGridHash() string {
	h := md5.New()
	h.Write(g.cells)
	return fmt.Sprintf("%x", h.Sum(nil))
}
