package utils

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

// initialCells caps the buffer allocated before any input is read
const initialCells = 1 << 16

// ReadCells scans rows*cols whitespace-separated 0/1 integers from r.
// Anything after the last expected value is left unread.
func ReadCells(r io.Reader, rows, cols int) ([]uint8, error) {
	want, ok := model.CellCount(rows, cols)
	if !ok {
		return nil, errors.Wrapf(model.ErrInvalidDimensions, "[ReadCells] rows=%d cols=%d", rows, cols)
	}

	var (
		cells   = make([]uint8, 0, min(want, initialCells))
		scanner = bufio.NewScanner(r)
	)
	scanner.Split(bufio.ScanWords)

	for len(cells) < want && scanner.Scan() {
		tok := scanner.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(err, "[ReadCells] value %d is not an integer: %q", len(cells), tok)
		}
		if v != 0 && v != 1 {
			return nil, errors.Wrapf(model.ErrInvalidCellValue, "[ReadCells] value %d is %d", len(cells), v)
		}
		cells = append(cells, uint8(v))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[ReadCells] failed to read input")
	}

	if len(cells) == 0 {
		return nil, errors.Wrap(model.ErrEmptyInput, "[ReadCells] no values read")
	}
	if len(cells) != want {
		return nil, errors.Wrapf(model.ErrSizeMismatch, "[ReadCells] read %d values, want %d", len(cells), want)
	}
	return cells, nil
}

// ReadGrid reads a rows x cols grid from r
func ReadGrid(r io.Reader, rows, cols int) (*model.Grid, error) {
	cells, err := ReadCells(r, rows, cols)
	if err != nil {
		return nil, err
	}
	return model.NewGrid(rows, cols, cells)
}
