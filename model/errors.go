package model

import "github.com/pkg/errors"

// Errors returned by grid construction, mutation and cursor setup.
// Returned errors wrap one of these with call-site context; test with errors.Is.
var (
	ErrInvalidDimensions = errors.New("rows and cols must be positive")
	ErrSizeMismatch      = errors.New("cell count does not match rows*cols")
	ErrEmptyInput        = errors.New("no cells supplied")
	ErrInvalidCellValue  = errors.New("cell value must be 0 or 1")
	ErrIndexOutOfBounds  = errors.New("cell index out of bounds")
	ErrInvalidGoal       = errors.New("generation goal must not be negative")
	ErrNilGrid           = errors.New("grid is nil")
	ErrUnknownPattern    = errors.New("unknown pattern")
	ErrUnknownRenderer   = errors.New("unknown renderer")
)
