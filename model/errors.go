package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimension is returned when a grid is built with a width or height below 1.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrIndexOutOfBounds is returned for cell access outside the grid.
	ErrIndexOutOfBounds = errors.New("cell index out of bounds")
	// ErrDimensionMismatch is returned when a step is asked to run on an unusable grid.
	ErrDimensionMismatch = errors.New("grid dimension mismatch")
)
