package geom

import "errors"

var (
	// ErrInvalidArgument is returned when a point is built from the wrong
	// number of coordinates, or a line from two coincident points.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDivisionByZero is returned by [Point.Div] for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrOutOfRange is returned by [Point.At] for an index outside [0, Dim).
	ErrOutOfRange = errors.New("index out of range")
)
