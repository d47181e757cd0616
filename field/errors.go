package field

import "errors"

var (
	// ErrOutOfRange is returned when a value does not lie in [0, prime).
	ErrOutOfRange = errors.New("field: value not in field range")

	// ErrFieldMismatch is returned when two elements of different fields
	// are combined.
	ErrFieldMismatch = errors.New("field: elements belong to different fields")

	// ErrDivisionByZero is returned when inverting or dividing by zero.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrInvalidPrime is returned for a modulus smaller than 2.
	ErrInvalidPrime = errors.New("field: modulus must be at least 2")
)
