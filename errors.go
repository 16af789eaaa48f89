package fenwickviz

import "errors"

var (
	// ErrIndexOutOfRange is returned when an index is outside 1..Len().
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrInvalidLength is returned for a length smaller than 1.
	ErrInvalidLength = errors.New("length must be >= 1")
	// ErrValueOutOfRange is returned for a value whose magnitude exceeds
	// MaxValue.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrInvalidRange is returned by Randomize for an empty or too wide
	// value range.
	ErrInvalidRange = errors.New("invalid value range")
)
