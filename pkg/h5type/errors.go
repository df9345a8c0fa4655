package h5type

import "errors"

// Error variables for value construction and descriptor handling.
var (
	ErrCapacityExceeded  = errors.New("value exceeds capacity")
	ErrNegativeCapacity  = errors.New("capacity cannot be negative")
	ErrNotASCII          = errors.New("byte outside 7-bit ascii")
	ErrNulScalar         = errors.New("nul scalar not allowed")
	ErrInvalidUTF8       = errors.New("invalid utf-8")
	ErrInvalidDescriptor = errors.New("invalid type descriptor")
	ErrParse             = errors.New("cannot parse type expression")
	ErrMismatch          = errors.New("value does not match descriptor")
)
