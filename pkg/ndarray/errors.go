package ndarray

import "errors"

// Errors returned by array construction and selection.
var (
	ErrNegativeExtent   = errors.New("negative extent")
	ErrShapeMismatch    = errors.New("data length does not match shape")
	ErrShapeTooLarge    = errors.New("element count overflows int")
	ErrRankMismatch     = errors.New("selection rank does not match array rank")
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrRangeOutOfBounds = errors.New("range out of bounds")
	ErrMalformedRange   = errors.New("range end before start")
	ErrInvalidStep      = errors.New("step must be at least 1")
)
