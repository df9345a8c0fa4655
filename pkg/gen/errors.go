package gen

import "errors"

// Errors returned by configuration validation and descriptor dispatch.
var (
	ErrInvalidRate     = errors.New("rate must be within [0, 1]")
	ErrUnsupportedType = errors.New("unsupported type")
)
