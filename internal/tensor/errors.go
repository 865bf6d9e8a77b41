package tensor

import "errors"

// Common errors.
var (
	ErrInvalidShape  = errors.New("invalid shape")
	ErrInvalidAxis   = errors.New("invalid axis")
	ErrInvalidLayout = errors.New("invalid layout")
	ErrShapeMismatch = errors.New("shape mismatch")
)
