package softmax

import (
	"errors"

	"github.com/born-ml/softmax/internal/tensor"
)

// Common errors. Descriptors and Execute wrap them with context; match with errors.Is.
var (
	ErrNilLayout       = errors.New("nil layout")
	ErrZeroChannels    = errors.New("softmax axis has no channels")
	ErrBufferTooSmall  = errors.New("buffer shorter than layout span")
	ErrScratchTooSmall = errors.New("scratch buffer too small")
	ErrUnknownBackend  = errors.New("unknown math backend")
	ErrMathType        = errors.New("math backend element type does not match")
	ErrShapeMismatch   = tensor.ErrShapeMismatch
)
