package softmax

import (
	"fmt"

	"github.com/born-ml/softmax/internal/tensor"
)

// Softmax computes softmax of a row-major tensor x with the given shape along
// axis (negative axis counts from the end) and returns a new slice.
// Scratch for the generic path is allocated here for the duration of the call.
func Softmax[T tensor.Float](x []T, shape tensor.Shape, axis int, opts ...Option) ([]T, error) {
	layout, err := contiguousLayout(shape, axis, len(x))
	if err != nil {
		return nil, err
	}
	fwd, err := NewForward[T](layout, opts...)
	if err != nil {
		return nil, err
	}

	dst := make([]T, len(x))
	scratch := make([]T, fwd.ScratchSize())
	if err := fwd.Execute(x, dst, scratch); err != nil {
		return nil, err
	}
	return dst, nil
}

// SoftmaxBackward returns the gradient with respect to the softmax input given
// the softmax output y and the gradient dy with respect to y. Both are
// row-major tensors with the given shape.
func SoftmaxBackward[T tensor.Float](y, dy []T, shape tensor.Shape, axis int, opts ...Option) ([]T, error) {
	layout, err := contiguousLayout(shape, axis, len(y))
	if err != nil {
		return nil, err
	}
	if len(dy) != len(y) {
		return nil, fmt.Errorf("softmax: backward: %w: %d gradients for %d outputs", ErrShapeMismatch, len(dy), len(y))
	}
	bwd, err := NewBackward[T](layout, layout, opts...)
	if err != nil {
		return nil, err
	}

	dx := make([]T, len(y))
	if err := bwd.Execute(y, dy, dx); err != nil {
		return nil, err
	}
	return dx, nil
}

func contiguousLayout(shape tensor.Shape, axis, n int) (*tensor.Contiguous, error) {
	ext, err := shape.Extents(axis)
	if err != nil {
		return nil, fmt.Errorf("softmax: %w", err)
	}
	if ext.NumElements() != n {
		return nil, fmt.Errorf("softmax: %w: shape %v holds %d elements, got %d", ErrShapeMismatch, shape, ext.NumElements(), n)
	}
	return tensor.NewContiguous(ext)
}
