package tensor

import (
	"fmt"

	"github.com/samber/lo"
)

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	return product(s) // Scalar has 1 element
}

func product(dims []int) int {
	return lo.Reduce(dims, func(acc, dim, _ int) int { return acc * dim }, 1)
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("%w: dimension %d is %d (must be > 0)", ErrInvalidShape, i, dim)
		}
	}
	return nil
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// NormalizeAxis resolves a possibly negative axis against the rank of s.
func (s Shape) NormalizeAxis(axis int) (int, error) {
	ndim := len(s)
	if axis < 0 {
		axis += ndim
	}
	if axis < 0 || axis >= ndim {
		return 0, fmt.Errorf("%w: axis %d out of range for tensor of rank %d", ErrInvalidAxis, axis, ndim)
	}
	return axis, nil
}

// Extents splits s around axis into the (outer, channels, inner) triple.
//
// Example:
//
//	Shape{2, 3, 4, 5}.Extents(1) // {Outer: 2, Channels: 3, Inner: 20}
//	Shape{2, 3, 4, 5}.Extents(-1) // {Outer: 24, Channels: 5, Inner: 1}
func (s Shape) Extents(axis int) (Extents, error) {
	if err := s.Validate(); err != nil {
		return Extents{}, err
	}
	axis, err := s.NormalizeAxis(axis)
	if err != nil {
		return Extents{}, err
	}
	return Extents{
		Outer:    product(s[:axis]),
		Channels: s[axis],
		Inner:    product(s[axis+1:]),
	}, nil
}

// Extents describes a tensor relative to the softmax axis.
type Extents struct {
	Outer    int // Product of the dimensions before the axis.
	Channels int // Length of the reduction axis.
	Inner    int // Product of the dimensions after the axis.
}

// NumElements returns Outer*Channels*Inner.
func (e Extents) NumElements() int {
	return e.Outer * e.Channels * e.Inner
}

// Dense reports whether no dimensions trail the axis.
func (e Extents) Dense() bool {
	return e.Inner == 1
}

// Validate checks that every extent is at least 1.
func (e Extents) Validate() error {
	if e.Outer < 1 || e.Channels < 1 || e.Inner < 1 {
		return fmt.Errorf("%w: extents %v must all be >= 1", ErrInvalidShape, e)
	}
	return nil
}

// String implements fmt.Stringer.
func (e Extents) String() string {
	return fmt.Sprintf("(outer=%d, channels=%d, inner=%d)", e.Outer, e.Channels, e.Inner)
}
