// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package softmax

import (
	"log/slog"

	"github.com/born-ml/softmax/internal/backend"
	"github.com/born-ml/softmax/internal/parallel"
	"github.com/born-ml/softmax/internal/softmax"
	"github.com/born-ml/softmax/internal/tensor"
)

// Float is the set of supported element types: float32 and float64.
type Float = tensor.Float

// Shape represents the dimensions of a tensor.
type Shape = tensor.Shape

// Extents is the (outer, channels, inner) triple of a tensor around the softmax axis.
type Extents = tensor.Extents

// Layout maps logical positions to physical indices.
type Layout = tensor.Layout

// OffsetFunc is a raw layout function.
type OffsetFunc = tensor.OffsetFunc

// Math is the vector-math capability used by the dense forward path.
type Math[T Float] = backend.Math[T]

// Mapper is the parallel-map capability.
type Mapper = parallel.Mapper

// Forward is a configured softmax forward primitive.
type Forward[T Float] = softmax.Forward[T]

// Backward is a configured softmax backward primitive.
type Backward[T Float] = softmax.Backward[T]

// Option configures a descriptor.
type Option = softmax.Option

// Math backend names.
const (
	BackendLoop = softmax.BackendLoop
	BackendBLAS = softmax.BackendBLAS
	BackendAuto = softmax.BackendAuto
)

// Errors returned by descriptors and Execute.
var (
	ErrNilLayout       = softmax.ErrNilLayout
	ErrZeroChannels    = softmax.ErrZeroChannels
	ErrBufferTooSmall  = softmax.ErrBufferTooSmall
	ErrScratchTooSmall = softmax.ErrScratchTooSmall
	ErrUnknownBackend  = softmax.ErrUnknownBackend
	ErrMathType        = softmax.ErrMathType
	ErrShapeMismatch   = softmax.ErrShapeMismatch
	ErrInvalidShape    = tensor.ErrInvalidShape
	ErrInvalidAxis     = tensor.ErrInvalidAxis
	ErrInvalidLayout   = tensor.ErrInvalidLayout
)

// NewContiguous creates a row-major layout.
func NewContiguous(ext Extents) (Layout, error) {
	l, err := tensor.NewContiguous(ext)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// NewStrided creates a layout from explicit per-dimension strides.
func NewStrided(shape Shape, strides []int, axis int) (Layout, error) {
	l, err := tensor.NewStrided(shape, strides, axis)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// NewBlocked creates a channel-blocked, zero-padded layout.
func NewBlocked(ext Extents, block int) (Layout, error) {
	l, err := tensor.NewBlocked(ext, block)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// NewFuncLayout wraps an arbitrary offset function.
func NewFuncLayout(ext Extents, offset OffsetFunc, span int) (Layout, error) {
	l, err := tensor.NewFuncLayout(ext, offset, span)
	if err != nil {
		return nil, err
	}
	return l, nil
}

// NewForward creates a forward descriptor.
func NewForward[T Float](layout Layout, opts ...Option) (*Forward[T], error) {
	return softmax.NewForward[T](layout, opts...)
}

// NewBackward creates a backward descriptor.
func NewBackward[T Float](dataLayout, diffLayout Layout, opts ...Option) (*Backward[T], error) {
	return softmax.NewBackward[T](dataLayout, diffLayout, opts...)
}

// Softmax computes softmax of a row-major tensor along axis.
func Softmax[T Float](x []T, shape Shape, axis int, opts ...Option) ([]T, error) {
	return softmax.Softmax(x, shape, axis, opts...)
}

// SoftmaxBackward computes the input gradient from the softmax output y and its gradient dy.
func SoftmaxBackward[T Float](y, dy []T, shape Shape, axis int, opts ...Option) ([]T, error) {
	return softmax.SoftmaxBackward(y, dy, shape, axis, opts...)
}

// SelectMath resolves a backend name for T.
func SelectMath[T Float](name string) (Math[T], error) {
	return softmax.SelectMath[T](name)
}

// WithBackend selects a math backend by name.
func WithBackend(name string) Option { return softmax.WithBackend(name) }

// WithMath injects a math implementation for element type T.
func WithMath[T Float](m Math[T]) Option { return softmax.WithMath(m) }

// WithMapper sets the parallel-map capability.
func WithMapper(m Mapper) Option { return softmax.WithMapper(m) }

// WithParallelism caps the number of private scratch regions of the generic forward path.
func WithParallelism(n int) Option { return softmax.WithParallelism(n) }

// WithLogger sets the logger used when a descriptor is created.
func WithLogger(l *slog.Logger) Option { return softmax.WithLogger(l) }

// DefaultParallel returns a goroutine-per-chunk mapper sized to the CPU count.
func DefaultParallel() Mapper { return parallel.DefaultConfig() }

// NewPool creates a persistent worker pool mapper. Close it when done.
func NewPool(workers int) *parallel.Pool { return parallel.NewPool(workers) }

// Sequential returns a mapper that runs every task on the calling goroutine.
func Sequential() Mapper { return parallel.Sequential{} }
