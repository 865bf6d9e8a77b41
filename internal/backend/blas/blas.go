// Package blas implements backend.Math on top of gonum's pure-Go BLAS.
//
// Sum maps to ASUM, which is exact here because the kernels only sum
// exponentials. Scale maps to SCAL. The max is not taken from IAMAX: that
// routine ranks by absolute value and would select the wrong shift for inputs
// dominated by large negative scores.
package blas

import (
	"gonum.org/v1/gonum/blas/blas32"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/softmax/internal/backend"
	"github.com/born-ml/softmax/internal/backend/cpu"
	"github.com/born-ml/softmax/internal/tensor"
)

var (
	_ backend.Math[float32] = Float32{}
	_ backend.Math[float64] = Float64{}
)

// New returns the gonum implementation for T. The choice is made once here;
// element types other than float32 and float64 (named float types) get the
// plain-loop implementation.
func New[T tensor.Float]() backend.Math[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(Float32{}).(backend.Math[T])
	case float64:
		return any(Float64{}).(backend.Math[T])
	default:
		return cpu.Loop[T]{}
	}
}

// Float32 is the single-precision gonum backend. gonum has no float32 argmax
// or exp, so those come from the plain-loop implementation.
type Float32 struct {
	cpu.Loop[float32]
}

// Name returns the backend name.
func (Float32) Name() string { return "blas" }

// Sum returns the absolute sum of x via SASUM.
func (Float32) Sum(x []float32) float32 {
	if len(x) == 0 {
		return 0
	}
	return blas32.Asum(blas32.Vector{N: len(x), Data: x, Inc: 1})
}

// Scale multiplies x by alpha via SSCAL.
func (Float32) Scale(alpha float32, x []float32) {
	if len(x) == 0 {
		return
	}
	blas32.Scal(alpha, blas32.Vector{N: len(x), Data: x, Inc: 1})
}

// Float64 is the double-precision gonum backend.
type Float64 struct {
	cpu.Loop[float64]
}

// Name returns the backend name.
func (Float64) Name() string { return "blas" }

// IndexOfMax returns the index of the first largest element.
func (Float64) IndexOfMax(x []float64) int {
	return floats.MaxIdx(x)
}

// Sum returns the absolute sum of x via DASUM.
func (Float64) Sum(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return blas64.Asum(blas64.Vector{N: len(x), Data: x, Inc: 1})
}

// Scale multiplies x by alpha via DSCAL.
func (Float64) Scale(alpha float64, x []float64) {
	if len(x) == 0 {
		return
	}
	blas64.Scal(alpha, blas64.Vector{N: len(x), Data: x, Inc: 1})
}
