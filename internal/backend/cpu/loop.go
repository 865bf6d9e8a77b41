package cpu

import (
	"math"

	"github.com/born-ml/softmax/internal/tensor"
)

// Loop is the plain-loop Math implementation and the numerical reference for
// every other backend.
type Loop[T tensor.Float] struct{}

// Name returns the backend name.
func (Loop[T]) Name() string {
	return "loop"
}

// IndexOfMax returns the index of the first largest element.
func (Loop[T]) IndexOfMax(x []T) int {
	idx := 0
	for i := 1; i < len(x); i++ {
		if x[i] > x[idx] {
			idx = i
		}
	}
	return idx
}

// Exp computes dst[i] = exp(x[i]).
func (Loop[T]) Exp(dst, x []T) {
	for i, v := range x {
		dst[i] = T(math.Exp(float64(v)))
	}
}

// Sum adds up x.
func (Loop[T]) Sum(x []T) T {
	var sum T
	for _, v := range x {
		sum += v
	}
	return sum
}

// Scale multiplies every element of x by alpha.
func (Loop[T]) Scale(alpha T, x []T) {
	for i := range x {
		x[i] *= alpha
	}
}
