// Package backend defines the vector-math capability the softmax kernels are
// written against. Implementations live in the cpu (plain loops) and blas
// (gonum) subpackages.
package backend

import "github.com/born-ml/softmax/internal/tensor"

// Math provides the reductions and element-wise maps the kernels need over a
// contiguous span. Every implementation must agree with the plain-loop
// reference within floating-point tolerance.
type Math[T tensor.Float] interface {
	// Name identifies the implementation in logs and benchmarks.
	Name() string
	// IndexOfMax returns the index of the largest element of a non-empty x.
	IndexOfMax(x []T) int
	// Exp stores exp(x[i]) into dst[i]. dst and x may alias.
	Exp(dst, x []T)
	// Sum returns the sum of x. Callers only pass non-negative values.
	Sum(x []T) T
	// Scale multiplies x by alpha in place.
	Scale(alpha T, x []T)
}
