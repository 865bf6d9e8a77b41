package softmax

import (
	"github.com/born-ml/softmax/internal/backend"
	"github.com/born-ml/softmax/internal/tensor"
)

// unrollFactor is the block width of subtractBroadcast's main loop.
const unrollFactor = 32

// maxReduce returns the largest element of a non-empty x.
func maxReduce[T tensor.Float](m backend.Math[T], x []T) T {
	return x[m.IndexOfMax(x)]
}

// subtractBroadcast stores x[i] - alpha into y[i]. The main loop works on
// fixed-size blocks so the compiler drops bounds checks inside each block.
func subtractBroadcast[T tensor.Float](x []T, alpha T, y []T) {
	n := len(x)
	tail := n % unrollFactor
	for i := 0; i < n-tail; i += unrollFactor {
		xs := (*[unrollFactor]T)(x[i:])
		ys := (*[unrollFactor]T)(y[i:])
		for j := range xs {
			ys[j] = xs[j] - alpha
		}
	}
	for i := n - tail; i < n; i++ {
		y[i] = x[i] - alpha
	}
}

// exponentiate stores exp(x[i]) into y[i]; x and y may alias.
func exponentiate[T tensor.Float](m backend.Math[T], x, y []T) {
	m.Exp(y, x)
}

// sumReduce adds up x. Only called on exponentials, which are non-negative.
func sumReduce[T tensor.Float](m backend.Math[T], x []T) T {
	return m.Sum(x)
}

// scale multiplies x by alpha in place.
func scale[T tensor.Float](m backend.Math[T], alpha T, x []T) {
	m.Scale(alpha, x)
}
