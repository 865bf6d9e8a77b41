package softmax

import (
	"math"

	"github.com/born-ml/softmax/internal/backend"
	"github.com/born-ml/softmax/internal/parallel"
	"github.com/born-ml/softmax/internal/tensor"
)

// forwardDense computes softmax over rows of length channels laid out back to
// back. Each row is one task.
//
//	softmax(x)_c = exp(x_c - max(x)) / Σ_c' exp(x_c' - max(x))
func forwardDense[T tensor.Float](m backend.Math[T], mapper parallel.Mapper, outer, channels int, src, dst []T) {
	mapper.For(outer, func(ou int) {
		s := src[ou*channels : (ou+1)*channels]
		d := dst[ou*channels : (ou+1)*channels]

		maxVal := maxReduce(m, s)
		subtractBroadcast(s, maxVal, d)
		exponentiate(m, d, d)
		sum := sumReduce(m, d)
		scale(m, 1/sum, d)
	})
}

// forwardGeneric computes softmax along the channel axis of an arbitrary layout.
//
// scratch holds slots consecutive regions of 2*inner elements: a running max
// followed by a running denominator. Outer indices are split into slots
// contiguous chunks; each chunk owns one region and walks its outer indices
// serially, so no two tasks ever share scratch memory. A nil scratch is only
// valid for inner == 1, where every task uses a two-element local region.
func forwardGeneric[T tensor.Float](mapper parallel.Mapper, layout tensor.Layout, src, dst, scratch []T, slots int) {
	ext := layout.Extents()
	outer, channels, inner := ext.Outer, ext.Channels, ext.Inner

	slots = max(min(slots, outer), 1)
	chunk := (outer + slots - 1) / slots
	tasks := (outer + chunk - 1) / chunk
	regionSize := 2 * inner
	negInf := T(math.Inf(-1))

	mapper.For(tasks, func(task int) {
		var local [2]T
		region := local[:]
		if scratch != nil {
			region = scratch[task*regionSize : (task+1)*regionSize]
		}
		spaceMax, spaceDenom := region[:inner], region[inner:]

		for ou := task * chunk; ou < min((task+1)*chunk, outer); ou++ {
			for in := range spaceMax {
				spaceMax[in] = negInf
			}
			clear(spaceDenom)

			for c := 0; c < channels; c++ {
				for in := 0; in < inner; in++ {
					v := src[layout.Offset(ou, c, in)]
					if v > spaceMax[in] {
						spaceMax[in] = v
					}
				}
			}

			for c := 0; c < channels; c++ {
				for in := 0; in < inner; in++ {
					off := layout.Offset(ou, c, in)
					e := T(math.Exp(float64(src[off] - spaceMax[in])))
					dst[off] = e
					spaceDenom[in] += e
				}
			}

			for c := 0; c < channels; c++ {
				for in := 0; in < inner; in++ {
					dst[layout.Offset(ou, c, in)] /= spaceDenom[in]
				}
			}
		}
	})
}
