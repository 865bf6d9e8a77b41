package softmax

import (
	"github.com/born-ml/softmax/internal/parallel"
	"github.com/born-ml/softmax/internal/tensor"
)

// backwardDense applies the softmax Jacobian to rows of length channels:
//
//	diff_src_c = data_c * (diff_dst_c - Σ_c' diff_dst_c' * data_c')
//
// where data is the forward output.
func backwardDense[T tensor.Float](mapper parallel.Mapper, outer, channels int, data, diffDst, diffSrc []T) {
	mapper.For(outer, func(ou int) {
		off := ou * channels
		d := data[off : off+channels]
		dd := diffDst[off : off+channels]
		ds := diffSrc[off : off+channels]

		var sbr T
		for c := range d {
			sbr += dd[c] * d[c]
		}
		for c := range d {
			ds[c] = d[c] * (dd[c] - sbr)
		}
	})
}

// backwardGeneric is backwardDense addressed through layouts. data uses
// dataLayout; diffDst and diffSrc share diffLayout.
func backwardGeneric[T tensor.Float](mapper parallel.Mapper, dataLayout, diffLayout tensor.Layout, data, diffDst, diffSrc []T) {
	ext := diffLayout.Extents()
	channels, inner := ext.Channels, ext.Inner

	mapper.For(ext.Outer, func(ou int) {
		for in := 0; in < inner; in++ {
			var sbr T
			for c := 0; c < channels; c++ {
				sbr += diffDst[diffLayout.Offset(ou, c, in)] * data[dataLayout.Offset(ou, c, in)]
			}

			for c := 0; c < channels; c++ {
				offDiff := diffLayout.Offset(ou, c, in)
				diffSrc[offDiff] = data[dataLayout.Offset(ou, c, in)] * (diffDst[offDiff] - sbr)
			}
		}
	})
}
