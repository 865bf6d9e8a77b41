// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/softmax/backend/blas"
	"github.com/born-ml/softmax/backend/cpu"
	"github.com/born-ml/softmax/softmax"
)

func TestBackendsPlugIntoDescriptors(t *testing.T) {
	layout, err := softmax.NewContiguous(softmax.Extents{Outer: 2, Channels: 4, Inner: 1})
	require.NoError(t, err)
	x := []float32{0, 0, 0, 0, 1, 1, 1, 1}

	for _, m := range []softmax.Math[float32]{cpu.New[float32](), blas.New[float32]()} {
		fwd, err := softmax.NewForward[float32](layout, softmax.WithMath(m))
		require.NoError(t, err)
		assert.Equal(t, m.Name(), fwd.Math())

		dst := make([]float32, len(x))
		require.NoError(t, fwd.Execute(x, dst, nil))
		for _, v := range dst {
			assert.InDelta(t, 0.25, v, 1e-6)
		}
	}
}
