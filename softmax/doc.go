// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package softmax provides numerically stable softmax forward and backward
// kernels for tensors in arbitrary memory layouts.
//
// # Overview
//
// A tensor is described relative to the softmax axis by three extents:
//   - Outer: product of the dimensions before the axis
//   - Channels: length of the axis
//   - Inner: product of the dimensions after the axis
//
// and by a Layout that maps a logical (outer, channel, inner) position to an
// index of the backing slice. Row-major tensors reduced over their last axis
// take a dense fast path; everything else (interior axes, strided views,
// channel-blocked layouts, custom offset functions) takes the generic path.
//
// # Basic Usage
//
//	probs, err := softmax.Softmax([]float32{1, 2, 3}, softmax.Shape{3}, -1)
//	// probs ≈ [0.0900 0.2447 0.6652]
//
// For repeated calls, build a descriptor once and reuse it:
//
//	ext, _ := softmax.Shape{32, 1000}.Extents(-1)
//	layout, _ := softmax.NewContiguous(ext)
//	fwd, _ := softmax.NewForward[float32](layout,
//	    softmax.WithBackend(softmax.BackendAuto),
//	    softmax.WithMapper(pool),
//	)
//	err := fwd.Execute(logits, probs, nil)
//
// # Thread Safety
//
// Descriptors are immutable after creation. Execute may be called
// concurrently as long as each call uses its own dst and scratch slices.
package softmax
