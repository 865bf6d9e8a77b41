// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/softmax/internal/backend/cpu"
	"github.com/born-ml/softmax/softmax"
)

// Loop is the plain-loop math backend.
type Loop[T softmax.Float] = internalcpu.Loop[T]

// Compile-time check that Loop implements softmax.Math.
var _ softmax.Math[float32] = Loop[float32]{}

// New returns the plain-loop math backend for T.
//
// Example:
//
//	import (
//	    "github.com/born-ml/softmax/backend/cpu"
//	    "github.com/born-ml/softmax/softmax"
//	)
//
//	func main() {
//	    fwd, _ := softmax.NewForward[float32](layout, softmax.WithMath(cpu.New[float32]()))
//	}
func New[T softmax.Float]() softmax.Math[T] {
	return Loop[T]{}
}
