// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package blas provides the gonum BLAS math backend.
package blas

import (
	internalblas "github.com/born-ml/softmax/internal/backend/blas"
	"github.com/born-ml/softmax/softmax"
)

// New returns the gonum-backed math backend for T.
func New[T softmax.Float]() softmax.Math[T] {
	return internalblas.New[T]()
}
