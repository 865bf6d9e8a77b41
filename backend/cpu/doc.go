// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go plain-loop math backend.
//
// # Overview
//
// The loop backend is the numerical reference: every other backend must agree
// with it within floating-point tolerance. It is also the default when no
// backend is configured.
//
// # Thread Safety
//
// The backend is stateless and safe for concurrent use.
package cpu
