// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qff

import "github.com/ntBre/anpass/fconst"

// Params carries the run's tunables as an explicit parameter record, rather
// than global mutable state, so tests can set them deterministically.
type Params struct {
	Gamma float64   `json:"gamma"` // Newton step damping factor
	Eps   float64   `json:"eps"`   // Newton convergence tolerance
	KMax  int       `json:"kmax"`  // Newton maximum iterations
	X0    []float64 `json:"x0"`    // Newton initial iterate; nil means zero vector
	Alpha float64   `json:"alpha"` // Hartree-to-aJ conversion factor
}

// DefaultParams returns γ=0.5, ε=1.1e-8, Kmax=100, x0=0, α=4.359813653.
func DefaultParams() Params {
	return Params{
		Gamma: 0.5,
		Eps:   1.1e-8,
		KMax:  100,
		X0:    nil,
		Alpha: fconst.HartreeToAJ,
	}
}
