// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lsq builds the monomial design matrix from sampled displacements
// and an exponent table, then solves the resulting normal-equations
// least-squares problem by Cholesky factorization.
package lsq

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/ntBre/anpass/poly"
	"github.com/ntBre/anpass/qerr"
)

// DesignMatrix wraps the P×N dense evaluation of the monomial basis at each
// sample row, keeping its own shape alongside the gosl/la container so
// downstream stages never have to reverse-engineer dimensions from the
// matrix itself.
type DesignMatrix struct {
	X    *la.Matrix
	P, N int
}

// Build constructs X from displacements D (P rows of length M) and exponent
// table E (M×N), with X[i][k] = Π_j D[i][j]^E[j][k] and the convention
// 0^0 = 1.
func Build(D [][]float64, E poly.Exponents) (*DesignMatrix, error) {
	m := E.M()
	n := E.N()
	p := len(D)
	for i, row := range D {
		if len(row) != m {
			return nil, &qerr.ShapeMismatchError{Reason: io.Sf("displacement row %d has length %d, want M=%d", i, len(row), m)}
		}
	}
	X := la.NewMatrix(p, n)
	for i := 0; i < p; i++ {
		for k := 0; k < n; k++ {
			v := 1.0
			for j := 0; j < m; j++ {
				v *= ipow(D[i][j], E[j][k])
			}
			X.Set(i, k, v)
		}
	}
	return &DesignMatrix{X: X, P: p, N: n}, nil
}

// ipow mirrors poly.ipow (unexported there): x^n for n >= 0, with 0^0 = 1.
func ipow(x float64, n int) float64 {
	if n == 0 {
		return 1
	}
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}
