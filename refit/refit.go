// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package refit re-references the sampled displacements and energies to a
// located (or externally supplied) stationary point and reruns the
// least-squares fit around it.
package refit

import (
	"github.com/ntBre/anpass/lsq"
	"github.com/ntBre/anpass/poly"
)

// Run biases D and V by xstar and pxstar (D'[i][j] = D[i][j] - xstar[j],
// V'[i] = V[i] - pxstar), then re-solves the least-squares problem on
// (D', V', E) to produce the re-fit coefficients F'.
func Run(D [][]float64, V []float64, E poly.Exponents, xstar []float64, pxstar float64) ([]float64, error) {
	Dp := make([][]float64, len(D))
	for i, row := range D {
		br := make([]float64, len(row))
		for j, v := range row {
			br[j] = v - xstar[j]
		}
		Dp[i] = br
	}
	Vp := make([]float64, len(V))
	for i, v := range V {
		Vp[i] = v - pxstar
	}

	dm, err := lsq.Build(Dp, E)
	if err != nil {
		return nil, err
	}
	return lsq.Solve(dm, Vp)
}
