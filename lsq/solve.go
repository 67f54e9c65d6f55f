// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsq

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/ntBre/anpass/qerr"
)

// pdEps is the smallest diagonal pivot the Cholesky factorization accepts
// before declaring the normal matrix non-positive-definite.
const pdEps = 1e-13

// Solve returns the least-squares coefficients F minimizing ||X F - V||².
// It forms the normal matrix A = XᵀX and right-hand side b = XᵀV, then
// factors A = L Lᵀ via Cholesky and solves by forward/back substitution. A
// non-positive pivot (singular or near-singular design) is reported as
// *qerr.SingularNormalEquationsError and no coefficients are returned.
func Solve(dm *DesignMatrix, V []float64) ([]float64, error) {
	if len(V) != dm.P {
		return nil, &qerr.ShapeMismatchError{Reason: io.Sf("|V|=%d does not match P=%d", len(V), dm.P)}
	}
	if dm.P < dm.N {
		return nil, &qerr.ShapeMismatchError{Reason: io.Sf("P=%d data points, fewer than N=%d unknowns", dm.P, dm.N)}
	}

	n := dm.N
	A := normalMatrix(dm.X, dm.P, n)
	b := normalRhs(dm.X, V, dm.P, n)

	L, err := cholesky(A, n)
	if err != nil {
		return nil, err
	}

	y := forwardSubst(L, b, n)
	F := backSubst(L, y, n)
	return F, nil
}

// normalMatrix computes A = XᵀX.
func normalMatrix(X *la.Matrix, p, n int) *la.Matrix {
	A := la.NewMatrix(n, n)
	for k := 0; k < n; k++ {
		for l := k; l < n; l++ {
			var sum float64
			for i := 0; i < p; i++ {
				sum += X.Get(i, k) * X.Get(i, l)
			}
			A.Set(k, l, sum)
			A.Set(l, k, sum)
		}
	}
	return A
}

// normalRhs computes b = XᵀV.
func normalRhs(X *la.Matrix, V []float64, p, n int) []float64 {
	b := make([]float64, n)
	for k := 0; k < n; k++ {
		var sum float64
		for i := 0; i < p; i++ {
			sum += X.Get(i, k) * V[i]
		}
		b[k] = sum
	}
	return b
}

// cholesky factors the symmetric N×N matrix A as A = L Lᵀ, L lower
// triangular. Returns *qerr.SingularNormalEquationsError if a diagonal
// pivot is not numerically positive.
func cholesky(A *la.Matrix, n int) (*la.Matrix, error) {
	L := la.NewMatrix(n, n)
	for j := 0; j < n; j++ {
		sum := A.Get(j, j)
		for k := 0; k < j; k++ {
			sum -= L.Get(j, k) * L.Get(j, k)
		}
		if sum < pdEps || math.IsNaN(sum) {
			return nil, &qerr.SingularNormalEquationsError{Reason: io.Sf("non-positive pivot %g at column %d", sum, j)}
		}
		ljj := math.Sqrt(sum)
		L.Set(j, j, ljj)
		for i := j + 1; i < n; i++ {
			sum := A.Get(i, j)
			for k := 0; k < j; k++ {
				sum -= L.Get(i, k) * L.Get(j, k)
			}
			L.Set(i, j, sum/ljj)
		}
	}
	return L, nil
}

// forwardSubst solves L y = b for lower-triangular L.
func forwardSubst(L *la.Matrix, b []float64, n int) []float64 {
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := b[i]
		for k := 0; k < i; k++ {
			sum -= L.Get(i, k) * y[k]
		}
		y[i] = sum / L.Get(i, i)
	}
	return y
}

// backSubst solves Lᵀ F = y for lower-triangular L.
func backSubst(L *la.Matrix, y []float64, n int) []float64 {
	F := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for k := i + 1; k < n; k++ {
			sum -= L.Get(k, i) * F[k]
		}
		F[i] = sum / L.Get(i, i)
	}
	return F
}
