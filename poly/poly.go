// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly evaluates a multivariate polynomial, and its gradient and
// Hessian, given a sparse exponent table and a coefficient vector. It is the
// algebraic core that the least-squares fit (package lsq) and the Newton
// stationary-point search (package opt) both build on.
package poly

// Exponents is the M×N non-negative integer exponent table. Column k gives
// the exponents of the k-th monomial over the M variables: term k is
// Π_j x_j^E[j][k].
type Exponents [][]int

// M returns the number of independent variables.
func (e Exponents) M() int {
	return len(e)
}

// N returns the number of monomial terms (== number of coefficients).
func (e Exponents) N() int {
	if len(e) == 0 {
		return 0
	}
	return len(e[0])
}

// ipow raises x to the non-negative integer power n, with the convention
// 0^0 = 1. Callers never pass a negative n: every differentiated term whose
// exponent would go negative is skipped before ipow is reached.
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

// monomialSkip returns Π_j x[j]^col[j] over all j except those in skip.
func monomialSkip(x []float64, col []int, skip ...int) float64 {
	p := 1.0
outer:
	for j, e := range col {
		for _, s := range skip {
			if j == s {
				continue outer
			}
		}
		p *= ipow(x[j], e)
	}
	return p
}

// Eval computes P(x) = Σ_k F_k Π_j x_j^E[j][k].
func Eval(x, F []float64, E Exponents) float64 {
	var sum float64
	n := E.N()
	for k := 0; k < n; k++ {
		term := F[k]
		for j, row := range E {
			term *= ipow(x[j], row[k])
		}
		sum += term
	}
	return sum
}

// Grad computes ∇P(x), a length-M vector. Element i accumulates, over every
// monomial k with E[i][k] > 0 (terms with a zero exponent in variable i
// differentiate to zero and are skipped):
//
//	E[i][k]·F_k·x_i^(E[i][k]-1)·Π_{j≠i} x_j^E[j][k]
func Grad(x, F []float64, E Exponents) []float64 {
	m, n := E.M(), E.N()
	g := make([]float64, m)
	for i := 0; i < m; i++ {
		var sum float64
		for k := 0; k < n; k++ {
			ei := E[i][k]
			if ei == 0 {
				continue
			}
			sum += float64(ei) * F[k] * ipow(x[i], ei-1) * monomialSkip(x, column(E, k), i)
		}
		g[i] = sum
	}
	return g
}

// Hess computes ∇²P(x), a symmetric M×M matrix. The lower triangle is copied
// from the upper triangle by construction (not by floating-point
// cancellation), so H[i][l] and H[l][i] are always bit-identical.
//
//	H[i][i]  = Σ_k (E[i][k]-1)·E[i][k]·F_k·x_i^(E[i][k]-2)·Π_{j≠i} x_j^E[j][k]   (terms with E[i][k]<2 vanish)
//	H[i][l]  = Σ_k E[i][k]·E[l][k]·F_k·x_i^(E[i][k]-1)·x_l^(E[l][k]-1)·Π_{j≠i,l} x_j^E[j][k]  (i≠l, terms with E[i][k]=0 or E[l][k]=0 vanish)
func Hess(x, F []float64, E Exponents) [][]float64 {
	m, n := E.M(), E.N()
	H := make([][]float64, m)
	for i := range H {
		H[i] = make([]float64, m)
	}
	for i := 0; i < m; i++ {
		var diag float64
		for k := 0; k < n; k++ {
			ei := E[i][k]
			if ei < 2 {
				continue
			}
			diag += float64(ei-1) * float64(ei) * F[k] * ipow(x[i], ei-2) * monomialSkip(x, column(E, k), i)
		}
		H[i][i] = diag
		for l := i + 1; l < m; l++ {
			var off float64
			for k := 0; k < n; k++ {
				ei, el := E[i][k], E[l][k]
				if ei == 0 || el == 0 {
					continue
				}
				off += float64(ei) * float64(el) * F[k] * ipow(x[i], ei-1) * ipow(x[l], el-1) * monomialSkip(x, column(E, k), i, l)
			}
			H[i][l] = off
			H[l][i] = off
		}
	}
	return H
}

// column extracts column k of E as a length-M slice.
func column(E Exponents, k int) []int {
	col := make([]int, E.M())
	for j, row := range E {
		col[j] = row[k]
	}
	return col
}
