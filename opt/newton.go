// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opt locates a stationary point of the fitted polynomial by damped
// Newton iteration and classifies it by the signs of the Hessian
// eigenvalues at convergence.
package opt

import (
	"errors"
	"math"

	"github.com/cpmech/gosl/la"
	"github.com/ntBre/anpass/poly"
	"github.com/ntBre/anpass/qerr"
)

var errSingular = errors.New("singular matrix")

// gradIsZero reports whether every component of g is exactly zero.
func gradIsZero(g []float64) bool {
	for _, v := range g {
		if v != 0 {
			return false
		}
	}
	return true
}

// Params tunes the Newton iteration.
type Params struct {
	Gamma float64   // step damping factor
	Eps   float64   // convergence tolerance on max_i |γ·δ_i|
	KMax  int       // maximum iterations
	X0    la.Vector // initial iterate (length M); nil means a zero vector
}

// DefaultParams returns γ=0.5, ε=1.1e-8, Kmax=100, x0=0.
func DefaultParams(m int) Params {
	return Params{
		Gamma: 0.5,
		Eps:   1.1e-8,
		KMax:  100,
		X0:    la.NewVector(m),
	}
}

// Class characterizes a converged stationary point by Hessian eigenvalue
// signs.
type Class int

const (
	Indefinite Class = iota // a zero eigenvalue within tolerance, or H == 0
	Minimum                 // all eigenvalues > 0
	Maximum                 // all eigenvalues < 0
	Saddle                  // mixed signs
)

func (c Class) String() string {
	switch c {
	case Minimum:
		return "minimum"
	case Maximum:
		return "maximum"
	case Saddle:
		return "saddle"
	default:
		return "indefinite"
	}
}

// Result holds the located stationary point, the Hessian there, and its
// classification.
type Result struct {
	X     []float64
	H     [][]float64
	Class Class
}

// zeroEigTol is the tolerance below which an eigenvalue is treated as zero
// when classifying the stationary point.
const zeroEigTol = 1e-8

// Solve iterates x ← x − γ·H⁻¹g starting from p.X0 until
// max_i|γ·δ_i| < p.Eps, or returns *qerr.NewtonDivergedError after p.KMax
// iterations, or *qerr.SingularHessianError if H is exactly singular at
// some iterate.
func Solve(F []float64, E poly.Exponents, p Params) (*Result, error) {
	m := E.M()
	x := make([]float64, m)
	copy(x, p.X0)

	var lastStep float64
	for it := 0; it < p.KMax; it++ {
		g := poly.Grad(x, F, E)
		H := poly.Hess(x, F, E)

		// A gradient that already vanishes identically (e.g. a constant
		// fit, H ≡ 0) is already a stationary point: do not attempt to
		// solve H δ = 0 against a matrix that may itself be singular.
		if gradIsZero(g) {
			return &Result{X: x, H: H, Class: classify(H)}, nil
		}

		delta, err := symmetricSolve(H, g)
		if err != nil {
			return nil, &qerr.SingularHessianError{Iteration: it}
		}

		lastStep = 0
		for i := range x {
			step := p.Gamma * delta[i]
			x[i] -= step
			if a := math.Abs(step); a > lastStep {
				lastStep = a
			}
		}

		if lastStep < p.Eps {
			H = poly.Hess(x, F, E)
			return &Result{X: x, H: H, Class: classify(H)}, nil
		}
	}
	return nil, &qerr.NewtonDivergedError{Iterations: p.KMax, LastStep: lastStep}
}

// symmetricSolve solves H δ = g by Gaussian elimination with partial
// pivoting. H need not be positive definite (it generally is not at a
// saddle or maximum) — only exact singularity is fatal.
func symmetricSolve(H [][]float64, g []float64) ([]float64, error) {
	n := len(g)
	A := make([][]float64, n)
	for i := range A {
		A[i] = make([]float64, n+1)
		copy(A[i], H[i])
		A[i][n] = g[i]
	}

	for col := 0; col < n; col++ {
		piv := col
		best := math.Abs(A[col][col])
		for r := col + 1; r < n; r++ {
			if v := math.Abs(A[r][col]); v > best {
				best, piv = v, r
			}
		}
		if best < 1e-300 {
			return nil, errSingular
		}
		A[col], A[piv] = A[piv], A[col]

		for r := col + 1; r < n; r++ {
			factor := A[r][col] / A[col][col]
			for c := col; c <= n; c++ {
				A[r][c] -= factor * A[col][c]
			}
		}
	}

	delta := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := A[i][n]
		for j := i + 1; j < n; j++ {
			sum -= A[i][j] * delta[j]
		}
		delta[i] = sum / A[i][i]
	}
	return delta, nil
}
