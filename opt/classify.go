// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package opt

import "math"

// jacobiMaxSweeps bounds the cyclic Jacobi eigenvalue sweep; M is always
// small (tens of variables at most) so this converges in a handful of
// sweeps well before the cap.
const jacobiMaxSweeps = 100

// classify computes the eigenvalues of the symmetric matrix H by the
// cyclic Jacobi rotation method and characterizes the stationary point by
// their signs.
func classify(H [][]float64) Class {
	eig := eigenvaluesSymmetric(H)
	if len(eig) == 0 {
		return Indefinite
	}
	allPos, allNeg, anyZero := true, true, false
	for _, e := range eig {
		if math.Abs(e) < zeroEigTol {
			anyZero = true
		}
		if e <= zeroEigTol {
			allPos = false
		}
		if e >= -zeroEigTol {
			allNeg = false
		}
	}
	switch {
	case anyZero:
		return Indefinite
	case allPos:
		return Minimum
	case allNeg:
		return Maximum
	default:
		return Saddle
	}
}

// eigenvaluesSymmetric returns the eigenvalues of the symmetric matrix A via
// the cyclic Jacobi rotation method: each sweep zeros every off-diagonal
// pair in turn, and sweeps repeat until the matrix is diagonal to
// tolerance; the eigenvalues are then read off the diagonal.
func eigenvaluesSymmetric(Hin [][]float64) []float64 {
	n := len(Hin)
	A := make([][]float64, n)
	for i := range A {
		A[i] = append([]float64(nil), Hin[i]...)
	}

	for sweep := 0; sweep < jacobiMaxSweeps; sweep++ {
		off := offDiagNorm(A)
		if off < 1e-14 {
			break
		}
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				if math.Abs(A[p][q]) < 1e-300 {
					continue
				}
				theta := (A[q][q] - A[p][p]) / (2 * A[p][q])
				t := sign(theta) / (math.Abs(theta) + math.Sqrt(theta*theta+1))
				c := 1 / math.Sqrt(t*t+1)
				s := t * c
				rotate(A, p, q, c, s)
			}
		}
	}

	eig := make([]float64, n)
	for i := range eig {
		eig[i] = A[i][i]
	}
	return eig
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// offDiagNorm sums the squares of the off-diagonal entries.
func offDiagNorm(A [][]float64) float64 {
	var sum float64
	for i := range A {
		for j := range A[i] {
			if i != j {
				sum += A[i][j] * A[i][j]
			}
		}
	}
	return sum
}

// rotate applies the Jacobi rotation that zeros A[p][q] (and A[q][p]) in
// place.
func rotate(A [][]float64, p, q int, c, s float64) {
	n := len(A)
	app, aqq, apq := A[p][p], A[q][q], A[p][q]
	A[p][p] = c*c*app - 2*s*c*apq + s*s*aqq
	A[q][q] = s*s*app + 2*s*c*apq + c*c*aqq
	A[p][q] = 0
	A[q][p] = 0
	for i := 0; i < n; i++ {
		if i == p || i == q {
			continue
		}
		aip, aiq := A[i][p], A[i][q]
		A[i][p] = c*aip - s*aiq
		A[p][i] = A[i][p]
		A[i][q] = s*aip + c*aiq
		A[q][i] = A[i][q]
	}
}
