// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fconst converts fitted polynomial coefficients into the
// downstream consumer's canonical force-constant records and writes the
// fixed-format fort.9903 file.
package fconst

import (
	"github.com/ntBre/anpass/poly"
)

// HartreeToAJ is the Hartree-to-aJ unit conversion factor applied to every
// emitted coefficient, per the downstream consumer's convention.
const HartreeToAJ = 4.359813653

// IndexWidth is the fixed number of index columns per record (the maximum
// Taylor order this emitter supports: quartic).
const IndexWidth = 4

// multiplicity is the term-order combinatorial factor m(0..4) = 1,1,2,6,24.
var multiplicity = [5]float64{1, 1, 2, 6, 24}

// Record is one force-constant line: Index holds the right-padded,
// descending-variable-index tuple and Value the scaled coefficient.
type Record struct {
	Index [IndexWidth]int
	Value float64
}

// Emit converts the fitted coefficients F (aligned with exponent table E)
// into one Record per monomial column, in column order.
func Emit(F []float64, E poly.Exponents, alpha float64) []Record {
	n := E.N()
	recs := make([]Record, n)
	for k := 0; k < n; k++ {
		recs[k] = Record{
			Index: decodeIndex(E, k),
			Value: alpha * F[k] * termMultiplicity(E, k),
		}
	}
	return recs
}

// decodeIndex decodes column k into the sorted-descending, zero-padded
// variable-index tuple: for each variable j, the 1-based index j+1 is
// repeated E[j][k] times, concatenated across j in descending variable
// order, then right-padded with zeros to IndexWidth.
func decodeIndex(E poly.Exponents, k int) [IndexWidth]int {
	var idx [IndexWidth]int
	pos := 0
	for j := E.M() - 1; j >= 0; j-- {
		for c := 0; c < E[j][k]; c++ {
			idx[pos] = j + 1
			pos++
		}
	}
	return idx
}

// termMultiplicity returns Π_j m(E[j][k]).
func termMultiplicity(E poly.Exponents, k int) float64 {
	m := 1.0
	for j := 0; j < E.M(); j++ {
		e := E[j][k]
		if e < 0 || e >= len(multiplicity) {
			e = len(multiplicity) - 1
		}
		m *= multiplicity[e]
	}
	return m
}
