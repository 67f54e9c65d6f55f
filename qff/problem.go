// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qff orchestrates the fitting pipeline: build the design matrix
// and solve for the initial coefficients, locate (or accept) a stationary
// point, re-fit around it, and emit the force-constant table.
package qff

import (
	"github.com/cpmech/gosl/io"
	"github.com/ntBre/anpass/poly"
	"github.com/ntBre/anpass/qerr"
)

// Bias is an externally supplied stationary point (x*, P(x*)); when set on
// a Problem it bypasses the Newton search entirely.
type Bias struct {
	X  []float64 // length M
	PX float64
}

// Problem is the in-memory problem description handed to the orchestrator:
// M independent variables, N unknown coefficients, P sample rows of
// displacements D aligned with energies V, and the M×N exponent table E.
type Problem struct {
	M              int
	N              int
	D              [][]float64
	V              []float64
	E              poly.Exponents
	StationaryBias *Bias
}

// Validate checks every invariant that can be checked from shape alone.
// Duplicate exponent-table columns are not checked here — they manifest
// downstream as a singular normal matrix, which lsq.Solve already reports
// as *qerr.SingularNormalEquationsError.
func (p *Problem) Validate() error {
	if p.M < 1 {
		return &qerr.ShapeMismatchError{Reason: io.Sf("M=%d, want M>=1", p.M)}
	}
	if p.N < 1 {
		return &qerr.ShapeMismatchError{Reason: io.Sf("N=%d, want N>=1", p.N)}
	}
	if p.E.M() != p.M {
		return &qerr.ShapeMismatchError{Reason: io.Sf("exponent table has %d rows, want M=%d", p.E.M(), p.M)}
	}
	if p.E.N() != p.N {
		return &qerr.ShapeMismatchError{Reason: io.Sf("exponent table has %d columns, want N=%d", p.E.N(), p.N)}
	}
	if len(p.V) != len(p.D) {
		return &qerr.ShapeMismatchError{Reason: io.Sf("|V|=%d does not match |D|=%d", len(p.V), len(p.D))}
	}
	if len(p.D) < p.N {
		return &qerr.ShapeMismatchError{Reason: io.Sf("P=%d data points, fewer than N=%d unknowns", len(p.D), p.N)}
	}
	for i, row := range p.D {
		if len(row) != p.M {
			return &qerr.ShapeMismatchError{Reason: io.Sf("displacement row %d has length %d, want M=%d", i, len(row), p.M)}
		}
	}
	if p.StationaryBias != nil && len(p.StationaryBias.X) != p.M {
		return &qerr.ShapeMismatchError{Reason: io.Sf("stationary_bias has %d displacement components, want M=%d", len(p.StationaryBias.X), p.M)}
	}
	return nil
}
