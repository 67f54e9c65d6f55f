// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package qerr defines the error kinds shared across the fitting pipeline
// (parser, least-squares solver, Newton optimizer, orchestrator). Every
// stage returns one of these as a value instead of panicking; the
// orchestrator decides between hard abort and degraded emission based on
// the kind.
package qerr

import "github.com/cpmech/gosl/chk"

// MalformedInputError reports a parser-side failure; the core is never
// invoked.
type MalformedInputError struct {
	Reason string
}

func (e *MalformedInputError) Error() string {
	return chk.Err("malformed input: %s", e.Reason).Error()
}

// ShapeMismatchError reports a dimensional-invariant violation: |V| != |D|,
// cols(E) != N, a displacement row whose length != M, or P < N.
type ShapeMismatchError struct {
	Reason string
}

func (e *ShapeMismatchError) Error() string {
	return chk.Err("shape mismatch: %s", e.Reason).Error()
}

// SingularNormalEquationsError reports that XᵀX is not numerically positive
// definite (rank-deficient design matrix). Fatal for the fit; no output is
// written.
type SingularNormalEquationsError struct {
	Reason string
}

func (e *SingularNormalEquationsError) Error() string {
	return chk.Err("fit did not converge / system singular: %s", e.Reason).Error()
}

// NewtonDivergedError reports that the Newton optimizer exceeded its
// iteration cap without satisfying the convergence tolerance. Non-fatal:
// the orchestrator emits the pre-re-fit coefficients instead.
type NewtonDivergedError struct {
	Iterations int
	LastStep   float64
}

func (e *NewtonDivergedError) Error() string {
	return chk.Err("Newton optimizer did not converge after %d iterations (last step=%g)", e.Iterations, e.LastStep).Error()
}

// SingularHessianError reports an exactly singular Hessian at some Newton
// iterate. Treated like NewtonDivergedError at the orchestrator level.
type SingularHessianError struct {
	Iteration int
}

func (e *SingularHessianError) Error() string {
	return chk.Err("Hessian is singular at Newton iteration %d", e.Iteration).Error()
}

// IOFailureError reports a failure reading the input or writing the
// force-constant table.
type IOFailureError struct {
	Path string
	Err  error
}

func (e *IOFailureError) Error() string {
	return chk.Err("I/O failure on %q: %v", e.Path, e.Err).Error()
}

func (e *IOFailureError) Unwrap() error { return e.Err }
