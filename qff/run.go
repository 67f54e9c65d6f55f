// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qff

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/ntBre/anpass/fconst"
	"github.com/ntBre/anpass/lsq"
	"github.com/ntBre/anpass/opt"
	"github.com/ntBre/anpass/poly"
	"github.com/ntBre/anpass/refit"
)

// Result holds every artifact produced by a run; nothing persists beyond
// the caller's own reference to it.
type Result struct {
	F0         []float64   // initial-fit coefficients
	Xstar      []float64   // stationary point (the supplied bias when StationaryBias is set; nil when Newton did not converge)
	PXstar     float64     // P(x*) or the supplied energy bias
	Class      opt.Class   // classification (zero value Indefinite if bypassed)
	NewtonErr  error       // non-nil => Newton did not converge or H was singular; F0 is what got emitted
	F1         []float64   // re-fit coefficients (nil when NewtonErr != nil)
	Records    []fconst.Record // force-constant table from F1 (or F0 on degradation)
}

// Run executes the full pipeline:
//  1. build X, solve for F0.
//  2. if Problem.StationaryBias is set, use it directly and skip Newton.
//  3. otherwise run the Newton optimizer on (F0, E); on non-convergence or
//     a singular Hessian, log the degradation and emit F0 unchanged. A
//     located point with an identically zero Hessian (no curvature
//     anywhere to re-reference to) degrades the same way.
//  4. re-fit around the bias (located or supplied) to get F1.
//  5. emit the force-constant records from F1.
func Run(p *Problem, params Params, verbose bool) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	if verbose {
		io.Pf("> fit: M=%d N=%d P=%d\n", p.M, p.N, len(p.D))
	}
	dm, err := lsq.Build(p.D, p.E)
	if err != nil {
		return nil, err
	}
	F0, err := lsq.Solve(dm, p.V)
	if err != nil {
		return nil, err
	}
	if verbose {
		io.Pf("> fit: initial coefficients obtained\n")
	}

	var xstar []float64
	var pxstar float64
	var class opt.Class

	if p.StationaryBias != nil {
		xstar = p.StationaryBias.X
		pxstar = p.StationaryBias.PX
		if verbose {
			io.Pf("> stationary point supplied externally; Newton search skipped\n")
		}
	} else {
		optParams := opt.Params{
			Gamma: params.Gamma,
			Eps:   params.Eps,
			KMax:  params.KMax,
			X0:    initialIterate(params.X0, p.M),
		}
		res, nerr := opt.Solve(F0, p.E, optParams)
		if nerr != nil {
			if verbose {
				io.PfYel("> Newton optimizer did not converge: %v\n", nerr)
				io.PfYel("> emitting pre-re-fit coefficients (legacy degradation path)\n")
			}
			return &Result{
				F0:        F0,
				NewtonErr: nerr,
				Records:   fconst.Emit(F0, p.E, params.Alpha),
			}, nil
		}
		if hessIsZero(res.H) {
			// The fitted surface has no curvature anywhere (e.g. a pure
			// constant model): every point is equally "stationary", so
			// re-referencing to one is meaningless and would only zero out
			// the constant term. Emit F0 unchanged, same as a Newton
			// failure, but report the located point/classification since
			// Newton did not actually fail.
			if verbose {
				io.Pf("> stationary surface has zero curvature; skipping re-fit\n")
			}
			return &Result{
				F0:      F0,
				Xstar:   res.X,
				PXstar:  poly.Eval(res.X, F0, p.E),
				Class:   res.Class,
				Records: fconst.Emit(F0, p.E, params.Alpha),
			}, nil
		}
		xstar = res.X
		pxstar = poly.Eval(xstar, F0, p.E)
		class = res.Class
		if verbose {
			io.Pf("> stationary point located, classified as %s\n", class)
		}
	}

	F1, err := refit.Run(p.D, p.V, p.E, xstar, pxstar)
	if err != nil {
		return nil, err
	}
	if verbose {
		io.Pf("> re-fit complete\n")
	}

	return &Result{
		F0:      F0,
		Xstar:   xstar,
		PXstar:  pxstar,
		Class:   class,
		F1:      F1,
		Records: fconst.Emit(F1, p.E, params.Alpha),
	}, nil
}

// RunAndWrite runs the pipeline and writes the resulting force-constant
// table to path (fort.9903 in the reference layout).
func RunAndWrite(p *Problem, params Params, verbose bool, path string) (*Result, error) {
	res, err := Run(p, params, verbose)
	if err != nil {
		return nil, err
	}
	if err := fconst.WriteFile(path, res.Records); err != nil {
		return res, err
	}
	return res, nil
}

// hessIsZero reports whether every entry of H is exactly zero.
func hessIsZero(H [][]float64) bool {
	for _, row := range H {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}

// initialIterate returns x0 as a la.Vector, defaulting to the zero vector
// of length m when x0 is nil.
func initialIterate(x0 []float64, m int) la.Vector {
	if x0 == nil {
		return la.NewVector(m)
	}
	v := la.NewVector(m)
	copy(v, x0)
	return v
}
