// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package qff

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/ntBre/anpass/opt"
	"github.com/ntBre/anpass/poly"
)

// TestScenarioL: Newton fails to converge on a pure linear fit, and the
// orchestrator still emits the pre-re-fit coefficients with exit-code-0
// semantics (no top-level error).
func TestScenarioL(tst *testing.T) {
	chk.PrintTitle("ScenarioL")
	E := poly.Exponents{{1, 0}}
	var D [][]float64
	for i := 0; i < 11; i++ {
		D = append(D, []float64{float64(i)})
	}
	V := []float64{2.3, 3.4, 7.6, 8.1, 9.4, 13.6, 14.5, 15.9, 18.6, 21.7, 21.8}
	p := &Problem{M: 1, N: 2, D: D, V: V, E: E}

	res, err := Run(p, DefaultParams(), false)
	if err != nil {
		tst.Fatalf("expected a degraded-but-successful run, got error: %v", err)
	}
	if res.NewtonErr == nil {
		tst.Fatal("expected NewtonErr to be set for a pure linear fit")
	}
	if res.F1 != nil {
		tst.Fatal("expected no re-fit coefficients when Newton degrades")
	}
	if len(res.Records) != 2 {
		tst.Fatalf("expected 2 emitted records, got %d", len(res.Records))
	}
	chk.Scalar(tst, "slope (pre-refit, /alpha)", 1e-3, res.Records[0].Value/DefaultParams().Alpha, 2.040)
	chk.Scalar(tst, "intercept (pre-refit, /alpha)", 1e-3, res.Records[1].Value/DefaultParams().Alpha, 2.246)
}

// TestScenarioC: a constant fit. F0 = mean(V), Newton "converges" trivially
// at the first iterate, classification is indefinite, and the single
// emitted record is alpha*mean(V).
func TestScenarioC(tst *testing.T) {
	chk.PrintTitle("ScenarioC")
	E := poly.Exponents{{0}}
	D := [][]float64{{1}, {2}, {3}, {4}}
	V := []float64{10, 12, 14, 16} // mean = 13
	p := &Problem{M: 1, N: 1, D: D, V: V, E: E}

	res, err := Run(p, DefaultParams(), false)
	if err != nil {
		tst.Fatal(err)
	}
	if res.NewtonErr != nil {
		tst.Fatalf("expected Newton to trivially converge, got: %v", res.NewtonErr)
	}
	if res.Class != opt.Indefinite {
		tst.Fatalf("expected Indefinite classification, got %v", res.Class)
	}
	if len(res.Records) != 1 {
		tst.Fatalf("expected 1 record, got %d", len(res.Records))
	}
	chk.Scalar(tst, "F0[0]", 1e-9, res.F0[0], 13.0)
	chk.Scalar(tst, "emitted value", 1e-6, res.Records[0].Value, DefaultParams().Alpha*13.0)
}

// TestScenarioS: a supplied stationary bias bypasses Newton entirely.
func TestScenarioS(tst *testing.T) {
	chk.PrintTitle("ScenarioS")
	// P(x) = (x-2)^2 = x^2 -4x +4
	E := poly.Exponents{{2, 1, 0}}
	var D [][]float64
	var V []float64
	Ftrue := []float64{1, -4, 4}
	for i := -5; i <= 5; i++ {
		x := float64(i)
		D = append(D, []float64{x})
		V = append(V, poly.Eval([]float64{x}, Ftrue, E))
	}
	p := &Problem{M: 1, N: 3, D: D, V: V, E: E, StationaryBias: &Bias{X: []float64{1.0}, PX: poly.Eval([]float64{1.0}, Ftrue, E)}}

	res, err := Run(p, DefaultParams(), false)
	if err != nil {
		tst.Fatal(err)
	}
	if res.NewtonErr != nil {
		tst.Fatalf("Newton should have been bypassed, got: %v", res.NewtonErr)
	}
	if res.Xstar[0] != 1.0 {
		tst.Fatalf("expected the supplied bias to be used verbatim, got x*=%v", res.Xstar)
	}
	// biased re-fit around x=1 (not the true vertex x=2): writing u=x-1,
	// P(u+1)-P(1) = u^2-2u, so the re-fit coefficients are [1,-2,0].
	chk.Vector(tst, "F1", 1e-8, res.F1, []float64{1, -2, 0})
}

// TestRefitIdentity: a zero stationary bias produces the same
// coefficients as the initial fit.
func TestRefitIdentity(tst *testing.T) {
	chk.PrintTitle("RefitIdentity")
	E := poly.Exponents{{2, 1, 0}}
	Ftrue := []float64{1, -4, 4}
	var D [][]float64
	var V []float64
	for i := -3; i <= 3; i++ {
		x := float64(i)
		D = append(D, []float64{x})
		V = append(V, poly.Eval([]float64{x}, Ftrue, E))
	}
	p := &Problem{M: 1, N: 3, D: D, V: V, E: E, StationaryBias: &Bias{X: []float64{0}, PX: 0}}

	res, err := Run(p, DefaultParams(), false)
	if err != nil {
		tst.Fatal(err)
	}
	chk.Vector(tst, "F1 == F0", 1e-8, res.F1, res.F0)
}

func TestValidateRejectsShapeMismatch(tst *testing.T) {
	chk.PrintTitle("ValidateRejectsShapeMismatch")
	p := &Problem{M: 2, N: 1, D: [][]float64{{1, 2}}, V: []float64{1, 2}, E: poly.Exponents{{1}, {0}}}
	if err := p.Validate(); err == nil {
		tst.Fatal("expected a shape-mismatch error for |V| != |D|")
	}
}
