// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package poly

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func TestEvalConstant(tst *testing.T) {
	chk.PrintTitle("EvalConstant")
	E := Exponents{{0}}
	F := []float64{5.0}
	for _, x := range [][]float64{{0}, {1}, {-3.7}} {
		chk.Scalar(tst, "P(x)", 1e-15, Eval(x, F, E), 5.0)
	}
}

func TestGradHessConstantIsZero(tst *testing.T) {
	chk.PrintTitle("GradHessConstantIsZero")
	E := Exponents{{0}}
	F := []float64{5.0}
	x := []float64{3.1}
	g := Grad(x, F, E)
	chk.Scalar(tst, "g[0]", 1e-15, g[0], 0.0)
	H := Hess(x, F, E)
	chk.Scalar(tst, "H[0][0]", 1e-15, H[0][0], 0.0)
}

func TestLinear(tst *testing.T) {
	chk.PrintTitle("Linear")
	// E = [[1, 0]] : term0 = x, term1 = 1 (constant)
	E := Exponents{{1, 0}}
	F := []float64{2.04, 2.25} // slope, intercept
	x := []float64{3.0}
	chk.Scalar(tst, "P(3)", 1e-15, Eval(x, F, E), 2.04*3.0+2.25)
	g := Grad(x, F, E)
	chk.Scalar(tst, "g[0]", 1e-15, g[0], 2.04)
	H := Hess(x, F, E)
	chk.Scalar(tst, "H[0][0]", 1e-15, H[0][0], 0.0)
}

func TestQuadraticSingleVar(tst *testing.T) {
	chk.PrintTitle("QuadraticSingleVar")
	// P(x) = 3 x^2
	E := Exponents{{2}}
	F := []float64{3.0}
	x := []float64{2.5}
	chk.Scalar(tst, "P(2.5)", 1e-15, Eval(x, F, E), 3.0*2.5*2.5)
	g := Grad(x, F, E)
	chk.Scalar(tst, "g[0]", 1e-12, g[0], 2*3.0*2.5)
	H := Hess(x, F, E)
	chk.Scalar(tst, "H[0][0]", 1e-12, H[0][0], 2*3.0)
}

func TestCrossTermSymmetry(tst *testing.T) {
	chk.PrintTitle("CrossTermSymmetry")
	// P(x,y) = 4 x^2 y^3
	E := Exponents{
		{2}, // exponents of x
		{3}, // exponents of y
	}
	F := []float64{4.0}
	x := []float64{1.3, -0.7}
	H := Hess(x, F, E)
	if H[0][1] != H[1][0] {
		tst.Fatalf("H is not exactly symmetric: H[0][1]=%v H[1][0]=%v", H[0][1], H[1][0])
	}
	// analytic: d²P/dxdy = 4 * 2x * 3y^2 = 24 x y^2
	want := 24.0 * x[0] * x[1] * x[1]
	chk.Scalar(tst, "H[0][1]", 1e-10, H[0][1], want)
	// d²P/dx² = 4*2*1*y^3 = 8 y^3
	chk.Scalar(tst, "H[0][0]", 1e-10, H[0][0], 8.0*x[1]*x[1]*x[1])
	// d²P/dy² = 4*3*2*x^2*y = 24 x^2 y
	chk.Scalar(tst, "H[1][1]", 1e-10, H[1][1], 24.0*x[0]*x[0]*x[1])
}

func TestZeroDisplacementDoesNotBlowUp(tst *testing.T) {
	chk.PrintTitle("ZeroDisplacementDoesNotBlowUp")
	// P(x) = 5 x (linear term), evaluated/differentiated at x=0: the Hessian
	// would otherwise need x^(1-2) = x^-1 which is undefined at x=0; the
	// exponent<2 skip must prevent that term from ever being computed.
	E := Exponents{{1}}
	F := []float64{5.0}
	x := []float64{0.0}
	g := Grad(x, F, E)
	chk.Scalar(tst, "g[0]", 1e-15, g[0], 5.0)
	H := Hess(x, F, E)
	chk.Scalar(tst, "H[0][0]", 1e-15, H[0][0], 0.0)
}
