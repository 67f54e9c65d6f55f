// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/ntBre/anpass/inp"
	"github.com/ntBre/anpass/qerr"
	"github.com/ntBre/anpass/qff"
)

func main() {
	verbose := flag.Bool("v", false, "log each pipeline stage as it runs")
	out := flag.String("o", "fort.9903", "force-constant output path")
	flag.Parse()

	if flag.NArg() < 1 {
		io.Pfred("ERROR: please provide an input filename\n")
		os.Exit(2)
	}
	fnamepath := flag.Arg(0)

	if *verbose {
		io.PfWhite("anpass -- polynomial regression / stationary-point force-field fitter\n")
	}

	f, err := os.Open(fnamepath)
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	problem, err := inp.Parse(f)
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		os.Exit(1)
	}

	_, err = qff.RunAndWrite(problem, qff.DefaultParams(), *verbose, *out)
	if err != nil {
		io.Pfred("ERROR: %v\n", err)
		os.Exit(exitCode(err))
	}

	if *verbose {
		io.PfGreen("done -- wrote %s\n", *out)
	}
}

// exitCode maps a typed error kind to a non-zero process exit code. Newton
// non-convergence is not among these because qff.Run reports it through
// Result.NewtonErr, not as a returned error — that keeps the exit code 0
// even when Newton fails to converge.
func exitCode(err error) int {
	switch err.(type) {
	case *qerr.MalformedInputError:
		return 2
	case *qerr.ShapeMismatchError:
		return 3
	case *qerr.SingularNormalEquationsError:
		return 4
	case *qerr.IOFailureError:
		return 5
	default:
		chk.Verbose = true
		return 1
	}
}
