// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp reads the legacy fixed/free-form QFF input format and builds a
// qff.Problem from it: a line-oriented scanner over the header/UNKNOWNS/
// FUNCTION/STATIONARY POINT sections.
package inp

import (
	"bufio"
	goio "io"
	"regexp"
	"strconv"
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/ntBre/anpass/poly"
	"github.com/ntBre/anpass/qerr"
	"github.com/ntBre/anpass/qff"
)

var headerRe = regexp.MustCompile(`(?i)^\s*\((\d+)f[0-9.]+,f[0-9.]+\)\s*$`)

const functionWrap = 16

// Parse reads an input file from r and builds a qff.Problem. Malformed
// headers, non-numeric tokens, or row-width mismatches against M are
// reported as *qerr.MalformedInputError; the core is never invoked on such
// inputs.
func Parse(r goio.Reader) (*qff.Problem, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var m int
	var haveHeader bool
	var d [][]float64
	var v []float64
	var n int
	var haveUnknowns bool
	var exponents []int // row-major, len M*N once FUNCTION is read
	var bias *qff.Bias

	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			continue
		}

		switch {
		case !haveHeader:
			sub := headerRe.FindStringSubmatch(text)
			if sub == nil {
				return nil, malformed(line, "expected a header of the form (Mf.,f.), got %q", text)
			}
			mm, err := strconv.Atoi(sub[1])
			if err != nil || mm < 1 {
				return nil, malformed(line, "invalid displacement count in header: %q", text)
			}
			m = mm
			haveHeader = true

		case strings.EqualFold(trimmed, "UNKNOWNS"):
			line++
			if !sc.Scan() {
				return nil, malformed(line, "UNKNOWNS section is missing its value")
			}
			nn, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
			if err != nil || nn < 1 {
				return nil, malformed(line, "invalid UNKNOWNS value: %q", sc.Text())
			}
			n = nn
			haveUnknowns = true

		case strings.EqualFold(trimmed, "FUNCTION"):
			if !haveUnknowns {
				return nil, malformed(line, "FUNCTION section appears before UNKNOWNS")
			}
			want := m * n
			exponents = make([]int, 0, want)
			for len(exponents) < want {
				line++
				if !sc.Scan() {
					return nil, malformed(line, "FUNCTION section ended early: have %d of %d entries", len(exponents), want)
				}
				fields := strings.Fields(sc.Text())
				if len(fields) == 0 {
					continue
				}
				if len(fields) > functionWrap {
					return nil, malformed(line, "FUNCTION line has %d entries, exceeds wrap width %d", len(fields), functionWrap)
				}
				for _, f := range fields {
					e, err := strconv.Atoi(f)
					if err != nil {
						return nil, malformed(line, "non-integer FUNCTION entry %q", f)
					}
					exponents = append(exponents, e)
				}
			}

		case strings.EqualFold(trimmed, "STATIONARY POINT"):
			x := make([]float64, m)
			for k := 0; k < m; k++ {
				line++
				if !sc.Scan() {
					return nil, malformed(line, "STATIONARY POINT section ended early")
				}
				f, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
				if err != nil {
					return nil, malformed(line, "non-numeric STATIONARY POINT displacement: %q", sc.Text())
				}
				x[k] = f
			}
			line++
			if !sc.Scan() {
				return nil, malformed(line, "STATIONARY POINT section is missing its energy value")
			}
			px, err := strconv.ParseFloat(strings.TrimSpace(sc.Text()), 64)
			if err != nil {
				return nil, malformed(line, "non-numeric STATIONARY POINT energy: %q", sc.Text())
			}
			bias = &qff.Bias{X: x, PX: px}

		default:
			fields := strings.Fields(text)
			row := make([]float64, 0, len(fields))
			for _, f := range fields {
				val, err := strconv.ParseFloat(f, 64)
				if err != nil {
					return nil, malformed(line, "non-numeric displacement/energy token %q", f)
				}
				row = append(row, val)
			}
			switch len(row) {
			case m + 1:
				d = append(d, row[:m])
				v = append(v, row[m])
			default:
				return nil, malformed(line, "displacement row has %d columns, want M+1=%d", len(row), m+1)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, &qerr.IOFailureError{Path: "<input>", Err: err}
	}
	if !haveHeader {
		return nil, malformed(line, "input has no header line")
	}
	if !haveUnknowns || exponents == nil {
		return nil, malformed(line, "input is missing UNKNOWNS/FUNCTION sections")
	}

	e := make(poly.Exponents, m)
	for j := 0; j < m; j++ {
		e[j] = make([]int, n)
		copy(e[j], exponents[j*n:(j+1)*n])
	}

	return &qff.Problem{
		M:              m,
		N:              n,
		D:              d,
		V:              v,
		E:              e,
		StationaryBias: bias,
	}, nil
}

func malformed(line int, format string, args ...interface{}) error {
	reason := io.Sf(format, args...)
	return &qerr.MalformedInputError{Reason: io.Sf("line %d: %s", line, reason)}
}
