// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fconst

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/ntBre/anpass/qerr"
)

// WriteFile writes one line per record to path: four right-aligned %5d
// index fields followed by one %20.12f value field, no header or trailer —
// e.g. "    1    1    0    0      8.360863692412".
//
// Line formatting goes through gosl/io.Sf; the write itself uses stdlib
// os.WriteFile rather than gosl/io.WriteFileSD, which panics internally on
// failure instead of returning an error.
func WriteFile(path string, records []Record) error {
	buf := make([]byte, 0, len(records)*40)
	for _, r := range records {
		line := io.Sf("%5d%5d%5d%5d%20.12f\n", r.Index[0], r.Index[1], r.Index[2], r.Index[3], r.Value)
		buf = append(buf, line...)
	}
	if err := os.WriteFile(path, buf, 0644); err != nil {
		return &qerr.IOFailureError{Path: path, Err: err}
	}
	return nil
}
