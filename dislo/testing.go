// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dislo

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// CheckBatch checks that the batch evaluation has 6 values per point and that it
// equals the concatenation of point-by-point evaluations
func CheckBatch(tst *testing.T, src Source, coords []float64, tol float64, verbose bool) {
	field, err := src.Run(coords)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(field)", len(field), 6*(len(coords)/3))
	var cat []float64
	for i := 0; i < len(coords); i += 3 {
		f, err := src.Run(coords[i : i+3])
		if err != nil {
			tst.Errorf("Run failed:\n%v", err)
			return
		}
		chk.Int(tst, "len(f)", len(f), 6)
		cat = append(cat, f...)
	}
	if verbose {
		io.Pforan("field = %v\n", field)
	}
	chk.Array(tst, "batch == concatenated", tol, field, cat)
}

// CheckLinearity checks that scaling the Burgers vector by k scales all stresses by k
//  mk -- allocates a source with the given Burgers vector
func CheckLinearity(tst *testing.T, mk func(b Vec3) Source, b Vec3, k float64, coords []float64, tol float64, verbose bool) {
	f1, err := mk(b).Run(coords)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	fk, err := mk(b.Scale(k)).Run(coords)
	if err != nil {
		tst.Errorf("Run failed:\n%v", err)
		return
	}
	scaled := make([]float64, len(f1))
	for i, v := range f1 {
		scaled[i] = k * v
	}
	if verbose {
		io.Pforan("k・f(b) = %v\n", scaled)
		io.Pforan("f(k・b) = %v\n", fk)
	}
	chk.Array(tst, io.Sf("f(%g・b)", k), tol, fk, scaled)
}

// CheckFinite checks that all values are finite
func CheckFinite(tst *testing.T, msg string, vals []float64) {
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Errorf("%s: value %d is not finite: %v", msg, i, v)
			return
		}
	}
}
