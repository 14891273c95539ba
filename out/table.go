// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of stress fields to text files
package out

import (
	"bytes"
	"math"
	"os"
	"path/filepath"

	"github.com/cpmech/dislo/dislo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Keys holds the keys of the stress components, in the same order as the field
var Keys = []string{"sx", "sxy", "szx", "sy", "syz", "sz"}

// InvKeys holds the keys of the invariants: mean, von Mises and principal stresses
var InvKeys = []string{"sm", "svm", "s1", "s2", "s3"}

// NumFmt is the format of numbers in tables
var NumFmt = "%23.15e"

// Table formats a stress field as a table with one row per observation point
//  Output: buf -- header "x y z sx sxy szx sy syz sz [sm svm s1 s2 s3]" followed by values
func Table(coords, field []float64, withInv bool) (buf *bytes.Buffer, err error) {
	if len(coords)%3 != 0 {
		return nil, &dislo.BatchLengthError{Len: len(coords)}
	}
	npts := len(coords) / 3
	if len(field) != 6*npts {
		return nil, chk.Err("number of stress values (%d) is incorrect; %d points require %d values", len(field), npts, 6*npts)
	}

	// header
	buf = new(bytes.Buffer)
	keys := append([]string{"x", "y", "z"}, Keys...)
	if withInv {
		keys = append(keys, InvKeys...)
	}
	for _, key := range keys {
		io.Ff(buf, "%23s", key)
	}
	io.Ff(buf, "\n")

	// rows
	for i := 0; i < npts; i++ {
		for _, v := range coords[3*i : 3*i+3] {
			io.Ff(buf, NumFmt, v)
		}
		var σ dislo.Tensor
		copy(σ[:], field[6*i:6*i+6])
		for _, v := range σ {
			io.Ff(buf, NumFmt, v)
		}
		if withInv {
			σ1, σ2, σ3, e := σ.Principal()
			if e != nil {
				return nil, chk.Err("point # %d:\n%v", i, e)
			}
			for _, v := range []float64{σ.Mean(), σ.VonMises(), σ1, σ2, σ3} {
				io.Ff(buf, NumFmt, v)
			}
		}
		io.Ff(buf, "\n")
	}
	return
}

// Write saves buf to <dirout>/<fnkey>.res and returns the full filename
func Write(dirout, fnkey string, buf *bytes.Buffer) (fn string, err error) {
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return "", chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	fn = filepath.Join(dirout, fnkey+".res")
	if err = os.WriteFile(fn, buf.Bytes(), 0644); err != nil {
		return "", chk.Err("cannot write file %q:\n%v", fn, err)
	}
	return
}

// Summary holds extreme values of a stress field
type Summary struct {
	Npts     int     // number of points
	MaxAbs   float64 // max |σij| over all components and points
	MaxVm    float64 // max von Mises stress
	MaxVmIdx int     // index of point with max von Mises stress; -1 if there are no points
	MinMean  float64 // min mean stress
	MaxMean  float64 // max mean stress
}

// Summarise computes the summary of a stress field
func Summarise(field []float64) (o Summary) {
	o.Npts = len(field) / 6
	o.MaxVmIdx = -1
	for i := 0; i < o.Npts; i++ {
		var σ dislo.Tensor
		copy(σ[:], field[6*i:6*i+6])
		for _, v := range σ {
			o.MaxAbs = math.Max(o.MaxAbs, math.Abs(v))
		}
		vm, p := σ.VonMises(), σ.Mean()
		if o.MaxVmIdx < 0 || vm > o.MaxVm {
			o.MaxVm, o.MaxVmIdx = vm, i
		}
		if i == 0 || p < o.MinMean {
			o.MinMean = p
		}
		if i == 0 || p > o.MaxMean {
			o.MaxMean = p
		}
	}
	return
}

// String returns a table with the summary
func (o Summary) String() string {
	return io.ArgsTable("SUMMARY",
		"number of points", "npts", o.Npts,
		"max absolute stress component", "maxabs", o.MaxAbs,
		"max von Mises stress", "maxvm", o.MaxVm,
		"point with max von Mises stress", "maxvmidx", o.MaxVmIdx,
		"min mean stress", "minmean", o.MinMean,
		"max mean stress", "maxmean", o.MaxMean,
	)
}
