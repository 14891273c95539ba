// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"os"

	"github.com/cpmech/dislo/dislo"
	"github.com/cpmech/dislo/inp"
	"github.com/cpmech/dislo/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			os.Exit(1)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/demo", ".dis", true)
	verbose := io.ArgToBool(1, true)
	nworkers := io.ArgToInt(2, -1)

	// input data
	in, err := inp.ReadInput(fnamepath)
	if err != nil {
		chk.Panic("cannot read input:\n%v", err)
	}
	if nworkers >= 0 {
		in.Nworkers = nworkers
	}

	// message
	if verbose {
		io.PfWhite("\nDislo -- stresses due to dislocations in elastic media\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"description", "desc", in.Desc,
			"number of sources", "nsrc", len(in.Srcs),
			"number of points", "npts", in.Npoints(),
			"number of goroutines (0=ncpu)", "nworkers", in.Nworkers,
			"output invariants", "withinv", in.WithInv,
		))
		for i, src := range in.Srcs {
			io.Pforan("source %d: %s\n", i, dislo.Kind(src))
		}
	}

	// run
	field, err := dislo.Superpose(context.Background(), in.Srcs, in.Coords, in.Nworkers)
	if err != nil {
		chk.Panic("evaluation failed:\n%v", err)
	}

	// results
	buf, err := out.Table(in.Coords, field, in.WithInv)
	if err != nil {
		chk.Panic("cannot format results:\n%v", err)
	}
	fn, err := out.Write(in.DirOut, in.Key, buf)
	if err != nil {
		chk.Panic("cannot save results:\n%v", err)
	}
	if verbose {
		io.Pf("\n%v\n", out.Summarise(field))
		io.Pfgreen("file <%s> written\n", fn)
	}
}
