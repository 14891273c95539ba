// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"context"
	"errors"
	"testing"

	"github.com/cpmech/dislo/dislo"
	"github.com/cpmech/dislo/quad"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_input01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input01. demo file")

	in, err := ReadInput("data/demo.dis")
	if err != nil {
		tst.Errorf("ReadInput failed:\n%v", err)
		return
	}
	io.Pforan("desc = %v\n", in.Desc)
	chk.Int(tst, "nworkers", in.Nworkers, 2)
	chk.Int(tst, "len(Srcs)", len(in.Srcs), 2)
	chk.Int(tst, "npoints", in.Npoints(), 3+25)
	if in.Key != "demo" {
		tst.Errorf("key should be \"demo\". got %q", in.Key)
	}
	if !in.WithInv {
		tst.Errorf("withinv should be true")
	}

	// point source with unit material
	pt, ok := in.Srcs[0].(*dislo.Point)
	if !ok {
		tst.Errorf("first source should be a point source")
		return
	}
	chk.Float64(tst, "point: μ", 1e-17, pt.Mu, 1)
	chk.Float64(tst, "point: ν", 1e-17, pt.Nu, 0.25)
	chk.Array(tst, "point: B", 1e-17, pt.B[:], []float64{1, 0, 0})

	// triangle
	tri, ok := in.Srcs[1].(*dislo.Triangle)
	if !ok {
		tst.Errorf("second source should be a triangle source")
		return
	}
	chk.Int(tst, "triangle: ngauss", tri.Ngauss, 6)
	chk.Float64(tst, "triangle: μ", 1e-17, tri.Mu, 1e9)
	chk.Array(tst, "triangle: v2", 1e-17, tri.V[1][:], []float64{1, 0, 0})

	// coordinates: points first, then grid with x varying fastest
	chk.Array(tst, "points", 1e-17, in.Coords[:9], []float64{0, 1, 2, 3, 10, 20, 7, 6, 3})
	chk.Array(tst, "grid: first", 1e-17, in.Coords[9:12], []float64{-2, -2, 0.5})
	chk.Array(tst, "grid: second", 1e-17, in.Coords[12:15], []float64{-1, -2, 0.5})
	chk.Array(tst, "grid: last", 1e-17, in.Coords[len(in.Coords)-3:], []float64{2, 2, 0.5})

	// superposed field
	field, err := dislo.Superpose(context.Background(), in.Srcs, in.Coords, in.Nworkers)
	if err != nil {
		tst.Errorf("Superpose failed:\n%v", err)
		return
	}
	chk.Int(tst, "len(field)", len(field), 6*in.Npoints())
	dislo.CheckFinite(tst, "field", field)
}

func Test_input02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input02. reference materials and 3D grid")

	in, err := ReadInput("data/granite.dis")
	if err != nil {
		tst.Errorf("ReadInput failed:\n%v", err)
		return
	}
	if in.Key != "granite-patch" {
		tst.Errorf("key should be \"granite-patch\". got %q", in.Key)
	}
	if in.DirOut != "/tmp/dislo" {
		tst.Errorf("default dirout is incorrect: %q", in.DirOut)
	}
	chk.Int(tst, "npoints", in.Npoints(), 4*2*3)

	tri := in.Srcs[0].(*dislo.Triangle)
	chk.Float64(tst, "granite: μ", 1e-10, tri.Mu, 20000)
	chk.Float64(tst, "granite: ν", 1e-17, tri.Nu, 0.25)
	chk.Int(tst, "granite: ngauss", tri.Ngauss, dislo.DefaultNgauss)

	// ν overridden; μ recomputed from E of reference material
	pt := in.Srcs[1].(*dislo.Point)
	chk.Float64(tst, "soft: μ", 1e-10, pt.Mu, 50000/2.6)
	chk.Float64(tst, "soft: ν", 1e-17, pt.Nu, 0.3)
	chk.Array(tst, "soft: X", 1e-17, pt.X[:], []float64{0, 0, -2})

	g := GridData{Xmin: -3, Xmax: 3, Nx: 4, Ymin: 0, Ymax: 1, Ny: 2, Zmin: 1, Zmax: 2, Nz: 3}
	c := g.Coords()
	chk.Array(tst, "grid: x", 1e-15, []float64{c[0], c[3], c[6], c[9]}, []float64{-3, -1, 1, 3})
	chk.Array(tst, "grid: 5th point", 1e-15, c[12:15], []float64{-3, 1, 1})
	chk.Array(tst, "grid: last point", 1e-15, c[len(c)-3:], []float64{3, 1, 2})
}

func Test_input03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input03. invalid input")

	for _, fn := range []string{"data/bad-ngauss.dis", "data/bad-ngauss-negative.dis", "data/bad-points.dis", "data/not-found.dis"} {
		_, err := ReadInput(fn)
		if err == nil {
			tst.Errorf("ReadInput should fail with %q", fn)
			return
		}
		io.Pforan("%v\n\n", err)
	}

	m := []*MatData{{Name: "m", Prms: dbf.Params{&dbf.P{N: "mu", V: 1}}}}
	b := []float64{1, 0, 0}

	// errors of specific kinds
	in := Input{Materials: m, Sources: []*SrcData{{Kind: "point", Mat: "m", Pos: []float64{0, 0, 0}, Burgers: b}}}
	in.Points = []float64{1, 2}
	var be *dislo.BatchLengthError
	if err := in.PostProcess(); !errors.As(err, &be) {
		tst.Errorf("PostProcess should fail with BatchLengthError. got %v", err)
	}
	var oe *quad.OrderError
	_, err := SrcData{Kind: "triangle", Mat: "m", Verts: [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Burgers: b, Ngauss: 9}.alloc(map[string]dbf.Params{"m": nil})
	if !errors.As(err, &oe) {
		tst.Errorf("alloc should fail with OrderError. got %v", err)
	}
	_, err = SrcData{Kind: "triangle", Mat: "m", Verts: [][]float64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, Burgers: b, Ngauss: -3}.alloc(map[string]dbf.Params{"m": nil})
	if !errors.As(err, &oe) {
		tst.Errorf("alloc should fail with OrderError for ngauss = -3. got %v", err)
	} else {
		chk.Int(tst, "order", oe.Order, -3)
	}

	// other errors
	bad := []*Input{
		{Materials: []*MatData{{Prms: nil}}},
		{Materials: []*MatData{{Name: "a"}, {Name: "a"}}},
		{Materials: []*MatData{{Name: "a", Ref: "unobtainium"}}},
		{Materials: m, Sources: []*SrcData{{Kind: "point", Mat: "x", Pos: []float64{0, 0, 0}, Burgers: b}}},
		{Materials: m, Sources: []*SrcData{{Kind: "point", Mat: "m", Pos: []float64{0, 0}, Burgers: b}}},
		{Materials: m, Sources: []*SrcData{{Kind: "point", Mat: "m", Pos: []float64{0, 0, 0}, Burgers: nil}}},
		{Materials: m, Sources: []*SrcData{{Kind: "triangle", Mat: "m", Verts: [][]float64{{0, 0, 0}}, Burgers: b}}},
		{Materials: m, Sources: []*SrcData{{Kind: "line", Mat: "m", Burgers: b}}},
		{Materials: m, Grids: []*GridData{{Nx: -1}}},
	}
	for i, in := range bad {
		err := in.PostProcess()
		if err == nil {
			tst.Errorf("PostProcess should fail with bad input # %d", i)
			continue
		}
		io.Pforan("%d: %v\n", i, err)
	}
}

func Test_input04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("input04. overriding reference materials")

	b := []float64{1, 0, 0}
	pos := []float64{0, 0, 0}
	mats := []*MatData{
		{Name: "ref", Ref: "granite", Unit: "MPa"},
		{Name: "E", Ref: "granite", Unit: "MPa", Prms: dbf.Params{&dbf.P{N: "E", V: 100}}},
		{Name: "nu", Ref: "granite", Unit: "MPa", Prms: dbf.Params{&dbf.P{N: "nu", V: 0.3}}},
		{Name: "Enu", Ref: "granite", Unit: "MPa", Prms: dbf.Params{&dbf.P{N: "E", V: 100}, &dbf.P{N: "nu", V: 0}}},
		{Name: "mu", Ref: "granite", Unit: "MPa", Prms: dbf.Params{&dbf.P{N: "mu", V: 7}}},
	}
	in := Input{Materials: mats}
	for _, m := range mats {
		in.Sources = append(in.Sources, &SrcData{Kind: "point", Mat: m.Name, Pos: pos, Burgers: b})
	}
	if err := in.PostProcess(); err != nil {
		tst.Errorf("PostProcess failed:\n%v", err)
		return
	}
	μ := func(i int) float64 { return in.Srcs[i].(*dislo.Point).Mu }
	ν := func(i int) float64 { return in.Srcs[i].(*dislo.Point).Nu }
	chk.Float64(tst, "ref: μ", 1e-10, μ(0), 20000)
	chk.Float64(tst, "E: μ", 1e-13, μ(1), 40)
	chk.Float64(tst, "E: ν", 1e-17, ν(1), 0.25)
	chk.Float64(tst, "nu: μ", 1e-10, μ(2), 50000/2.6)
	chk.Float64(tst, "nu: ν", 1e-17, ν(2), 0.3)
	chk.Float64(tst, "Enu: μ", 1e-13, μ(3), 50)
	chk.Float64(tst, "mu: μ", 1e-17, μ(4), 7)
	chk.Float64(tst, "mu: ν", 1e-17, ν(4), 0.25)

	// misspelled parameter
	in = Input{
		Materials: []*MatData{{Name: "m", Ref: "granite", Prms: dbf.Params{&dbf.P{N: "Nu", V: 0.3}}}},
		Sources:   []*SrcData{{Kind: "point", Mat: "m", Pos: pos, Burgers: b}},
	}
	if err := in.PostProcess(); err == nil {
		tst.Errorf("PostProcess should fail with misspelled parameter")
	}
}
