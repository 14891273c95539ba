// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.dis) JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/dislo/ana"
	"github.com/cpmech/dislo/dislo"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// MatData holds material data
type MatData struct {
	Name string     `json:"name"` // name of material
	Ref  string     `json:"ref"`  // reference material; e.g. "granite". see ana.Material
	Unit string     `json:"unit"` // unit of pressure of reference material; default = "MPa"
	Prms dbf.Params `json:"prms"` // parameters: "mu" or "G", "nu", "E". override reference values; μ is recomputed from E unless given
}

// SrcData holds data of one dislocation source
type SrcData struct {
	Kind    string      `json:"kind"`    // "point" or "triangle"
	Mat     string      `json:"mat"`     // name of material
	Pos     []float64   `json:"pos"`     // [3] position of point source
	Verts   [][]float64 `json:"verts"`   // [3][3] vertices of triangle source
	Burgers []float64   `json:"burgers"` // [3] Burgers vector
	Ngauss  int         `json:"ngauss"`  // number of Gauss points along edges of triangles. 0 or absent => default
}

// GridData holds data to generate a regular grid of observation points
//  Note: a dimension with n ≤ 1 holds a single coordinate equal to min
type GridData struct {
	Xmin float64 `json:"xmin"`
	Xmax float64 `json:"xmax"`
	Nx   int     `json:"nx"`
	Ymin float64 `json:"ymin"`
	Ymax float64 `json:"ymax"`
	Ny   int     `json:"ny"`
	Zmin float64 `json:"zmin"`
	Zmax float64 `json:"zmax"`
	Nz   int     `json:"nz"`
}

// Input holds all input data
type Input struct {

	// input
	Desc      string      `json:"desc"`      // description of problem
	DirOut    string      `json:"dirout"`    // directory for output; default = "/tmp/dislo"
	Key       string      `json:"key"`       // key of output file; default = key of input file
	Nworkers  int         `json:"nworkers"`  // number of goroutines. 0 => number of CPUs
	WithInv   bool        `json:"withinv"`   // output stress invariants as well
	Materials []*MatData  `json:"materials"` // materials
	Sources   []*SrcData  `json:"sources"`   // sources
	Points    []float64   `json:"points"`    // observation points {x0,y0,z0, x1,y1,z1, ...}
	Grids     []*GridData `json:"grids"`     // grids of observation points

	// derived
	Srcs   []dislo.Source // allocated sources
	Coords []float64      // all observation points: Points followed by the points of each grid
}

// ReadInput reads input data from a (.dis) JSON file
func ReadInput(fn string) (o *Input, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read input file %q:\n%v", fn, err)
	}
	o = new(Input)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot decode input file %q:\n%v", fn, err)
	}
	if o.Key == "" {
		o.Key = io.FnKey(fn)
	}
	err = o.PostProcess()
	if err != nil {
		return nil, chk.Err("input file %q is invalid:\n%v", fn, err)
	}
	return
}

// PostProcess sets default values, allocates sources and generates observation points
func (o *Input) PostProcess() (err error) {

	// defaults
	if o.DirOut == "" {
		o.DirOut = "/tmp/dislo"
	}

	// materials
	mats := make(map[string]dbf.Params)
	for i, m := range o.Materials {
		if m.Name == "" {
			return chk.Err("material # %d has no name", i)
		}
		if _, ok := mats[m.Name]; ok {
			return chk.Err("material %q is defined more than once", m.Name)
		}
		var prms dbf.Params
		if m.Ref != "" {
			unit := m.Unit
			if unit == "" {
				unit = "MPa"
			}
			var ref ana.Material
			if err = ref.Init(m.Ref, unit); err != nil {
				return
			}
			prms = ref.GetPrms()
		}
		mats[m.Name] = append(prms, m.Prms...)
	}

	// sources
	o.Srcs = make([]dislo.Source, len(o.Sources))
	for i, s := range o.Sources {
		o.Srcs[i], err = s.alloc(mats)
		if err != nil {
			return chk.Err("source # %d:\n%v", i, err)
		}
	}

	// observation points
	if len(o.Points)%3 != 0 {
		return &dislo.BatchLengthError{Len: len(o.Points)}
	}
	o.Coords = append([]float64{}, o.Points...)
	for i, g := range o.Grids {
		if g.Nx < 0 || g.Ny < 0 || g.Nz < 0 {
			return chk.Err("grid # %d: number of divisions must be non-negative", i)
		}
		o.Coords = append(o.Coords, g.Coords()...)
	}
	return
}

// Npoints returns the number of observation points
func (o Input) Npoints() int {
	return len(o.Coords) / 3
}

// Coords returns the coordinates of all grid points; x varies fastest, then y, then z
func (o GridData) Coords() (coords []float64) {
	X := linspace(o.Xmin, o.Xmax, o.Nx)
	Y := linspace(o.Ymin, o.Ymax, o.Ny)
	Z := linspace(o.Zmin, o.Zmax, o.Nz)
	coords = make([]float64, 0, 3*len(X)*len(Y)*len(Z))
	for _, z := range Z {
		for _, y := range Y {
			for _, x := range X {
				coords = append(coords, x, y, z)
			}
		}
	}
	return
}

// alloc allocates source
func (o SrcData) alloc(mats map[string]dbf.Params) (src dislo.Source, err error) {
	prms, ok := mats[o.Mat]
	if !ok {
		return nil, chk.Err("material %q is not available", o.Mat)
	}
	if o.Ngauss != 0 {
		prms = append(append(dbf.Params{}, prms...), &dbf.P{N: "ngauss", V: float64(o.Ngauss)})
	}
	b, err := toVec3("burgers", o.Burgers)
	if err != nil {
		return
	}
	var geo dislo.Geometry
	switch o.Kind {
	case "point":
		if geo.X, err = toVec3("pos", o.Pos); err != nil {
			return
		}
	case "triangle":
		if len(o.Verts) != 3 {
			return nil, chk.Err("triangle must have 3 vertices. %d is invalid", len(o.Verts))
		}
		for i, v := range o.Verts {
			if geo.Verts[i], err = toVec3(io.Sf("verts[%d]", i), v); err != nil {
				return
			}
		}
	}
	return dislo.New(o.Kind, geo, b, prms)
}

// toVec3 converts slice to Vec3
func toVec3(name string, v []float64) (x dislo.Vec3, err error) {
	if len(v) != 3 {
		return x, chk.Err("%s must have 3 components. %d is invalid", name, len(v))
	}
	copy(x[:], v)
	return
}

// linspace returns n points from a to b or {a} if n ≤ 1
func linspace(a, b float64, n int) []float64 {
	if n <= 1 {
		return []float64{a}
	}
	return utl.LinSpace(a, b, n)
}
