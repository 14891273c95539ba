// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dislo implements the stress field of dislocation sources in an
// infinite, homogeneous and isotropic linear elastic medium
//
//   Two kinds of sources are available:
//
//     Point    -- displacement discontinuity concentrated at a point
//     Triangle -- displacement discontinuity over a planar triangular patch,
//                 computed by Gauss-Legendre integration along its edges
//
//   Both map a batch of observation coordinates {x0,y0,z0, x1,y1,z1, ...}
//   to a stress field {σxx,σxy,σxz,σyy,σyz,σzz, ...} with one group of six
//   values per observation point.
package dislo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

// Source defines dislocation sources
//  Note: the set of sources is closed; only *Point and *Triangle implement Source
type Source interface {
	Run(coords []float64) ([]float64, error) // computes the stress field at all observation points
	StressAt(x Vec3) Tensor                  // computes the stress tensor at one observation point
	kind() string                            // returns the name of this kind of source
}

// Kind returns the name of the kind of source: "point" or "triangle"
func Kind(src Source) string {
	return src.kind()
}

// BatchLengthError reports a batch of coordinates that cannot be grouped in triples
type BatchLengthError struct {
	Len int // number of coordinates
}

func (o *BatchLengthError) Error() string {
	return io.Sf("number of coordinates (%d) must be a multiple of 3", o.Len)
}

// Geometry holds the geometric data to allocate sources
type Geometry struct {
	X     Vec3    // position of point source
	Verts [3]Vec3 // vertices of triangle source
}

// New allocates a new source
//  kind   -- "point" or "triangle"
//  geo    -- geometry of source
//  b      -- Burgers vector
//  prms   -- "mu" or "G" (shear modulus), "nu" (Poisson's coefficient), "E" (Young's modulus)
//            and, for triangles, "ngauss" (number of Gauss points)
//  Note: μ given directly has precedence over E; otherwise μ = E/(2(1+ν))
func New(kind string, geo Geometry, b Vec3, prms dbf.Params) (src Source, err error) {
	var mat elastPrms
	ngauss := DefaultNgauss
	mat.setDefaults()
	for _, p := range prms {
		switch p.N {
		case "ngauss":
			if p.V != math.Trunc(p.V) {
				return nil, chk.Err("number of Gauss points must be an integer. %g is invalid", p.V)
			}
			ngauss = int(p.V)
		default:
			if err = mat.set(p.N, p.V); err != nil {
				return
			}
		}
	}
	mat.derive()
	switch kind {
	case "point":
		return NewPoint(geo.X, b, mat.μ, mat.ν), nil
	case "triangle":
		tri, err := NewTriangle(geo.Verts[0], geo.Verts[1], geo.Verts[2], b, mat.μ, mat.ν, ngauss)
		if err != nil {
			return nil, err
		}
		return tri, nil
	}
	return nil, chk.Err("source kind %q is not available; options are \"point\" and \"triangle\"", kind)
}

// elastPrms collects elastic parameters given by name
type elastPrms struct {
	μ    float64 // shear modulus
	ν    float64 // Poisson's coefficient
	E    float64 // Young's modulus
	hasμ bool    // μ was given
	hasE bool    // E was given
}

// setDefaults sets default values
func (o *elastPrms) setDefaults() {
	o.μ = 1.0
	o.ν = 0.25
}

// set sets parameter by name
func (o *elastPrms) set(name string, val float64) (err error) {
	switch name {
	case "mu", "G":
		o.μ, o.hasμ = val, true
	case "nu":
		o.ν = val
	case "E":
		o.E, o.hasE = val, true
	default:
		return chk.Err("parameter %q is invalid; options are \"mu\", \"G\", \"nu\", \"E\" and \"ngauss\"", name)
	}
	return
}

// derive computes μ from E if μ was not given
func (o *elastPrms) derive() {
	if o.hasE && !o.hasμ {
		o.μ = o.E / (2.0 * (1.0 + o.ν))
	}
}
