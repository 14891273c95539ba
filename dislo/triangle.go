// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dislo

import (
	"math"

	"github.com/cpmech/dislo/quad"
)

// DefaultNgauss is the default number of Gauss points along each edge
const DefaultNgauss = 8

// Triangle implements a triangular dislocation: a constant displacement
// discontinuity (Burgers vector) over a planar triangle. The stress field is
// obtained by integrating an angular dislocation kernel along the edges
//
//            v3
//            o
//           / \         σ(x) = Σ_edges ∫ K(x - p(s), b) ds
//          /   \
//   (e3)  /     \ (e2)   e1 = v1 → v2
//        /       \       e2 = v2 → v3
//       o---------o      e3 = v3 → v1
//      v1   (e1)   v2
//
// Degenerate triangles are allowed: edges with zero length give no contribution
type Triangle struct {
	V      [3]Vec3 // vertices
	B      Vec3    // Burgers vector (displacement discontinuity)
	Mu     float64 // shear modulus
	Nu     float64 // Poisson's coefficient
	Ngauss int     // number of Gauss points along each edge

	// derived
	xs []float64 // Gauss points on [0,1]
	ws []float64 // Gauss weights on [0,1]
	c1 float64   // μ/(4π(1-ν))
	c2 float64   // 1-2ν
}

// NewTriangle returns a new triangle source
//  Note: returns a quad.OrderError if ngauss is not available
func NewTriangle(v1, v2, v3, b Vec3, μ, ν float64, ngauss int) (o *Triangle, err error) {
	o = &Triangle{V: [3]Vec3{v1, v2, v3}, B: b, Mu: μ, Nu: ν, Ngauss: ngauss}
	o.xs, o.ws, err = quad.UnitRule(ngauss)
	if err != nil {
		return nil, err
	}
	o.c1 = μ / (4.0 * math.Pi * (1.0 - ν))
	o.c2 = 1.0 - 2.0*ν
	return
}

func (o *Triangle) kind() string { return "triangle" }

// Run computes the stress field at all observation points
func (o *Triangle) Run(coords []float64) ([]float64, error) {
	return runBatch(o, coords)
}

// StressAt computes the stress tensor at x by adding the contributions of the three edges
func (o *Triangle) StressAt(x Vec3) Tensor {
	σ1 := o.EdgeStress(x, o.V[0], o.V[1])
	σ2 := o.EdgeStress(x, o.V[1], o.V[2])
	σ3 := o.EdgeStress(x, o.V[2], o.V[0])
	return σ1.Add(σ2).Add(σ3)
}

// EdgeStress computes the contribution of edge a → b to the stress tensor at x
//  Note: Gauss points coinciding with x are skipped and a zero-length edge gives zero
func (o *Triangle) EdgeStress(x, a, b Vec3) (σ Tensor) {

	// edge
	e := b.Sub(a)
	L := e.Norm()
	if L < Rtol {
		return
	}

	// the edge tangent does not enter the kernel below
	c1, c2, B := o.c1, o.c2, o.B
	for i, ξ := range o.xs {

		// Gauss point on edge and unit vector pointing to x
		p := Vec3{a[0] + ξ*e[0], a[1] + ξ*e[1], a[2] + ξ*e[2]}
		R := x.Sub(p)
		r := R.Norm()
		if r < Rtol {
			continue
		}
		n := R.Scale(1.0 / r)

		// angular dislocation kernel
		s := o.ws[i] * L * c1 / r
		σ[XX] += s * (B[0]*(c2+3.0*n[0]*n[0]) + B[1]*3.0*n[0]*n[1] + B[2]*3.0*n[0]*n[2])
		σ[YY] += s * (B[0]*3.0*n[1]*n[0] + B[1]*(c2+3.0*n[1]*n[1]) + B[2]*3.0*n[1]*n[2])
		σ[ZZ] += s * (B[0]*3.0*n[2]*n[0] + B[1]*3.0*n[2]*n[1] + B[2]*(c2+3.0*n[2]*n[2]))
		σ[YZ] += s * (B[0]*3.0*n[1]*n[2]*n[0] + B[1]*(c2*n[2]+3.0*n[1]*n[2]*n[1]) + B[2]*(c2*n[1]+3.0*n[1]*n[2]*n[2]))
		σ[XZ] += s * (B[0]*(c2*n[2]+3.0*n[0]*n[2]*n[0]) + B[1]*3.0*n[0]*n[2]*n[1] + B[2]*(c2*n[0]+3.0*n[0]*n[2]*n[2]))
		σ[XY] += s * (B[0]*(c2*n[1]+3.0*n[0]*n[1]*n[0]) + B[1]*(c2*n[0]+3.0*n[0]*n[1]*n[1]) + B[2]*3.0*n[0]*n[1]*n[2])
	}
	return
}
