// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dislo

import "github.com/cpmech/dislo/ana"

// Point implements a point dislocation: a displacement discontinuity (Burgers
// vector) concentrated at X. The stresses follow from the derivatives of the
// fundamental solution for a displacement discontinuity (not a point force),
// with Hooke's law applied to the displacement gradients:
//
//   σij = λ・δij・∂uk/∂xk + μ・(∂ui/∂xj + ∂uj/∂xi)
//
// with terms up to r⁻⁵ in the gradients and λ = 2μν/(1-2ν)
type Point struct {
	X  Vec3    // position of source
	B  Vec3    // Burgers vector (displacement discontinuity)
	Mu float64 // shear modulus
	Nu float64 // Poisson's coefficient
}

// NewPoint returns a new point source
func NewPoint(x, b Vec3, μ, ν float64) *Point {
	return &Point{X: x, B: b, Mu: μ, Nu: ν}
}

// DefaultPoint returns a point source at the origin with B = {1,0,0}, μ = 1 and ν = 0.25
func DefaultPoint() *Point {
	return NewPoint(Vec3{0, 0, 0}, Vec3{1, 0, 0}, 1, 0.25)
}

func (o *Point) kind() string { return "point" }

// Run computes the stress field at all observation points
func (o *Point) Run(coords []float64) ([]float64, error) {
	return runBatch(o, coords)
}

// StressAt computes the stress tensor at x
//  Note: returns zero if x coincides with the source position
func (o *Point) StressAt(x Vec3) (σ Tensor) {

	// relative position
	d := x.Sub(o.X)
	r := d.Norm()
	if r < Rtol {
		return
	}
	dx, dy, dz := d[0], d[1], d[2]

	// constants
	μ, a := o.Mu, 2.0*o.Mu
	λ := ana.LameFromGnu(o.Mu, o.Nu)
	c2 := 3.0 - 4.0*o.Nu
	r2 := r * r
	r3 := r2 * r
	r5 := r3 * r2

	// auxiliary terms
	D1 := c2/r3 - (3.0/r5)*dx*dx
	D2 := c2/r3 - (3.0/r5)*dy*dy
	D3 := c2/r3 - (3.0/r5)*dz*dz
	D4 := -(3.0 / r5) * dx * dy
	D5 := -(3.0 / r5) * dy * dz
	D6 := -(3.0 / r5) * dx * dz
	q := -1.0 / r3

	// displacement gradients
	ux, uy, uz := o.B[0], o.B[1], o.B[2]
	duxdx := ux*D1 + uy*D4 + uz*D6
	duxdy := ux*D4 + uy*q
	duxdz := ux*D6 + uz*q
	duydx := uy*D4 + ux*q
	duydy := uy*D2 + ux*D4 + uz*D5
	duydz := uy*D5 + uz*q
	duzdx := uz*D6 + ux*q
	duzdy := uz*D5 + uy*q
	duzdz := uz*D3 + ux*D6 + uy*D5

	// Hooke's law
	b := λ * (duxdx + duydy + duzdz)
	σ[XX] = a*duxdx + b
	σ[XY] = μ * (duxdy + duydx)
	σ[XZ] = μ * (duxdz + duzdx)
	σ[YY] = a*duydy + b
	σ[YZ] = μ * (duydz + duzdy)
	σ[ZZ] = a*duzdz + b
	return
}
