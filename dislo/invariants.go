// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dislo

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Matrix returns the full 3x3 symmetric matrix
func (o Tensor) Matrix() *mat.SymDense {
	return mat.NewSymDense(3, []float64{
		o[XX], o[XY], o[XZ],
		o[XY], o[YY], o[YZ],
		o[XZ], o[YZ], o[ZZ],
	})
}

// Mean returns the mean stress p = (σxx + σyy + σzz) / 3
func (o Tensor) Mean() float64 {
	return (o[XX] + o[YY] + o[ZZ]) / 3.0
}

// VonMises returns the von Mises equivalent stress
//
//   σvm = sqrt(3 J2)   with   J2 = s:s / 2   and   s = σ - p I
//
func (o Tensor) VonMises() float64 {
	p := o.Mean()
	sx, sy, sz := o[XX]-p, o[YY]-p, o[ZZ]-p
	J2 := 0.5*(sx*sx+sy*sy+sz*sz) + o[XY]*o[XY] + o[YZ]*o[YZ] + o[XZ]*o[XZ]
	return math.Sqrt(3.0 * J2)
}

// Principal returns the principal stresses sorted as σ1 ≥ σ2 ≥ σ3
//  Note: fails if any component is not finite
func (o Tensor) Principal() (σ1, σ2, σ3 float64, err error) {
	for i, v := range o {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, chk.Err("cannot compute principal values: component %d is not finite (%v)", i, v)
		}
	}
	var eig mat.EigenSym
	if !eig.Factorize(o.Matrix(), false) {
		return 0, 0, 0, chk.Err("cannot compute principal values of %v", o)
	}
	v := eig.Values(nil) // ascending
	return v[2], v[1], v[0], nil
}
