// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dislo

import "math"

// Vec3 holds a point or a direction in 3D space
type Vec3 [3]float64

// Sub returns o - b
func (o Vec3) Sub(b Vec3) Vec3 {
	return Vec3{o[0] - b[0], o[1] - b[1], o[2] - b[2]}
}

// Norm returns the Euclidean norm
func (o Vec3) Norm() float64 {
	return math.Sqrt(o[0]*o[0] + o[1]*o[1] + o[2]*o[2])
}

// Scale returns α * o
func (o Vec3) Scale(α float64) Vec3 {
	return Vec3{α * o[0], α * o[1], α * o[2]}
}

// Tensor holds the six independent components of the symmetric stress tensor
//
//       | σxx  σxy  σxz |
//   σ = |  ·   σyy  σyz |   ==>   {σxx, σxy, σxz, σyy, σyz, σzz}
//       |  ·    ·   σzz |
//
type Tensor [6]float64

// indices of stress components in Tensor
const (
	XX = iota
	XY
	XZ
	YY
	YZ
	ZZ
)

// Add returns the component-wise sum o + b
func (o Tensor) Add(b Tensor) (s Tensor) {
	for i := range o {
		s[i] = o[i] + b[i]
	}
	return
}

// At returns σij for i,j ∈ {0,1,2}
func (o Tensor) At(i, j int) float64 {
	return o[tensorIdx[i][j]]
}

// tensorIdx maps (i,j) to the index in Tensor
var tensorIdx = [3][3]int{
	{XX, XY, XZ},
	{XY, YY, YZ},
	{XZ, YZ, ZZ},
}
