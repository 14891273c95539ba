// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package quad implements Gauss-Legendre quadrature rules
package quad

import "github.com/cpmech/gosl/io"

// Orders holds the available numbers of Gauss points
var Orders = []int{2, 3, 4, 5, 6, 8, 10}

// OrderError reports a request for an unavailable number of Gauss points
type OrderError struct {
	Order int // requested number of points
}

func (o *OrderError) Error() string {
	return io.Sf("number of Gauss points %d is unsupported; options are %v", o.Order, Orders)
}

// rule holds points and weights defined on [-1, 1]
type rule struct {
	x []float64
	w []float64
}

// rules maps number of points => rule
var rules = map[int]rule{
	2: {
		x: []float64{-0.577350269189626, 0.577350269189626},
		w: []float64{1.000000000000000, 1.000000000000000},
	},
	3: {
		x: []float64{-0.774596669241483, 0.000000000000000, 0.774596669241483},
		w: []float64{0.555555555555556, 0.888888888888889, 0.555555555555556},
	},
	4: {
		x: []float64{-0.861136311594053, -0.339981043584856, 0.339981043584856, 0.861136311594053},
		w: []float64{0.347854845137454, 0.652145154862546, 0.652145154862546, 0.347854845137454},
	},
	5: {
		x: []float64{-0.906179845938664, -0.538469310105683, 0.000000000000000, 0.538469310105683, 0.906179845938664},
		w: []float64{0.236926885056189, 0.478628670499366, 0.568888888888889, 0.478628670499366, 0.236926885056189},
	},
	6: {
		x: []float64{-0.932469514203152, -0.661209386466265, -0.238619186083197,
			0.238619186083197, 0.661209386466265, 0.932469514203152},
		w: []float64{0.171324492379170, 0.360761573048139, 0.467913934572691,
			0.467913934572691, 0.360761573048139, 0.171324492379170},
	},
	8: {
		x: []float64{-0.960289856497536, -0.796666477413627, -0.525532409916329, -0.183434642495650,
			0.183434642495650, 0.525532409916329, 0.796666477413627, 0.960289856497536},
		w: []float64{0.101228536290376, 0.222381034453374, 0.313706645877887, 0.362683783378362,
			0.362683783378362, 0.313706645877887, 0.222381034453374, 0.101228536290376},
	},
	10: {
		x: []float64{-0.973906528517172, -0.865063366688985, -0.679409568299024, -0.433395394129247, -0.148874338981631,
			0.148874338981631, 0.433395394129247, 0.679409568299024, 0.865063366688985, 0.973906528517172},
		w: []float64{0.066671344308688, 0.149451349150581, 0.219086362515982, 0.269266719309996, 0.295524224714753,
			0.295524224714753, 0.269266719309996, 0.219086362515982, 0.149451349150581, 0.066671344308688},
	},
}

// Supported tells whether a rule with n points is available
func Supported(n int) bool {
	_, ok := rules[n]
	return ok
}

// Rule returns the Gauss-Legendre points and weights on [-1, 1]
//  Note: the returned slices are copies and can be modified by the caller
func Rule(n int) (xs, ws []float64, err error) {
	r, ok := rules[n]
	if !ok {
		return nil, nil, &OrderError{n}
	}
	xs = append([]float64{}, r.x...)
	ws = append([]float64{}, r.w...)
	return
}

// ToUnitPoint maps a Gauss point from [-1, 1] to [0, 1]
func ToUnitPoint(ξ float64) float64 { return 0.5 * (ξ + 1.0) }

// ToUnitWeight maps a Gauss weight from [-1, 1] to [0, 1]
func ToUnitWeight(w float64) float64 { return 0.5 * w }

// UnitRule returns the Gauss-Legendre points and weights mapped to [0, 1]
//
//     -1        0        1           0       0.5       1
//      |---x----|----x---|    ==>    |---x----|----x---|
//          ξ                             (ξ+1)/2
//
func UnitRule(n int) (xs, ws []float64, err error) {
	xs, ws, err = Rule(n)
	if err != nil {
		return
	}
	for i := range xs {
		xs[i] = ToUnitPoint(xs[i])
		ws[i] = ToUnitWeight(ws[i])
	}
	return
}
