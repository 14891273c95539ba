// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements reference data and closed-form relations for linear elastic media
package ana

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Material holds parameters of some reference isotropic materials
type Material struct {

	// input
	Type     string // type of material; e.g. "steel"
	UnitPres string // unit of pressure

	// derived
	UnitDens string  // unit of density
	Desc     string  // description
	E        float64 // Young's modulus
	Nu       float64 // Poisson's coefficient
	G        float64 // shear modulus
	Lam      float64 // Lamé's first parameter
	Rho      float64 // density
}

// Init initialises material paramters
//  Input:
//   unitPres:  "Pa"  => E:[Pa],  rho:[kg/m³]
//              "kPa" => E:[kPa], rho:[Mg/m³]
//              "MPa" => E:[MPa], rho:[Gg/m³]
//              "GPa" => E:[GPa], rho:[Tg/m³]
func (o *Material) Init(typ, unitPres string) (err error) {

	// material data
	switch typ {
	case "steel":
		o.Desc = "Steel: structural A36"
		o.E = 200000.0  // [MPa]
		o.Nu = 0.32     // [-]
		o.Rho = 7.85e-3 // [Gg/m³]
	case "aluminum":
		o.Desc = "Aluminum: 2014-T6"
		o.E = 73100.0   // [MPa]
		o.Nu = 0.35     // [-]
		o.Rho = 2.79e-3 // [Gg/m³]
	case "concrete-low":
		o.Desc = "Concrete: low strength"
		o.E = 22100.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "concrete-high":
		o.Desc = "Concrete: high strength"
		o.E = 30000.0   // [MPa]
		o.Nu = 0.15     // [-]
		o.Rho = 2.38e-3 // [Gg/m³]
	case "soft-soil":
		o.Desc = "Soil: soft"
		o.E = 10.0      // [MPa]
		o.Nu = 0.30     // [-]
		o.Rho = 1.80e-3 // [Gg/m³]
	case "wood-douglas-fir":
		o.Desc = "Wood: Douglas-fir"
		o.E = 13100.0   // [MPa]
		o.Nu = 0.29     // [-]
		o.Rho = 4.70e-4 // [Gg/m³]
	case "granite":
		o.Desc = "Rock: granite"
		o.E = 50000.0   // [MPa]
		o.Nu = 0.25     // [-]
		o.Rho = 2.70e-3 // [Gg/m³]
	default:
		return chk.Err("material type %q is unavailable", typ)
	}
	o.Type = typ

	// set unit
	o.UnitPres = unitPres
	MPa_to_unitPres := 1.0   // convert from MPa to unitPress (e.g. kPa)
	GgByM3_toUnitDens := 1.0 // convert from Gg/m3 to unitPress (e.g. Mg/m³)
	switch unitPres {
	case "Pa":
		o.UnitDens = "kg/m³"
		MPa_to_unitPres = 1e6
		GgByM3_toUnitDens = 1e6
	case "kPa":
		o.UnitDens = "Mg/m³"
		MPa_to_unitPres = 1e3   // convert from MPa to kPa
		GgByM3_toUnitDens = 1e3 // convert from Gg/m3 to Mg/m³
	case "MPa":
		o.UnitDens = "Gg/m³"
	case "GPa":
		o.UnitDens = "Tg/m³"
		MPa_to_unitPres = 1e-3   // convert from MPa to GPa
		GgByM3_toUnitDens = 1e-3 // convert from Gg/m3 to Tg/m³
	default:
		return chk.Err("unit of pressure %q is invalid", unitPres)
	}

	// convert values to requested units
	o.E = o.E * MPa_to_unitPres
	o.Rho = o.Rho * GgByM3_toUnitDens

	// derived quantities
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.Lam = LameFromEnu(o.E, o.Nu)
	return
}

// GetPrms returns the elastic parameters as "E" and "nu"
func (o Material) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: o.E},
		&dbf.P{N: "nu", V: o.Nu},
	}
}

// LameFromEnu computes Lamé's first parameter from Young's modulus and Poisson's coefficient
func LameFromEnu(E, ν float64) float64 {
	return E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
}

// LameFromGnu computes Lamé's first parameter from the shear modulus and Poisson's coefficient
func LameFromGnu(G, ν float64) float64 {
	return 2.0 * G * ν / (1.0 - 2.0*ν)
}
