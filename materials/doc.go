// SPDX-License-Identifier: MIT

// Package materials is the reference table of bulk electrical constants used
// by the waveguide models: conductivity of metals (and a few poor conductors)
// and complex permittivity of common microwave dielectrics.
//
// 🚀 What is in the table?
//
//	Conductivities are taken at 20 °C; dielectric constants and loss tangents
//	are representative values somewhere in the 3–10 GHz band. Neither
//	temperature nor frequency dependence is modeled: every lookup returns a
//	fixed constant.
//
// ✨ Key features:
//   - case-insensitive lookup with short aliases ("Cu", "copper", "teflon", "ptfe")
//   - '_' and ' ' in names are equivalent to '-' ("steel_stainless" ≡ "stainless-steel")
//   - unknown names fail loudly with *UnknownMaterialError (errors.Is ErrUnknownMaterial)
//
// ⚙️ Usage:
//
//	sigma, err := materials.Conductivity("Cu")  // 5.813e7 S/m
//	eps, err := materials.Permittivity("vac")   // complex(ε₀, 0)
//
// The two tables are independent: "silicon" exists in both, but most
// conductors have no dielectric entry and vice versa.
package materials
