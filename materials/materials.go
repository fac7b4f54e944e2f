// SPDX-License-Identifier: MIT

package materials

import "sort"

// Lookup names used in *UnknownMaterialError.Func.
const (
	FuncConductivity = "Conductivity"
	FuncPermittivity = "Permittivity"
)

// Conductivity returns the bulk conductivity σ (S/m, 20 °C) of the named
// material. Matching is case-insensitive and accepts the aliases listed in
// the table (e.g. "Cu", "cu" and "copper" all yield 5.813e7).
//
// Errors: *UnknownMaterialError (errors.Is ErrUnknownMaterial) when the name
// matches no entry.
func Conductivity(name string) (float64, error) {
	i, ok := conductorIndex[normalize(name)]
	if !ok {
		return 0, &UnknownMaterialError{Name: name, Func: FuncConductivity}
	}

	return conductorTable[i].sigma, nil
}

// Permittivity returns the complex permittivity ε = ε' − jε'' of the named
// dielectric, with ε' = εᵣ·ε₀ and ε'' = εᵣ·ε₀·tanδ. The imaginary part of the
// returned value is therefore ≤ 0.
//
// Errors: *UnknownMaterialError (errors.Is ErrUnknownMaterial) when the name
// matches no entry of the dielectric table.
func Permittivity(name string) (complex128, error) {
	d, err := lookupDielectric(name, FuncPermittivity)
	if err != nil {
		return 0, err
	}

	return d.Permittivity(), nil
}

// LookupDielectric returns the raw table row (canonical name, εᵣ, tanδ).
func LookupDielectric(name string) (Dielectric, error) {
	return lookupDielectric(name, "LookupDielectric")
}

func lookupDielectric(name, fn string) (Dielectric, error) {
	i, ok := dielectricIndex[normalize(name)]
	if !ok {
		return Dielectric{}, &UnknownMaterialError{Name: name, Func: fn}
	}

	return dielectricTable[i], nil
}

// Permittivity converts the row into ε' − jε''.
func (d Dielectric) Permittivity() complex128 {
	return complex(d.RelPermittivity*Epsilon0, -d.RelPermittivity*Epsilon0*d.LossTangent)
}

// Conductors lists the canonical conductor names in ascending order.
func Conductors() []string {
	names := make([]string, len(conductorTable))
	for i, c := range conductorTable {
		names[i] = c.name
	}
	sort.Strings(names)

	return names
}

// Dielectrics lists the canonical dielectric names in ascending order.
func Dielectrics() []string {
	names := make([]string, len(dielectricTable))
	for i, d := range dielectricTable {
		names[i] = d.Name
	}
	sort.Strings(names)

	return names
}
