// SPDX-License-Identifier: MIT
// Package: txline/materials
//
// table.go - the raw constant tables and their alias indexes.
//
// Source: Pozar, Microwave Engineering, 4th ed. (appendix tables).
// Values must stay byte-for-byte identical; tests pin every entry.

package materials

import "strings"

// conductor is one row of the conductivity table.
type conductor struct {
	name    string   // canonical name
	aliases []string // extra accepted spellings (already normalized)
	sigma   float64  // S/m at 20 °C
}

// Dielectric is one row of the permittivity table.
type Dielectric struct {
	Name            string  // canonical name
	RelPermittivity float64 // εᵣ = ε'/ε₀
	LossTangent     float64 // tanδ = ε''/ε'
	aliases         []string
}

var conductorTable = []conductor{
	{name: "copper", aliases: []string{"cu"}, sigma: 5.813e7},
	{name: "pec", aliases: []string{"perfect-electric-conductor"}, sigma: PerfectConductor},
	{name: "gold", aliases: []string{"au"}, sigma: 4.098e7},
	{name: "aluminum", aliases: []string{"al", "aluminium"}, sigma: 3.816e7},
	{name: "silver", aliases: []string{"ag"}, sigma: 6.173e7},
	{name: "brass", sigma: 2.564e7},
	{name: "bronze", sigma: 1.00e7},
	{name: "chromium", aliases: []string{"cr"}, sigma: 3.846e7},
	{name: "water", aliases: []string{"h2o"}, sigma: 2e-4},
	{name: "germanium", aliases: []string{"ge"}, sigma: 2.2e6},
	{name: "graphite", sigma: 7e4},
	{name: "iron", aliases: []string{"fe"}, sigma: 1.03e7},
	{name: "mercury", aliases: []string{"hg"}, sigma: 1.04e6},
	{name: "lead", aliases: []string{"pb"}, sigma: 4.56e6},
	{name: "nichrome", sigma: 1.0e6},
	{name: "nickel", aliases: []string{"ni"}, sigma: 1.449e7},
	{name: "platinum", aliases: []string{"pt"}, sigma: 9.52e6},
	{name: "seawater", sigma: 4},
	{name: "silicon", aliases: []string{"si"}, sigma: 4.4e-4},
	{name: "silicon-steel", aliases: []string{"steel-silicon"}, sigma: 2e6},
	{name: "stainless-steel", aliases: []string{"steel-stainless"}, sigma: 1.1e6},
	{name: "solder", sigma: 7e6},
	{name: "tungsten", aliases: []string{"w"}, sigma: 1.825e7},
	{name: "zinc", aliases: []string{"zn"}, sigma: 1.67e7},
}

var dielectricTable = []Dielectric{
	{Name: "polyethylene", RelPermittivity: 2.25, LossTangent: 0.0004, aliases: []string{"pe"}},
	{Name: "vacuum", RelPermittivity: 1, LossTangent: 0, aliases: []string{"vac"}},
	{Name: "gallium-arsenide", RelPermittivity: 13, LossTangent: 0.006, aliases: []string{"gaas", "galliumarsenide"}},
	{Name: "ptfe", RelPermittivity: 2.08, LossTangent: 0.0004, aliases: []string{"teflon"}},
	{Name: "silicon", RelPermittivity: 11.9, LossTangent: 0.004, aliases: []string{"si"}},
	{Name: "polystyrene", RelPermittivity: 2.54, LossTangent: 0.00033, aliases: []string{"ps"}},
}

// Name → row index, built once from the tables above.
var (
	conductorIndex  = buildIndex(len(conductorTable), func(i int) (string, []string) { return conductorTable[i].name, conductorTable[i].aliases })
	dielectricIndex = buildIndex(len(dielectricTable), func(i int) (string, []string) { return dielectricTable[i].Name, dielectricTable[i].aliases })
)

// buildIndex maps every canonical name and alias to its row.
// Duplicate keys are a table bug and panic at init.
func buildIndex(n int, row func(int) (string, []string)) map[string]int {
	idx := make(map[string]int, 2*n)
	add := func(key string, i int) {
		if _, dup := idx[key]; dup {
			panic("materials: duplicate table key " + key)
		}
		idx[key] = i
	}
	for i := 0; i < n; i++ {
		name, aliases := row(i)
		add(name, i)
		for _, a := range aliases {
			add(a, i)
		}
	}

	return idx
}

// normalize folds a user-supplied name onto the table key space:
// trimmed, lower-case, with '_' and ' ' replaced by '-'.
func normalize(name string) string {
	key := strings.ToLower(strings.TrimSpace(name))

	return strings.NewReplacer("_", "-", " ", "-").Replace(key)
}
