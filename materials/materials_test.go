package materials_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/txline/materials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConductivity_Table pins every conductor entry and its aliases.
func TestConductivity_Table(t *testing.T) {
	cases := []struct {
		names []string
		want  float64
	}{
		{[]string{"Cu", "cu", "copper", "COPPER"}, 5.813e7},
		{[]string{"pec", "perfect_electric_conductor"}, 1e30},
		{[]string{"au", "gold"}, 4.098e7},
		{[]string{"al", "aluminium", "aluminum"}, 3.816e7},
		{[]string{"ag", "silver"}, 6.173e7},
		{[]string{"brass"}, 2.564e7},
		{[]string{"bronze"}, 1.00e7},
		{[]string{"chromium", "cr"}, 3.846e7},
		{[]string{"water", "h2o"}, 2e-4},
		{[]string{"germanium", "ge"}, 2.2e6},
		{[]string{"graphite"}, 7e4},
		{[]string{"iron", "fe"}, 1.03e7},
		{[]string{"mercury", "hg"}, 1.04e6},
		{[]string{"lead", "pb"}, 4.56e6},
		{[]string{"nichrome"}, 1.0e6},
		{[]string{"nickel", "ni"}, 1.449e7},
		{[]string{"platinum", "pt"}, 9.52e6},
		{[]string{"seawater"}, 4},
		{[]string{"silicon", "si"}, 4.4e-4},
		{[]string{"steel_silicon", "silicon-steel", "silicon steel"}, 2e6},
		{[]string{"steel_stainless", "stainless-steel"}, 1.1e6},
		{[]string{"solder"}, 7e6},
		{[]string{"tungsten", "w"}, 1.825e7},
		{[]string{"zinc", "zn"}, 1.67e7},
	}
	for _, tc := range cases {
		for _, name := range tc.names {
			got, err := materials.Conductivity(name)
			require.NoError(t, err, name)
			assert.Equal(t, tc.want, got, name)
		}
	}
	assert.Len(t, materials.Conductors(), len(cases))
}

// TestConductivity_Unknown verifies the typed failure carries the name and function.
func TestConductivity_Unknown(t *testing.T) {
	_, err := materials.Conductivity("unobtainium")
	require.Error(t, err)
	assert.ErrorIs(t, err, materials.ErrUnknownMaterial)

	var ume *materials.UnknownMaterialError
	require.True(t, errors.As(err, &ume))
	assert.Equal(t, "unobtainium", ume.Name)
	assert.Equal(t, materials.FuncConductivity, ume.Func)
	assert.Contains(t, err.Error(), "unobtainium")
	assert.Contains(t, err.Error(), "Conductivity")
}

// TestPermittivity_Table pins every dielectric entry.
func TestPermittivity_Table(t *testing.T) {
	e0 := materials.Epsilon0
	cases := []struct {
		names []string
		er    float64
		tand  float64
	}{
		{[]string{"pe", "polyethylene"}, 2.25, 0.0004},
		{[]string{"vacuum", "vac", "VAC"}, 1, 0},
		{[]string{"gaas", "galliumarsenide", "gallium-arsenide"}, 13, 0.006},
		{[]string{"teflon", "ptfe", "PTFE"}, 2.08, 0.0004},
		{[]string{"silicon", "si"}, 11.9, 0.004},
		{[]string{"polystyrene", "ps"}, 2.54, 0.00033},
	}
	for _, tc := range cases {
		want := complex(tc.er*e0, -tc.er*e0*tc.tand)
		for _, name := range tc.names {
			got, err := materials.Permittivity(name)
			require.NoError(t, err, name)
			assert.Equal(t, want, got, name)
		}
	}
	assert.Len(t, materials.Dielectrics(), len(cases))
}

// TestPermittivity_Reference checks the two reference values quoted for the table.
func TestPermittivity_Reference(t *testing.T) {
	vac, err := materials.Permittivity("vac")
	require.NoError(t, err)
	assert.Equal(t, materials.Epsilon0, real(vac))
	assert.Zero(t, imag(vac))

	teflon, err := materials.Permittivity("teflon")
	require.NoError(t, err)
	assert.Equal(t, 2.08*materials.Epsilon0, real(teflon))
	assert.Equal(t, -2.08*materials.Epsilon0*0.0004, imag(teflon))
}

// TestPermittivity_NotASuperset ensures conductors are not accepted as dielectrics.
func TestPermittivity_NotASuperset(t *testing.T) {
	_, err := materials.Permittivity("copper")
	require.ErrorIs(t, err, materials.ErrUnknownMaterial)

	var ume *materials.UnknownMaterialError
	require.ErrorAs(t, err, &ume)
	assert.Equal(t, materials.FuncPermittivity, ume.Func)
}

func TestLookupDielectric(t *testing.T) {
	d, err := materials.LookupDielectric(" Teflon ")
	require.NoError(t, err)
	assert.Equal(t, "ptfe", d.Name)
	assert.Equal(t, 2.08, d.RelPermittivity)
	assert.Equal(t, 0.0004, d.LossTangent)

	_, err = materials.LookupDielectric("")
	assert.ErrorIs(t, err, materials.ErrUnknownMaterial)
}

func TestListsAreSorted(t *testing.T) {
	assert.IsIncreasing(t, materials.Conductors())
	assert.IsIncreasing(t, materials.Dielectrics())
}
