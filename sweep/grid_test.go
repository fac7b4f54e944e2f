package sweep_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/txline/sweep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinspace(t *testing.T) {
	f, err := sweep.Linspace(0.1e12, 3e12, 201)
	require.NoError(t, err)
	require.Len(t, f, 201)
	assert.Equal(t, 0.1e12, f[0])
	assert.Equal(t, 3e12, f[200])
	assert.InDelta(t, 0.1e12+100*(2.9e12/200), f[100], 1)
	assert.IsIncreasing(t, f)

	one, err := sweep.Linspace(5, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{5}, one)

	two, err := sweep.Linspace(5, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 7}, two)
}

func TestLogspace(t *testing.T) {
	f, err := sweep.Logspace(1e6, 1e12, 7)
	require.NoError(t, err)
	require.Len(t, f, 7)
	for i, want := range []float64{1e6, 1e7, 1e8, 1e9, 1e10, 1e11, 1e12} {
		assert.InEpsilon(t, want, f[i], 1e-12)
	}
	assert.Equal(t, 1e6, f[0])
	assert.Equal(t, 1e12, f[6])
}

func TestGridErrors(t *testing.T) {
	_, err := sweep.Linspace(1, 2, 0)
	assert.ErrorIs(t, err, sweep.ErrBadPoints)
	_, err = sweep.Linspace(math.NaN(), 2, 3)
	assert.ErrorIs(t, err, sweep.ErrBadRange)
	_, err = sweep.Logspace(1, math.Inf(1), 3)
	assert.ErrorIs(t, err, sweep.ErrBadRange)
	_, err = sweep.Logspace(0, 10, 3)
	assert.ErrorIs(t, err, sweep.ErrBadRange)
	_, err = sweep.Logspace(1, 10, -1)
	assert.ErrorIs(t, err, sweep.ErrBadPoints)
}

func TestUnits(t *testing.T) {
	assert.Equal(t, 8.686, sweep.ToDB(1))
	assert.Equal(t, 0.5*8.686, sweep.ToDB(0.5))

	for text, want := range map[string]sweep.LengthUnit{"m": sweep.Meter, "CM": sweep.Centimeter, " mm ": sweep.Millimeter} {
		got, err := sweep.ParseLengthUnit(text)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := sweep.ParseLengthUnit("inch")
	assert.Error(t, err)
	assert.Equal(t, "cm", sweep.Centimeter.String())
	assert.InDelta(t, 0.08686, sweep.Centimeter.PerUnit(sweep.ToDB(1)), 1e-15)
}
