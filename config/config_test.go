package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/txline/config"
	"github.com/katalvlaran/txline/materials"
	"github.com/katalvlaran/txline/sweep"
	"github.com/katalvlaran/txline/waveguide"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
sweep:
  start: 1.0e+9
  stop: 1.0e+12
  points: 4
  scale: log
output:
  path: out.csv
  format: csv
  per: mm
lines:
  - {name: rg, kind: coax, a: 0.5e-3, b: 1.75e-3, metal: Cu, dielectric: pe}
  - {name: pair, kind: twwg, s: 3.5e-3, a: 1.0e-3, metal: silver, dielectric: teflon}
`

func TestParse(t *testing.T) {
	f, err := config.Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, 4, f.Sweep.Points)
	assert.Equal(t, "log", f.Sweep.Scale)
	assert.Equal(t, "csv", f.Output.Format)
	assert.Equal(t, config.DefaultTitle, f.Output.Title)
	require.Len(t, f.Lines, 2)

	grid, err := f.Sweep.Grid()
	require.NoError(t, err)
	require.Len(t, grid, 4)
	assert.InEpsilon(t, 1e10, grid[1], 1e-12)

	unit, err := f.Output.Unit()
	require.NoError(t, err)
	assert.Equal(t, sweep.Millimeter, unit)

	lines, err := f.BuildLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "rg", lines[0].Name)
	assert.Equal(t, waveguide.KindCoax, lines[0].Line.Kind())
	assert.Equal(t, waveguide.KindTwoWire, lines[1].Line.Kind())
	assert.Equal(t, 6.173e7, lines[1].Line.Conductivity())
}

func TestParse_Defaults(t *testing.T) {
	f, err := config.Parse([]byte(`
sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3}
lines:
  - {name: p, kind: parallel-plate, s: 1.0e-3, t: 1.0e-2, metal: gold, dielectric: vacuum}
`))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultScale, f.Sweep.Scale)
	assert.Equal(t, config.DefaultFormat, f.Output.Format)
	assert.Equal(t, config.DefaultPer, f.Output.Per)
	assert.Equal(t, config.DefaultPath, f.Output.Path)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"no lines":       "sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3}\n",
		"zero start":     "sweep: {start: 0, stop: 2.0e+9, points: 3}\nlines: [{name: c, kind: coax, a: 1, b: 2, metal: cu, dielectric: vac}]\n",
		"stop below":     "sweep: {start: 3.0e+9, stop: 2.0e+9, points: 3}\nlines: [{name: c, kind: coax, a: 1, b: 2, metal: cu, dielectric: vac}]\n",
		"zero points":    "sweep: {start: 1.0e+9, stop: 2.0e+9, points: 0}\nlines: [{name: c, kind: coax, a: 1, b: 2, metal: cu, dielectric: vac}]\n",
		"bad scale":      "sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3, scale: cubic}\nlines: [{name: c, kind: coax, a: 1, b: 2, metal: cu, dielectric: vac}]\n",
		"bad format":     "sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3}\noutput: {format: pdf}\nlines: [{name: c, kind: coax, a: 1, b: 2, metal: cu, dielectric: vac}]\n",
		"missing metal":  "sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3}\nlines: [{name: c, kind: coax, a: 1, b: 2, dielectric: vac}]\n",
		"bad kind":       "sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3}\nlines: [{name: c, kind: microstrip, a: 1, b: 2, metal: cu, dielectric: vac}]\n",
		"duplicate name": "sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3}\nlines: [{name: c, kind: coax, a: 1, b: 2, metal: cu, dielectric: vac}, {name: c, kind: coax, a: 1, b: 2, metal: cu, dielectric: vac}]\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3, step: 4}\n"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestBuild_PropagatesModelErrors(t *testing.T) {
	f, err := config.Parse([]byte(`
sweep: {start: 1.0e+9, stop: 2.0e+9, points: 3}
lines:
  - {name: bad, kind: two-wire, s: 1.0e-3, a: 1.0e-3, metal: cu, dielectric: vac}
  - {name: odd, kind: coax, a: 1.0e-3, b: 2.0e-3, metal: unobtainium, dielectric: vac}
`))
	require.NoError(t, err)

	_, err = f.Lines[0].Build()
	assert.ErrorIs(t, err, waveguide.ErrInvalidGeometry)
	assert.Contains(t, err.Error(), `"bad"`)

	_, err = f.Lines[1].Build()
	assert.ErrorIs(t, err, materials.ErrUnknownMaterial)

	_, err = f.BuildLines()
	assert.ErrorIs(t, err, waveguide.ErrInvalidGeometry)
}

func TestDefault(t *testing.T) {
	f := config.Default()
	require.NoError(t, f.Validate())
	lines, err := f.BuildLines()
	require.NoError(t, err)
	require.Len(t, lines, 3)
	grid, err := f.Sweep.Grid()
	require.NoError(t, err)
	assert.Len(t, grid, 201)
	assert.Equal(t, 0.1e12, grid[0])
	assert.Equal(t, 3e12, grid[200])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))
	f, err := config.Load(path)
	require.NoError(t, err)
	assert.Len(t, f.Lines, 2)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
