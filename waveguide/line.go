// SPDX-License-Identifier: MIT

package waveguide

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"reflect"

	"github.com/katalvlaran/txline/materials"
)

// Line is an immutable transmission-line model: a validated Topology plus
// resolved material constants and the static L and C derived from them.
type Line struct {
	topo       Topology
	metal      string
	dielectric string
	sigma      float64    // S/m
	eps        complex128 // ε' − jε'', F/m
	mu         float64    // H/m
	l          float64    // H/m
	c          float64    // F/m
}

// NewCoax builds a coaxial line with inner radius a and outer radius b (m).
func NewCoax(a, b float64, metal, dielectric string) (*Line, error) {
	return New(Coax{A: a, B: b}, metal, dielectric)
}

// NewTwoWire builds a two-wire line with center separation s and wire radius a (m).
func NewTwoWire(s, a float64, metal, dielectric string) (*Line, error) {
	return New(TwoWire{S: s, A: a}, metal, dielectric)
}

// NewParallelPlate builds a parallel-plate line with separation s and plate width t (m).
func NewParallelPlate(s, t float64, metal, dielectric string) (*Line, error) {
	return New(ParallelPlate{S: s, T: t}, metal, dielectric)
}

// New validates topo, resolves both materials eagerly and derives L and C.
//
// Check order: geometry, then conductor, then dielectric. The first failure
// is returned; no partially built Line escapes.
//
// Pointers to the built-in topologies are copied, so later writes through
// the caller's pointer do not reach the Line. Custom Topology implementations
// must themselves be immutable.
func New(topo Topology, metal, dielectric string) (*Line, error) {
	topo, err := ownTopology(topo)
	if err != nil {
		return nil, err
	}
	if err := topo.Validate(); err != nil {
		return nil, err
	}

	sigma, err := materials.Conductivity(metal)
	if err != nil {
		return nil, fmt.Errorf("waveguide: %s conductor: %w", topo.Kind(), err)
	}
	eps, err := materials.Permittivity(dielectric)
	if err != nil {
		return nil, fmt.Errorf("waveguide: %s dielectric: %w", topo.Kind(), err)
	}

	ln := &Line{
		topo:       topo,
		metal:      metal,
		dielectric: dielectric,
		sigma:      sigma,
		eps:        eps,
		mu:         materials.Mu0, // μᵣ = 1 for every supported material
	}
	ln.l, ln.c = topo.StaticLC(ln.mu, real(eps))
	if !finitePositive(ln.l) || !finitePositive(ln.c) {
		return nil, &InvalidGeometryError{Kind: topo.Kind(), Reason: "dimensions do not yield finite positive L and C"}
	}

	return ln, nil
}

// ownTopology rejects nil (including typed-nil pointers) and dereferences
// the built-in pointer types into value copies.
func ownTopology(topo Topology) (Topology, error) {
	switch t := topo.(type) {
	case nil:
		return nil, &InvalidGeometryError{Kind: KindUnknown, Reason: "nil topology"}
	case *Coax:
		if t == nil {
			return nil, &InvalidGeometryError{Kind: KindCoax, Reason: "nil topology"}
		}
		return *t, nil
	case *TwoWire:
		if t == nil {
			return nil, &InvalidGeometryError{Kind: KindTwoWire, Reason: "nil topology"}
		}
		return *t, nil
	case *ParallelPlate:
		if t == nil {
			return nil, &InvalidGeometryError{Kind: KindParallelPlate, Reason: "nil topology"}
		}
		return *t, nil
	}
	if rv := reflect.ValueOf(topo); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return nil, &InvalidGeometryError{Kind: KindUnknown, Reason: "nil topology"}
	}

	return topo, nil
}

func finitePositive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

// IsUnknownMaterial reports whether err was caused by an unresolved material name.
func IsUnknownMaterial(err error) bool {
	return errors.Is(err, materials.ErrUnknownMaterial)
}

// Kind returns the topology kind.
func (ln *Line) Kind() Kind { return ln.topo.Kind() }

// Topology returns the geometry the line was built from.
func (ln *Line) Topology() Topology { return ln.topo }

// Metal returns the conductor name as supplied to the constructor.
func (ln *Line) Metal() string { return ln.metal }

// Dielectric returns the dielectric name as supplied to the constructor.
func (ln *Line) Dielectric() string { return ln.dielectric }

// Conductivity returns σ in S/m.
func (ln *Line) Conductivity() float64 { return ln.sigma }

// Permittivity returns ε = ε' − jε'' in F/m.
func (ln *Line) Permittivity() complex128 { return ln.eps }

// Permeability returns μ in H/m.
func (ln *Line) Permeability() float64 { return ln.mu }

// Inductance returns the static per-unit-length inductance in H/m.
func (ln *Line) Inductance() float64 { return ln.l }

// Capacitance returns the static per-unit-length capacitance in F/m.
func (ln *Line) Capacitance() float64 { return ln.c }

// RLGC evaluates the distributed circuit at frequency f (Hz).
// R follows the skin-effect surface resistance Rs = √(ωμ/2σ); G follows ε''.
func (ln *Line) RLGC(f float64) RLGC {
	omega := angular(f)
	rs := math.Sqrt(omega * ln.mu / (2 * ln.sigma))

	return RLGC{
		R: ln.topo.SeriesR(rs),
		L: ln.l,
		G: ln.topo.ShuntG(omega, -imag(ln.eps)),
		C: ln.c,
	}
}

// Impedance returns the characteristic impedance Z₀ = √(Z/Y) in Ω at f (Hz).
func (ln *Line) Impedance(f float64) complex128 {
	z, y := ln.zy(f)

	return cmplx.Sqrt(z / y)
}

// PropagationConstant returns γ = √(Z·Y) = α + jβ in 1/m at f (Hz).
func (ln *Line) PropagationConstant(f float64) complex128 {
	z, y := ln.zy(f)

	return cmplx.Sqrt(z * y)
}

// Attenuation returns α = Re(γ) in Np/m at f (Hz).
func (ln *Line) Attenuation(f float64) float64 {
	return real(ln.PropagationConstant(f))
}

// PhaseConstant returns β = Im(γ) in rad/m at f (Hz).
func (ln *Line) PhaseConstant(f float64) float64 {
	return imag(ln.PropagationConstant(f))
}

// zy returns the series impedance and shunt admittance per unit length.
func (ln *Line) zy(f float64) (z, y complex128) {
	omega := angular(f)
	p := ln.RLGC(f)

	return p.SeriesImpedance(omega), p.ShuntAdmittance(omega)
}

func angular(f float64) float64 { return 2 * math.Pi * f }
