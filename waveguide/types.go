// SPDX-License-Identifier: MIT

package waveguide

import (
	"fmt"
	"strings"
)

// Kind enumerates the supported topologies.
type Kind uint8

const (
	// KindUnknown is the zero value and never produced by a valid topology.
	KindUnknown Kind = iota
	// KindCoax is a coaxial line (inner radius a, outer radius b).
	KindCoax
	// KindTwoWire is a pair of round wires (center separation S, radius a).
	KindTwoWire
	// KindParallelPlate is a pair of plates (separation S, width T).
	KindParallelPlate
)

// String returns the canonical, config-friendly name of k.
func (k Kind) String() string {
	switch k {
	case KindCoax:
		return "coax"
	case KindTwoWire:
		return "two-wire"
	case KindParallelPlate:
		return "parallel-plate"
	default:
		return "unknown"
	}
}

// ParseKind accepts the canonical names plus the short forms "twwg" and "ppwg".
func ParseKind(text string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "coax", "coaxial":
		return KindCoax, nil
	case "two-wire", "twowire", "twwg":
		return KindTwoWire, nil
	case "parallel-plate", "parallelplate", "ppwg":
		return KindParallelPlate, nil
	default:
		return KindUnknown, fmt.Errorf("waveguide: invalid kind: %q", text)
	}
}

// Topology is the geometric capability set a Line is built on.
// Implementations are plain values holding dimensions in meters.
type Topology interface {
	// Kind identifies the topology.
	Kind() Kind

	// Validate reports an *InvalidGeometryError if the dimensions cannot
	// produce real, finite L and C.
	Validate() error

	// StaticLC returns the per-unit-length inductance (H/m) and
	// capacitance (F/m) for permeability mu and real permittivity epsReal.
	StaticLC(mu, epsReal float64) (l, c float64)

	// SeriesR maps the surface resistance rs (Ω/□) to series resistance (Ω/m).
	SeriesR(rs float64) float64

	// ShuntG returns the shunt conductance (S/m) at angular frequency omega
	// for the loss part epsLoss = ε'' ≥ 0 of the permittivity.
	ShuntG(omega, epsLoss float64) float64
}

// RLGC is the distributed circuit of a line at one frequency.
type RLGC struct {
	R float64 // series resistance, Ω/m
	L float64 // series inductance, H/m
	G float64 // shunt conductance, S/m
	C float64 // shunt capacitance, F/m
}

// SeriesImpedance returns R + jωL.
func (p RLGC) SeriesImpedance(omega float64) complex128 {
	return complex(p.R, omega*p.L)
}

// ShuntAdmittance returns G + jωC.
func (p RLGC) ShuntAdmittance(omega float64) complex128 {
	return complex(p.G, omega*p.C)
}
