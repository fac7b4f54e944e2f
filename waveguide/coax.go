// SPDX-License-Identifier: MIT

package waveguide

import "math"

// Coax is a coaxial line: inner conductor radius A, outer conductor
// (inner surface) radius B, both in meters.
type Coax struct {
	A float64 `validate:"finite,gt=0"`
	B float64 `validate:"finite,gt=0,gtfield=A"`
}

// Kind implements Topology.
func (Coax) Kind() Kind { return KindCoax }

// Validate requires 0 < A < B, both finite.
func (co Coax) Validate() error { return checkGeometry(KindCoax, co) }

// StaticLC: L = μ·ln(b/a)/2π, C = 2πε'/ln(b/a).
func (co Coax) StaticLC(mu, epsReal float64) (l, c float64) {
	lnba := co.logRatio()

	return mu * lnba / (2 * math.Pi), 2 * math.Pi * epsReal / lnba
}

// SeriesR: both conductors carry current, R = Rs·(1/a + 1/b)/2π.
func (co Coax) SeriesR(rs float64) float64 {
	return rs * (1/co.A + 1/co.B) / (2 * math.Pi)
}

// ShuntG: G = 2πωε''/ln(b/a).
func (co Coax) ShuntG(omega, epsLoss float64) float64 {
	return 2 * math.Pi * omega * epsLoss / co.logRatio()
}

func (co Coax) logRatio() float64 { return math.Log(co.B / co.A) }
