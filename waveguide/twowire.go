// SPDX-License-Identifier: MIT

package waveguide

import "math"

// TwoWire is a balanced pair of round wires of radius A whose centers are
// S apart (meters). Requires S > 2A.
type TwoWire struct {
	S float64 `validate:"finite,gt=0"`
	A float64 `validate:"finite,gt=0"`
}

// Kind implements Topology.
func (TwoWire) Kind() Kind { return KindTwoWire }

// Validate requires finite S, A > 0 and S > 2A.
func (w TwoWire) Validate() error { return checkGeometry(KindTwoWire, w) }

// StaticLC: L = μ·acosh(S/2a)/π, C = πε'/acosh(S/2a).
func (w TwoWire) StaticLC(mu, epsReal float64) (l, c float64) {
	x := w.spacing()

	return mu * x / math.Pi, math.Pi * epsReal / x
}

// SeriesR: R = Rs/(πa).
func (w TwoWire) SeriesR(rs float64) float64 {
	return rs / (math.Pi * w.A)
}

// ShuntG: G = πωε''/acosh(S/2a).
func (w TwoWire) ShuntG(omega, epsLoss float64) float64 {
	return math.Pi * omega * epsLoss / w.spacing()
}

// spacing is the geometric factor acosh(S/2a); used by L, C and G alike.
func (w TwoWire) spacing() float64 { return math.Acosh(w.S / (2 * w.A)) }
