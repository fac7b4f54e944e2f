// SPDX-License-Identifier: MIT

package waveguide

// ParallelPlate is a pair of plates of width T separated by S (meters).
// Fringing fields are ignored, so the model is accurate for T ≫ S.
type ParallelPlate struct {
	S float64 `validate:"finite,gt=0"`
	T float64 `validate:"finite,gt=0"`
}

// Kind implements Topology.
func (ParallelPlate) Kind() Kind { return KindParallelPlate }

// Validate requires finite S, T > 0.
func (p ParallelPlate) Validate() error { return checkGeometry(KindParallelPlate, p) }

// StaticLC: L = μS/T, C = ε'T/S.
func (p ParallelPlate) StaticLC(mu, epsReal float64) (l, c float64) {
	return mu * p.S / p.T, epsReal * p.T / p.S
}

// SeriesR: two plates, R = 2Rs/T.
func (p ParallelPlate) SeriesR(rs float64) float64 {
	return 2 * rs / p.T
}

// ShuntG: G = ωε''T/S.
func (p ParallelPlate) ShuntG(omega, epsLoss float64) float64 {
	return omega * epsLoss * p.T / p.S
}
