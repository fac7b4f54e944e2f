// SPDX-License-Identifier: MIT

package waveguide

// The *Sweep variants evaluate a query over an ordered frequency grid.
// The result always has len(freqs) elements, result[i] belonging to
// freqs[i]; nil or empty input yields an empty, non-nil slice.

// ImpedanceSweep is Impedance applied element-wise.
func (ln *Line) ImpedanceSweep(freqs []float64) []complex128 {
	return mapFreqs(freqs, ln.Impedance)
}

// PropagationConstantSweep is PropagationConstant applied element-wise.
func (ln *Line) PropagationConstantSweep(freqs []float64) []complex128 {
	return mapFreqs(freqs, ln.PropagationConstant)
}

// AttenuationSweep is Attenuation applied element-wise.
func (ln *Line) AttenuationSweep(freqs []float64) []float64 {
	return mapFreqs(freqs, ln.Attenuation)
}

// PhaseConstantSweep is PhaseConstant applied element-wise.
func (ln *Line) PhaseConstantSweep(freqs []float64) []float64 {
	return mapFreqs(freqs, ln.PhaseConstant)
}

// RLGCSweep is RLGC applied element-wise.
func (ln *Line) RLGCSweep(freqs []float64) []RLGC {
	return mapFreqs(freqs, ln.RLGC)
}

func mapFreqs[T any](freqs []float64, fn func(float64) T) []T {
	out := make([]T, len(freqs))
	for i, f := range freqs {
		out[i] = fn(f)
	}

	return out
}
