// Package txline computes closed-form transmission-line parameters for
// two-conductor TEM lines: characteristic impedance, propagation constant,
// attenuation and phase constant versus frequency.
//
// 🚀 What is inside?
//
//	materials/  - conductivity and complex permittivity lookup (Pozar tables)
//	waveguide/  - Coax, TwoWire and ParallelPlate models over one RLGC core
//	sweep/      - frequency grids, concurrent evaluation, Np → dB conversion
//	config/     - YAML sweep descriptions
//	report/     - HTML chart (go-echarts) and CSV output
//	cmd/txsweep - command-line sweep runner
//
// ✨ Model:
//
//	Every line reduces to per-unit-length R, L, G, C:
//	  L, C   static, from geometry and ε'
//	  R      skin effect, Rs = √(ωμ/2σ)
//	  G      dielectric loss, from ε''
//	  Z₀ = √((R+jωL)/(G+jωC))   γ = √((R+jωL)(G+jωC)) = α + jβ
//
// Not modeled: dispersive materials, non-canonical cross sections and
// higher-order modes.
//
//	go get github.com/katalvlaran/txline
package txline
