// SPDX-License-Identifier: MIT

// Package waveguide models two-conductor TEM lines in closed form: coaxial,
// two-wire and parallel-plate. Each model reduces geometry and materials to
// the distributed R, L, G, C of the telegrapher's equations and derives the
// characteristic impedance and propagation constant from them.
//
// 🚀 How does it work?
//
//	Construction (once):
//	  σ  ← materials.Conductivity(metal)
//	  ε  ← materials.Permittivity(dielectric)      (ε = ε' − jε'')
//	  μ  = μ₀                                       (μᵣ = 1)
//	  L, C from geometry and ε' only               (frequency independent)
//
//	Query at frequency f (ω = 2πf):
//	  Rs = √(ωμ / 2σ)                               skin-effect surface resistance
//	  R  = topology.SeriesR(Rs)
//	  G  = topology.ShuntG(ω, ε'')
//	  Z₀ = √((R + jωL) / (G + jωC))
//	  γ  = √((R + jωL) · (G + jωC)) = α + jβ
//
// ✨ Topologies:
//
//	Coax{A, B}           L = μ·ln(b/a)/2π     C = 2πε'/ln(b/a)     R = Rs(1/a+1/b)/2π   G = 2πωε''/ln(b/a)
//	TwoWire{S, A}        L = μ·acosh(S/2a)/π  C = πε'/acosh(S/2a)  R = Rs/πa            G = πωε''/acosh(S/2a)
//	ParallelPlate{S, T}  L = μS/T             C = ε'T/S            R = 2Rs/T            G = ωε''T/S
//
// ⚙️ Usage:
//
//	coax, err := waveguide.NewCoax(1e-3, 4e-3, "Cu", "vac")
//	if err != nil { ... }
//	z0 := coax.Impedance(1e9)                  // complex128, Ω
//	alpha := coax.AttenuationSweep(freqs)      // []float64, Np/m, same order as freqs
//
// A *Line is immutable after construction; it can be shared between
// goroutines without locking. The skin-effect model is not valid near DC,
// and f = 0 yields NaN: choosing a sensible band is the caller's job.
//
// Errors:
//   - ErrInvalidGeometry (via *InvalidGeometryError) for non-positive, non-finite
//     or inconsistent dimensions (coax b ≤ a, two-wire S ≤ 2a).
//   - materials.ErrUnknownMaterial for unknown metal/dielectric names.
package waveguide
