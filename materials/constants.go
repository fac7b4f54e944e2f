// SPDX-License-Identifier: MIT

package materials

// Physical constants (CODATA 2018, SI units).
const (
	// Epsilon0 is the vacuum permittivity ε₀ in F/m.
	Epsilon0 = 8.8541878128e-12

	// Mu0 is the vacuum permeability μ₀ in H/m.
	Mu0 = 1.25663706212e-6

	// PerfectConductor is the conductivity used to idealize a lossless metal.
	PerfectConductor = 1e30
)
