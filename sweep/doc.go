// SPDX-License-Identifier: MIT

// Package sweep evaluates one or more waveguide lines over a frequency grid.
//
// It is the batch layer on top of waveguide.Line: grid construction
// (Linspace, Logspace), concurrent evaluation of several lines with
// context cancellation (Run), and the Np → dB conversion used when
// reporting attenuation per centimeter or millimeter.
//
// Usage:
//
//	freqs, _ := sweep.Linspace(0.1e12, 3e12, 201)
//	series, err := sweep.Run(ctx, []sweep.Named{
//		{Name: "coax", Line: coax},
//		{Name: "twwg", Line: twwg},
//	}, freqs, sweep.WithParallelism(2))
//	dbPerCm := series[0].AttenuationDB(sweep.Centimeter)
package sweep
