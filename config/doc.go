// SPDX-License-Identifier: MIT

// Package config reads the YAML description of a frequency sweep: which
// lines to build, over which grid, and where to write the result.
//
//	sweep:
//	  start: 1.0e+11      # Hz
//	  stop: 3.0e+12       # Hz
//	  points: 201
//	  scale: linear       # linear | log
//	output:
//	  path: loss.html
//	  format: html        # html | csv
//	  per: cm             # attenuation reported in dB per m | cm | mm
//	lines:
//	  - {name: coax, kind: coax, a: 1.0e-3, b: 4.0e-3, metal: Cu, dielectric: vac}
//	  - {name: twwg, kind: two-wire, s: 3.5e-3, a: 1.0e-3, metal: Cu, dielectric: vac}
//	  - {name: ppwg, kind: parallel-plate, s: 3.0e-3, t: 3.0e-3, metal: Cu, dielectric: vac}
//
// Empty scale/format/per/path fields take the defaults below. Structural
// rules are enforced with validator struct tags; geometry and material
// names are checked when the lines are built.
package config
