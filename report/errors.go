// SPDX-License-Identifier: MIT

package report

import "errors"

var (
	// ErrNoSeries indicates Write was called without any series.
	ErrNoSeries = errors.New("report: no series to write")
	// ErrUnsupportedFormat indicates an unknown Format value or name.
	ErrUnsupportedFormat = errors.New("report: unsupported format")
	// ErrGridMismatch indicates series sampled on different frequency grids
	// where a shared axis is required.
	ErrGridMismatch = errors.New("report: series frequency grids differ")
)
