// SPDX-License-Identifier: MIT

package sweep

import "errors"

var (
	// ErrBadPoints indicates a grid with fewer than one point.
	ErrBadPoints = errors.New("sweep: number of points must be >= 1")
	// ErrBadRange indicates non-finite bounds, or non-positive bounds for a log grid.
	ErrBadRange = errors.New("sweep: invalid frequency range")
	// ErrNoLines indicates Run was called without any line.
	ErrNoLines = errors.New("sweep: at least one line is required")
	// ErrNilLine indicates a Named entry without a line.
	ErrNilLine = errors.New("sweep: line is nil")
	// ErrEmptyGrid indicates Run was called with no frequencies.
	ErrEmptyGrid = errors.New("sweep: frequency grid is empty")
)
