// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"math"
)

// Linspace returns n evenly spaced frequencies from start to stop inclusive.
// n == 1 yields [start]. Both endpoints are reproduced exactly.
//
// Errors: ErrBadPoints if n < 1; ErrBadRange if a bound is NaN or ±Inf.
// Complexity: O(n).
func Linspace(start, stop float64, n int) ([]float64, error) {
	if err := checkGrid(start, stop, n); err != nil {
		return nil, err
	}
	out := make([]float64, n)
	out[0] = start
	if n == 1 {
		return out, nil
	}
	step := (stop - start) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop

	return out, nil
}

// Logspace returns n geometrically spaced frequencies from start to stop
// inclusive. Both bounds must be > 0.
//
// Errors: ErrBadPoints if n < 1; ErrBadRange if a bound is non-finite or ≤ 0.
// Complexity: O(n).
func Logspace(start, stop float64, n int) ([]float64, error) {
	if err := checkGrid(start, stop, n); err != nil {
		return nil, err
	}
	if start <= 0 || stop <= 0 {
		return nil, fmt.Errorf("Logspace: bounds must be > 0, got [%g, %g]: %w", start, stop, ErrBadRange)
	}
	out := make([]float64, n)
	out[0] = start
	if n == 1 {
		return out, nil
	}
	lo, hi := math.Log(start), math.Log(stop)
	step := (hi - lo) / float64(n-1)
	for i := 1; i < n-1; i++ {
		out[i] = math.Exp(lo + float64(i)*step)
	}
	out[n-1] = stop

	return out, nil
}

func checkGrid(start, stop float64, n int) error {
	if n < 1 {
		return fmt.Errorf("got %d: %w", n, ErrBadPoints)
	}
	for _, v := range [...]float64{start, stop} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("bound %g: %w", v, ErrBadRange)
		}
	}

	return nil
}
