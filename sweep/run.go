// SPDX-License-Identifier: MIT

package sweep

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/txline/waveguide"
)

// Named pairs a line with the label it is reported under.
type Named struct {
	Name string
	Line *waveguide.Line
}

// Series is one line evaluated over a grid. Every slice has len(Freq)
// elements and element i belongs to Freq[i].
type Series struct {
	Name  string
	Kind  waveguide.Kind
	Freq  []float64    // Hz
	Z0    []complex128 // Ω
	Gamma []complex128 // 1/m
	Alpha []float64    // Np/m
	Beta  []float64    // rad/m
}

// Len returns the number of grid points.
func (s Series) Len() int { return len(s.Freq) }

// AttenuationDB returns α in dB per unit length.
func (s Series) AttenuationDB(unit LengthUnit) []float64 {
	out := make([]float64, len(s.Alpha))
	for i, a := range s.Alpha {
		out[i] = unit.PerUnit(ToDB(a))
	}

	return out
}

// Evaluate computes one Series. The grid is copied, so callers may reuse freqs.
func Evaluate(name string, ln *waveguide.Line, freqs []float64) Series {
	s := Series{
		Name:  name,
		Kind:  ln.Kind(),
		Freq:  append([]float64(nil), freqs...),
		Z0:    ln.ImpedanceSweep(freqs),
		Gamma: ln.PropagationConstantSweep(freqs),
		Alpha: make([]float64, len(freqs)),
		Beta:  make([]float64, len(freqs)),
	}
	if s.Freq == nil {
		s.Freq = []float64{}
	}
	for i, g := range s.Gamma {
		s.Alpha[i], s.Beta[i] = real(g), imag(g)
	}

	return s
}

// Run evaluates every line over freqs concurrently and returns the series
// in the order of lines. It stops early when ctx is cancelled.
//
// Errors: ErrNoLines, ErrEmptyGrid, ErrNilLine (wrapped with the entry
// index), or ctx.Err().
func Run(ctx context.Context, lines []Named, freqs []float64, opts ...Option) ([]Series, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if len(freqs) == 0 {
		return nil, ErrEmptyGrid
	}
	for i, n := range lines {
		if n.Line == nil {
			return nil, fmt.Errorf("line %d (%q): %w", i, n.Name, ErrNilLine)
		}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]Series, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.parallelism)
	for i, n := range lines {
		i, n := i, n
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = Evaluate(n.Name, n.Line, freqs)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
