// SPDX-License-Identifier: MIT

// Package report renders sweep results: an interactive HTML line chart of
// attenuation versus frequency, or a flat CSV table.
package report

import (
	"fmt"
	"io"

	"github.com/katalvlaran/txline/sweep"
)

// Options controls labelling. The zero value reports dB/m with a generic title.
type Options struct {
	Title string
	Unit  sweep.LengthUnit
}

func (o Options) unit() sweep.LengthUnit {
	if o.Unit == 0 {
		return sweep.Meter
	}

	return o.Unit
}

// Write encodes series to w in the given format.
func Write(w io.Writer, format Format, series []sweep.Series, o Options) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	switch format {
	case HTML:
		return writeHTML(w, series, o)
	case CSV:
		return writeCSV(w, series, o)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}
