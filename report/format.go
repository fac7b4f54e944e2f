// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"
)

// Format selects the report encoding.
type Format int8

const (
	// HTML is an interactive go-echarts line chart.
	HTML Format = iota
	// CSV is one row per (line, frequency).
	CSV
)

// ParseFormat maps "html" and "csv" (case-insensitive) to a Format.
func ParseFormat(text string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "html":
		return HTML, nil
	case "csv":
		return CSV, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, text)
	}
}

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case HTML:
		return "html"
	case CSV:
		return "csv"
	default:
		return fmt.Sprintf("Format(%d)", int8(f))
	}
}
