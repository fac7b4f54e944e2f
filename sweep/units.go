// SPDX-License-Identifier: MIT

package sweep

import (
	"fmt"
	"strings"
)

// NepersToDB converts an attenuation in Np to dB (20·log10(e), rounded the
// way microwave texts quote it).
const NepersToDB = 8.686

// ToDB converts nepers to decibels.
func ToDB(np float64) float64 { return np * NepersToDB }

// LengthUnit is a reporting length expressed in meters.
type LengthUnit float64

// Supported reporting lengths.
const (
	Meter      LengthUnit = 1
	Centimeter LengthUnit = 1e-2
	Millimeter LengthUnit = 1e-3
)

// String returns the unit symbol.
func (u LengthUnit) String() string {
	switch u {
	case Meter:
		return "m"
	case Centimeter:
		return "cm"
	case Millimeter:
		return "mm"
	default:
		return fmt.Sprintf("%gm", float64(u))
	}
}

// ParseLengthUnit accepts "m", "cm" and "mm" (case-insensitive).
func ParseLengthUnit(text string) (LengthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "m":
		return Meter, nil
	case "cm":
		return Centimeter, nil
	case "mm":
		return Millimeter, nil
	default:
		return 0, fmt.Errorf("sweep: invalid length unit: %q", text)
	}
}

// PerUnit rescales a per-meter quantity to a per-u quantity.
func (u LengthUnit) PerUnit(perMeter float64) float64 {
	return perMeter * float64(u)
}
