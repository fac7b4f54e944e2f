// SPDX-License-Identifier: MIT

package waveguide

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is matched by every *InvalidGeometryError.
var ErrInvalidGeometry = errors.New("waveguide: invalid geometry")

// InvalidGeometryError describes which dimension of which topology was rejected.
type InvalidGeometryError struct {
	Kind   Kind   // topology being built
	Field  string // offending dimension ("A", "B", "S", "T"); empty if not field-specific
	Reason string // human readable constraint
}

// Error implements error.
func (e *InvalidGeometryError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("waveguide: invalid %s geometry: %s", e.Kind, e.Reason)
	}

	return fmt.Sprintf("waveguide: invalid %s geometry: %s %s", e.Kind, e.Field, e.Reason)
}

// Is reports whether target is ErrInvalidGeometry.
func (e *InvalidGeometryError) Is(target error) bool {
	return target == ErrInvalidGeometry
}
