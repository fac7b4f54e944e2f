// SPDX-License-Identifier: MIT

package materials

import (
	"errors"
	"fmt"
)

// ErrUnknownMaterial is the sentinel matched by every *UnknownMaterialError.
// Callers should branch with errors.Is(err, ErrUnknownMaterial).
var ErrUnknownMaterial = errors.New("materials: unknown material")

// UnknownMaterialError reports a name that matched no table entry, together
// with the lookup it was requested from ("Conductivity" or "Permittivity").
type UnknownMaterialError struct {
	Name string // name exactly as supplied by the caller
	Func string // lookup function that rejected it
}

// Error implements error.
func (e *UnknownMaterialError) Error() string {
	return fmt.Sprintf("materials: %s: material %q is not supported", e.Func, e.Name)
}

// Is reports whether target is ErrUnknownMaterial.
func (e *UnknownMaterialError) Is(target error) bool {
	return target == ErrUnknownMaterial
}
