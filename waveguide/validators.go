// SPDX-License-Identifier: MIT
// Package: txline/waveguide
//
// validators.go - geometry checks shared by every topology.
//
// Dimensions are validated with struct tags (go-playground/validator):
//   - "finite"       custom tag: rejects NaN and ±Inf,
//   - "gt=0"         strictly positive lengths,
//   - "gtfield=A"    coax outer radius above inner radius,
// plus one struct-level rule for the two-wire line (S > 2a), without which
// acosh(S/2a) has no real value.
//
// Only the first violation is reported; validation order follows field order.

package waveguide

import (
	"errors"
	"math"

	"github.com/go-playground/validator/v10"
)

const (
	tagFinite     = "finite"
	tagTwoWireGap = "twowire_gap"
)

// validate is safe for concurrent use once built.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation(tagFinite, isFinite); err != nil {
		panic("waveguide: register validation: " + err.Error())
	}
	v.RegisterStructValidation(twoWireGap, TwoWire{})

	return v
}

func isFinite(fl validator.FieldLevel) bool {
	f := fl.Field().Float()

	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// twoWireGap only fires once both dimensions passed their own tags.
func twoWireGap(sl validator.StructLevel) {
	tw := sl.Current().Interface().(TwoWire)
	if !(tw.A > 0 && tw.S > 0) || math.IsInf(tw.S, 0) || math.IsInf(tw.A, 0) {
		return
	}
	if !(tw.S > 2*tw.A) {
		sl.ReportError(tw.S, "S", "S", tagTwoWireGap, "")
	}
}

// checkGeometry runs the tag rules on topo and converts the first violation
// into an *InvalidGeometryError.
func checkGeometry(kind Kind, topo any) error {
	err := validate.Struct(topo)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]

		return &InvalidGeometryError{Kind: kind, Field: fe.Field(), Reason: describe(fe)}
	}

	return &InvalidGeometryError{Kind: kind, Reason: err.Error()}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case tagFinite:
		return "must be finite"
	case "gt":
		return "must be > " + fe.Param()
	case "gtfield":
		return "must be greater than " + fe.Param()
	case tagTwoWireGap:
		return "must exceed twice the conductor radius A"
	default:
		return "failed rule " + fe.Tag()
	}
}
