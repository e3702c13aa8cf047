// Package params implements declarative path and query parameter
// validation.
//
// Each route owns an explicit list of parameter descriptors (name,
// source, kind, required flag, default, constraint set). A single
// generic Resolve routine coerces raw string values to their declared
// types and applies the declared constraints, so per-field checks are
// never scattered through handler bodies.
//
// Failures are collected per field and surface through the errs
// package's standard field-error schema.
package params

import (
	"regexp"

	"github.com/Minwook11/echo-tutorial/internal/errs"
	"github.com/labstack/echo/v4"
)

// Source identifies where a parameter's raw value is read from.
type Source int

const (
	// SourcePath reads a named segment of the matched route template.
	// A path parameter always shadows a query parameter of the same
	// name: the query string is never consulted for SourcePath.
	SourcePath Source = iota

	// SourceQuery reads a key from the URL's query string.
	SourceQuery
)

// Kind is the semantic type a raw value is coerced to.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool

	// KindEnum is a string restricted to a closed value set. Values
	// outside the set are a client error, rejected before any handler
	// logic runs.
	KindEnum

	// KindRemainder captures the rest of the URL path, slashes
	// included, from a catch-all route segment.
	KindRemainder
)

// Param describes one parameter of a route.
//
// A Param with Required set has no default: its absence is a
// validation error. A Param with a non-nil Default yields that value
// when omitted. A Param with neither is optional-absent: omission
// propagates as absence (Values.Has reports false) rather than
// triggering an error.
type Param struct {
	Name   string
	Source Source
	Kind   Kind

	Required bool

	// Default must hold the coerced type for Kind (int for KindInt,
	// bool for KindBool, ...). nil means no default.
	Default any

	// Enum is the closed value set for KindEnum.
	Enum []string

	// Min and Max bound the numeric value for KindInt/KindFloat.
	Min *float64
	Max *float64

	// MinLen and MaxLen bound the length for string kinds.
	MinLen *int
	MaxLen *int

	// Pattern, when set, must match the raw string value.
	Pattern *regexp.Regexp
}

// Spec is the full parameter specification of one route.
type Spec []Param

// Ptr is a convenience for declaring constraint bounds inline:
//
//	Min: params.Ptr(0.0)
func Ptr[T any](v T) *T {
	return &v
}

// Values holds the coerced parameters of a request, keyed by name.
// Parameters that were omitted and have no default are not present.
type Values map[string]any

// Has reports whether the named parameter was supplied or defaulted.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// String returns the named parameter as a string, or "" when absent.
func (v Values) String(name string) string {
	s, _ := v[name].(string)
	return s
}

// Int returns the named parameter as an int, or 0 when absent.
func (v Values) Int(name string) int {
	i, _ := v[name].(int)
	return i
}

// Float returns the named parameter as a float64, or 0 when absent.
func (v Values) Float(name string) float64 {
	f, _ := v[name].(float64)
	return f
}

// Bool returns the named parameter as a bool, or false when absent.
func (v Values) Bool(name string) bool {
	b, _ := v[name].(bool)
	return b
}

// Resolve reads, coerces and validates every declared parameter of the
// request.
//
// All failures are collected before returning so the client sees the
// complete list of offending fields, not just the first one. The
// returned error is a *errs.HTTPError with status 400.
func (s Spec) Resolve(c echo.Context) (Values, error) {
	values := make(Values, len(s))

	var fieldErrors []errs.FieldError

	for _, p := range s {
		raw, present := p.lookup(c)

		if !present {
			if p.Required {
				fieldErrors = append(fieldErrors, errs.FieldError{
					Field: p.Name,
					Error: "is required",
				})
				continue
			}
			if p.Default != nil {
				values[p.Name] = p.Default
			}
			// No default: absence propagates as absence.
			continue
		}

		value, failure := p.coerce(raw)
		if failure == nil {
			failure = p.constrain(value, raw)
		}
		if failure != nil {
			fieldErrors = append(fieldErrors, failure.FieldError())
			continue
		}

		values[p.Name] = value
	}

	if fieldErrors != nil {
		return nil, errs.NewBadRequestError("Validation failed", true, nil, fieldErrors, nil)
	}

	return values, nil
}

// lookup fetches the raw value for the descriptor.
//
// Path parameters of a matched route are always present; query
// parameters are present only when the key appears in the query
// string (an empty value still counts as present).
func (p Param) lookup(c echo.Context) (string, bool) {
	switch p.Source {
	case SourcePath:
		if p.Kind == KindRemainder {
			return c.Param("*"), true
		}
		return c.Param(p.Name), true
	default:
		if !c.QueryParams().Has(p.Name) {
			return "", false
		}
		return c.QueryParam(p.Name), true
	}
}
