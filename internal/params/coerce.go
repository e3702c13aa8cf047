package params

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Minwook11/echo-tutorial/internal/errs"
)

// Failure is a structured validation failure for a single parameter.
// It names the offending field, the constraint that was violated, and
// the raw input that triggered it.
type Failure struct {
	Field      string
	Constraint string
	Raw        string
}

// Error satisfies the error interface.
func (f *Failure) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", f.Field, f.Constraint, f.Raw)
}

// FieldError converts the failure into the API's field-error schema.
func (f *Failure) FieldError() errs.FieldError {
	return errs.FieldError{
		Field: f.Field,
		Error: fmt.Sprintf("%s (got %q)", f.Constraint, f.Raw),
	}
}

// ParseInt coerces a raw string to an int. It is total: every input
// maps to either a value or a Failure, never a panic.
func ParseInt(name, raw string) (int, *Failure) {
	i, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &Failure{Field: name, Constraint: "must be an integer", Raw: raw}
	}
	return i, nil
}

// ParseFloat coerces a raw string to a float64.
func ParseFloat(name, raw string) (float64, *Failure) {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &Failure{Field: name, Constraint: "must be a number", Raw: raw}
	}
	return f, nil
}

// ParseBool coerces a raw string to a bool.
//
// Accepted literals, case-insensitively: true, false, 1, 0, yes, no,
// on, off. This set is wider than strconv.ParseBool's, which is why
// it is spelled out here.
func ParseBool(name, raw string) (bool, *Failure) {
	switch strings.ToLower(raw) {
	case "true", "1", "yes", "on":
		return true, nil
	case "false", "0", "no", "off":
		return false, nil
	}
	return false, &Failure{Field: name, Constraint: "must be a boolean", Raw: raw}
}

// ParseEnum checks closed-set membership. The raw value is returned
// unchanged on success; anything outside the set is a client error.
func ParseEnum(name, raw string, allowed []string) (string, *Failure) {
	for _, a := range allowed {
		if raw == a {
			return raw, nil
		}
	}
	return "", &Failure{
		Field:      name,
		Constraint: "must be one of: " + strings.Join(allowed, ", "),
		Raw:        raw,
	}
}

// coerce maps the raw string to the descriptor's declared type.
func (p Param) coerce(raw string) (any, *Failure) {
	switch p.Kind {
	case KindInt:
		return firstAny(ParseInt(p.Name, raw))
	case KindFloat:
		return firstAny(ParseFloat(p.Name, raw))
	case KindBool:
		return firstAny(ParseBool(p.Name, raw))
	case KindEnum:
		return firstAny(ParseEnum(p.Name, raw, p.Enum))
	default:
		// KindString and KindRemainder pass through.
		return raw, nil
	}
}

func firstAny[T any](v T, f *Failure) (any, *Failure) {
	if f != nil {
		return nil, f
	}
	return v, nil
}

// constrain applies the descriptor's declared bounds to an already
// coerced value.
func (p Param) constrain(value any, raw string) *Failure {
	switch v := value.(type) {
	case int:
		return p.constrainNumber(float64(v), raw)
	case float64:
		return p.constrainNumber(v, raw)
	case string:
		return p.constrainString(v, raw)
	}
	return nil
}

func (p Param) constrainNumber(v float64, raw string) *Failure {
	if p.Min != nil && v < *p.Min {
		return &Failure{
			Field:      p.Name,
			Constraint: fmt.Sprintf("must be at least %v", *p.Min),
			Raw:        raw,
		}
	}
	if p.Max != nil && v > *p.Max {
		return &Failure{
			Field:      p.Name,
			Constraint: fmt.Sprintf("must not exceed %v", *p.Max),
			Raw:        raw,
		}
	}
	return nil
}

func (p Param) constrainString(v, raw string) *Failure {
	if p.MinLen != nil && len(v) < *p.MinLen {
		return &Failure{
			Field:      p.Name,
			Constraint: fmt.Sprintf("must be at least %d characters", *p.MinLen),
			Raw:        raw,
		}
	}
	if p.MaxLen != nil && len(v) > *p.MaxLen {
		return &Failure{
			Field:      p.Name,
			Constraint: fmt.Sprintf("must not exceed %d characters", *p.MaxLen),
			Raw:        raw,
		}
	}
	if p.Pattern != nil && !p.Pattern.MatchString(v) {
		return &Failure{
			Field:      p.Name,
			Constraint: "must match pattern " + p.Pattern.String(),
			Raw:        raw,
		}
	}
	return nil
}
