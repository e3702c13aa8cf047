// Package validation contains the logic for validating request data.
//
// It uses the `validator` library to enforce rules (like required
// fields or length limits) defined in struct tags and extracts
// validation errors into a format the client can understand.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Minwook11/echo-tutorial/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
//
// Typical pattern:
//   - Define a request struct with validator tags (`validate:"required,max=64"`)
//   - Implement Validate() error that runs validator.Struct(req)
//   - Return validator.ValidationErrors (or CustomValidationErrors for
//     rules that tags cannot express)
type Validatable interface {
	Validate() error
}

// CustomValidationError represents a single validation issue for a
// specific field, used for rules that cannot be expressed via tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the request struct from the body.
//  2. payload.Validate() applies the declared rules.
//  3. Returns *errs.HTTPError (400) with field-level errors on failure.
//
// payload must be a pointer so Bind can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		// Echo's bind error wraps the decode failure; surface only the
		// message part to the client.
		message := err.Error()
		if parts := strings.SplitN(message, "message=", 2); len(parts) == 2 {
			message = strings.SplitN(parts[1], ", internal=", 2)[0]
		}
		return errs.NewBadRequestError(message, false, nil, nil, nil)
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// validateStruct calls v.Validate() and extracts field errors if
// validation fails.
func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}

func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		customValidationErrors, isCustom := err.(CustomValidationErrors)
		if !isCustom {
			// Not a field-level error; report it as a single message.
			return err.Error(), []errs.FieldError{{Field: "", Error: err.Error()}}
		}
		for _, cerr := range customValidationErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: cerr.Field,
				Error: cerr.Message,
			})
		}
	}

	for _, ferr := range validationErrors {
		field := strings.ToLower(ferr.Field())
		var msg string

		switch ferr.Tag() {
		case "required":
			msg = "is required"

		case "min":
			// For strings min is a length; for numbers a value.
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", ferr.Param())
			}

		case "max":
			if ferr.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", ferr.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", ferr.Param())
			}

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", ferr.Param())

		case "oneof":
			msg = fmt.Sprintf("must be one of: %s", ferr.Param())

		case "url":
			msg = "must be a valid URL"

		case "unique":
			msg = "must not contain duplicates"

		case "dive":
			msg = "some items are invalid"

		default:
			if ferr.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, ferr.Tag(), ferr.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, ferr.Tag())
			}
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	return "Validation failed", fieldErrors
}
