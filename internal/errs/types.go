// Package errs defines custom error types and utilities.
//
// Its purpose is to create specific error structures (FieldError for
// per-field validation failures, HTTPError for API responses) so the
// client receives meaningful, actionable, and consistent error
// messages.
package errs

import "strings"

// FieldError represents a field-level validation error.
// Example:
//
//	{ "field": "price", "error": "is required" }
type FieldError struct {
	// Field is the field name the error relates to (e.g. "price").
	Field string `json:"field"`

	// Error is the human-readable error message.
	Error string `json:"error"`
}

// ActionType is a string-based enum describing what the client should do.
type ActionType string

const (
	// ActionTypeRedirect tells the client it should redirect somewhere.
	// Value holds the target URL or route.
	ActionTypeRedirect ActionType = "redirect"
)

// Action describes an optional "what the client should do next"
// instruction attached to an error response.
type Action struct {
	Type    ActionType `json:"type"`
	Message string     `json:"message"`
	Value   string     `json:"value"`
}

// HTTPError is the main custom error type for API responses.
//
// It implements the error interface and is designed to be serialized
// directly to JSON.
type HTTPError struct {
	// Code is a machine-friendly error code (e.g. "BAD_REQUEST").
	Code string `json:"code"`

	// Message is the human-friendly message.
	Message string `json:"message"`

	// Status is the HTTP status code.
	Status int `json:"status"`

	// Override lets middleware decide whether the message may be
	// replaced before reaching the client.
	Override bool `json:"override"`

	// Errors holds field-level validation errors.
	Errors []FieldError `json:"errors"`

	// Action is an optional client instruction (redirect, etc.).
	Action *Action `json:"action"`
}

// Error makes *HTTPError satisfy the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also a *HTTPError, so
// errors.Is(err, &HTTPError{}) matches on type rather than value.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:     e.Code,
		Message:  message,
		Status:   e.Status,
		Override: e.Override,
		Errors:   e.Errors,
		Action:   e.Action,
	}
}

// MakeUpperCaseWithUnderscores converts a string into
// UPPER_CASE_WITH_UNDERSCORES format, e.g. "Bad Request" -> "BAD_REQUEST".
// Used to create stable machine-readable error codes from HTTP status text.
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
