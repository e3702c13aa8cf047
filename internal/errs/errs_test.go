package errs

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
)

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Bad Request", want: "BAD_REQUEST"},
		{in: "Not Found", want: "NOT_FOUND"},
		{in: "Internal Server Error", want: "INTERNAL_SERVER_ERROR"},
		{in: "ok", want: "OK"},
	}

	for _, tt := range tests {
		if got := MakeUpperCaseWithUnderscores(tt.in); got != tt.want {
			t.Errorf("MakeUpperCaseWithUnderscores(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewBadRequestError(t *testing.T) {
	fieldErrors := []FieldError{{Field: "price", Error: "is required"}}

	err := NewBadRequestError("Validation failed", true, nil, fieldErrors, nil)

	if err.Status != http.StatusBadRequest || err.Code != "BAD_REQUEST" {
		t.Errorf("err = %+v", err)
	}
	if !err.Override {
		t.Error("override not carried")
	}
	if len(err.Errors) != 1 || err.Errors[0].Field != "price" {
		t.Errorf("errors = %+v", err.Errors)
	}

	customCode := "ITEM_INVALID"
	err = NewBadRequestError("nope", false, &customCode, nil, nil)
	if err.Code != "ITEM_INVALID" {
		t.Errorf("code = %q", err.Code)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("Route not found", false, nil)

	if err.Status != http.StatusNotFound || err.Code != "NOT_FOUND" {
		t.Errorf("err = %+v", err)
	}
	if err.Error() != "Route not found" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewInternalServerError(t *testing.T) {
	err := NewInternalServerError()

	if err.Status != http.StatusInternalServerError {
		t.Errorf("status = %d", err.Status)
	}
	// The message is the generic status text, never internals.
	if err.Message != http.StatusText(http.StatusInternalServerError) {
		t.Errorf("message = %q", err.Message)
	}
}

func TestHTTPErrorIs(t *testing.T) {
	err := NewBadRequestError("nope", false, nil, nil, nil)

	wrapped := errors.Wrap(err, "handler failed")

	var target *HTTPError
	if !errors.As(wrapped, &target) {
		t.Error("errors.As failed through wrapping")
	}
	if !errors.Is(wrapped, &HTTPError{}) {
		t.Error("errors.Is should match on type")
	}
}

func TestWithMessage(t *testing.T) {
	base := NewNotFoundError("original", true, nil)
	copied := base.WithMessage("replaced")

	if copied.Message != "replaced" {
		t.Errorf("message = %q", copied.Message)
	}
	if copied.Status != base.Status || copied.Code != base.Code || copied.Override != base.Override {
		t.Errorf("copy = %+v, want fields of %+v", copied, base)
	}
	if base.Message != "original" {
		t.Error("original mutated")
	}
}
