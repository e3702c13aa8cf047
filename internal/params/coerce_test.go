package params

import (
	"strconv"
	"testing"
)

func TestParseBool(t *testing.T) {
	tests := []struct {
		raw     string
		want    bool
		wantErr bool
	}{
		{raw: "true", want: true},
		{raw: "TRUE", want: true},
		{raw: "True", want: true},
		{raw: "1", want: true},
		{raw: "yes", want: true},
		{raw: "YES", want: true},
		{raw: "on", want: true},
		{raw: "On", want: true},
		{raw: "false", want: false},
		{raw: "FALSE", want: false},
		{raw: "0", want: false},
		{raw: "no", want: false},
		{raw: "off", want: false},
		{raw: "OFF", want: false},
		{raw: "2", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "maybe", wantErr: true},
		{raw: "truee", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, failure := ParseBool("short", tt.raw)

			if tt.wantErr {
				if failure == nil {
					t.Fatalf("ParseBool(%q) = %v, want failure", tt.raw, got)
				}
				if failure.Field != "short" || failure.Raw != tt.raw {
					t.Errorf("failure = %+v, want field %q raw %q", failure, "short", tt.raw)
				}
				return
			}

			if failure != nil {
				t.Fatalf("ParseBool(%q) failed: %v", tt.raw, failure)
			}
			if got != tt.want {
				t.Errorf("ParseBool(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		raw     string
		want    int
		wantErr bool
	}{
		{raw: "0", want: 0},
		{raw: "42", want: 42},
		{raw: "-7", want: -7},
		{raw: "3.5", wantErr: true},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, failure := ParseInt("item_id", tt.raw)

			if tt.wantErr {
				if failure == nil {
					t.Fatalf("ParseInt(%q) = %d, want failure", tt.raw, got)
				}
				return
			}

			if failure != nil {
				t.Fatalf("ParseInt(%q) failed: %v", tt.raw, failure)
			}
			if got != tt.want {
				t.Errorf("ParseInt(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseFloat(t *testing.T) {
	if got, failure := ParseFloat("price", "35.4"); failure != nil || got != 35.4 {
		t.Errorf("ParseFloat(\"35.4\") = %v, %v", got, failure)
	}
	if _, failure := ParseFloat("price", "cheap"); failure == nil {
		t.Error("ParseFloat(\"cheap\") should fail")
	}
}

func TestParseEnum(t *testing.T) {
	allowed := []string{"alexnet", "resnet", "lenet"}

	for _, name := range allowed {
		got, failure := ParseEnum("model_name", name, allowed)
		if failure != nil || got != name {
			t.Errorf("ParseEnum(%q) = %q, %v", name, got, failure)
		}
	}

	_, failure := ParseEnum("model_name", "vgg", allowed)
	if failure == nil {
		t.Fatal("ParseEnum(\"vgg\") should fail")
	}
	if failure.Constraint != "must be one of: alexnet, resnet, lenet" {
		t.Errorf("constraint = %q", failure.Constraint)
	}
	if failure.Raw != "vgg" {
		t.Errorf("raw = %q, want %q", failure.Raw, "vgg")
	}
}

// Re-validating an already coerced value must yield the same value.
func TestCoercionIdempotent(t *testing.T) {
	i, failure := ParseInt("n", "42")
	if failure != nil {
		t.Fatal(failure)
	}
	i2, failure := ParseInt("n", strconv.Itoa(i))
	if failure != nil || i2 != i {
		t.Errorf("re-coerced int = %d, %v, want %d", i2, failure, i)
	}

	f, failure := ParseFloat("x", "35.4")
	if failure != nil {
		t.Fatal(failure)
	}
	f2, failure := ParseFloat("x", strconv.FormatFloat(f, 'f', -1, 64))
	if failure != nil || f2 != f {
		t.Errorf("re-coerced float = %v, %v, want %v", f2, failure, f)
	}

	b, failure := ParseBool("b", "on")
	if failure != nil {
		t.Fatal(failure)
	}
	b2, failure := ParseBool("b", strconv.FormatBool(b))
	if failure != nil || b2 != b {
		t.Errorf("re-coerced bool = %v, %v, want %v", b2, failure, b)
	}

	e, failure := ParseEnum("m", "lenet", []string{"alexnet", "resnet", "lenet"})
	if failure != nil {
		t.Fatal(failure)
	}
	e2, failure := ParseEnum("m", e, []string{"alexnet", "resnet", "lenet"})
	if failure != nil || e2 != e {
		t.Errorf("re-coerced enum = %q, %v, want %q", e2, failure, e)
	}
}

func TestFailureError(t *testing.T) {
	f := &Failure{Field: "item_id", Constraint: "must be an integer", Raw: "abc"}

	if got := f.Error(); got != `item_id: must be an integer (got "abc")` {
		t.Errorf("Error() = %q", got)
	}

	fe := f.FieldError()
	if fe.Field != "item_id" {
		t.Errorf("FieldError().Field = %q", fe.Field)
	}
	if fe.Error != `must be an integer (got "abc")` {
		t.Errorf("FieldError().Error = %q", fe.Error)
	}
}
