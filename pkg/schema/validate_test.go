package schema

import (
	"errors"
	"testing"
)

func TestValidate(t *testing.T) {
	sig := Signature{
		{Name: "x", Type: Number()},
		{Name: "y", Type: Number()},
		{Name: "label", Type: String(), Optional: true},
	}

	tests := []struct {
		name      string
		args      []any
		wantErr   bool
		wantCount int
	}{
		{"all args", []any{1, 2, "a"}, false, 0},
		{"optional omitted", []any{1, 2}, false, 0},
		{"missing required", []any{1}, true, 1},
		{"no args", nil, true, 2},
		{"wrong type", []any{1, "two"}, true, 1},
		{"too many", []any{1, 2, "a", 4}, true, 1},
		{"wrong type and too many", []any{"1", 2, "a", 4}, true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(sig, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got := len(ValidationErrors(err)); got != tt.wantCount {
				t.Errorf("got %d errors, want %d: %v", got, tt.wantCount, err)
			}
		})
	}
}

func TestValidate_Variadic(t *testing.T) {
	required := Signature{
		{Name: "first", Type: String()},
		{Name: "rest", Type: Number(), Variadic: true},
	}
	optional := Signature{
		{Name: "first", Type: String()},
		{Name: "rest", Type: Number(), Variadic: true, Optional: true},
	}

	tests := []struct {
		name      string
		sig       Signature
		args      []any
		wantCount int
	}{
		{"required variadic with numbers", required, []any{"a", 1, 2, 3}, 0},
		{"required variadic with one number", required, []any{"a", 1}, 0},
		{"required variadic with no extra args", required, []any{"a"}, 1},
		{"optional variadic with no extra args", optional, []any{"a"}, 0},
		{"non-number variadic arg", required, []any{"a", 1, "x", 3}, 1},
		{"two bad variadic args", optional, []any{"a", "x", "y"}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.sig, tt.args)
			if got := len(ValidationErrors(err)); got != tt.wantCount {
				t.Errorf("got %d errors, want %d: %v", got, tt.wantCount, err)
			}
		})
	}

	var verr *ValidationError
	if !errors.As(Validate(required, []any{"a"}), &verr) {
		t.Fatal("expected a *ValidationError for missing variadic arg")
	}
	if verr.Key != "rest" || verr.Reason != "required" {
		t.Errorf("got %q %q, want rest required", verr.Key, verr.Reason)
	}
}

func TestValidate_UntypedField(t *testing.T) {
	sig := Signature{{Name: "anything"}}
	if err := Validate(sig, []any{struct{}{}}); err != nil {
		t.Errorf("untyped field rejected value: %v", err)
	}
}

func TestValidationError_Messages(t *testing.T) {
	err := Validate(Signature{{Name: "x", Type: Number()}}, []any{"nope"})

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError in %v", err)
	}
	if verr.Key != "x" {
		t.Errorf("Key = %q, want x", verr.Key)
	}
	want := `argument "x": expected Number, got string`
	if verr.Error() != want {
		t.Errorf("Error() = %q, want %q", verr.Error(), want)
	}

	err = Validate(Signature{{Name: "x", Type: Number()}}, nil)
	if !errors.As(err, &verr) || verr.Reason != "required" {
		t.Errorf("expected required error, got %v", err)
	}

	var arity *ArityError
	err = Validate(Signature{}, []any{1})
	if !errors.As(err, &arity) || arity.Got != 1 || arity.Max != 0 {
		t.Errorf("expected arity error, got %v", err)
	}
}

func TestAggregateError_Format(t *testing.T) {
	err := &AggregateError{Errors: []error{errors.New("a"), errors.New("b")}}
	want := "2 validation errors:\n  1. a\n  2. b\n"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if ValidationErrors(errors.New("plain")) != nil {
		t.Error("ValidationErrors should be nil for non-aggregate errors")
	}
}
