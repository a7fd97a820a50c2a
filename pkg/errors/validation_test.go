package errors

import (
	"math"
	"testing"
)

func TestValidateFinite(t *testing.T) {
	tests := []struct {
		name    string
		values  []float64
		wantErr bool
	}{
		{"empty", nil, false},
		{"single finite", []float64{1.5}, false},
		{"many finite", []float64{0, -2, 3e9}, false},
		{"NaN", []float64{math.NaN()}, true},
		{"+Inf in list", []float64{1, math.Inf(1)}, true},
		{"-Inf", []float64{math.Inf(-1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFinite("q", tt.values...)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateFinite(%v) error = %v, wantErr %v", tt.values, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidInput) {
				t.Errorf("ValidateFinite(%v) returned wrong error code: %v", tt.values, err)
			}
		})
	}
}

func TestValidateFiniteMessageNamesIndex(t *testing.T) {
	err := ValidateFinite("force_densities", 1, 2, math.NaN())
	if err == nil {
		t.Fatal("expected error")
	}
	if got := UserMessage(err); got != "force_densities[2] must be finite, got NaN" {
		t.Errorf("UserMessage() = %q", got)
	}
}

func TestValidateTolerance(t *testing.T) {
	tests := []struct {
		tol     float64
		wantErr bool
	}{
		{1e-3, false},
		{10, false},
		{0, true},
		{-1e-3, true},
		{math.NaN(), true},
		{math.Inf(1), true},
	}

	for _, tt := range tests {
		err := ValidateTolerance(tt.tol)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateTolerance(%v) error = %v, wantErr %v", tt.tol, err, tt.wantErr)
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid simple", "out.svg", false},
		{"valid nested", "results/grid/out.json", false},
		{"valid absolute", "/tmp/out.obj", false},

		{"empty", "", true},
		{"too long", string(make([]byte, 5000)), true},
		{"null byte", "foo\x00bar", true},
		{"control char", "foo\x01bar", true},
		{"newline", "foo\nbar", true},
		{"directory", "results/", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateOutputPath(%q) returned wrong error code: %v", tt.input, err)
			}
		})
	}
}

func TestErrorCodesAreUnique(t *testing.T) {
	codes := []Code{
		ErrCodeMissingInput,
		ErrCodeInputMismatch,
		ErrCodeInvalidInput,
		ErrCodeInvalidProblem,
		ErrCodeInvalidFormat,
		ErrCodeInvalidPath,
		ErrCodeSingularSystem,
		ErrCodeNotFound,
		ErrCodeFileNotFound,
		ErrCodeInternal,
		ErrCodeUnsupported,
	}

	seen := make(map[Code]bool)
	for _, code := range codes {
		if seen[code] {
			t.Errorf("Duplicate error code: %s", code)
		}
		seen[code] = true
	}
}
