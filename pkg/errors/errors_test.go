package errors

import (
	"errors"
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeSingularSystem, cause, "failed to factorize")

	if err.Code != ErrCodeSingularSystem {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeSingularSystem)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeSingularSystem,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeSingularSystem, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeSingularSystem,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInputMismatch, "test"),
			expected: ErrCodeInputMismatch,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsInputError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"missing input", New(ErrCodeMissingInput, "no supports"), true},
		{"mismatch", New(ErrCodeInputMismatch, "3 vs 2"), true},
		{"wrapped invalid", Wrap(ErrCodeInvalidProblem, errors.New("eof"), "decode"), true},
		{"singular", New(ErrCodeSingularSystem, "not positive definite"), false},
		{"internal", New(ErrCodeInternal, "boom"), false},
		{"plain", errors.New("plain"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsInputError(tt.err); got != tt.want {
				t.Errorf("IsInputError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWrapGonumCause(t *testing.T) {
	t.Run("condition", func(t *testing.T) {
		err := Wrap(ErrCodeSingularSystem, mat.Condition(1e20), "solve %s axis", "z")

		var cond mat.Condition
		if !errors.As(err, &cond) {
			t.Fatalf("errors.As(err, *mat.Condition) = false for %v", err)
		}
		if cond != 1e20 {
			t.Errorf("Condition = %g, want 1e20", float64(cond))
		}
		if !Is(err, ErrCodeSingularSystem) {
			t.Error("Is(err, SINGULAR_SYSTEM) = false, want true")
		}
	})

	t.Run("shape", func(t *testing.T) {
		err := fmt.Errorf("assemble: %w",
			Wrap(ErrCodeInternal, mat.ErrShape, "D_N is %dx%d", 3, 2))

		if !errors.Is(err, mat.ErrShape) {
			t.Error("errors.Is(err, mat.ErrShape) = false, want true")
		}
		if got := GetCode(err); got != ErrCodeInternal {
			t.Errorf("GetCode() = %v, want %v", got, ErrCodeInternal)
		}
		if IsInputError(err) {
			t.Error("IsInputError() = true for a shape failure")
		}
		if got := UserMessage(err); got != "D_N is 3x2" {
			t.Errorf("UserMessage() = %q, want %q", got, "D_N is 3x2")
		}
	})
}

func TestErrorCodesStable(t *testing.T) {
	// Codes are part of the HTTP API and the CLI output.
	tests := map[Code]string{
		ErrCodeMissingInput:   "MISSING_INPUT",
		ErrCodeInputMismatch:  "INPUT_MISMATCH",
		ErrCodeInvalidInput:   "INVALID_INPUT",
		ErrCodeSingularSystem: "SINGULAR_SYSTEM",
	}
	for code, want := range tests {
		if string(code) != want {
			t.Errorf("code = %q, want %q", code, want)
		}
	}
}
