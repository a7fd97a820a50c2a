package errors

import (
	"math"
	"strings"
	"unicode"
)

// ValidateFinite checks that every value is a finite number.
// The name is used to identify the offending field in the error message.
func ValidateFinite(name string, values ...float64) error {
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			if len(values) == 1 {
				return New(ErrCodeInvalidInput, "%s must be finite, got %v", name, v)
			}
			return New(ErrCodeInvalidInput, "%s[%d] must be finite, got %v", name, i, v)
		}
	}
	return nil
}

// ValidateTolerance checks a coincidence tolerance.
// Tolerances must be finite and strictly positive.
func ValidateTolerance(tol float64) error {
	if err := ValidateFinite("tolerance", tol); err != nil {
		return err
	}
	if tol <= 0 {
		return New(ErrCodeInvalidInput, "tolerance must be > 0, got %g", tol)
	}
	return nil
}

// ValidateOutputPath validates a file path the CLI is about to write to.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Path must name a file, not a directory (no trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file: %q", path)
	}

	return nil
}
