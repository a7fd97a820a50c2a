package io

import (
	"path/filepath"
	"strings"

	apperr "github.com/Glenn-jpg/MasterNTNU/pkg/errors"
)

// Format identifies a problem file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatHCL  Format = "hcl"
)

// Formats lists the supported problem encodings.
var Formats = []Format{FormatJSON, FormatTOML, FormatHCL}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch Format(ext) {
	case FormatJSON, FormatTOML, FormatHCL:
		return Format(ext), nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidFormat,
		"unsupported problem file %q (want .json, .toml or .hcl)", filepath.Base(path))
}

// ParseFormat converts a name such as "toml" into a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case FormatJSON, FormatTOML, FormatHCL:
		return f, nil
	}
	return "", apperr.New(apperr.ErrCodeInvalidFormat, "unknown problem format %q", s)
}
