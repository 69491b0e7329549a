package metadecoders

import (
	"path/filepath"
	"strings"
)

// Format is a structured data format.
type Format string

const (
	// These are the supported metadata formats.
	JSON Format = "json"
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatFromString turns formatStr, typically a file extension without any ".",
// into a Format. It returns an empty string for unknown formats.
func FormatFromString(formatStr string) Format {
	formatStr = strings.ToLower(formatStr)
	if strings.Contains(formatStr, ".") {
		// Assume a filename
		formatStr = strings.TrimPrefix(filepath.Ext(formatStr), ".")
	}
	switch formatStr {
	case "json":
		return JSON
	case "toml":
		return TOML
	case "yaml", "yml":
		return YAML
	}

	return ""
}
