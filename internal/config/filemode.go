package config

import (
	"fmt"
	"io/fs"
	"strconv"
)

// FileMode is a wrapper around fs.FileMode that parses from octal strings
// like "0755" in environment variables, flags, and JSON.
// It implements the flag.Value and encoding.TextUnmarshaler interfaces.
type FileMode fs.FileMode

// String returns the octal representation of the mode (e.g. "0755").
func (m FileMode) String() string {
	return "0" + strconv.FormatUint(uint64(m), 8)
}

// Set parses an octal mode string and populates the FileMode.
// Returns an error if the input is not a valid octal number or exceeds
// the permission bit range.
func (m *FileMode) Set(s string) error {
	parsed, err := strconv.ParseUint(s, 8, 32)
	if err != nil {
		return fmt.Errorf("mode must be an octal number like 0755: %w", err)
	}

	if parsed > 0o7777 {
		return fmt.Errorf("mode %s is out of the permission bit range", s)
	}

	*m = FileMode(parsed)
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler so FileMode fields can
// be populated by caarlos0/env and by JSON string values.
func (m *FileMode) UnmarshalText(b []byte) error {
	return m.Set(string(b))
}

// MarshalText implements encoding.TextMarshaler.
func (m FileMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// FileMode converts the wrapper back to the standard fs.FileMode.
func (m FileMode) FileMode() fs.FileMode {
	return fs.FileMode(m)
}
