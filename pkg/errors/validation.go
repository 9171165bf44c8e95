package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a caller-supplied output path before any
// directory creation happens on its behalf.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - No parent-directory traversal segments
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidParameter, "output path cannot be empty")
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidParameter, "output path contains control characters")
		}
	}

	for _, seg := range strings.FieldsFunc(path, func(r rune) bool { return r == '/' || r == '\\' }) {
		if seg == ".." {
			return New(ErrCodeInvalidParameter, "output path cannot contain %q segments", "..")
		}
	}

	return nil
}

// ValidateEntryName validates a dataset plan entry name. Names appear in logs
// and TOML plan files; they must be simple identifiers, not paths.
func ValidateEntryName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidPlan, "entry name cannot be empty")
	}
	if len(name) > 128 {
		return New(ErrCodeInvalidPlan, "entry name too long (max 128 characters)")
	}
	if strings.ContainsAny(name, "/\\ \t\n") {
		return New(ErrCodeInvalidPlan, "entry name cannot contain path separators or whitespace")
	}
	return nil
}
