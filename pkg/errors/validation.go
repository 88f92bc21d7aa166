package errors

import (
	"strings"
	"unicode"
)

// ValidateCatalogFilename validates the name of a catalog inside the messages
// directory. The reference catalog is always resolved relative to that
// directory, so names must be plain basenames.
//
// Rules:
//   - No empty names
//   - No control characters or null bytes
//   - No path separators
//   - Not "." or ".."
func ValidateCatalogFilename(name string) error {
	if name == "" {
		return New(ErrCodeInvalidFilename, "catalog filename cannot be empty")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidFilename, "catalog filename contains invalid control characters")
		}
	}

	if strings.ContainsAny(name, "/\\") {
		return New(ErrCodeInvalidFilename, "catalog filename cannot contain path separators: %q", name)
	}

	if name == "." || name == ".." {
		return New(ErrCodeInvalidFilename, "catalog filename cannot be %q", name)
	}

	return nil
}

// ValidateKeyPattern validates a keep pattern before it is compiled.
// Patterns address dotted key paths, so leading, trailing, or doubled dots
// can never match anything and are rejected early.
func ValidateKeyPattern(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return New(ErrCodeInvalidPattern, "key pattern cannot be empty")
	}

	if strings.HasPrefix(pattern, ".") || strings.HasSuffix(pattern, ".") {
		return New(ErrCodeInvalidPattern, "key pattern cannot start or end with a dot: %q", pattern)
	}

	if strings.Contains(pattern, "..") {
		return New(ErrCodeInvalidPattern, "key pattern contains an empty segment: %q", pattern)
	}

	return nil
}
