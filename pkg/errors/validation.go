package errors

import (
	"strings"
	"unicode"
)

// ValidateDestination validates an output destination path.
// Destinations are logical paths under the output root, so they must be
// relative, traversal-free, and printable.
func ValidateDestination(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "destination path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "destination path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "destination path contains invalid characters")
		}
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidInput, "destination path must be relative (cannot start with /)")
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "destination path cannot contain path traversal sequences (..)")
	}

	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidInput, "destination path cannot contain backslashes")
	}

	return nil
}

// ValidateSourceName validates a logical vector source name. Sources are
// addressed by bare name; directory and extension are implied.
func ValidateSourceName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "source name cannot be empty")
	}
	if strings.Contains(name, "\\") || strings.Contains(name, "..") {
		return New(ErrCodeInvalidInput, "source name contains invalid characters: %q", name)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "source name contains control characters")
		}
	}
	return nil
}
