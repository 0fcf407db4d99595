package errors

import (
	"strings"
	"unicode"
)

// MaxDimension bounds each side of a generated or uploaded maze. It keeps
// the visitation table and rendered artifacts of a single run reasonably sized.
const MaxDimension = 1024

// ValidateDimensions checks that a maze size is usable: both sides at least 1
// and at most MaxDimension.
func ValidateDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return New(ErrCodeInvalidDimensions, "maze must be at least 1x1, got %dx%d", rows, cols)
	}
	if rows > MaxDimension || cols > MaxDimension {
		return New(ErrCodeInvalidDimensions, "maze too large: %dx%d (max %d per side)", rows, cols, MaxDimension)
	}
	return nil
}

// ValidateDensity checks that a wall density is a probability in [0, 1).
// A density of 1 would wall off every cell except the start.
func ValidateDensity(d float64) error {
	if d < 0 || d >= 1 {
		return New(ErrCodeInvalidInput, "wall density must be in [0, 1), got %v", d)
	}
	return nil
}

// ValidatePath validates an output or input file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid control characters")
		}
	}

	return nil
}

// ValidateName validates a short identifier such as a format, strategy or
// algorithm name before it is looked up.
func ValidateName(kind, name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidInput, "%s cannot be empty", kind)
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidInput, "%s too long (max 64 characters)", kind)
	}
	for _, r := range name {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "%s contains invalid characters: %q", kind, name)
		}
	}
	return nil
}
