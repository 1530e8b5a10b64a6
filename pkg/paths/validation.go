package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/inflate/pkg/errors"
)

// ValidatePath performs basic validation on a path.
// It checks for:
// - Empty paths
// - Null bytes
// - Excessive path length
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// SanitizePath cleans a path for use.
// It:
// - Expands ~ to the home directory
// - Normalizes path separators
// - Resolves . and .. elements
func SanitizePath(path string) string {
	path = expandHome(path)

	cleaned := filepath.Clean(path)

	// Ensure we don't return an empty string
	if cleaned == "" {
		return "."
	}

	return cleaned
}

// RelativePath returns the relative path from base to target.
// Returns an error if the paths cannot be made relative.
func RelativePath(base, target string) (string, error) {
	base = SanitizePath(base)
	target = SanitizePath(target)

	rel, err := filepath.Rel(base, target)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrInvalidInput,
			"cannot determine relative path from %s to %s", base, target)
	}

	return rel, nil
}

// ContainsPath checks if child is contained within parent.
// Both paths are normalized before comparison.
func ContainsPath(parent, child string) bool {
	parent = SanitizePath(parent)
	child = SanitizePath(child)

	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}

	// If relative path starts with .., child is outside parent
	return !strings.HasPrefix(rel, "..")
}
