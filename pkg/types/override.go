package types

import (
	"path/filepath"
	"strings"
)

// FileOverride represents in-memory content supplied by the caller that
// takes precedence over whatever exists on disk for the same relative
// path within a template
type FileOverride struct {
	// Path is the path of the file relative to the assets directory,
	// e.g. "index.html" or "css/site.css"
	Path string

	// Content is the raw bytes the file should hold instead of its
	// on-disk content
	Content []byte
}

// NormalizedPath returns the override path with separators normalized
// for the current platform and any leading "./" stripped
func (o *FileOverride) NormalizedPath() string {
	clean := filepath.Clean(filepath.FromSlash(o.Path))
	return strings.TrimPrefix(clean, "."+string(filepath.Separator))
}
