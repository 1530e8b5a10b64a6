// Package matcher classifies the files of a template's assets tree into
// the set that gets expanded and the set that is copied verbatim, based
// on the glob patterns from the template configuration.
package matcher

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/inflate/pkg/config"
	"github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/logging"
	"github.com/arthur-debert/inflate/pkg/types"
)

// Classification is the result of classifying an assets tree. Paths are
// relative to the assets directory, in native separator form, and the
// two sets are disjoint.
type Classification struct {
	// Expand lists the files whose content goes through the engine
	Expand []string

	// Verbatim lists the files copied byte for byte
	Verbatim []string
}

// Matcher classifies files against the expand / noExpand pattern sets
type Matcher struct {
	expand   []string
	noExpand []string
	logger   zerolog.Logger
	fs       types.FS
}

// New creates a matcher for the given configuration.
// All patterns are validated upfront; an invalid glob is a
// configuration error.
func New(cfg *config.Template, fs types.FS) (*Matcher, error) {
	for _, set := range [][]string{cfg.Expand, cfg.NoExpand} {
		for _, pattern := range set {
			if !doublestar.ValidatePattern(strings.TrimPrefix(pattern, "!")) {
				return nil, errors.Newf(errors.ErrConfigParse,
					"invalid glob pattern %q", pattern).WithDetail("pattern", pattern)
			}
		}
	}

	return &Matcher{
		expand:   cfg.Expand,
		noExpand: cfg.NoExpand,
		logger:   logging.GetLogger("matcher"),
		fs:       fs,
	}, nil
}

// Classify walks the assets tree and sorts every regular file into the
// expand or verbatim set. noExpand wins when a file matches both sets;
// files matching neither set are left out entirely.
func (m *Matcher) Classify(assetsDir string) (*Classification, error) {
	m.logger.Debug().Str("assetsDir", assetsDir).Msg("Classifying assets tree")

	files, err := m.readAssetFiles(assetsDir, "")
	if err != nil {
		return nil, err
	}

	result := &Classification{}
	for _, rel := range files {
		// Patterns always match against slash-separated paths
		slashRel := filepath.ToSlash(rel)

		switch {
		case matchesSet(m.noExpand, slashRel):
			result.Verbatim = append(result.Verbatim, rel)
		case matchesSet(m.expand, slashRel):
			result.Expand = append(result.Expand, rel)
		default:
			m.logger.Debug().Str("file", rel).Msg("File matches no pattern set, excluded")
		}
	}

	m.logger.Debug().
		Int("expand", len(result.Expand)).
		Int("verbatim", len(result.Verbatim)).
		Int("scanned", len(files)).
		Msg("Classification complete")

	return result, nil
}

// readAssetFiles walks dir recursively and returns the relative paths of
// all regular files, in sorted traversal order
func (m *Matcher) readAssetFiles(dir, rel string) ([]string, error) {
	entries, err := m.fs.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead,
			"failed to read directory %s", dir).WithDetail("path", dir)
	}

	var files []string
	for _, entry := range entries {
		entryRel := filepath.Join(rel, entry.Name())

		if entry.IsDir() {
			sub, err := m.readAssetFiles(filepath.Join(dir, entry.Name()), entryRel)
			if err != nil {
				return nil, err
			}
			files = append(files, sub...)
			continue
		}

		if !entry.Type().IsRegular() {
			m.logger.Debug().Str("file", entryRel).Msg("Skipping non-regular file")
			continue
		}

		files = append(files, entryRel)
	}

	return files, nil
}

// matchesSet reports whether path belongs to a pattern set: it must
// match at least one positive pattern and no negation pattern
func matchesSet(patterns []string, path string) bool {
	matched := false
	for _, pattern := range patterns {
		if strings.HasPrefix(pattern, "!") {
			if ok, _ := doublestar.Match(strings.TrimPrefix(pattern, "!"), path); ok {
				return false
			}
			continue
		}

		if !matched {
			if ok, _ := doublestar.Match(pattern, path); ok {
				matched = true
			}
		}
	}
	return matched
}
