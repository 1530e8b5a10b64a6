// Package template implements the template directory model: a set of
// files discovered under a template root, classified into expand and
// verbatim sets, and exportable to an output directory.
//
// A template directory looks like:
//
//	mytemplate/
//	├── template.json   optional expand / noExpand patterns
//	└── assets/         the files the template produces
//
// Discovery is eager, content work is lazy: ReadFiles builds the full
// file set without reading any asset content; each file loads and
// expands on first use.
package template

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/inflate/pkg/config"
	"github.com/arthur-debert/inflate/pkg/engine"
	"github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/filesystem"
	"github.com/arthur-debert/inflate/pkg/logging"
	"github.com/arthur-debert/inflate/pkg/matcher"
	"github.com/arthur-debert/inflate/pkg/paths"
	"github.com/arthur-debert/inflate/pkg/types"
)

// Options configures optional collaborators of a Template.
// Zero values select the production defaults.
type Options struct {
	// Files supplies in-memory content that wins over on-disk files
	// with the same assets-relative path. Override files are always
	// expanded.
	Files []types.FileOverride

	// FS is the filesystem implementation (default: OS filesystem)
	FS types.FS

	// Renderer is the expansion engine (default: Handlebars with the
	// built-in helpers)
	Renderer engine.Renderer
}

// Template is the set of files a template directory produces, keyed by
// assets-relative path. The set is built once by ReadFiles and is
// immutable afterwards; file order is insertion order, which Export
// and Files preserve.
type Template struct {
	root      string
	layout    paths.Paths
	shared    *shared
	overrides []types.FileOverride

	files  map[string]*File
	order  []string
	loaded bool

	logger zerolog.Logger
}

// New creates a Template rooted at templateRoot. data is the object
// every expanded file is rendered against. No filesystem access
// happens until ReadFiles.
func New(templateRoot string, data interface{}, opts Options) (*Template, error) {
	layout, err := paths.New(templateRoot)
	if err != nil {
		return nil, err
	}

	if opts.FS == nil {
		opts.FS = filesystem.NewOS()
	}
	if opts.Renderer == nil {
		opts.Renderer = engine.Default()
	}

	return &Template{
		root:   layout.TemplateRoot(),
		layout: layout,
		shared: &shared{
			fs:       opts.FS,
			renderer: opts.Renderer,
			data:     data,
		},
		overrides: opts.Files,
		files:     make(map[string]*File),
		logger:    logging.GetLogger("template"),
	}, nil
}

// Inflate creates a Template and reads its file set in one step
func Inflate(templateRoot string, data interface{}, opts Options) (*Template, error) {
	t, err := New(templateRoot, data, opts)
	if err != nil {
		return nil, err
	}
	if err := t.ReadFiles(); err != nil {
		return nil, err
	}
	return t, nil
}

// Root returns the absolute template root directory
func (t *Template) Root() string {
	return t.root
}

// AssetsDir returns the absolute assets directory
func (t *Template) AssetsDir() string {
	return t.layout.AssetsDir()
}

// ReadFiles discovers the template's file set: it verifies the
// directory layout, loads the configuration, classifies the assets
// tree and registers overrides. Overrides are inserted first and win
// over disk files with the same path; within disk files the expand set
// wins over the verbatim set. No asset content is read.
func (t *Template) ReadFiles() error {
	if t.loaded {
		return errors.New(errors.ErrInternal, "template files already read")
	}

	done := logging.LogOperationStart(t.logger, "read_files")
	defer done()

	// Template root must exist and be a directory
	info, err := t.shared.fs.Stat(t.root)
	if err != nil {
		return errors.Wrapf(err, errors.ErrTemplateNotFound,
			"template directory not found: %s", t.root).WithDetail("path", t.root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrTemplateNotFound,
			"template path is not a directory: %s", t.root).WithDetail("path", t.root)
	}

	// So must the assets directory
	assetsDir := t.layout.AssetsDir()
	info, err = t.shared.fs.Stat(assetsDir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAssetsMissing,
			"assets directory missing in template: %s", assetsDir).WithDetail("path", assetsDir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrAssetsMissing,
			"assets path is not a directory: %s", assetsDir).WithDetail("path", assetsDir)
	}

	cfg, err := config.Load(t.shared.fs, t.root)
	if err != nil {
		return err
	}

	m, err := matcher.New(cfg, t.shared.fs)
	if err != nil {
		return err
	}

	classification, err := m.Classify(assetsDir)
	if err != nil {
		return err
	}

	// Overrides go in first and are always expanded. A later override
	// for the same path replaces the content but keeps the position.
	for _, o := range t.overrides {
		if err := paths.ValidatePath(o.Path); err != nil {
			return err
		}
		rel := o.NormalizedPath()
		if _, exists := t.files[rel]; !exists {
			t.order = append(t.order, rel)
		}
		t.files[rel] = newOverrideFile(rel, assetsDir, o.Content, t.shared)
	}

	for _, rel := range classification.Expand {
		t.insert(newFile(rel, assetsDir, Expand, t.shared))
	}
	for _, rel := range classification.Verbatim {
		t.insert(newFile(rel, assetsDir, Verbatim, t.shared))
	}

	t.loaded = true

	t.logger.Info().
		Str("root", t.root).
		Int("files", len(t.order)).
		Int("overrides", len(t.overrides)).
		Msg("Template files read")

	return nil
}

// insert registers a file unless its path is already taken
func (t *Template) insert(f *File) {
	if _, exists := t.files[f.relPath]; exists {
		return
	}
	t.files[f.relPath] = f
	t.order = append(t.order, f.relPath)
}

// Find returns the file registered under the given assets-relative
// path, or false when no such file exists
func (t *Template) Find(relPath string) (*File, bool) {
	f, ok := t.files[normalizeRel(relPath)]
	return f, ok
}

// normalizeRel brings a caller-supplied relative path into key form:
// native separators, cleaned, no leading "./"
func normalizeRel(rel string) string {
	clean := filepath.Clean(filepath.FromSlash(rel))
	return strings.TrimPrefix(clean, "."+string(filepath.Separator))
}

// Files returns the file set in insertion order
func (t *Template) Files() []*File {
	files := make([]*File, 0, len(t.order))
	for _, rel := range t.order {
		files = append(files, t.files[rel])
	}
	return files
}

// Len returns the number of files in the set
func (t *Template) Len() int {
	return len(t.order)
}

// Export writes every file of the set under outputDir in insertion
// order. The first failure aborts the export; files already written
// stay in place.
func (t *Template) Export(outputDir string) error {
	t.logger.Debug().
		Str("outputDir", outputDir).
		Int("files", len(t.order)).
		Msg("Exporting template")

	for _, rel := range t.order {
		if err := t.files[rel].Export(outputDir); err != nil {
			return err
		}
	}

	return nil
}
