package template

import (
	"path/filepath"
	"sync"

	"github.com/arthur-debert/inflate/pkg/engine"
	"github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/types"
)

// Mode says how a file's content is produced on expansion
type Mode int

const (
	// Expand runs the file content through the expansion engine
	Expand Mode = iota

	// Verbatim copies the file content byte for byte
	Verbatim
)

// String returns the lowercase name of the mode
func (m Mode) String() string {
	switch m {
	case Expand:
		return "expand"
	case Verbatim:
		return "verbatim"
	default:
		return "unknown"
	}
}

// state tracks the lazy lifecycle of a file's content.
// It only ever moves forward: unloaded -> loaded -> expanded.
type state int

const (
	stateUnloaded state = iota
	stateLoaded
	stateExpanded
)

// shared holds the collaborators common to every file of one template
type shared struct {
	fs       types.FS
	renderer engine.Renderer
	data     interface{}
}

// File is a single template file. Its identity is the path relative to
// the assets directory; content is loaded and expanded lazily, each at
// most once, and the result is cached. Safe for concurrent use.
type File struct {
	relPath   string
	assetsDir string
	mode      Mode
	override  []byte // in-memory content; nil means the content lives on disk
	shared    *shared

	mu       sync.Mutex
	state    state
	raw      []byte
	expanded []byte
}

// newFile creates a disk-backed file
func newFile(relPath, assetsDir string, mode Mode, shared *shared) *File {
	return &File{
		relPath:   relPath,
		assetsDir: assetsDir,
		mode:      mode,
		shared:    shared,
	}
}

// newOverrideFile creates a file whose content was supplied in memory.
// Override files are always expanded.
func newOverrideFile(relPath, assetsDir string, content []byte, shared *shared) *File {
	return &File{
		relPath:   relPath,
		assetsDir: assetsDir,
		mode:      Expand,
		override:  content,
		shared:    shared,
	}
}

// RelPath returns the file's path relative to the assets directory.
// It is the file's unique key within a template.
func (f *File) RelPath() string {
	return f.relPath
}

// Mode returns the file's expansion mode
func (f *File) Mode() Mode {
	return f.mode
}

// InMemory reports whether the content was supplied as an override
// rather than read from disk
func (f *File) InMemory() bool {
	return f.override != nil
}

// FullPath returns the file's absolute source path under the assets
// directory. It is a pure computation; the path may not exist for
// override files.
func (f *File) FullPath() string {
	return filepath.Join(f.assetsDir, f.relPath)
}

// load returns the raw content, reading from disk at most once.
// Callers must hold f.mu.
func (f *File) load() ([]byte, error) {
	if f.state >= stateLoaded {
		return f.raw, nil
	}

	if f.override != nil {
		f.raw = f.override
	} else {
		raw, err := f.shared.fs.ReadFile(f.FullPath())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileRead,
				"failed to read template file %s", f.FullPath()).WithDetail("path", f.FullPath())
		}
		f.raw = raw
	}

	f.state = stateLoaded
	return f.raw, nil
}

// Expand returns the file's final content: the raw bytes for Verbatim
// files, the engine output for Expand files. The result is computed
// once and cached; repeated calls return the same bytes without
// re-reading or re-rendering. A failed call leaves the file ready to
// retry.
func (f *File) Expand() ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == stateExpanded {
		return f.expanded, nil
	}

	raw, err := f.load()
	if err != nil {
		return nil, err
	}

	if f.mode == Verbatim {
		f.expanded = raw
	} else {
		out, err := f.shared.renderer.Render(string(raw), f.shared.data)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrTemplateCompile,
				"failed to expand template %s", f.FullPath()).WithDetail("path", f.FullPath())
		}
		f.expanded = []byte(out)
	}

	f.state = stateExpanded
	return f.expanded, nil
}

// Export writes the file's final content under outputDir, preserving
// the relative path. Parent directories are created as needed.
func (f *File) Export(outputDir string) error {
	target := filepath.Join(outputDir, f.relPath)

	parent := filepath.Dir(target)
	if err := f.shared.fs.MkdirAll(parent, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate,
			"failed to create directory %s", parent).WithDetail("path", parent)
	}

	content, err := f.Expand()
	if err != nil {
		return err
	}

	if err := f.shared.fs.WriteFile(target, content, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite,
			"failed to write file %s", target).WithDetail("path", target)
	}

	return nil
}
