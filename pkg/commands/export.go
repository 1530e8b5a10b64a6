package commands

import (
	"errors"
	"io/fs"

	inflateerrors "github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/engine"
	"github.com/arthur-debert/inflate/pkg/filesystem"
	"github.com/arthur-debert/inflate/pkg/logging"
	"github.com/arthur-debert/inflate/pkg/paths"
	"github.com/arthur-debert/inflate/pkg/types"
)

// ExportOptions defines the options for the Export command.
type ExportOptions struct {
	// TemplateRoot is the path to the template directory.
	TemplateRoot string
	// OutputDir is the directory the expanded template is written to.
	OutputDir string
	// Data is the object template files are expanded against.
	Data interface{}
	// Files supplies in-memory overrides keyed by assets-relative path.
	Files []types.FileOverride
	// Overwrite allows exporting into an existing output directory.
	Overwrite bool
	// Clean removes the output directory before exporting. Only
	// meaningful together with Overwrite.
	Clean bool
	// FS is the filesystem implementation. Nil selects the OS filesystem.
	FS types.FS
	// Renderer is the expansion engine. Nil selects the default engine.
	Renderer engine.Renderer
}

// ExportResult summarizes a completed export.
type ExportResult struct {
	// OutputDir is the directory that was written to.
	OutputDir string
	// FilesWritten lists the assets-relative paths written, in export order.
	FilesWritten []string
}

// Export expands a template into OutputDir. When the output directory
// already exists the export refuses to run unless Overwrite is set;
// with Clean it is removed first. A failure mid-export aborts
// immediately and leaves already-written files in place.
func Export(opts ExportOptions) (*ExportResult, error) {
	log := logging.GetLogger("commands")
	log.Debug().
		Str("command", "Export").
		Str("templateRoot", opts.TemplateRoot).
		Str("outputDir", opts.OutputDir).
		Bool("overwrite", opts.Overwrite).
		Bool("clean", opts.Clean).
		Msg("Executing command")

	done := logging.LogOperationStart(log, "export")
	defer done()

	if err := paths.ValidatePath(opts.OutputDir); err != nil {
		return nil, err
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	// 1. The existence check happens before any mutation
	_, err := fsys.Stat(opts.OutputDir)
	outputExists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, inflateerrors.Wrapf(err, inflateerrors.ErrInvalidInput,
			"cannot inspect output directory %s", opts.OutputDir).WithDetail("path", opts.OutputDir)
	}
	if outputExists && !opts.Overwrite {
		return nil, inflateerrors.Newf(inflateerrors.ErrOutputExists,
			"output directory already exists: %s", opts.OutputDir).WithDetail("path", opts.OutputDir)
	}

	// 2. Clean if requested
	if outputExists && opts.Clean {
		if err := fsys.RemoveAll(opts.OutputDir); err != nil {
			return nil, inflateerrors.Wrapf(err, inflateerrors.ErrFileWrite,
				"failed to clean output directory %s", opts.OutputDir).WithDetail("path", opts.OutputDir)
		}
		log.Debug().Str("outputDir", opts.OutputDir).Msg("Cleaned output directory")
	}

	// 3. Ensure the output directory exists
	if err := fsys.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, inflateerrors.Wrapf(err, inflateerrors.ErrDirCreate,
			"failed to create output directory %s", opts.OutputDir).WithDetail("path", opts.OutputDir)
	}

	// 4. Build the file set
	tmpl, err := Inflate(InflateOptions{
		TemplateRoot: opts.TemplateRoot,
		Data:         opts.Data,
		Files:        opts.Files,
		FS:           fsys,
		Renderer:     opts.Renderer,
	})
	if err != nil {
		return nil, err
	}

	// 5. Write everything; the first failure aborts and nothing is
	// rolled back
	if err := tmpl.Export(opts.OutputDir); err != nil {
		return nil, err
	}

	result := &ExportResult{OutputDir: opts.OutputDir}
	for _, f := range tmpl.Files() {
		result.FilesWritten = append(result.FilesWritten, f.RelPath())
	}

	log.Info().
		Str("command", "Export").
		Int("fileCount", len(result.FilesWritten)).
		Str("outputDir", opts.OutputDir).
		Msg("Command finished")

	return result, nil
}
