// Package commands provides the high-level entry points the CLI and
// library callers use: inflating a template in memory and exporting it
// to an output directory.
package commands

import (
	"github.com/arthur-debert/inflate/pkg/engine"
	"github.com/arthur-debert/inflate/pkg/logging"
	"github.com/arthur-debert/inflate/pkg/template"
	"github.com/arthur-debert/inflate/pkg/types"
)

// InflateOptions defines the options for the Inflate command.
type InflateOptions struct {
	// TemplateRoot is the path to the template directory.
	TemplateRoot string
	// Data is the object template files are expanded against.
	Data interface{}
	// Files supplies in-memory overrides keyed by assets-relative path.
	Files []types.FileOverride
	// FS is the filesystem implementation. Nil selects the OS filesystem.
	FS types.FS
	// Renderer is the expansion engine. Nil selects the default engine.
	Renderer engine.Renderer
}

// Inflate builds the in-memory file set of a template: layout checks,
// configuration, classification and overrides. File content stays lazy.
func Inflate(opts InflateOptions) (*template.Template, error) {
	log := logging.GetLogger("commands")
	log.Debug().Str("command", "Inflate").Str("templateRoot", opts.TemplateRoot).Msg("Executing command")

	tmpl, err := template.Inflate(opts.TemplateRoot, opts.Data, template.Options{
		Files:    opts.Files,
		FS:       opts.FS,
		Renderer: opts.Renderer,
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("command", "Inflate").Int("fileCount", tmpl.Len()).Msg("Command finished")
	return tmpl, nil
}
