package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Expand template directories against data"
	MsgExportShort     = "Expand a template into an output directory"
	MsgRenderShort     = "Expand a single template file to stdout"
	MsgListShort       = "List template files and how each is treated"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgExportedFormat   = "Exported %d files to %s:\n"
	MsgFileItem         = "  ✓ %s\n"
	MsgNoFiles          = "Template contains no files."
	MsgListHeaderFormat = "%d template files in %s:\n"

	// Error messages
	MsgErrExport     = "failed to export template: %w"
	MsgErrRender     = "failed to render file: %w"
	MsgErrList       = "failed to read template: %w"
	MsgErrData       = "failed to load data: %w"
	MsgErrNoSuchFile = "no such file in template: %s"

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagData      = "Data file (JSON or YAML) applied during expansion"
	MsgFlagOverwrite = "Export into an existing output directory"
	MsgFlagClean     = "With --overwrite, remove the output directory first"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/export-long.txt
	msgExportLongRaw string
	MsgExportLong    = strings.TrimSpace(msgExportLongRaw)

	//go:embed msgs/export-example.txt
	msgExportExampleRaw string
	MsgExportExample    = strings.TrimSpace(msgExportExampleRaw)

	//go:embed msgs/render-long.txt
	msgRenderLongRaw string
	MsgRenderLong    = strings.TrimSpace(msgRenderLongRaw)

	//go:embed msgs/render-example.txt
	msgRenderExampleRaw string
	MsgRenderExample    = strings.TrimSpace(msgRenderExampleRaw)

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/list-example.txt
	msgListExampleRaw string
	MsgListExample    = strings.TrimSpace(msgListExampleRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
