// Package cli wires the inflate command line: cobra command tree, flag
// handling, data fixture loading and terminal presentation. The expansion
// work itself lives in pkg/commands; nothing here is imported by the
// library packages.
package cli

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/arthur-debert/inflate/internal/version"
	"github.com/arthur-debert/inflate/pkg/cobrax/topics"
	"github.com/arthur-debert/inflate/pkg/commands"
	inflateerrors "github.com/arthur-debert/inflate/pkg/errors"
	"github.com/arthur-debert/inflate/pkg/logging"
	"github.com/arthur-debert/inflate/pkg/style"
	"github.com/arthur-debert/inflate/pkg/template"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "inflate",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			// Show help but return an error to indicate incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	// Disable automatic help command (we'll use our custom one from topics)
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "core",
		Title: "COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Set custom help template
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	// Add all commands
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Initialize the topic-based help system from the embedded topic files.
	// Logging is not set up at this point, so failures stay silent; the
	// default help remains available either way.
	if sub, err := fs.Sub(topicsFS, "topics"); err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			// Always use Glamour renderer for markdown files
			Renderer: topics.NewGlamourRenderer(),
		}
		_ = topics.InitializeWithOptions(rootCmd, sub, opts)
	}

	return rootCmd
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "export TEMPLATE_ROOT OUTPUT_DIR",
		Short:   MsgExportShort,
		Long:    MsgExportLong,
		Example: MsgExportExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			templateRoot, outputDir := args[0], args[1]

			dataFile, _ := cmd.Flags().GetString("data")
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			clean, _ := cmd.Flags().GetBool("clean")

			data, err := loadData(templateRoot, dataFile)
			if err != nil {
				return fmt.Errorf(MsgErrData, err)
			}

			log.Info().
				Str("template_root", templateRoot).
				Str("output_dir", outputDir).
				Bool("overwrite", overwrite).
				Bool("clean", clean).
				Msg("Exporting template")

			result, err := commands.Export(commands.ExportOptions{
				TemplateRoot: templateRoot,
				OutputDir:    outputDir,
				Data:         data,
				Overwrite:    overwrite,
				Clean:        clean,
			})
			if err != nil {
				return fmt.Errorf(MsgErrExport, err)
			}

			fmt.Printf(MsgExportedFormat, len(result.FilesWritten), result.OutputDir)
			for _, rel := range result.FilesWritten {
				fmt.Printf(MsgFileItem, rel)
			}

			return nil
		},
	}

	cmd.Flags().String("data", "", MsgFlagData)
	cmd.Flags().Bool("overwrite", false, MsgFlagOverwrite)
	cmd.Flags().Bool("clean", false, MsgFlagClean)

	return cmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "render TEMPLATE_ROOT REL_PATH",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		Args:    cobra.ExactArgs(2),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			templateRoot, relPath := args[0], args[1]

			dataFile, _ := cmd.Flags().GetString("data")
			data, err := loadData(templateRoot, dataFile)
			if err != nil {
				return fmt.Errorf(MsgErrData, err)
			}

			log.Info().
				Str("template_root", templateRoot).
				Str("file", relPath).
				Msg("Rendering file")

			tmpl, err := commands.Inflate(commands.InflateOptions{
				TemplateRoot: templateRoot,
				Data:         data,
			})
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			file, ok := tmpl.Find(relPath)
			if !ok {
				return inflateerrors.Newf(inflateerrors.ErrNotFound, MsgErrNoSuchFile, relPath)
			}

			content, err := file.Expand()
			if err != nil {
				return fmt.Errorf(MsgErrRender, err)
			}

			// Raw bytes, nothing appended; a trailing newline (or the lack
			// of one) is part of the file content.
			_, err = os.Stdout.Write(content)
			return err
		},
	}

	cmd.Flags().String("data", "", MsgFlagData)

	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list [TEMPLATE_ROOT]",
		Short:   MsgListShort,
		Long:    MsgListLong,
		Example: MsgListExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			var templateRoot string
			if len(args) > 0 {
				templateRoot = args[0]
			}

			// Classification never needs file content, so no data is loaded
			tmpl, err := commands.Inflate(commands.InflateOptions{
				TemplateRoot: templateRoot,
			})
			if err != nil {
				return fmt.Errorf(MsgErrList, err)
			}

			files := tmpl.Files()
			if len(files) == 0 {
				fmt.Println(MsgNoFiles)
				return nil
			}

			fmt.Printf(MsgListHeaderFormat, len(files), tmpl.Root())
			for _, f := range files {
				fmt.Println("  " + formatFileLine(f))
			}

			return nil
		},
	}
}

// formatFileLine renders one list row: classification badge then path. The
// badge style pads to a fixed width, which keeps the path column aligned.
func formatFileLine(f *template.File) string {
	badge := style.ExpandBadge()
	if f.Mode() == template.Verbatim {
		badge = style.VerbatimBadge()
	}
	return badge + style.PathStyle.Render(f.RelPath())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("inflate version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Find the help command and execute it with "topics" argument
			if helpCmd, _, err := cmd.Root().Find([]string{"help"}); err == nil {
				if helpCmd.RunE != nil {
					return helpCmd.RunE(helpCmd, []string{"topics"})
				} else if helpCmd.Run != nil {
					helpCmd.Run(helpCmd, []string{"topics"})
					return nil
				}
			}
			return fmt.Errorf("help command not found")
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
