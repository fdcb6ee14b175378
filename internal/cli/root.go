package cli

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/garunski/comic-catalog/pkg/catalog"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "json" | "text"
	DataPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the comic-catalog CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	defaults := catalog.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "comic-catalog",
		Short: "Comic Book Catalog",
		Long:  "Add, list and delete comic book records kept in a local BadgerDB slot.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if opts.DataPath == "" {
				return fmt.Errorf("--data cannot be empty")
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DataPath, "data", defaults.DataPath, "BadgerDB data directory")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))

	return cmd
}

// logger returns a console logger in verbose mode and a discarding one otherwise.
func (o *RootOptions) logger() logr.Logger {
	if !o.Verbose {
		return logr.Discard()
	}
	logger, err := catalog.NewLogger(catalog.LogFormatConsole)
	if err != nil {
		return logr.Discard()
	}
	return logger
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
