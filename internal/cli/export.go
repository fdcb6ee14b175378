package cli

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as YAML to stdout",
		Long: `Write every comic, in catalog order, as a YAML list.

The output is always YAML; --format only affects error reporting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(rootOpts, cmd)
		},
	}
}

func runExport(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	storage, err := openStorage(opts, formatter)
	if err != nil {
		return err
	}
	defer closeStorage(storage, formatter)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(storage.Store.List()); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeEncoding, "failed to encode catalog", err)
	}
	if err := enc.Close(); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeEncoding, "failed to encode catalog", err)
	}
	return nil
}
