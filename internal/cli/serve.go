package cli

import (
	"github.com/spf13/cobra"

	"github.com/garunski/comic-catalog/pkg/catalog"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	Port string
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	serveOpts := &ServeOptions{}
	defaults := catalog.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog page over HTTP",
		Long: `Serve the catalog page, its JSON API and the activity log.

Runs until interrupted. Environment variables (PORT, LOG_FORMAT,
LOG_RETENTION_DAYS, LOG_CLEANUP_INTERVAL, CATALOG_CORRUPT_POLICY) supply
the defaults; --port and --data override them.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(rootOpts, serveOpts, cmd)
		},
	}

	cmd.Flags().StringVarP(&serveOpts.Port, "port", "p", defaults.Port, "HTTP port")

	return cmd
}

func runServe(opts *RootOptions, serveOpts *ServeOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	cfg := catalog.DefaultConfig()
	cfg.DataPath = opts.DataPath
	cfg.Port = serveOpts.Port

	if err := cfg.Validate(); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeGeneric, "invalid configuration", err)
	}

	if err := catalog.Run(cmd.Context(), cfg); err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStorage, "server stopped", err)
	}
	return nil
}
