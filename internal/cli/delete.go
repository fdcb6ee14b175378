package cli

import (
	"errors"

	"github.com/spf13/cobra"

	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a comic by id",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
}

func runDelete(opts *RootOptions, id string, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	storage, err := openStorage(opts, formatter)
	if err != nil {
		return err
	}
	defer closeStorage(storage, formatter)

	removed, err := storage.Store.Delete(id)
	if errors.Is(err, apperrors.ErrNotFound) {
		return formatter.Fail(ExitFailure, ErrCodeNotFound, "no comic with id "+id, nil)
	}
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStorage, "failed to delete comic", err)
	}

	return formatter.Success(removed, "deleted "+removed.Heading())
}
