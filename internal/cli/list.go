package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
)

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List comics in catalog order",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	storage, err := openStorage(opts, formatter)
	if err != nil {
		return err
	}
	defer closeStorage(storage, formatter)

	comics := storage.Store.List()
	return formatter.Success(comics, formatList(comics))
}

func formatList(comics []comic.Record) string {
	if len(comics) == 0 {
		return "No comics in the catalog."
	}

	var b strings.Builder
	for i, c := range comics {
		if i > 0 {
			b.WriteByte('\n')
		}
		cover := "no cover"
		if c.HasImage() {
			cover = "cover"
		}
		fmt.Fprintf(&b, "%s  %s  (%s, %s)", c.ID, c.Heading(), c.Publisher, cover)
	}
	return b.String()
}
