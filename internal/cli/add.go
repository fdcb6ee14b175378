package cli

import (
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/garunski/comic-catalog/pkg/catalog/comic"
	"github.com/garunski/comic-catalog/pkg/catalog/form"
)

// AddOptions holds the add command's form fields.
type AddOptions struct {
	Title     string
	Issue     string
	Publisher string
	Image     string
}

// AddResult is the JSON payload of the add command.
type AddResult struct {
	Added  bool          `json:"added"`
	Record *comic.Record `json:"record,omitempty"`
}

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	addOpts := &AddOptions{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a comic to the catalog",
		Long: `Add a comic through the same form the web page uses.

All of --title, --issue, --publisher and --image must be given. Missing
fields are not an error: nothing is added and the command says so.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(rootOpts, addOpts, cmd)
		},
	}

	cmd.Flags().StringVar(&addOpts.Title, "title", "", "comic title")
	cmd.Flags().StringVar(&addOpts.Issue, "issue", "", "issue number")
	cmd.Flags().StringVar(&addOpts.Publisher, "publisher", "", "publisher")
	cmd.Flags().StringVar(&addOpts.Image, "image", "", "cover image file")

	return cmd
}

func runAdd(opts *RootOptions, addOpts *AddOptions, cmd *cobra.Command) error {
	formatter := opts.formatter(cmd)

	f := form.New()
	f.SetTitle(addOpts.Title)
	f.SetIssue(addOpts.Issue)
	f.SetPublisher(addOpts.Publisher)

	if addOpts.Image != "" {
		if err := loadImageFile(f, addOpts.Image); err != nil {
			return formatter.Fail(ExitCommandError, ErrCodeImage, "cannot use cover image "+addOpts.Image, err)
		}
		formatter.VerboseLog("Loaded cover image %s", addOpts.Image)
	}

	if !f.Complete() {
		return formatter.Success(AddResult{Added: false}, "nothing added")
	}

	storage, err := openStorage(opts, formatter)
	if err != nil {
		return err
	}
	defer closeStorage(storage, formatter)

	record, ok, err := f.Submit(storage.Store)
	if err != nil {
		return formatter.Fail(ExitCommandError, ErrCodeStorage, "failed to add comic", err)
	}
	if !ok {
		return formatter.Success(AddResult{Added: false}, "nothing added")
	}

	return formatter.Success(AddResult{Added: true, Record: &record}, "added "+record.Heading()+" ("+record.ID+")")
}

// loadImageFile feeds a cover file to the form. The content type comes from
// the file extension and falls back to sniffing.
func loadImageFile(f *form.Form, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return f.LoadImage(file, mime.TypeByExtension(filepath.Ext(path)))
}
