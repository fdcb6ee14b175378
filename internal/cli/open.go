package cli

import (
	"errors"

	"github.com/garunski/comic-catalog/pkg/catalog"
	apperrors "github.com/garunski/comic-catalog/pkg/catalog/errors"
	"github.com/garunski/comic-catalog/pkg/catalog/server"
	"github.com/garunski/comic-catalog/pkg/catalog/store"
)

// openStorage opens the catalog at --data. The caller must Close the result.
// Failures are reported through the formatter and returned as ExitErrors.
func openStorage(opts *RootOptions, formatter *OutputFormatter) (*server.StorageComponents, error) {
	defaults := catalog.DefaultConfig()
	policy, err := store.ParseCorruptPolicy(defaults.CorruptPolicy)
	if err != nil {
		return nil, formatter.Fail(ExitCommandError, ErrCodeGeneric, "invalid CATALOG_CORRUPT_POLICY", err)
	}

	formatter.VerboseLog("Opening catalog at %s", opts.DataPath)
	storage, err := server.NewStorageComponents(&server.Config{
		DataPath:      opts.DataPath,
		CorruptPolicy: policy,
	}, opts.logger())
	if err != nil {
		if errors.Is(err, apperrors.ErrCorruptData) {
			return nil, formatter.Fail(ExitCommandError, ErrCodeCorrupt, "stored catalog is corrupt", err)
		}
		return nil, formatter.Fail(ExitCommandError, ErrCodeStorage, "cannot open catalog", err)
	}
	return storage, nil
}

func closeStorage(storage *server.StorageComponents, formatter *OutputFormatter) {
	if err := storage.Close(); err != nil {
		formatter.VerboseLog("failed to close catalog: %v", err)
	}
}
