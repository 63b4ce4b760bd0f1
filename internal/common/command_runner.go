package common

import (
	"context"

	"jobtailor/internal/catalog"
	"jobtailor/internal/errors"
)

// CatalogOperationFunc is the signature of a command body that consumes the
// loaded catalog and produces the command's output value.
type CatalogOperationFunc[Output any] func(ctx context.Context, cat *catalog.Catalog) (Output, error)

// RunCatalogCommand encapsulates the shared flow of catalog-backed CLI
// commands: load the dataset (from a path, or the embedded copy when the
// path is empty), run the operation, and hand the result to the output
// handler.
func RunCatalogCommand[Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	dataPath string,
	operation CatalogOperationFunc[Output],
) error {
	var (
		cat *catalog.Catalog
		err error
	)
	if dataPath == "" {
		cat, err = catalog.LoadDefault()
	} else {
		cat, err = catalog.Load(dataPath)
	}
	if err != nil {
		return err
	}
	logger.Debug("Job catalog loaded", "path", dataPath, "jobs", cat.Len())

	result, err := operation(ctx, cat)
	if err != nil {
		return err
	}

	outputHandler := NewOutputHandler(logger)
	return outputHandler.HandleOutput(result, cmdConfig)
}
