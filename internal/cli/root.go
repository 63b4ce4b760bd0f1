package cli

import (
	"context"

	"jobtailor/internal/config"
	"jobtailor/internal/errors"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "jobtailor",
	Short: "Search job postings and tailor your resume for them",
	Long: `Jobtailor is a command-line tool that searches a curated catalog of
job postings and rewrites a plain-text resume to emphasize the skills a
selected posting asks for. It ships with a built-in catalog; point --data at
a JSON file to use your own.`,
}

// dataPath is the persistent --data flag. Empty means the path from the
// config file, falling back to the embedded dataset.
var dataPath string

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// configFromContext retrieves the config Execute attached to the command
// context. A miss means Execute never ran, which is an initialization bug.
func configFromContext(ctx context.Context) (*config.Config, error) {
	cfg, ok := ctx.Value(configKey).(*config.Config)
	if !ok {
		return nil, errors.NewInternalError("CONTEXT_NOT_INITIALIZED",
			"Configuration missing from command context", nil)
	}
	return cfg, nil
}

// loggerFromContext retrieves the logger Execute attached to the command
// context.
func loggerFromContext(ctx context.Context) (*errors.Logger, error) {
	logger, ok := ctx.Value(loggerKey).(*errors.Logger)
	if !ok {
		return nil, errors.NewInternalError("CONTEXT_NOT_INITIALIZED",
			"Logger missing from command context", nil)
	}
	return logger, nil
}

// resolveDataPath applies flag-over-config precedence for the dataset path.
func resolveDataPath(cfg *config.Config) string {
	if dataPath != "" {
		return dataPath
	}
	return cfg.Data.Path
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to a JSON file of job postings (default: built-in catalog)")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(tailorCmd)
	rootCmd.AddCommand(versionCmd)
}
