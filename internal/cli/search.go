package cli

import (
	"context"
	"fmt"
	"strings"

	"jobtailor/internal/catalog"
	"jobtailor/internal/common"
	"jobtailor/internal/search"
	"jobtailor/internal/types"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search the job catalog by keywords and location",
	Long: `Search the job catalog. Every keyword must match somewhere in a
posting's title, summary, description, or skills (case-insensitive); the
location filter is a case-insensitive regular expression matched against the
location field. Matches are printed in catalog order.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if searchConfig.OutputFormat == "" {
			searchConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(searchConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runSearch,
}

var searchConfig common.CommandConfig

var (
	searchKeywords string
	searchLocation string
)

func init() {
	searchCmd.Flags().StringVarP(&searchKeywords, "keywords", "k", "", "Comma-separated list of keywords to match")
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "Regular expression to filter by location")
	searchCmd.Flags().StringVarP(&searchConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	searchCmd.Flags().StringVar(&searchConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = searchCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := configFromContext(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := loggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	keywords := parseKeywords(searchKeywords)
	logger.Info("Starting job search",
		"keywords", keywords,
		"location_pattern", searchLocation,
		"output_format", searchConfig.OutputFormat)

	// Keep ANSI codes out of files
	if searchConfig.OutputFile != "" {
		color.NoColor = true
	}

	searchOperation := func(ctx context.Context, cat *catalog.Catalog) (types.SearchOutput, error) {
		matches, err := search.Search(cat.Jobs(), keywords, searchLocation)
		if err != nil {
			return types.SearchOutput{}, err
		}
		return types.SearchOutput{
			Query: types.SearchQuery{
				Keywords:        keywords,
				LocationPattern: searchLocation,
			},
			Count: len(matches),
			Jobs:  matches,
		}, nil
	}

	err = common.RunCatalogCommand(
		cmd.Context(),
		logger,
		searchConfig,
		resolveDataPath(cfg),
		searchOperation,
	)
	if err != nil {
		return fmt.Errorf("failed to search jobs: %w", err)
	}
	return nil
}

// parseKeywords splits the comma-separated --keywords value, dropping blank
// entries.
func parseKeywords(raw string) []string {
	if raw == "" {
		return nil
	}
	keywords := make([]string, 0)
	for _, kw := range strings.Split(raw, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}
