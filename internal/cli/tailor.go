package cli

import (
	"context"
	"fmt"

	"jobtailor/internal/catalog"
	"jobtailor/internal/common"
	"jobtailor/internal/tailor"
	"jobtailor/internal/types"

	"github.com/spf13/cobra"
)

var tailorCmd = &cobra.Command{
	Use:   "tailor [job-id] [resume-file]",
	Short: "Tailor a resume for a specific job posting",
	Long: `Tailor your resume for a job in the catalog. The command takes the
job id and the path to your plain-text resume, injects a tailored summary and
a skills-highlight section, and writes the result next to the input file
(or to --output).`,
	Args: cobra.ExactArgs(2),
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configFromContext(cmd.Context())
		if err != nil {
			return err
		}
		// Apply default format if not specified
		if tailorCmdConfig.OutputFormat == "" {
			tailorCmdConfig.OutputFormat = cfg.App.DefaultFormat
		}
		return common.ValidateOutputFormat(tailorCmdConfig.OutputFormat, cfg.App.SupportedFormats)
	},
	RunE: runTailor,
}

var tailorCmdConfig common.CommandConfig

func init() {
	tailorCmd.Flags().StringVarP(&tailorCmdConfig.OutputFile, "output", "o", "", "Output file path (default: <resume>_<job-id>.txt)")
	tailorCmd.Flags().StringVar(&tailorCmdConfig.OutputFormat, "format", "", "Output format: json, text, or markdown")

	_ = tailorCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg, err := configFromContext(cmd.Context())
		if err != nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return common.GetSupportedFormats(cfg.App.SupportedFormats), cobra.ShellCompDirectiveNoFileComp
	})
}

func runTailor(cmd *cobra.Command, args []string) error {
	cfg, err := configFromContext(cmd.Context())
	if err != nil {
		return err
	}
	logger, err := loggerFromContext(cmd.Context())
	if err != nil {
		return err
	}

	jobID, resumePath := args[0], args[1]
	if tailorCmdConfig.OutputFile == "" {
		tailorCmdConfig.OutputFile = common.DerivedOutputPath(resumePath, jobID)
	}

	opts := tailor.Options{
		MaxHighlights:     cfg.Tailor.MaxHighlights,
		SummaryHeading:    cfg.Tailor.SummaryHeading,
		HighlightsHeading: cfg.Tailor.HighlightsHeading,
		SkillsHeading:     cfg.Tailor.SkillsHeading,
	}

	fileProcessor := common.NewFileProcessor(logger)

	tailorOperation := func(ctx context.Context, cat *catalog.Catalog) (types.TailorOutput, error) {
		// Resolve the job id before touching the resume so an unknown id
		// never produces an output file.
		job, err := cat.Get(jobID)
		if err != nil {
			return types.TailorOutput{}, err
		}

		resumeText, err := fileProcessor.ReadResume(resumePath, cfg.App.MaxFileSize)
		if err != nil {
			return types.TailorOutput{}, err
		}

		logger.Info("Starting resume tailoring",
			"job_id", job.ID,
			"resume_chars", len(resumeText),
			"output_file", tailorCmdConfig.OutputFile,
			"output_format", tailorCmdConfig.OutputFormat)

		result, err := tailor.Tailor(job, resumeText, opts)
		if err != nil {
			return types.TailorOutput{}, err
		}

		if !result.FromOverlap {
			logger.Warn("No overlap between resume skills and job skills; highlighting the job's leading skills",
				"job_id", job.ID, "skills", result.SelectedSkills)
		}

		return types.TailorOutput{
			JobID:             job.ID,
			JobTitle:          job.Title,
			Company:           job.Company,
			SelectedSkills:    result.SelectedSkills,
			SkillsFromOverlap: result.FromOverlap,
			TailoredResume:    result.Text,
			OutputFile:        tailorCmdConfig.OutputFile,
		}, nil
	}

	err = common.RunCatalogCommand(
		cmd.Context(),
		logger,
		tailorCmdConfig,
		resolveDataPath(cfg),
		tailorOperation,
	)
	if err != nil {
		return fmt.Errorf("failed to tailor resume: %w", err)
	}

	fmt.Printf("Tailored resume saved to %s\n", tailorCmdConfig.OutputFile)
	return nil
}
