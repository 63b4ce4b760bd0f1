package formatters

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobtailor/internal/types"

	"github.com/fatih/color"
)

// Formatter interface for different output formats
type Formatter interface {
	Format(data any) (string, error)
	SupportedType() string
}

// FormatterRegistry manages all available formatters
type FormatterRegistry struct {
	formatters map[string]map[string]Formatter // format -> type -> formatter
}

// NewFormatterRegistry creates a new formatter registry with default formatters
func NewFormatterRegistry() *FormatterRegistry {
	registry := &FormatterRegistry{
		formatters: make(map[string]map[string]Formatter),
	}

	registry.RegisterFormatter("json", "any", &JSONFormatter{})
	registry.RegisterFormatter("text", "SearchOutput", &SearchTextFormatter{})
	registry.RegisterFormatter("markdown", "SearchOutput", &SearchMarkdownFormatter{})
	registry.RegisterFormatter("text", "TailorOutput", &TailorTextFormatter{})
	registry.RegisterFormatter("markdown", "TailorOutput", &TailorMarkdownFormatter{})

	return registry
}

// RegisterFormatter registers a new formatter for a specific format and data type
func (fr *FormatterRegistry) RegisterFormatter(format, dataType string, formatter Formatter) {
	if fr.formatters[format] == nil {
		fr.formatters[format] = make(map[string]Formatter)
	}
	fr.formatters[format][dataType] = formatter
}

// Format formats data using the appropriate formatter
func (fr *FormatterRegistry) Format(data any, format string) (string, error) {
	dataType := getDataType(data)

	// Try specific formatter first
	if formatters, exists := fr.formatters[format]; exists {
		if formatter, exists := formatters[dataType]; exists {
			return formatter.Format(data)
		}
		// Fall back to generic formatter
		if formatter, exists := formatters["any"]; exists {
			return formatter.Format(data)
		}
	}

	return "", fmt.Errorf("no formatter found for format '%s' and type '%s'", format, dataType)
}

// GetSupportedFormats returns all supported formats
func (fr *FormatterRegistry) GetSupportedFormats() []string {
	formats := make([]string, 0, len(fr.formatters))
	for format := range fr.formatters {
		formats = append(formats, format)
	}
	return formats
}

func getDataType(data any) string {
	switch data.(type) {
	case types.SearchOutput:
		return "SearchOutput"
	case types.TailorOutput:
		return "TailorOutput"
	default:
		return "any"
	}
}

// JSONFormatter handles JSON formatting for any data type
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(data any) (string, error) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", err
	}
	return string(jsonData), nil
}

func (jf *JSONFormatter) SupportedType() string {
	return "any"
}

// SearchTextFormatter renders search results the way the terminal shows
// them: one block per posting with its summary, skills, tools, and
// responsibilities. Color is applied only when stdout is a terminal.
type SearchTextFormatter struct{}

var (
	jobIDColor    = color.New(color.FgCyan, color.Bold).SprintfFunc()
	jobMetaColor  = color.New(color.FgYellow).SprintfFunc()
	jobLabelColor = color.New(color.Bold).SprintFunc()
)

func (stf *SearchTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SearchOutput)
	if !ok {
		return "", fmt.Errorf("expected SearchOutput, got %T", data)
	}

	if result.Count == 0 {
		return "No jobs found for the provided criteria.\n", nil
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("Found %d matching job(s).\n\n", result.Count))
	for _, job := range result.Jobs {
		output.WriteString(jobIDColor("[%s] %s - %s", job.ID, job.Title, job.Company))
		output.WriteString("\n")
		output.WriteString(jobMetaColor("Location: %s | Type: %s | Experience: %s",
			job.Location, job.Type, job.ExperienceLevel))
		output.WriteString("\n")
		output.WriteString("Summary: " + job.Summary + "\n")
		output.WriteString(jobLabelColor("Skills: ") + strings.Join(job.Skills, ", ") + "\n")
		output.WriteString(jobLabelColor("Tools: ") + strings.Join(job.Tools, ", ") + "\n")
		output.WriteString(jobLabelColor("Responsibilities:") + "\n")
		for _, resp := range job.Responsibilities {
			output.WriteString("  - " + resp + "\n")
		}
		output.WriteString(strings.Repeat("-", 60) + "\n")
	}

	return output.String(), nil
}

func (stf *SearchTextFormatter) SupportedType() string {
	return "SearchOutput"
}

// SearchMarkdownFormatter handles markdown formatting for search results
type SearchMarkdownFormatter struct{}

func (smf *SearchMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.SearchOutput)
	if !ok {
		return "", fmt.Errorf("expected SearchOutput, got %T", data)
	}

	var output strings.Builder
	output.WriteString("# Job Search Results\n\n")
	if len(result.Query.Keywords) > 0 {
		output.WriteString(fmt.Sprintf("**Keywords:** %s\n\n", strings.Join(result.Query.Keywords, ", ")))
	}
	if result.Query.LocationPattern != "" {
		output.WriteString(fmt.Sprintf("**Location pattern:** `%s`\n\n", result.Query.LocationPattern))
	}
	output.WriteString(fmt.Sprintf("**Matches:** %d\n\n", result.Count))

	for _, job := range result.Jobs {
		output.WriteString(fmt.Sprintf("## [%s] %s - %s\n\n", job.ID, job.Title, job.Company))
		output.WriteString(fmt.Sprintf("*%s | %s | %s*\n\n", job.Location, job.Type, job.ExperienceLevel))
		output.WriteString(job.Summary + "\n\n")
		output.WriteString("**Skills:** " + strings.Join(job.Skills, ", ") + "\n\n")
		output.WriteString("**Tools:** " + strings.Join(job.Tools, ", ") + "\n\n")
		if len(job.Responsibilities) > 0 {
			output.WriteString("**Responsibilities:**\n\n")
			for _, resp := range job.Responsibilities {
				output.WriteString("- " + resp + "\n")
			}
			output.WriteString("\n")
		}
	}

	return output.String(), nil
}

func (smf *SearchMarkdownFormatter) SupportedType() string {
	return "SearchOutput"
}

// TailorTextFormatter emits the tailored resume itself, which is what gets
// written to the output file.
type TailorTextFormatter struct{}

func (ttf *TailorTextFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TailorOutput)
	if !ok {
		return "", fmt.Errorf("expected TailorOutput, got %T", data)
	}
	return result.TailoredResume, nil
}

func (ttf *TailorTextFormatter) SupportedType() string {
	return "TailorOutput"
}

// TailorMarkdownFormatter handles markdown formatting for tailor results
type TailorMarkdownFormatter struct{}

func (tmf *TailorMarkdownFormatter) Format(data any) (string, error) {
	result, ok := data.(types.TailorOutput)
	if !ok {
		return "", fmt.Errorf("expected TailorOutput, got %T", data)
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("# Tailored Resume: %s at %s (%s)\n\n",
		result.JobTitle, result.Company, result.JobID))
	output.WriteString("**Highlighted skills:** " + strings.Join(result.SelectedSkills, ", "))
	if !result.SkillsFromOverlap {
		output.WriteString(" *(taken from the posting; no overlap with the resume's skills section)*")
	}
	output.WriteString("\n\n```\n")
	output.WriteString(result.TailoredResume)
	output.WriteString("```\n")

	return output.String(), nil
}

func (tmf *TailorMarkdownFormatter) SupportedType() string {
	return "TailorOutput"
}

// Global formatter registry
var GlobalRegistry = NewFormatterRegistry()
