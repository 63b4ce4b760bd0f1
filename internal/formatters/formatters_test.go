package formatters

import (
	"encoding/json"
	"strings"
	"testing"

	"jobtailor/internal/types"

	"github.com/fatih/color"
)

func init() {
	// Deterministic output under test regardless of terminal detection.
	color.NoColor = true
}

func sampleSearchOutput() types.SearchOutput {
	return types.SearchOutput{
		Query: types.SearchQuery{Keywords: []string{"python"}},
		Count: 1,
		Jobs: []types.JobPosting{{
			ID:               "DS-101",
			Title:            "Data Scientist",
			Company:          "Acme",
			Location:         "Remote - US",
			Type:             "Full-time",
			Summary:          "Build ML models.",
			Skills:           []string{"Python", "SQL"},
			Tools:            []string{"Jupyter"},
			ExperienceLevel:  "Mid",
			Description:      "Forecasting.",
			Responsibilities: []string{"Model design"},
		}},
	}
}

func TestSearchTextFormatter(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleSearchOutput(), "text")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	for _, fragment := range []string{
		"[DS-101] Data Scientist - Acme",
		"Location: Remote - US | Type: Full-time | Experience: Mid",
		"Skills: Python, SQL",
		"  - Model design",
	} {
		if !strings.Contains(output, fragment) {
			t.Errorf("expected output to contain %q, got:\n%s", fragment, output)
		}
	}
}

func TestSearchTextFormatterNoMatches(t *testing.T) {
	output, err := GlobalRegistry.Format(types.SearchOutput{}, "text")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if output != "No jobs found for the provided criteria.\n" {
		t.Errorf("unexpected empty-result output: %q", output)
	}
}

func TestJSONFormatter(t *testing.T) {
	output, err := GlobalRegistry.Format(sampleSearchOutput(), "json")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}

	var decoded types.SearchOutput
	if err := json.Unmarshal([]byte(output), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Count != 1 || decoded.Jobs[0].ID != "DS-101" {
		t.Errorf("JSON round trip lost data: %+v", decoded)
	}
}

func TestTailorTextFormatterReturnsResumeVerbatim(t *testing.T) {
	resume := "NAME\nAda\n\nSUMMARY\nTailored.\n"
	output, err := GlobalRegistry.Format(types.TailorOutput{
		JobID:          "DS-101",
		TailoredResume: resume,
	}, "text")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if output != resume {
		t.Errorf("expected resume text verbatim, got %q", output)
	}
}

func TestTailorMarkdownFormatter(t *testing.T) {
	output, err := GlobalRegistry.Format(types.TailorOutput{
		JobID:             "DS-101",
		JobTitle:          "Data Scientist",
		Company:           "Acme",
		SelectedSkills:    []string{"Python"},
		SkillsFromOverlap: true,
		TailoredResume:    "SUMMARY\nTailored.\n",
	}, "markdown")
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !strings.Contains(output, "# Tailored Resume: Data Scientist at Acme (DS-101)") {
		t.Errorf("missing markdown header:\n%s", output)
	}
	if !strings.Contains(output, "**Highlighted skills:** Python") {
		t.Errorf("missing highlighted skills line:\n%s", output)
	}
}

func TestFormatUnknownFormat(t *testing.T) {
	if _, err := GlobalRegistry.Format(sampleSearchOutput(), "yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}
