package tailor

import (
	"strings"
	"testing"

	"jobtailor/internal/types"
)

func fixtureJob() types.JobPosting {
	return types.JobPosting{
		ID:       "DS-101",
		Title:    "Data Scientist",
		Company:  "Acme",
		Location: "Remote - US",
		Skills:   []string{"Python", "SQL", "Machine Learning", "Statistics"},
	}
}

func TestTailorInjectsSummaryAndHighlights(t *testing.T) {
	resume := "NAME\nAda\n\nSKILLS\n- Python\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}

	if !strings.Contains(result.Text, "SUMMARY") {
		t.Error("expected a SUMMARY section in the output")
	}
	if !strings.Contains(result.Text, "Data Scientist") || !strings.Contains(result.Text, "Acme") {
		t.Error("expected the summary to mention the job title and company")
	}
	if !strings.Contains(result.Text, "ROLE HIGHLIGHTS\n- Python") {
		t.Errorf("expected a highlights section listing Python, got:\n%s", result.Text)
	}
	if !result.FromOverlap {
		t.Error("expected skills to come from the resume overlap")
	}
	if len(result.SelectedSkills) != 1 || result.SelectedSkills[0] != "Python" {
		t.Errorf("expected selected skills [Python], got %v", result.SelectedSkills)
	}

	// SUMMARY goes after the NAME section, not at the top.
	if strings.Index(result.Text, "NAME") > strings.Index(result.Text, "SUMMARY") {
		t.Error("expected SUMMARY to be inserted after the NAME section")
	}
}

func TestTailorOverlapPreservesJobSkillOrder(t *testing.T) {
	// Resume lists skills in the opposite order of the job posting.
	resume := "SKILLS\n- SQL\n- Python\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}

	if len(result.SelectedSkills) != 2 ||
		result.SelectedSkills[0] != "Python" || result.SelectedSkills[1] != "SQL" {
		t.Errorf("expected job-order [Python SQL], got %v", result.SelectedSkills)
	}
}

func TestTailorCommaSeparatedSkillLines(t *testing.T) {
	resume := "SKILLS\nPython, Machine Learning, Public Speaking\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}
	if len(result.SelectedSkills) != 2 ||
		result.SelectedSkills[0] != "Python" || result.SelectedSkills[1] != "Machine Learning" {
		t.Errorf("expected [Python Machine Learning], got %v", result.SelectedSkills)
	}
}

func TestTailorFallbackToLeadingJobSkills(t *testing.T) {
	resume := "NAME\nGrace\n\nSKILLS\n- Public Speaking\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}

	if result.FromOverlap {
		t.Error("expected fallback selection, not overlap")
	}
	expected := []string{"Python", "SQL", "Machine Learning"}
	if len(result.SelectedSkills) != len(expected) {
		t.Fatalf("expected first 3 job skills, got %v", result.SelectedSkills)
	}
	for i := range expected {
		if result.SelectedSkills[i] != expected[i] {
			t.Errorf("expected %v, got %v", expected, result.SelectedSkills)
			break
		}
	}
}

func TestTailorMaxHighlightsCapsOverlap(t *testing.T) {
	resume := "SKILLS\n- Python\n- SQL\n- Machine Learning\n"

	result, err := Tailor(fixtureJob(), resume, Options{MaxHighlights: 2})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}
	if len(result.SelectedSkills) != 2 {
		t.Errorf("expected 2 selected skills, got %v", result.SelectedSkills)
	}
}

func TestTailorReplacesExistingSectionsOnly(t *testing.T) {
	resume := "NAME\nAda Lovelace\n\nSUMMARY\nOld summary to be replaced.\n\nEXPERIENCE\nEngine programmer.\n\nSKILLS\n- Python\n- SQL\n\nROLE HIGHLIGHTS\n- Stale highlight\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}

	if strings.Contains(result.Text, "Old summary to be replaced.") {
		t.Error("expected the SUMMARY body to be replaced")
	}
	if strings.Contains(result.Text, "Stale highlight") {
		t.Error("expected the ROLE HIGHLIGHTS body to be replaced")
	}
	if strings.Count(result.Text, "SUMMARY") != 1 {
		t.Error("expected exactly one SUMMARY section")
	}
	if strings.Count(result.Text, "ROLE HIGHLIGHTS") != 1 {
		t.Error("expected exactly one ROLE HIGHLIGHTS section")
	}

	// Untouched sections keep their text exactly.
	for _, fragment := range []string{
		"NAME\nAda Lovelace\n",
		"EXPERIENCE\nEngine programmer.\n",
		"SKILLS\n- Python\n- SQL\n",
	} {
		if !strings.Contains(result.Text, fragment) {
			t.Errorf("expected fragment %q to survive tailoring:\n%s", fragment, result.Text)
		}
	}
}

func TestTailorIsIdempotent(t *testing.T) {
	resume := "NAME\nAda\n\nCONTACT\nada@example.com\n\nEXPERIENCE\nEngine programmer.\n\nSKILLS\n- Python\n- SQL\n"

	first, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("first Tailor returned error: %v", err)
	}
	second, err := Tailor(fixtureJob(), first.Text, Options{})
	if err != nil {
		t.Fatalf("second Tailor returned error: %v", err)
	}

	if first.Text != second.Text {
		t.Errorf("tailoring is not idempotent:\nfirst:\n%s\nsecond:\n%s", first.Text, second.Text)
	}
}

func TestTailorSummaryPlacementSkipsContact(t *testing.T) {
	resume := "NAME\nAda\n\nCONTACT\nada@example.com\n\nEXPERIENCE\nEngine programmer.\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}

	contactIdx := strings.Index(result.Text, "CONTACT")
	summaryIdx := strings.Index(result.Text, "SUMMARY")
	experienceIdx := strings.Index(result.Text, "EXPERIENCE")
	if !(contactIdx < summaryIdx && summaryIdx < experienceIdx) {
		t.Errorf("expected SUMMARY between CONTACT and EXPERIENCE:\n%s", result.Text)
	}
}

func TestTailorSummaryAtTopWithoutLeadSections(t *testing.T) {
	resume := "EXPERIENCE\nEngine programmer.\n\nSKILLS\n- Python\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}
	if !strings.HasPrefix(result.Text, "SUMMARY\n") {
		t.Errorf("expected SUMMARY at the top, got:\n%s", result.Text)
	}
}

func TestTailorCustomHeadings(t *testing.T) {
	resume := "TECH STACK\n- Go\n"
	job := types.JobPosting{ID: "BE-202", Title: "Backend Engineer", Company: "Nimbus",
		Skills: []string{"Go", "PostgreSQL"}}

	result, err := Tailor(job, resume, Options{
		SkillsHeading:     "TECH STACK",
		HighlightsHeading: "KEY STRENGTHS",
	})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}
	if !result.FromOverlap || len(result.SelectedSkills) != 1 || result.SelectedSkills[0] != "Go" {
		t.Errorf("expected overlap [Go] via custom skills heading, got %v", result.SelectedSkills)
	}
	if !strings.Contains(result.Text, "KEY STRENGTHS\n- Go") {
		t.Errorf("expected custom highlights heading, got:\n%s", result.Text)
	}
}

func TestTailorEmptyResume(t *testing.T) {
	if _, err := Tailor(fixtureJob(), "", Options{}); err == nil {
		t.Fatal("expected error for empty resume")
	}
}

func TestTailorPreamble(t *testing.T) {
	// No headings at all: the whole resume is a preamble; SUMMARY goes after
	// it and highlights at the end.
	resume := "Ada Lovelace\nLondon\n"

	result, err := Tailor(fixtureJob(), resume, Options{})
	if err != nil {
		t.Fatalf("Tailor returned error: %v", err)
	}
	if !strings.HasPrefix(result.Text, "Ada Lovelace\nLondon\n\nSUMMARY\n") {
		t.Errorf("expected SUMMARY after the preamble, got:\n%s", result.Text)
	}
	if !strings.Contains(result.Text, "ROLE HIGHLIGHTS") {
		t.Error("expected a highlights section appended")
	}
}
