// Package tailor rewrites a parsed resume to emphasize the skills a job
// posting asks for.
package tailor

import (
	"fmt"
	"strings"

	"jobtailor/internal/resume"
	"jobtailor/internal/types"
)

// Options control heading names and how many skills get highlighted.
type Options struct {
	// MaxHighlights caps the number of skills named in the tailored summary
	// and listed in the highlights section.
	MaxHighlights int
	// SummaryHeading is the section whose body is replaced with the tailored
	// summary sentence.
	SummaryHeading string
	// HighlightsHeading is the injected skills-highlight section, kept
	// distinct from the resume's own skills section.
	HighlightsHeading string
	// SkillsHeading is the resume section read to find overlapping skills.
	SkillsHeading string
}

// DefaultOptions returns the standard heading names and highlight cap.
func DefaultOptions() Options {
	return Options{
		MaxHighlights:     3,
		SummaryHeading:    "SUMMARY",
		HighlightsHeading: "ROLE HIGHLIGHTS",
		SkillsHeading:     "SKILLS",
	}
}

// Result is the outcome of tailoring a resume for one posting.
type Result struct {
	Text           string
	SelectedSkills []string
	// FromOverlap is true when the selected skills were found in the
	// resume's skills section rather than taken from the job's leading
	// skills as a fallback.
	FromOverlap bool
}

// Tailor parses the resume, derives a summary and skill highlights from the
// job, and splices them in. All other sections keep their headings, order,
// and body text unchanged. The derivation reads only the job record and the
// resume's skills section, so tailoring an already-tailored resume for the
// same job yields identical output.
func Tailor(job types.JobPosting, resumeText string, opts Options) (Result, error) {
	defaults := DefaultOptions()
	if opts.MaxHighlights <= 0 {
		opts.MaxHighlights = defaults.MaxHighlights
	}
	if opts.SummaryHeading == "" {
		opts.SummaryHeading = defaults.SummaryHeading
	}
	if opts.HighlightsHeading == "" {
		opts.HighlightsHeading = defaults.HighlightsHeading
	}
	if opts.SkillsHeading == "" {
		opts.SkillsHeading = defaults.SkillsHeading
	}

	doc, err := resume.Parse(resumeText)
	if err != nil {
		return Result{}, err
	}

	selected, fromOverlap := selectSkills(job.Skills, resumeSkillTokens(doc, opts.SkillsHeading), opts.MaxHighlights)

	summary := buildSummary(job, selected)
	if idx := doc.Index(opts.SummaryHeading); idx >= 0 {
		doc.Sections[idx].Body = []string{summary}
	} else {
		doc.Insert(summaryPosition(doc), resume.Section{
			Heading: opts.SummaryHeading,
			Body:    []string{summary},
		})
	}

	highlights := make([]string, 0, len(selected))
	for _, skill := range selected {
		highlights = append(highlights, "- "+skill)
	}
	if idx := doc.Index(opts.HighlightsHeading); idx >= 0 {
		doc.Sections[idx].Body = highlights
	} else {
		doc.Append(resume.Section{Heading: opts.HighlightsHeading, Body: highlights})
	}

	return Result{
		Text:           doc.Render(),
		SelectedSkills: selected,
		FromOverlap:    fromOverlap,
	}, nil
}

// selectSkills intersects the job's skills with the resume's, preserving job
// order. With no overlap it falls back to the job's first skills, capped the
// same way.
func selectSkills(jobSkills []string, resumeTokens map[string]struct{}, max int) ([]string, bool) {
	matched := make([]string, 0, max)
	for _, skill := range jobSkills {
		if _, ok := resumeTokens[normalizeToken(skill)]; ok {
			matched = append(matched, skill)
			if len(matched) == max {
				break
			}
		}
	}
	if len(matched) > 0 {
		return matched, true
	}

	fallback := jobSkills
	if len(fallback) > max {
		fallback = fallback[:max]
	}
	return append([]string(nil), fallback...), false
}

// resumeSkillTokens tokenizes the resume's skills section: bullets stripped,
// comma-separated entries split, lowercased.
func resumeSkillTokens(doc *resume.Document, skillsHeading string) map[string]struct{} {
	tokens := make(map[string]struct{})
	section := doc.Find(skillsHeading)
	if section == nil {
		return tokens
	}
	for _, line := range section.Body {
		line = strings.TrimLeft(line, " \t")
		line = strings.TrimLeft(line, "-*•")
		for _, part := range strings.Split(line, ",") {
			if token := normalizeToken(part); token != "" {
				tokens[token] = struct{}{}
			}
		}
	}
	return tokens
}

func normalizeToken(token string) string {
	return strings.ToLower(strings.TrimSpace(token))
}

func buildSummary(job types.JobPosting, skills []string) string {
	if len(skills) == 0 {
		return fmt.Sprintf("Candidate for the %s role at %s, eager to ramp up on the team's preferred tools and practices.",
			job.Title, job.Company)
	}
	return fmt.Sprintf("Candidate for the %s role at %s. Key strengths for this application: %s.",
		job.Title, job.Company, strings.Join(skills, ", "))
}

// summaryPosition is where a new summary section goes: after the preamble
// and any leading NAME/CONTACT-like sections, otherwise at the top.
func summaryPosition(doc *resume.Document) int {
	pos := 0
	if len(doc.Sections) > 0 && doc.Sections[0].Heading == "" {
		pos = 1
	}
	for pos < len(doc.Sections) && isLeadHeading(doc.Sections[pos].Heading) {
		pos++
	}
	return pos
}

func isLeadHeading(heading string) bool {
	upper := strings.ToUpper(heading)
	return strings.Contains(upper, "NAME") || strings.Contains(upper, "CONTACT")
}
