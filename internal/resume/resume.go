// Package resume parses plain-text resumes into heading-delimited sections
// and renders them back to text.
package resume

import (
	"regexp"
	"strings"

	"jobtailor/internal/errors"
)

// Section is a heading line plus its body lines. The preamble (lines before
// the first heading) is a section with an empty heading.
type Section struct {
	Heading string
	Body    []string
}

// Document is an ordered sequence of resume sections.
type Document struct {
	Sections []Section
}

// headingPattern matches a trimmed line of uppercase letters and spaces with
// at least one letter.
var headingPattern = regexp.MustCompile(`^[A-Z][A-Z ]*$`)

// IsHeading reports whether a raw line starts a new section: no leading
// indentation or bullet, and solely uppercase letters and spaces.
func IsHeading(line string) bool {
	if line == "" {
		return false
	}
	if line[0] == ' ' || line[0] == '\t' {
		return false
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•") {
		return false
	}
	return headingPattern.MatchString(strings.TrimRight(line, " "))
}

// Parse splits resume text into sections. Interior blank lines of a body are
// preserved; trailing blank lines are treated as the inter-section separator
// and dropped, so rendering is stable across repeated parse/render cycles.
func Parse(text string) (*Document, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewResumeFormatError(errors.ErrCodeEmptyResume,
			"Resume input is empty", nil)
	}

	doc := &Document{}
	current := -1
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		if IsHeading(line) {
			doc.Sections = append(doc.Sections, Section{Heading: strings.TrimRight(line, " ")})
			current = len(doc.Sections) - 1
			continue
		}
		if current == -1 {
			doc.Sections = append(doc.Sections, Section{})
			current = 0
		}
		doc.Sections[current].Body = append(doc.Sections[current].Body, line)
	}

	for i := range doc.Sections {
		doc.Sections[i].Body = trimTrailingBlanks(doc.Sections[i].Body)
	}
	// A preamble of nothing but blank lines is not a section.
	if len(doc.Sections) > 0 && doc.Sections[0].Heading == "" && len(doc.Sections[0].Body) == 0 {
		doc.Sections = doc.Sections[1:]
	}

	return doc, nil
}

// Index returns the position of the section whose heading matches, compared
// case-insensitively, or -1 if absent. Headings keep their original case.
func (d *Document) Index(heading string) int {
	for i, section := range d.Sections {
		if strings.EqualFold(strings.TrimSpace(section.Heading), strings.TrimSpace(heading)) {
			return i
		}
	}
	return -1
}

// Find returns the section with the given heading, or nil.
func (d *Document) Find(heading string) *Section {
	if i := d.Index(heading); i >= 0 {
		return &d.Sections[i]
	}
	return nil
}

// Insert places a section at the given position.
func (d *Document) Insert(pos int, section Section) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(d.Sections) {
		pos = len(d.Sections)
	}
	d.Sections = append(d.Sections, Section{})
	copy(d.Sections[pos+1:], d.Sections[pos:])
	d.Sections[pos] = section
}

// Append adds a section at the end of the document.
func (d *Document) Append(section Section) {
	d.Sections = append(d.Sections, section)
}

// Render reassembles the document: heading lines verbatim, one blank line
// between sections, trailing newline.
func (d *Document) Render() string {
	parts := make([]string, 0, len(d.Sections))
	for _, section := range d.Sections {
		var b strings.Builder
		if section.Heading != "" {
			b.WriteString(section.Heading)
			if len(section.Body) > 0 {
				b.WriteString("\n")
			}
		}
		b.WriteString(strings.Join(section.Body, "\n"))
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func trimTrailingBlanks(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end]
}
