// Package search filters job postings by keywords and location pattern.
package search

import (
	"fmt"
	"regexp"
	"strings"

	"jobtailor/internal/errors"
	"jobtailor/internal/types"
)

// Search returns the postings matching all supplied filters, in catalog
// order. Every keyword must appear as a case-insensitive substring in at
// least one of title, summary, description, or a skills entry. The location
// pattern is a case-insensitive regular expression matched anywhere within
// the location field. With no filters, all postings match.
func Search(jobs []types.JobPosting, keywords []string, locationPattern string) ([]types.JobPosting, error) {
	terms := normalizeKeywords(keywords)

	var locationRe *regexp.Regexp
	if locationPattern != "" {
		re, err := regexp.Compile("(?i)" + locationPattern)
		if err != nil {
			return nil, errors.NewPatternError(errors.ErrCodeInvalidPattern,
				fmt.Sprintf("Invalid location pattern %q", locationPattern), err)
		}
		locationRe = re
	}

	matches := make([]types.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if locationRe != nil && !locationRe.MatchString(job.Location) {
			continue
		}
		if !matchesAllKeywords(job, terms) {
			continue
		}
		matches = append(matches, job)
	}
	return matches, nil
}

// normalizeKeywords trims terms, drops blanks, and lowercases for matching.
func normalizeKeywords(keywords []string) []string {
	terms := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" {
			terms = append(terms, kw)
		}
	}
	return terms
}

func matchesAllKeywords(job types.JobPosting, terms []string) bool {
	for _, term := range terms {
		if !matchesKeyword(job, term) {
			return false
		}
	}
	return true
}

func matchesKeyword(job types.JobPosting, term string) bool {
	for _, field := range []string{job.Title, job.Summary, job.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	for _, skill := range job.Skills {
		if strings.Contains(strings.ToLower(skill), term) {
			return true
		}
	}
	return false
}
