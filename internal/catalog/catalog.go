// Package catalog loads the job posting dataset and resolves postings by id.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"jobtailor/internal/errors"
	"jobtailor/internal/types"

	"github.com/go-playground/validator/v10"
)

//go:embed data/jobs.json
var defaultData embed.FS

// requiredKeys are the dataset keys every job entry must carry. Presence is
// checked against the raw JSON object so an absent key is a load error, not a
// zero value.
var requiredKeys = []string{
	"id", "title", "company", "location", "type", "summary",
	"skills", "tools", "experience_level", "description", "responsibilities",
}

// Catalog holds the ordered job postings loaded from a dataset file.
type Catalog struct {
	jobs []types.JobPosting
	byID map[string]int
}

// Load reads and parses a job dataset from the given path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewIOError(errors.ErrCodeFileNotFound,
				fmt.Sprintf("Job dataset not found: %s", path), err)
		}
		return nil, errors.NewIOError(errors.ErrCodeFileNotReadable,
			fmt.Sprintf("Cannot read job dataset: %s", path), err)
	}
	return Parse(raw)
}

// LoadDefault parses the dataset compiled into the binary, used when no
// --data path is supplied.
func LoadDefault() (*Catalog, error) {
	raw, err := defaultData.ReadFile("data/jobs.json")
	if err != nil {
		return nil, errors.NewInternalError("EMBEDDED_DATA_UNAVAILABLE",
			"Embedded job dataset could not be read", err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw dataset bytes, preserving file order.
func Parse(raw []byte) (*Catalog, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, errors.NewDataFormatError(errors.ErrCodeDataFormat,
			"Job dataset is not a valid JSON array", err)
	}

	validate := validator.New()
	jobs := make([]types.JobPosting, 0, len(entries))
	byID := make(map[string]int, len(entries))

	for i, entry := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			return nil, errors.NewDataFormatError(errors.ErrCodeDataFormat,
				fmt.Sprintf("Job entry %d is not a JSON object", i), err)
		}
		for _, key := range requiredKeys {
			if _, ok := fields[key]; !ok {
				return nil, errors.NewDataFormatError(errors.ErrCodeMissingField,
					fmt.Sprintf("Job entry %d is missing required key %q", i, key), nil).
					WithContext("entry_index", i).
					WithContext("missing_key", key)
			}
		}

		var job types.JobPosting
		if err := json.Unmarshal(entry, &job); err != nil {
			return nil, errors.NewDataFormatError(errors.ErrCodeDataFormat,
				fmt.Sprintf("Job entry %d has a field of the wrong type", i), err)
		}
		if err := validate.Struct(job); err != nil {
			return nil, errors.NewDataFormatError(errors.ErrCodeDataFormat,
				fmt.Sprintf("Job entry %d failed validation", i), err)
		}
		if prev, ok := byID[job.ID]; ok {
			return nil, errors.NewDataFormatError(errors.ErrCodeDuplicateJobID,
				fmt.Sprintf("Job id %q appears at entries %d and %d", job.ID, prev, i), nil)
		}

		byID[job.ID] = i
		jobs = append(jobs, job)
	}

	return &Catalog{jobs: jobs, byID: byID}, nil
}

// Jobs returns the postings in dataset order.
func (c *Catalog) Jobs() []types.JobPosting {
	return c.jobs
}

// Len returns the number of postings in the catalog.
func (c *Catalog) Len() int {
	return len(c.jobs)
}

// Get resolves a posting by exact, case-sensitive id.
func (c *Catalog) Get(id string) (types.JobPosting, error) {
	idx, ok := c.byID[id]
	if !ok {
		return types.JobPosting{}, errors.NewJobNotFoundError(errors.ErrCodeJobNotFound,
			fmt.Sprintf("Job with id %q not found in catalog", id), nil).
			WithContext("job_id", id)
	}
	return c.jobs[idx], nil
}
