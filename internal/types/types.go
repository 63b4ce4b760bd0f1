package types

// JobPosting is one entry in the job catalog. Field names mirror the keys of
// the JSON dataset file; every listed key must be present at load time.
type JobPosting struct {
	ID               string   `json:"id" validate:"required"`
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	Summary          string   `json:"summary"`
	Skills           []string `json:"skills"`
	Tools            []string `json:"tools"`
	ExperienceLevel  string   `json:"experience_level"`
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
}

// SearchQuery echoes the filters a search ran with.
type SearchQuery struct {
	Keywords        []string `json:"keywords,omitempty"`
	LocationPattern string   `json:"locationPattern,omitempty"`
}

// SearchOutput represents the result of a catalog search.
type SearchOutput struct {
	Query SearchQuery  `json:"query"`
	Count int          `json:"count"`
	Jobs  []JobPosting `json:"jobs"`
}

// TailorOutput represents the result of tailoring a resume for a job.
type TailorOutput struct {
	JobID          string   `json:"jobId"`
	JobTitle       string   `json:"jobTitle"`
	Company        string   `json:"company"`
	SelectedSkills []string `json:"selectedSkills"`
	// SkillsFromOverlap is true when the highlighted skills were found in the
	// resume's own SKILLS section, false when the tool fell back to the job's
	// leading skills.
	SkillsFromOverlap bool   `json:"skillsFromOverlap"`
	TailoredResume    string `json:"tailoredResume"`
	OutputFile        string `json:"outputFile,omitempty"`
}
