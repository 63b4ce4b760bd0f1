package config

import (
	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultFormat", "text")
	v.SetDefault("app.supportedFormats", []string{"json", "text", "markdown"})
	v.SetDefault("app.maxFileSize", 1024*1024) // 1MB

	// Dataset Configuration; empty path means the embedded dataset
	v.SetDefault("data.path", "")

	// Tailoring policy. When the resume's skills section has no overlap with
	// the job's skills, the first maxHighlights job skills are used instead.
	v.SetDefault("tailor.maxHighlights", 3)
	v.SetDefault("tailor.summaryHeading", "SUMMARY")
	v.SetDefault("tailor.highlightsHeading", "ROLE HIGHLIGHTS")
	v.SetDefault("tailor.skillsHeading", "SKILLS")
}
