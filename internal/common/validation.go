package common

import (
	"fmt"
	"slices"

	"jobtailor/internal/errors"
)

// ValidateOutputFormat checks a requested output format against the
// configured supported formats. An empty supported list means no
// restriction.
func ValidateOutputFormat(format string, supportedFormats []string) error {
	if len(supportedFormats) == 0 {
		return nil
	}

	if slices.Contains(supportedFormats, format) {
		return nil
	}

	return errors.NewValidationError(errors.ErrCodeInvalidFormat,
		fmt.Sprintf("Unsupported output format %q (supported: %v)", format, supportedFormats), nil).
		WithContext("format", format)
}

// GetSupportedFormats returns the list of supported formats
func GetSupportedFormats(supportedFormats []string) []string {
	return supportedFormats
}
