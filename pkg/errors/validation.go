package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// regionNameRegex matches region names: lowercase words joined by _ or -.
var regionNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// ValidateRegionName validates a region name used as a configuration key.
func ValidateRegionName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidRegion, "region name cannot be empty")
	}
	if len(name) > 64 {
		return New(ErrCodeInvalidRegion, "region name too long (max 64 characters)")
	}
	if !regionNameRegex.MatchString(name) {
		return New(ErrCodeInvalidRegion, "invalid region name: %q", name)
	}
	return nil
}

// ValidateRegion validates a region name and its delimiter pair.
//
// The rules reject configurations that would make injection ambiguous:
//   - Empty delimiters (an empty start marker matches everywhere)
//   - Identical start and end delimiters
//   - Delimiters that contain each other
//   - Control characters other than tab inside a delimiter
func ValidateRegion(name, start, end string) error {
	if err := ValidateRegionName(name); err != nil {
		return err
	}
	if start == "" || end == "" {
		return New(ErrCodeInvalidRegion, "region %q: delimiters cannot be empty", name)
	}
	if start == end {
		return New(ErrCodeInvalidRegion, "region %q: start and end delimiters must differ", name)
	}
	if strings.Contains(start, end) || strings.Contains(end, start) {
		return New(ErrCodeInvalidRegion, "region %q: one delimiter contains the other", name)
	}
	for _, d := range []string{start, end} {
		for _, r := range d {
			if r != '\t' && unicode.IsControl(r) {
				return New(ErrCodeInvalidRegion, "region %q: delimiter contains control characters", name)
			}
		}
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
