package classify

import (
	"slices"
	"strings"

	"github.com/fractionalquest/fractional-quest/internal/types"
)

// fractionalKeywords signal a non-permanent engagement when found anywhere in the
// title or an employment-type tag.
var fractionalKeywords = []string{
	"fractional",
	"interim",
	"part-time",
	"part time",
	"contract",
	"consulting",
	"consultant",
	"advisor",
	"temporary",
	"freelance",
	"portfolio",
	"flexible",
}

// fractionalTags are employment-type tags that qualify a posting on their own.
var fractionalTags = []string{"contractor", "part_time", "temporary"}

// IsFractional reports whether a posting looks fractional, interim or part-time.
// Matching is a plain case-insensitive substring test.
func IsFractional(title string, employmentTypes []string) bool {
	lowerTitle := strings.ToLower(title)
	for _, kw := range fractionalKeywords {
		if strings.Contains(lowerTitle, kw) {
			return true
		}
	}

	for _, tag := range employmentTypes {
		lowerTag := strings.ToLower(strings.TrimSpace(tag))
		if slices.Contains(fractionalTags, lowerTag) {
			return true
		}
		for _, kw := range fractionalKeywords {
			if strings.Contains(lowerTag, kw) {
				return true
			}
		}
	}
	return false
}

// IsFractionalJob applies IsFractional to a feed record.
func IsFractionalJob(job *types.LinkedInJob) bool {
	return IsFractional(job.Title, job.EmploymentType)
}
