package ingestion

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

const (
	maxSlugBase      = 80
	slugSuffixLength = 4
	base36           = "0123456789abcdefghijklmnopqrstuvwxyz"
)

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, collapses every run of non-alphanumerics into one hyphen,
// strips leading and trailing hyphens and truncates the result to 80 characters.
func Slugify(s string) string {
	slug := nonAlnum.ReplaceAllString(strings.ToLower(s), "-")
	slug = strings.Trim(slug, "-")
	if len(slug) > maxSlugBase {
		slug = strings.TrimRight(slug[:maxSlugBase], "-")
	}
	return slug
}

// RandomSuffix returns a random 4-character base-36 string.
func RandomSuffix() string {
	b := make([]byte, slugSuffixLength)
	for i := range b {
		b[i] = base36[rand.IntN(len(base36))]
	}
	return string(b)
}

// JobSlug builds the public slug for a posting from its title and company.
// The suffix is not checked against existing slugs.
func JobSlug(title, company string, suffix func() string) string {
	if suffix == nil {
		suffix = RandomSuffix
	}
	base := Slugify(title + " " + company)
	if base == "" {
		return suffix()
	}
	return base + "-" + suffix()
}
