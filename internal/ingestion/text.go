package ingestion

import (
	"regexp"
	"strings"
	"unicode"
)

const (
	// SnippetLength is the maximum number of characters kept in a description snippet.
	SnippetLength = 300
	// snippetMinCut is the earliest position a snippet may be cut back to at a space.
	snippetMinCut = 200
	snippetSuffix = "..."
)

var (
	multiSpace     = regexp.MustCompile(`[ \t\f\v]+`)
	excessiveBlank = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes line endings and spacing in a description while keeping
// its paragraph and bullet structure.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = strings.ReplaceAll(content, "\u00a0", " ")

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = cleanLine(line)
	}

	result := strings.Join(lines, "\n")
	result = excessiveBlank.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine trims a line and collapses inner runs of spaces. Bullet markers keep
// their indentation so nested lists survive.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	if isBulletLine(trimmed) {
		indent := len(line) - len(trimmed)
		return strings.Repeat(" ", indent) + multiSpace.ReplaceAllString(trimmed, " ")
	}
	return multiSpace.ReplaceAllString(trimmed, " ")
}

// isBulletLine checks if a line is a bullet list item
func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") ||
		strings.HasPrefix(line, "• ") || strings.HasPrefix(line, "· ")
}

// Snippet returns a listing-card excerpt of a description.
//
// Descriptions shorter than SnippetLength characters are returned unchanged.
// Longer ones are cut at SnippetLength, moved back to the last whitespace when
// it lies beyond character 200, flattened onto one line and always end in "...".
func Snippet(description string) string {
	runes := []rune(description)
	if len(runes) < SnippetLength {
		return description
	}

	cut := runes[:SnippetLength]
	if i := lastSpace(cut); i > snippetMinCut {
		cut = cut[:i]
	}
	return strings.Join(strings.Fields(string(cut)), " ") + snippetSuffix
}

func lastSpace(runes []rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}
