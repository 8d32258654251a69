package ingestion

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var htmlTag = regexp.MustCompile(`(?i)<\s*/?\s*(p|br|div|ul|ol|li|h[1-6]|strong|em|b|i|span|a)\b[^>]*>`)

// LooksLikeHTML reports whether a description carries markup rather than plain text.
func LooksLikeHTML(s string) bool {
	return htmlTag.MatchString(s)
}

// HTMLToText renders an HTML description as plain text. Block elements become
// line breaks and list items become "- " bullets so CleanText can keep the structure.
func HTMLToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()
	doc.Find("br").ReplaceWithHtml("\n")
	doc.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("- ")
		s.AppendHtml("\n")
	})
	doc.Find("p, div, h1, h2, h3, h4, h5, h6, ul, ol").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n\n")
	})

	return CleanText(doc.Text()), nil
}

// DescriptionText returns the cleaned plain-text form of a feed description,
// converting HTML when present. Unparseable markup falls back to the raw text.
func DescriptionText(raw string) string {
	if !LooksLikeHTML(raw) {
		return CleanText(raw)
	}
	text, err := HTMLToText(raw)
	if err != nil {
		return CleanText(raw)
	}
	return text
}
