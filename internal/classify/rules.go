// Package classify maps free-text job attributes onto the site's closed enums.
//
// Every mapping is an ordered rule table: the first rule with a matching term wins,
// so the slice order is the priority order.
package classify

import "strings"

// rule maps any of a set of lowercase terms to a result.
type rule[T any] struct {
	terms  []string
	result T
}

// firstMatch returns the result of the first rule that has a term in text.
// text must already be lowercased.
func firstMatch[T any](rules []rule[T], text string) (T, bool) {
	for _, r := range rules {
		for _, term := range r.terms {
			if containsTerm(text, term) {
				return r.result, true
			}
		}
	}
	var zero T
	return zero, false
}

// containsTerm reports whether term occurs in text as a whole word or phrase,
// i.e. not directly preceded or followed by a letter or digit.
// This keeps "cto" from matching inside "director".
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	start := 0
	for {
		i := strings.Index(text[start:], term)
		if i < 0 {
			return false
		}
		i += start
		end := i + len(term)
		if (i == 0 || !isWordByte(text[i-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		start = i + 1
	}
}

func isWordByte(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
