// Package growurl builds groww.in detail-page links from fund names.
// Purely cosmetic; the links are attached to responses for convenience and
// play no part in scoring or ranking.
package growurl

import "strings"

const baseURL = "https://groww.in/mutual-funds/"

// Common words groww.in drops from its URL slugs.
var droppedWords = []string{"fund", "direct", "growth", "option"}

// ForFund returns the groww.in URL for a fund name.
// The replacement sequence is ordered to match the slugs groww.in actually
// serves; changing the order changes the output.
func ForFund(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	for _, ch := range []string{"(", ")", ".", ","} {
		slug = strings.ReplaceAll(slug, ch, "")
	}
	slug = strings.ReplaceAll(slug, "&", "and")

	for _, word := range droppedWords {
		slug = strings.ReplaceAll(slug, word, "")
	}

	// Collapse the dashes left behind by dropped words.
	parts := strings.Split(slug, "-")
	kept := parts[:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return baseURL + strings.Join(kept, "-")
}
