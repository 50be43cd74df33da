// Package stem turns a typed name into the sequence of letters the garden
// renders. The first letter of a non-empty name is the anchor (the blossom);
// all following letters carry only the base tag.
package stem

import "strings"

// Letter is one rendered character unit.
type Letter struct {
	Rune   rune
	Anchor bool
}

// Build lowercases text and returns one Letter per rune, in input order.
// Exactly the first Letter has Anchor set; empty input yields nil.
// Non-letter runes are accepted and carried through as-is.
func Build(text string) []Letter {
	if text == "" {
		return nil
	}
	runes := []rune(strings.ToLower(text))
	letters := make([]Letter, len(runes))
	for i, r := range runes {
		letters[i] = Letter{Rune: r, Anchor: i == 0}
	}
	return letters
}

// Normalize trims surrounding whitespace and lowercases, the same cleanup
// applied to names before they are planted.
func Normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
