package wordbank

import "unicode"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// SingleWord keeps entries that are one printable token. A prompt is words
// joined by single spaces, so an entry with whitespace would be ambiguous.
func SingleWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
