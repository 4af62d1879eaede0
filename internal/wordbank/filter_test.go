package wordbank

import "testing"

func TestSingleWord(t *testing.T) {
	if !SingleWord("hello") {
		t.Fatalf("expected hello to pass")
	}
	if !SingleWord("résumé") {
		t.Fatalf("expected non-ascii word to pass")
	}
	for _, word := range []string{"", "two words", "tab\there", "bell\a"} {
		if SingleWord(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
