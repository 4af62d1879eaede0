// Package wordbank holds the categorized words prompts are drawn from.
package wordbank

import (
	"fmt"

	"github.com/verte-zerg/typerush/internal/model"
)

var builtin = map[model.Category][]string{
	model.Easy: {
		"cat", "dog", "sun", "run", "map", "cup", "hat", "pen", "box", "red",
		"sky", "fish", "tree", "book", "milk", "rain", "star", "moon", "bird", "frog",
		"cake", "door", "game", "hand", "jump", "kite", "lamp", "nest", "ship", "wind",
		"blue", "fast", "gold", "home", "leaf", "road", "seed", "song", "word", "play",
	},
	model.Medium: {
		"garden", "planet", "silver", "rocket", "window", "bridge", "castle", "dragon",
		"forest", "guitar", "harbor", "island", "jungle", "kitten", "ladder", "marble",
		"number", "orange", "puzzle", "rabbit", "school", "thunder", "village", "weather",
		"picture", "library", "blanket", "captain", "diamond", "feather", "journey", "kingdom",
		"lantern", "monster", "popcorn", "quarter", "rainbow", "station", "tractor", "volcano",
	},
	model.Hard: {
		"algorithm", "bureaucracy", "catastrophe", "dichotomy", "ephemeral", "fluorescent",
		"gregarious", "hierarchy", "idiosyncrasy", "juxtaposition", "kaleidoscope", "labyrinthine",
		"mischievous", "necessarily", "onomatopoeia", "pharmaceutical", "quintessential",
		"rhythmically", "surreptitious", "transcendental", "ubiquitous", "vicissitude",
		"whimsicality", "xylophonist", "acquiescence", "conscientious", "entrepreneur",
		"handkerchief", "incomprehensible", "liaison", "maneuverable", "questionnaire",
		"reminiscence", "synchronicity", "thermodynamics", "unequivocally", "worcestershire",
		"zoologically", "accommodate", "embarrassment",
	},
}

// Bank maps each category to a non-empty list of words.
type Bank struct {
	words map[model.Category][]string
}

// Builtin returns a bank backed by the bundled word lists.
func Builtin() *Bank {
	b := &Bank{words: make(map[model.Category][]string, len(builtin))}
	for cat, list := range builtin {
		b.words[cat] = append([]string(nil), list...)
	}
	return b
}

// Override replaces the words of one category.
func (b *Bank) Override(cat model.Category, words []string) error {
	if _, ok := b.words[cat]; !ok {
		return fmt.Errorf("unknown category %q", cat)
	}
	if len(words) == 0 {
		return fmt.Errorf("category %q needs at least one word", cat)
	}
	b.words[cat] = append([]string(nil), words...)
	return nil
}

// LoadOverrides replaces categories with words read from the given files.
// Empty paths keep the bundled list.
func (b *Bank) LoadOverrides(paths map[model.Category]string) error {
	for _, cat := range model.Categories {
		path := paths[cat]
		if path == "" {
			continue
		}
		words, err := LoadWords(path, SingleWord)
		if err != nil {
			return fmt.Errorf("failed to load %s words from %s: %w", cat, path, err)
		}
		if err := b.Override(cat, words); err != nil {
			return err
		}
	}
	return nil
}

// Words returns the word list for a category. The slice must not be modified.
func (b *Bank) Words(cat model.Category) []string {
	return b.words[cat]
}

// ParseCategory resolves a category name.
func ParseCategory(name string) (model.Category, error) {
	for _, cat := range model.Categories {
		if string(cat) == name {
			return cat, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (available: easy, medium, hard)", name)
}
