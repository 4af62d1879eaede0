// Package generator builds typing prompts.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// Generator draws random words for prompts.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed. A zero seed falls back to
// the current time.
func NewSeeded(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Draw selects count words independently and uniformly, with replacement.
func (g *Generator) Draw(words []string, count int) []string {
	if len(words) == 0 || count <= 0 {
		return nil
	}
	result := make([]string, 0, count)
	for i := 0; i < count; i++ {
		result = append(result, words[g.rnd.Intn(len(words))])
	}
	return result
}

// Prompt draws count words and joins them with single spaces.
func (g *Generator) Prompt(words []string, count int) string {
	return strings.Join(g.Draw(words, count), " ")
}
