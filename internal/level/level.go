// Package level defines the fixed difficulty table and score tiers.
package level

import (
	"fmt"

	"github.com/verte-zerg/typerush/internal/model"
)

const (
	// Min is the level every game starts at.
	Min = 1
	// Max is the highest reachable level.
	Max = 7
)

var table = [Max + 1]model.LevelEntry{
	1: {TimeBudget: 25, Category: model.Easy},
	2: {TimeBudget: 15, Category: model.Easy},
	3: {TimeBudget: 10, Category: model.Medium},
	4: {TimeBudget: 5, Category: model.Medium},
	5: {TimeBudget: 2, Category: model.Hard},
	6: {TimeBudget: 2, Category: model.Hard},
	7: {TimeBudget: 1, Category: model.Hard},
}

// Tier is the round size reached once the score hits MinScore.
type Tier struct {
	MinScore int
	Words    int
}

// tiers are checked highest first.
var tiers = []Tier{
	{MinScore: 250, Words: 5},
	{MinScore: 180, Words: 4},
	{MinScore: 120, Words: 3},
	{MinScore: 50, Words: 2},
	{MinScore: 0, Words: 1},
}

// Lookup returns the entry for a level, clamped to [Min, Max].
func Lookup(n int) model.LevelEntry {
	return table[clamp(n)]
}

// WordCount returns how many words a round has at the given score.
func WordCount(score int) int {
	for _, tier := range tiers {
		if score >= tier.MinScore {
			return tier.Words
		}
	}
	return 1
}

// Tiers returns the round sizes in ascending score order.
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	for i, tier := range tiers {
		out[len(tiers)-1-i] = tier
	}
	return out
}

// RoundBudget returns the seconds allowed for a round.
func RoundBudget(n, score int) int {
	return Lookup(n).TimeBudget * WordCount(score)
}

// Label renders the level read-out.
func Label(n int) string {
	if n >= Max {
		return fmt.Sprintf("Level %d (MAX)", n)
	}
	return fmt.Sprintf("Level %d", n)
}

// Entries returns the table rows in level order.
func Entries() []model.LevelEntry {
	out := make([]model.LevelEntry, 0, Max)
	for n := Min; n <= Max; n++ {
		out = append(out, table[n])
	}
	return out
}

func clamp(n int) int {
	if n < Min {
		return Min
	}
	if n > Max {
		return Max
	}
	return n
}
