package stats

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/verte-zerg/typerush/internal/level"
	"github.com/verte-zerg/typerush/internal/model"
)

var (
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numericStyle = cellStyle.Align(lipgloss.Right)
)

// RenderLevelTable prints every level with the seconds a round gets at each
// round size.
func RenderLevelTable(w io.Writer) error {
	tiers := level.Tiers()
	headers := []string{"Level", "Words", "Sec/word"}
	for _, tier := range tiers {
		headers = append(headers, pluralWords(tier.Words))
	}

	rows := make([][]string, 0, level.Max)
	for i, entry := range level.Entries() {
		n := level.Min + i
		row := []string{strconv.Itoa(n), string(entry.Category), strconv.Itoa(entry.TimeBudget)}
		for _, tier := range tiers {
			row = append(row, strconv.Itoa(level.RoundBudget(n, tier.MinScore))+"s")
		}
		rows = append(rows, row)
	}
	return writeTable(w, headers, rows, func(col int) bool { return col != 1 })
}

// RenderTierTable prints the score at which each round size begins.
func RenderTierTable(w io.Writer) error {
	tiers := level.Tiers()
	rows := make([][]string, 0, len(tiers))
	for _, tier := range tiers {
		rows = append(rows, []string{strconv.Itoa(tier.MinScore), pluralWords(tier.Words)})
	}
	return writeTable(w, []string{"Score", "Round"}, rows, func(col int) bool { return col == 0 })
}

// RenderWordCounts prints how many words each category holds.
func RenderWordCounts(w io.Writer, counts map[model.Category]int) error {
	rows := make([][]string, 0, len(model.Categories))
	for _, cat := range model.Categories {
		rows = append(rows, []string{string(cat), strconv.Itoa(counts[cat])})
	}
	return writeTable(w, []string{"Category", "Words"}, rows, func(col int) bool { return col == 1 })
}

func pluralWords(n int) string {
	if n == 1 {
		return "1 word"
	}
	return fmt.Sprintf("%d words", n)
}

// writeTable draws rows with inner rules only, so the output stays readable
// when piped.
func writeTable(w io.Writer, headers []string, rows [][]string, numeric func(col int) bool) error {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row != table.HeaderRow && numeric(col) {
				return numericStyle
			}
			return cellStyle
		})
	_, err := fmt.Fprintln(w, t.Render())
	return err
}
