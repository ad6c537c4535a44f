package resolver

import (
	"sort"
	"strings"

	"call-retrieval-go/internal/dataset"
)

const topThemeCount = 5

type Summary struct {
	TotalCalls  int            `json:"total_calls"`
	BySentiment map[string]int `json:"by_sentiment"`
	TopThemes   []string       `json:"top_themes"`
}

// Summarize aggregates the snapshot once at startup: sentiment distribution
// plus the most frequent decoded themes across all calls.
func Summarize(ds *dataset.Dataset) Summary {
	bySentiment := map[string]int{}
	themeCounts := map[string]int{}
	total := 0

	ds.Each(func(_ string, row dataset.Row) {
		total++
		if s, ok := row[colSentiment]; ok {
			bySentiment[strings.ToLower(s)]++
		}
		if raw, ok := row[colThemes]; ok {
			if themes, ok := decodeListLiteral(raw); ok {
				for _, t := range themes {
					themeCounts[t]++
				}
			}
		}
	})

	type themeCount struct {
		theme string
		count int
	}
	var ranked []themeCount
	for t, c := range themeCounts {
		ranked = append(ranked, themeCount{t, c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].theme < ranked[j].theme
	})
	top := []string{}
	for i := 0; i < len(ranked) && i < topThemeCount; i++ {
		top = append(top, ranked[i].theme)
	}

	return Summary{TotalCalls: total, BySentiment: bySentiment, TopThemes: top}
}
