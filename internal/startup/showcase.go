// AngelaMos | 2026
// showcase.go

package startup

import (
	"sort"
	"strings"
)

type SortOrder string

const (
	SortNewest SortOrder = "newest"
	SortOldest SortOrder = "oldest"
	SortName   SortOrder = "name"
)

// ParseSortOrder maps a query parameter to a sort order. Anything
// unrecognized, including the empty string, falls back to newest.
func ParseSortOrder(raw string) SortOrder {
	switch SortOrder(strings.ToLower(strings.TrimSpace(raw))) {
	case SortOldest:
		return SortOldest
	case SortName:
		return SortName
	default:
		return SortNewest
	}
}

// FilterAndSort applies the showcase search and ordering in memory. Search
// matches a case-insensitive substring against name, description, and the
// resolved founder username. The sort is stable with id as tie-break so
// rows created in the same instant keep a deterministic order.
func FilterAndSort(
	cards []ShowcaseStartup,
	search string,
	order SortOrder,
) []ShowcaseStartup {
	search = strings.ToLower(strings.TrimSpace(search))
	if search != "" {
		filtered := make([]ShowcaseStartup, 0, len(cards))
		for _, c := range cards {
			if strings.Contains(strings.ToLower(c.Name), search) ||
				strings.Contains(strings.ToLower(c.Description), search) ||
				strings.Contains(strings.ToLower(c.Username), search) {
				filtered = append(filtered, c)
			}
		}
		cards = filtered
	}

	switch order {
	case SortOldest:
		sort.SliceStable(cards, func(i, j int) bool {
			if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
				return cards[i].CreatedAt.Before(cards[j].CreatedAt)
			}
			return cards[i].ID < cards[j].ID
		})
	case SortName:
		sort.SliceStable(cards, func(i, j int) bool {
			ni := strings.ToLower(cards[i].Name)
			nj := strings.ToLower(cards[j].Name)
			if ni != nj {
				return ni < nj
			}
			return cards[i].ID < cards[j].ID
		})
	default:
		sort.SliceStable(cards, func(i, j int) bool {
			if !cards[i].CreatedAt.Equal(cards[j].CreatedAt) {
				return cards[i].CreatedAt.After(cards[j].CreatedAt)
			}
			return cards[i].ID > cards[j].ID
		})
	}

	return cards
}
