// AngelaMos | 2026
// showcase_test.go

package startup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func card(id, name, description, username string, created time.Time) ShowcaseStartup {
	return ShowcaseStartup{
		StartupResponse: StartupResponse{
			ID:          id,
			Name:        name,
			Description: description,
			CreatedAt:   created,
		},
		Username: username,
	}
}

func TestParseSortOrder(t *testing.T) {
	tests := []struct {
		raw  string
		want SortOrder
	}{
		{"newest", SortNewest},
		{"oldest", SortOldest},
		{"name", SortName},
		{"NAME", SortName},
		{" oldest ", SortOldest},
		{"", SortNewest},
		{"garbage", SortNewest},
	}

	for _, tt := range tests {
		t.Run("raw="+tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortOrder(tt.raw))
		})
	}
}

func TestFilterAndSort_SearchIsCaseInsensitive(t *testing.T) {
	now := time.Now()
	cards := []ShowcaseStartup{
		card("1", "RocketShip", "goes to space", "ada", now),
		card("2", "Bakery", "fresh BREAD daily", "grace", now),
		card("3", "Consulting", "boring", "rocketeer", now),
	}

	byName := FilterAndSort(cards, "rocket", SortName)
	require.Len(t, byName, 2)
	assert.Equal(t, "Consulting", byName[0].Name)
	assert.Equal(t, "RocketShip", byName[1].Name)

	byDescription := FilterAndSort(cards, "bread", SortNewest)
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Bakery", byDescription[0].Name)

	none := FilterAndSort(cards, "nomatch", SortNewest)
	assert.Empty(t, none)
}

func TestFilterAndSort_NewestFirstByDefault(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cards := []ShowcaseStartup{
		card("a", "Old", "", "u", base),
		card("b", "New", "", "u", base.Add(time.Hour)),
		card("c", "Middle", "", "u", base.Add(time.Minute)),
	}

	sorted := FilterAndSort(cards, "", SortNewest)
	require.Len(t, sorted, 3)
	assert.Equal(t, "New", sorted[0].Name)
	assert.Equal(t, "Middle", sorted[1].Name)
	assert.Equal(t, "Old", sorted[2].Name)
}

func TestFilterAndSort_OldestReversesNewest(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cards := []ShowcaseStartup{
		card("a", "First", "", "u", base),
		card("b", "Second", "", "u", base.Add(time.Hour)),
	}

	sorted := FilterAndSort(cards, "", SortOldest)
	assert.Equal(t, "First", sorted[0].Name)
	assert.Equal(t, "Second", sorted[1].Name)
}

func TestFilterAndSort_NameIsCaseInsensitive(t *testing.T) {
	now := time.Now()
	cards := []ShowcaseStartup{
		card("1", "zebra", "", "u", now),
		card("2", "Apple", "", "u", now),
		card("3", "mango", "", "u", now),
	}

	sorted := FilterAndSort(cards, "", SortName)
	assert.Equal(t, "Apple", sorted[0].Name)
	assert.Equal(t, "mango", sorted[1].Name)
	assert.Equal(t, "zebra", sorted[2].Name)
}

func TestFilterAndSort_TiesBreakOnID(t *testing.T) {
	same := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cards := []ShowcaseStartup{
		card("aaa", "Twin", "", "u", same),
		card("zzz", "Twin", "", "u", same),
	}

	newest := FilterAndSort(cards, "", SortNewest)
	assert.Equal(t, "zzz", newest[0].ID)
	assert.Equal(t, "aaa", newest[1].ID)

	oldest := FilterAndSort(cards, "", SortOldest)
	assert.Equal(t, "aaa", oldest[0].ID)

	byName := FilterAndSort(cards, "", SortName)
	assert.Equal(t, "aaa", byName[0].ID)
}
