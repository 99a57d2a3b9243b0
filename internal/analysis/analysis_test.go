package analysis_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftbot/internal/analysis"
	"github.com/draftbot/internal/data"
)

func testKB() *data.KnowledgeBase {
	normalized := []data.NormalizedHero{
		{Name: "Hero A", SafeName: "hero_a"},
		{Name: "Hero B", SafeName: "hero_b"},
		{Name: "Hero C", SafeName: "hero_c"},
		{Name: "No Document", SafeName: "no_document"},
	}

	strategies := map[string]*data.Strategy{
		"hero_a": {Strategies: data.StrategySections{
			CounterTips: []string{"Buy a Black King Bar to counter Hero A's magic burst"},
		}},
		"hero_b": {Strategies: data.StrategySections{
			GeneralTips: []string{"Farm efficiently", "Ward the jungle"},
		}},
		"hero_c": {Strategies: data.StrategySections{
			GeneralTips: []string{"Play around cooldowns"},
			CounterTips: []string{
				"A black king bar stops the burst. A second Black King Bar will not.",
				"A well-timed Force Staff saves teammates",
			},
		}},
	}

	return data.New(nil, normalized, strategies)
}

func TestSuggestItems(t *testing.T) {
	kb := testKB()

	suggestions := analysis.SuggestItems(kb, []string{"Hero A"})
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Black King Bar", suggestions[0].Item)
	assert.Equal(t, []string{"Hero A"}, suggestions[0].CounteredHeroes)
}

func TestSuggestItemsCatalogOrder(t *testing.T) {
	kb := testKB()

	// Hero C's tips mention Force Staff before Black King Bar would appear
	// alphabetically; output must follow catalog order regardless.
	suggestions := analysis.SuggestItems(kb, []string{"Hero C", "Hero A"})
	require.Len(t, suggestions, 2)
	assert.Equal(t, "Black King Bar", suggestions[0].Item)
	assert.Equal(t, "Force Staff", suggestions[1].Item)

	// First-seen hero order under one item
	assert.Equal(t, []string{"Hero C", "Hero A"}, suggestions[0].CounteredHeroes)
}

func TestSuggestItemsHeroListedOnce(t *testing.T) {
	kb := testKB()

	// Two case-varied mentions in the tips, plus a duplicated input name:
	// the hero still appears once.
	suggestions := analysis.SuggestItems(kb, []string{"Hero C", "Hero C"})
	require.Len(t, suggestions, 2)
	assert.Equal(t, []string{"Hero C"}, suggestions[0].CounteredHeroes)
}

func TestSuggestItemsSkipsMisses(t *testing.T) {
	kb := testKB()

	// Unknown name, hero without a counter_tips field, hero without a
	// document: all silently excluded.
	suggestions := analysis.SuggestItems(kb, []string{"Unknown Hero", "Hero B", "No Document"})
	assert.Empty(t, suggestions)
}

func TestGeneralTips(t *testing.T) {
	kb := testKB()

	tips := analysis.GeneralTips(kb, "Hero B")
	assert.Equal(t, []string{"Farm efficiently", "Ward the jungle"}, tips)

	assert.Empty(t, analysis.GeneralTips(kb, "Unknown Hero"))
	assert.Empty(t, analysis.GeneralTips(kb, "No Document"))
	// Document exists but has no general_tips field
	assert.Empty(t, analysis.GeneralTips(kb, "Hero A"))
}

func TestCounterTips(t *testing.T) {
	kb := testKB()

	tips := analysis.CounterTips(kb, []string{"Hero A", "Unknown Hero"})
	require.Len(t, tips, 1)
	assert.Equal(t,
		[]string{"Buy a Black King Bar to counter Hero A's magic burst"},
		tips["Hero A"])
	assert.NotContains(t, tips, "Unknown Hero")

	// Hero B's document lacks counter tips entirely: no entry, no placeholder
	tips = analysis.CounterTips(kb, []string{"Hero B"})
	assert.Empty(t, tips)
}

func TestQueriesAreIdempotent(t *testing.T) {
	kb := testKB()
	enemies := []string{"Hero A", "Hero C"}

	first := analysis.SuggestItems(kb, enemies)
	second := analysis.SuggestItems(kb, enemies)
	assert.Equal(t, first, second)

	assert.Equal(t, analysis.CounterTips(kb, enemies), analysis.CounterTips(kb, enemies))
	assert.Equal(t, analysis.GeneralTips(kb, "Hero B"), analysis.GeneralTips(kb, "Hero B"))
}

func TestQueriesOnEmptyKnowledgeBase(t *testing.T) {
	kb := data.New(nil, nil, nil)

	assert.Empty(t, analysis.SuggestItems(kb, []string{"Hero A"}))
	assert.Empty(t, analysis.GeneralTips(kb, "Hero A"))
	assert.Empty(t, analysis.CounterTips(kb, []string{"Hero A"}))
}

func TestCounterItemsCatalog(t *testing.T) {
	assert.NotEmpty(t, analysis.CounterItems)
	assert.Equal(t, "Black King Bar", analysis.CounterItems[0])

	seen := make(map[string]bool)
	for _, item := range analysis.CounterItems {
		assert.False(t, seen[item], "duplicate catalog item %q", item)
		seen[item] = true
	}
}
