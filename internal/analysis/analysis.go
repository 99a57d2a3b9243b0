// Package analysis implements the draft query engine: pure lookups over the
// knowledge base, no state and no I/O. Missing heroes, documents or fields
// always yield absence, never an error.
package analysis

import (
	"slices"
	"strings"

	"github.com/draftbot/internal/data"
)

// ItemSuggestion is one catalog item together with the enemy heroes whose
// counter tips mention it.
type ItemSuggestion struct {
	Item            string
	CounteredHeroes []string
}

// SuggestItems scans each enemy's counter-tip text for catalog item names and
// returns the matching items in catalog order. Hero lists keep first-seen
// order and never repeat a hero. Unknown names and heroes without counter
// tips are skipped silently.
//
// The match is a plain case-insensitive substring test, no word-boundary
// guard. An item name occurring inside a longer word still counts.
func SuggestItems(kb *data.KnowledgeBase, enemyHeroes []string) []ItemSuggestion {
	matched := make(map[string][]string)

	for _, heroName := range enemyHeroes {
		tips, ok := counterTipsFor(kb, heroName)
		if !ok {
			continue
		}

		blob := strings.ToLower(strings.Join(tips, " "))

		for _, item := range CounterItems {
			if !strings.Contains(blob, strings.ToLower(item)) {
				continue
			}
			if !slices.Contains(matched[item], heroName) {
				matched[item] = append(matched[item], heroName)
			}
		}
	}

	var suggestions []ItemSuggestion
	for _, item := range CounterItems {
		if heroes, ok := matched[item]; ok {
			suggestions = append(suggestions, ItemSuggestion{Item: item, CounteredHeroes: heroes})
		}
	}
	return suggestions
}

// GeneralTips returns the general strategy tips for a hero, verbatim and in
// source order. Any miss along the way yields an empty list.
func GeneralTips(kb *data.KnowledgeBase, heroName string) []string {
	ref, ok := kb.Resolve(heroName)
	if !ok {
		return nil
	}
	st, ok := kb.Strategy(ref.SafeName)
	if !ok {
		return nil
	}
	return st.Strategies.GeneralTips
}

// CounterTips returns the verbatim counter-tip lists keyed by enemy display
// name. Enemies that do not resolve, or whose document lacks counter tips,
// are simply absent from the result.
func CounterTips(kb *data.KnowledgeBase, enemyHeroes []string) map[string][]string {
	out := make(map[string][]string)
	for _, heroName := range enemyHeroes {
		if tips, ok := counterTipsFor(kb, heroName); ok {
			out[heroName] = tips
		}
	}
	return out
}

// counterTipsFor resolves one hero to its counter-tip list. A nil slice in
// the document means the field was absent from the source file.
func counterTipsFor(kb *data.KnowledgeBase, heroName string) ([]string, bool) {
	ref, ok := kb.Resolve(heroName)
	if !ok {
		return nil, false
	}
	st, ok := kb.Strategy(ref.SafeName)
	if !ok || st.Strategies.CounterTips == nil {
		return nil, false
	}
	return st.Strategies.CounterTips, true
}
