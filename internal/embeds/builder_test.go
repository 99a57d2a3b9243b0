package embeds

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftbot/internal/analysis"
)

func TestGetHeroIcon(t *testing.T) {
	assert.Contains(t, GetHeroIcon("axe"), "/heroes/axe.png")

	// Engine names that differ from the display-derived safe name
	assert.Contains(t, GetHeroIcon("anti_mage"), "/heroes/antimage.png")
	assert.Contains(t, GetHeroIcon("shadow_fiend"), "/heroes/nevermore.png")
	assert.Contains(t, GetHeroIcon("windranger"), "/heroes/windrunner.png")
}

func TestItemSuggestions(t *testing.T) {
	embed := ItemSuggestions(nil)
	assert.Equal(t, "No specific item counters found.", embed.Description)

	embed = ItemSuggestions([]analysis.ItemSuggestion{
		{Item: "Black King Bar", CounteredHeroes: []string{"Hero A", "Hero B"}},
		{Item: "Force Staff", CounteredHeroes: []string{"Hero A"}},
	})
	assert.Contains(t, embed.Description, "**Black King Bar** — against Hero A, Hero B")
	assert.Contains(t, embed.Description, "**Force Staff** — against Hero A")
}

func TestHeroTipsTruncation(t *testing.T) {
	tips := []string{"one", "two", "three", "four", "five", "six", "seven"}

	embed := HeroTips("Axe", tips, "")
	assert.Equal(t, 5, strings.Count(embed.Description, "• "))
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Showing 5 of 7 tips", embed.Footer.Text)

	embed = HeroTips("Axe", tips[:3], "")
	assert.Equal(t, 3, strings.Count(embed.Description, "• "))
	assert.Nil(t, embed.Footer)
}

func TestHeroTipsEmpty(t *testing.T) {
	embed := HeroTips("Axe", nil, "https://example.com/axe.png")
	assert.Equal(t, "No tips found.", embed.Description)
	require.NotNil(t, embed.Thumbnail)
	assert.Equal(t, "https://example.com/axe.png", embed.Thumbnail.URL)
}

func TestCounterTipsForHero(t *testing.T) {
	tips := []string{"first", "second", "third", "fourth"}

	// maxTips 0 shows everything
	embed := CounterTipsForHero("Axe", tips, "", 0)
	assert.Equal(t, 4, strings.Count(embed.Description, "• "))
	assert.Nil(t, embed.Footer)

	embed = CounterTipsForHero("Axe", tips, "", 3)
	assert.Equal(t, 3, strings.Count(embed.Description, "• "))
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Showing 3 of 4 tips", embed.Footer.Text)
}

func TestClampDescription(t *testing.T) {
	long := strings.Repeat("a", maxDescription+100)
	clamped := clampDescription(long)
	assert.LessOrEqual(t, len([]rune(clamped)), maxDescription)
	assert.True(t, strings.HasSuffix(clamped, "…"))

	short := "fits"
	assert.Equal(t, short, clampDescription(short))
}

func TestItemCatalog(t *testing.T) {
	embed := ItemCatalog(analysis.CounterItems)
	assert.Contains(t, embed.Description, "Black King Bar")
	require.NotNil(t, embed.Footer)
	assert.Equal(t,
		fmt.Sprintf("%d items checked against counter-tip text", len(analysis.CounterItems)),
		embed.Footer.Text)
}
