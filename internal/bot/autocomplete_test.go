package bot

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var heroNames = []string{
	"Axe", "Bane", "Batrider", "Shadow Demon", "Shadow Fiend", "Shadow Shaman", "Slardar",
}

func TestFilterHeroChoicesPrefixFirst(t *testing.T) {
	choices := filterHeroChoices(heroNames, "sha")

	require.Len(t, choices, 3)
	assert.Equal(t, "Shadow Demon", choices[0].Name)
	assert.Equal(t, "Shadow Fiend", choices[1].Name)
	assert.Equal(t, "Shadow Shaman", choices[2].Name)
}

func TestFilterHeroChoicesSubstringAfterPrefix(t *testing.T) {
	// "ba" is a prefix of Bane and Batrider, and a substring of the others
	choices := filterHeroChoices([]string{"Bane", "Batrider", "Tusk", "Global Ban"}, "ba")

	require.Len(t, choices, 3)
	assert.Equal(t, "Bane", choices[0].Name)
	assert.Equal(t, "Batrider", choices[1].Name)
	assert.Equal(t, "Global Ban", choices[2].Name)
}

func TestFilterHeroChoicesEmptyQuery(t *testing.T) {
	choices := filterHeroChoices(heroNames, "")
	assert.Len(t, choices, len(heroNames))
}

func TestFilterHeroChoicesCap(t *testing.T) {
	var names []string
	for i := 0; i < 40; i++ {
		names = append(names, "Hero "+string(rune('A'+i)))
	}

	choices := filterHeroChoices(names, "hero")
	assert.Len(t, choices, maxChoices)
}

func TestFilterHeroChoicesNoMatch(t *testing.T) {
	assert.Empty(t, filterHeroChoices(heroNames, "zzz"))
}

func TestFocusedValue(t *testing.T) {
	options := []*discordgo.ApplicationCommandInteractionDataOption{
		{
			Name: "set",
			Type: discordgo.ApplicationCommandOptionSubCommand,
			Options: []*discordgo.ApplicationCommandInteractionDataOption{
				{
					Name:    "hero",
					Type:    discordgo.ApplicationCommandOptionString,
					Value:   "Ax",
					Focused: true,
				},
			},
		},
	}

	v, ok := focusedValue(options)
	require.True(t, ok)
	assert.Equal(t, "Ax", v)

	_, ok = focusedValue(nil)
	assert.False(t, ok)
}

func TestCollectEnemies(t *testing.T) {
	strOpt := func(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
		return &discordgo.ApplicationCommandInteractionDataOption{
			Name:  name,
			Type:  discordgo.ApplicationCommandOptionString,
			Value: value,
		}
	}

	opts := optionMap([]*discordgo.ApplicationCommandInteractionDataOption{
		strOpt("enemy1", "Axe"),
		strOpt("enemy2", "  "),
		strOpt("enemy3", "Riki"),
		strOpt("enemy5", "Axe"), // duplicate
	})

	assert.Equal(t, []string{"Axe", "Riki"}, collectEnemies(opts))
}
