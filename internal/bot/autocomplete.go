package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"
)

// Discord caps autocomplete responses at 25 choices.
const maxChoices = 25

// handleAutocomplete answers hero-name autocomplete queries from the
// knowledge base roster.
func (b *Bot) handleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate) {
	query, ok := focusedValue(i.ApplicationCommandData().Options)
	if !ok {
		return
	}

	choices := filterHeroChoices(b.kb.HeroNames(), query)

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	})
}

// focusedValue finds the option currently being typed, descending into
// subcommands.
func focusedValue(options []*discordgo.ApplicationCommandInteractionDataOption) (string, bool) {
	for _, opt := range options {
		if opt.Focused {
			return opt.StringValue(), true
		}
		if len(opt.Options) > 0 {
			if v, ok := focusedValue(opt.Options); ok {
				return v, true
			}
		}
	}
	return "", false
}

// filterHeroChoices matches hero names against the typed query. Prefix
// matches rank before substring matches; at most maxChoices are returned.
func filterHeroChoices(names []string, query string) []*discordgo.ApplicationCommandOptionChoice {
	query = strings.ToLower(strings.TrimSpace(query))

	var matches []string
	var substrMatches []string
	for _, name := range names {
		lower := strings.ToLower(name)
		switch {
		case query == "" || strings.HasPrefix(lower, query):
			matches = append(matches, name)
		case strings.Contains(lower, query):
			substrMatches = append(substrMatches, name)
		}
	}
	matches = append(matches, substrMatches...)

	if len(matches) > maxChoices {
		matches = matches[:maxChoices]
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(matches))
	for _, name := range matches {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  name,
			Value: name,
		})
	}
	return choices
}
