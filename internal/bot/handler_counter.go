package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/draftbot/internal/analysis"
	"github.com/draftbot/internal/embeds"
)

// handleCounter handles the /counter command.
func (b *Bot) handleCounter(s *discordgo.Session, i *discordgo.InteractionCreate) {
	enemies := collectEnemies(optionMap(i.ApplicationCommandData().Options))

	tipsByHero := analysis.CounterTips(b.kb, enemies)

	var tipEmbeds []*discordgo.MessageEmbed
	for _, enemy := range enemies {
		tips, ok := tipsByHero[enemy]
		if !ok {
			continue
		}
		tipEmbeds = append(tipEmbeds, embeds.CounterTipsForHero(enemy, tips, b.heroIcon(enemy), 0))
	}

	if len(tipEmbeds) == 0 {
		embed := embeds.Info(
			"No counter tips found for **"+strings.Join(enemies, "**, **")+"**. Check the hero names.",
			"",
		)
		tipEmbeds = append(tipEmbeds, embed)
	}

	if len(tipEmbeds) > 10 {
		tipEmbeds = tipEmbeds[:10]
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: tipEmbeds,
		},
	})
}
