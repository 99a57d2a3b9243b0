package bot

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/draftbot/internal/analysis"
	"github.com/draftbot/internal/embeds"
)

// handleTips handles the /tips command.
func (b *Bot) handleTips(s *discordgo.Session, i *discordgo.InteractionCreate) {
	hero := strings.TrimSpace(i.ApplicationCommandData().Options[0].StringValue())

	tips := analysis.GeneralTips(b.kb, hero)
	embed := embeds.HeroTips(hero, tips, b.heroIcon(hero))

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// handleItems handles the /items command.
func (b *Bot) handleItems(s *discordgo.Session, i *discordgo.InteractionCreate) {
	embed := embeds.ItemCatalog(analysis.CounterItems)

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}
