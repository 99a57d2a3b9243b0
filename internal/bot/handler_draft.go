package bot

import (
	"fmt"
	"slices"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/draftbot/internal/analysis"
	"github.com/draftbot/internal/embeds"
)

// handleDraft handles the /draft command: full analysis against up to five
// enemy heroes.
func (b *Bot) handleDraft(s *discordgo.Session, i *discordgo.InteractionCreate) {
	opts := optionMap(i.ApplicationCommandData().Options)

	var hero string
	if opt, ok := opts["hero"]; ok {
		hero = strings.TrimSpace(opt.StringValue())
	}
	if hero == "" {
		// Fall back to the caller's saved main
		if main, ok := b.mains.Get(interactionUserID(i)); ok {
			hero = main
		}
	}

	enemies := collectEnemies(opts)

	if hero == "" || len(enemies) == 0 {
		embed := embeds.Warning("Select a hero and at least one opponent.", "")
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{embed},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	suggestions := analysis.SuggestItems(b.kb, enemies)
	tips := analysis.GeneralTips(b.kb, hero)

	responseEmbeds := []*discordgo.MessageEmbed{
		embeds.ItemSuggestions(suggestions),
		embeds.HeroTips(hero, tips, b.heroIcon(hero)),
	}

	b.cacheDraft(i.ID, &draftResult{Hero: hero, Enemies: enemies})

	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: []discordgo.MessageComponent{
				discordgo.Button{
					Label:    "🎯 Counter tips per enemy",
					Style:    discordgo.SecondaryButton,
					CustomID: "countertips_" + i.ID,
				},
			},
		},
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds:     responseEmbeds,
			Components: components,
		},
	})
}

// collectEnemies gathers the enemy1..enemy5 options, dropping blanks and
// duplicates while keeping input order.
func collectEnemies(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) []string {
	var enemies []string
	for n := 1; n <= 5; n++ {
		opt, ok := opts[fmt.Sprintf("enemy%d", n)]
		if !ok {
			continue
		}
		name := strings.TrimSpace(opt.StringValue())
		if name == "" || slices.Contains(enemies, name) {
			continue
		}
		enemies = append(enemies, name)
	}
	return enemies
}
