package bot

import (
	"fmt"
	"log"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/draftbot/internal/embeds"
)

// handleMain handles the /main command (set/show/clear preferred hero).
func (b *Bot) handleMain(s *discordgo.Session, i *discordgo.InteractionCreate) {
	sub := i.ApplicationCommandData().Options[0]
	userID := interactionUserID(i)

	var embed *discordgo.MessageEmbed

	switch sub.Name {
	case "set":
		hero := strings.TrimSpace(sub.Options[0].StringValue())
		if _, ok := b.kb.Resolve(hero); !ok {
			embed = embeds.Error(fmt.Sprintf("Unknown hero **%s**. Check the spelling.", hero), "")
			break
		}
		b.mains.Set(userID, hero)
		if err := b.mains.Save(); err != nil {
			log.Printf("Save mains failed: %v", err)
		}
		embed = embeds.Success(fmt.Sprintf("Saved **%s** as your main. `/draft` will use it when you omit the hero option.", hero), "")

	case "show":
		if hero, ok := b.mains.Get(userID); ok {
			embed = embeds.Info(fmt.Sprintf("Your saved main is **%s**.", hero), "")
		} else {
			embed = embeds.Info("You have no saved main. Use `/main set` to pick one.", "")
		}

	case "clear":
		b.mains.Delete(userID)
		if err := b.mains.Save(); err != nil {
			log.Printf("Save mains failed: %v", err)
		}
		embed = embeds.Success("Cleared your saved main.", "")

	default:
		return
	}

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
}
