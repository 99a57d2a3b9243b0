// Package embeds provides Discord embed builders for DraftBot.
package embeds

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/draftbot/internal/analysis"
)

// Colors for embeds
const (
	ColorSuccess = 0x00FF00 // Green
	ColorError   = 0xFF0000 // Red
	ColorInfo    = 0x3498DB // Blue
	ColorWarning = 0xFFFF00 // Yellow
	ColorItems   = 0xE67E22 // Orange
	ColorCounter = 0xE74C3C // Red, counter advice
)

// Discord caps embed descriptions at 4096 characters.
const maxDescription = 4096

// HeroIconURL is the CDN template for hero portraits, keyed by the game's
// internal hero name.
var HeroIconURL = "https://cdn.cloudflare.steamstatic.com/apps/dota2/images/dota_react/heroes/%s.png"

// GetHeroIcon returns the portrait URL for a hero's safe name.
func GetHeroIcon(safeName string) string {
	// Heroes whose internal engine name differs from the display-derived
	// safe name.
	nameMapping := map[string]string{
		"anti_mage":          "antimage",
		"clockwerk":          "rattletrap",
		"doom":               "doom_bringer",
		"io":                 "wisp",
		"lifestealer":        "life_stealer",
		"magnus":             "magnataur",
		"natures_prophet":    "furion",
		"necrophos":          "necrolyte",
		"outworld_destroyer": "obsidian_destroyer",
		"queen_of_pain":      "queenofpain",
		"shadow_fiend":       "nevermore",
		"timbersaw":          "shredder",
		"treant_protector":   "treant",
		"underlord":          "abyssal_underlord",
		"vengeful_spirit":    "vengefulspirit",
		"windranger":         "windrunner",
		"wraith_king":        "skeleton_king",
		"zeus":               "zuus",
	}

	name := safeName
	if mapped, ok := nameMapping[safeName]; ok {
		name = mapped
	}

	return fmt.Sprintf(HeroIconURL, name)
}

// Success creates a success embed.
func Success(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "✅ Done"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorSuccess,
	}
}

// Error creates an error embed.
func Error(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "❌ Error"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorError,
	}
}

// Warning creates a warning embed.
func Warning(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "⚠️ Warning"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorWarning,
	}
}

// Info creates an info embed.
func Info(message, title string) *discordgo.MessageEmbed {
	if title == "" {
		title = "ℹ️ Info"
	}
	return &discordgo.MessageEmbed{
		Title:       title,
		Description: message,
		Color:       ColorInfo,
	}
}

// ItemSuggestions renders the counter-item advice for a set of enemies.
func ItemSuggestions(suggestions []analysis.ItemSuggestion) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "🛡️ Item Suggestions",
		Color: ColorItems,
	}

	if len(suggestions) == 0 {
		embed.Description = "No specific item counters found."
		return embed
	}

	var sb strings.Builder
	for _, s := range suggestions {
		sb.WriteString(fmt.Sprintf("• **%s** — against %s\n", s.Item, strings.Join(s.CounteredHeroes, ", ")))
	}

	embed.Description = clampDescription(sb.String())
	return embed
}

// HeroTips renders the general strategy tips for the player's hero. At most
// five tips are shown; the footer notes how many the document holds.
func HeroTips(hero string, tips []string, iconURL string) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("⚡ Tips for %s", hero),
		Color: ColorInfo,
	}
	if iconURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: iconURL}
	}

	if len(tips) == 0 {
		embed.Description = "No tips found."
		return embed
	}

	embed.Description = clampDescription(bulletList(tips, 5))
	if len(tips) > 5 {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing 5 of %d tips", len(tips)),
		}
	}
	return embed
}

// CounterTipsForHero renders the verbatim counter tips for one enemy.
// maxTips limits the list; 0 shows everything.
func CounterTipsForHero(hero string, tips []string, iconURL string, maxTips int) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("🎯 How to Counter %s", hero),
		Color: ColorCounter,
	}
	if iconURL != "" {
		embed.Thumbnail = &discordgo.MessageEmbedThumbnail{URL: iconURL}
	}

	if len(tips) == 0 {
		embed.Description = "No counter tips found."
		return embed
	}

	embed.Description = clampDescription(bulletList(tips, maxTips))
	if maxTips > 0 && len(tips) > maxTips {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Showing %d of %d tips", maxTips, len(tips)),
		}
	}
	return embed
}

// ItemCatalog renders the fixed counter-item catalog.
func ItemCatalog(items []string) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("• %s\n", item))
	}

	return &discordgo.MessageEmbed{
		Title:       "🗡️ Counter-Item Catalog",
		Description: clampDescription(sb.String()),
		Color:       ColorItems,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d items checked against counter-tip text", len(items)),
		},
	}
}

// bulletList formats tips as a bulleted list, keeping at most max entries
// when max > 0.
func bulletList(tips []string, max int) string {
	if max > 0 && len(tips) > max {
		tips = tips[:max]
	}

	var sb strings.Builder
	for _, tip := range tips {
		sb.WriteString(fmt.Sprintf("• %s\n", tip))
	}
	return sb.String()
}

// clampDescription keeps a description within Discord's character limit
// without splitting a rune.
func clampDescription(s string) string {
	if len(s) <= maxDescription {
		return s
	}
	runes := []rune(s)
	if len(runes) <= maxDescription {
		return s
	}
	return string(runes[:maxDescription-1]) + "…"
}
