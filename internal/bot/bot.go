// Package bot provides the Discord bot core for DraftBot.
package bot

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"

	"github.com/draftbot/internal/analysis"
	"github.com/draftbot/internal/config"
	"github.com/draftbot/internal/data"
	"github.com/draftbot/internal/embeds"
	"github.com/draftbot/internal/storage"
)

// draftResult stores the inputs of a /draft analysis so the counter-tips
// button can expand it later.
type draftResult struct {
	Hero    string
	Enemies []string
}

// Bot represents the Discord bot.
type Bot struct {
	session    *discordgo.Session
	cfg        *config.Config
	kb         *data.KnowledgeBase
	mains      *storage.MainsStore
	draftCache map[string]*draftResult // interaction ID -> draft inputs
	cacheMu    sync.RWMutex
	ready      atomic.Bool
	commands   []*discordgo.ApplicationCommand
}

// New creates a new Bot instance around an already-loaded knowledge base.
func New(cfg *config.Config, kb *data.KnowledgeBase) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Slash commands only, no message content needed
	session.Identify.Intents = discordgo.IntentsGuilds

	// Redis-backed store for each user's preferred hero
	redisClient := storage.NewRedisClient(cfg.RedisURL)
	mains := storage.NewMainsStore(redisClient, cfg.RedisKeyMains)
	if err := mains.Load(); err != nil {
		log.Printf("Load mains failed: %v", err)
	}

	embeds.HeroIconURL = cfg.HeroIconURL

	bot := &Bot{
		session:    session,
		cfg:        cfg,
		kb:         kb,
		mains:      mains,
		draftCache: make(map[string]*draftResult),
	}

	// Register handlers
	session.AddHandler(bot.onReady)
	session.AddHandler(bot.onInteractionCreate)

	return bot, nil
}

// Start connects to Discord and starts the bot.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	log.Println("Connected to Discord")

	if err := b.registerCommands(); err != nil {
		log.Printf("Register commands failed: %v", err)
	}

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	b.ready.Store(false)
	if err := b.mains.Save(); err != nil {
		log.Printf("Save mains failed: %v", err)
	}
	return b.session.Close()
}

// Ready reports whether the Discord session is open and serving.
func (b *Bot) Ready() bool {
	return b.ready.Load()
}

// onReady is called when the bot is ready.
func (b *Bot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	b.ready.Store(true)
	log.Printf("Bot ready: %s", event.User.Username)
}

// heroOption builds a string option with hero-name autocomplete.
func heroOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:         discordgo.ApplicationCommandOptionString,
		Name:         name,
		Description:  description,
		Required:     required,
		Autocomplete: true,
	}
}

// registerCommands registers all slash commands.
func (b *Bot) registerCommands() error {
	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "ping",
			Description: "Check that the bot is alive",
		},
		{
			Name:        "draft",
			Description: "Analyze a draft: item counters and tips against up to five enemies",
			Options: []*discordgo.ApplicationCommandOption{
				heroOption("hero", "Your hero (defaults to your saved main)", false),
				heroOption("enemy1", "Enemy hero", false),
				heroOption("enemy2", "Enemy hero", false),
				heroOption("enemy3", "Enemy hero", false),
				heroOption("enemy4", "Enemy hero", false),
				heroOption("enemy5", "Enemy hero", false),
			},
		},
		{
			Name:        "tips",
			Description: "General strategy tips for a hero",
			Options: []*discordgo.ApplicationCommandOption{
				heroOption("hero", "Hero to get tips for", true),
			},
		},
		{
			Name:        "counter",
			Description: "How to counter enemy heroes",
			Options: []*discordgo.ApplicationCommandOption{
				heroOption("enemy1", "Enemy hero", true),
				heroOption("enemy2", "Enemy hero", false),
				heroOption("enemy3", "Enemy hero", false),
				heroOption("enemy4", "Enemy hero", false),
				heroOption("enemy5", "Enemy hero", false),
			},
		},
		{
			Name:        "items",
			Description: "Show the counter-item catalog",
		},
		{
			Name:        "main",
			Description: "Manage your preferred hero",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "set",
					Description: "Save your preferred hero",
					Options: []*discordgo.ApplicationCommandOption{
						heroOption("hero", "Your preferred hero", true),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Show your saved hero",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "clear",
					Description: "Forget your saved hero",
				},
			},
		},
	}

	registeredCommands := make([]*discordgo.ApplicationCommand, len(commands))
	for i, cmd := range commands {
		registered, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, "", cmd)
		if err != nil {
			log.Printf("Command %s failed: %v", cmd.Name, err)
			continue
		}
		registeredCommands[i] = registered
	}

	b.commands = registeredCommands
	log.Printf("Registered %d commands", len(registeredCommands))
	return nil
}

// onInteractionCreate handles slash command interactions.
func (b *Bot) onInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		switch i.ApplicationCommandData().Name {
		case "ping":
			b.handlePing(s, i)
		case "draft":
			b.handleDraft(s, i)
		case "tips":
			b.handleTips(s, i)
		case "counter":
			b.handleCounter(s, i)
		case "items":
			b.handleItems(s, i)
		case "main":
			b.handleMain(s, i)
		}
	case discordgo.InteractionApplicationCommandAutocomplete:
		b.handleAutocomplete(s, i)
	case discordgo.InteractionMessageComponent:
		b.handleComponentInteraction(s, i)
	}
}

// handlePing handles the /ping command.
func (b *Bot) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) {
	latency := s.HeartbeatLatency().Milliseconds()
	embed := embeds.Success(
		fmt.Sprintf("🏓 Pong! Latency: **%dms**\nKnowledge base: **%d** strategy documents", latency, b.kb.StrategyCount()),
		"✅ Bot is running",
	)

	s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
		},
	})
}

// handleComponentInteraction handles button interactions.
func (b *Bot) handleComponentInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	if !strings.HasPrefix(customID, "countertips_") {
		return
	}

	draft := b.getDraft(strings.TrimPrefix(customID, "countertips_"))
	if draft == nil {
		embed := embeds.Error("This draft has expired. Run `/draft` again.", "")
		s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Embeds: []*discordgo.MessageEmbed{embed},
				Flags:  discordgo.MessageFlagsEphemeral,
			},
		})
		return
	}

	tipsByHero := analysis.CounterTips(b.kb, draft.Enemies)

	var tipEmbeds []*discordgo.MessageEmbed
	for _, enemy := range draft.Enemies {
		tips, ok := tipsByHero[enemy]
		if !ok {
			continue
		}
		tipEmbeds = append(tipEmbeds, embeds.CounterTipsForHero(enemy, tips, b.heroIcon(enemy), 0))
	}

	if len(tipEmbeds) == 0 {
		tipEmbeds = append(tipEmbeds, embeds.Info("No counter tips found for those heroes.", ""))
	}

	// Discord allows max 10 embeds per message
	if len(tipEmbeds) > 10 {
		tipEmbeds = tipEmbeds[:10]
	}

	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: tipEmbeds,
			Flags:  discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		log.Printf("Error responding with counter tips: %v", err)
	}
}

// cacheDraft stores draft inputs for later button interactions.
func (b *Bot) cacheDraft(id string, draft *draftResult) {
	b.cacheMu.Lock()
	defer b.cacheMu.Unlock()

	b.draftCache[id] = draft

	// Cleanup old entries (keep max 50)
	if len(b.draftCache) > 50 {
		for k := range b.draftCache {
			delete(b.draftCache, k)
			break
		}
	}
}

// getDraft retrieves cached draft inputs.
func (b *Bot) getDraft(id string) *draftResult {
	b.cacheMu.RLock()
	defer b.cacheMu.RUnlock()
	return b.draftCache[id]
}

// heroIcon returns the portrait URL for a display name, empty when unknown.
func (b *Bot) heroIcon(heroName string) string {
	ref, ok := b.kb.Resolve(heroName)
	if !ok {
		return ""
	}
	return embeds.GetHeroIcon(ref.SafeName)
}

// interactionUserID returns the invoking user's ID for guild and DM
// interactions alike.
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// optionMap indexes interaction options by name.
func optionMap(options []*discordgo.ApplicationCommandInteractionDataOption) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	m := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(options))
	for _, opt := range options {
		m[opt.Name] = opt
	}
	return m
}
