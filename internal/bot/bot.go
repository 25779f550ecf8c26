// Package bot is the Discord front-end of the reward engine. It is a thin
// collaborator: commands decode options, call pet service operations and
// format replies. No engine rules live here.
package bot

import (
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/fintamago/fintamago/internal/config"
	"github.com/fintamago/fintamago/internal/logging"
	petService "github.com/fintamago/fintamago/pkg/services/pet"
)

// Bot represents the Discord bot and its dependencies
type Bot struct {
	config     *config.Config
	session    *discordgo.Session
	logger     *logging.Logger
	pets       *petService.Service
	commands   []*discordgo.ApplicationCommand
	shutdownWg sync.WaitGroup
}

// New creates a new instance of Bot
func New(cfg *config.Config, pets *petService.Service, logger *logging.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	if logger == nil {
		logger = logging.Default
	}

	bot := &Bot{
		config:   cfg,
		session:  session,
		logger:   logger,
		pets:     pets,
		commands: make([]*discordgo.ApplicationCommand, 0),
	}

	session.AddHandler(bot.handleInteractionCreate)

	return bot, nil
}

// Start initializes the bot and connects to Discord
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the bot
func (b *Bot) Shutdown() {
	// Cleanup commands if in development
	if b.config.IsDevelopment() {
		b.cleanupCommands()
	}

	if err := b.session.Close(); err != nil {
		b.logger.Error("Error closing Discord session: %v", err)
	}

	// Wait for any ongoing operations to complete
	b.shutdownWg.Wait()
}

// registerCommands registers all slash commands with Discord
func (b *Bot) registerCommands() error {
	for _, cmd := range Commands {
		registered, err := b.session.ApplicationCommandCreate(b.config.AppID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("failed to register command %s: %w", cmd.Name, err)
		}
		b.commands = append(b.commands, registered)
	}
	b.logger.Info("Registered %d slash commands", len(b.commands))
	return nil
}

// cleanupCommands removes registered commands on shutdown
func (b *Bot) cleanupCommands() {
	for _, cmd := range b.commands {
		if err := b.session.ApplicationCommandDelete(b.config.AppID, b.config.GuildID, cmd.ID); err != nil {
			b.logger.Warn("Failed to delete command %s: %v", cmd.Name, err)
		}
	}
}

// handleInteractionCreate handles Discord interaction events
func (b *Bot) handleInteractionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	b.handleSlashCommand(s, i)
}
