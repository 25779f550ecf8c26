package bot

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/fintamago/fintamago/pkg/entities"
	"github.com/fintamago/fintamago/pkg/rules"
)

// handleSlashCommand routes slash commands to their handlers
func (b *Bot) handleSlashCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	b.shutdownWg.Add(1)
	defer b.shutdownWg.Done()

	switch i.ApplicationCommandData().Name {
	case "pet":
		b.handlePetStatus(s, i)
	case "feed":
		b.handleFeed(s, i)
	case "choose":
		b.handleChoose(s, i)
	case "pets":
		b.handlePets(s, i)
	case "track":
		b.handleTrack(s, i)
	case "shop":
		b.handleShop(s, i)
	case "history":
		b.handleHistory(s, i)
	default:
		b.logger.Warn("Unknown command: %s", i.ApplicationCommandData().Name)
	}
}

// interactionUserID resolves the acting user for guild and DM interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

// respond sends a plain-text interaction response
func (b *Bot) respond(s *discordgo.Session, i *discordgo.InteractionCreate, content string) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: content},
	})
	if err != nil {
		b.logger.Error("Failed to respond to interaction: %v", err)
	}
}

func (b *Bot) handlePetStatus(s *discordgo.Session, i *discordgo.InteractionCreate) {
	state, err := b.pets.GetPetState(context.Background(), interactionUserID(i))
	if err != nil {
		b.logger.LogError(err)
		b.respond(s, i, ErrorReply(err))
		return
	}
	b.respond(s, i, FormatPetStatus(state))
}

func (b *Bot) handleFeed(s *discordgo.Session, i *discordgo.InteractionCreate) {
	state, err := b.pets.FeedPet(context.Background(), interactionUserID(i))
	if err != nil {
		b.logger.LogError(err)
		b.respond(s, i, ErrorReply(err))
		return
	}
	b.respond(s, i, FormatFeedResult(state))
}

func (b *Bot) handleChoose(s *discordgo.Session, i *discordgo.InteractionCreate) {
	petID := entities.PetID(i.ApplicationCommandData().Options[0].StringValue())

	state, err := b.pets.SelectPet(context.Background(), interactionUserID(i), petID)
	if err != nil {
		b.logger.LogError(err)
		b.respond(s, i, ErrorReply(err))
		return
	}
	b.respond(s, i, FormatPetSwitch(state))
}

func (b *Bot) handlePets(s *discordgo.Session, i *discordgo.InteractionCreate) {
	statuses, err := b.pets.GetUnlockStatuses(context.Background(), interactionUserID(i))
	if err != nil {
		b.logger.LogError(err)
		b.respond(s, i, ErrorReply(err))
		return
	}
	b.respond(s, i, FormatUnlockStatuses(statuses))
}

func (b *Bot) handleTrack(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	userID := interactionUserID(i)
	amount := i.ApplicationCommandData().Options[0].FloatValue()

	state, err := b.pets.EarnGems(ctx, userID, rules.ReasonTrackExpense)
	if err != nil {
		b.logger.LogError(err)
		b.respond(s, i, ErrorReply(err))
		return
	}

	xp := rules.XPForExpense(amount)
	if xp > 0 {
		state, err = b.pets.AddXP(ctx, userID, xp)
		if err != nil {
			b.logger.LogError(err)
			b.respond(s, i, ErrorReply(err))
			return
		}
	}
	b.respond(s, i, FormatTrackResult(state, xp))
}

func (b *Bot) handleShop(s *discordgo.Session, i *discordgo.InteractionCreate) {
	item := i.ApplicationCommandData().Options[0].StringValue()

	cost, ok := rules.CostOf(item)
	if !ok {
		b.respond(s, i, "That item is not for sale.")
		return
	}

	state, err := b.pets.SpendGems(context.Background(), interactionUserID(i), cost, item)
	if err != nil {
		b.logger.LogError(err)
		b.respond(s, i, ErrorReply(err))
		return
	}
	b.respond(s, i, FormatPurchase(state, item, cost))
}

func (b *Bot) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) {
	transactions, err := b.pets.GetRecentTransactions(context.Background(), interactionUserID(i), 10)
	if err != nil {
		b.logger.LogError(err)
		b.respond(s, i, ErrorReply(err))
		return
	}
	b.respond(s, i, FormatTransactions(transactions))
}
