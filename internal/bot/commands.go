package bot

import (
	"github.com/bwmarrin/discordgo"
	"github.com/fintamago/fintamago/pkg/catalog"
	"github.com/fintamago/fintamago/pkg/rules"
)

// Commands defines all slash commands for the bot
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        "pet",
		Description: "Check on your pet",
	},
	{
		Name:        "feed",
		Description: "Feed your pet (costs gems)",
	},
	{
		Name:        "choose",
		Description: "Switch to another unlocked pet",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "pet",
				Description: "The pet to switch to",
				Required:    true,
				Choices:     petChoices(),
			},
		},
	},
	{
		Name:        "pets",
		Description: "See every pet and how close you are to unlocking it",
	},
	{
		Name:        "track",
		Description: "Track an expense and earn gems and XP",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionNumber,
				Name:        "amount",
				Description: "How much you spent",
				Required:    true,
			},
		},
	},
	{
		Name:        "shop",
		Description: "Spend gems on something nice",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "What to buy",
				Required:    true,
				Choices:     shopChoices(),
			},
		},
	},
	{
		Name:        "history",
		Description: "Show your recent gem transactions",
	},
}

// petChoices builds the /choose option list from the catalog
func petChoices() []*discordgo.ApplicationCommandOptionChoice {
	entries := catalog.All()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(entries))
	for _, entry := range entries {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  entry.Name,
			Value: string(entry.ID),
		})
	}
	return choices
}

// shopChoices lists the purchasable items and their costs
func shopChoices() []*discordgo.ApplicationCommandOptionChoice {
	items := []struct {
		label string
		id    string
	}{
		{"Basic accessory", rules.ItemAccessoryBasic},
		{"Premium accessory", rules.ItemAccessoryPremium},
		{"Legendary accessory", rules.ItemAccessoryLegendary},
		{"XP booster", rules.ItemXPBooster},
		{"New environment", rules.ItemEnvironment},
		{"Custom animation", rules.ItemAnimation},
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(items))
	for _, item := range items {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  item.label,
			Value: item.id,
		})
	}
	return choices
}
