package bot

import (
	"fmt"
	"strings"

	"github.com/fintamago/fintamago/internal/types"
	"github.com/fintamago/fintamago/pkg/catalog"
	"github.com/fintamago/fintamago/pkg/entities"
	"github.com/fintamago/fintamago/pkg/rules"
)

var moodEmojis = map[entities.MoodState]string{
	entities.MoodHappy:    "😊",
	entities.MoodNeutral:  "😐",
	entities.MoodSad:      "😢",
	entities.MoodSleeping: "😴",
	entities.MoodExcited:  "🤩",
}

// petDisplayName resolves a catalog name, falling back to the raw id
func petDisplayName(id entities.PetID) string {
	if entry, err := catalog.Get(id); err == nil {
		return entry.Name
	}
	return string(id)
}

// FormatPetStatus renders the /pet status view
func FormatPetStatus(state *entities.PetState) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s **%s** (level %d)\n", moodEmojis[state.Mood], petDisplayName(state.CurrentPet), state.PetLevel)
	fmt.Fprintf(&sb, "Mood: %s\n", state.Mood)
	fmt.Fprintf(&sb, "Happiness: %d/100 · Energy: %d/100\n", state.Happiness, state.Energy)
	fmt.Fprintf(&sb, "💎 %d gems · %d XP (%d to next level)", state.Gems, state.PetXP, xpToNextLevel(state.PetXP))
	return sb.String()
}

func xpToNextLevel(xp int) int {
	return rules.XPForLevel(rules.LevelFromXP(xp)+1) - xp
}

// FormatFeedResult renders the /feed reply
func FormatFeedResult(state *entities.PetState) string {
	return fmt.Sprintf("🍖 %s gobbles it up! Happiness %d/100, energy %d/100. 💎 %d gems left.",
		petDisplayName(state.CurrentPet), state.Happiness, state.Energy, state.Gems)
}

// FormatPetSwitch renders the /choose reply
func FormatPetSwitch(state *entities.PetState) string {
	return fmt.Sprintf("You are now looking after **%s**!", petDisplayName(state.CurrentPet))
}

// FormatTrackResult renders the /track reply
func FormatTrackResult(state *entities.PetState, xp int) string {
	if xp > 0 {
		return fmt.Sprintf("Expense tracked! +%d XP · 💎 %d gems · level %d", xp, state.Gems, state.PetLevel)
	}
	return fmt.Sprintf("Expense tracked! 💎 %d gems", state.Gems)
}

// FormatPurchase renders the /shop reply
func FormatPurchase(state *entities.PetState, item string, cost int) string {
	return fmt.Sprintf("Bought %s for 💎 %d. %d gems left.", strings.ToLower(strings.ReplaceAll(item, "_", " ")), cost, state.Gems)
}

// FormatUnlockStatuses renders the /pets overview
func FormatUnlockStatuses(statuses []rules.UnlockStatus) string {
	var sb strings.Builder
	sb.WriteString("**Your pets**\n")
	for _, status := range statuses {
		switch {
		case status.IsUnlocked:
			fmt.Fprintf(&sb, "✅ %s\n", status.Name)
		case status.RequirementMet:
			fmt.Fprintf(&sb, "🔓 %s — ready to unlock!\n", status.Name)
		default:
			fmt.Fprintf(&sb, "🔒 %s — %s (%d%%)\n", status.Name, status.Requirement, status.Progress)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// FormatTransactions renders the /history reply
func FormatTransactions(transactions []*entities.GemTransaction) string {
	if len(transactions) == 0 {
		return "No gem history yet. Track an expense to get started!"
	}

	var sb strings.Builder
	sb.WriteString("**Recent gem activity**\n")
	for _, tx := range transactions {
		sign := "+"
		if tx.Type == entities.GemTransactionSpend {
			sign = "-"
		}
		fmt.Fprintf(&sb, "%s%d 💎 %s (balance %d)\n", sign, tx.Amount, tx.Reason, tx.GemsAfter)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// ErrorReply maps an error to a user-facing message. Domain errors get
// specific wording; infrastructure errors get a generic apology.
func ErrorReply(err error) string {
	var petErr *types.PetError
	if !types.As(err, &petErr) {
		return "Something went wrong on our side. Try again in a moment."
	}

	switch petErr.Code {
	case types.ErrInsufficientGems:
		return fmt.Sprintf("Not enough gems! %s", petErr.Message)
	case types.ErrNotUnlocked:
		return "You haven't unlocked that pet yet. Check /pets to see how."
	case types.ErrAlreadyUnlocked:
		return "You already have that pet!"
	case types.ErrRequirementNotMet:
		return fmt.Sprintf("Not yet! %s", petErr.Message)
	case types.ErrPetNotFound:
		return "Never heard of that pet."
	default:
		return "Something went wrong on our side. Try again in a moment."
	}
}
