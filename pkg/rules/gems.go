// Package rules holds the pure computation core of the reward engine: gem
// earning, XP and levels, mood transitions and unlock evaluation. Everything
// here is stateless and safe to call concurrently; the pet service owns all
// state and sequencing.
package rules

import (
	"github.com/fintamago/fintamago/pkg/entities"
)

// Reason codes for earning gems
const (
	ReasonTrackExpense      = "TRACK_EXPENSE"
	ReasonDailyLogin        = "DAILY_LOGIN"
	ReasonUnderBudget       = "UNDER_BUDGET"
	ReasonWeeklyStreak      = "WEEKLY_STREAK"
	ReasonGoalAchieved      = "GOAL_ACHIEVED"
	ReasonCompleteProfile   = "COMPLETE_PROFILE"
	ReasonWhatsAppTrack     = "WHATSAPP_TRACK"
	ReasonSMSAutoTrack      = "SMS_AUTO_TRACK"
	ReasonChallengeComplete = "CHALLENGE_COMPLETE"
	ReasonResistImpulse     = "RESIST_IMPULSE"

	// ReasonLevelUp is only ever awarded with an explicit amount (newLevel x 20)
	// by the level-up chain; it has no base amount on purpose.
	ReasonLevelUp = "LEVEL_UP"
)

// earnAmounts maps a reason code to its base gem amount. Unknown reasons
// earn 0, which is not an error.
var earnAmounts = map[string]int{
	ReasonTrackExpense:      5,
	ReasonDailyLogin:        10,
	ReasonUnderBudget:       20,
	ReasonWeeklyStreak:      50,
	ReasonGoalAchieved:      100,
	ReasonCompleteProfile:   50,
	ReasonWhatsAppTrack:     8,
	ReasonSMSAutoTrack:      5,
	ReasonChallengeComplete: 30,
	ReasonResistImpulse:     15,
}

// Spendable item identifiers and their fixed gem costs
const (
	ItemFeedPet            = "FEED_PET"
	ItemAccessoryBasic     = "ACCESSORY_BASIC"
	ItemAccessoryPremium   = "ACCESSORY_PREMIUM"
	ItemAccessoryLegendary = "ACCESSORY_LEGENDARY"
	ItemChangePet          = "CHANGE_PET"
	ItemUnlockPetEarly     = "UNLOCK_PET_EARLY"
	ItemXPBooster          = "XP_BOOSTER"
	ItemEnvironment        = "ENVIRONMENT"
	ItemAnimation          = "ANIMATION"
)

// spendCosts maps a spendable item to its gem cost
var spendCosts = map[string]int{
	ItemFeedPet:            20,
	ItemAccessoryBasic:     50,
	ItemAccessoryPremium:   100,
	ItemAccessoryLegendary: 500,
	ItemChangePet:          200,
	ItemUnlockPetEarly:     2000,
	ItemXPBooster:          150,
	ItemEnvironment:        300,
	ItemAnimation:          200,
}

// reasonBonus is a pet-specific multiplier that fires for a single reason code
type reasonBonus struct {
	reason string
	factor float64
}

// reasonBonuses holds per-pet, per-reason multipliers. At most one fires per
// earn; the global bonus below stacks on top of it.
var reasonBonuses = map[entities.PetID]reasonBonus{
	entities.PetMeow:   {reason: ReasonResistImpulse, factor: 1.2},
	entities.PetDoge:   {reason: ReasonWeeklyStreak, factor: 2},
	entities.PetDragon: {reason: ReasonUnderBudget, factor: 3},
}

// globalBonuses holds pet multipliers that apply to every reason. These stack
// multiplicatively on top of any reason-specific bonus.
var globalBonuses = map[entities.PetID]float64{
	entities.PetMystic: 1.5,
}

// ComputeGemsEarned returns the gems earned for a reason code given the
// user's current pet. Fractional results truncate toward zero at every
// multiplier step. streakDays is carried for rule symmetry with the mood
// engine; no current bonus consults it.
func ComputeGemsEarned(reason string, petID entities.PetID, streakDays int) int {
	amount := earnAmounts[reason]
	if amount <= 0 {
		return 0
	}

	if bonus, ok := reasonBonuses[petID]; ok && bonus.reason == reason {
		amount = int(float64(amount) * bonus.factor)
	}
	if factor, ok := globalBonuses[petID]; ok {
		amount = int(float64(amount) * factor)
	}

	if amount < 0 {
		return 0
	}
	return amount
}

// EarnAmount returns the base gem amount for a reason code, without any pet
// bonus. Unknown reasons return 0.
func EarnAmount(reason string) int {
	return earnAmounts[reason]
}

// CostOf returns the gem cost of a spendable item. The second return is
// false for unknown items.
func CostOf(item string) (int, bool) {
	cost, ok := spendCosts[item]
	return cost, ok
}

// FeedCost is the gem cost of feeding the pet
func FeedCost() int {
	return spendCosts[ItemFeedPet]
}
