package rules

import (
	"github.com/fintamago/fintamago/pkg/entities"
)

// Mood thresholds on post-clamp happiness
const (
	happyAbove     = 70
	neutralAbove   = 40
	sadAbove       = 20
	lowEnergyBelow = 20
)

// MoodResult is the outcome of a mood evaluation. Happiness and Energy are
// the new clamped values; the deltas are the raw adjustments before clamping.
// Message is flavor text for display only and carries no rules weight.
type MoodResult struct {
	Mood           entities.MoodState
	Happiness      int
	Energy         int
	DeltaHappiness int
	DeltaEnergy    int
	Message        string
}

// moodModifier holds a pet's spending-mood adjustments. Additive tweaks apply
// first; the scale factor applies last to the accumulated happiness delta, so
// future pets that carry both compose deterministically.
type moodModifier struct {
	happinessAdd   func(ratio float64) int
	happinessScale float64 // 0 means no scaling
}

var moodModifiers = map[entities.PetID]moodModifier{
	entities.PetMeow: {
		happinessAdd: func(ratio float64) int {
			if ratio > 1.0 {
				return -5
			}
			return 0
		},
	},
	entities.PetDragon: {
		happinessAdd: func(ratio float64) int {
			if ratio > 0.8 {
				return -10
			}
			return 0
		},
	},
	entities.PetChill: {
		happinessScale: 0.7,
	},
}

// MoodFromSpending evaluates the pet's mood against today's spending. The
// final mood derives from post-clamp happiness, not from the spending band;
// low energy forces sleeping either way.
func MoodFromSpending(dailySpent, dailyBudget float64, happiness, energy int, petID entities.PetID) MoodResult {
	ratio := 0.0
	if dailyBudget > 0 {
		ratio = dailySpent / dailyBudget
	}

	var deltaHappiness int
	var message string
	switch {
	case ratio < 0.7:
		deltaHappiness = 10
		message = "Your pet is proud of your spending today!"
	case ratio < 0.9:
		deltaHappiness = 0
		message = "Your pet is keeping an eye on the budget."
	case ratio < 1.2:
		deltaHappiness = -15
		message = "Your pet is worried, the budget is almost gone."
	default:
		deltaHappiness = -25
		message = "Your pet is upset, you blew the budget."
	}

	// Energy decays a little on every evaluation regardless of spending
	deltaEnergy := -5

	if mod, ok := moodModifiers[petID]; ok {
		if mod.happinessAdd != nil {
			deltaHappiness += mod.happinessAdd(ratio)
		}
		if mod.happinessScale != 0 {
			// Truncation toward zero, matching the gem multiplier convention
			deltaHappiness = int(float64(deltaHappiness) * mod.happinessScale)
		}
	}

	newHappiness := clampStat(happiness + deltaHappiness)
	newEnergy := clampStat(energy + deltaEnergy)

	return MoodResult{
		Mood:           moodFor(newHappiness, newEnergy),
		Happiness:      newHappiness,
		Energy:         newEnergy,
		DeltaHappiness: deltaHappiness,
		DeltaEnergy:    deltaEnergy,
		Message:        message,
	}
}

// MoodAfterFeeding is the fixed boost from feeding: +20 happiness, +30
// energy, excited. Deltas are pet-agnostic; only the flavor text varies
// per pet, and that lives in the display layer.
func MoodAfterFeeding(happiness, energy int) MoodResult {
	const deltaHappiness, deltaEnergy = 20, 30
	return MoodResult{
		Mood:           entities.MoodExcited,
		Happiness:      clampStat(happiness + deltaHappiness),
		Energy:         clampStat(energy + deltaEnergy),
		DeltaHappiness: deltaHappiness,
		DeltaEnergy:    deltaEnergy,
		Message:        "Nom nom nom! Your pet loved that.",
	}
}

// MoodAfterGoal is the fixed boost from hitting a savings goal: +30
// happiness, +10 energy, excited. The gem bonus for the goal is chained by
// the pet service, not here.
func MoodAfterGoal(happiness, energy int) MoodResult {
	const deltaHappiness, deltaEnergy = 30, 10
	return MoodResult{
		Mood:           entities.MoodExcited,
		Happiness:      clampStat(happiness + deltaHappiness),
		Energy:         clampStat(energy + deltaEnergy),
		DeltaHappiness: deltaHappiness,
		DeltaEnergy:    deltaEnergy,
		Message:        "Goal smashed! Your pet is doing a victory dance.",
	}
}

// MoodDecay applies hunger decay based on hours since the last feeding.
// Within 12 hours nothing changes. The two lower bands keep the current
// mood; only the deep-neglect bands force one.
func MoodDecay(hoursSinceFed float64, happiness, energy int, current entities.MoodState) MoodResult {
	var deltaHappiness, deltaEnergy int
	mood := current
	message := ""

	switch {
	case hoursSinceFed > 48:
		deltaHappiness, deltaEnergy = -30, -40
		mood = entities.MoodSleeping
		message = "Your pet has curled up and gone to sleep, starving."
	case hoursSinceFed > 24:
		deltaHappiness, deltaEnergy = -15, -20
		mood = entities.MoodSad
		message = "Your pet is sad and very hungry."
	case hoursSinceFed > 12:
		deltaHappiness, deltaEnergy = -5, -10
		message = "Your pet is getting a little hungry."
	default:
		return MoodResult{
			Mood:      current,
			Happiness: happiness,
			Energy:    energy,
		}
	}

	return MoodResult{
		Mood:           mood,
		Happiness:      clampStat(happiness + deltaHappiness),
		Energy:         clampStat(energy + deltaEnergy),
		DeltaHappiness: deltaHappiness,
		DeltaEnergy:    deltaEnergy,
		Message:        message,
	}
}

// moodFor derives the mood from post-clamp stats. Low energy wins over any
// happiness level.
func moodFor(happiness, energy int) entities.MoodState {
	if energy < lowEnergyBelow {
		return entities.MoodSleeping
	}
	switch {
	case happiness > happyAbove:
		return entities.MoodHappy
	case happiness > neutralAbove:
		return entities.MoodNeutral
	case happiness > sadAbove:
		return entities.MoodSad
	default:
		return entities.MoodSleeping
	}
}

// clampStat keeps happiness/energy in [0,100]
func clampStat(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
