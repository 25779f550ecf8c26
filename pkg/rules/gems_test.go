package rules

import (
	"testing"

	"github.com/fintamago/fintamago/pkg/entities"
	"github.com/stretchr/testify/assert"
)

func TestComputeGemsEarned(t *testing.T) {
	testCases := []struct {
		name     string
		reason   string
		petID    entities.PetID
		streak   int
		expected int
	}{
		{
			name:     "base amount with no bonus",
			reason:   ReasonTrackExpense,
			petID:    entities.PetChill,
			expected: 5,
		},
		{
			name:     "doge doubles weekly streak",
			reason:   ReasonWeeklyStreak,
			petID:    entities.PetDoge,
			streak:   7,
			expected: 100,
		},
		{
			name:     "dragon triples under budget",
			reason:   ReasonUnderBudget,
			petID:    entities.PetDragon,
			expected: 60,
		},
		{
			name:     "meow boosts resist impulse with truncation",
			reason:   ReasonResistImpulse,
			petID:    entities.PetMeow,
			expected: 18, // 15 x 1.2
		},
		{
			name:     "meow bonus only fires for its reason",
			reason:   ReasonWeeklyStreak,
			petID:    entities.PetMeow,
			expected: 50,
		},
		{
			name:     "mystic boosts everything",
			reason:   ReasonTrackExpense,
			petID:    entities.PetMystic,
			expected: 7, // floor(5 x 1.5)
		},
		{
			name:     "mystic boosts large amounts too",
			reason:   ReasonGoalAchieved,
			petID:    entities.PetMystic,
			expected: 150,
		},
		{
			name:     "unknown reason earns nothing",
			reason:   "UNKNOWN",
			petID:    entities.PetMeow,
			expected: 0,
		},
		{
			name:     "level up has no base amount",
			reason:   ReasonLevelUp,
			petID:    entities.PetMeow,
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ComputeGemsEarned(tc.reason, tc.petID, tc.streak))
		})
	}
}

func TestComputeGemsEarnedNeverNegative(t *testing.T) {
	for reason := range earnAmounts {
		for _, entry := range []entities.PetID{entities.PetMeow, entities.PetDoge, entities.PetDragon, entities.PetMystic, entities.PetChill} {
			assert.GreaterOrEqual(t, ComputeGemsEarned(reason, entry, 0), 0)
		}
	}
}

func TestCostOf(t *testing.T) {
	cost, ok := CostOf(ItemFeedPet)
	assert.True(t, ok)
	assert.Equal(t, 20, cost)

	cost, ok = CostOf(ItemUnlockPetEarly)
	assert.True(t, ok)
	assert.Equal(t, 2000, cost)

	_, ok = CostOf("GOLD_PLATED_BOWL")
	assert.False(t, ok)
}

func TestFeedCost(t *testing.T) {
	assert.Equal(t, 20, FeedCost())
}
