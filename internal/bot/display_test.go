package bot

import (
	"errors"
	"testing"
	"time"

	"github.com/fintamago/fintamago/internal/types"
	"github.com/fintamago/fintamago/pkg/entities"
	"github.com/fintamago/fintamago/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func testState() *entities.PetState {
	return &entities.PetState{
		UserID:       "user1",
		CurrentPet:   entities.PetMeow,
		Gems:         50,
		UnlockedPets: []entities.PetID{entities.PetMeow, entities.PetChill},
		PetLevel:     1,
		PetXP:        40,
		Mood:         entities.MoodHappy,
		Happiness:    80,
		Energy:       100,
	}
}

func TestFormatPetStatus(t *testing.T) {
	out := FormatPetStatus(testState())

	assert.Contains(t, out, "Meow")
	assert.Contains(t, out, "level 1")
	assert.Contains(t, out, "Happiness: 80/100")
	assert.Contains(t, out, "50 gems")
	assert.Contains(t, out, "60 to next level", "40 XP of the 100 needed for level 1")
}

func TestFormatUnlockStatuses(t *testing.T) {
	statuses := []rules.UnlockStatus{
		{PetID: entities.PetMeow, Name: "Meow", IsUnlocked: true, RequirementMet: true, Progress: 100},
		{PetID: entities.PetSensei, Name: "Sensei", RequirementMet: true, Progress: 100},
		{PetID: entities.PetMystic, Name: "Mystic", Requirement: "Save a total of 100000", Progress: 25},
	}

	out := FormatUnlockStatuses(statuses)

	assert.Contains(t, out, "✅ Meow")
	assert.Contains(t, out, "🔓 Sensei")
	assert.Contains(t, out, "🔒 Mystic — Save a total of 100000 (25%)")
}

func TestFormatTransactions(t *testing.T) {
	assert.Contains(t, FormatTransactions(nil), "No gem history yet")

	transactions := []*entities.GemTransaction{
		{Type: entities.GemTransactionEarn, Amount: 10, Reason: "DAILY_LOGIN", Timestamp: time.Now(), GemsAfter: 60},
		{Type: entities.GemTransactionSpend, Amount: 20, Reason: "FEED_PET", Timestamp: time.Now(), GemsAfter: 40},
	}
	out := FormatTransactions(transactions)

	assert.Contains(t, out, "+10 💎 DAILY_LOGIN")
	assert.Contains(t, out, "-20 💎 FEED_PET")
}

func TestErrorReply(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "insufficient gems",
			err:      types.NewPetError(types.ErrInsufficientGems, "feeding costs 20 gems, you have 10"),
			expected: "Not enough gems! feeding costs 20 gems, you have 10",
		},
		{
			name:     "not unlocked",
			err:      types.NewPetError(types.ErrNotUnlocked, "pet dragon is not unlocked"),
			expected: "You haven't unlocked that pet yet. Check /pets to see how.",
		},
		{
			name:     "infrastructure error stays generic",
			err:      errors.New("sqlite is on fire"),
			expected: "Something went wrong on our side. Try again in a moment.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorReply(tc.err))
		})
	}
}
