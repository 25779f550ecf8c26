package rules

import (
	"testing"

	"github.com/fintamago/fintamago/pkg/catalog"
	"github.com/fintamago/fintamago/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustEntry(t *testing.T, id entities.PetID) *catalog.Entry {
	t.Helper()
	entry, err := catalog.Get(id)
	require.NoError(t, err)
	return entry
}

func TestCanUnlock(t *testing.T) {
	ach := &entities.Achievements{
		TotalSaved: 60000,
		StreakDays: 3,
	}

	assert.True(t, CanUnlock(mustEntry(t, entities.PetMeow), ach), "starters always unlock")
	assert.True(t, CanUnlock(mustEntry(t, entities.PetSensei), ach), "60000 saved clears 50000")
	assert.False(t, CanUnlock(mustEntry(t, entities.PetMystic), ach), "60000 saved misses 100000")
	assert.False(t, CanUnlock(mustEntry(t, entities.PetDoge), ach), "3-day streak misses 7")
}

func TestCanUnlockUnknownKindFailsClosed(t *testing.T) {
	entry := &catalog.Entry{
		ID:          entities.PetID("future"),
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementKind("loginDays"), Threshold: 1},
	}
	ach := &entities.Achievements{TotalSaved: 1000000}

	assert.False(t, CanUnlock(entry, ach))
	assert.Equal(t, 0, UnlockProgress(entry, ach))
}

func TestUnlockProgress(t *testing.T) {
	ach := &entities.Achievements{TotalSaved: 25000, StreakDays: 14}

	assert.Equal(t, 100, UnlockProgress(mustEntry(t, entities.PetMeow), ach), "starter pins at 100")
	assert.Equal(t, 50, UnlockProgress(mustEntry(t, entities.PetSensei), ach))
	assert.Equal(t, 25, UnlockProgress(mustEntry(t, entities.PetMystic), ach))
	assert.Equal(t, 100, UnlockProgress(mustEntry(t, entities.PetDoge), ach), "overshoot clamps to 100")
}

func TestAllUnlockStatuses(t *testing.T) {
	unlocked := []entities.PetID{entities.PetMeow, entities.PetChill, entities.PetDoge}
	ach := &entities.Achievements{StreakDays: 10, TotalSaved: 50000}

	statuses := AllUnlockStatuses(unlocked, ach)

	require.Len(t, statuses, len(catalog.All()))
	for i, entry := range catalog.All() {
		assert.Equal(t, entry.ID, statuses[i].PetID, "catalog order preserved")
		assert.NotEmpty(t, statuses[i].Requirement)
	}

	byID := map[entities.PetID]UnlockStatus{}
	for _, s := range statuses {
		byID[s.PetID] = s
	}
	assert.True(t, byID[entities.PetDoge].IsUnlocked)
	assert.False(t, byID[entities.PetSensei].IsUnlocked)
	assert.True(t, byID[entities.PetSensei].RequirementMet)
	assert.Equal(t, 50, byID[entities.PetMystic].Progress)
}

func TestNewlyUnlockable(t *testing.T) {
	unlocked := []entities.PetID{entities.PetMeow, entities.PetChill}
	ach := &entities.Achievements{TotalSaved: 100000}

	ids := NewlyUnlockable(unlocked, ach)

	assert.Equal(t, []entities.PetID{entities.PetSensei, entities.PetMystic}, ids)
}

func TestNewlyUnlockableSkipsAlreadyUnlocked(t *testing.T) {
	unlocked := []entities.PetID{entities.PetMeow, entities.PetChill, entities.PetSensei}
	ach := &entities.Achievements{TotalSaved: 100000}

	ids := NewlyUnlockable(unlocked, ach)

	assert.Equal(t, []entities.PetID{entities.PetMystic}, ids)
}

func TestNewlyUnlockableEmptyWhenNothingNew(t *testing.T) {
	unlocked := []entities.PetID{entities.PetMeow, entities.PetChill}
	ach := &entities.Achievements{}

	assert.Empty(t, NewlyUnlockable(unlocked, ach))
}
