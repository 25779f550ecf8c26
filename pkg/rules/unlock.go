package rules

import (
	"github.com/fintamago/fintamago/pkg/catalog"
	"github.com/fintamago/fintamago/pkg/entities"
)

// UnlockStatus is one row of the pet unlock overview shown to users
type UnlockStatus struct {
	PetID          entities.PetID
	Name           string
	IsUnlocked     bool
	RequirementMet bool
	Progress       int // 0-100
	Requirement    string
}

// CanUnlock reports whether a pet's unlock requirement is satisfied.
// Starters are always unlockable; unknown requirement kinds fail closed.
func CanUnlock(entry *catalog.Entry, ach *entities.Achievements) bool {
	req := entry.Requirement
	if req.Kind == entities.RequirementStarter {
		return true
	}
	if !knownRequirement(req.Kind) {
		return false
	}
	return ach.Counter(req.Kind) >= req.Threshold
}

// UnlockProgress returns how close the user is to unlocking a pet, as a
// percentage clamped to 100. Starters are always 100.
func UnlockProgress(entry *catalog.Entry, ach *entities.Achievements) int {
	req := entry.Requirement
	if req.Kind == entities.RequirementStarter {
		return 100
	}
	if !knownRequirement(req.Kind) || req.Threshold <= 0 {
		return 0
	}
	progress := ach.Counter(req.Kind) * 100 / req.Threshold
	if progress > 100 {
		return 100
	}
	return progress
}

// AllUnlockStatuses returns one status per catalog entry, in catalog order
func AllUnlockStatuses(unlocked []entities.PetID, ach *entities.Achievements) []UnlockStatus {
	entries := catalog.All()
	statuses := make([]UnlockStatus, 0, len(entries))
	for _, entry := range entries {
		statuses = append(statuses, UnlockStatus{
			PetID:          entry.ID,
			Name:           entry.Name,
			IsUnlocked:     containsPet(unlocked, entry.ID),
			RequirementMet: CanUnlock(entry, ach),
			Progress:       UnlockProgress(entry, ach),
			Requirement:    entry.RequirementDescription(),
		})
	}
	return statuses
}

// NewlyUnlockable returns catalog pets not yet unlocked whose requirement is
// now met, in catalog order. The pet service auto-grants these after every
// achievement update.
func NewlyUnlockable(unlocked []entities.PetID, ach *entities.Achievements) []entities.PetID {
	var ids []entities.PetID
	for _, entry := range catalog.All() {
		if containsPet(unlocked, entry.ID) {
			continue
		}
		if CanUnlock(entry, ach) {
			ids = append(ids, entry.ID)
		}
	}
	return ids
}

func knownRequirement(kind entities.RequirementKind) bool {
	switch kind {
	case entities.RequirementTotalSaved,
		entities.RequirementStreakDays,
		entities.RequirementAutomatedExpenses,
		entities.RequirementChallengesCompleted,
		entities.RequirementGoalsHit:
		return true
	default:
		return false
	}
}

func containsPet(ids []entities.PetID, id entities.PetID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
