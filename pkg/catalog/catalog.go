// Package catalog holds the static registry of pet definitions. Entries are
// compiled into the program and never mutated; declaration order is the
// canonical display order.
package catalog

import (
	"fmt"

	"github.com/fintamago/fintamago/internal/types"
	"github.com/fintamago/fintamago/pkg/entities"
)

// Entry describes one pet: identity, unlock gate and display metadata
type Entry struct {
	ID          entities.PetID
	Name        string
	Personality string // emoji + short personality label
	Requirement entities.UnlockRequirement
	Bonus       string // human-readable bonus rule description
	Gradient    [2]string
}

// IsStarter reports whether the pet is available from the first session
func (e *Entry) IsStarter() bool {
	return e.Requirement.Kind == entities.RequirementStarter
}

// RequirementDescription renders the unlock gate for display
func (e *Entry) RequirementDescription() string {
	switch e.Requirement.Kind {
	case entities.RequirementStarter:
		return "Available from the start"
	case entities.RequirementTotalSaved:
		return fmt.Sprintf("Save a total of %d", e.Requirement.Threshold)
	case entities.RequirementStreakDays:
		return fmt.Sprintf("Keep a %d-day tracking streak", e.Requirement.Threshold)
	case entities.RequirementAutomatedExpenses:
		return fmt.Sprintf("Auto-track %d expenses", e.Requirement.Threshold)
	case entities.RequirementChallengesCompleted:
		return fmt.Sprintf("Complete %d challenges", e.Requirement.Threshold)
	case entities.RequirementGoalsHit:
		return fmt.Sprintf("Hit %d savings goals", e.Requirement.Threshold)
	default:
		return "Unknown requirement"
	}
}

// DefaultPet is the starter every new user begins with
const DefaultPet = entities.PetMeow

// entries is the full catalog in display order. IDs must stay stable because
// persisted states reference them.
var entries = []Entry{
	{
		ID:          entities.PetMeow,
		Name:        "Meow",
		Personality: "🐱 Frugal feline",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementStarter},
		Bonus:       "+20% gems for resisting impulse buys",
		Gradient:    [2]string{"#f6d365", "#fda085"},
	},
	{
		ID:          entities.PetChill,
		Name:        "Chill",
		Personality: "🐢 Unbothered turtle",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementStarter},
		Bonus:       "Mood swings dampened by 30%",
		Gradient:    [2]string{"#84fab0", "#8fd3f4"},
	},
	{
		ID:          entities.PetDoge,
		Name:        "Doge",
		Personality: "🐕 Loyal streaker",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementStreakDays, Threshold: 7},
		Bonus:       "Double gems for weekly streaks",
		Gradient:    [2]string{"#fbc2eb", "#a6c1ee"},
	},
	{
		ID:          entities.PetDragon,
		Name:        "Dragon",
		Personality: "🐉 Fierce hoarder",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementChallengesCompleted, Threshold: 10},
		Bonus:       "Triple gems for staying under budget, but angers easily",
		Gradient:    [2]string{"#ff9a9e", "#fecfef"},
	},
	{
		ID:          entities.PetRobo,
		Name:        "Robo",
		Personality: "🤖 Automation nerd",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementAutomatedExpenses, Threshold: 50},
		Bonus:       "No bonus, pure bragging rights",
		Gradient:    [2]string{"#a1c4fd", "#c2e9fb"},
	},
	{
		ID:          entities.PetHero,
		Name:        "Hero",
		Personality: "🦸 Goal crusher",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementGoalsHit, Threshold: 5},
		Bonus:       "No bonus, pure bragging rights",
		Gradient:    [2]string{"#fddb92", "#d1fdff"},
	},
	{
		ID:          entities.PetSensei,
		Name:        "Sensei",
		Personality: "🦊 Wise saver",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementTotalSaved, Threshold: 50000},
		Bonus:       "No bonus, wisdom is its own reward",
		Gradient:    [2]string{"#667eea", "#764ba2"},
	},
	{
		ID:          entities.PetMystic,
		Name:        "Mystic",
		Personality: "🦄 Legendary spirit",
		Requirement: entities.UnlockRequirement{Kind: entities.RequirementTotalSaved, Threshold: 100000},
		Bonus:       "+50% gems on everything",
		Gradient:    [2]string{"#c471f5", "#fa71cd"},
	},
}

// byID is built once from entries for constant-time lookup
var byID = func() map[entities.PetID]*Entry {
	m := make(map[entities.PetID]*Entry, len(entries))
	for i := range entries {
		m[entries[i].ID] = &entries[i]
	}
	return m
}()

// Get returns the catalog entry for a pet ID
func Get(id entities.PetID) (*Entry, error) {
	entry, ok := byID[id]
	if !ok {
		return nil, types.NewPetError(types.ErrPetNotFound, fmt.Sprintf("unknown pet: %s", id))
	}
	return entry, nil
}

// All returns every catalog entry in declaration order
func All() []*Entry {
	result := make([]*Entry, 0, len(entries))
	for i := range entries {
		result = append(result, &entries[i])
	}
	return result
}

// Starters returns the pets unlocked for every new user, in declaration order
func Starters() []*Entry {
	result := make([]*Entry, 0, len(entries))
	for i := range entries {
		if entries[i].IsStarter() {
			result = append(result, &entries[i])
		}
	}
	return result
}

// Unlockable returns the non-starter pets, in declaration order
func Unlockable() []*Entry {
	result := make([]*Entry, 0, len(entries))
	for i := range entries {
		if !entries[i].IsStarter() {
			result = append(result, &entries[i])
		}
	}
	return result
}

// StarterIDs returns the IDs of all starter pets
func StarterIDs() []entities.PetID {
	starters := Starters()
	ids := make([]entities.PetID, 0, len(starters))
	for _, s := range starters {
		ids = append(ids, s.ID)
	}
	return ids
}
