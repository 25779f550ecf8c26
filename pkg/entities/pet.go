package entities

import (
	"time"
)

// PetID identifies a pet in the catalog
type PetID string

const (
	PetMeow   PetID = "meow"
	PetChill  PetID = "chill"
	PetDoge   PetID = "doge"
	PetDragon PetID = "dragon"
	PetRobo   PetID = "robo"
	PetHero   PetID = "hero"
	PetSensei PetID = "sensei"
	PetMystic PetID = "mystic"
)

// MoodState represents the pet's current mood
type MoodState string

const (
	MoodHappy    MoodState = "happy"
	MoodNeutral  MoodState = "neutral"
	MoodSad      MoodState = "sad"
	MoodSleeping MoodState = "sleeping"
	MoodExcited  MoodState = "excited"
)

// RequirementKind identifies which achievement counter gates a pet unlock
type RequirementKind string

const (
	RequirementStarter             RequirementKind = "starter"
	RequirementTotalSaved          RequirementKind = "totalSaved"
	RequirementStreakDays          RequirementKind = "streakDays"
	RequirementAutomatedExpenses   RequirementKind = "automatedExpenses"
	RequirementChallengesCompleted RequirementKind = "challengesCompleted"
	RequirementGoalsHit            RequirementKind = "goalsHit"
)

// UnlockRequirement gates availability of a non-starter pet
type UnlockRequirement struct {
	Kind      RequirementKind
	Threshold int
}

// PetState is the per-user pet record. The pet service is its only writer;
// happiness and energy stay in [0,100], gems never go negative, and PetLevel
// always equals the level derived from PetXP (floored at 1).
type PetState struct {
	UserID       string
	CurrentPet   PetID     // always a member of UnlockedPets
	Gems         int       // soft-currency balance
	UnlockedPets []PetID   // non-empty, contains every starter pet
	Accessories  []string  // purchased accessory IDs
	PetLevel     int
	PetXP        int       // monotonically non-decreasing
	LastFed      time.Time // zero value means never fed
	Mood         MoodState
	Happiness    int // clamped 0-100
	Energy       int // clamped 0-100
	LastUpdated  time.Time
}

// HasUnlocked reports whether the given pet is in the unlocked set
func (p *PetState) HasUnlocked(id PetID) bool {
	for _, u := range p.UnlockedPets {
		if u == id {
			return true
		}
	}
	return false
}

// Achievements holds the monotonically increasing progress counters that
// drive pet unlocks. Counters only ever grow; merges keep the larger value.
type Achievements struct {
	UserID              string
	TotalSaved          int
	StreakDays          int
	AutomatedExpenses   int
	ChallengesCompleted int
	GoalsHit            int
	LastUpdated         time.Time
}

// Counter returns the counter matching a requirement kind. Unknown kinds
// (including starter, which has no counter) return 0.
func (a *Achievements) Counter(kind RequirementKind) int {
	switch kind {
	case RequirementTotalSaved:
		return a.TotalSaved
	case RequirementStreakDays:
		return a.StreakDays
	case RequirementAutomatedExpenses:
		return a.AutomatedExpenses
	case RequirementChallengesCompleted:
		return a.ChallengesCompleted
	case RequirementGoalsHit:
		return a.GoalsHit
	default:
		return 0
	}
}
