// Package pet implements the stateful coordinator of the reward engine. The
// Service is the sole writer of PetState and Achievements: it serializes all
// mutations per user, applies the pure rules, persists the outcome and logs
// gem transactions.
package pet

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fintamago/fintamago/internal/logging"
	"github.com/fintamago/fintamago/internal/types"
	"github.com/fintamago/fintamago/pkg/catalog"
	"github.com/fintamago/fintamago/pkg/entities"
	petRepo "github.com/fintamago/fintamago/pkg/repositories/pet"
	"github.com/fintamago/fintamago/pkg/rules"
)

// DecayThreshold is how long a pet can go unfed before passive decay starts
const DecayThreshold = 12 * time.Hour

// Service coordinates all pet state mutations for all users
type Service struct {
	repo   petRepo.Repository
	logger *logging.Logger

	// userLocks serializes all mutations for one user; rules stay pure, so
	// this is the only ordering point besides the repository itself
	userLocks map[string]*sync.Mutex
	locksMu   sync.Mutex

	subscribers map[string][]chan *entities.PetState
	subsMu      sync.Mutex

	now func() time.Time
}

// NewService creates a new pet service
func NewService(repo petRepo.Repository, logger *logging.Logger) *Service {
	if logger == nil {
		logger = logging.Default
	}
	return &Service{
		repo:        repo,
		logger:      logger,
		userLocks:   make(map[string]*sync.Mutex),
		subscribers: make(map[string][]chan *entities.PetState),
		now:         time.Now,
	}
}

// lockUser acquires the per-user mutex, creating it on first use
func (s *Service) lockUser(userID string) func() {
	s.locksMu.Lock()
	lock, ok := s.userLocks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.userLocks[userID] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}

// GetPetState returns the user's pet state, creating the default record the
// first time the user is seen
func (s *Service) GetPetState(ctx context.Context, userID string) (*entities.PetState, error) {
	defer s.lockUser(userID)()
	return s.loadState(ctx, userID)
}

// GetAchievements returns the user's achievement counters, creating the
// all-zero record the first time the user is seen
func (s *Service) GetAchievements(ctx context.Context, userID string) (*entities.Achievements, error) {
	defer s.lockUser(userID)()
	return s.loadAchievements(ctx, userID)
}

// SelectPet switches the user's active pet. Fails with NOT_UNLOCKED if the
// pet is not in the unlocked set.
func (s *Service) SelectPet(ctx context.Context, userID string, petID entities.PetID) (*entities.PetState, error) {
	if _, err := catalog.Get(petID); err != nil {
		return nil, err
	}

	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !state.HasUnlocked(petID) {
		return nil, types.NewPetError(types.ErrNotUnlocked, fmt.Sprintf("pet %s is not unlocked", petID))
	}

	state.CurrentPet = petID
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// FeedPet feeds the current pet: deducts the feed cost, applies the feeding
// mood boost and stamps LastFed. Fails with INSUFFICIENT_GEMS without
// touching state.
func (s *Service) FeedPet(ctx context.Context, userID string) (*entities.PetState, error) {
	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	cost := rules.FeedCost()
	if state.Gems < cost {
		return nil, types.NewPetError(types.ErrInsufficientGems, fmt.Sprintf("feeding costs %d gems, you have %d", cost, state.Gems))
	}

	result := rules.MoodAfterFeeding(state.Happiness, state.Energy)
	state.Gems -= cost
	state.Happiness = result.Happiness
	state.Energy = result.Energy
	state.Mood = result.Mood
	state.LastFed = s.now()

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	if err := s.logTransaction(ctx, state, entities.GemTransactionSpend, cost, rules.ItemFeedPet); err != nil {
		return nil, err
	}
	return state, nil
}

// EarnGems awards gems for a reason code, applying the current pet's bonus.
// Unknown reasons award nothing and are not an error.
func (s *Service) EarnGems(ctx context.Context, userID, reason string) (*entities.PetState, error) {
	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	ach, err := s.loadAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	amount := rules.ComputeGemsEarned(reason, state.CurrentPet, ach.StreakDays)
	if err := s.earn(ctx, state, amount, reason); err != nil {
		return nil, err
	}
	return state, nil
}

// EarnGemsAmount awards an explicit gem amount, bypassing the earning table.
// Used for overrides such as the level-up bonus.
func (s *Service) EarnGemsAmount(ctx context.Context, userID string, amount int, reason string) (*entities.PetState, error) {
	if amount < 0 {
		return nil, types.NewPetError(types.ErrInvalidAmount, "earn amount cannot be negative")
	}

	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.earn(ctx, state, amount, reason); err != nil {
		return nil, err
	}
	return state, nil
}

// SpendGems deducts gems for a purchase. Fails with INSUFFICIENT_GEMS
// without touching state.
func (s *Service) SpendGems(ctx context.Context, userID string, amount int, reason string) (*entities.PetState, error) {
	if amount <= 0 {
		return nil, types.NewPetError(types.ErrInvalidAmount, "spend amount must be positive")
	}

	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.Gems < amount {
		return nil, types.NewPetError(types.ErrInsufficientGems, fmt.Sprintf("that costs %d gems, you have %d", amount, state.Gems))
	}

	state.Gems -= amount
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	if err := s.logTransaction(ctx, state, entities.GemTransactionSpend, amount, reason); err != nil {
		return nil, err
	}
	return state, nil
}

// UnlockPet adds a pet to the unlocked set. Fails with ALREADY_UNLOCKED or
// REQUIREMENT_NOT_MET.
func (s *Service) UnlockPet(ctx context.Context, userID string, petID entities.PetID) (*entities.PetState, error) {
	entry, err := catalog.Get(petID)
	if err != nil {
		return nil, err
	}

	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	ach, err := s.loadAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.HasUnlocked(petID) {
		return nil, types.NewPetError(types.ErrAlreadyUnlocked, fmt.Sprintf("pet %s is already unlocked", petID))
	}
	if !rules.CanUnlock(entry, ach) {
		return nil, types.NewPetError(types.ErrRequirementNotMet, entry.RequirementDescription())
	}

	state.UnlockedPets = append(state.UnlockedPets, petID)
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// UpdateMoodFromSpending re-evaluates the pet's mood against today's
// spending. Never fails on domain grounds.
func (s *Service) UpdateMoodFromSpending(ctx context.Context, userID string, dailySpent, dailyBudget float64) (*entities.PetState, error) {
	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := rules.MoodFromSpending(dailySpent, dailyBudget, state.Happiness, state.Energy, state.CurrentPet)
	state.Happiness = result.Happiness
	state.Energy = result.Energy
	state.Mood = result.Mood

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// UpdateMoodFromGoal applies the goal-completion mood boost and chains the
// GOAL_ACHIEVED gem award
func (s *Service) UpdateMoodFromGoal(ctx context.Context, userID string) (*entities.PetState, error) {
	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	ach, err := s.loadAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := rules.MoodAfterGoal(state.Happiness, state.Energy)
	state.Happiness = result.Happiness
	state.Energy = result.Energy
	state.Mood = result.Mood

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	amount := rules.ComputeGemsEarned(rules.ReasonGoalAchieved, state.CurrentPet, ach.StreakDays)
	if err := s.earn(ctx, state, amount, rules.ReasonGoalAchieved); err != nil {
		return nil, err
	}
	return state, nil
}

// AddXP adds XP and recomputes the level. Crossing a level threshold chains
// a level-up gem bonus of newLevel x 20.
func (s *Service) AddXP(ctx context.Context, userID string, amount int) (*entities.PetState, error) {
	if amount < 0 {
		return nil, types.NewPetError(types.ErrInvalidAmount, "xp amount cannot be negative")
	}

	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	oldLevel := state.PetLevel
	state.PetXP += amount
	state.PetLevel = rules.StoredLevel(state.PetXP)

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}

	if state.PetLevel > oldLevel {
		bonus := state.PetLevel * 20
		s.logger.Info("User %s reached pet level %d, awarding %d gems", userID, state.PetLevel, bonus)
		if err := s.earn(ctx, state, bonus, rules.ReasonLevelUp); err != nil {
			return nil, err
		}
	}
	return state, nil
}

// AchievementUpdate is a partial, monotonic update of achievement counters.
// Nil fields are untouched; set fields only ever raise the stored value.
type AchievementUpdate struct {
	TotalSaved          *int
	StreakDays          *int
	AutomatedExpenses   *int
	ChallengesCompleted *int
	GoalsHit            *int
}

// UpdateAchievements merges the partial update and auto-unlocks every pet
// whose requirement is now met. Auto-unlocks are idempotent: pets already
// unlocked are skipped, and an individual failure does not fail the update.
func (s *Service) UpdateAchievements(ctx context.Context, userID string, update AchievementUpdate) (*entities.Achievements, []entities.PetID, error) {
	defer s.lockUser(userID)()

	ach, err := s.loadAchievements(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	mergeCounter(&ach.TotalSaved, update.TotalSaved)
	mergeCounter(&ach.StreakDays, update.StreakDays)
	mergeCounter(&ach.AutomatedExpenses, update.AutomatedExpenses)
	mergeCounter(&ach.ChallengesCompleted, update.ChallengesCompleted)
	mergeCounter(&ach.GoalsHit, update.GoalsHit)

	if err := s.repo.SaveAchievements(ctx, ach); err != nil {
		return nil, nil, fmt.Errorf("error saving achievements: %w", err)
	}

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	newlyUnlocked := rules.NewlyUnlockable(state.UnlockedPets, ach)
	if len(newlyUnlocked) > 0 {
		for _, id := range newlyUnlocked {
			if state.HasUnlocked(id) {
				continue
			}
			state.UnlockedPets = append(state.UnlockedPets, id)
			s.logger.Info("User %s auto-unlocked pet %s", userID, id)
		}
		if err := s.saveState(ctx, state); err != nil {
			return nil, nil, err
		}
	}

	return ach, newlyUnlocked, nil
}

// ApplyDecay applies hunger decay if the pet has gone more than 12 hours
// without feeding. Pets that were never fed have no reference point and are
// left alone.
func (s *Service) ApplyDecay(ctx context.Context, userID string) (*entities.PetState, error) {
	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}

	if state.LastFed.IsZero() {
		return state, nil
	}

	hours := s.now().Sub(state.LastFed).Hours()
	if hours <= DecayThreshold.Hours() {
		return state, nil
	}

	result := rules.MoodDecay(hours, state.Happiness, state.Energy, state.Mood)
	state.Happiness = result.Happiness
	state.Energy = result.Energy
	state.Mood = result.Mood

	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// DecaySweep applies passive decay to every known user. Intended to run on
// an hourly schedule; per-user errors are logged and the sweep continues.
func (s *Service) DecaySweep(ctx context.Context) error {
	userIDs, err := s.repo.ListUserIDs(ctx)
	if err != nil {
		return fmt.Errorf("error listing users for decay sweep: %w", err)
	}

	for _, userID := range userIDs {
		if _, err := s.ApplyDecay(ctx, userID); err != nil {
			s.logger.Warn("Decay failed for user %s: %v", userID, err)
		}
	}
	return nil
}

// GetUnlockStatuses returns the unlock overview for every catalog pet
func (s *Service) GetUnlockStatuses(ctx context.Context, userID string) ([]rules.UnlockStatus, error) {
	defer s.lockUser(userID)()

	state, err := s.loadState(ctx, userID)
	if err != nil {
		return nil, err
	}
	ach, err := s.loadAchievements(ctx, userID)
	if err != nil {
		return nil, err
	}

	return rules.AllUnlockStatuses(state.UnlockedPets, ach), nil
}

// GetRecentTransactions returns the user's recent gem history
func (s *Service) GetRecentTransactions(ctx context.Context, userID string, limit int) ([]*entities.GemTransaction, error) {
	return s.repo.GetTransactions(ctx, userID, limit)
}

// earn adds gems to an already-loaded state and logs the transaction. A zero
// amount is a no-op: nothing saved, nothing logged. Caller holds the user lock.
func (s *Service) earn(ctx context.Context, state *entities.PetState, amount int, reason string) error {
	if amount <= 0 {
		return nil
	}

	state.Gems += amount
	if err := s.saveState(ctx, state); err != nil {
		return err
	}
	return s.logTransaction(ctx, state, entities.GemTransactionEarn, amount, reason)
}

// loadState reads the user's pet state, synthesizing and persisting the
// default record on first sight. Caller holds the user lock.
func (s *Service) loadState(ctx context.Context, userID string) (*entities.PetState, error) {
	state, err := s.repo.GetPetState(ctx, userID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, petRepo.ErrPetStateNotFound) {
		return nil, fmt.Errorf("error loading pet state: %w", err)
	}

	state = defaultPetState(userID)
	s.logger.Info("Creating default pet state for new user %s", userID)
	if err := s.saveState(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// loadAchievements reads the user's counters, synthesizing the all-zero
// record on first sight. Caller holds the user lock.
func (s *Service) loadAchievements(ctx context.Context, userID string) (*entities.Achievements, error) {
	ach, err := s.repo.GetAchievements(ctx, userID)
	if err == nil {
		return ach, nil
	}
	if !errors.Is(err, petRepo.ErrAchievementsNotFound) {
		return nil, fmt.Errorf("error loading achievements: %w", err)
	}

	ach = &entities.Achievements{UserID: userID}
	if err := s.repo.SaveAchievements(ctx, ach); err != nil {
		return nil, fmt.Errorf("error creating achievements: %w", err)
	}
	return ach, nil
}

// saveState persists the state and notifies subscribers
func (s *Service) saveState(ctx context.Context, state *entities.PetState) error {
	if err := s.repo.SavePetState(ctx, state); err != nil {
		return fmt.Errorf("error saving pet state: %w", err)
	}
	s.notify(state)
	return nil
}

// logTransaction appends a ledger entry for a gem movement
func (s *Service) logTransaction(ctx context.Context, state *entities.PetState, txType entities.GemTransactionType, amount int, reason string) error {
	tx := &entities.GemTransaction{
		UserID:    state.UserID,
		Type:      txType,
		Amount:    amount,
		Reason:    reason,
		Timestamp: s.now(),
		GemsAfter: state.Gems,
	}
	if err := s.repo.AddTransaction(ctx, tx); err != nil {
		return fmt.Errorf("error logging gem transaction: %w", err)
	}
	return nil
}

// defaultPetState is the record synthesized the first time a user is seen
func defaultPetState(userID string) *entities.PetState {
	return &entities.PetState{
		UserID:       userID,
		CurrentPet:   catalog.DefaultPet,
		Gems:         50,
		UnlockedPets: catalog.StarterIDs(),
		Accessories:  []string{},
		PetLevel:     1,
		PetXP:        0,
		Mood:         entities.MoodHappy,
		Happiness:    80,
		Energy:       100,
	}
}

func mergeCounter(current *int, update *int) {
	if update != nil && *update > *current {
		*current = *update
	}
}
