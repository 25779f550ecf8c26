package pet

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fintamago/fintamago/internal/types"
	"github.com/fintamago/fintamago/pkg/entities"
	petRepo "github.com/fintamago/fintamago/pkg/repositories/pet"
	"github.com/fintamago/fintamago/pkg/rules"
	"github.com/stretchr/testify/suite"
)

type ServiceSuite struct {
	suite.Suite
	repo    *petRepo.MemoryRepository
	service *Service
	ctx     context.Context
}

func (s *ServiceSuite) SetupTest() {
	s.repo = petRepo.NewMemoryRepository()
	s.service = NewService(s.repo, nil)
	s.ctx = context.Background()
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) TestNewUserGetsDefaultState() {
	state, err := s.service.GetPetState(s.ctx, "user1")
	s.NoError(err)

	s.Equal(entities.PetMeow, state.CurrentPet)
	s.Equal(50, state.Gems)
	s.Equal(1, state.PetLevel)
	s.Equal(0, state.PetXP)
	s.Equal(80, state.Happiness)
	s.Equal(100, state.Energy)
	s.Equal(entities.MoodHappy, state.Mood)
	s.ElementsMatch([]entities.PetID{entities.PetMeow, entities.PetChill}, state.UnlockedPets)

	// The default is persisted, not just returned
	stored, err := s.repo.GetPetState(s.ctx, "user1")
	s.NoError(err)
	s.Equal(50, stored.Gems)
}

func (s *ServiceSuite) TestNewUserScenarioEndToEnd() {
	state, err := s.service.EarnGems(s.ctx, "user1", rules.ReasonTrackExpense)
	s.NoError(err)
	s.Equal(55, state.Gems)

	state, err = s.service.FeedPet(s.ctx, "user1")
	s.NoError(err)
	s.Equal(35, state.Gems)
	s.Equal(100, state.Happiness)
	s.Equal(100, state.Energy)
	s.Equal(entities.MoodExcited, state.Mood)
	s.False(state.LastFed.IsZero())
}

func (s *ServiceSuite) TestFeedPetInsufficientGemsLeavesStateUnchanged() {
	state, err := s.service.GetPetState(s.ctx, "user1")
	s.NoError(err)
	state.Gems = 10
	s.NoError(s.repo.SavePetState(s.ctx, state))

	_, err = s.service.FeedPet(s.ctx, "user1")
	s.True(types.IsPetError(err, types.ErrInsufficientGems))

	after, err := s.repo.GetPetState(s.ctx, "user1")
	s.NoError(err)
	s.Equal(10, after.Gems)
	s.Equal(80, after.Happiness)
	s.True(after.LastFed.IsZero())
}

func (s *ServiceSuite) TestEarnGemsIsNotDeduplicated() {
	state, err := s.service.EarnGems(s.ctx, "user1", rules.ReasonDailyLogin)
	s.NoError(err)
	s.Equal(60, state.Gems)

	state, err = s.service.EarnGems(s.ctx, "user1", rules.ReasonDailyLogin)
	s.NoError(err)
	s.Equal(70, state.Gems, "same reason earns again each time")
}

func (s *ServiceSuite) TestEarnGemsUnknownReasonIsNoOp() {
	state, err := s.service.EarnGems(s.ctx, "user1", "MYSTERY_BONUS")
	s.NoError(err)
	s.Equal(50, state.Gems)

	transactions, err := s.repo.GetTransactions(s.ctx, "user1", 10)
	s.NoError(err)
	s.Empty(transactions, "zero-amount earns log no transaction")
}

func (s *ServiceSuite) TestEarnGemsAppliesPetBonus() {
	state, err := s.service.GetPetState(s.ctx, "user1")
	s.NoError(err)
	state.UnlockedPets = append(state.UnlockedPets, entities.PetDoge)
	state.CurrentPet = entities.PetDoge
	s.NoError(s.repo.SavePetState(s.ctx, state))

	state, err = s.service.EarnGems(s.ctx, "user1", rules.ReasonWeeklyStreak)
	s.NoError(err)
	s.Equal(150, state.Gems, "50 base + doge x2 bonus")
}

func (s *ServiceSuite) TestEarnGemsAmountRejectsNegative() {
	_, err := s.service.EarnGemsAmount(s.ctx, "user1", -5, "SHENANIGANS")
	s.True(types.IsPetError(err, types.ErrInvalidAmount))
}

func (s *ServiceSuite) TestSpendGems() {
	state, err := s.service.SpendGems(s.ctx, "user1", 30, rules.ItemAccessoryBasic)
	s.NoError(err)
	s.Equal(20, state.Gems)

	_, err = s.service.SpendGems(s.ctx, "user1", 500, rules.ItemAccessoryLegendary)
	s.True(types.IsPetError(err, types.ErrInsufficientGems))

	transactions, err := s.repo.GetTransactions(s.ctx, "user1", 10)
	s.NoError(err)
	s.Len(transactions, 1, "failed spends log nothing")
	s.Equal(entities.GemTransactionSpend, transactions[0].Type)
	s.Equal(20, transactions[0].GemsAfter)
}

func (s *ServiceSuite) TestSelectPet() {
	_, err := s.service.SelectPet(s.ctx, "user1", entities.PetDragon)
	s.True(types.IsPetError(err, types.ErrNotUnlocked))

	state, err := s.service.SelectPet(s.ctx, "user1", entities.PetChill)
	s.NoError(err)
	s.Equal(entities.PetChill, state.CurrentPet)

	_, err = s.service.SelectPet(s.ctx, "user1", entities.PetID("godzilla"))
	s.True(types.IsPetError(err, types.ErrPetNotFound))
}

func (s *ServiceSuite) TestUnlockPetLifecycle() {
	// Requirement not met yet
	_, err := s.service.UnlockPet(s.ctx, "user1", entities.PetSensei)
	s.True(types.IsPetError(err, types.ErrRequirementNotMet))

	ach, err := s.service.GetAchievements(s.ctx, "user1")
	s.NoError(err)
	ach.TotalSaved = 50000
	s.NoError(s.repo.SaveAchievements(s.ctx, ach))

	state, err := s.service.UnlockPet(s.ctx, "user1", entities.PetSensei)
	s.NoError(err)
	s.True(state.HasUnlocked(entities.PetSensei))

	_, err = s.service.UnlockPet(s.ctx, "user1", entities.PetSensei)
	s.True(types.IsPetError(err, types.ErrAlreadyUnlocked))
}

func (s *ServiceSuite) TestUpdateAchievementsAutoUnlocks() {
	saved := 100000
	ach, unlocked, err := s.service.UpdateAchievements(s.ctx, "user1", AchievementUpdate{TotalSaved: &saved})
	s.NoError(err)
	s.Equal(100000, ach.TotalSaved)
	s.Equal([]entities.PetID{entities.PetSensei, entities.PetMystic}, unlocked)

	state, err := s.service.GetPetState(s.ctx, "user1")
	s.NoError(err)
	s.True(state.HasUnlocked(entities.PetSensei))
	s.True(state.HasUnlocked(entities.PetMystic))

	// Running the same update again unlocks nothing new
	_, unlocked, err = s.service.UpdateAchievements(s.ctx, "user1", AchievementUpdate{TotalSaved: &saved})
	s.NoError(err)
	s.Empty(unlocked)
}

func (s *ServiceSuite) TestUpdateAchievementsIsMonotonic() {
	high, low := 500, 100

	ach, _, err := s.service.UpdateAchievements(s.ctx, "user1", AchievementUpdate{StreakDays: &high})
	s.NoError(err)
	s.Equal(500, ach.StreakDays)

	ach, _, err = s.service.UpdateAchievements(s.ctx, "user1", AchievementUpdate{StreakDays: &low})
	s.NoError(err)
	s.Equal(500, ach.StreakDays, "counters never decrease")
}

func (s *ServiceSuite) TestAddXPLevelUpChainsBonus() {
	state, err := s.service.AddXP(s.ctx, "user1", 90)
	s.NoError(err)
	s.Equal(1, state.PetLevel, "90 XP stays at the level floor")
	s.Equal(50, state.Gems)

	state, err = s.service.AddXP(s.ctx, "user1", 160)
	s.NoError(err)
	s.Equal(250, state.PetXP)
	s.Equal(2, state.PetLevel)
	s.Equal(90, state.Gems, "level-up bonus is newLevel x 20")

	transactions, err := s.repo.GetTransactionsByType(s.ctx, "user1", entities.GemTransactionEarn, 10)
	s.NoError(err)
	s.Len(transactions, 1)
	s.Equal(rules.ReasonLevelUp, transactions[0].Reason)
	s.Equal(40, transactions[0].Amount)
}

func (s *ServiceSuite) TestUpdateMoodFromSpending() {
	state, err := s.service.UpdateMoodFromSpending(s.ctx, "user1", 130, 100)
	s.NoError(err)
	s.Equal(50, state.Happiness, "80 - 25 band - 5 meow over-budget sulk")
	s.Equal(95, state.Energy)
	s.Equal(entities.MoodNeutral, state.Mood)
}

func (s *ServiceSuite) TestUpdateMoodFromGoalChainsGemAward() {
	state, err := s.service.UpdateMoodFromGoal(s.ctx, "user1")
	s.NoError(err)
	s.Equal(entities.MoodExcited, state.Mood)
	s.Equal(100, state.Happiness)
	s.Equal(150, state.Gems, "50 default + 100 goal bonus")

	transactions, err := s.repo.GetTransactions(s.ctx, "user1", 10)
	s.NoError(err)
	s.Len(transactions, 1)
	s.Equal(rules.ReasonGoalAchieved, transactions[0].Reason)
}

func (s *ServiceSuite) TestApplyDecay() {
	base := time.Now()
	s.service.now = func() time.Time { return base }

	_, err := s.service.EarnGems(s.ctx, "user1", rules.ReasonDailyLogin)
	s.NoError(err)
	_, err = s.service.FeedPet(s.ctx, "user1")
	s.NoError(err)

	// 36 hours later the pet is very hungry
	s.service.now = func() time.Time { return base.Add(36 * time.Hour) }
	state, err := s.service.ApplyDecay(s.ctx, "user1")
	s.NoError(err)
	s.Equal(85, state.Happiness, "100 - 15")
	s.Equal(80, state.Energy, "100 - 20")
	s.Equal(entities.MoodSad, state.Mood)
}

func (s *ServiceSuite) TestApplyDecaySkipsRecentlyFed() {
	base := time.Now()
	s.service.now = func() time.Time { return base }

	_, err := s.service.EarnGems(s.ctx, "user1", rules.ReasonDailyLogin)
	s.NoError(err)
	_, err = s.service.FeedPet(s.ctx, "user1")
	s.NoError(err)

	s.service.now = func() time.Time { return base.Add(6 * time.Hour) }
	state, err := s.service.ApplyDecay(s.ctx, "user1")
	s.NoError(err)
	s.Equal(100, state.Happiness)
	s.Equal(entities.MoodExcited, state.Mood)
}

func (s *ServiceSuite) TestApplyDecaySkipsNeverFed() {
	_, err := s.service.GetPetState(s.ctx, "user1")
	s.NoError(err)

	state, err := s.service.ApplyDecay(s.ctx, "user1")
	s.NoError(err)
	s.Equal(80, state.Happiness, "never-fed pets have no decay reference point")
}

func (s *ServiceSuite) TestDecaySweepCoversAllUsers() {
	base := time.Now()
	s.service.now = func() time.Time { return base }

	for _, userID := range []string{"user1", "user2"} {
		_, err := s.service.EarnGems(s.ctx, userID, rules.ReasonDailyLogin)
		s.NoError(err)
		_, err = s.service.FeedPet(s.ctx, userID)
		s.NoError(err)
	}

	s.service.now = func() time.Time { return base.Add(72 * time.Hour) }
	s.NoError(s.service.DecaySweep(s.ctx))

	for _, userID := range []string{"user1", "user2"} {
		state, err := s.repo.GetPetState(s.ctx, userID)
		s.NoError(err)
		s.Equal(entities.MoodSleeping, state.Mood, "user %s", userID)
	}
}

func (s *ServiceSuite) TestGetUnlockStatuses() {
	statuses, err := s.service.GetUnlockStatuses(s.ctx, "user1")
	s.NoError(err)
	s.Len(statuses, 8)
	s.True(statuses[0].IsUnlocked, "first catalog entry is a starter")
}

func (s *ServiceSuite) TestSubscribeReceivesStateAfterSave() {
	ch := s.service.Subscribe("user1")
	defer s.service.Unsubscribe("user1", ch)

	_, err := s.service.EarnGems(s.ctx, "user1", rules.ReasonDailyLogin)
	s.NoError(err)

	select {
	case state := <-ch:
		// First notification is the default-state creation save
		s.Equal(50, state.Gems)
	case <-time.After(time.Second):
		s.Fail("expected a state notification")
	}

	select {
	case state := <-ch:
		s.Equal(60, state.Gems)
	case <-time.After(time.Second):
		s.Fail("expected a state notification after the earn")
	}
}

func (s *ServiceSuite) TestConcurrentEarnsAllLand() {
	const workers = 25

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, err := s.service.EarnGems(s.ctx, "user1", rules.ReasonDailyLogin)
			s.NoError(err)
		}()
	}
	wg.Wait()

	state, err := s.service.GetPetState(s.ctx, "user1")
	s.NoError(err)
	s.Equal(50+workers*10, state.Gems, "no earn may be lost to a racing write")
}
