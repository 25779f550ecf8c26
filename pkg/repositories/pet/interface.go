package pet

import (
	"context"
	"errors"
	"time"

	"github.com/fintamago/fintamago/pkg/entities"
)

var (
	ErrPetStateNotFound     = errors.New("pet state not found")
	ErrAchievementsNotFound = errors.New("achievements not found")
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock.go -package=mock_pet_repo

// Repository defines the interface for pet state persistence. Absence of a
// record is reported with the sentinel errors above; anything else is an
// infrastructure failure and propagates as-is.
type Repository interface {
	// GetPetState retrieves a user's pet state
	GetPetState(ctx context.Context, userID string) (*entities.PetState, error)

	// SavePetState creates or updates a user's pet state
	SavePetState(ctx context.Context, state *entities.PetState) error

	// GetAchievements retrieves a user's achievement counters
	GetAchievements(ctx context.Context, userID string) (*entities.Achievements, error)

	// SaveAchievements creates or updates a user's achievement counters
	SaveAchievements(ctx context.Context, ach *entities.Achievements) error

	// AddTransaction appends a gem transaction to the ledger
	AddTransaction(ctx context.Context, tx *entities.GemTransaction) error

	// GetTransactions retrieves a user's most recent transactions
	GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.GemTransaction, error)

	// GetTransactionsByType retrieves recent transactions of one type
	GetTransactionsByType(ctx context.Context, userID string, txType entities.GemTransactionType, limit int) ([]*entities.GemTransaction, error)

	// GetTransactionsSince retrieves all transactions across users at or
	// after the given time, oldest first. Used by the ledger archiver.
	GetTransactionsSince(ctx context.Context, since time.Time) ([]*entities.GemTransaction, error)

	// ListUserIDs returns every user with a pet state. Used by the decay sweep.
	ListUserIDs(ctx context.Context) ([]string, error)

	// Close releases any underlying resources
	Close() error
}
