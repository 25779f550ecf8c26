package pet

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fintamago/fintamago/pkg/entities"
	"github.com/google/uuid"
)

// MemoryRepository implements Repository using in-memory storage. Useful for
// tests and as a fallback when SQLite is unavailable.
type MemoryRepository struct {
	states       map[string]*entities.PetState
	achievements map[string]*entities.Achievements
	transactions map[string][]*entities.GemTransaction
	mu           sync.RWMutex
}

// NewMemoryRepository creates a new in-memory pet repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		states:       make(map[string]*entities.PetState),
		achievements: make(map[string]*entities.Achievements),
		transactions: make(map[string][]*entities.GemTransaction),
	}
}

// GetPetState retrieves a user's pet state
func (r *MemoryRepository) GetPetState(ctx context.Context, userID string) (*entities.PetState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	state, exists := r.states[userID]
	if !exists {
		return nil, ErrPetStateNotFound
	}

	return copyState(state), nil
}

// SavePetState creates or updates a user's pet state
func (r *MemoryRepository) SavePetState(ctx context.Context, state *entities.PetState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	state.LastUpdated = time.Now()
	r.states[state.UserID] = copyState(state)

	return nil
}

// GetAchievements retrieves a user's achievement counters
func (r *MemoryRepository) GetAchievements(ctx context.Context, userID string) (*entities.Achievements, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ach, exists := r.achievements[userID]
	if !exists {
		return nil, ErrAchievementsNotFound
	}

	achCopy := *ach
	return &achCopy, nil
}

// SaveAchievements creates or updates a user's achievement counters
func (r *MemoryRepository) SaveAchievements(ctx context.Context, ach *entities.Achievements) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ach.LastUpdated = time.Now()
	achCopy := *ach
	r.achievements[ach.UserID] = &achCopy

	return nil
}

// AddTransaction appends a gem transaction to the ledger
func (r *MemoryRepository) AddTransaction(ctx context.Context, tx *entities.GemTransaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}

	txCopy := *tx
	r.transactions[tx.UserID] = append(r.transactions[tx.UserID], &txCopy)

	return nil
}

// GetTransactions retrieves a user's most recent transactions
func (r *MemoryRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.GemTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := r.transactions[userID]

	result := make([]*entities.GemTransaction, 0, limit)
	start := 0
	if len(transactions) > limit {
		start = len(transactions) - limit
	}
	for i := start; i < len(transactions); i++ {
		txCopy := *transactions[i]
		result = append(result, &txCopy)
	}

	return result, nil
}

// GetTransactionsByType retrieves recent transactions of one type
func (r *MemoryRepository) GetTransactionsByType(ctx context.Context, userID string, txType entities.GemTransactionType, limit int) ([]*entities.GemTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	transactions := r.transactions[userID]

	filtered := make([]*entities.GemTransaction, 0, limit)
	for i := len(transactions) - 1; i >= 0 && len(filtered) < limit; i-- {
		if transactions[i].Type == txType {
			txCopy := *transactions[i]
			filtered = append(filtered, &txCopy)
		}
	}

	return filtered, nil
}

// GetTransactionsSince retrieves all transactions across users at or after
// the given time, oldest first
func (r *MemoryRepository) GetTransactionsSince(ctx context.Context, since time.Time) ([]*entities.GemTransaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*entities.GemTransaction
	for _, transactions := range r.transactions {
		for _, tx := range transactions {
			if !tx.Timestamp.Before(since) {
				txCopy := *tx
				result = append(result, &txCopy)
			}
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Timestamp.Before(result[j].Timestamp)
	})

	return result, nil
}

// ListUserIDs returns every user with a pet state, sorted for determinism
func (r *MemoryRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.states))
	for id := range r.states {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids, nil
}

// Close implements Repository
func (r *MemoryRepository) Close() error {
	return nil
}

// copyState deep-copies a pet state so callers cannot share slices with the
// stored record
func copyState(state *entities.PetState) *entities.PetState {
	stateCopy := *state
	stateCopy.UnlockedPets = append([]entities.PetID(nil), state.UnlockedPets...)
	stateCopy.Accessories = append([]string(nil), state.Accessories...)
	return &stateCopy
}
