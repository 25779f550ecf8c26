package pet

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fintamago/fintamago/pkg/entities"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite table schemas
const (
	createPetStatesTableSQL = `
	CREATE TABLE IF NOT EXISTS pet_states (
		user_id TEXT PRIMARY KEY,
		current_pet TEXT NOT NULL,
		gems INTEGER NOT NULL DEFAULT 0,
		unlocked_pets TEXT NOT NULL DEFAULT '[]',
		accessories TEXT NOT NULL DEFAULT '[]',
		pet_level INTEGER NOT NULL DEFAULT 1,
		pet_xp INTEGER NOT NULL DEFAULT 0,
		last_fed TIMESTAMP,
		mood TEXT NOT NULL,
		happiness INTEGER NOT NULL,
		energy INTEGER NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createAchievementsTableSQL = `
	CREATE TABLE IF NOT EXISTS achievements (
		user_id TEXT PRIMARY KEY,
		total_saved INTEGER NOT NULL DEFAULT 0,
		streak_days INTEGER NOT NULL DEFAULT 0,
		automated_expenses INTEGER NOT NULL DEFAULT 0,
		challenges_completed INTEGER NOT NULL DEFAULT 0,
		goals_hit INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`

	createGemTransactionsTableSQL = `
	CREATE TABLE IF NOT EXISTS gem_transactions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		type TEXT NOT NULL,
		amount INTEGER NOT NULL,
		reason TEXT,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		gems_after INTEGER NOT NULL,
		FOREIGN KEY (user_id) REFERENCES pet_states(user_id)
	)`

	createGemTransactionIndexesSQL = `
	CREATE INDEX IF NOT EXISTS idx_gem_transactions_user_id ON gem_transactions(user_id);
	CREATE INDEX IF NOT EXISTS idx_gem_transactions_type ON gem_transactions(type);
	CREATE INDEX IF NOT EXISTS idx_gem_transactions_timestamp ON gem_transactions(timestamp DESC)
	`
)

// timestampFormats are the formats SQLite may hand back depending on how a
// value was written
var timestampFormats = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05-07:00",
	time.RFC3339,
	time.RFC3339Nano,
}

// SQLiteRepository implements Repository using SQLite
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens (creating if needed) a SQLite database at the
// given path and ensures the schema exists
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	for _, stmt := range []string{
		createPetStatesTableSQL,
		createAchievementsTableSQL,
		createGemTransactionsTableSQL,
		createGemTransactionIndexesSQL,
	} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("error creating schema: %w", err)
		}
	}

	return &SQLiteRepository{db: db}, nil
}

// GetPetState retrieves a user's pet state
func (r *SQLiteRepository) GetPetState(ctx context.Context, userID string) (*entities.PetState, error) {
	query := `SELECT user_id, current_pet, gems, unlocked_pets, accessories,
		pet_level, pet_xp, last_fed, mood, happiness, energy, updated_at
		FROM pet_states WHERE user_id = ?`

	var state entities.PetState
	var currentPet, mood, unlockedJSON, accessoriesJSON string
	var lastFed sql.NullString
	var updatedAt string

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&state.UserID,
		&currentPet,
		&state.Gems,
		&unlockedJSON,
		&accessoriesJSON,
		&state.PetLevel,
		&state.PetXP,
		&lastFed,
		&mood,
		&state.Happiness,
		&state.Energy,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPetStateNotFound
		}
		return nil, fmt.Errorf("error getting pet state: %w", err)
	}

	state.CurrentPet = entities.PetID(currentPet)
	state.Mood = entities.MoodState(mood)

	if err := json.Unmarshal([]byte(unlockedJSON), &state.UnlockedPets); err != nil {
		return nil, fmt.Errorf("error decoding unlocked pets: %w", err)
	}
	if err := json.Unmarshal([]byte(accessoriesJSON), &state.Accessories); err != nil {
		return nil, fmt.Errorf("error decoding accessories: %w", err)
	}

	if lastFed.Valid {
		state.LastFed, err = parseTimestamp(lastFed.String)
		if err != nil {
			return nil, fmt.Errorf("error parsing last_fed: %w", err)
		}
	}
	state.LastUpdated, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("error parsing updated_at: %w", err)
	}

	return &state, nil
}

// SavePetState creates or updates a user's pet state
func (r *SQLiteRepository) SavePetState(ctx context.Context, state *entities.PetState) error {
	unlockedJSON, err := json.Marshal(state.UnlockedPets)
	if err != nil {
		return fmt.Errorf("error encoding unlocked pets: %w", err)
	}
	accessories := state.Accessories
	if accessories == nil {
		accessories = []string{}
	}
	accessoriesJSON, err := json.Marshal(accessories)
	if err != nil {
		return fmt.Errorf("error encoding accessories: %w", err)
	}

	var lastFed interface{}
	if !state.LastFed.IsZero() {
		lastFed = state.LastFed.UTC().Format(time.RFC3339)
	}

	query := `INSERT INTO pet_states
		(user_id, current_pet, gems, unlocked_pets, accessories, pet_level, pet_xp, last_fed, mood, happiness, energy, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			current_pet = excluded.current_pet,
			gems = excluded.gems,
			unlocked_pets = excluded.unlocked_pets,
			accessories = excluded.accessories,
			pet_level = excluded.pet_level,
			pet_xp = excluded.pet_xp,
			last_fed = excluded.last_fed,
			mood = excluded.mood,
			happiness = excluded.happiness,
			energy = excluded.energy,
			updated_at = CURRENT_TIMESTAMP`

	_, err = r.db.ExecContext(ctx, query,
		state.UserID,
		string(state.CurrentPet),
		state.Gems,
		string(unlockedJSON),
		string(accessoriesJSON),
		state.PetLevel,
		state.PetXP,
		lastFed,
		string(state.Mood),
		state.Happiness,
		state.Energy,
	)
	if err != nil {
		return fmt.Errorf("error saving pet state: %w", err)
	}

	return nil
}

// GetAchievements retrieves a user's achievement counters
func (r *SQLiteRepository) GetAchievements(ctx context.Context, userID string) (*entities.Achievements, error) {
	query := `SELECT user_id, total_saved, streak_days, automated_expenses,
		challenges_completed, goals_hit, updated_at
		FROM achievements WHERE user_id = ?`

	var ach entities.Achievements
	var updatedAt string

	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&ach.UserID,
		&ach.TotalSaved,
		&ach.StreakDays,
		&ach.AutomatedExpenses,
		&ach.ChallengesCompleted,
		&ach.GoalsHit,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAchievementsNotFound
		}
		return nil, fmt.Errorf("error getting achievements: %w", err)
	}

	ach.LastUpdated, err = parseTimestamp(updatedAt)
	if err != nil {
		return nil, fmt.Errorf("error parsing updated_at: %w", err)
	}

	return &ach, nil
}

// SaveAchievements creates or updates a user's achievement counters
func (r *SQLiteRepository) SaveAchievements(ctx context.Context, ach *entities.Achievements) error {
	query := `INSERT INTO achievements
		(user_id, total_saved, streak_days, automated_expenses, challenges_completed, goals_hit, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			total_saved = excluded.total_saved,
			streak_days = excluded.streak_days,
			automated_expenses = excluded.automated_expenses,
			challenges_completed = excluded.challenges_completed,
			goals_hit = excluded.goals_hit,
			updated_at = CURRENT_TIMESTAMP`

	_, err := r.db.ExecContext(ctx, query,
		ach.UserID,
		ach.TotalSaved,
		ach.StreakDays,
		ach.AutomatedExpenses,
		ach.ChallengesCompleted,
		ach.GoalsHit,
	)
	if err != nil {
		return fmt.Errorf("error saving achievements: %w", err)
	}

	return nil
}

// AddTransaction appends a gem transaction to the ledger
func (r *SQLiteRepository) AddTransaction(ctx context.Context, tx *entities.GemTransaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Timestamp.IsZero() {
		tx.Timestamp = time.Now()
	}

	query := `INSERT INTO gem_transactions
		(id, user_id, type, amount, reason, timestamp, gems_after)
		VALUES (?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query,
		tx.ID,
		tx.UserID,
		string(tx.Type),
		tx.Amount,
		tx.Reason,
		tx.Timestamp.UTC().Format(time.RFC3339),
		tx.GemsAfter,
	)
	if err != nil {
		return fmt.Errorf("error adding transaction: %w", err)
	}

	return nil
}

// GetTransactions retrieves a user's most recent transactions
func (r *SQLiteRepository) GetTransactions(ctx context.Context, userID string, limit int) ([]*entities.GemTransaction, error) {
	query := `SELECT id, user_id, type, amount, reason, timestamp, gems_after
		FROM gem_transactions WHERE user_id = ?
		ORDER BY timestamp DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("error getting transactions: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetTransactionsByType retrieves recent transactions of one type
func (r *SQLiteRepository) GetTransactionsByType(ctx context.Context, userID string, txType entities.GemTransactionType, limit int) ([]*entities.GemTransaction, error) {
	query := `SELECT id, user_id, type, amount, reason, timestamp, gems_after
		FROM gem_transactions WHERE user_id = ? AND type = ?
		ORDER BY timestamp DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, string(txType), limit)
	if err != nil {
		return nil, fmt.Errorf("error getting transactions by type: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// GetTransactionsSince retrieves all transactions across users at or after
// the given time, oldest first
func (r *SQLiteRepository) GetTransactionsSince(ctx context.Context, since time.Time) ([]*entities.GemTransaction, error) {
	query := `SELECT id, user_id, type, amount, reason, timestamp, gems_after
		FROM gem_transactions WHERE timestamp >= ?
		ORDER BY timestamp ASC`

	rows, err := r.db.QueryContext(ctx, query, since.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("error getting transactions since %s: %w", since, err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// ListUserIDs returns every user with a pet state
func (r *SQLiteRepository) ListUserIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT user_id FROM pet_states ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning user id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Close closes the underlying database
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func scanTransactions(rows *sql.Rows) ([]*entities.GemTransaction, error) {
	var result []*entities.GemTransaction
	for rows.Next() {
		var tx entities.GemTransaction
		var txType, timestamp string
		if err := rows.Scan(&tx.ID, &tx.UserID, &txType, &tx.Amount, &tx.Reason, &timestamp, &tx.GemsAfter); err != nil {
			return nil, fmt.Errorf("error scanning transaction: %w", err)
		}
		tx.Type = entities.GemTransactionType(txType)
		ts, err := parseTimestamp(timestamp)
		if err != nil {
			return nil, fmt.Errorf("error parsing transaction timestamp: %w", err)
		}
		tx.Timestamp = ts
		result = append(result, &tx)
	}

	return result, rows.Err()
}

func parseTimestamp(value string) (time.Time, error) {
	var lastErr error
	for _, format := range timestampFormats {
		ts, err := time.Parse(format, value)
		if err == nil {
			return ts, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
