package rules

// Level thresholds grow by a widening step: level 1 at 100 cumulative XP,
// level 2 at 250, level 3 at 450, each increment 50 larger than the last.
const (
	baseLevelIncrement   = 100
	levelIncrementGrowth = 50

	// XPPerExpenseUnit converts expense amounts to XP: 1 XP per 10 spent
	XPPerExpenseUnit = 10

	// MaxXPPerExpense caps how much XP a single expense can grant
	MaxXPPerExpense = 50
)

// XPForExpense converts a tracked expense amount to XP: floor(amount/10),
// capped at MaxXPPerExpense. Non-positive amounts yield 0.
func XPForExpense(amount float64) int {
	if amount <= 0 {
		return 0
	}
	xp := int(amount / XPPerExpenseUnit)
	if xp > MaxXPPerExpense {
		return MaxXPPerExpense
	}
	return xp
}

// LevelFromXP returns the raw level for a cumulative XP total: the number of
// thresholds passed. 0 XP is level 0; stored pet levels floor this at 1 via
// StoredLevel. Monotonic in xp.
func LevelFromXP(xp int) int {
	level := 0
	cumulative := 0
	increment := baseLevelIncrement
	for xp >= cumulative+increment {
		cumulative += increment
		increment += levelIncrementGrowth
		level++
	}
	return level
}

// StoredLevel is the level as persisted on PetState: never below 1
func StoredLevel(xp int) int {
	if level := LevelFromXP(xp); level > 1 {
		return level
	}
	return 1
}

// XPForLevel returns the cumulative XP required to reach a level. Level 0
// (and below) requires 0.
func XPForLevel(level int) int {
	cumulative := 0
	increment := baseLevelIncrement
	for i := 0; i < level; i++ {
		cumulative += increment
		increment += levelIncrementGrowth
	}
	return cumulative
}
