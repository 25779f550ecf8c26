package entities

import (
	"time"
)

// GemTransactionType represents the direction of a gem transaction
type GemTransactionType string

const (
	GemTransactionEarn  GemTransactionType = "EARN"
	GemTransactionSpend GemTransactionType = "SPEND"
)

// GemTransaction is a single append-only ledger entry. Entries are written on
// every gem-affecting operation and never mutated; the engine never reads them
// back for decisions, they exist for audit and history display.
type GemTransaction struct {
	ID        string             // Unique identifier
	UserID    string             // User the transaction belongs to
	Type      GemTransactionType // EARN or SPEND
	Amount    int                // Always positive; Type carries the direction
	Reason    string             // Reason code or free-text tag
	Timestamp time.Time          // When the transaction occurred
	GemsAfter int                // Gem balance after this transaction
}
