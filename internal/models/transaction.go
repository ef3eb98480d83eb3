package models

import (
	"time"

	"github.com/google/uuid"
)

// Transaction types
const (
	TxPurchase = "purchase"
	TxUsage    = "usage"
	TxRefund   = "refund"
	TxBonus    = "bonus"
)

// TransactionDB represents one immutable credit ledger entry.
// Rows are append-only: they are never updated or deleted.
type TransactionDB struct {
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"`       // Primary key
	UserID        uuid.UUID `json:"user_id" db:"user_id"`                     // Owning user
	Type          string    `json:"type" db:"type"`                           // purchase, usage, refund, bonus
	Credits       float64   `json:"credits" db:"credits"`                     // Signed credit delta
	Description   string    `json:"description" db:"description"`             // Mandatory audit text
	ExternalRef   *string   `json:"external_ref,omitempty" db:"external_ref"` // Payment processor reference, if any
	CreatedAt     time.Time `json:"created_at" db:"created_at"`               // Creation timestamp
}

// TransactionEvent is the payload published to Kafka for every ledger application.
type TransactionEvent struct {
	TransactionID string  `json:"transaction_id"` // Ledger row identifier
	UserID        string  `json:"user_id"`        // Owning user
	Type          string  `json:"type"`           // Transaction type
	Credits       float64 `json:"credits"`        // Signed credit delta
	Balance       float64 `json:"balance"`        // Balance after the application
	Timestamp     int64   `json:"timestamp"`      // Unix seconds
}
