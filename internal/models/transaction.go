package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types recorded by the journal.
const (
	TransactionLend          = "lend"
	TransactionWithdraw      = "withdraw"
	TransactionBorrow        = "borrow"
	TransactionRepay         = "repay"
	TransactionAddCollateral = "add_collateral"
)

// TransactionStatusCompleted is the only status the ledger writes today.
const TransactionStatusCompleted = "completed"

// TransactionRecord is an append-only journal entry for one completed ledger operation.
type TransactionRecord struct {
	ID              uuid.UUID       `json:"id" db:"id"`
	UserID          uuid.UUID       `json:"user_id" db:"user_id"`
	TransactionType string          `json:"transaction_type" db:"transaction_type"`
	Asset           string          `json:"asset" db:"asset"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	ReferenceID     *uuid.UUID      `json:"reference_id,omitempty" db:"reference_id"`         // Pool or loan id
	Status          string          `json:"status" db:"status"`                               // Always "completed" for now
	TransactionHash *string         `json:"transaction_hash,omitempty" db:"transaction_hash"` // Reserved for an on-chain mirror
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}
