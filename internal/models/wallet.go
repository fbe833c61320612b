package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Supported token symbols
const (
	USDT = "USDT"
	USDC = "USDC"
	ETH  = "ETH"
	BTC  = "BTC"
	ATOM = "ATOM"
)

// Wallet represents a wallet row in the database: one per (user, token).
type Wallet struct {
	ID        uuid.UUID       `json:"id" db:"id"`                 // Unique wallet identifier
	UserID    uuid.UUID       `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Token     string          `json:"token" db:"token"`           // Token symbol (e.g., USDT, ETH)
	Balance   decimal.Decimal `json:"balance" db:"balance"`       // Spendable balance, never negative
	CreatedAt time.Time       `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time       `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}
