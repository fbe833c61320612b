package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pool risk tiers
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// LendingPool represents a lending pool row in the database.
// TotalDeposited and AvailableLiquidity move in lock-step on every lend and withdraw.
type LendingPool struct {
	ID                 uuid.UUID       `json:"id" db:"id"`
	Token              string          `json:"token" db:"token"`
	APY                decimal.Decimal `json:"apy" db:"apy"` // Annual percentage yield, in percent
	TotalDeposited     decimal.Decimal `json:"total_deposited" db:"total_deposited"`
	AvailableLiquidity decimal.Decimal `json:"available_liquidity" db:"available_liquidity"`
	RiskLevel          string          `json:"risk_level" db:"risk_level"`
	IsActive           bool            `json:"is_active" db:"is_active"`
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}
