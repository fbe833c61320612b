package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LendingPosition represents a user's running deposit in one pool.
// Unique per (user, pool); removed once DepositedAmount reaches zero.
type LendingPosition struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	UserID           uuid.UUID       `json:"user_id" db:"user_id"`
	PoolID           uuid.UUID       `json:"pool_id" db:"pool_id"`
	DepositedAmount  decimal.Decimal `json:"deposited_amount" db:"deposited_amount"`
	EarnedAmount     decimal.Decimal `json:"earned_amount" db:"earned_amount"`
	LastRewardUpdate time.Time       `json:"last_reward_update" db:"last_reward_update"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// PositionView is a position joined with the token and APY of its pool.
type PositionView struct {
	LendingPosition
	Token string          `json:"token" db:"token"`
	APY   decimal.Decimal `json:"apy" db:"apy"`
}
