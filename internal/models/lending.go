package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LendRequest represents the JSON body for supplying tokens to a pool
// swagger:model LendRequest
type LendRequest struct {
	// Pool to supply
	// required: true
	PoolID uuid.UUID `json:"pool_id"`

	// Amount to supply, in pool token units
	// required: true
	// example: 400
	Amount decimal.Decimal `json:"amount"`
}

// LendResponse represents a successful lend response
// swagger:model LendResponse
type LendResponse struct {
	// example: Lending successful
	Message       string          `json:"message"`
	Position      LendingPosition `json:"position"`
	Pool          LendingPool     `json:"pool"`
	WalletBalance decimal.Decimal `json:"wallet_balance"`
}

// PositionWithdrawRequest represents the JSON body for withdrawing from a position
// swagger:model PositionWithdrawRequest
type PositionWithdrawRequest struct {
	// Amount to withdraw
	// required: true
	// example: 100
	Amount decimal.Decimal `json:"amount"`
}

// PositionWithdrawResponse represents a successful withdrawal response.
// Position is nil once the whole deposit was withdrawn.
// swagger:model PositionWithdrawResponse
type PositionWithdrawResponse struct {
	// example: Withdrawal successful
	Message       string           `json:"message"`
	Position      *LendingPosition `json:"position,omitempty"`
	Pool          LendingPool      `json:"pool"`
	WalletBalance decimal.Decimal  `json:"wallet_balance"`
}

// EarningsEstimateResponse represents the projected monthly earnings for a deposit
// swagger:model EarningsEstimateResponse
type EarningsEstimateResponse struct {
	PoolID          uuid.UUID       `json:"pool_id"`
	Token           string          `json:"token"`
	Amount          decimal.Decimal `json:"amount"`
	MonthlyEarnings decimal.Decimal `json:"monthly_earnings"`
}
