package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Loan statuses. LoanStatusPaid is terminal.
const (
	LoanStatusActive = "active"
	LoanStatusPaid   = "paid"
)

// Loan represents a collateralised loan row in the database.
type Loan struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	LoanID           string          `json:"loan_id" db:"loan_id"` // Human-readable display code, e.g. LOAN-000042
	UserID           uuid.UUID       `json:"user_id" db:"user_id"`
	BorrowedAsset    string          `json:"borrowed_asset" db:"borrowed_asset"`
	BorrowedAmount   decimal.Decimal `json:"borrowed_amount" db:"borrowed_amount"`
	CollateralAsset  string          `json:"collateral_asset" db:"collateral_asset"`
	CollateralAmount decimal.Decimal `json:"collateral_amount" db:"collateral_amount"`
	InterestRate     decimal.Decimal `json:"interest_rate" db:"interest_rate"` // Annual, in percent
	LTVRatio         decimal.Decimal `json:"ltv_ratio" db:"ltv_ratio"`         // In percent, informational only
	HealthFactor     decimal.Decimal `json:"health_factor" db:"health_factor"`
	NextPaymentDue   time.Time       `json:"next_payment_due" db:"next_payment_due"`
	PaymentAmount    decimal.Decimal `json:"payment_amount" db:"payment_amount"` // Monthly interest payment
	Status           string          `json:"status" db:"status"`
	CreatedAt        time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at" db:"updated_at"`
}

// IsPaid reports whether the loan reached its terminal state.
func (l *Loan) IsPaid() bool {
	return l.Status == LoanStatusPaid
}
