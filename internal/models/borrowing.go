package models

import "github.com/shopspring/decimal"

// CreateLoanRequest represents the JSON body for opening a loan
// swagger:model CreateLoanRequest
type CreateLoanRequest struct {
	// required: true
	// example: USDT
	BorrowedAsset string `json:"borrowed_asset"`

	// required: true
	// example: 1000
	BorrowedAmount decimal.Decimal `json:"borrowed_amount"`

	// required: true
	// example: ETH
	CollateralAsset string `json:"collateral_asset"`

	// required: true
	// example: 1
	CollateralAmount decimal.Decimal `json:"collateral_amount"`

	// Annual interest rate in percent
	// required: true
	// example: 9.2
	InterestRate decimal.Decimal `json:"interest_rate"`

	// Loan-to-value ratio in percent
	// example: 65
	LTVRatio decimal.Decimal `json:"ltv_ratio"`
}

// LoanQuoteRequest represents the JSON body for previewing a loan
// swagger:model LoanQuoteRequest
type LoanQuoteRequest struct {
	BorrowedAmount   decimal.Decimal `json:"borrowed_amount"`
	CollateralAmount decimal.Decimal `json:"collateral_amount"`
	InterestRate     decimal.Decimal `json:"interest_rate"`
}

// LoanQuote is what a loan with the given terms would record at origination.
// swagger:model LoanQuote
type LoanQuote struct {
	HealthFactor  decimal.Decimal `json:"health_factor"`
	PaymentAmount decimal.Decimal `json:"payment_amount"`
}

// LoanPaymentRequest represents the JSON body for repaying a loan
// swagger:model LoanPaymentRequest
type LoanPaymentRequest struct {
	// required: true
	// example: 500
	Amount decimal.Decimal `json:"amount"`
}

// AddCollateralRequest represents the JSON body for topping up loan collateral
// swagger:model AddCollateralRequest
type AddCollateralRequest struct {
	// required: true
	// example: 0.5
	Amount decimal.Decimal `json:"amount"`
}

// LoanResponse represents a successful loan mutation response
// swagger:model LoanResponse
type LoanResponse struct {
	// example: Loan created successfully
	Message string `json:"message"`
	Loan    Loan   `json:"loan"`
}
