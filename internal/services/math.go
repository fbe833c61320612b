package services

import (
	"github.com/shopspring/decimal"
)

var (
	// liquidationThreshold is the share of collateral counted towards the health factor.
	liquidationThreshold = decimal.RequireFromString("0.75")
	// minBorrowed keeps the health factor finite once the debt is (almost) gone.
	minBorrowed = decimal.RequireFromString("0.1")
	// maxAmount is the first value that no longer fits NUMERIC(36,18).
	maxAmount = decimal.New(1, 18)

	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// divPrecision is the number of fractional digits kept by divisions, matching NUMERIC(36,18).
const divPrecision = 18

// HealthFactor is collateral × 0.75 / borrowed. borrowed must be positive.
func HealthFactor(collateral, borrowed decimal.Decimal) decimal.Decimal {
	return collateral.Mul(liquidationThreshold).DivRound(borrowed, divPrecision)
}

// RepaymentHealthFactor is HealthFactor with the debt floored at 0.1,
// used after a partial repayment.
func RepaymentHealthFactor(collateral, borrowed decimal.Decimal) decimal.Decimal {
	return HealthFactor(collateral, decimal.Max(borrowed, minBorrowed))
}

// MonthlyPayment is the monthly interest on borrowed at an annual rate given in percent.
func MonthlyPayment(borrowed, annualRate decimal.Decimal) decimal.Decimal {
	return borrowed.Mul(annualRate).DivRound(hundred.Mul(twelve), divPrecision)
}

// MonthlyEarnings estimates one month of yield on amount at apy percent.
func MonthlyEarnings(amount, apy decimal.Decimal) decimal.Decimal {
	return MonthlyPayment(amount, apy)
}

// validateAmount accepts positive amounts that are stored without rounding.
func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThanOrEqual(maxAmount) {
		return ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(divPrecision)) {
		return ErrInvalidAmount
	}
	return nil
}
