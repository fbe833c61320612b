package services

import (
	"database/sql"
	"errors"
	"fmt"
)

// Error kinds returned by the ledger. Every failure of a ledger operation
// matches exactly one of them with errors.Is.
var (
	ErrInvalidAmount          = errors.New("ledger: invalid amount")
	ErrInsufficientBalance    = errors.New("ledger: insufficient balance")
	ErrInsufficientCollateral = errors.New("ledger: insufficient collateral")
	ErrInsufficientPosition   = errors.New("ledger: insufficient position")
	ErrInsufficientLiquidity  = errors.New("ledger: insufficient liquidity")
	ErrNotFound               = errors.New("ledger: not found")
	ErrInvalidState           = errors.New("ledger: invalid state")
	ErrStorageUnavailable     = errors.New("ledger: storage unavailable")
)

// ErrPoolInactive is returned when lending into a disabled pool.
var ErrPoolInactive = fmt.Errorf("%w: pool is not active", ErrInvalidState)

// ErrLoanPaid is returned by any mutation of a fully repaid loan.
var ErrLoanPaid = fmt.Errorf("%w: loan is already paid", ErrInvalidState)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidAmount, "invalid_amount"},
	{ErrInsufficientBalance, "insufficient_balance"},
	{ErrInsufficientCollateral, "insufficient_collateral"},
	{ErrInsufficientPosition, "insufficient_position"},
	{ErrInsufficientLiquidity, "insufficient_liquidity"},
	{ErrNotFound, "not_found"},
	{ErrInvalidState, "invalid_state"},
	{ErrStorageUnavailable, "storage_unavailable"},
}

// Kind returns the stable name of err's kind: "ok" for nil and
// "storage_unavailable" for anything outside the closed set.
func Kind(err error) string {
	if err == nil {
		return "ok"
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "storage_unavailable"
}

// storageErr tags an unexpected repository error as ErrStorageUnavailable.
// Errors that already carry a kind pass through unchanged.
func storageErr(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
}

// notFoundOr maps sql.ErrNoRows to kind, otherwise wraps err as a storage failure.
func notFoundOr(err error, kind error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return kind
	}
	return storageErr(err)
}
