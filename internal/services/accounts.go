package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=accounts.go -destination=accounts_mock.go -package=services

// WalletStore persists wallet balances.
type WalletStore interface {
	GetBalance(ctx context.Context, userID uuid.UUID, token string) (decimal.Decimal, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error)
	Credit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error)
	// Debit returns sql.ErrNoRows when the wallet is absent or short.
	Debit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error)
}

// AccountService is the Account Store: per-user token balances.
// Credit and Debit join the caller's transaction when one is in ctx.
type AccountService struct {
	wallets WalletStore
}

func NewAccountService(wallets WalletStore) *AccountService {
	return &AccountService{wallets: wallets}
}

// GetBalance returns zero for a wallet that was never credited.
func (s *AccountService) GetBalance(ctx context.Context, userID uuid.UUID, token string) (decimal.Decimal, error) {
	balance, err := s.wallets.GetBalance(ctx, userID, token)
	if err != nil {
		logger.Log.Errorw("failed to get balance", "userID", userID, "token", token, "error", err)
		return decimal.Zero, storageErr(err)
	}
	return balance, nil
}

func (s *AccountService) ListWallets(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error) {
	wallets, err := s.wallets.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list wallets", "userID", userID, "error", err)
		return nil, storageErr(err)
	}
	return wallets, nil
}

// Credit adds amount to the user's wallet in token, creating the wallet if needed.
func (s *AccountService) Credit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.wallets.Credit(ctx, userID, token, amount)
	if err != nil {
		logger.Log.Errorw("failed to credit wallet", "userID", userID, "token", token, "amount", amount, "error", err)
		return decimal.Zero, storageErr(err)
	}
	return balance, nil
}

// Debit removes amount from the user's wallet in token.
// Fails with ErrInsufficientBalance when the wallet holds less than amount.
func (s *AccountService) Debit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error) {
	if err := validateAmount(amount); err != nil {
		return decimal.Zero, err
	}

	balance, err := s.wallets.Debit(ctx, userID, token, amount)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Warnw("insufficient balance", "userID", userID, "token", token, "amount", amount)
		return decimal.Zero, ErrInsufficientBalance
	}
	if err != nil {
		logger.Log.Errorw("failed to debit wallet", "userID", userID, "token", token, "amount", amount, "error", err)
		return decimal.Zero, storageErr(err)
	}
	return balance, nil
}
