package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// WalletRepository keeps per-user token balances.
type WalletRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletRepository {
	return &WalletRepository{db: db, txGetter: txGetter}
}

// GetBalance returns the balance of userID in token. A missing wallet reads as zero.
func (r *WalletRepository) GetBalance(ctx context.Context, userID uuid.UUID, token string) (decimal.Decimal, error) {
	const query = `
		SELECT balance
		FROM wallets
		WHERE user_id = $1 AND token = $2
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, token)
	logQuery(query, []any{userID, token}, balance, err)

	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, nil
	}
	return balance, err
}

// ListByUserID returns every wallet the user holds, ordered by token.
func (r *WalletRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error) {
	const query = `
		SELECT id, user_id, token, balance, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
		ORDER BY token
	`

	wallets := []models.Wallet{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &wallets, query, userID)
	logQuery(query, []any{userID}, len(wallets), err)

	return wallets, err
}

// Credit adds amount to the wallet, creating it on first use, and returns the new balance.
func (r *WalletRepository) Credit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		INSERT INTO wallets (id, user_id, token, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, token)
		DO UPDATE SET balance = wallets.balance + EXCLUDED.balance, updated_at = NOW()
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, uuid.New(), userID, token, amount)
	logQuery(query, []any{userID, token, amount}, balance, err)

	return balance, err
}

// Debit subtracts amount only when the wallet exists and holds at least amount.
// Otherwise nothing changes and sql.ErrNoRows is returned.
func (r *WalletRepository) Debit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error) {
	const query = `
		UPDATE wallets
		SET balance = balance - $3, updated_at = NOW()
		WHERE user_id = $1 AND token = $2 AND balance >= $3
		RETURNING balance
	`

	var balance decimal.Decimal
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, userID, token, amount)
	logQuery(query, []any{userID, token, amount}, balance, err)

	return balance, err
}
