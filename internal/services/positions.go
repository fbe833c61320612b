package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/sbilibin2017/gw-lending-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=positions.go -destination=positions_mock.go -package=services

// TxRunner runs fn inside one database transaction.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// AccountLedger moves tokens in and out of user wallets.
type AccountLedger interface {
	Credit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, userID uuid.UUID, token string, amount decimal.Decimal) (decimal.Decimal, error)
}

// PoolLedger reads pools and adjusts their liquidity.
type PoolLedger interface {
	GetPool(ctx context.Context, poolID uuid.UUID) (*models.LendingPool, error)
	RecordDeposit(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error)
	RecordWithdrawal(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error)
}

// PositionStore persists lending positions.
type PositionStore interface {
	AddDeposit(ctx context.Context, userID, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPosition, error)
	GetForUpdate(ctx context.Context, positionID uuid.UUID) (*models.LendingPosition, error)
	ReduceDeposit(ctx context.Context, positionID uuid.UUID, amount decimal.Decimal) (*models.LendingPosition, error)
	Delete(ctx context.Context, positionID uuid.UUID) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PositionView, error)
}

// Journal appends transaction records and mirrors committed ones downstream.
type Journal interface {
	Record(ctx context.Context, userID uuid.UUID, txType, asset string, amount decimal.Decimal, referenceID uuid.UUID) (*models.TransactionRecord, error)
	Publish(ctx context.Context, rec *models.TransactionRecord)
}

// LendResult is the state after a successful lend.
type LendResult struct {
	Position      *models.LendingPosition
	Pool          *models.LendingPool
	WalletBalance decimal.Decimal
}

// WithdrawResult is the state after a successful withdrawal.
// Position is nil when the withdrawal closed it.
type WithdrawResult struct {
	Position      *models.LendingPosition
	Pool          *models.LendingPool
	WalletBalance decimal.Decimal
}

// PositionService is the Position Ledger.
type PositionService struct {
	tx        TxRunner
	accounts  AccountLedger
	pools     PoolLedger
	positions PositionStore
	journal   Journal
}

func NewPositionService(
	tx TxRunner,
	accounts AccountLedger,
	pools PoolLedger,
	positions PositionStore,
	journal Journal,
) *PositionService {
	return &PositionService{
		tx:        tx,
		accounts:  accounts,
		pools:     pools,
		positions: positions,
		journal:   journal,
	}
}

// Lend moves amount of the pool's token from the user's wallet into the pool.
// Repeated lends into one pool grow a single position.
func (s *PositionService) Lend(ctx context.Context, userID, poolID uuid.UUID, amount decimal.Decimal) (res *LendResult, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(models.TransactionLend, Kind(err), time.Since(start)) }()

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var rec *models.TransactionRecord
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		pool, err := s.pools.GetPool(ctx, poolID)
		if err != nil {
			return err
		}
		if !pool.IsActive {
			return ErrPoolInactive
		}

		balance, err := s.accounts.Debit(ctx, userID, pool.Token, amount)
		if err != nil {
			return err
		}

		position, err := s.positions.AddDeposit(ctx, userID, poolID, amount)
		if err != nil {
			return storageErr(err)
		}

		pool, err = s.pools.RecordDeposit(ctx, poolID, amount)
		if err != nil {
			return err
		}

		rec, err = s.journal.Record(ctx, userID, models.TransactionLend, pool.Token, amount, poolID)
		if err != nil {
			return err
		}

		res = &LendResult{Position: position, Pool: pool, WalletBalance: balance}
		return nil
	})
	if err != nil {
		logger.Log.Warnw("lend failed", "userID", userID, "poolID", poolID, "amount", amount, "error", err)
		return nil, err
	}

	s.journal.Publish(ctx, rec)
	return res, nil
}

// Withdraw returns amount from the position to the user's wallet.
// The position is removed once its deposit reaches zero.
func (s *PositionService) Withdraw(ctx context.Context, userID, positionID uuid.UUID, amount decimal.Decimal) (res *WithdrawResult, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(models.TransactionWithdraw, Kind(err), time.Since(start)) }()

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var rec *models.TransactionRecord
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		position, err := s.positions.GetForUpdate(ctx, positionID)
		if err != nil {
			return notFoundOr(err, ErrNotFound)
		}
		if position.UserID != userID {
			return ErrNotFound
		}
		if amount.GreaterThan(position.DepositedAmount) {
			return ErrInsufficientPosition
		}

		var remaining *models.LendingPosition
		if amount.Equal(position.DepositedAmount) {
			if err := s.positions.Delete(ctx, positionID); err != nil {
				return storageErr(err)
			}
		} else {
			remaining, err = s.positions.ReduceDeposit(ctx, positionID, amount)
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientPosition
			}
			if err != nil {
				return storageErr(err)
			}
		}

		pool, err := s.pools.RecordWithdrawal(ctx, position.PoolID, amount)
		if err != nil {
			return err
		}

		balance, err := s.accounts.Credit(ctx, userID, pool.Token, amount)
		if err != nil {
			return err
		}

		rec, err = s.journal.Record(ctx, userID, models.TransactionWithdraw, pool.Token, amount, position.PoolID)
		if err != nil {
			return err
		}

		res = &WithdrawResult{Position: remaining, Pool: pool, WalletBalance: balance}
		return nil
	})
	if err != nil {
		logger.Log.Warnw("withdraw failed", "userID", userID, "positionID", positionID, "amount", amount, "error", err)
		return nil, err
	}

	s.journal.Publish(ctx, rec)
	return res, nil
}

// ListPositions returns the user's positions with their pool token and APY.
func (s *PositionService) ListPositions(ctx context.Context, userID uuid.UUID) ([]models.PositionView, error) {
	positions, err := s.positions.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list positions", "userID", userID, "error", err)
		return nil, storageErr(err)
	}
	return positions, nil
}

// EstimateMonthlyEarnings projects one month of yield for supplying amount to the pool.
func (s *PositionService) EstimateMonthlyEarnings(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.EarningsEstimateResponse, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	pool, err := s.pools.GetPool(ctx, poolID)
	if err != nil {
		return nil, err
	}

	return &models.EarningsEstimateResponse{
		PoolID:          pool.ID,
		Token:           pool.Token,
		Amount:          amount,
		MonthlyEarnings: MonthlyEarnings(amount, pool.APY),
	}, nil
}
