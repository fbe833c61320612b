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

//go:generate mockgen -source=pools.go -destination=pools_mock.go -package=services

// PoolStore persists lending pools. Liquidity changes are applied atomically by the store.
type PoolStore interface {
	ListActive(ctx context.Context) ([]models.LendingPool, error)
	GetByID(ctx context.Context, poolID uuid.UUID) (*models.LendingPool, error)
	AddLiquidity(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error)
	RemoveLiquidity(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error)
}

// PoolService is the Pool Registry.
type PoolService struct {
	pools PoolStore
}

func NewPoolService(pools PoolStore) *PoolService {
	return &PoolService{pools: pools}
}

// ListActivePools returns active pools in the order they were provisioned.
func (s *PoolService) ListActivePools(ctx context.Context) ([]models.LendingPool, error) {
	pools, err := s.pools.ListActive(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list pools", "error", err)
		return nil, storageErr(err)
	}
	return pools, nil
}

func (s *PoolService) GetPool(ctx context.Context, poolID uuid.UUID) (*models.LendingPool, error) {
	pool, err := s.pools.GetByID(ctx, poolID)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("failed to get pool", "poolID", poolID, "error", err)
		}
		return nil, notFoundOr(err, ErrNotFound)
	}
	return pool, nil
}

// RecordDeposit grows the pool's total and available liquidity by amount.
func (s *PoolService) RecordDeposit(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	pool, err := s.pools.AddLiquidity(ctx, poolID, amount)
	if err != nil {
		logger.Log.Errorw("failed to record pool deposit", "poolID", poolID, "amount", amount, "error", err)
		return nil, notFoundOr(err, ErrNotFound)
	}
	return pool, nil
}

// RecordWithdrawal shrinks the pool's total and available liquidity by amount.
// Fails with ErrInsufficientLiquidity when less than amount is available.
func (s *PoolService) RecordWithdrawal(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error) {
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	pool, err := s.pools.RemoveLiquidity(ctx, poolID, amount)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := s.GetPool(ctx, poolID); getErr != nil {
			return nil, getErr
		}
		logger.Log.Warnw("insufficient pool liquidity", "poolID", poolID, "amount", amount)
		return nil, ErrInsufficientLiquidity
	}
	if err != nil {
		logger.Log.Errorw("failed to record pool withdrawal", "poolID", poolID, "amount", amount, "error", err)
		return nil, storageErr(err)
	}
	return pool, nil
}
