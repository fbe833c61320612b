package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const poolColumns = `id, token, apy, total_deposited, available_liquidity, risk_level, is_active, created_at, updated_at`

// PoolRepository reads and adjusts lending pools.
type PoolRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPoolRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PoolRepository {
	return &PoolRepository{db: db, txGetter: txGetter}
}

// ListActive returns active pools in creation order.
func (r *PoolRepository) ListActive(ctx context.Context) ([]models.LendingPool, error) {
	const query = `
		SELECT ` + poolColumns + `
		FROM lending_pools
		WHERE is_active = TRUE
		ORDER BY created_at, id
	`

	pools := []models.LendingPool{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &pools, query)
	logQuery(query, nil, len(pools), err)

	return pools, err
}

// GetByID returns sql.ErrNoRows when the pool does not exist.
func (r *PoolRepository) GetByID(ctx context.Context, poolID uuid.UUID) (*models.LendingPool, error) {
	const query = `
		SELECT ` + poolColumns + `
		FROM lending_pools
		WHERE id = $1
	`

	var pool models.LendingPool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &pool, query, poolID)
	logQuery(query, []any{poolID}, pool.ID, err)

	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// Create inserts a pool. Used for seeding and by operators.
func (r *PoolRepository) Create(ctx context.Context, pool *models.LendingPool) error {
	const query = `
		INSERT INTO lending_pools (id, token, apy, total_deposited, available_liquidity, risk_level, is_active, created_at, updated_at)
		VALUES (:id, :token, :apy, :total_deposited, :available_liquidity, :risk_level, :is_active, NOW(), NOW())
	`

	if pool.ID == uuid.Nil {
		pool.ID = uuid.New()
	}

	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, pool)
	logQuery(query, []any{pool.ID, pool.Token, pool.APY}, pool.ID, err)

	return err
}

// AddLiquidity increases both totals of the pool by amount.
func (r *PoolRepository) AddLiquidity(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error) {
	const query = `
		UPDATE lending_pools
		SET total_deposited = total_deposited + $2,
		    available_liquidity = available_liquidity + $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + poolColumns

	var pool models.LendingPool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &pool, query, poolID, amount)
	logQuery(query, []any{poolID, amount}, pool.AvailableLiquidity, err)

	if err != nil {
		return nil, err
	}
	return &pool, nil
}

// RemoveLiquidity decreases both totals of the pool by amount. When the pool
// is missing or its available liquidity is below amount nothing changes and
// sql.ErrNoRows is returned.
func (r *PoolRepository) RemoveLiquidity(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPool, error) {
	const query = `
		UPDATE lending_pools
		SET total_deposited = total_deposited - $2,
		    available_liquidity = available_liquidity - $2,
		    updated_at = NOW()
		WHERE id = $1 AND available_liquidity >= $2 AND total_deposited >= $2
		RETURNING ` + poolColumns

	var pool models.LendingPool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &pool, query, poolID, amount)
	logQuery(query, []any{poolID, amount}, pool.AvailableLiquidity, err)

	if err != nil {
		return nil, err
	}
	return &pool, nil
}
