package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

const positionColumns = `id, user_id, pool_id, deposited_amount, earned_amount, last_reward_update, created_at, updated_at`

// PositionRepository stores lending positions, one per (user, pool).
type PositionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPositionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PositionRepository {
	return &PositionRepository{db: db, txGetter: txGetter}
}

// AddDeposit creates the (user, pool) position or grows the existing one by amount.
func (r *PositionRepository) AddDeposit(ctx context.Context, userID, poolID uuid.UUID, amount decimal.Decimal) (*models.LendingPosition, error) {
	const query = `
		INSERT INTO lending_positions (id, user_id, pool_id, deposited_amount, earned_amount, last_reward_update, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 0, NOW(), NOW(), NOW())
		ON CONFLICT (user_id, pool_id)
		DO UPDATE SET deposited_amount = lending_positions.deposited_amount + EXCLUDED.deposited_amount,
		              updated_at = NOW()
		RETURNING ` + positionColumns

	var position models.LendingPosition
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &position, query, uuid.New(), userID, poolID, amount)
	logQuery(query, []any{userID, poolID, amount}, position.DepositedAmount, err)

	if err != nil {
		return nil, err
	}
	return &position, nil
}

// GetForUpdate loads a position and locks its row until the transaction ends.
// Returns sql.ErrNoRows when it does not exist.
func (r *PositionRepository) GetForUpdate(ctx context.Context, positionID uuid.UUID) (*models.LendingPosition, error) {
	const query = `
		SELECT ` + positionColumns + `
		FROM lending_positions
		WHERE id = $1
		FOR UPDATE
	`

	var position models.LendingPosition
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &position, query, positionID)
	logQuery(query, []any{positionID}, position.DepositedAmount, err)

	if err != nil {
		return nil, err
	}
	return &position, nil
}

// ReduceDeposit shrinks the position by amount. sql.ErrNoRows when it would go negative.
func (r *PositionRepository) ReduceDeposit(ctx context.Context, positionID uuid.UUID, amount decimal.Decimal) (*models.LendingPosition, error) {
	const query = `
		UPDATE lending_positions
		SET deposited_amount = deposited_amount - $2, updated_at = NOW()
		WHERE id = $1 AND deposited_amount >= $2
		RETURNING ` + positionColumns

	var position models.LendingPosition
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &position, query, positionID, amount)
	logQuery(query, []any{positionID, amount}, position.DepositedAmount, err)

	if err != nil {
		return nil, err
	}
	return &position, nil
}

func (r *PositionRepository) Delete(ctx context.Context, positionID uuid.UUID) error {
	const query = `DELETE FROM lending_positions WHERE id = $1`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, positionID)
	logQuery(query, []any{positionID}, nil, err)

	return err
}

// ListByUserID returns the user's positions with the token and APY of each pool, oldest first.
func (r *PositionRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.PositionView, error) {
	const query = `
		SELECT p.id, p.user_id, p.pool_id, p.deposited_amount, p.earned_amount,
		       p.last_reward_update, p.created_at, p.updated_at,
		       lp.token, lp.apy
		FROM lending_positions p
		JOIN lending_pools lp ON lp.id = p.pool_id
		WHERE p.user_id = $1
		ORDER BY p.created_at, p.id
	`

	positions := []models.PositionView{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &positions, query, userID)
	logQuery(query, []any{userID}, len(positions), err)

	return positions, err
}
