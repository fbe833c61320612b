package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
)

// TransactionRepository is the append-only journal table.
type TransactionRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTransactionRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionRepository {
	return &TransactionRepository{db: db, txGetter: txGetter}
}

// Append inserts rec and fills in its CreatedAt.
func (r *TransactionRepository) Append(ctx context.Context, rec *models.TransactionRecord) error {
	const query = `
		INSERT INTO transactions (id, user_id, transaction_type, asset, amount, reference_id, status, transaction_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, clock_timestamp())
		RETURNING created_at
	`

	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &rec.CreatedAt, query,
		rec.ID, rec.UserID, rec.TransactionType, rec.Asset, rec.Amount, rec.ReferenceID, rec.Status, rec.TransactionHash)
	logQuery(query, []any{rec.UserID, rec.TransactionType, rec.Asset, rec.Amount}, rec.ID, err)

	return err
}

// ListByUserID returns a page of the user's records, newest first.
func (r *TransactionRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionRecord, error) {
	const query = `
		SELECT id, user_id, transaction_type, asset, amount, reference_id, status, transaction_hash, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	records := []models.TransactionRecord{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &records, query, userID, limit, offset)
	logQuery(query, []any{userID, limit, offset}, len(records), err)

	return records, err
}
