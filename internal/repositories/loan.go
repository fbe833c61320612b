package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
)

const loanColumns = `id, loan_id, user_id, borrowed_asset, borrowed_amount, collateral_asset, collateral_amount,
	interest_rate, ltv_ratio, health_factor, next_payment_due, payment_amount, status, created_at, updated_at`

// LoanRepository stores collateralised loans.
type LoanRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLoanRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LoanRepository {
	return &LoanRepository{db: db, txGetter: txGetter}
}

// NextDisplayCode allocates a unique human-readable loan code such as LOAN-000042.
func (r *LoanRepository) NextDisplayCode(ctx context.Context) (string, error) {
	const query = `SELECT nextval('loan_display_seq')`

	var seq int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &seq, query)
	logQuery(query, nil, seq, err)

	if err != nil {
		return "", err
	}
	return fmt.Sprintf("LOAN-%06d", seq), nil
}

func (r *LoanRepository) Create(ctx context.Context, loan *models.Loan) error {
	const query = `
		INSERT INTO loans (id, loan_id, user_id, borrowed_asset, borrowed_amount, collateral_asset, collateral_amount,
			interest_rate, ltv_ratio, health_factor, next_payment_due, payment_amount, status, created_at, updated_at)
		VALUES (:id, :loan_id, :user_id, :borrowed_asset, :borrowed_amount, :collateral_asset, :collateral_amount,
			:interest_rate, :ltv_ratio, :health_factor, :next_payment_due, :payment_amount, :status, NOW(), NOW())
	`

	if loan.ID == uuid.Nil {
		loan.ID = uuid.New()
	}

	_, err := sqlx.NamedExecContext(ctx, executor(ctx, r.db, r.txGetter), query, loan)
	logQuery(query, []any{loan.ID, loan.LoanID, loan.UserID}, loan.ID, err)

	return err
}

// GetByID returns sql.ErrNoRows when the loan does not exist.
func (r *LoanRepository) GetByID(ctx context.Context, loanID uuid.UUID) (*models.Loan, error) {
	return r.get(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, loanID)
}

// GetForUpdate loads a loan and locks its row until the transaction ends.
func (r *LoanRepository) GetForUpdate(ctx context.Context, loanID uuid.UUID) (*models.Loan, error) {
	return r.get(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1 FOR UPDATE`, loanID)
}

func (r *LoanRepository) get(ctx context.Context, query string, loanID uuid.UUID) (*models.Loan, error) {
	var loan models.Loan
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &loan, query, loanID)
	logQuery(query, []any{loanID}, loan.LoanID, err)

	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// Update writes back the mutable fields of a loan and refreshes UpdatedAt.
func (r *LoanRepository) Update(ctx context.Context, loan *models.Loan) error {
	const query = `
		UPDATE loans
		SET borrowed_amount = $2,
		    collateral_amount = $3,
		    health_factor = $4,
		    status = $5,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &loan.UpdatedAt, query,
		loan.ID, loan.BorrowedAmount, loan.CollateralAmount, loan.HealthFactor, loan.Status)
	logQuery(query, []any{loan.ID, loan.BorrowedAmount, loan.CollateralAmount, loan.Status}, loan.UpdatedAt, err)

	return err
}

// ListActiveByUserID returns the user's active loans, newest first.
func (r *LoanRepository) ListActiveByUserID(ctx context.Context, userID uuid.UUID) ([]models.Loan, error) {
	const query = `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE user_id = $1 AND status = 'active'
		ORDER BY created_at DESC, id
	`

	loans := []models.Loan{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &loans, query, userID)
	logQuery(query, []any{userID}, len(loans), err)

	return loans, err
}
