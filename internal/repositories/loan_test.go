package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoan(t *testing.T, repo *LoanRepository, userID uuid.UUID) *models.Loan {
	t.Helper()
	ctx := context.Background()

	code, err := repo.NextDisplayCode(ctx)
	require.NoError(t, err)

	loan := &models.Loan{
		LoanID:           code,
		UserID:           userID,
		BorrowedAsset:    models.USDT,
		BorrowedAmount:   dec("1000"),
		CollateralAsset:  models.ETH,
		CollateralAmount: dec("2"),
		InterestRate:     dec("6"),
		LTVRatio:         dec("50"),
		HealthFactor:     dec("0.0015"),
		NextPaymentDue:   time.Now().AddDate(0, 1, 0),
		PaymentAmount:    dec("5"),
		Status:           models.LoanStatusActive,
	}
	require.NoError(t, repo.Create(ctx, loan))
	return loan
}

func TestLoanRepository_DisplayCodesAreUnique(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	repo := NewLoanRepository(db, nil)

	a, err := repo.NextDisplayCode(context.Background())
	require.NoError(t, err)
	b, err := repo.NextDisplayCode(context.Background())
	require.NoError(t, err)

	assert.Regexp(t, `^LOAN-\d{6}$`, a)
	assert.NotEqual(t, a, b)
}

func TestLoanRepository_CreateGetUpdate(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewLoanRepository(db, nil)

	loan := newLoan(t, repo, newUser())

	got, err := repo.GetByID(ctx, loan.ID)
	require.NoError(t, err)
	assert.Equal(t, loan.LoanID, got.LoanID)
	assert.True(t, dec("1000").Equal(got.BorrowedAmount))
	assert.Equal(t, models.LoanStatusActive, got.Status)

	got.BorrowedAmount = dec("0")
	got.Status = models.LoanStatusPaid
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.GetForUpdate(ctx, loan.ID)
	require.NoError(t, err)
	assert.True(t, again.IsPaid())
	assert.True(t, again.BorrowedAmount.IsZero())

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestLoanRepository_ListActiveByUserID(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()
	repo := NewLoanRepository(db, nil)
	userID := newUser()

	older := newLoan(t, repo, userID)
	newer := newLoan(t, repo, userID)
	paid := newLoan(t, repo, userID)
	paid.Status = models.LoanStatusPaid
	require.NoError(t, repo.Update(ctx, paid))
	newLoan(t, repo, newUser())

	loans, err := repo.ListActiveByUserID(ctx, userID)
	require.NoError(t, err)
	require.Len(t, loans, 2)
	assert.Equal(t, newer.ID, loans[0].ID)
	assert.Equal(t, older.ID, loans[1].ID)
}
