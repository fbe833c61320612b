package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loanMocks struct {
	accounts *MockAccountLedger
	loans    *MockLoanStore
	journal  *MockJournal
}

var fixedNow = time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

func newLoanService(ctrl *gomock.Controller) (*LoanService, loanMocks) {
	m := loanMocks{
		accounts: NewMockAccountLedger(ctrl),
		loans:    NewMockLoanStore(ctrl),
		journal:  NewMockJournal(ctrl),
	}
	svc := NewLoanService(passthroughTx(ctrl), m.accounts, m.loans, m.journal)
	svc.now = func() time.Time { return fixedNow }
	return svc, m
}

func activeLoan(userID uuid.UUID) *models.Loan {
	return &models.Loan{
		ID:               uuid.New(),
		LoanID:           "LOAN-000001",
		UserID:           userID,
		BorrowedAsset:    models.USDT,
		BorrowedAmount:   dec("1000"),
		CollateralAsset:  models.ETH,
		CollateralAmount: dec("2"),
		InterestRate:     dec("6"),
		HealthFactor:     dec("0.0015"),
		PaymentAmount:    dec("5"),
		Status:           models.LoanStatusActive,
	}
}

func TestLoanService_CreateLoan(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	terms := LoanTerms{
		BorrowedAsset:    models.USDT,
		BorrowedAmount:   dec("1000"),
		CollateralAsset:  models.ETH,
		CollateralAmount: dec("2"),
		InterestRate:     dec("6"),
		LTVRatio:         dec("50"),
	}

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		rec := &models.TransactionRecord{ID: uuid.New()}
		var created *models.Loan

		gomock.InOrder(
			m.accounts.EXPECT().Debit(ctx, userID, models.ETH, eqDec("2")).Return(dec("0"), nil),
			m.accounts.EXPECT().Credit(ctx, userID, models.USDT, eqDec("1000")).Return(dec("1000"), nil),
			m.loans.EXPECT().NextDisplayCode(ctx).Return("LOAN-000042", nil),
			m.loans.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *models.Loan) error {
				created = l
				return nil
			}),
			m.journal.EXPECT().Record(ctx, userID, models.TransactionBorrow, models.USDT, eqDec("1000"), gomock.Any()).Return(rec, nil),
			m.journal.EXPECT().Publish(ctx, rec),
		)

		loan, err := svc.CreateLoan(ctx, userID, terms)
		require.NoError(t, err)
		assert.Same(t, created, loan)
		assert.Equal(t, "LOAN-000042", loan.LoanID)
		assert.Equal(t, models.LoanStatusActive, loan.Status)
		assert.True(t, dec("0.0015").Equal(loan.HealthFactor))
		assert.True(t, dec("5").Equal(loan.PaymentAmount))
		assert.Equal(t, fixedNow.AddDate(0, 1, 0), loan.NextPaymentDue)
	})

	t.Run("short collateral wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		m.accounts.EXPECT().Debit(ctx, userID, models.ETH, eqDec("2")).Return(decimal.Zero, ErrInsufficientBalance)

		_, err := svc.CreateLoan(ctx, userID, terms)
		assert.ErrorIs(t, err, ErrInsufficientCollateral)
	})

	t.Run("invalid terms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, _ := newLoanService(ctrl)

		bad := []LoanTerms{
			{BorrowedAsset: models.USDT, BorrowedAmount: dec("0"), CollateralAsset: models.ETH, CollateralAmount: dec("1")},
			{BorrowedAsset: models.USDT, BorrowedAmount: dec("1"), CollateralAsset: models.ETH, CollateralAmount: dec("-1")},
			{BorrowedAsset: models.USDT, BorrowedAmount: dec("1"), CollateralAsset: models.ETH, CollateralAmount: dec("1"), InterestRate: dec("-1")},
			{BorrowedAsset: "", BorrowedAmount: dec("1"), CollateralAsset: models.ETH, CollateralAmount: dec("1")},
		}
		for _, terms := range bad {
			_, err := svc.CreateLoan(ctx, userID, terms)
			assert.ErrorIs(t, err, ErrInvalidAmount)
		}
	})
}

func TestLoanService_MakePayment(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("partial payment raises health factor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		before := loan.HealthFactor
		rec := &models.TransactionRecord{ID: uuid.New()}

		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)
		m.accounts.EXPECT().Debit(ctx, userID, models.USDT, eqDec("500")).Return(dec("500"), nil)
		m.loans.EXPECT().Update(ctx, loan).Return(nil)
		m.journal.EXPECT().Record(ctx, userID, models.TransactionRepay, models.USDT, eqDec("500"), loan.ID).Return(rec, nil)
		m.journal.EXPECT().Publish(ctx, rec)

		got, err := svc.MakePayment(ctx, userID, loan.ID, dec("500"))
		require.NoError(t, err)
		assert.True(t, dec("500").Equal(got.BorrowedAmount))
		assert.True(t, dec("0.003").Equal(got.HealthFactor))
		assert.True(t, got.HealthFactor.GreaterThan(before))
		assert.Equal(t, models.LoanStatusActive, got.Status)
	})

	t.Run("repayment below floor caps health factor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		loan.BorrowedAmount = dec("0.1")
		loan.CollateralAmount = dec("1")
		rec := &models.TransactionRecord{ID: uuid.New()}

		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)
		m.accounts.EXPECT().Debit(ctx, userID, models.USDT, eqDec("0.05")).Return(dec("0"), nil)
		m.loans.EXPECT().Update(ctx, loan).Return(nil)
		m.journal.EXPECT().Record(ctx, userID, models.TransactionRepay, models.USDT, eqDec("0.05"), loan.ID).Return(rec, nil)
		m.journal.EXPECT().Publish(ctx, rec)

		got, err := svc.MakePayment(ctx, userID, loan.ID, dec("0.05"))
		require.NoError(t, err)
		assert.True(t, dec("0.05").Equal(got.BorrowedAmount))
		assert.True(t, dec("7.5").Equal(got.HealthFactor))
	})

	t.Run("full payment returns collateral", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		rec := &models.TransactionRecord{ID: uuid.New()}

		gomock.InOrder(
			m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil),
			m.accounts.EXPECT().Debit(ctx, userID, models.USDT, eqDec("1200")).Return(dec("0"), nil),
			m.accounts.EXPECT().Credit(ctx, userID, models.ETH, eqDec("2")).Return(dec("2"), nil),
			m.loans.EXPECT().Update(ctx, loan).Return(nil),
			m.journal.EXPECT().Record(ctx, userID, models.TransactionRepay, models.USDT, eqDec("1200"), loan.ID).Return(rec, nil),
			m.journal.EXPECT().Publish(ctx, rec),
		)

		got, err := svc.MakePayment(ctx, userID, loan.ID, dec("1200"))
		require.NoError(t, err)
		assert.True(t, got.IsPaid())
		assert.True(t, got.BorrowedAmount.IsZero())
	})

	t.Run("paid loan is terminal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		loan.Status = models.LoanStatusPaid
		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)

		_, err := svc.MakePayment(ctx, userID, loan.ID, dec("1"))
		assert.ErrorIs(t, err, ErrInvalidState)
	})

	t.Run("not the owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(uuid.New())
		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)

		_, err := svc.MakePayment(ctx, userID, loan.ID, dec("1"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown loan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loanID := uuid.New()
		m.loans.EXPECT().GetForUpdate(ctx, loanID).Return(nil, sql.ErrNoRows)

		_, err := svc.MakePayment(ctx, userID, loanID, dec("1"))
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("short wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)
		m.accounts.EXPECT().Debit(ctx, userID, models.USDT, eqDec("10")).Return(decimal.Zero, ErrInsufficientBalance)

		_, err := svc.MakePayment(ctx, userID, loan.ID, dec("10"))
		assert.ErrorIs(t, err, ErrInsufficientBalance)
	})
}

func TestLoanService_AddCollateral(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		before := loan.HealthFactor
		rec := &models.TransactionRecord{ID: uuid.New()}

		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)
		m.accounts.EXPECT().Debit(ctx, userID, models.ETH, eqDec("2")).Return(dec("0"), nil)
		m.loans.EXPECT().Update(ctx, loan).Return(nil)
		m.journal.EXPECT().Record(ctx, userID, models.TransactionAddCollateral, models.ETH, eqDec("2"), loan.ID).Return(rec, nil)
		m.journal.EXPECT().Publish(ctx, rec)

		got, err := svc.AddCollateral(ctx, userID, loan.ID, dec("2"))
		require.NoError(t, err)
		assert.True(t, dec("4").Equal(got.CollateralAmount))
		assert.True(t, dec("0.003").Equal(got.HealthFactor))
		assert.True(t, got.HealthFactor.GreaterThan(before))
	})

	t.Run("small debt is not floored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		loan.BorrowedAmount = dec("0.05")
		loan.CollateralAmount = dec("0.5")
		rec := &models.TransactionRecord{ID: uuid.New()}

		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)
		m.accounts.EXPECT().Debit(ctx, userID, models.ETH, eqDec("0.5")).Return(dec("0"), nil)
		m.loans.EXPECT().Update(ctx, loan).Return(nil)
		m.journal.EXPECT().Record(ctx, userID, models.TransactionAddCollateral, models.ETH, eqDec("0.5"), loan.ID).Return(rec, nil)
		m.journal.EXPECT().Publish(ctx, rec)

		got, err := svc.AddCollateral(ctx, userID, loan.ID, dec("0.5"))
		require.NoError(t, err)
		assert.True(t, dec("15").Equal(got.HealthFactor))
	})

	t.Run("short collateral wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)
		m.accounts.EXPECT().Debit(ctx, userID, models.ETH, eqDec("5")).Return(decimal.Zero, ErrInsufficientBalance)

		_, err := svc.AddCollateral(ctx, userID, loan.ID, dec("5"))
		assert.ErrorIs(t, err, ErrInsufficientCollateral)
	})

	t.Run("paid loan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newLoanService(ctrl)

		loan := activeLoan(userID)
		loan.Status = models.LoanStatusPaid
		m.loans.EXPECT().GetForUpdate(ctx, loan.ID).Return(loan, nil)

		_, err := svc.AddCollateral(ctx, userID, loan.ID, dec("1"))
		assert.ErrorIs(t, err, ErrInvalidState)
	})
}

func TestLoanService_Reads(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newLoanService(ctrl)

	loan := activeLoan(userID)
	m.loans.EXPECT().GetByID(ctx, loan.ID).Return(loan, nil)
	got, err := svc.GetLoan(ctx, userID, loan.ID)
	assert.NoError(t, err)
	assert.Equal(t, loan, got)

	m.loans.EXPECT().GetByID(ctx, loan.ID).Return(loan, nil)
	_, err = svc.GetLoan(ctx, uuid.New(), loan.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	m.loans.EXPECT().ListActiveByUserID(ctx, userID).Return([]models.Loan{*loan}, nil)
	loans, err := svc.ListActiveLoans(ctx, userID)
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
}

func TestLoanService_QuoteLoan(t *testing.T) {
	svc := NewLoanService(nil, nil, nil, nil)

	quote, err := svc.QuoteLoan(dec("1000"), dec("2000"), dec("9.2"))
	require.NoError(t, err)
	assert.True(t, dec("1.5").Equal(quote.HealthFactor))
	assert.True(t, dec("7.666666666666666667").Equal(quote.PaymentAmount))

	quote, err = svc.QuoteLoan(dec("0.05"), dec("1"), dec("5"))
	require.NoError(t, err)
	assert.True(t, dec("15").Equal(quote.HealthFactor))

	_, err = svc.QuoteLoan(dec("0"), dec("1"), dec("1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.QuoteLoan(dec("0.00000000000000000001"), dec("1"), dec("1"))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
