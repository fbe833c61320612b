package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/sbilibin2017/gw-lending-ledger/internal/metrics"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=loans.go -destination=loans_mock.go -package=services

// LoanStore persists loans.
type LoanStore interface {
	NextDisplayCode(ctx context.Context) (string, error)
	Create(ctx context.Context, loan *models.Loan) error
	GetByID(ctx context.Context, loanID uuid.UUID) (*models.Loan, error)
	GetForUpdate(ctx context.Context, loanID uuid.UUID) (*models.Loan, error)
	Update(ctx context.Context, loan *models.Loan) error
	ListActiveByUserID(ctx context.Context, userID uuid.UUID) ([]models.Loan, error)
}

// LoanTerms are the inputs of a new loan.
type LoanTerms struct {
	BorrowedAsset    string
	BorrowedAmount   decimal.Decimal
	CollateralAsset  string
	CollateralAmount decimal.Decimal
	InterestRate     decimal.Decimal
	LTVRatio         decimal.Decimal
}

// LoanService is the Loan Ledger. A loan is active until fully repaid, then paid for good.
type LoanService struct {
	tx       TxRunner
	accounts AccountLedger
	loans    LoanStore
	journal  Journal
	now      func() time.Time
}

func NewLoanService(tx TxRunner, accounts AccountLedger, loans LoanStore, journal Journal) *LoanService {
	return &LoanService{
		tx:       tx,
		accounts: accounts,
		loans:    loans,
		journal:  journal,
		now:      time.Now,
	}
}

// QuoteLoan returns the health factor and monthly payment a loan with these terms would start with.
func (s *LoanService) QuoteLoan(borrowed, collateral, interestRate decimal.Decimal) (*models.LoanQuote, error) {
	if err := validateAmount(borrowed); err != nil {
		return nil, err
	}
	if err := validateAmount(collateral); err != nil {
		return nil, err
	}
	if interestRate.IsNegative() {
		return nil, ErrInvalidAmount
	}

	return &models.LoanQuote{
		HealthFactor:  HealthFactor(collateral, borrowed),
		PaymentAmount: MonthlyPayment(borrowed, interestRate),
	}, nil
}

// CreateLoan locks the collateral out of the user's wallet and pays out the borrowed amount.
func (s *LoanService) CreateLoan(ctx context.Context, userID uuid.UUID, terms LoanTerms) (loan *models.Loan, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(models.TransactionBorrow, Kind(err), time.Since(start)) }()

	quote, err := s.QuoteLoan(terms.BorrowedAmount, terms.CollateralAmount, terms.InterestRate)
	if err != nil {
		return nil, err
	}
	if terms.BorrowedAsset == "" || terms.CollateralAsset == "" || terms.LTVRatio.IsNegative() {
		return nil, ErrInvalidAmount
	}

	var rec *models.TransactionRecord
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if _, err := s.accounts.Debit(ctx, userID, terms.CollateralAsset, terms.CollateralAmount); err != nil {
			return collateralErr(err)
		}

		if _, err := s.accounts.Credit(ctx, userID, terms.BorrowedAsset, terms.BorrowedAmount); err != nil {
			return err
		}

		code, err := s.loans.NextDisplayCode(ctx)
		if err != nil {
			return storageErr(err)
		}

		loan = &models.Loan{
			ID:               uuid.New(),
			LoanID:           code,
			UserID:           userID,
			BorrowedAsset:    terms.BorrowedAsset,
			BorrowedAmount:   terms.BorrowedAmount,
			CollateralAsset:  terms.CollateralAsset,
			CollateralAmount: terms.CollateralAmount,
			InterestRate:     terms.InterestRate,
			LTVRatio:         terms.LTVRatio,
			HealthFactor:     quote.HealthFactor,
			NextPaymentDue:   s.now().AddDate(0, 1, 0),
			PaymentAmount:    quote.PaymentAmount,
			Status:           models.LoanStatusActive,
		}
		if err := s.loans.Create(ctx, loan); err != nil {
			return storageErr(err)
		}

		rec, err = s.journal.Record(ctx, userID, models.TransactionBorrow, terms.BorrowedAsset, terms.BorrowedAmount, loan.ID)
		return err
	})
	if err != nil {
		logger.Log.Warnw("create loan failed", "userID", userID, "borrowedAsset", terms.BorrowedAsset, "error", err)
		return nil, err
	}

	s.journal.Publish(ctx, rec)
	return loan, nil
}

// MakePayment repays amount of the borrowed asset. Once nothing is owed the
// collateral goes back to the user's wallet and the loan becomes paid.
// Paying more than is owed debits the full amount.
func (s *LoanService) MakePayment(ctx context.Context, userID, loanID uuid.UUID, amount decimal.Decimal) (loan *models.Loan, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(models.TransactionRepay, Kind(err), time.Since(start)) }()

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var rec *models.TransactionRecord
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		current, err := s.activeLoanForUpdate(ctx, userID, loanID)
		if err != nil {
			return err
		}
		loan = current

		if _, err := s.accounts.Debit(ctx, userID, loan.BorrowedAsset, amount); err != nil {
			return err
		}

		remaining := loan.BorrowedAmount.Sub(amount)
		if !remaining.IsPositive() {
			if _, err := s.accounts.Credit(ctx, userID, loan.CollateralAsset, loan.CollateralAmount); err != nil {
				return err
			}
			loan.BorrowedAmount = decimal.Zero
			loan.Status = models.LoanStatusPaid
		} else {
			loan.BorrowedAmount = remaining
			loan.HealthFactor = RepaymentHealthFactor(loan.CollateralAmount, remaining)
		}

		if err := s.loans.Update(ctx, loan); err != nil {
			return storageErr(err)
		}

		rec, err = s.journal.Record(ctx, userID, models.TransactionRepay, loan.BorrowedAsset, amount, loan.ID)
		return err
	})
	if err != nil {
		logger.Log.Warnw("loan payment failed", "userID", userID, "loanID", loanID, "amount", amount, "error", err)
		return nil, err
	}

	s.journal.Publish(ctx, rec)
	return loan, nil
}

// AddCollateral moves more of the collateral asset from the user's wallet into the loan.
func (s *LoanService) AddCollateral(ctx context.Context, userID, loanID uuid.UUID, amount decimal.Decimal) (loan *models.Loan, err error) {
	start := time.Now()
	defer func() { metrics.RecordOperation(models.TransactionAddCollateral, Kind(err), time.Since(start)) }()

	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	var rec *models.TransactionRecord
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		current, err := s.activeLoanForUpdate(ctx, userID, loanID)
		if err != nil {
			return err
		}
		loan = current

		if _, err := s.accounts.Debit(ctx, userID, loan.CollateralAsset, amount); err != nil {
			return collateralErr(err)
		}

		loan.CollateralAmount = loan.CollateralAmount.Add(amount)
		loan.HealthFactor = HealthFactor(loan.CollateralAmount, loan.BorrowedAmount)

		if err := s.loans.Update(ctx, loan); err != nil {
			return storageErr(err)
		}

		rec, err = s.journal.Record(ctx, userID, models.TransactionAddCollateral, loan.CollateralAsset, amount, loan.ID)
		return err
	})
	if err != nil {
		logger.Log.Warnw("add collateral failed", "userID", userID, "loanID", loanID, "amount", amount, "error", err)
		return nil, err
	}

	s.journal.Publish(ctx, rec)
	return loan, nil
}

// GetLoan returns one of the user's loans in any state.
func (s *LoanService) GetLoan(ctx context.Context, userID, loanID uuid.UUID) (*models.Loan, error) {
	loan, err := s.loans.GetByID(ctx, loanID)
	if err != nil {
		return nil, notFoundOr(err, ErrNotFound)
	}
	if loan.UserID != userID {
		return nil, ErrNotFound
	}
	return loan, nil
}

// ListActiveLoans returns the user's active loans, newest first.
func (s *LoanService) ListActiveLoans(ctx context.Context, userID uuid.UUID) ([]models.Loan, error) {
	loans, err := s.loans.ListActiveByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list loans", "userID", userID, "error", err)
		return nil, storageErr(err)
	}
	return loans, nil
}

func (s *LoanService) activeLoanForUpdate(ctx context.Context, userID, loanID uuid.UUID) (*models.Loan, error) {
	loan, err := s.loans.GetForUpdate(ctx, loanID)
	if err != nil {
		return nil, notFoundOr(err, ErrNotFound)
	}
	if loan.UserID != userID {
		return nil, ErrNotFound
	}
	if loan.IsPaid() {
		return nil, ErrLoanPaid
	}
	return loan, nil
}

// collateralErr reports a short collateral wallet as ErrInsufficientCollateral.
func collateralErr(err error) error {
	if errors.Is(err, ErrInsufficientBalance) {
		return ErrInsufficientCollateral
	}
	return err
}
