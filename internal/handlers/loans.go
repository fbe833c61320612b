package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/sbilibin2017/gw-lending-ledger/internal/services"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=loans.go -destination=loans_mock.go -package=handlers

// LoanLister returns a user's active loans.
type LoanLister interface {
	ListActiveLoans(ctx context.Context, userID uuid.UUID) ([]models.Loan, error)
}

// LoanGetter returns one loan owned by the user.
type LoanGetter interface {
	GetLoan(ctx context.Context, userID, loanID uuid.UUID) (*models.Loan, error)
}

// LoanCreator opens collateralised loans.
type LoanCreator interface {
	CreateLoan(ctx context.Context, userID uuid.UUID, terms services.LoanTerms) (*models.Loan, error)
}

// LoanQuoter previews loan terms without touching any balance.
type LoanQuoter interface {
	QuoteLoan(borrowed, collateral, interestRate decimal.Decimal) (*models.LoanQuote, error)
}

// LoanPayer repays loans.
type LoanPayer interface {
	MakePayment(ctx context.Context, userID, loanID uuid.UUID, amount decimal.Decimal) (*models.Loan, error)
}

// CollateralAdder tops up loan collateral.
type CollateralAdder interface {
	AddCollateral(ctx context.Context, userID, loanID uuid.UUID, amount decimal.Decimal) (*models.Loan, error)
}

// LoansResponse lists the caller's active loans
// swagger:model LoansResponse
type LoansResponse struct {
	Loans []models.Loan `json:"loans"`
}

// NewListLoansHandler returns an HTTP handler listing the caller's active loans.
// @Summary List active loans
// @Tags loans
// @Produce json
// @Success 200 {object} handlers.LoansResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /loans [get]
// @Security BearerAuth
func NewListLoansHandler(svc LoanLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		loans, err := svc.ListActiveLoans(r.Context(), userID)
		if err != nil {
			writeError(w, "list_loans", err)
			return
		}
		if loans == nil {
			loans = []models.Loan{}
		}

		writeJSON(w, http.StatusOK, LoansResponse{Loans: loans})
	}
}

// NewGetLoanHandler returns an HTTP handler fetching one of the caller's loans.
// @Summary Get loan
// @Tags loans
// @Produce json
// @Param loanID path string true "Loan ID"
// @Success 200 {object} models.Loan
// @Failure 404 {object} models.ErrorResponse "Loan not found"
// @Router /loans/{loanID} [get]
// @Security BearerAuth
func NewGetLoanHandler(svc LoanGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		loanID, ok := pathID(w, r, "loanID")
		if !ok {
			return
		}

		loan, err := svc.GetLoan(r.Context(), userID, loanID)
		if err != nil {
			writeError(w, "get_loan", err)
			return
		}

		writeJSON(w, http.StatusOK, loan)
	}
}

// NewCreateLoanHandler returns an HTTP handler opening a collateralised loan.
// @Summary Create loan
// @Description Locks the collateral out of the wallet and credits the borrowed amount.
// @Tags loans
// @Accept json
// @Produce json
// @Param request body models.CreateLoanRequest true "Loan terms"
// @Success 201 {object} models.LoanResponse "Loan created successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Failure 422 {object} models.ErrorResponse "Insufficient collateral"
// @Router /loans [post]
// @Security BearerAuth
func NewCreateLoanHandler(svc LoanCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req models.CreateLoanRequest
		if !decodeBody(w, r, &req) {
			return
		}

		loan, err := svc.CreateLoan(r.Context(), userID, services.LoanTerms{
			BorrowedAsset:    req.BorrowedAsset,
			BorrowedAmount:   req.BorrowedAmount,
			CollateralAsset:  req.CollateralAsset,
			CollateralAmount: req.CollateralAmount,
			InterestRate:     req.InterestRate,
			LTVRatio:         req.LTVRatio,
		})
		if err != nil {
			writeError(w, "create_loan", err)
			return
		}

		writeJSON(w, http.StatusCreated, models.LoanResponse{Message: "Loan created successfully", Loan: *loan})
	}
}

// NewQuoteLoanHandler returns an HTTP handler previewing a loan's health factor and payment.
// @Summary Quote loan
// @Tags loans
// @Accept json
// @Produce json
// @Param request body models.LoanQuoteRequest true "Loan terms"
// @Success 200 {object} models.LoanQuote
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Router /loans/quote [post]
// @Security BearerAuth
func NewQuoteLoanHandler(svc LoanQuoter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r); !ok {
			return
		}

		var req models.LoanQuoteRequest
		if !decodeBody(w, r, &req) {
			return
		}

		quote, err := svc.QuoteLoan(req.BorrowedAmount, req.CollateralAmount, req.InterestRate)
		if err != nil {
			writeError(w, "quote_loan", err)
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}

// NewLoanPaymentHandler returns an HTTP handler repaying part or all of a loan.
// @Summary Repay loan
// @Description Debits the wallet. Paying the whole balance closes the loan and releases the collateral.
// @Tags loans
// @Accept json
// @Produce json
// @Param loanID path string true "Loan ID"
// @Param request body models.LoanPaymentRequest true "Payment"
// @Success 200 {object} models.LoanResponse "Payment accepted"
// @Failure 404 {object} models.ErrorResponse "Loan not found"
// @Failure 409 {object} models.ErrorResponse "Loan already paid"
// @Failure 422 {object} models.ErrorResponse "Insufficient balance"
// @Router /loans/{loanID}/payments [post]
// @Security BearerAuth
func NewLoanPaymentHandler(svc LoanPayer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		loanID, ok := pathID(w, r, "loanID")
		if !ok {
			return
		}

		var req models.LoanPaymentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		loan, err := svc.MakePayment(r.Context(), userID, loanID, req.Amount)
		if err != nil {
			writeError(w, "make_payment", err)
			return
		}

		msg := "Payment accepted"
		if loan.IsPaid() {
			msg = "Loan fully repaid"
		}
		writeJSON(w, http.StatusOK, models.LoanResponse{Message: msg, Loan: *loan})
	}
}

// NewAddCollateralHandler returns an HTTP handler topping up a loan's collateral.
// @Summary Add collateral
// @Tags loans
// @Accept json
// @Produce json
// @Param loanID path string true "Loan ID"
// @Param request body models.AddCollateralRequest true "Collateral"
// @Success 200 {object} models.LoanResponse "Collateral added"
// @Failure 404 {object} models.ErrorResponse "Loan not found"
// @Failure 409 {object} models.ErrorResponse "Loan already paid"
// @Failure 422 {object} models.ErrorResponse "Insufficient balance"
// @Router /loans/{loanID}/collateral [post]
// @Security BearerAuth
func NewAddCollateralHandler(svc CollateralAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		loanID, ok := pathID(w, r, "loanID")
		if !ok {
			return
		}

		var req models.AddCollateralRequest
		if !decodeBody(w, r, &req) {
			return
		}

		loan, err := svc.AddCollateral(r.Context(), userID, loanID, req.Amount)
		if err != nil {
			writeError(w, "add_collateral", err)
			return
		}

		writeJSON(w, http.StatusOK, models.LoanResponse{Message: "Collateral added", Loan: *loan})
	}
}
