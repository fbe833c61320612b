package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/sbilibin2017/gw-lending-ledger/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// termsEq matches LoanTerms field by field with decimal value equality.
type termsEq struct {
	want services.LoanTerms
}

func (m termsEq) Matches(x interface{}) bool {
	got, ok := x.(services.LoanTerms)
	return ok &&
		got.BorrowedAsset == m.want.BorrowedAsset &&
		got.BorrowedAmount.Equal(m.want.BorrowedAmount) &&
		got.CollateralAsset == m.want.CollateralAsset &&
		got.CollateralAmount.Equal(m.want.CollateralAmount) &&
		got.InterestRate.Equal(m.want.InterestRate) &&
		got.LTVRatio.Equal(m.want.LTVRatio)
}

func (m termsEq) String() string {
	return "matches loan terms"
}

func TestCreateLoanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	body := `{"borrowed_asset":"USDT","borrowed_amount":"1000","collateral_asset":"ETH","collateral_amount":"1","interest_rate":"9.2","ltv_ratio":"65"}`
	terms := services.LoanTerms{
		BorrowedAsset:    models.USDT,
		BorrowedAmount:   dec("1000"),
		CollateralAsset:  models.ETH,
		CollateralAmount: dec("1"),
		InterestRate:     dec("9.2"),
		LTVRatio:         dec("65"),
	}

	tests := []struct {
		name           string
		body           string
		setup          func(m *MockLoanCreator)
		expectedStatus int
		expectedKind   string
	}{
		{
			name: "success",
			body: body,
			setup: func(m *MockLoanCreator) {
				m.EXPECT().CreateLoan(gomock.Any(), userID, termsEq{terms}).
					Return(&models.Loan{ID: uuid.New(), LoanID: "LOAN-000001", UserID: userID, Status: models.LoanStatusActive}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "short collateral",
			body: body,
			setup: func(m *MockLoanCreator) {
				m.EXPECT().CreateLoan(gomock.Any(), userID, termsEq{terms}).
					Return(nil, services.ErrInsufficientCollateral)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedKind:   "insufficient_collateral",
		},
		{
			name: "invalid amount",
			body: body,
			setup: func(m *MockLoanCreator) {
				m.EXPECT().CreateLoan(gomock.Any(), userID, gomock.Any()).
					Return(nil, services.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   "invalid_amount",
		},
		{
			name:           "amount is not a number",
			body:           `{"borrowed_amount":"lots"}`,
			setup:          func(m *MockLoanCreator) {},
			expectedStatus: http.StatusBadRequest,
			expectedKind:   kindBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockLoanCreator(ctrl)
			tt.setup(m)

			rr := serve(t, http.MethodPost, "/loans", "/loans", tt.body, NewCreateLoanHandler(m), userID)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedKind != "" {
				assert.Equal(t, tt.expectedKind, decodeError(t, rr).Kind)
				return
			}

			var resp models.LoanResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, "LOAN-000001", resp.Loan.LoanID)
		})
	}
}

func TestQuoteLoanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m := NewMockLoanQuoter(ctrl)
	m.EXPECT().QuoteLoan(eqDec("1000"), eqDec("2000"), eqDec("12")).
		Return(&models.LoanQuote{HealthFactor: dec("1.5"), PaymentAmount: dec("10")}, nil)
	m.EXPECT().QuoteLoan(eqDec("0"), eqDec("2000"), eqDec("12")).
		Return(nil, services.ErrInvalidAmount)

	rr := serve(t, http.MethodPost, "/loans/quote", "/loans/quote",
		`{"borrowed_amount":1000,"collateral_amount":2000,"interest_rate":12}`, NewQuoteLoanHandler(m), userID)
	require.Equal(t, http.StatusOK, rr.Code)

	var quote models.LoanQuote
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&quote))
	assert.True(t, quote.HealthFactor.Equal(dec("1.5")))
	assert.True(t, quote.PaymentAmount.Equal(dec("10")))

	rr = serve(t, http.MethodPost, "/loans/quote", "/loans/quote",
		`{"borrowed_amount":0,"collateral_amount":2000,"interest_rate":12}`, NewQuoteLoanHandler(m), userID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestLoanPaymentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	loanID := uuid.New()
	target := "/loans/" + loanID.String() + "/payments"

	tests := []struct {
		name            string
		body            string
		setup           func(m *MockLoanPayer)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "partial payment",
			body: `{"amount":"500"}`,
			setup: func(m *MockLoanPayer) {
				m.EXPECT().MakePayment(gomock.Any(), userID, loanID, eqDec("500")).
					Return(&models.Loan{ID: loanID, BorrowedAmount: dec("500"), Status: models.LoanStatusActive}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Payment accepted",
		},
		{
			name: "final payment",
			body: `{"amount":"500"}`,
			setup: func(m *MockLoanPayer) {
				m.EXPECT().MakePayment(gomock.Any(), userID, loanID, eqDec("500")).
					Return(&models.Loan{ID: loanID, Status: models.LoanStatusPaid}, nil)
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Loan fully repaid",
		},
		{
			name: "loan already paid",
			body: `{"amount":"1"}`,
			setup: func(m *MockLoanPayer) {
				m.EXPECT().MakePayment(gomock.Any(), userID, loanID, eqDec("1")).
					Return(nil, services.ErrLoanPaid)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "insufficient balance",
			body: `{"amount":"1"}`,
			setup: func(m *MockLoanPayer) {
				m.EXPECT().MakePayment(gomock.Any(), userID, loanID, eqDec("1")).
					Return(nil, services.ErrInsufficientBalance)
			},
			expectedStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockLoanPayer(ctrl)
			tt.setup(m)

			rr := serve(t, http.MethodPost, "/loans/{loanID}/payments", target, tt.body, NewLoanPaymentHandler(m), userID)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedMessage == "" {
				return
			}

			var resp models.LoanResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tt.expectedMessage, resp.Message)
		})
	}
}

func TestAddCollateralHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	loanID := uuid.New()

	m := NewMockCollateralAdder(ctrl)
	m.EXPECT().AddCollateral(gomock.Any(), userID, loanID, eqDec("0.5")).
		Return(&models.Loan{ID: loanID, CollateralAmount: dec("1.5"), HealthFactor: dec("0.84375")}, nil)

	rr := serve(t, http.MethodPost, "/loans/{loanID}/collateral", "/loans/"+loanID.String()+"/collateral",
		`{"amount":"0.5"}`, NewAddCollateralHandler(m), userID)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.LoanResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Collateral added", resp.Message)
	assert.True(t, resp.Loan.CollateralAmount.Equal(dec("1.5")))

	rr = serve(t, http.MethodPost, "/loans/{loanID}/collateral", "/loans/nope/collateral",
		`{"amount":"0.5"}`, NewAddCollateralHandler(m), userID)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetLoanHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	loanID := uuid.New()
	otherID := uuid.New()

	m := NewMockLoanGetter(ctrl)
	m.EXPECT().GetLoan(gomock.Any(), userID, loanID).Return(&models.Loan{ID: loanID, UserID: userID}, nil)
	m.EXPECT().GetLoan(gomock.Any(), userID, otherID).Return(nil, services.ErrNotFound)

	rr := serve(t, http.MethodGet, "/loans/{loanID}", "/loans/"+loanID.String(), "", NewGetLoanHandler(m), userID)
	require.Equal(t, http.StatusOK, rr.Code)

	var loan models.Loan
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&loan))
	assert.Equal(t, loanID, loan.ID)

	rr = serve(t, http.MethodGet, "/loans/{loanID}", "/loans/"+otherID.String(), "", NewGetLoanHandler(m), userID)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestListLoansHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m := NewMockLoanLister(ctrl)
	m.EXPECT().ListActiveLoans(gomock.Any(), userID).Return(nil, nil)

	rr := serve(t, http.MethodGet, "/loans", "/loans", "", NewListLoansHandler(m), userID)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"loans":[]}`, rr.Body.String())
}
