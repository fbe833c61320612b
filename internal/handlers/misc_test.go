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

func TestListWalletsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m := NewMockWalletLister(ctrl)
	m.EXPECT().ListWallets(gomock.Any(), userID).Return([]models.Wallet{
		{UserID: userID, Token: models.ETH, Balance: dec("2")},
		{UserID: userID, Token: models.USDT, Balance: dec("1000")},
	}, nil)

	rr := serve(t, http.MethodGet, "/wallets", "/wallets", "", NewListWalletsHandler(m), userID)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp WalletsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Wallets, 2)
	assert.True(t, resp.Wallets[1].Balance.Equal(dec("1000")))

	rr = serve(t, http.MethodGet, "/wallets", "/wallets", "", NewListWalletsHandler(m), uuid.Nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestListTransactionsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name           string
		target         string
		setup          func(m *MockTransactionLister)
		expectedStatus int
	}{
		{
			name:   "defaults",
			target: "/transactions",
			setup: func(m *MockTransactionLister) {
				m.EXPECT().ListForUser(gomock.Any(), userID, 0, 0).
					Return([]models.TransactionRecord{{UserID: userID, TransactionType: models.TransactionLend}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "explicit paging",
			target: "/transactions?limit=5&offset=10",
			setup: func(m *MockTransactionLister) {
				m.EXPECT().ListForUser(gomock.Any(), userID, 5, 10).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad limit",
			target:         "/transactions?limit=ten",
			setup:          func(m *MockTransactionLister) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative offset",
			target:         "/transactions?offset=-1",
			setup:          func(m *MockTransactionLister) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "storage failure",
			target: "/transactions",
			setup: func(m *MockTransactionLister) {
				m.EXPECT().ListForUser(gomock.Any(), userID, 0, 0).Return(nil, services.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockTransactionLister(ctrl)
			tt.setup(m)

			rr := serve(t, http.MethodGet, "/transactions", tt.target, "", NewListTransactionsHandler(m), userID)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var resp TransactionsResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.NotNil(t, resp.Transactions)
			}
		})
	}
}

func TestPortfolioHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	m := NewMockPortfolioValuer(ctrl)
	m.EXPECT().Value(gomock.Any(), userID).Return(&models.Portfolio{
		WalletsUSD:  dec("2250"),
		NetWorthUSD: dec("2250"),
	}, nil)

	rr := serve(t, http.MethodGet, "/portfolio", "/portfolio", "", NewPortfolioHandler(m), userID)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.Portfolio
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.NetWorthUSD.Equal(dec("2250")))
}
