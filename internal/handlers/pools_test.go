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

func TestListPoolsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	pool := models.LendingPool{ID: uuid.New(), Token: models.USDT, APY: dec("8.5"), IsActive: true}

	tests := []struct {
		name           string
		userID         uuid.UUID
		setup          func(m *MockPoolLister)
		expectedStatus int
		expectedPools  int
	}{
		{
			name:   "success",
			userID: userID,
			setup: func(m *MockPoolLister) {
				m.EXPECT().ListActivePools(gomock.Any()).Return([]models.LendingPool{pool}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedPools:  1,
		},
		{
			name:   "empty list encodes as array",
			userID: userID,
			setup: func(m *MockPoolLister) {
				m.EXPECT().ListActivePools(gomock.Any()).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedPools:  0,
		},
		{
			name:           "unauthorized",
			userID:         uuid.Nil,
			setup:          func(m *MockPoolLister) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:   "storage failure",
			userID: userID,
			setup: func(m *MockPoolLister) {
				m.EXPECT().ListActivePools(gomock.Any()).Return(nil, services.ErrStorageUnavailable)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockPoolLister(ctrl)
			tt.setup(m)

			rr := serve(t, http.MethodGet, "/pools", "/pools", "", NewListPoolsHandler(m), tt.userID)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var body map[string][]models.LendingPool
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			pools, ok := body["pools"]
			require.True(t, ok)
			assert.NotNil(t, pools)
			assert.Len(t, pools, tt.expectedPools)
		})
	}
}

func TestEstimateEarningsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	poolID := uuid.New()

	tests := []struct {
		name           string
		target         string
		setup          func(m *MockEarningsEstimator)
		expectedStatus int
	}{
		{
			name:   "success",
			target: "/pools/" + poolID.String() + "/estimate?amount=1000",
			setup: func(m *MockEarningsEstimator) {
				m.EXPECT().EstimateMonthlyEarnings(gomock.Any(), poolID, eqDec("1000")).
					Return(&models.EarningsEstimateResponse{
						PoolID:          poolID,
						Token:           models.USDT,
						Amount:          dec("1000"),
						MonthlyEarnings: dec("7.083333333333333333"),
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "bad pool id",
			target:         "/pools/not-a-uuid/estimate?amount=1000",
			setup:          func(m *MockEarningsEstimator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing amount",
			target:         "/pools/" + poolID.String() + "/estimate",
			setup:          func(m *MockEarningsEstimator) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "pool not found",
			target: "/pools/" + poolID.String() + "/estimate?amount=5",
			setup: func(m *MockEarningsEstimator) {
				m.EXPECT().EstimateMonthlyEarnings(gomock.Any(), poolID, eqDec("5")).
					Return(nil, services.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "non-positive amount",
			target: "/pools/" + poolID.String() + "/estimate?amount=-5",
			setup: func(m *MockEarningsEstimator) {
				m.EXPECT().EstimateMonthlyEarnings(gomock.Any(), poolID, eqDec("-5")).
					Return(nil, services.ErrInvalidAmount)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMockEarningsEstimator(ctrl)
			tt.setup(m)

			rr := serve(t, http.MethodGet, "/pools/{poolID}/estimate", tt.target, "", NewEstimateEarningsHandler(m), userID)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			if tt.expectedStatus == http.StatusOK {
				var body models.EarningsEstimateResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
				assert.True(t, body.MonthlyEarnings.Equal(dec("7.083333333333333333")))
			}
		})
	}
}
