package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=pools.go -destination=pools_mock.go -package=handlers

// PoolLister returns the pools open for lending.
type PoolLister interface {
	ListActivePools(ctx context.Context) ([]models.LendingPool, error)
}

// EarningsEstimator projects the monthly yield of a deposit.
type EarningsEstimator interface {
	EstimateMonthlyEarnings(ctx context.Context, poolID uuid.UUID, amount decimal.Decimal) (*models.EarningsEstimateResponse, error)
}

// PoolsResponse lists active lending pools
// swagger:model PoolsResponse
type PoolsResponse struct {
	Pools []models.LendingPool `json:"pools"`
}

// NewListPoolsHandler returns an HTTP handler listing active lending pools.
// @Summary List lending pools
// @Description Returns every active pool with its APY and liquidity.
// @Tags pools
// @Produce json
// @Success 200 {object} handlers.PoolsResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 503 {object} models.ErrorResponse "Storage unavailable"
// @Router /pools [get]
// @Security BearerAuth
func NewListPoolsHandler(svc PoolLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r); !ok {
			return
		}

		pools, err := svc.ListActivePools(r.Context())
		if err != nil {
			writeError(w, "list_pools", err)
			return
		}
		if pools == nil {
			pools = []models.LendingPool{}
		}

		writeJSON(w, http.StatusOK, PoolsResponse{Pools: pools})
	}
}

// NewEstimateEarningsHandler returns an HTTP handler projecting monthly earnings for a deposit.
// @Summary Estimate monthly earnings
// @Tags pools
// @Produce json
// @Param poolID path string true "Pool ID"
// @Param amount query string true "Amount to supply"
// @Success 200 {object} models.EarningsEstimateResponse
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Failure 404 {object} models.ErrorResponse "Pool not found"
// @Router /pools/{poolID}/estimate [get]
// @Security BearerAuth
func NewEstimateEarningsHandler(svc EarningsEstimator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireUser(w, r); !ok {
			return
		}
		poolID, ok := pathID(w, r, "poolID")
		if !ok {
			return
		}

		amount, err := decimal.NewFromString(r.URL.Query().Get("amount"))
		if err != nil {
			writeRequestError(w, http.StatusBadRequest, kindBadRequest, "Invalid amount")
			return
		}

		estimate, err := svc.EstimateMonthlyEarnings(r.Context(), poolID, amount)
		if err != nil {
			writeError(w, "estimate_earnings", err)
			return
		}

		writeJSON(w, http.StatusOK, estimate)
	}
}
