package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/sbilibin2017/gw-lending-ledger/internal/services"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=positions.go -destination=positions_mock.go -package=handlers

// PositionLister returns a user's lending positions.
type PositionLister interface {
	ListPositions(ctx context.Context, userID uuid.UUID) ([]models.PositionView, error)
}

// Lender supplies wallet tokens to a pool.
type Lender interface {
	Lend(ctx context.Context, userID, poolID uuid.UUID, amount decimal.Decimal) (*services.LendResult, error)
}

// PositionWithdrawer returns supplied tokens to the wallet.
type PositionWithdrawer interface {
	Withdraw(ctx context.Context, userID, positionID uuid.UUID, amount decimal.Decimal) (*services.WithdrawResult, error)
}

// PositionsResponse lists the caller's lending positions
// swagger:model PositionsResponse
type PositionsResponse struct {
	Positions []models.PositionView `json:"positions"`
}

// NewListPositionsHandler returns an HTTP handler listing the caller's positions.
// @Summary List lending positions
// @Tags positions
// @Produce json
// @Success 200 {object} handlers.PositionsResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /positions [get]
// @Security BearerAuth
func NewListPositionsHandler(svc PositionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		positions, err := svc.ListPositions(r.Context(), userID)
		if err != nil {
			writeError(w, "list_positions", err)
			return
		}
		if positions == nil {
			positions = []models.PositionView{}
		}

		writeJSON(w, http.StatusOK, PositionsResponse{Positions: positions})
	}
}

// NewLendHandler returns an HTTP handler moving wallet tokens into a lending pool.
// @Summary Lend to a pool
// @Description Debits the wallet, grows the position and the pool liquidity in one step.
// @Tags positions
// @Accept json
// @Produce json
// @Param request body models.LendRequest true "Lend Request"
// @Success 200 {object} models.LendResponse "Lending successful"
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Failure 404 {object} models.ErrorResponse "Pool not found"
// @Failure 409 {object} models.ErrorResponse "Pool is not active"
// @Failure 422 {object} models.ErrorResponse "Insufficient balance"
// @Router /positions [post]
// @Security BearerAuth
func NewLendHandler(svc Lender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		var req models.LendRequest
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := svc.Lend(r.Context(), userID, req.PoolID, req.Amount)
		if err != nil {
			writeError(w, "lend", err)
			return
		}

		writeJSON(w, http.StatusOK, models.LendResponse{
			Message:       "Lending successful",
			Position:      *res.Position,
			Pool:          *res.Pool,
			WalletBalance: res.WalletBalance,
		})
	}
}

// NewWithdrawPositionHandler returns an HTTP handler withdrawing from a lending position.
// @Summary Withdraw from a position
// @Description Shrinks the position and the pool liquidity and credits the wallet. A full withdrawal closes the position.
// @Tags positions
// @Accept json
// @Produce json
// @Param positionID path string true "Position ID"
// @Param request body models.PositionWithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.PositionWithdrawResponse "Withdrawal successful"
// @Failure 400 {object} models.ErrorResponse "Invalid amount"
// @Failure 404 {object} models.ErrorResponse "Position not found"
// @Failure 422 {object} models.ErrorResponse "Insufficient position or liquidity"
// @Router /positions/{positionID}/withdraw [post]
// @Security BearerAuth
func NewWithdrawPositionHandler(svc PositionWithdrawer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}
		positionID, ok := pathID(w, r, "positionID")
		if !ok {
			return
		}

		var req models.PositionWithdrawRequest
		if !decodeBody(w, r, &req) {
			return
		}

		res, err := svc.Withdraw(r.Context(), userID, positionID, req.Amount)
		if err != nil {
			writeError(w, "withdraw", err)
			return
		}

		writeJSON(w, http.StatusOK, models.PositionWithdrawResponse{
			Message:       "Withdrawal successful",
			Position:      res.Position,
			Pool:          *res.Pool,
			WalletBalance: res.WalletBalance,
		})
	}
}
