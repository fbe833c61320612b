package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
)

//go:generate mockgen -source=portfolio.go -destination=portfolio_mock.go -package=handlers

// PortfolioValuer values a user's holdings in USD.
type PortfolioValuer interface {
	Value(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error)
}

// NewPortfolioHandler returns an HTTP handler with the caller's portfolio valued in USD.
// @Summary Portfolio value
// @Tags portfolio
// @Produce json
// @Success 200 {object} models.Portfolio
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /portfolio [get]
// @Security BearerAuth
func NewPortfolioHandler(svc PortfolioValuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		portfolio, err := svc.Value(r.Context(), userID)
		if err != nil {
			writeError(w, "portfolio", err)
			return
		}

		writeJSON(w, http.StatusOK, portfolio)
	}
}
