package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
)

//go:generate mockgen -source=wallets.go -destination=wallets_mock.go -package=handlers

// WalletLister returns a user's wallets.
type WalletLister interface {
	ListWallets(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error)
}

// WalletsResponse lists the caller's wallets
// swagger:model WalletsResponse
type WalletsResponse struct {
	Wallets []models.Wallet `json:"wallets"`
}

// NewListWalletsHandler returns an HTTP handler listing the caller's token balances.
// @Summary List wallets
// @Tags wallets
// @Produce json
// @Success 200 {object} handlers.WalletsResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Router /wallets [get]
// @Security BearerAuth
func NewListWalletsHandler(svc WalletLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		wallets, err := svc.ListWallets(r.Context(), userID)
		if err != nil {
			writeError(w, "list_wallets", err)
			return
		}
		if wallets == nil {
			wallets = []models.Wallet{}
		}

		writeJSON(w, http.StatusOK, WalletsResponse{Wallets: wallets})
	}
}
