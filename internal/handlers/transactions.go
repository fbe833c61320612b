package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
)

//go:generate mockgen -source=transactions.go -destination=transactions_mock.go -package=handlers

// TransactionLister pages through a user's journal.
type TransactionLister interface {
	ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.TransactionRecord, error)
}

// TransactionsResponse is one page of the caller's journal, newest first
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Transactions []models.TransactionRecord `json:"transactions"`
}

// NewListTransactionsHandler returns an HTTP handler paging through the caller's transactions.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param limit query int false "Page size, default 20, max 100"
// @Param offset query int false "Records to skip"
// @Success 200 {object} handlers.TransactionsResponse
// @Failure 400 {object} models.ErrorResponse "Invalid paging"
// @Router /transactions [get]
// @Security BearerAuth
func NewListTransactionsHandler(svc TransactionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := requireUser(w, r)
		if !ok {
			return
		}

		limit, err := queryInt(r, "limit", 0)
		if err != nil {
			writeRequestError(w, http.StatusBadRequest, kindBadRequest, "Invalid limit")
			return
		}
		offset, err := queryInt(r, "offset", 0)
		if err != nil {
			writeRequestError(w, http.StatusBadRequest, kindBadRequest, "Invalid offset")
			return
		}

		txs, err := svc.ListForUser(r.Context(), userID, limit, offset)
		if err != nil {
			writeError(w, "list_transactions", err)
			return
		}
		if txs == nil {
			txs = []models.TransactionRecord{}
		}

		writeJSON(w, http.StatusOK, TransactionsResponse{Transactions: txs})
	}
}
