package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/sbilibin2017/gw-lending-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/sbilibin2017/gw-lending-ledger/internal/services"
)

// Kinds of request errors that never reach the ledger.
const (
	kindBadRequest   = "bad_request"
	kindUnauthorized = "unauthorized"
)

var errUnauthorized = errors.New("unauthorized")

// statusByKind maps ledger error kinds to HTTP status codes.
var statusByKind = map[string]int{
	"invalid_amount":          http.StatusBadRequest,
	"not_found":               http.StatusNotFound,
	"invalid_state":           http.StatusConflict,
	"insufficient_balance":    http.StatusUnprocessableEntity,
	"insufficient_collateral": http.StatusUnprocessableEntity,
	"insufficient_position":   http.StatusUnprocessableEntity,
	"insufficient_liquidity":  http.StatusUnprocessableEntity,
	"storage_unavailable":     http.StatusServiceUnavailable,
}

// messageByKind holds client-facing messages; storage details stay in the logs.
var messageByKind = map[string]string{
	"invalid_amount":          "Invalid amount",
	"not_found":               "Not found",
	"invalid_state":           "Operation not allowed in current state",
	"insufficient_balance":    "Insufficient balance",
	"insufficient_collateral": "Insufficient collateral",
	"insufficient_position":   "Insufficient position",
	"insufficient_liquidity":  "Insufficient liquidity",
	"storage_unavailable":     "Service temporarily unavailable",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

func writeRequestError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, models.ErrorResponse{Error: msg, Kind: kind})
}

// writeError translates a ledger error into its HTTP status and body.
func writeError(w http.ResponseWriter, op string, err error) {
	kind := services.Kind(err)
	status, ok := statusByKind[kind]
	if !ok {
		status = http.StatusInternalServerError
	}

	if status >= http.StatusInternalServerError {
		logger.Log.Errorw("ledger operation failed", "operation", op, "kind", kind, "error", err)
	} else {
		logger.Log.Warnw("ledger operation rejected", "operation", op, "kind", kind, "error", err)
	}

	msg, ok := messageByKind[kind]
	if !ok {
		msg = "Internal server error"
	}
	writeRequestError(w, status, kind, msg)
}

// requireUser returns the authenticated user id or writes 401.
func requireUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middlewares.UserIDFromContext(r.Context())
	if !ok {
		logger.Log.Warnw("request without authenticated user", "uri", r.RequestURI, "error", errUnauthorized)
		writeRequestError(w, http.StatusUnauthorized, kindUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the uuid route parameter name or writes 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeRequestError(w, http.StatusBadRequest, kindBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// decodeBody decodes the JSON request body into v or writes 400.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		logger.Log.Warnw("failed to decode request body", "uri", r.RequestURI, "error", err)
		writeRequestError(w, http.StatusBadRequest, kindBadRequest, "Invalid request body")
		return false
	}
	return true
}

// queryInt reads a non-negative integer query parameter, returning def when absent.
func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}
