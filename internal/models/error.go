package models

// ErrorResponse represents an error response for any ledger endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: Insufficient balance
	Error string `json:"error"`

	// Stable error kind
	// example: insufficient_balance
	Kind string `json:"kind,omitempty"`
}
