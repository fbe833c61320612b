package models

import "github.com/shopspring/decimal"

// AssetValue is the USD valuation of one token holding.
type AssetValue struct {
	Token    string          `json:"token"`
	Amount   decimal.Decimal `json:"amount"`
	PriceUSD decimal.Decimal `json:"price_usd"`
	ValueUSD decimal.Decimal `json:"value_usd"`
}

// Portfolio aggregates a user's wallets, supplied positions and loans in USD.
type Portfolio struct {
	Wallets       []AssetValue    `json:"wallets"`
	WalletsUSD    decimal.Decimal `json:"wallets_usd"`
	SuppliedUSD   decimal.Decimal `json:"supplied_usd"`
	CollateralUSD decimal.Decimal `json:"collateral_usd"`
	BorrowedUSD   decimal.Decimal `json:"borrowed_usd"`
	NetWorthUSD   decimal.Decimal `json:"net_worth_usd"`
}
