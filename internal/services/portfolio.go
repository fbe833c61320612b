package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/sbilibin2017/gw-lending-ledger/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=portfolio.go -destination=portfolio_mock.go -package=services

// WalletLister lists a user's wallets.
type WalletLister interface {
	ListWallets(ctx context.Context, userID uuid.UUID) ([]models.Wallet, error)
}

// PositionLister lists a user's lending positions.
type PositionLister interface {
	ListPositions(ctx context.Context, userID uuid.UUID) ([]models.PositionView, error)
}

// LoanLister lists a user's active loans.
type LoanLister interface {
	ListActiveLoans(ctx context.Context, userID uuid.UUID) ([]models.Loan, error)
}

// PriceReader fetches the USD price of a token from an external oracle.
type PriceReader interface {
	GetPrice(ctx context.Context, token string) (decimal.Decimal, error)
}

// PriceCache caches USD prices.
type PriceCache interface {
	GetPrice(ctx context.Context, token string) (decimal.Decimal, error)
	SetPrice(ctx context.Context, token string, price decimal.Decimal) error
}

// fallbackPrices are used when neither the cache nor the oracle can price a token.
var fallbackPrices = map[string]decimal.Decimal{
	models.USDT: decimal.NewFromInt(1),
	models.USDC: decimal.NewFromInt(1),
	models.ETH:  decimal.NewFromInt(2250),
	models.BTC:  decimal.NewFromInt(42500),
	models.ATOM: decimal.RequireFromString("8.5"),
}

// PortfolioService values a user's holdings in USD.
type PortfolioService struct {
	wallets   WalletLister
	positions PositionLister
	loans     LoanLister
	oracle    PriceReader
	cache     PriceCache
}

// NewPortfolioService creates a PortfolioService. oracle and cache may be nil.
func NewPortfolioService(
	wallets WalletLister,
	positions PositionLister,
	loans LoanLister,
	oracle PriceReader,
	cache PriceCache,
) *PortfolioService {
	return &PortfolioService{
		wallets:   wallets,
		positions: positions,
		loans:     loans,
		oracle:    oracle,
		cache:     cache,
	}
}

// Value returns wallet, supplied, collateral and borrowed totals in USD.
// Net worth is wallets + supplied + collateral - borrowed.
func (s *PortfolioService) Value(ctx context.Context, userID uuid.UUID) (*models.Portfolio, error) {
	wallets, err := s.wallets.ListWallets(ctx, userID)
	if err != nil {
		return nil, err
	}
	positions, err := s.positions.ListPositions(ctx, userID)
	if err != nil {
		return nil, err
	}
	loans, err := s.loans.ListActiveLoans(ctx, userID)
	if err != nil {
		return nil, err
	}

	prices := make(map[string]decimal.Decimal)
	price := func(token string) decimal.Decimal {
		p, ok := prices[token]
		if !ok {
			p = s.Price(ctx, token)
			prices[token] = p
		}
		return p
	}

	portfolio := &models.Portfolio{Wallets: make([]models.AssetValue, 0, len(wallets))}
	for _, w := range wallets {
		p := price(w.Token)
		value := w.Balance.Mul(p)
		portfolio.Wallets = append(portfolio.Wallets, models.AssetValue{
			Token:    w.Token,
			Amount:   w.Balance,
			PriceUSD: p,
			ValueUSD: value,
		})
		portfolio.WalletsUSD = portfolio.WalletsUSD.Add(value)
	}
	for _, pos := range positions {
		portfolio.SuppliedUSD = portfolio.SuppliedUSD.Add(pos.DepositedAmount.Mul(price(pos.Token)))
	}
	for _, l := range loans {
		portfolio.CollateralUSD = portfolio.CollateralUSD.Add(l.CollateralAmount.Mul(price(l.CollateralAsset)))
		portfolio.BorrowedUSD = portfolio.BorrowedUSD.Add(l.BorrowedAmount.Mul(price(l.BorrowedAsset)))
	}

	portfolio.NetWorthUSD = portfolio.WalletsUSD.
		Add(portfolio.SuppliedUSD).
		Add(portfolio.CollateralUSD).
		Sub(portfolio.BorrowedUSD)

	return portfolio, nil
}

// Price resolves the USD price of token from the cache, then the oracle, then
// the fallback table. Unknown tokens are priced at zero.
func (s *PortfolioService) Price(ctx context.Context, token string) decimal.Decimal {
	if s.cache != nil {
		if p, err := s.cache.GetPrice(ctx, token); err == nil {
			return p
		}
	}

	if s.oracle != nil {
		p, err := s.oracle.GetPrice(ctx, token)
		if err == nil {
			if s.cache != nil {
				if err := s.cache.SetPrice(ctx, token, p); err != nil {
					logger.Log.Errorw("failed to cache price", "token", token, "price", p, "error", err)
				}
			}
			return p
		}
		logger.Log.Warnw("price oracle unavailable, using fallback", "token", token, "error", err)
	}

	if p, ok := fallbackPrices[token]; ok {
		return p
	}
	logger.Log.Warnw("no price for token", "token", token)
	return decimal.Zero
}
