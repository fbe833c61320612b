package facades

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"
)

// QuoteCurrency is the currency every token is priced in.
const QuoteCurrency = "USD"

// ErrNoPrice is returned when the oracle answers with a non-positive rate.
var ErrNoPrice = errors.New("price oracle returned no price")

// PriceOracleGRPCFacade prices tokens through the exchange gRPC service.
type PriceOracleGRPCFacade struct {
	client pb.ExchangeServiceClient
}

func NewPriceOracleGRPCFacade(client pb.ExchangeServiceClient) *PriceOracleGRPCFacade {
	return &PriceOracleGRPCFacade{client: client}
}

// GetPrice returns the USD price of one unit of token.
func (f *PriceOracleGRPCFacade) GetPrice(ctx context.Context, token string) (decimal.Decimal, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: token,
		ToCurrency:   QuoteCurrency,
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch price via gRPC", "token", token, "error", err)
		return decimal.Zero, err
	}
	if resp.Rate <= 0 {
		return decimal.Zero, ErrNoPrice
	}

	return decimal.NewFromFloat32(resp.Rate), nil
}
