package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-lending-ledger/internal/logger"
	"github.com/shopspring/decimal"
)

// ErrPriceNotCached is returned by PriceCacheRepository.GetPrice on a cache miss.
var ErrPriceNotCached = errors.New("price not found in cache")

// PriceCacheRepository caches USD token prices in Redis.
type PriceCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

func NewPriceCacheRepository(client *redis.Client, expiration time.Duration) *PriceCacheRepository {
	return &PriceCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func priceKey(token string) string {
	return fmt.Sprintf("price:%s:USD", token)
}

// GetPrice returns the cached USD price of token.
func (r *PriceCacheRepository) GetPrice(ctx context.Context, token string) (decimal.Decimal, error) {
	key := priceKey(token)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("key", key, "result", val, "error", err)
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, fmt.Errorf("%w: %s", ErrPriceNotCached, token)
		}
		return decimal.Zero, err
	}

	price, err := decimal.NewFromString(val)
	logger.Log.Infow("key", key, "value", val, "result", price, "error", err)
	if err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

// SetPrice caches the USD price of token until the configured expiration.
func (r *PriceCacheRepository) SetPrice(ctx context.Context, token string, price decimal.Decimal) error {
	key := priceKey(token)
	err := r.client.Set(ctx, key, price.String(), r.exp).Err()

	logger.Log.Infow("key", key, "price", price, "error", err)

	return err
}
