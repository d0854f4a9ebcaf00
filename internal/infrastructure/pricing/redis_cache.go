// Package pricing provides a Redis-backed cache decorating any price lookup
// collaborator. Cache trouble never fails a lookup; the decorated source is
// always the fallback.
package pricing

import (
	"context"
	"time"

	"github.com/ordertaking/backend/internal/domain/ordering"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const priceKeyPrefix = "price:"

// CachedPriceLookup wraps a GetProductPrice capability with a Redis cache
type CachedPriceLookup struct {
	client redis.UniversalClient
	next   ordering.GetProductPrice
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedPriceLookup creates a CachedPriceLookup with the given TTL
func NewCachedPriceLookup(client redis.UniversalClient, next ordering.GetProductPrice, ttl time.Duration, logger *zap.Logger) *CachedPriceLookup {
	return &CachedPriceLookup{
		client: client,
		next:   next,
		ttl:    ttl,
		logger: logger,
	}
}

// ProductPrice returns the cached price for a product, falling back to the
// decorated lookup on a miss. It satisfies the ordering.GetProductPrice
// contract.
func (c *CachedPriceLookup) ProductPrice(ctx context.Context, code ordering.ProductCode) (ordering.Price, error) {
	key := priceKeyPrefix + code.Value()

	raw, err := c.client.Get(ctx, key).Result()
	if err == nil {
		if price, perr := parsePrice(raw); perr == nil {
			return price, nil
		}
		// A corrupt entry is treated as a miss and overwritten below
		c.logger.Warn("dropping corrupt cached price",
			zap.String("product_code", code.Value()),
		)
	} else if err != redis.Nil {
		c.logger.Warn("price cache unavailable, using source lookup",
			zap.String("product_code", code.Value()),
			zap.Error(err),
		)
	}

	price, err := c.next(ctx, code)
	if err != nil {
		return ordering.Price{}, err
	}

	if err := c.client.Set(ctx, key, price.Value().String(), c.ttl).Err(); err != nil {
		c.logger.Warn("failed to cache price",
			zap.String("product_code", code.Value()),
			zap.Error(err),
		)
	}
	return price, nil
}

func parsePrice(raw string) (ordering.Price, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return ordering.Price{}, err
	}
	return ordering.NewPrice("Price", value)
}
