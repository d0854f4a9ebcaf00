// Package catalog provides an in-memory product catalog backing the product
// existence and price lookup collaborators of the place-order workflow.
package catalog

import (
	"context"
	"fmt"

	"github.com/ordertaking/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
)

// Catalog is an immutable in-memory product catalog. The price table maps
// raw product codes to unit prices; products without an entry fall back to
// the default price.
type Catalog struct {
	prices       map[string]ordering.Price
	defaultPrice ordering.Price
}

// New creates a Catalog from a map of raw product code to unit price.
// Prices are validated against the domain's price bound.
func New(prices map[string]decimal.Decimal, defaultPrice decimal.Decimal) (*Catalog, error) {
	def, err := ordering.NewPrice("Price", defaultPrice)
	if err != nil {
		return nil, fmt.Errorf("invalid default price: %w", err)
	}

	table := make(map[string]ordering.Price, len(prices))
	for code, raw := range prices {
		price, err := ordering.NewPrice("Price", raw)
		if err != nil {
			return nil, fmt.Errorf("invalid price for product %s: %w", code, err)
		}
		table[code] = price
	}

	return &Catalog{prices: table, defaultPrice: def}, nil
}

// ProductExists reports whether a product code is present in the catalog.
// It satisfies the ordering.CheckProductExists contract.
func (c *Catalog) ProductExists(_ context.Context, code ordering.ProductCode) (bool, error) {
	_, ok := c.prices[code.Value()]
	return ok, nil
}

// ProductPrice returns the unit price for a product, or the default price
// when no entry exists. It satisfies the ordering.GetProductPrice contract.
func (c *Catalog) ProductPrice(_ context.Context, code ordering.ProductCode) (ordering.Price, error) {
	if price, ok := c.prices[code.Value()]; ok {
		return price, nil
	}
	return c.defaultPrice, nil
}
