package catalog

import (
	"context"
	"testing"

	"github.com/ordertaking/backend/internal/domain/ordering"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	ctx := context.Background()
	cat, err := New(map[string]decimal.Decimal{
		"W1234": decimal.RequireFromString("1.50"),
		"G123":  decimal.RequireFromString("4.00"),
	}, decimal.RequireFromString("1.00"))
	require.NoError(t, err)

	t.Run("known product exists", func(t *testing.T) {
		exists, err := cat.ProductExists(ctx, ordering.MustNewProductCode("ProductCode", "W1234"))
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("unknown product does not exist", func(t *testing.T) {
		exists, err := cat.ProductExists(ctx, ordering.MustNewProductCode("ProductCode", "W9999"))
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("known product gets its listed price", func(t *testing.T) {
		price, err := cat.ProductPrice(ctx, ordering.MustNewProductCode("ProductCode", "G123"))
		require.NoError(t, err)
		assert.True(t, price.Value().Equal(decimal.RequireFromString("4.00")))
	})

	t.Run("unlisted product gets the default price", func(t *testing.T) {
		price, err := cat.ProductPrice(ctx, ordering.MustNewProductCode("ProductCode", "W9999"))
		require.NoError(t, err)
		assert.True(t, price.Value().Equal(decimal.RequireFromString("1.00")))
	})
}

func TestNew(t *testing.T) {
	t.Run("rejects an out-of-bound listed price", func(t *testing.T) {
		_, err := New(map[string]decimal.Decimal{
			"W1234": decimal.RequireFromString("1000.01"),
		}, decimal.NewFromInt(1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "W1234")
	})

	t.Run("rejects a negative default price", func(t *testing.T) {
		_, err := New(nil, decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}
