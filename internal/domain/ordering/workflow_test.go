package ordering

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path emits three events in contract order", func(t *testing.T) {
		events, err := PlaceOrder(ctx, happyCapabilities(), validUnvalidatedOrder())
		require.NoError(t, err)
		require.Len(t, events, 3)

		ack, ok := events[0].(OrderAcknowledgmentSent)
		require.True(t, ok)
		assert.Equal(t, "order-0001", ack.OrderID.Value())
		assert.Equal(t, "alice@example.com", ack.EmailAddress.Value())

		placed, ok := events[1].(OrderPlaced)
		require.True(t, ok)
		assert.True(t, placed.PricedOrder.AmountToBill.Value().Equal(decimal.NewFromInt(10)))

		billable, ok := events[2].(BillableOrderPlaced)
		require.True(t, ok)
		assert.Equal(t, "order-0001", billable.OrderID.Value())
		assert.True(t, billable.AmountToBill.Value().Equal(decimal.NewFromInt(10)))
		assert.Equal(t, "34 Oak Avenue", billable.BillingAddress.AddressLine1.Value())
	})

	t.Run("zero amount to bill omits the billable event", func(t *testing.T) {
		caps := happyCapabilities()
		caps.GetProductPrice = func(ctx context.Context, code ProductCode) (Price, error) {
			return MustNewPrice(decimal.Zero), nil
		}

		events, err := PlaceOrder(ctx, caps, validUnvalidatedOrder())
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.IsType(t, OrderAcknowledgmentSent{}, events[0])
		assert.IsType(t, OrderPlaced{}, events[1])
	})

	t.Run("unsent acknowledgment omits its event but the order still places", func(t *testing.T) {
		caps := happyCapabilities()
		caps.SendAcknowledgment = func(ctx context.Context, ack Acknowledgment) (SendResult, error) {
			return NotSent, nil
		}

		events, err := PlaceOrder(ctx, caps, validUnvalidatedOrder())
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.IsType(t, OrderPlaced{}, events[0])
		assert.IsType(t, BillableOrderPlaced{}, events[1])
	})

	t.Run("unknown product fails the workflow with no events", func(t *testing.T) {
		caps := happyCapabilities()
		caps.CheckProductExists = func(ctx context.Context, code ProductCode) (bool, error) {
			return false, nil
		}

		events, err := PlaceOrder(ctx, caps, validUnvalidatedOrder())
		assert.Nil(t, events)
		var vErr ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "W1234")
	})

	t.Run("shipping address not found fails fast", func(t *testing.T) {
		caps := happyCapabilities()
		var calls int
		caps.CheckAddressExists = func(ctx context.Context, addr UnvalidatedAddress) (CheckedAddress, error) {
			calls++
			return CheckedAddress{}, ErrAddressNotFound
		}

		events, err := PlaceOrder(ctx, caps, validUnvalidatedOrder())
		assert.Nil(t, events)
		var vErr ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "address not found", vErr.Message)
		assert.Equal(t, 1, calls, "billing address must not be checked after the shipping failure")
	})

	t.Run("a quantity beyond int64 range fails validation, not billing", func(t *testing.T) {
		order := validUnvalidatedOrder()
		order.Lines[0].Quantity = decimal.RequireFromString("18446744073709552116")

		events, err := PlaceOrder(ctx, happyCapabilities(), order)
		assert.Nil(t, events)
		var vErr ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Contains(t, vErr.Message, "must not be greater than 1000")
	})

	t.Run("pricing failure skips the acknowledgment stage", func(t *testing.T) {
		caps := happyCapabilities()
		caps.GetProductPrice = func(ctx context.Context, code ProductCode) (Price, error) {
			return MustNewPrice(decimal.NewFromInt(1000)), nil
		}
		var letterRendered bool
		caps.CreateAcknowledgmentLetter = func(ctx context.Context, o PricedOrder) (Letter, error) {
			letterRendered = true
			return Letter{}, nil
		}

		order := validUnvalidatedOrder()
		order.Lines[0].Quantity = decimal.NewFromInt(5)

		_, err := PlaceOrder(ctx, caps, order)
		var pErr PricingError
		require.ErrorAs(t, err, &pErr)
		assert.False(t, letterRendered)
	})

	t.Run("identical inputs produce identical event lists", func(t *testing.T) {
		first, err := PlaceOrder(ctx, happyCapabilities(), validUnvalidatedOrder())
		require.NoError(t, err)
		second, err := PlaceOrder(ctx, happyCapabilities(), validUnvalidatedOrder())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestAssembleEvents(t *testing.T) {
	priced := pricedFixture(t)
	ack := &OrderAcknowledgmentSent{
		OrderID:      priced.OrderID,
		EmailAddress: priced.CustomerInfo.EmailAddress,
	}

	t.Run("full list keeps the fixed order", func(t *testing.T) {
		events := AssembleEvents(priced, ack)
		require.Len(t, events, 3)
		assert.Equal(t, EventTypeOrderAcknowledgmentSent, events[0].EventType())
		assert.Equal(t, EventTypeOrderPlaced, events[1].EventType())
		assert.Equal(t, EventTypeBillableOrderPlaced, events[2].EventType())
	})

	t.Run("nil acknowledgment drops the first event", func(t *testing.T) {
		events := AssembleEvents(priced, nil)
		require.Len(t, events, 2)
		assert.Equal(t, EventTypeOrderPlaced, events[0].EventType())
	})
}
