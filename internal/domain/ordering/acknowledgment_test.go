package ordering

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pricedFixture(t *testing.T) PricedOrder {
	t.Helper()
	caps := happyCapabilities()
	validated := validatedFixture(t, validUnvalidatedOrder())
	priced, err := PriceOrder(context.Background(), caps.GetProductPrice, validated)
	require.NoError(t, err)
	return priced
}

func TestAcknowledgeOrder(t *testing.T) {
	ctx := context.Background()
	caps := happyCapabilities()

	t.Run("a sent acknowledgment produces the event", func(t *testing.T) {
		priced := pricedFixture(t)

		ack := AcknowledgeOrder(ctx, caps.CreateAcknowledgmentLetter, caps.SendAcknowledgment, priced)
		require.NotNil(t, ack)
		assert.Equal(t, priced.OrderID, ack.OrderID)
		assert.Equal(t, "alice@example.com", ack.EmailAddress.Value())
	})

	t.Run("NotSent produces no event and no error", func(t *testing.T) {
		priced := pricedFixture(t)
		send := func(ctx context.Context, a Acknowledgment) (SendResult, error) {
			return NotSent, nil
		}

		ack := AcknowledgeOrder(ctx, caps.CreateAcknowledgmentLetter, send, priced)
		assert.Nil(t, ack)
	})

	t.Run("a failing letter renderer is swallowed", func(t *testing.T) {
		priced := pricedFixture(t)
		createLetter := func(ctx context.Context, o PricedOrder) (Letter, error) {
			return Letter{}, errors.New("template error")
		}

		ack := AcknowledgeOrder(ctx, createLetter, caps.SendAcknowledgment, priced)
		assert.Nil(t, ack)
	})

	t.Run("a failing sender is swallowed", func(t *testing.T) {
		priced := pricedFixture(t)
		send := func(ctx context.Context, a Acknowledgment) (SendResult, error) {
			return NotSent, errors.New("smtp unavailable")
		}

		ack := AcknowledgeOrder(ctx, caps.CreateAcknowledgmentLetter, send, priced)
		assert.Nil(t, ack)
	})

	t.Run("the letter is addressed to the order's customer", func(t *testing.T) {
		priced := pricedFixture(t)
		var sentTo string
		send := func(ctx context.Context, a Acknowledgment) (SendResult, error) {
			sentTo = a.EmailAddress.Value()
			return Sent, nil
		}

		AcknowledgeOrder(ctx, caps.CreateAcknowledgmentLetter, send, priced)
		assert.Equal(t, "alice@example.com", sentTo)
	})
}
