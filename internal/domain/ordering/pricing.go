package ordering

import (
	"context"

	"github.com/samber/lo"
)

// PriceOrder converts a validated order into a priced one using the price
// lookup capability. Each line price is recomputed as quantity times unit
// price and re-validated; the total is re-validated as a BillingAmount. The
// first out-of-bound value aborts with a PricingError.
func PriceOrder(ctx context.Context, getProductPrice GetProductPrice, validated ValidatedOrder) (PricedOrder, error) {
	lines := make([]PricedOrderLine, 0, len(validated.Lines))
	for _, line := range validated.Lines {
		priced, err := priceOrderLine(ctx, getProductPrice, line)
		if err != nil {
			return PricedOrder{}, err
		}
		lines = append(lines, priced)
	}

	amountToBill, err := SumPrices(lo.Map(lines, func(l PricedOrderLine, _ int) Price {
		return l.LinePrice
	}))
	if err != nil {
		return PricedOrder{}, PricingError{Message: err.Error()}
	}

	return PricedOrder{
		OrderID:         validated.OrderID,
		CustomerInfo:    validated.CustomerInfo,
		ShippingAddress: validated.ShippingAddress,
		BillingAddress:  validated.BillingAddress,
		AmountToBill:    amountToBill,
		Lines:           lines,
	}, nil
}

func priceOrderLine(ctx context.Context, getProductPrice GetProductPrice, line ValidatedOrderLine) (PricedOrderLine, error) {
	unitPrice, err := getProductPrice(ctx, line.ProductCode)
	if err != nil {
		return PricedOrderLine{}, remoteFailure("PriceLookup", err)
	}

	linePrice, err := unitPrice.MultiplyBy(line.Quantity.Value())
	if err != nil {
		return PricedOrderLine{}, PricingError{Message: err.Error()}
	}

	return PricedOrderLine{
		OrderLineID: line.OrderLineID,
		ProductCode: line.ProductCode,
		Quantity:    line.Quantity,
		LinePrice:   linePrice,
	}, nil
}
