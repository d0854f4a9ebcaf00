package ordering

import (
	"github.com/shopspring/decimal"
)

var (
	priceMin = decimal.Zero
	priceMax = decimal.RequireFromString("1000.00")

	billingAmountMin = decimal.Zero
	billingAmountMax = decimal.RequireFromString("10000.00")
)

// Price is a monetary amount for a single line, bounded to [0.00, 1000.00].
// It is immutable - construct it through NewPrice.
type Price struct {
	value decimal.Decimal
}

// NewPrice creates a Price from a raw decimal
func NewPrice(fieldName string, raw decimal.Decimal) (Price, error) {
	if raw.LessThan(priceMin) {
		return Price{}, errBelowMinimum(fieldName, priceMin)
	}
	if raw.GreaterThan(priceMax) {
		return Price{}, errAboveMaximum(fieldName, priceMax)
	}
	return Price{value: raw}, nil
}

// MustNewPrice creates a Price and panics on error. Intended for capability
// implementations whose price sources are known to be in bounds.
func MustNewPrice(raw decimal.Decimal) Price {
	p, err := NewPrice("Price", raw)
	if err != nil {
		panic(err)
	}
	return p
}

// Value returns the decimal amount
func (p Price) Value() decimal.Decimal { return p.value }

// String returns the amount with two decimal places
func (p Price) String() string { return p.value.StringFixed(2) }

// MultiplyBy recomputes the price for the given quantity and re-validates
// the result against the Price bound. A valid unit price can produce an
// out-of-bound line price when the quantity is large.
func (p Price) MultiplyBy(qty decimal.Decimal) (Price, error) {
	return NewPrice("Price", p.value.Mul(qty))
}

// BillingAmount is the total billed for an order, bounded to [0.00, 10000.00].
// It is immutable - construct it through NewBillingAmount or SumPrices.
type BillingAmount struct {
	value decimal.Decimal
}

// NewBillingAmount creates a BillingAmount from a raw decimal
func NewBillingAmount(fieldName string, raw decimal.Decimal) (BillingAmount, error) {
	if raw.LessThan(billingAmountMin) {
		return BillingAmount{}, errBelowMinimum(fieldName, billingAmountMin)
	}
	if raw.GreaterThan(billingAmountMax) {
		return BillingAmount{}, errAboveMaximum(fieldName, billingAmountMax)
	}
	return BillingAmount{value: raw}, nil
}

// SumPrices totals the given line prices and validates the sum against the
// BillingAmount bound. An out-of-bound total is an error, never clamped.
func SumPrices(prices []Price) (BillingAmount, error) {
	total := decimal.Zero
	for _, p := range prices {
		total = total.Add(p.value)
	}
	return NewBillingAmount("AmountToBill", total)
}

// Value returns the decimal amount
func (b BillingAmount) Value() decimal.Decimal { return b.value }

// String returns the amount with two decimal places
func (b BillingAmount) String() string { return b.value.StringFixed(2) }

// IsPositive returns true if the amount is greater than zero
func (b BillingAmount) IsPositive() bool { return b.value.IsPositive() }
