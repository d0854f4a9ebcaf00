package ordering

import (
	"context"

	"github.com/shopspring/decimal"
)

// Capability stubs with the happy-path defaults used across the stage and
// workflow tests. Individual tests override the fields they care about.

func happyCapabilities() Capabilities {
	return Capabilities{
		CheckProductExists: func(ctx context.Context, code ProductCode) (bool, error) {
			return true, nil
		},
		CheckAddressExists: func(ctx context.Context, address UnvalidatedAddress) (CheckedAddress, error) {
			return CheckedAddress(address), nil
		},
		GetProductPrice: func(ctx context.Context, code ProductCode) (Price, error) {
			return MustNewPrice(decimal.RequireFromString("1.00")), nil
		},
		CreateAcknowledgmentLetter: func(ctx context.Context, order PricedOrder) (Letter, error) {
			return Letter{Body: "thank you " + order.CustomerInfo.Name.FirstName.Value()}, nil
		},
		SendAcknowledgment: func(ctx context.Context, ack Acknowledgment) (SendResult, error) {
			return Sent, nil
		},
	}
}

func validUnvalidatedOrder() UnvalidatedOrder {
	return UnvalidatedOrder{
		OrderID: "order-0001",
		CustomerInfo: UnvalidatedCustomerInfo{
			FirstName:    "Alice",
			LastName:     "Smith",
			EmailAddress: "alice@example.com",
		},
		ShippingAddress: UnvalidatedAddress{
			AddressLine1: "12 Elm Street",
			City:         "Springfield",
			ZipCode:      "12345",
		},
		BillingAddress: UnvalidatedAddress{
			AddressLine1: "34 Oak Avenue",
			AddressLine2: "Apt 2",
			City:         "Springfield",
			ZipCode:      "54321",
		},
		Lines: []UnvalidatedOrderLine{
			{
				OrderLineID: "line-1",
				ProductCode: "W1234",
				Quantity:    decimal.NewFromInt(10),
			},
		},
	}
}
