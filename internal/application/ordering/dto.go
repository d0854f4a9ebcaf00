package ordering

import (
	"github.com/ordertaking/backend/internal/domain/ordering"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PlaceOrderRequest is the order form as submitted by the caller. Binding
// tags reject only the grossly malformed; the domain's smart constructors
// remain the authority on every invariant.
type PlaceOrderRequest struct {
	OrderID         string            `json:"order_id" binding:"required"`
	CustomerInfo    CustomerInfoInput `json:"customer_info" binding:"required"`
	ShippingAddress AddressInput      `json:"shipping_address" binding:"required"`
	BillingAddress  AddressInput      `json:"billing_address" binding:"required"`
	Lines           []OrderLineInput  `json:"lines" binding:"dive"`
}

// CustomerInfoInput is the raw customer section of the order form
type CustomerInfoInput struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

// AddressInput is the raw address section of the order form
type AddressInput struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2"`
	AddressLine3 string `json:"address_line3"`
	AddressLine4 string `json:"address_line4"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

// OrderLineInput is a raw order line of the order form
type OrderLineInput struct {
	OrderLineID string          `json:"order_line_id"`
	ProductCode string          `json:"product_code"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ToUnvalidatedOrder maps the request onto the domain's unvalidated order
func (r PlaceOrderRequest) ToUnvalidatedOrder() ordering.UnvalidatedOrder {
	return ordering.UnvalidatedOrder{
		OrderID: r.OrderID,
		CustomerInfo: ordering.UnvalidatedCustomerInfo{
			FirstName:    r.CustomerInfo.FirstName,
			LastName:     r.CustomerInfo.LastName,
			EmailAddress: r.CustomerInfo.EmailAddress,
		},
		ShippingAddress: r.ShippingAddress.toUnvalidatedAddress(),
		BillingAddress:  r.BillingAddress.toUnvalidatedAddress(),
		Lines: lo.Map(r.Lines, func(line OrderLineInput, _ int) ordering.UnvalidatedOrderLine {
			return ordering.UnvalidatedOrderLine{
				OrderLineID: line.OrderLineID,
				ProductCode: line.ProductCode,
				Quantity:    line.Quantity,
			}
		}),
	}
}

func (a AddressInput) toUnvalidatedAddress() ordering.UnvalidatedAddress {
	return ordering.UnvalidatedAddress{
		AddressLine1: a.AddressLine1,
		AddressLine2: a.AddressLine2,
		AddressLine3: a.AddressLine3,
		AddressLine4: a.AddressLine4,
		City:         a.City,
		ZipCode:      a.ZipCode,
	}
}
