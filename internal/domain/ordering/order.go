package ordering

import (
	"github.com/ordertaking/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// OrderID identifies an order. It follows the String50 constraints.
type OrderID struct {
	valueobject.String50
}

// NewOrderID creates an OrderID from a raw value
func NewOrderID(raw string) (OrderID, error) {
	s, err := valueobject.NewString50("OrderId", raw)
	if err != nil {
		return OrderID{}, err
	}
	return OrderID{s}, nil
}

// OrderLineID identifies a line within an order. It follows the String50
// constraints.
type OrderLineID struct {
	valueobject.String50
}

// NewOrderLineID creates an OrderLineID from a raw value
func NewOrderLineID(raw string) (OrderLineID, error) {
	s, err := valueobject.NewString50("OrderLineId", raw)
	if err != nil {
		return OrderLineID{}, err
	}
	return OrderLineID{s}, nil
}

// PersonalName is a customer's validated name
type PersonalName struct {
	FirstName valueobject.String50
	LastName  valueobject.String50
}

// CustomerInfo is a customer's validated name and email address
type CustomerInfo struct {
	Name         PersonalName
	EmailAddress valueobject.EmailAddress
}

// Address is a validated postal address. Line 1 and city are required;
// lines 2-4 are optional.
type Address struct {
	AddressLine1 valueobject.String50
	AddressLine2 valueobject.OptionalString50
	AddressLine3 valueobject.OptionalString50
	AddressLine4 valueobject.OptionalString50
	City         valueobject.String50
	ZipCode      valueobject.ZipCode
}

// UnvalidatedCustomerInfo is customer info as submitted, with no invariants
// enforced
type UnvalidatedCustomerInfo struct {
	FirstName    string
	LastName     string
	EmailAddress string
}

// UnvalidatedAddress is an address as submitted, with no invariants enforced
type UnvalidatedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// UnvalidatedOrderLine is an order line as submitted, with no invariants
// enforced
type UnvalidatedOrderLine struct {
	OrderLineID string
	ProductCode string
	Quantity    decimal.Decimal
}

// UnvalidatedOrder is an order as submitted by the caller. It is the only
// input the validation stage accepts.
type UnvalidatedOrder struct {
	OrderID         string
	CustomerInfo    UnvalidatedCustomerInfo
	ShippingAddress UnvalidatedAddress
	BillingAddress  UnvalidatedAddress
	Lines           []UnvalidatedOrderLine
}

// CheckedAddress is an address confirmed to exist by the address checking
// service. Its fields are still raw; structural validation follows the check.
type CheckedAddress struct {
	AddressLine1 string
	AddressLine2 string
	AddressLine3 string
	AddressLine4 string
	City         string
	ZipCode      string
}

// ValidatedOrderLine is an order line whose fields all satisfy their
// invariants
type ValidatedOrderLine struct {
	OrderLineID OrderLineID
	ProductCode ProductCode
	Quantity    OrderQuantity
}

// ValidatedOrder is an order whose fields all satisfy their invariants.
// It is produced only by the validation stage.
type ValidatedOrder struct {
	OrderID         OrderID
	CustomerInfo    CustomerInfo
	ShippingAddress Address
	BillingAddress  Address
	Lines           []ValidatedOrderLine
}

// PricedOrderLine is a validated line with its computed line price
type PricedOrderLine struct {
	OrderLineID OrderLineID
	ProductCode ProductCode
	Quantity    OrderQuantity
	LinePrice   Price
}

// PricedOrder is a validated order with line prices and the total amount to
// bill. It is produced only by the pricing stage.
type PricedOrder struct {
	OrderID         OrderID
	CustomerInfo    CustomerInfo
	ShippingAddress Address
	BillingAddress  Address
	AmountToBill    BillingAmount
	Lines           []PricedOrderLine
}
