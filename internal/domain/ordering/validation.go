package ordering

import (
	"context"
	"errors"
	"fmt"

	"github.com/ordertaking/backend/internal/domain/shared/valueobject"
)

// ValidateOrder converts an unvalidated order into a validated one, using the
// product existence and address existence capabilities. Checks run strictly
// in sequence and fail fast: the first violation aborts the whole order with
// a ValidationError carrying that message. The shipping address is checked
// before the billing address, so when both are bad the shipping failure is
// the one reported.
func ValidateOrder(
	ctx context.Context,
	checkProductExists CheckProductExists,
	checkAddressExists CheckAddressExists,
	unvalidated UnvalidatedOrder,
) (ValidatedOrder, error) {
	orderID, err := NewOrderID(unvalidated.OrderID)
	if err != nil {
		return ValidatedOrder{}, ValidationError{Message: err.Error()}
	}

	customerInfo, err := validateCustomerInfo(unvalidated.CustomerInfo)
	if err != nil {
		return ValidatedOrder{}, ValidationError{Message: err.Error()}
	}

	shippingAddress, err := validateAddress(ctx, checkAddressExists, unvalidated.ShippingAddress)
	if err != nil {
		return ValidatedOrder{}, err
	}

	billingAddress, err := validateAddress(ctx, checkAddressExists, unvalidated.BillingAddress)
	if err != nil {
		return ValidatedOrder{}, err
	}

	lines := make([]ValidatedOrderLine, 0, len(unvalidated.Lines))
	for _, raw := range unvalidated.Lines {
		line, err := validateOrderLine(ctx, checkProductExists, raw)
		if err != nil {
			return ValidatedOrder{}, err
		}
		lines = append(lines, line)
	}

	return ValidatedOrder{
		OrderID:         orderID,
		CustomerInfo:    customerInfo,
		ShippingAddress: shippingAddress,
		BillingAddress:  billingAddress,
		Lines:           lines,
	}, nil
}

func validateCustomerInfo(raw UnvalidatedCustomerInfo) (CustomerInfo, error) {
	firstName, err := valueobject.NewString50("FirstName", raw.FirstName)
	if err != nil {
		return CustomerInfo{}, err
	}
	lastName, err := valueobject.NewString50("LastName", raw.LastName)
	if err != nil {
		return CustomerInfo{}, err
	}
	email, err := valueobject.NewEmailAddress("EmailAddress", raw.EmailAddress)
	if err != nil {
		return CustomerInfo{}, err
	}
	return CustomerInfo{
		Name:         PersonalName{FirstName: firstName, LastName: lastName},
		EmailAddress: email,
	}, nil
}

// validateAddress first confirms the address exists with the address service,
// then validates the checked address structurally. The two service failure
// kinds are translated into ValidationErrors; anything else from the service
// is a remote failure.
func validateAddress(ctx context.Context, checkAddressExists CheckAddressExists, raw UnvalidatedAddress) (Address, error) {
	checked, err := checkAddressExists(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, ErrAddressNotFound):
			return Address{}, ValidationError{Message: ErrAddressNotFound.Error()}
		case errors.Is(err, ErrAddressInvalidFormat):
			return Address{}, ValidationError{Message: ErrAddressInvalidFormat.Error()}
		default:
			return Address{}, remoteFailure("AddressValidation", err)
		}
	}
	return validateCheckedAddress(checked)
}

func validateCheckedAddress(checked CheckedAddress) (Address, error) {
	line1, err := valueobject.NewString50("AddressLine1", checked.AddressLine1)
	if err != nil {
		return Address{}, ValidationError{Message: err.Error()}
	}
	line2, err := valueobject.NewOptionalString50("AddressLine2", checked.AddressLine2)
	if err != nil {
		return Address{}, ValidationError{Message: err.Error()}
	}
	line3, err := valueobject.NewOptionalString50("AddressLine3", checked.AddressLine3)
	if err != nil {
		return Address{}, ValidationError{Message: err.Error()}
	}
	line4, err := valueobject.NewOptionalString50("AddressLine4", checked.AddressLine4)
	if err != nil {
		return Address{}, ValidationError{Message: err.Error()}
	}
	city, err := valueobject.NewString50("City", checked.City)
	if err != nil {
		return Address{}, ValidationError{Message: err.Error()}
	}
	zip, err := valueobject.NewZipCode("ZipCode", checked.ZipCode)
	if err != nil {
		return Address{}, ValidationError{Message: err.Error()}
	}
	return Address{
		AddressLine1: line1,
		AddressLine2: line2,
		AddressLine3: line3,
		AddressLine4: line4,
		City:         city,
		ZipCode:      zip,
	}, nil
}

// validateOrderLine validates the line id, resolves the product code against
// the catalog, then validates the quantity for the resolved code kind
func validateOrderLine(ctx context.Context, checkProductExists CheckProductExists, raw UnvalidatedOrderLine) (ValidatedOrderLine, error) {
	lineID, err := NewOrderLineID(raw.OrderLineID)
	if err != nil {
		return ValidatedOrderLine{}, ValidationError{Message: err.Error()}
	}

	code, err := validateProductCode(ctx, checkProductExists, raw.ProductCode)
	if err != nil {
		return ValidatedOrderLine{}, err
	}

	quantity, err := NewOrderQuantity("OrderQuantity", code, raw.Quantity)
	if err != nil {
		return ValidatedOrderLine{}, ValidationError{Message: err.Error()}
	}

	return ValidatedOrderLine{
		OrderLineID: lineID,
		ProductCode: code,
		Quantity:    quantity,
	}, nil
}

func validateProductCode(ctx context.Context, checkProductExists CheckProductExists, raw string) (ProductCode, error) {
	code, err := NewProductCode("ProductCode", raw)
	if err != nil {
		return nil, ValidationError{Message: err.Error()}
	}

	exists, err := checkProductExists(ctx, code)
	if err != nil {
		return nil, remoteFailure("ProductCatalog", err)
	}
	if !exists {
		return nil, ValidationError{Message: fmt.Sprintf("ProductCode: Invalid: %s", code.Value())}
	}
	return code, nil
}
