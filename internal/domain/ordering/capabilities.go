package ordering

import (
	"context"

	"github.com/ordertaking/backend/internal/domain/shared/valueobject"
)

// Letter is the rendered acknowledgment content for a priced order
type Letter struct {
	Body string
}

// Acknowledgment pairs a customer email address with the letter to deliver
type Acknowledgment struct {
	EmailAddress valueobject.EmailAddress
	Letter       Letter
}

// SendResult reports whether an acknowledgment was delivered
type SendResult int

const (
	// Sent means the acknowledgment reached the customer
	Sent SendResult = iota
	// NotSent means delivery was declined; this is not a workflow error
	NotSent
)

// String returns the result name
func (r SendResult) String() string {
	if r == Sent {
		return "Sent"
	}
	return "NotSent"
}

// The workflow's external collaborators. Every capability shares the same
// context-in, error-out contract so orchestration never has to special-case
// which calls may block.

// CheckProductExists reports whether a product code exists in the catalog
type CheckProductExists func(ctx context.Context, code ProductCode) (bool, error)

// CheckAddressExists verifies an address with the address service. Failure
// kinds are distinguished with ErrAddressNotFound and ErrAddressInvalidFormat;
// any other error is a remote failure.
type CheckAddressExists func(ctx context.Context, address UnvalidatedAddress) (CheckedAddress, error)

// GetProductPrice returns the unit price for a product known to exist
type GetProductPrice func(ctx context.Context, code ProductCode) (Price, error)

// CreateAcknowledgmentLetter renders the acknowledgment letter for a priced
// order
type CreateAcknowledgmentLetter func(ctx context.Context, order PricedOrder) (Letter, error)

// SendAcknowledgment attempts to deliver an acknowledgment to the customer
type SendAcknowledgment func(ctx context.Context, ack Acknowledgment) (SendResult, error)

// Capabilities bundles the five collaborators the workflow is configured
// with. It is passed once into PlaceOrder.
type Capabilities struct {
	CheckProductExists         CheckProductExists
	CheckAddressExists         CheckAddressExists
	GetProductPrice            GetProductPrice
	CreateAcknowledgmentLetter CreateAcknowledgmentLetter
	SendAcknowledgment         SendAcknowledgment
}
