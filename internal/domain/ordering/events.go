package ordering

import "github.com/ordertaking/backend/internal/domain/shared/valueobject"

// Event type names surfaced to downstream consumers
const (
	EventTypeOrderPlaced             = "OrderPlaced"
	EventTypeBillableOrderPlaced     = "BillableOrderPlaced"
	EventTypeOrderAcknowledgmentSent = "OrderAcknowledgmentSent"
)

// PlaceOrderEvent is the closed union of events a successful workflow run
// emits. Events are pure data: identical inputs produce identical events.
type PlaceOrderEvent interface {
	// EventType returns the stable event kind name
	EventType() string

	isPlaceOrderEvent()
}

// OrderPlaced is always emitted for a successfully priced order
type OrderPlaced struct {
	PricedOrder PricedOrder
}

func (OrderPlaced) isPlaceOrderEvent() {}

// EventType returns the stable event kind name
func (OrderPlaced) EventType() string { return EventTypeOrderPlaced }

// BillableOrderPlaced is emitted only when there is a positive amount to bill
type BillableOrderPlaced struct {
	OrderID        OrderID
	BillingAddress Address
	AmountToBill   BillingAmount
}

func (BillableOrderPlaced) isPlaceOrderEvent() {}

// EventType returns the stable event kind name
func (BillableOrderPlaced) EventType() string { return EventTypeBillableOrderPlaced }

// OrderAcknowledgmentSent is emitted only when the acknowledgment was
// actually sent to the customer
type OrderAcknowledgmentSent struct {
	OrderID      OrderID
	EmailAddress valueobject.EmailAddress
}

func (OrderAcknowledgmentSent) isPlaceOrderEvent() {}

// EventType returns the stable event kind name
func (OrderAcknowledgmentSent) EventType() string { return EventTypeOrderAcknowledgmentSent }

// AssembleEvents builds the event list for a priced order and its optional
// acknowledgment. The order is a contract with downstream consumers:
// acknowledgment first if present, then OrderPlaced, then
// BillableOrderPlaced if the amount to bill is positive.
func AssembleEvents(priced PricedOrder, ack *OrderAcknowledgmentSent) []PlaceOrderEvent {
	events := make([]PlaceOrderEvent, 0, 3)
	if ack != nil {
		events = append(events, *ack)
	}
	events = append(events, OrderPlaced{PricedOrder: priced})
	if priced.AmountToBill.IsPositive() {
		events = append(events, BillableOrderPlaced{
			OrderID:        priced.OrderID,
			BillingAddress: priced.BillingAddress,
			AmountToBill:   priced.AmountToBill,
		})
	}
	return events
}
