package dto

import (
	"github.com/samber/lo"

	"github.com/ordertaking/backend/internal/domain/ordering"
)

// EventDTO is the wire form of a single workflow event. Payload carries the
// variant-specific body; EventType names the variant.
type EventDTO struct {
	EventType string      `json:"event_type"`
	Payload   interface{} `json:"payload"`
}

// OrderPlacedDTO is the wire form of the OrderPlaced event
type OrderPlacedDTO struct {
	OrderID         string         `json:"order_id"`
	CustomerInfo    CustomerDTO    `json:"customer_info"`
	ShippingAddress AddressDTO     `json:"shipping_address"`
	BillingAddress  AddressDTO     `json:"billing_address"`
	AmountToBill    string         `json:"amount_to_bill"`
	Lines           []OrderLineDTO `json:"lines"`
}

// BillableOrderPlacedDTO is the wire form of the BillableOrderPlaced event
type BillableOrderPlacedDTO struct {
	OrderID        string     `json:"order_id"`
	BillingAddress AddressDTO `json:"billing_address"`
	AmountToBill   string     `json:"amount_to_bill"`
}

// OrderAcknowledgmentSentDTO is the wire form of the OrderAcknowledgmentSent
// event
type OrderAcknowledgmentSentDTO struct {
	OrderID      string `json:"order_id"`
	EmailAddress string `json:"email_address"`
}

// CustomerDTO is the wire form of validated customer info
type CustomerDTO struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	EmailAddress string `json:"email_address"`
}

// AddressDTO is the wire form of a validated address
type AddressDTO struct {
	AddressLine1 string `json:"address_line1"`
	AddressLine2 string `json:"address_line2,omitempty"`
	AddressLine3 string `json:"address_line3,omitempty"`
	AddressLine4 string `json:"address_line4,omitempty"`
	City         string `json:"city"`
	ZipCode      string `json:"zip_code"`
}

// OrderLineDTO is the wire form of a priced order line
type OrderLineDTO struct {
	OrderLineID string `json:"order_line_id"`
	ProductCode string `json:"product_code"`
	Quantity    string `json:"quantity"`
	LinePrice   string `json:"line_price"`
}

// FromEvents maps workflow events onto their wire forms, preserving order
func FromEvents(events []ordering.PlaceOrderEvent) []EventDTO {
	return lo.Map(events, func(event ordering.PlaceOrderEvent, _ int) EventDTO {
		return fromEvent(event)
	})
}

func fromEvent(event ordering.PlaceOrderEvent) EventDTO {
	switch e := event.(type) {
	case ordering.OrderPlaced:
		return EventDTO{
			EventType: e.EventType(),
			Payload:   fromPricedOrder(e.PricedOrder),
		}
	case ordering.BillableOrderPlaced:
		return EventDTO{
			EventType: e.EventType(),
			Payload: BillableOrderPlacedDTO{
				OrderID:        e.OrderID.Value(),
				BillingAddress: fromAddress(e.BillingAddress),
				AmountToBill:   e.AmountToBill.String(),
			},
		}
	case ordering.OrderAcknowledgmentSent:
		return EventDTO{
			EventType: e.EventType(),
			Payload: OrderAcknowledgmentSentDTO{
				OrderID:      e.OrderID.Value(),
				EmailAddress: e.EmailAddress.Value(),
			},
		}
	default:
		// The event union is closed; a new variant must be mapped here
		return EventDTO{EventType: event.EventType()}
	}
}

func fromPricedOrder(order ordering.PricedOrder) OrderPlacedDTO {
	return OrderPlacedDTO{
		OrderID: order.OrderID.Value(),
		CustomerInfo: CustomerDTO{
			FirstName:    order.CustomerInfo.Name.FirstName.Value(),
			LastName:     order.CustomerInfo.Name.LastName.Value(),
			EmailAddress: order.CustomerInfo.EmailAddress.Value(),
		},
		ShippingAddress: fromAddress(order.ShippingAddress),
		BillingAddress:  fromAddress(order.BillingAddress),
		AmountToBill:    order.AmountToBill.String(),
		Lines: lo.Map(order.Lines, func(line ordering.PricedOrderLine, _ int) OrderLineDTO {
			return OrderLineDTO{
				OrderLineID: line.OrderLineID.Value(),
				ProductCode: line.ProductCode.Value(),
				Quantity:    line.Quantity.Value().String(),
				LinePrice:   line.LinePrice.String(),
			}
		}),
	}
}

func fromAddress(addr ordering.Address) AddressDTO {
	return AddressDTO{
		AddressLine1: addr.AddressLine1.Value(),
		AddressLine2: addr.AddressLine2.OrEmpty(),
		AddressLine3: addr.AddressLine3.OrEmpty(),
		AddressLine4: addr.AddressLine4.OrEmpty(),
		City:         addr.City.Value(),
		ZipCode:      addr.ZipCode.Value(),
	}
}
