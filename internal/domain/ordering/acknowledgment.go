package ordering

import "context"

// AcknowledgeOrder attempts to notify the customer of a priced order. It
// cannot fail the workflow: a letter that cannot be rendered or delivered
// simply produces no event. The event is created only when the send
// capability reports Sent.
func AcknowledgeOrder(
	ctx context.Context,
	createLetter CreateAcknowledgmentLetter,
	send SendAcknowledgment,
	priced PricedOrder,
) *OrderAcknowledgmentSent {
	letter, err := createLetter(ctx, priced)
	if err != nil {
		return nil
	}

	result, err := send(ctx, Acknowledgment{
		EmailAddress: priced.CustomerInfo.EmailAddress,
		Letter:       letter,
	})
	if err != nil || result != Sent {
		return nil
	}

	return &OrderAcknowledgmentSent{
		OrderID:      priced.OrderID,
		EmailAddress: priced.CustomerInfo.EmailAddress,
	}
}
