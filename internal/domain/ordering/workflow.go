// Package ordering implements the place-order workflow: turning an untrusted
// order submission into either a list of domain events or a structured
// failure, via three sequential stages - validation, pricing and
// acknowledgment. Domain invariants live in smart constructors; entities can
// only be built from values that satisfy them.
package ordering

import "context"

// PlaceOrder runs the full workflow for one order. It is a pure function of
// its inputs and the capability responses at the instant of invocation: no
// retries, no partial completion, no rollback. A ValidationError or
// PricingError short-circuits the later stages; the acknowledgment stage can
// never fail the workflow. Callers receive either the complete event list or
// exactly one error, never both.
func PlaceOrder(ctx context.Context, caps Capabilities, order UnvalidatedOrder) ([]PlaceOrderEvent, error) {
	validated, err := ValidateOrder(ctx, caps.CheckProductExists, caps.CheckAddressExists, order)
	if err != nil {
		return nil, err
	}

	priced, err := PriceOrder(ctx, caps.GetProductPrice, validated)
	if err != nil {
		return nil, err
	}

	ack := AcknowledgeOrder(ctx, caps.CreateAcknowledgmentLetter, caps.SendAcknowledgment, priced)

	return AssembleEvents(priced, ack), nil
}
