package ordering

import (
	"context"

	"github.com/ordertaking/backend/internal/domain/ordering"
	"go.uber.org/zap"
)

// PlaceOrderService runs the place-order workflow with a fixed capability
// bundle. The workflow itself stays log-free; this service logs outcomes and
// the acknowledgment failures the workflow deliberately swallows.
type PlaceOrderService struct {
	caps   ordering.Capabilities
	logger *zap.Logger
}

// NewPlaceOrderService creates a new PlaceOrderService
func NewPlaceOrderService(caps ordering.Capabilities, logger *zap.Logger) *PlaceOrderService {
	return &PlaceOrderService{
		caps:   caps,
		logger: logger,
	}
}

// PlaceOrder maps the request to an unvalidated order and runs the workflow
func (s *PlaceOrderService) PlaceOrder(ctx context.Context, req PlaceOrderRequest) ([]ordering.PlaceOrderEvent, error) {
	caps := s.caps
	caps.CreateAcknowledgmentLetter = s.logLetterFailures(caps.CreateAcknowledgmentLetter, req.OrderID)
	caps.SendAcknowledgment = s.logSendFailures(caps.SendAcknowledgment, req.OrderID)

	events, err := ordering.PlaceOrder(ctx, caps, req.ToUnvalidatedOrder())
	if err != nil {
		s.logger.Warn("place order failed",
			zap.String("order_id", req.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("order placed",
		zap.String("order_id", req.OrderID),
		zap.Int("event_count", len(events)),
	)
	return events, nil
}

// logLetterFailures decorates the letter capability so that render failures,
// which never fail the workflow, are still visible in the logs
func (s *PlaceOrderService) logLetterFailures(next ordering.CreateAcknowledgmentLetter, orderID string) ordering.CreateAcknowledgmentLetter {
	return func(ctx context.Context, order ordering.PricedOrder) (ordering.Letter, error) {
		letter, err := next(ctx, order)
		if err != nil {
			s.logger.Warn("acknowledgment letter could not be rendered",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		}
		return letter, err
	}
}

// logSendFailures decorates the send capability the same way
func (s *PlaceOrderService) logSendFailures(next ordering.SendAcknowledgment, orderID string) ordering.SendAcknowledgment {
	return func(ctx context.Context, ack ordering.Acknowledgment) (ordering.SendResult, error) {
		result, err := next(ctx, ack)
		if err != nil {
			s.logger.Warn("acknowledgment could not be sent",
				zap.String("order_id", orderID),
				zap.Error(err),
			)
		} else if result == ordering.NotSent {
			s.logger.Info("acknowledgment not sent",
				zap.String("order_id", orderID),
			)
		}
		return result, err
	}
}
