package letters

import (
	"context"

	"go.uber.org/zap"

	"github.com/ordertaking/backend/internal/domain/ordering"
)

// ZapSender delivers acknowledgments by writing them to the log. It stands in
// for a real mail transport in environments without one.
type ZapSender struct {
	logger *zap.Logger
}

// NewZapSender creates a ZapSender writing to the given logger
func NewZapSender(logger *zap.Logger) *ZapSender {
	return &ZapSender{logger: logger}
}

// Send logs the acknowledgment and reports it as sent. It satisfies the
// ordering.SendAcknowledgment contract.
func (s *ZapSender) Send(_ context.Context, ack ordering.Acknowledgment) (ordering.SendResult, error) {
	s.logger.Info("acknowledgment sent",
		zap.String("email", ack.EmailAddress.Value()),
		zap.String("body", ack.Letter.Body),
	)
	return ordering.Sent, nil
}

// DropSender declines every acknowledgment without delivering it. Useful for
// load tests and environments where customers must not be contacted.
type DropSender struct{}

// NewDropSender creates a DropSender
func NewDropSender() *DropSender {
	return &DropSender{}
}

// Send reports every acknowledgment as not sent. It satisfies the
// ordering.SendAcknowledgment contract.
func (s *DropSender) Send(_ context.Context, _ ordering.Acknowledgment) (ordering.SendResult, error) {
	return ordering.NotSent, nil
}
