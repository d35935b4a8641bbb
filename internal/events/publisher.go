// internal/events/publisher.go
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// OrderPlaced is emitted once an order has been accepted.
type OrderPlaced struct {
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id,omitempty"`
	Total       float64   `json:"total"`
	ItemCount   int       `json:"item_count"`
	PaymentType string    `json:"payment_type"`
	PlacedAt    time.Time `json:"placed_at"`
}

// Publisher writes order events to Kafka. A nil Publisher is valid and
// drops all events, so callers never have to branch on configuration.
type Publisher struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

func NewPublisher(brokers []string, topic string, logger *logrus.Logger) *Publisher {
	if len(brokers) == 0 {
		return nil
	}
	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 50 * time.Millisecond,
		},
		logger: logger,
	}
}

// PublishOrderPlaced sends the event keyed by order ID. Failures are
// logged, not propagated: event delivery must never fail an order.
func (p *Publisher) PublishOrderPlaced(ctx context.Context, event OrderPlaced) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).Error("Failed to marshal order event")
		return
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
	if err != nil {
		p.logger.WithError(err).WithField("order_id", event.OrderID).Error("Failed to publish order event")
	}
}

func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
