package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Maca31/IFPhub/config"
)

// Event types published by the portal.
const (
	TypeAppointmentBooked    = "appointment.booked"
	TypeAppointmentCancelled = "appointment.cancelled"
)

// Event is the wire format of a portal event.
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Producer publishes portal events to Kafka. A nil *Producer is valid and
// drops every event, so callers never need to branch on whether event
// publishing is configured.
type Producer struct {
	writer *kafka.Writer
	logger *zap.Logger
}

// NewProducer creates a Kafka producer, or nil when no brokers are
// configured.
func NewProducer(cfg *config.EventsConfig, logger *zap.Logger) *Producer {
	if len(cfg.Brokers) == 0 {
		return nil
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{}, // hash by key keeps per-entity ordering
		RequiredAcks: kafka.RequireOne,
		BatchTimeout: 100 * time.Millisecond,
	}

	logger.Info("event producer enabled",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic),
	)

	return &Producer{writer: writer, logger: logger}
}

// Publish sends one event keyed by entity id. Failures are logged, not
// surfaced: event publishing is best-effort and never blocks a request
// from succeeding.
func (p *Producer) Publish(ctx context.Context, eventType string, entityID int64, payload any) {
	if p == nil {
		return
	}

	evt := Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	value, err := json.Marshal(evt)
	if err != nil {
		p.logger.Error("marshalling event", zap.String("type", eventType), zap.Error(err))
		return
	}

	msg := kafka.Message{
		Key:   []byte(fmt.Sprintf("%d", entityID)),
		Value: value,
		Time:  evt.OccurredAt,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("publishing event failed",
			zap.String("type", eventType),
			zap.Int64("entity_id", entityID),
			zap.Error(err),
		)
	}
}

// Close flushes and closes the underlying writer.
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.writer.Close()
}
