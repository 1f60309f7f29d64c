package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/wipetrack/erasure-api/internal/logger"
	"github.com/wipetrack/erasure-api/internal/models"
	"github.com/wipetrack/erasure-api/internal/timeutil"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher publishes account mutation events to Kafka. Publishing is
// best-effort: a missing writer or a broker failure is logged and never
// fails the originating request.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a Publisher. writer may be nil when auditing is
// disabled.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

// Publish emits one audit event keyed by email. OccurredAt uses the
// canonical wire timestamp format.
func (p *Publisher) Publish(ctx context.Context, eventType, email, detail string) {
	if p.writer == nil {
		logger.Log.Warnw("audit writer not configured, skipping event", "event_type", eventType, "email", email)
		return
	}

	event := models.AuditEvent{
		EventID:    uuid.NewString(),
		EventType:  eventType,
		Email:      email,
		OccurredAt: timeutil.Format(time.Now()),
		Detail:     detail,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal audit event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(email),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish audit event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("audit event published", "event_id", event.EventID, "event_type", eventType)
}
