// Package events publishes persisted audit records to Kafka so downstream
// consumers can react to account actions without polling the audit log.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
	"github.com/jsamuelsen11/account-action-service/internal/platform/config"
	"github.com/jsamuelsen11/account-action-service/internal/ports"
)

const headerCorrelationID = "X-Correlation-ID"

const defaultWriteTimeout = 10 * time.Second

// MessageWriter is the subset of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Compile-time interface check.
var _ ports.AuditLog = (*AuditPublisher)(nil)

// AuditPublisher decorates an audit log: every record that is persisted is
// also published as a JSON event. Publishing is best-effort; a failed write
// is logged and never fails the audit write it follows.
type AuditPublisher struct {
	next    ports.AuditLog
	writer  MessageWriter
	topic   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewKafkaWriter builds the writer for cfg. Writes wait for all in-sync
// replicas.
func NewKafkaWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: cfg.WriteTimeout,
	}
}

// NewAuditPublisher wraps next so that created records are sent through
// writer. The timeout bounds each publish; zero uses a default.
func NewAuditPublisher(next ports.AuditLog, writer MessageWriter, topic string, timeout time.Duration, logger *slog.Logger) *AuditPublisher {
	if timeout <= 0 {
		timeout = defaultWriteTimeout
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuditPublisher{
		next:    next,
		writer:  writer,
		topic:   topic,
		timeout: timeout,
		logger:  logger,
	}
}

// Create persists r through the wrapped audit log and then publishes it.
func (p *AuditPublisher) Create(ctx context.Context, r audit.Record) (audit.Record, error) {
	saved, err := p.next.Create(ctx, r)
	if err != nil {
		return saved, err
	}

	if err := p.publish(ctx, saved); err != nil {
		p.logger.WarnContext(ctx, "audit event not published",
			slog.String("operation", "AuditPublisher.Create"),
			slog.String("topic", p.topic),
			slog.String("audit_id", saved.ID),
			slog.Any("error", err),
		)
	}
	return saved, nil
}

// Close flushes and closes the underlying writer.
func (p *AuditPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("closing kafka writer: %w", err)
	}
	return nil
}

func (p *AuditPublisher) publish(ctx context.Context, r audit.Record) error {
	msg, err := newMessage(r)
	if err != nil {
		return err
	}

	// The request may finish before the broker acknowledges.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing to %s: %w", p.topic, err)
	}
	return nil
}

// Event is the JSON payload published for each audit record.
type Event struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"user_id"`
	EventType  string    `json:"event_type"`
	Successful bool      `json:"successful"`
	Message    string    `json:"message,omitempty"`
	EventUUID  string    `json:"event_uuid"`
	CreatedAt  time.Time `json:"created_at"`
}

// newMessage keys the message by user so one user's events stay ordered
// within a partition.
func newMessage(r audit.Record) (kafka.Message, error) {
	body, err := json.Marshal(Event{
		ID:         r.ID,
		UserID:     r.UserID,
		EventType:  r.EventType.String(),
		Successful: r.Successful,
		Message:    r.Message,
		EventUUID:  r.EventUUID,
		CreatedAt:  r.CreatedAt,
	})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encoding audit event: %w", err)
	}

	return kafka.Message{
		Key:   []byte(strconv.FormatInt(r.UserID, 10)),
		Value: body,
		Time:  r.CreatedAt,
		Headers: []kafka.Header{
			{Key: headerCorrelationID, Value: []byte(r.EventUUID)},
		},
	}, nil
}
