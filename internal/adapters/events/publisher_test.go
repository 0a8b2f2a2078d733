package events_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/account-action-service/internal/adapters/events"
	"github.com/jsamuelsen11/account-action-service/internal/domain/audit"
	"github.com/jsamuelsen11/account-action-service/internal/platform/config"
	"github.com/jsamuelsen11/account-action-service/mocks"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
	hadDL  bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, w.hadDL = ctx.Deadline()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func savedRecord() audit.Record {
	return audit.Record{
		ID:         "rec-1",
		UserID:     42,
		EventType:  "REMOVE_LINKED_ACCOUNTS_FAILURE",
		Successful: false,
		Message:    "1 of 4 remove actions failed: delete-crm-user",
		EventUUID:  "corr-1",
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestAuditPublisher_PublishesPersistedRecord(t *testing.T) {
	t.Parallel()

	inner := mocks.NewMockAuditLog(t)
	inner.EXPECT().Create(mock.Anything, mock.Anything).Return(savedRecord(), nil)

	w := &fakeWriter{}
	p := events.NewAuditPublisher(inner, w, "account-audit-events", time.Second, nil)

	got, err := p.Create(context.Background(), audit.Record{UserID: 42})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got.ID != "rec-1" {
		t.Errorf("Create().ID = %q, want the persisted record", got.ID)
	}

	if len(w.msgs) != 1 {
		t.Fatalf("published %d messages, want 1", len(w.msgs))
	}
	msg := w.msgs[0]
	if string(msg.Key) != "42" {
		t.Errorf("Key = %q, want 42", msg.Key)
	}
	if len(msg.Headers) != 1 || msg.Headers[0].Key != "X-Correlation-ID" || string(msg.Headers[0].Value) != "corr-1" {
		t.Errorf("Headers = %v, want correlation id header", msg.Headers)
	}
	if !w.hadDL {
		t.Error("WriteMessages ctx had no deadline")
	}

	var ev events.Event
	if err := json.Unmarshal(msg.Value, &ev); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if ev.EventType != "REMOVE_LINKED_ACCOUNTS_FAILURE" || ev.Successful || ev.EventUUID != "corr-1" {
		t.Errorf("payload = %+v", ev)
	}
}

func TestAuditPublisher_AuditFailureSkipsPublish(t *testing.T) {
	t.Parallel()

	errDB := errors.New("disk full")
	inner := mocks.NewMockAuditLog(t)
	inner.EXPECT().Create(mock.Anything, mock.Anything).Return(audit.Record{}, errDB)

	w := &fakeWriter{}
	p := events.NewAuditPublisher(inner, w, "t", 0, nil)

	if _, err := p.Create(context.Background(), audit.Record{UserID: 1}); !errors.Is(err, errDB) {
		t.Errorf("Create() error = %v, want %v", err, errDB)
	}
	if len(w.msgs) != 0 {
		t.Errorf("published %d messages after failed audit write, want 0", len(w.msgs))
	}
}

func TestAuditPublisher_PublishFailureIsLoggedNotReturned(t *testing.T) {
	t.Parallel()

	inner := mocks.NewMockAuditLog(t)
	inner.EXPECT().Create(mock.Anything, mock.Anything).Return(savedRecord(), nil)

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	w := &fakeWriter{err: errors.New("broker unreachable")}
	p := events.NewAuditPublisher(inner, w, "account-audit-events", time.Second, logger)

	got, err := p.Create(context.Background(), audit.Record{UserID: 42})
	if err != nil {
		t.Fatalf("Create() error = %v, want nil", err)
	}
	if got.ID != "rec-1" {
		t.Errorf("Create().ID = %q", got.ID)
	}
	if !strings.Contains(buf.String(), "broker unreachable") {
		t.Errorf("log output = %q, want the publish error", buf.String())
	}
}

func TestAuditPublisher_PublishSurvivesCanceledRequest(t *testing.T) {
	t.Parallel()

	inner := mocks.NewMockAuditLog(t)
	inner.EXPECT().Create(mock.Anything, mock.Anything).Return(savedRecord(), nil)

	w := &fakeWriter{}
	p := events.NewAuditPublisher(inner, w, "t", time.Second, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Create(ctx, audit.Record{UserID: 42}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if len(w.msgs) != 1 {
		t.Errorf("published %d messages, want 1", len(w.msgs))
	}
}

func TestAuditPublisher_Close(t *testing.T) {
	t.Parallel()

	w := &fakeWriter{}
	p := events.NewAuditPublisher(mocks.NewMockAuditLog(t), w, "t", 0, nil)

	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !w.closed {
		t.Error("writer not closed")
	}
}

func TestNewKafkaWriter(t *testing.T) {
	t.Parallel()

	w := events.NewKafkaWriter(config.KafkaConfig{
		Brokers:      []string{"kafka-0:9092", "kafka-1:9092"},
		Topic:        "account-audit-events",
		WriteTimeout: 3 * time.Second,
	})
	t.Cleanup(func() { _ = w.Close() })

	if w.Topic != "account-audit-events" {
		t.Errorf("Topic = %q", w.Topic)
	}
	if w.Addr.String() != "kafka-0:9092,kafka-1:9092" {
		t.Errorf("Addr = %q", w.Addr.String())
	}
	if w.RequiredAcks != kafka.RequireAll {
		t.Errorf("RequiredAcks = %v, want RequireAll", w.RequiredAcks)
	}
	if w.WriteTimeout != 3*time.Second {
		t.Errorf("WriteTimeout = %v", w.WriteTimeout)
	}
}
