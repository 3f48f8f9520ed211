package server

import (
	"context"
	"encoding/json"
	"fmt"
)

type OutboxWriter interface {
	CreateTask(ctx context.Context, topic string, payload json.RawMessage) error
}

// OutboxSink stores audit batches as outbox tasks so they ride the same
// Kafka pipeline as lifecycle events.
type OutboxSink struct {
	repo  OutboxWriter
	topic string
}

func NewOutboxSink(repo OutboxWriter, topic string) *OutboxSink {
	return &OutboxSink{repo: repo, topic: topic}
}

func (s *OutboxSink) WriteBatch(ctx context.Context, entries []AuditLogEntry) error {
	for _, entry := range entries {
		payload, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal audit entry: %w", err)
		}
		if err := s.repo.CreateTask(ctx, s.topic, payload); err != nil {
			return fmt.Errorf("failed to enqueue audit entry: %w", err)
		}
	}
	return nil
}
