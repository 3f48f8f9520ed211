package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// WriterProducer publishes through a kafka-go writer.
type WriterProducer struct {
	writer *kafka.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			BatchTimeout: 100 * time.Millisecond,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	err := p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}
	return nil
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer logs messages instead of publishing. Used when no broker
// is configured, typically in local runs.
type ConsoleProducer struct{}

func NewConsoleProducer() Producer {
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	zap.L().Info("event (console producer)",
		zap.String("topic", topic),
		zap.ByteString("key", key),
		zap.ByteString("value", value))
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
