package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/equipped-hq/tradein-service/internal/config"
	"github.com/equipped-hq/tradein-service/internal/logger"
)

const groupID = "tradein-events-consumer-group"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := logger.New()
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		GroupID:        groupID,
		Topic:          cfg.Kafka.Topic,
		MinBytes:       10e3,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		MaxWait:        3 * time.Second,
	})
	defer func() {
		if err := reader.Close(); err != nil {
			log.Error("failed to close reader", zap.Error(err))
		}
	}()

	log.Info("consumer started",
		zap.Strings("brokers", cfg.Kafka.Brokers),
		zap.String("topic", cfg.Kafka.Topic),
		zap.String("group_id", groupID))

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shutdown signal received, stopping consumer")
				return
			}
			log.Error("read failed", zap.Error(err))
			time.Sleep(5 * time.Second)
			continue
		}

		log.Info("trade-in event",
			zap.Time("timestamp", m.Time),
			zap.Int("partition", m.Partition),
			zap.Int64("offset", m.Offset),
			zap.ByteString("key", m.Key),
			zap.ByteString("value", m.Value))
	}
}
