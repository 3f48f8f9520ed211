package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type OutboxTaskRepository interface {
	GetProcessableTasks(ctx context.Context, tx db.Tx, batchSize, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatus(ctx context.Context, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, doneAt *time.Time) error
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, doneAt *time.Time) error
}

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher drains the transactional outbox into Kafka. Events land in the
// outbox in the same transaction as the state change that caused them, so a
// crash between commit and publish only delays delivery.
type Publisher struct {
	db       db.DB
	repo     OutboxTaskRepository
	producer Producer
	config   PublisherConfig
	logger   *zap.Logger

	wg       sync.WaitGroup
	stopCh   chan struct{}
	stopOnce sync.Once
}

func NewPublisher(db db.DB, repo OutboxTaskRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	return &Publisher{
		db:       db,
		repo:     repo,
		producer: producer,
		config:   config,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("outbox publisher started",
		zap.Duration("poll_interval", p.config.PollInterval),
		zap.Int("batch_size", p.config.BatchSize))

	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := p.publishBatch(ctx); err != nil {
				p.logger.Error("outbox batch failed", zap.Error(err))
			}
		case <-p.stopCh:
			return
		case <-ctx.Done():
			p.Shutdown()
			return
		}
	}
}

// Shutdown waits for the in-flight batch and closes the producer. Safe to
// call more than once.
func (p *Publisher) Shutdown() {
	p.stopOnce.Do(func() {
		close(p.stopCh)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.logger.Info("outbox publisher stopped")
		case <-shutdownCtx.Done():
			p.logger.Warn("outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			p.logger.Error("failed to close producer", zap.Error(err))
		}
	})
}

// publishBatch claims a batch of CREATED tasks (FOR UPDATE SKIP LOCKED, so
// concurrent publishers never double-send), marks them PROCESSING, then
// publishes each outside the claim transaction.
func (p *Publisher) publishBatch(ctx context.Context) error {
	tx, err := p.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin claim transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	tasks, err := p.repo.GetProcessableTasks(ctx, tx, p.config.BatchSize, p.config.MaxAttempts)
	if err != nil {
		return fmt.Errorf("fetch processable tasks: %w", err)
	}
	if len(tasks) == 0 {
		return tx.Commit(ctx)
	}

	for _, task := range tasks {
		if err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil); err != nil {
			return fmt.Errorf("mark task %s processing: %w", task.ID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit claim transaction: %w", err)
	}

	p.logger.Debug("claimed outbox tasks", zap.Int("count", len(tasks)))

	for _, task := range tasks {
		select {
		case <-p.stopCh:
			return errors.New("publisher stopped mid-batch")
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := p.publishTask(ctx, task); err != nil {
			p.logger.Error("task publish failed", zap.String("task_id", task.ID.String()), zap.Error(err))
		}
	}

	return nil
}

func (p *Publisher) publishTask(ctx context.Context, task *repository.OutboxTask) error {
	err := p.producer.SendMessage(ctx, task.Topic, []byte(task.ID.String()), task.Payload)
	if err != nil {
		attempts := task.Attempts + 1
		errMsg := err.Error()

		if attempts >= p.config.MaxAttempts {
			p.logger.Warn("task exhausted retries",
				zap.String("task_id", task.ID.String()),
				zap.Int("attempts", attempts))
		}

		if updateErr := p.repo.UpdateTaskStatus(ctx, task.ID, repository.TaskStatusFailed, attempts, &errMsg, nil); updateErr != nil {
			return fmt.Errorf("record task failure: %w", updateErr)
		}
		return err
	}

	now := time.Now().UTC()
	if err := p.repo.UpdateTaskStatus(ctx, task.ID, repository.TaskStatusDone, task.Attempts, nil, &now); err != nil {
		return fmt.Errorf("mark task done: %w", err)
	}

	return nil
}
