package postgresql

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type OutboxTaskRepo struct {
	db db.DB
}

func NewOutboxTaskRepo(db db.DB) *OutboxTaskRepo {
	return &OutboxTaskRepo{db: db}
}

// CreateTaskTx enqueues an event inside the caller's transaction so the event
// is only published if the owning state change commits.
func (r *OutboxTaskRepo) CreateTaskTx(ctx context.Context, tx db.Tx, topic string, payload json.RawMessage) error {
	now := time.Now().UTC()
	_, err := tx.Exec(ctx, `
        INSERT INTO outbox_tasks (id, status, topic, payload, attempts, created_at, updated_at)
        VALUES ($1, $2, $3, $4, 0, $5, $5)
    `, uuid.New(), repository.TaskStatusCreated, topic, payload, now)
	return err
}

func (r *OutboxTaskRepo) CreateTask(ctx context.Context, topic string, payload json.RawMessage) error {
	now := time.Now().UTC()
	_, err := r.db.Exec(ctx, `
        INSERT INTO outbox_tasks (id, status, topic, payload, attempts, created_at, updated_at)
        VALUES ($1, $2, $3, $4, 0, $5, $5)
    `, uuid.New(), repository.TaskStatusCreated, topic, payload, now)
	return err
}

// GetProcessableTasks picks up new tasks and failed tasks still under the
// attempt limit, oldest first. SKIP LOCKED keeps concurrent publishers from
// grabbing the same batch.
func (r *OutboxTaskRepo) GetProcessableTasks(ctx context.Context, tx db.Tx, batchSize, maxAttempts int) ([]*repository.OutboxTask, error) {
	query := `
        SELECT * FROM outbox_tasks
        WHERE status IN ('CREATED', 'FAILED') AND attempts < $2
        ORDER BY created_at ASC
        LIMIT $1
        FOR UPDATE SKIP LOCKED
    `
	var tasks []*repository.OutboxTask
	err := tx.Select(ctx, &tasks, query, batchSize, maxAttempts)
	return tasks, err
}

func (r *OutboxTaskRepo) UpdateTaskStatus(ctx context.Context, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, doneAt *time.Time) error {
	_, err := r.db.Exec(ctx, updateTaskStatusQuery, status, attempts, lastError, doneAt, time.Now().UTC(), id)
	return err
}

func (r *OutboxTaskRepo) UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, doneAt *time.Time) error {
	_, err := tx.Exec(ctx, updateTaskStatusQuery, status, attempts, lastError, doneAt, time.Now().UTC(), id)
	return err
}

const updateTaskStatusQuery = `
        UPDATE outbox_tasks
        SET
            status = $1,
            attempts = $2,
            last_error = $3,
            done_at = $4,
            updated_at = $5
        WHERE id = $6
    `
