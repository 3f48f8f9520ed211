package repository

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	TaskStatusCreated    TaskStatus = "CREATED"
	TaskStatusProcessing TaskStatus = "PROCESSING"
	TaskStatusFailed     TaskStatus = "FAILED"
	TaskStatusDone       TaskStatus = "DONE"
)

type OutboxTask struct {
	ID        uuid.UUID       `db:"id"`
	Status    TaskStatus      `db:"status"`
	Topic     string          `db:"topic"`
	Payload   json.RawMessage `db:"payload"`
	Attempts  int             `db:"attempts"`
	LastError *string         `db:"last_error"`
	CreatedAt time.Time       `db:"created_at"`
	UpdatedAt time.Time       `db:"updated_at"`
	DoneAt    *time.Time      `db:"done_at"`
}
