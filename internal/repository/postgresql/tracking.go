package postgresql

import (
	"context"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type TrackingRepo struct {
	db db.DB
}

func NewTrackingRepo(db db.DB) *TrackingRepo {
	return &TrackingRepo{db: db}
}

func (r *TrackingRepo) Create(ctx context.Context, event *repository.TrackingEvent) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO tracking_events (tracking_number, status, location, description, occurred_at)
        VALUES ($1, $2, $3, $4, $5)
    `, event.TrackingNumber, event.Status, event.Location, event.Description, event.OccurredAt)
	return err
}

// GetByTrackingNumber returns the event timeline newest-first.
func (r *TrackingRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) ([]*repository.TrackingEvent, error) {
	query := `
        SELECT * FROM tracking_events
        WHERE tracking_number = $1
        ORDER BY occurred_at DESC, id DESC
    `
	var events []*repository.TrackingEvent
	err := r.db.Select(ctx, &events, query, trackingNumber)
	return events, err
}
