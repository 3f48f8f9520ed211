package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type LabelRepo struct {
	db db.DB
}

func NewLabelRepo(db db.DB) *LabelRepo {
	return &LabelRepo{db: db}
}

func (r *LabelRepo) CreateTx(ctx context.Context, tx db.Tx, label *repository.ShippingLabel) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO shipping_labels (
            id, trade_in_id, tracking_number, carrier, label_url, created_at, expires_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, label.ID, label.TradeInID, label.TrackingNumber, label.Carrier,
		label.LabelURL, label.CreatedAt, label.ExpiresAt)
	return err
}

func (r *LabelRepo) GetByTradeInID(ctx context.Context, tradeInID string) (*repository.ShippingLabel, error) {
	var label repository.ShippingLabel
	err := r.db.Get(ctx, &label, "SELECT * FROM shipping_labels WHERE trade_in_id = $1", tradeInID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &label, nil
}

func (r *LabelRepo) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.ShippingLabel, error) {
	var label repository.ShippingLabel
	err := r.db.Get(ctx, &label, "SELECT * FROM shipping_labels WHERE tracking_number = $1", trackingNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &label, nil
}
