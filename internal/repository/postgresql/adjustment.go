package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type AdjustmentRepo struct {
	db db.DB
}

func NewAdjustmentRepo(db db.DB) *AdjustmentRepo {
	return &AdjustmentRepo{db: db}
}

func (r *AdjustmentRepo) CreateTx(ctx context.Context, tx db.Tx, adj *repository.ValueAdjustment) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO value_adjustments (
            id, trade_in_id, original_value, new_value, reason, status, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7)
    `, adj.ID, adj.TradeInID, adj.OriginalValue, adj.NewValue, adj.Reason,
		adj.Status, adj.CreatedAt)
	return err
}

func (r *AdjustmentRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.ValueAdjustment, error) {
	var adj repository.ValueAdjustment
	err := tx.Get(ctx, &adj, "SELECT * FROM value_adjustments WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &adj, nil
}

// GetByTradeInID returns the most recent adjustment for a trade-in.
func (r *AdjustmentRepo) GetByTradeInID(ctx context.Context, tradeInID string) (*repository.ValueAdjustment, error) {
	var adj repository.ValueAdjustment
	err := r.db.Get(ctx, &adj, `
        SELECT * FROM value_adjustments
        WHERE trade_in_id = $1
        ORDER BY created_at DESC
        LIMIT 1
    `, tradeInID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &adj, nil
}

func (r *AdjustmentRepo) GetOpenByTradeInIDTx(ctx context.Context, tx db.Tx, tradeInID string) (*repository.ValueAdjustment, error) {
	var adj repository.ValueAdjustment
	err := tx.Get(ctx, &adj, `
        SELECT * FROM value_adjustments
        WHERE trade_in_id = $1 AND status = 'pending_approval'
        LIMIT 1
    `, tradeInID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &adj, nil
}

func (r *AdjustmentRepo) UpdateTx(ctx context.Context, tx db.Tx, adj *repository.ValueAdjustment) error {
	_, err := tx.Exec(ctx, `
        UPDATE value_adjustments
        SET
            status = $1,
            reason = $2,
            resolved_at = $3
        WHERE id = $4
    `, adj.Status, adj.Reason, adj.ResolvedAt, adj.ID)
	return err
}
