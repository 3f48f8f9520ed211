package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type InspectionRepo struct {
	db db.DB
}

func NewInspectionRepo(db db.DB) *InspectionRepo {
	return &InspectionRepo{db: db}
}

func (r *InspectionRepo) CreateTx(ctx context.Context, tx db.Tx, inspection *repository.Inspection) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO inspections (
            id, trade_in_id, actual_condition, estimated_value, final_value,
            adjustment_reason, inspector, requires_approval, inspected_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    `, inspection.ID, inspection.TradeInID, inspection.ActualCondition,
		inspection.EstimatedValue, inspection.FinalValue, inspection.AdjustmentReason,
		inspection.Inspector, inspection.RequiresApproval, inspection.InspectedAt)
	return err
}

func (r *InspectionRepo) GetByTradeInID(ctx context.Context, tradeInID string) (*repository.Inspection, error) {
	var inspection repository.Inspection
	err := r.db.Get(ctx, &inspection, "SELECT * FROM inspections WHERE trade_in_id = $1", tradeInID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &inspection, nil
}

func (r *InspectionRepo) GetByTradeInIDTx(ctx context.Context, tx db.Tx, tradeInID string) (*repository.Inspection, error) {
	var inspection repository.Inspection
	err := tx.Get(ctx, &inspection, "SELECT * FROM inspections WHERE trade_in_id = $1", tradeInID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &inspection, nil
}
