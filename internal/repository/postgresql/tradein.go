package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
)

type TradeInRepo struct {
	db db.DB
}

func NewTradeInRepo(db db.DB) *TradeInRepo {
	return &TradeInRepo{db: db}
}

func (r *TradeInRepo) CreateTx(ctx context.Context, tx db.Tx, item *repository.TradeIn) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO trade_ins (
            id, serial, model, year, color, condition_grade, estimated_value,
            final_value, valuation_id, status, expires_at, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
    `, item.ID, item.Serial, item.Model, item.Year, item.Color, item.ConditionGrade,
		item.EstimatedValue, item.FinalValue, item.ValuationID, item.Status,
		item.ExpiresAt, item.CreatedAt, item.UpdatedAt)
	return err
}

func (r *TradeInRepo) GetByID(ctx context.Context, id string) (*repository.TradeIn, error) {
	var item repository.TradeIn
	err := r.db.Get(ctx, &item, "SELECT * FROM trade_ins WHERE id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

// GetByIDTx locks the row for the duration of the transaction so concurrent
// lifecycle mutations serialize per trade-in.
func (r *TradeInRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.TradeIn, error) {
	var item repository.TradeIn
	err := tx.Get(ctx, &item, "SELECT * FROM trade_ins WHERE id = $1 FOR UPDATE", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *TradeInRepo) UpdateTx(ctx context.Context, tx db.Tx, item *repository.TradeIn) error {
	_, err := tx.Exec(ctx, updateTradeInQuery,
		item.Serial, item.Model, item.Year, item.Color, item.ConditionGrade,
		item.EstimatedValue, item.FinalValue, item.Status, item.CreditAmount,
		item.CreditedAt, item.UpdatedAt, item.ID)
	return err
}

const updateTradeInQuery = `
        UPDATE trade_ins
        SET
            serial = $1,
            model = $2,
            year = $3,
            color = $4,
            condition_grade = $5,
            estimated_value = $6,
            final_value = $7,
            status = $8,
            credit_amount = $9,
            credited_at = $10,
            updated_at = $11
        WHERE id = $12
    `

func (r *TradeInRepo) GetAllActive(ctx context.Context) ([]*repository.TradeIn, error) {
	query := `
        SELECT * FROM trade_ins
        WHERE status NOT IN ('credited', 'disputed')
        ORDER BY created_at ASC
    `
	var items []*repository.TradeIn
	err := r.db.Select(ctx, &items, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active trade-ins: %w", err)
	}
	return items, nil
}
