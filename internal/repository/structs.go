package repository

import (
	"errors"
	"time"
)

var ErrObjectNotFound = errors.New("not found")

type TradeIn struct {
	ID             string     `db:"id"`
	Serial         string     `db:"serial"`
	Model          string     `db:"model"`
	Year           string     `db:"year"`
	Color          string     `db:"color"`
	ConditionGrade string     `db:"condition_grade"`
	EstimatedValue int        `db:"estimated_value"`
	FinalValue     *int       `db:"final_value"`
	ValuationID    string     `db:"valuation_id"`
	Status         string     `db:"status"`
	CreditAmount   *int       `db:"credit_amount"`
	CreditedAt     *time.Time `db:"credited_at"`
	ExpiresAt      time.Time  `db:"expires_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

type ShippingLabel struct {
	ID             string    `db:"id"`
	TradeInID      string    `db:"trade_in_id"`
	TrackingNumber string    `db:"tracking_number"`
	Carrier        string    `db:"carrier"`
	LabelURL       string    `db:"label_url"`
	CreatedAt      time.Time `db:"created_at"`
	ExpiresAt      time.Time `db:"expires_at"`
}

type TrackingEvent struct {
	ID             int64     `db:"id"`
	TrackingNumber string    `db:"tracking_number"`
	Status         string    `db:"status"`
	Location       string    `db:"location"`
	Description    string    `db:"description"`
	OccurredAt     time.Time `db:"occurred_at"`
}

type Inspection struct {
	ID               string    `db:"id"`
	TradeInID        string    `db:"trade_in_id"`
	ActualCondition  string    `db:"actual_condition"`
	EstimatedValue   int       `db:"estimated_value"`
	FinalValue       int       `db:"final_value"`
	AdjustmentReason *string   `db:"adjustment_reason"`
	Inspector        *string   `db:"inspector"`
	RequiresApproval bool      `db:"requires_approval"`
	InspectedAt      time.Time `db:"inspected_at"`
}

type ValueAdjustment struct {
	ID            string     `db:"id"`
	TradeInID     string     `db:"trade_in_id"`
	OriginalValue int        `db:"original_value"`
	NewValue      int        `db:"new_value"`
	Reason        string     `db:"reason"`
	Status        string     `db:"status"`
	CreatedAt     time.Time  `db:"created_at"`
	ResolvedAt    *time.Time `db:"resolved_at"`
}
