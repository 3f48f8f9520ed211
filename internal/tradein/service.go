//go:generate mockgen -source ./service.go -destination=./mocks/service.go -package=mock_tradein
package tradein

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/equipped-hq/tradein-service/internal/db"
	"github.com/equipped-hq/tradein-service/internal/repository"
	"github.com/equipped-hq/tradein-service/internal/shipping"
	"github.com/equipped-hq/tradein-service/internal/valuation"
)

const tradeInValidity = 30 * 24 * time.Hour

type TradeInRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, item *repository.TradeIn) error
	GetByID(ctx context.Context, id string) (*repository.TradeIn, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.TradeIn, error)
	UpdateTx(ctx context.Context, tx db.Tx, item *repository.TradeIn) error
	GetAllActive(ctx context.Context) ([]*repository.TradeIn, error)
}

type LabelRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, label *repository.ShippingLabel) error
	GetByTradeInID(ctx context.Context, tradeInID string) (*repository.ShippingLabel, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*repository.ShippingLabel, error)
}

type TrackingRepository interface {
	Create(ctx context.Context, event *repository.TrackingEvent) error
	GetByTrackingNumber(ctx context.Context, trackingNumber string) ([]*repository.TrackingEvent, error)
}

type InspectionRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, inspection *repository.Inspection) error
	GetByTradeInID(ctx context.Context, tradeInID string) (*repository.Inspection, error)
	GetByTradeInIDTx(ctx context.Context, tx db.Tx, tradeInID string) (*repository.Inspection, error)
}

type AdjustmentRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, adj *repository.ValueAdjustment) error
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.ValueAdjustment, error)
	GetByTradeInID(ctx context.Context, tradeInID string) (*repository.ValueAdjustment, error)
	GetOpenByTradeInIDTx(ctx context.Context, tx db.Tx, tradeInID string) (*repository.ValueAdjustment, error)
	UpdateTx(ctx context.Context, tx db.Tx, adj *repository.ValueAdjustment) error
}

type OutboxRepository interface {
	CreateTaskTx(ctx context.Context, tx db.Tx, topic string, payload json.RawMessage) error
}

type Cache interface {
	Get(tradeInID string) (*repository.TradeIn, bool)
	Set(item *repository.TradeIn)
}

type TxBeginner interface {
	BeginTx(ctx context.Context) (db.Tx, error)
}

// Controller owns the trade-in lifecycle. Every mutation runs in a
// transaction that locks the trade-in row, so concurrent operations on the
// same trade-in serialize instead of clobbering each other.
type Controller struct {
	db          TxBeginner
	tradeIns    TradeInRepository
	labels      LabelRepository
	tracking    TrackingRepository
	inspections InspectionRepository
	adjustments AdjustmentRepository
	outbox      OutboxRepository
	carrier     shipping.Carrier
	valuations  valuation.Store
	cache       Cache

	eventTopic string
	now        func() time.Time
	logger     *zap.Logger
}

type ControllerOption func(*Controller)

func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

func WithCache(cache Cache) ControllerOption {
	return func(c *Controller) { c.cache = cache }
}

func NewController(
	txer TxBeginner,
	tradeIns TradeInRepository,
	labels LabelRepository,
	tracking TrackingRepository,
	inspections InspectionRepository,
	adjustments AdjustmentRepository,
	outbox OutboxRepository,
	carrier shipping.Carrier,
	valuations valuation.Store,
	eventTopic string,
	logger *zap.Logger,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		db:          txer,
		tradeIns:    tradeIns,
		labels:      labels,
		tracking:    tracking,
		inspections: inspections,
		adjustments: adjustments,
		outbox:      outbox,
		carrier:     carrier,
		valuations:  valuations,
		eventTopic:  eventTopic,
		now:         time.Now,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateFromValuation is the only path that creates a trade-in. The
// valuation must still be live; its grade and estimate are copied onto the
// new record.
func (c *Controller) CreateFromValuation(ctx context.Context, valuationID string) (*repository.TradeIn, error) {
	if valuationID == "" {
		return nil, validationErr("valuation_id", "is required")
	}

	v, err := c.valuations.Get(ctx, valuationID)
	if err != nil {
		if errors.Is(err, valuation.ErrValuationNotFound) {
			return nil, validationErr("valuation_id", "does not resolve to a live valuation")
		}
		return nil, fmt.Errorf("failed to load valuation %s: %w", valuationID, err)
	}

	now := c.now().UTC()
	if now.After(v.ExpiresAt) {
		return nil, validationErr("valuation_id", "refers to an expired valuation")
	}

	item := &repository.TradeIn{
		ID:             newID("TI", now),
		Serial:         v.Serial,
		Model:          v.Model,
		ConditionGrade: string(v.Grade),
		EstimatedValue: v.EstimatedValue,
		ValuationID:    valuationID,
		Status:         string(StatusQuote),
		ExpiresAt:      now.Add(tradeInValidity),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if v.Device != nil {
		item.Year = v.Device.Year
		item.Color = v.Device.Color
	}

	err = c.inTx(ctx, func(tx db.Tx) error {
		if err := c.tradeIns.CreateTx(ctx, tx, item); err != nil {
			return fmt.Errorf("failed to create trade-in: %w", err)
		}
		return c.emitTx(ctx, tx, StatusChangedEvent{
			Type:      "tradein.created",
			TradeInID: item.ID,
			NewStatus: item.Status,
			At:        now,
		})
	})
	if err != nil {
		return nil, err
	}

	c.cacheSet(item)
	c.logger.Info("trade-in created",
		zap.String("trade_in_id", item.ID),
		zap.String("valuation_id", valuationID))
	return item, nil
}

// GenerateLabel issues a prepaid shipping label and advances the trade-in to
// label_sent. Calling it again for the same trade-in returns the existing
// label unchanged.
func (c *Controller) GenerateLabel(ctx context.Context, tradeInID string) (*repository.ShippingLabel, error) {
	var label *repository.ShippingLabel

	err := c.inTx(ctx, func(tx db.Tx) error {
		item, err := c.getForUpdate(ctx, tx, tradeInID)
		if err != nil {
			return err
		}

		if Status(item.Status) != StatusQuote {
			existing, err := c.labels.GetByTradeInID(ctx, tradeInID)
			if err == nil {
				label = existing
				return nil
			}
			return invalidStateErr("generate label", Status(item.Status))
		}

		issued, err := c.carrier.IssueLabel(ctx, tradeInID)
		if err != nil {
			return fmt.Errorf("%w: carrier refused label for %s: %v", ErrUpstream, tradeInID, err)
		}

		label = &repository.ShippingLabel{
			ID:             issued.ID,
			TradeInID:      tradeInID,
			TrackingNumber: issued.TrackingNumber,
			Carrier:        issued.Carrier,
			LabelURL:       issued.LabelURL,
			CreatedAt:      issued.CreatedAt,
			ExpiresAt:      issued.ExpiresAt,
		}
		if err := c.labels.CreateTx(ctx, tx, label); err != nil {
			return fmt.Errorf("failed to persist label: %w", err)
		}

		if err := c.transitionTx(ctx, tx, item, StatusLabelSent, ""); err != nil {
			return err
		}
		c.cacheSet(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return label, nil
}

// GetTracking relays the carrier's view of a shipment, persists any events
// not yet stored, and folds carrier progress into the trade-in status. When
// the carrier is unreachable the stored timeline is served instead.
func (c *Controller) GetTracking(ctx context.Context, trackingNumber string) (*shipping.Tracking, error) {
	label, err := c.labels.GetByTrackingNumber(ctx, trackingNumber)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: tracking number %s", ErrNotFound, trackingNumber)
		}
		return nil, err
	}

	tracking, err := c.carrier.Track(ctx, trackingNumber)
	if err != nil {
		c.logger.Warn("carrier tracking unavailable, serving stored timeline",
			zap.String("tracking_number", trackingNumber), zap.Error(err))
		return c.storedTracking(ctx, label)
	}

	if err := c.persistNewEvents(ctx, tracking); err != nil {
		c.logger.Warn("failed to persist tracking events", zap.Error(err))
	}

	if err := c.advanceShipment(ctx, label.TradeInID, tracking.Status); err != nil {
		c.logger.Warn("failed to advance trade-in from tracking",
			zap.String("trade_in_id", label.TradeInID), zap.Error(err))
	}

	return tracking, nil
}

// RecordInspection stores the one and only inspection for a received device.
// A final value differing from the quote must carry a reason and always
// requires customer approval.
func (c *Controller) RecordInspection(ctx context.Context, tradeInID string, req InspectionRequest) (*repository.Inspection, error) {
	grade := valuation.Grade(req.ActualCondition)
	if !grade.Valid() {
		return nil, validationErr("actual_condition", "must be one of excellent, good, fair, poor")
	}
	if req.FinalValue < 0 {
		return nil, validationErr("final_value", "must not be negative")
	}
	if req.FinalValue != req.EstimatedValue {
		if req.AdjustmentReason == "" {
			return nil, validationErr("adjustment_reason", "is required when final value differs from the estimate")
		}
		req.RequiresApproval = true
	}

	var inspection *repository.Inspection

	err := c.inTx(ctx, func(tx db.Tx) error {
		item, err := c.getForUpdate(ctx, tx, tradeInID)
		if err != nil {
			return err
		}

		status := Status(item.Status)
		if status != StatusReceived && status != StatusInspecting {
			return invalidStateErr("record inspection", status)
		}

		if _, err := c.inspections.GetByTradeInIDTx(ctx, tx, tradeInID); err == nil {
			return fmt.Errorf("%w: trade-in %s is already inspected", ErrInvalidState, tradeInID)
		} else if !errors.Is(err, repository.ErrObjectNotFound) {
			return err
		}

		now := c.now().UTC()
		inspection = &repository.Inspection{
			ID:               newID("INS", now),
			TradeInID:        tradeInID,
			ActualCondition:  string(grade),
			EstimatedValue:   req.EstimatedValue,
			FinalValue:       req.FinalValue,
			RequiresApproval: req.RequiresApproval,
			InspectedAt:      now,
		}
		if req.AdjustmentReason != "" {
			inspection.AdjustmentReason = &req.AdjustmentReason
		}
		if req.Inspector != "" {
			inspection.Inspector = &req.Inspector
		}
		if err := c.inspections.CreateTx(ctx, tx, inspection); err != nil {
			return fmt.Errorf("failed to persist inspection: %w", err)
		}

		item.FinalValue = &req.FinalValue
		if status == StatusReceived {
			if err := c.transitionTx(ctx, tx, item, StatusInspecting, ""); err != nil {
				return err
			}
		} else {
			item.UpdatedAt = now
			if err := c.tradeIns.UpdateTx(ctx, tx, item); err != nil {
				return fmt.Errorf("failed to update trade-in: %w", err)
			}
		}
		c.cacheSet(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return inspection, nil
}

// CreateAdjustment opens a value adjustment for customer approval. Requires
// an inspection flagged requires_approval and no other open adjustment.
func (c *Controller) CreateAdjustment(ctx context.Context, tradeInID string, req AdjustmentRequest) (*repository.ValueAdjustment, error) {
	if req.Reason == "" {
		return nil, validationErr("reason", "is required")
	}
	if req.NewValue < 0 {
		return nil, validationErr("new_value", "must not be negative")
	}

	var adj *repository.ValueAdjustment

	err := c.inTx(ctx, func(tx db.Tx) error {
		item, err := c.getForUpdate(ctx, tx, tradeInID)
		if err != nil {
			return err
		}
		if Status(item.Status) != StatusInspecting {
			return invalidStateErr("create adjustment", Status(item.Status))
		}

		inspection, err := c.inspections.GetByTradeInIDTx(ctx, tx, tradeInID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return fmt.Errorf("%w: trade-in %s has no recorded inspection", ErrInvalidState, tradeInID)
			}
			return err
		}
		if !inspection.RequiresApproval {
			return fmt.Errorf("%w: inspection of %s does not require approval", ErrInvalidState, tradeInID)
		}

		if _, err := c.adjustments.GetOpenByTradeInIDTx(ctx, tx, tradeInID); err == nil {
			return fmt.Errorf("%w: trade-in %s already has a pending adjustment", ErrInvalidState, tradeInID)
		} else if !errors.Is(err, repository.ErrObjectNotFound) {
			return err
		}

		now := c.now().UTC()
		adj = &repository.ValueAdjustment{
			ID:            newID("ADJ", now),
			TradeInID:     tradeInID,
			OriginalValue: req.OriginalValue,
			NewValue:      req.NewValue,
			Reason:        req.Reason,
			Status:        AdjustmentPendingApproval,
			CreatedAt:     now,
		}
		if err := c.adjustments.CreateTx(ctx, tx, adj); err != nil {
			return fmt.Errorf("failed to persist adjustment: %w", err)
		}

		return c.emitTx(ctx, tx, StatusChangedEvent{
			Type:      "tradein.adjustment_created",
			TradeInID: tradeInID,
			NewStatus: item.Status,
			Reason:    req.Reason,
			At:        now,
		})
	})
	if err != nil {
		return nil, err
	}
	return adj, nil
}

// AcceptAdjustment approves the adjustment and applies the adjusted credit
// in the same transaction, leaving the trade-in credited.
func (c *Controller) AcceptAdjustment(ctx context.Context, tradeInID, adjustmentID string) (*repository.TradeIn, error) {
	var item *repository.TradeIn

	err := c.inTx(ctx, func(tx db.Tx) error {
		var err error
		item, err = c.getForUpdate(ctx, tx, tradeInID)
		if err != nil {
			return err
		}

		adj, err := c.lockAdjustment(ctx, tx, tradeInID, adjustmentID)
		if err != nil {
			return err
		}

		now := c.now().UTC()
		adj.Status = AdjustmentApproved
		adj.ResolvedAt = &now
		if err := c.adjustments.UpdateTx(ctx, tx, adj); err != nil {
			return fmt.Errorf("failed to update adjustment: %w", err)
		}

		amount := adj.NewValue
		item.CreditAmount = &amount
		item.CreditedAt = &now
		item.FinalValue = &amount
		if err := c.transitionTx(ctx, tx, item, StatusCredited, "adjustment accepted"); err != nil {
			return err
		}
		c.cacheSet(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DisputeAdjustment marks the adjustment disputed and parks the trade-in in
// the disputed terminal state for manual resolution.
func (c *Controller) DisputeAdjustment(ctx context.Context, tradeInID, adjustmentID, reason string) (*repository.TradeIn, error) {
	if reason == "" {
		return nil, validationErr("reason", "is required")
	}

	var item *repository.TradeIn

	err := c.inTx(ctx, func(tx db.Tx) error {
		var err error
		item, err = c.getForUpdate(ctx, tx, tradeInID)
		if err != nil {
			return err
		}

		adj, err := c.lockAdjustment(ctx, tx, tradeInID, adjustmentID)
		if err != nil {
			return err
		}

		now := c.now().UTC()
		adj.Status = AdjustmentDisputed
		adj.ResolvedAt = &now
		if err := c.adjustments.UpdateTx(ctx, tx, adj); err != nil {
			return fmt.Errorf("failed to update adjustment: %w", err)
		}

		if err := c.transitionTx(ctx, tx, item, StatusDisputed, reason); err != nil {
			return err
		}
		c.cacheSet(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ApplyCredit settles a trade-in whose inspection needed no adjustment. It
// is idempotent: crediting an already-credited trade-in returns the recorded
// credit untouched.
func (c *Controller) ApplyCredit(ctx context.Context, tradeInID string, amount int) (*repository.TradeIn, error) {
	if amount <= 0 {
		return nil, validationErr("amount", "must be positive")
	}

	var item *repository.TradeIn

	err := c.inTx(ctx, func(tx db.Tx) error {
		var err error
		item, err = c.getForUpdate(ctx, tx, tradeInID)
		if err != nil {
			return err
		}

		if Status(item.Status) == StatusCredited {
			return nil
		}
		if Status(item.Status) != StatusInspecting {
			return invalidStateErr("apply credit", Status(item.Status))
		}

		if _, err := c.adjustments.GetOpenByTradeInIDTx(ctx, tx, tradeInID); err == nil {
			return fmt.Errorf("%w: trade-in %s has a pending adjustment that must be resolved first", ErrInvalidState, tradeInID)
		} else if !errors.Is(err, repository.ErrObjectNotFound) {
			return err
		}

		now := c.now().UTC()
		item.CreditAmount = &amount
		item.CreditedAt = &now
		item.FinalValue = &amount
		if err := c.transitionTx(ctx, tx, item, StatusCredited, ""); err != nil {
			return err
		}
		c.cacheSet(item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Get returns the full nested aggregate for a trade-in.
func (c *Controller) Get(ctx context.Context, tradeInID string) (*Details, error) {
	item, cached := c.cacheGet(tradeInID)
	if !cached {
		var err error
		item, err = c.tradeIns.GetByID(ctx, tradeInID)
		if err != nil {
			if errors.Is(err, repository.ErrObjectNotFound) {
				return nil, fmt.Errorf("%w: trade-in %s", ErrNotFound, tradeInID)
			}
			return nil, err
		}
		c.cacheSet(item)
	}

	details := &Details{TradeIn: item}

	label, err := c.labels.GetByTradeInID(ctx, tradeInID)
	if err == nil {
		details.Label = label
		if tracking, err := c.storedTracking(ctx, label); err == nil && len(tracking.Events) > 0 {
			details.Tracking = tracking
		}
	} else if !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, err
	}

	inspection, err := c.inspections.GetByTradeInID(ctx, tradeInID)
	if err == nil {
		details.Inspection = inspection
	} else if !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, err
	}

	adj, err := c.adjustments.GetByTradeInID(ctx, tradeInID)
	if err == nil {
		details.Adjustment = adj
	} else if !errors.Is(err, repository.ErrObjectNotFound) {
		return nil, err
	}

	return details, nil
}

func (c *Controller) inTx(ctx context.Context, fn func(tx db.Tx) error) error {
	tx, err := c.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (c *Controller) getForUpdate(ctx context.Context, tx db.Tx, tradeInID string) (*repository.TradeIn, error) {
	item, err := c.tradeIns.GetByIDTx(ctx, tx, tradeInID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: trade-in %s", ErrNotFound, tradeInID)
		}
		return nil, err
	}
	return item, nil
}

func (c *Controller) lockAdjustment(ctx context.Context, tx db.Tx, tradeInID, adjustmentID string) (*repository.ValueAdjustment, error) {
	adj, err := c.adjustments.GetByIDTx(ctx, tx, adjustmentID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return nil, fmt.Errorf("%w: adjustment %s", ErrNotFound, adjustmentID)
		}
		return nil, err
	}
	if adj.TradeInID != tradeInID {
		return nil, validationErr("adjustment_id", "does not belong to this trade-in")
	}
	if adj.Status != AdjustmentPendingApproval {
		return nil, fmt.Errorf("%w: adjustment %s is already %s", ErrInvalidState, adjustmentID, adj.Status)
	}
	return adj, nil
}

// transitionTx validates the move against the transition table, writes the
// row, and emits the status-changed event in the same transaction.
func (c *Controller) transitionTx(ctx context.Context, tx db.Tx, item *repository.TradeIn, next Status, reason string) error {
	current := Status(item.Status)
	if !current.CanTransitionTo(next) {
		return invalidStateErr(fmt.Sprintf("transition to %q", next), current)
	}

	now := c.now().UTC()
	old := item.Status
	item.Status = string(next)
	item.UpdatedAt = now
	if err := c.tradeIns.UpdateTx(ctx, tx, item); err != nil {
		return fmt.Errorf("failed to update trade-in: %w", err)
	}

	return c.emitTx(ctx, tx, StatusChangedEvent{
		Type:      "tradein.status_changed",
		TradeInID: item.ID,
		OldStatus: old,
		NewStatus: item.Status,
		Reason:    reason,
		At:        now,
	})
}

func (c *Controller) emitTx(ctx context.Context, tx db.Tx, event StatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if err := c.outbox.CreateTaskTx(ctx, tx, c.eventTopic, payload); err != nil {
		return fmt.Errorf("failed to enqueue event: %w", err)
	}
	return nil
}

// advanceShipment maps carrier progress onto the lifecycle, stepping through
// intermediate states so the transition table stays authoritative.
func (c *Controller) advanceShipment(ctx context.Context, tradeInID string, carrierStatus shipping.ShipmentStatus) error {
	var target Status
	switch carrierStatus {
	case shipping.StatusInTransit:
		target = StatusInTransit
	case shipping.StatusDelivered:
		target = StatusReceived
	default:
		return nil
	}

	return c.inTx(ctx, func(tx db.Tx) error {
		item, err := c.getForUpdate(ctx, tx, tradeInID)
		if err != nil {
			return err
		}

		for {
			current := Status(item.Status)
			if current == target || !shipmentProgress(current, target) {
				return nil
			}
			next := StatusInTransit
			if current == StatusInTransit {
				next = StatusReceived
			}
			if err := c.transitionTx(ctx, tx, item, next, "carrier update"); err != nil {
				return err
			}
			c.cacheSet(item)
		}
	})
}

// shipmentProgress reports whether target is still ahead of current on the
// shipping leg of the lifecycle.
func shipmentProgress(current, target Status) bool {
	order := map[Status]int{StatusLabelSent: 0, StatusInTransit: 1, StatusReceived: 2}
	ci, ok := order[current]
	if !ok {
		return false
	}
	ti, ok := order[target]
	return ok && ti > ci
}

func (c *Controller) persistNewEvents(ctx context.Context, tracking *shipping.Tracking) error {
	stored, err := c.tracking.GetByTrackingNumber(ctx, tracking.TrackingNumber)
	if err != nil {
		return err
	}

	fresh := len(tracking.Events) - len(stored)
	if fresh <= 0 {
		return nil
	}
	// Events arrive newest-first; the first `fresh` entries are unseen.
	for i := fresh - 1; i >= 0; i-- {
		ev := tracking.Events[i]
		err := c.tracking.Create(ctx, &repository.TrackingEvent{
			TrackingNumber: tracking.TrackingNumber,
			Status:         string(ev.Status),
			Location:       ev.Location,
			Description:    ev.Description,
			OccurredAt:     ev.Timestamp,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) storedTracking(ctx context.Context, label *repository.ShippingLabel) (*shipping.Tracking, error) {
	stored, err := c.tracking.GetByTrackingNumber(ctx, label.TrackingNumber)
	if err != nil {
		return nil, err
	}

	tracking := &shipping.Tracking{
		TrackingNumber: label.TrackingNumber,
		Carrier:        label.Carrier,
		Status:         shipping.StatusLabelCreated,
	}
	for _, ev := range stored {
		tracking.Events = append(tracking.Events, shipping.Event{
			Timestamp:   ev.OccurredAt,
			Status:      shipping.ShipmentStatus(ev.Status),
			Location:    ev.Location,
			Description: ev.Description,
		})
	}
	if len(stored) > 0 {
		tracking.Status = shipping.ShipmentStatus(stored[0].Status)
		tracking.CurrentLocation = stored[0].Location
	} else {
		// Nothing persisted yet; the label itself is still an event, so the
		// timeline never comes back empty.
		tracking.Events = []shipping.Event{{
			Timestamp:   label.CreatedAt,
			Status:      shipping.StatusLabelCreated,
			Location:    "Origin Facility",
			Description: "Label Created",
		}}
		tracking.CurrentLocation = "Origin Facility"
	}
	return tracking, nil
}

func (c *Controller) cacheSet(item *repository.TradeIn) {
	if c.cache != nil {
		c.cache.Set(item)
	}
}

func (c *Controller) cacheGet(tradeInID string) (*repository.TradeIn, bool) {
	if c.cache == nil {
		return nil, false
	}
	return c.cache.Get(tradeInID)
}

func newID(prefix string, now time.Time) string {
	return fmt.Sprintf("%s-%d-%s", prefix, now.UnixMilli(), uuid.New().String()[:8])
}
