package shipping

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	labelValidity = 30 * 24 * time.Hour
	carrierName   = "EquippedExpress"
)

// Timeline stages, measured from label creation.
const (
	pickupAfter    = 24 * time.Hour
	departAfter    = 48 * time.Hour
	deliveredAfter = 96 * time.Hour
	deliveryWindow = 5 * 24 * time.Hour
)

// MockCarrier synthesizes labels and tracking timelines locally. The
// timeline for a tracking number is a pure function of the label's age, so
// repeated queries only ever extend it.
type MockCarrier struct {
	now func() time.Time

	mu     sync.RWMutex
	labels map[string]*Label
	rng    *rand.Rand
}

type MockCarrierOption func(*MockCarrier)

func WithClock(now func() time.Time) MockCarrierOption {
	return func(c *MockCarrier) { c.now = now }
}

func NewMockCarrier(opts ...MockCarrierOption) *MockCarrier {
	c := &MockCarrier{
		now:    time.Now,
		labels: make(map[string]*Label),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *MockCarrier) IssueLabel(_ context.Context, tradeInID string) (*Label, error) {
	now := c.now().UTC()

	c.mu.Lock()
	trackingNumber := fmt.Sprintf("EQX%d%04d", now.UnixMilli(), c.rng.Intn(10_000))
	c.mu.Unlock()

	label := &Label{
		ID:             fmt.Sprintf("LBL-%d-%s", now.UnixMilli(), uuid.New().String()[:8]),
		TradeInID:      tradeInID,
		TrackingNumber: trackingNumber,
		Carrier:        carrierName,
		LabelURL:       fmt.Sprintf("https://labels.equipped.example/%s.pdf", trackingNumber),
		CreatedAt:      now,
		ExpiresAt:      now.Add(labelValidity),
	}

	c.mu.Lock()
	c.labels[trackingNumber] = label
	c.mu.Unlock()

	return label, nil
}

func (c *MockCarrier) Track(_ context.Context, trackingNumber string) (*Tracking, error) {
	c.mu.RLock()
	label, ok := c.labels[trackingNumber]
	c.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrShipmentNotFound, trackingNumber)
	}

	age := c.now().UTC().Sub(label.CreatedAt)

	// Oldest first while building, reversed before returning.
	events := []Event{{
		Timestamp:   label.CreatedAt,
		Status:      StatusLabelCreated,
		Location:    "Origin Facility",
		Description: "Label Created",
	}}
	status := StatusLabelCreated
	location := "Origin Facility"

	if age >= pickupAfter {
		events = append(events, Event{
			Timestamp:   label.CreatedAt.Add(pickupAfter),
			Status:      StatusInTransit,
			Location:    "Customer Address",
			Description: "Package picked up",
		})
		status = StatusInTransit
		location = "Customer Address"
	}
	if age >= departAfter {
		events = append(events, Event{
			Timestamp:   label.CreatedAt.Add(departAfter),
			Status:      StatusInTransit,
			Location:    "Regional Sort Facility",
			Description: "Departed facility",
		})
		location = "Regional Sort Facility"
	}
	if age >= deliveredAfter {
		events = append(events, Event{
			Timestamp:   label.CreatedAt.Add(deliveredAfter),
			Status:      StatusDelivered,
			Location:    "Equipped Processing Center",
			Description: "Delivered",
		})
		status = StatusDelivered
		location = "Equipped Processing Center"
	}

	for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
		events[i], events[j] = events[j], events[i]
	}

	tracking := &Tracking{
		TrackingNumber:  trackingNumber,
		Carrier:         label.Carrier,
		Status:          status,
		CurrentLocation: location,
		Events:          events,
	}
	if status != StatusDelivered {
		eta := label.CreatedAt.Add(deliveryWindow)
		tracking.EstimatedDelivery = &eta
	}
	return tracking, nil
}
