package shipping

import (
	"context"
	"errors"
	"time"
)

var ErrShipmentNotFound = errors.New("shipment not found")

// Label is a prepaid return label issued for a trade-in.
type Label struct {
	ID             string    `json:"id"`
	TradeInID      string    `json:"trade_in_id"`
	TrackingNumber string    `json:"tracking_number"`
	Carrier        string    `json:"carrier"`
	LabelURL       string    `json:"label_url"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type ShipmentStatus string

const (
	StatusLabelCreated ShipmentStatus = "label_created"
	StatusInTransit    ShipmentStatus = "in_transit"
	StatusDelivered    ShipmentStatus = "delivered"
	StatusException    ShipmentStatus = "exception"
)

type Event struct {
	Timestamp   time.Time      `json:"timestamp"`
	Status      ShipmentStatus `json:"status"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
}

// Tracking is a shipment's current state plus its event timeline, newest
// event first.
type Tracking struct {
	TrackingNumber    string         `json:"tracking_number"`
	Carrier           string         `json:"carrier"`
	Status            ShipmentStatus `json:"status"`
	CurrentLocation   string         `json:"current_location,omitempty"`
	EstimatedDelivery *time.Time     `json:"estimated_delivery,omitempty"`
	Events            []Event        `json:"events"`
}

// Carrier is the boundary to the shipping provider. A production
// implementation talks to a real carrier API; the controller only depends on
// this interface.
type Carrier interface {
	IssueLabel(ctx context.Context, tradeInID string) (*Label, error)
	Track(ctx context.Context, trackingNumber string) (*Tracking, error)
}
