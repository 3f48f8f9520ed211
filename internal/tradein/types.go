package tradein

import (
	"time"

	"github.com/equipped-hq/tradein-service/internal/repository"
	"github.com/equipped-hq/tradein-service/internal/shipping"
)

// Status is the trade-in lifecycle state.
type Status string

const (
	StatusQuote      Status = "quote"
	StatusLabelSent  Status = "label_sent"
	StatusInTransit  Status = "in_transit"
	StatusReceived   Status = "received"
	StatusInspecting Status = "inspecting"
	StatusCredited   Status = "credited"
	StatusDisputed   Status = "disputed"
)

// transitions is the complete state machine. Every status change goes
// through this table; nothing mutates status as a hidden side effect.
var transitions = map[Status][]Status{
	StatusQuote:      {StatusLabelSent},
	StatusLabelSent:  {StatusInTransit},
	StatusInTransit:  {StatusReceived},
	StatusReceived:   {StatusInspecting},
	StatusInspecting: {StatusCredited, StatusDisputed},
	StatusCredited:   {},
	StatusDisputed:   {},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) AllowedTransitions() []Status {
	return transitions[s]
}

func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// Value adjustment statuses.
const (
	AdjustmentPendingApproval = "pending_approval"
	AdjustmentApproved        = "approved"
	AdjustmentDisputed        = "disputed"
	AdjustmentDeviceReturned  = "device_returned"
)

// InspectionRequest carries an inspector's findings for a received device.
type InspectionRequest struct {
	ActualCondition  string `json:"actual_condition"`
	EstimatedValue   int    `json:"estimated_value"`
	FinalValue       int    `json:"final_value"`
	AdjustmentReason string `json:"adjustment_reason,omitempty"`
	Inspector        string `json:"inspector,omitempty"`
	RequiresApproval bool   `json:"requires_approval"`
}

// AdjustmentRequest proposes a revised credit following inspection.
type AdjustmentRequest struct {
	OriginalValue int    `json:"original_value"`
	NewValue      int    `json:"new_value"`
	Reason        string `json:"reason"`
}

// Details is the full aggregate returned for a trade-in.
type Details struct {
	TradeIn    *repository.TradeIn         `json:"trade_in"`
	Label      *repository.ShippingLabel   `json:"label,omitempty"`
	Tracking   *shipping.Tracking          `json:"tracking,omitempty"`
	Inspection *repository.Inspection      `json:"inspection,omitempty"`
	Adjustment *repository.ValueAdjustment `json:"adjustment,omitempty"`
}

// StatusChangedEvent is the outbox payload emitted on every transition.
type StatusChangedEvent struct {
	Type      string    `json:"type"`
	TradeInID string    `json:"trade_in_id"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status"`
	Reason    string    `json:"reason,omitempty"`
	At        time.Time `json:"at"`
}
