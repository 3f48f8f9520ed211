package server

import (
	"time"
)

type AuditLogEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Handler    string    `json:"handler"`
	UserID     string    `json:"user_id,omitempty"`
	TradeInID  string    `json:"trade_in_id,omitempty"`
	OldStatus  string    `json:"old_status,omitempty"`
	NewStatus  string    `json:"new_status,omitempty"`
	StatusCode int       `json:"status_code"`
	Request    string    `json:"request,omitempty"`
	Response   string    `json:"response,omitempty"`
}
