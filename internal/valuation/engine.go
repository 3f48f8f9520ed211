package valuation

import (
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

const offerValidity = 30 * 24 * time.Hour

type ValuationResponse struct {
	Success        bool      `json:"success"`
	Error          string    `json:"error,omitempty"`
	ValuationID    string    `json:"valuation_id,omitempty"`
	Serial         string    `json:"serial,omitempty"`
	Model          string    `json:"model,omitempty"`
	Grade          Grade     `json:"grade,omitempty"`
	BaseValue      int       `json:"base_value,omitempty"`
	Multiplier     float64   `json:"multiplier,omitempty"`
	EstimatedValue int       `json:"estimated_value,omitempty"`
	Device         *DeviceModel `json:"device,omitempty"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
	ExpiresAt      time.Time `json:"expires_at,omitempty"`
}

type DeviceLookupResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Serial  string       `json:"serial,omitempty"`
	Device  *DeviceModel `json:"device,omitempty"`
}

type FindMyStatusResponse struct {
	Success   bool      `json:"success"`
	Serial    string    `json:"serial"`
	Locked    bool      `json:"locked"`
	CheckedAt time.Time `json:"checked_at"`
}

// Engine grades device condition and turns a grade into a time-limited
// monetary offer. It holds no mutable state beyond its id generator and
// never persists anything.
type Engine struct {
	catalog  Catalog
	registry *Registry

	now func() time.Time

	mu  sync.Mutex
	rng *rand.Rand
}

type EngineOption func(*Engine)

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

func NewEngine(catalog Catalog, registry *Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		catalog:  catalog,
		registry: registry,
		now:      time.Now,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// GetValuation grades the assessment and prices the device. Lookup problems
// come back as an unsuccessful response, not an error.
func (e *Engine) GetValuation(serial, model string, assessment Assessment) ValuationResponse {
	serial = NormalizeSerial(serial)

	if model == "" {
		device, ok := e.registry.Lookup(serial)
		if !ok {
			return ValuationResponse{
				Success: false,
				Error:   fmt.Sprintf("Device not found for serial %q", serial),
			}
		}
		model = device.Name
	}

	baseValue, ok := e.catalog.BaseValue(model)
	if !ok {
		baseValue = DefaultBaseValue
	}

	grade := GradeCondition(assessment)
	multiplier := grade.Multiplier()
	estimated := int(math.Round(float64(baseValue) * multiplier))

	now := e.now().UTC()
	resp := ValuationResponse{
		Success:        true,
		ValuationID:    e.newValuationID(now),
		Serial:         serial,
		Model:          model,
		Grade:          grade,
		BaseValue:      baseValue,
		Multiplier:     multiplier,
		EstimatedValue: estimated,
		CreatedAt:      now,
		ExpiresAt:      now.Add(offerValidity),
	}
	if device, ok := e.registry.Lookup(serial); ok {
		resp.Device = &device
	}
	return resp
}

func (e *Engine) LookupDevice(serial string) DeviceLookupResponse {
	serial = NormalizeSerial(serial)
	device, ok := e.registry.Lookup(serial)
	if !ok {
		return DeviceLookupResponse{
			Success: false,
			Error:   fmt.Sprintf("Device not found for serial %q", serial),
			Serial:  serial,
		}
	}
	return DeviceLookupResponse{
		Success: true,
		Serial:  serial,
		Device:  &device,
	}
}

func (e *Engine) FindMyStatus(serial string) FindMyStatusResponse {
	serial = NormalizeSerial(serial)
	return FindMyStatusResponse{
		Success:   true,
		Serial:    serial,
		Locked:    e.registry.FindMyLocked(serial),
		CheckedAt: e.now().UTC(),
	}
}

func (e *Engine) newValuationID(now time.Time) string {
	e.mu.Lock()
	suffix := e.rng.Intn(1_000_000)
	e.mu.Unlock()
	return fmt.Sprintf("VAL-%d-%06d", now.UnixMilli(), suffix)
}
