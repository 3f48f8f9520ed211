package valuation

import "strings"

// DeviceModel is static catalog-style information about a hardware model.
type DeviceModel struct {
	Name     string            `json:"name"`
	Year     string            `json:"year"`
	Color    string            `json:"color"`
	Storage  string            `json:"storage"`
	Specs    map[string]string `json:"specs,omitempty"`
	ImageURL string            `json:"image_url,omitempty"`
}

type registryEntry struct {
	device       DeviceModel
	findMyLocked bool
}

// Registry looks devices up by serial number. Exact matches win; prefix
// patterns are a bootstrap fallback standing in for a real device registry
// and should not be relied on in production.
type Registry struct {
	bySerial map[string]registryEntry
	prefixes []prefixPattern
}

type prefixPattern struct {
	prefix string
	device DeviceModel
}

func NewRegistry() *Registry {
	return &Registry{
		bySerial: map[string]registryEntry{
			"C02XK1TYJHD3": {
				device: DeviceModel{
					Name:    "MacBook Air M1",
					Year:    "2020",
					Color:   "Space Gray",
					Storage: "256GB",
					Specs:   map[string]string{"chip": "Apple M1", "ram": "8GB"},
				},
			},
			"C02ZW081MD6V": {
				device: DeviceModel{
					Name:    "MacBook Pro 14 M1",
					Year:    "2021",
					Color:   "Silver",
					Storage: "512GB",
					Specs:   map[string]string{"chip": "Apple M1 Pro", "ram": "16GB"},
				},
			},
			"FVFG73ELQ6LC": {
				device: DeviceModel{
					Name:    "MacBook Air M2",
					Year:    "2022",
					Color:   "Midnight",
					Storage: "512GB",
					Specs:   map[string]string{"chip": "Apple M2", "ram": "16GB"},
				},
				findMyLocked: true,
			},
		},
		prefixes: []prefixPattern{
			{prefix: "C02", device: DeviceModel{Name: "MacBook Air M1", Year: "2020", Color: "Space Gray", Storage: "256GB"}},
			{prefix: "FVF", device: DeviceModel{Name: "MacBook Air M2", Year: "2022", Color: "Midnight", Storage: "256GB"}},
			{prefix: "DMP", device: DeviceModel{Name: "iPad Pro 11", Year: "2021", Color: "Silver", Storage: "128GB"}},
		},
	}
}

// NormalizeSerial brings a serial into canonical form before any lookup.
func NormalizeSerial(serial string) string {
	return strings.ToUpper(strings.TrimSpace(serial))
}

func (r *Registry) Lookup(serial string) (DeviceModel, bool) {
	serial = NormalizeSerial(serial)
	if entry, ok := r.bySerial[serial]; ok {
		return entry.device, true
	}
	for _, p := range r.prefixes {
		if strings.HasPrefix(serial, p.prefix) {
			return p.device, true
		}
	}
	return DeviceModel{}, false
}

// FindMyLocked reports whether the device registry believes the serial still
// has an activation lock on it. Unknown serials report unlocked.
func (r *Registry) FindMyLocked(serial string) bool {
	entry, ok := r.bySerial[NormalizeSerial(serial)]
	return ok && entry.findMyLocked
}
