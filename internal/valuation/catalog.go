package valuation

// Catalog resolves a base trade-in value for a device model.
type Catalog interface {
	BaseValue(model string) (int, bool)
}

// DefaultBaseValue is paid for models the catalog does not know.
const DefaultBaseValue = 300

type StaticCatalog struct {
	values map[string]int
}

// NewStaticCatalog builds a catalog from the built-in table, with overrides
// applied on top. Overrides come from configuration.
func NewStaticCatalog(overrides map[string]int) *StaticCatalog {
	values := map[string]int{
		"MacBook Air M1":     600,
		"MacBook Air M2":     750,
		"MacBook Pro 14 M1":  900,
		"MacBook Pro 14 M3":  1250,
		"MacBook Pro 16 M1":  1100,
		"iPhone 13":          350,
		"iPhone 14 Pro":      550,
		"iPad Pro 11":        450,
		"Dell XPS 13":        500,
		"ThinkPad X1 Carbon": 550,
	}
	for model, value := range overrides {
		values[model] = value
	}
	return &StaticCatalog{values: values}
}

func (c *StaticCatalog) BaseValue(model string) (int, bool) {
	value, ok := c.values[model]
	return value, ok
}
