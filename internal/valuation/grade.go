package valuation

// Grade summarizes device condition, ordered best to worst.
type Grade string

const (
	GradeExcellent Grade = "excellent"
	GradeGood      Grade = "good"
	GradeFair      Grade = "fair"
	GradePoor      Grade = "poor"
)

// Multiplier returns the fraction of the base value paid out for this grade.
func (g Grade) Multiplier() float64 {
	switch g {
	case GradeExcellent:
		return 1.00
	case GradeGood:
		return 0.75
	case GradeFair:
		return 0.50
	default:
		return 0.25
	}
}

func (g Grade) Valid() bool {
	switch g {
	case GradeExcellent, GradeGood, GradeFair, GradePoor:
		return true
	}
	return false
}

// Assessment holds the customer's answers to the condition rubric. Battery
// and port health are optional and assumed healthy when unanswered.
type Assessment struct {
	PowerOn          bool  `json:"power_on"`
	ScreenGood       bool  `json:"screen_condition"`
	CosmeticDamage   bool  `json:"cosmetic_damage"`
	KeyboardTrackpad bool  `json:"keyboard_trackpad"`
	BatteryHealth    *bool `json:"battery_health,omitempty"`
	PortsWorking     *bool `json:"ports_working,omitempty"`
	FindMyDisabled   *bool `json:"find_my_disabled,omitempty"`
}

// GradeCondition derives a grade from an assessment. A device that does not
// power on is poor no matter what else was answered.
func GradeCondition(a Assessment) Grade {
	if !a.PowerOn {
		return GradePoor
	}

	checks := []bool{
		a.ScreenGood,
		!a.CosmeticDamage,
		a.KeyboardTrackpad,
		boolOrDefault(a.BatteryHealth, true),
		boolOrDefault(a.PortsWorking, true),
	}

	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	ratio := float64(passed) / float64(len(checks))

	switch {
	case ratio >= 0.9:
		return GradeExcellent
	case ratio >= 0.7:
		return GradeGood
	case ratio >= 0.5:
		return GradeFair
	default:
		return GradePoor
	}
}

func boolOrDefault(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
