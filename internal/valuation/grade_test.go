package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func TestGradeCondition(t *testing.T) {
	tests := []struct {
		name       string
		assessment Assessment
		expected   Grade
	}{
		{
			name: "all checks pass",
			assessment: Assessment{
				PowerOn:          true,
				ScreenGood:       true,
				CosmeticDamage:   false,
				KeyboardTrackpad: true,
			},
			expected: GradeExcellent,
		},
		{
			name: "one failed check is good",
			assessment: Assessment{
				PowerOn:          true,
				ScreenGood:       true,
				CosmeticDamage:   true,
				KeyboardTrackpad: true,
			},
			expected: GradeGood,
		},
		{
			name: "two failed checks is fair",
			assessment: Assessment{
				PowerOn:          true,
				ScreenGood:       false,
				CosmeticDamage:   true,
				KeyboardTrackpad: true,
			},
			expected: GradeFair,
		},
		{
			name: "three failed checks is poor",
			assessment: Assessment{
				PowerOn:          true,
				ScreenGood:       false,
				CosmeticDamage:   true,
				KeyboardTrackpad: false,
			},
			expected: GradePoor,
		},
		{
			name: "power failure dominates a perfect rubric",
			assessment: Assessment{
				PowerOn:          false,
				ScreenGood:       true,
				CosmeticDamage:   false,
				KeyboardTrackpad: true,
				BatteryHealth:    boolPtr(true),
				PortsWorking:     boolPtr(true),
			},
			expected: GradePoor,
		},
		{
			name: "unanswered battery and ports count as healthy",
			assessment: Assessment{
				PowerOn:          true,
				ScreenGood:       true,
				CosmeticDamage:   false,
				KeyboardTrackpad: true,
				BatteryHealth:    nil,
				PortsWorking:     nil,
			},
			expected: GradeExcellent,
		},
		{
			name: "bad battery drops excellent to good",
			assessment: Assessment{
				PowerOn:          true,
				ScreenGood:       true,
				CosmeticDamage:   false,
				KeyboardTrackpad: true,
				BatteryHealth:    boolPtr(false),
			},
			expected: GradeGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GradeCondition(tt.assessment))
		})
	}
}

func TestGradeConditionDeterministic(t *testing.T) {
	a := Assessment{
		PowerOn:          true,
		ScreenGood:       true,
		CosmeticDamage:   true,
		KeyboardTrackpad: true,
	}

	first := GradeCondition(a)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, GradeCondition(a))
	}
}

func TestGradeConditionMonotonic(t *testing.T) {
	rank := map[Grade]int{GradePoor: 0, GradeFair: 1, GradeGood: 2, GradeExcellent: 3}

	// Fixing one more check should never produce a worse grade.
	base := Assessment{
		PowerOn:          true,
		ScreenGood:       false,
		CosmeticDamage:   true,
		KeyboardTrackpad: false,
		BatteryHealth:    boolPtr(false),
		PortsWorking:     boolPtr(false),
	}

	prev := GradeCondition(base)
	improvements := []func(*Assessment){
		func(a *Assessment) { a.ScreenGood = true },
		func(a *Assessment) { a.CosmeticDamage = false },
		func(a *Assessment) { a.KeyboardTrackpad = true },
		func(a *Assessment) { a.BatteryHealth = boolPtr(true) },
		func(a *Assessment) { a.PortsWorking = boolPtr(true) },
	}

	for _, improve := range improvements {
		improve(&base)
		current := GradeCondition(base)
		assert.GreaterOrEqual(t, rank[current], rank[prev])
		prev = current
	}
	assert.Equal(t, GradeExcellent, prev)
}

func TestGradeMultiplier(t *testing.T) {
	assert.Equal(t, 1.00, GradeExcellent.Multiplier())
	assert.Equal(t, 0.75, GradeGood.Multiplier())
	assert.Equal(t, 0.50, GradeFair.Multiplier())
	assert.Equal(t, 0.25, GradePoor.Multiplier())
}

func TestGradeValid(t *testing.T) {
	assert.True(t, GradeExcellent.Valid())
	assert.True(t, GradePoor.Valid())
	assert.False(t, Grade("mint").Valid())
	assert.False(t, Grade("").Valid())
}
