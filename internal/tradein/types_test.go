package tradein

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusQuote, StatusLabelSent, true},
		{StatusLabelSent, StatusInTransit, true},
		{StatusInTransit, StatusReceived, true},
		{StatusReceived, StatusInspecting, true},
		{StatusInspecting, StatusCredited, true},
		{StatusInspecting, StatusDisputed, true},

		{StatusQuote, StatusInTransit, false},
		{StatusQuote, StatusCredited, false},
		{StatusLabelSent, StatusReceived, false},
		{StatusReceived, StatusQuote, false},
		{StatusInspecting, StatusReceived, false},
		{StatusCredited, StatusDisputed, false},
		{StatusDisputed, StatusCredited, false},
		{Status("bogus"), StatusQuote, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, StatusCredited.Terminal())
	assert.True(t, StatusDisputed.Terminal())

	for _, s := range []Status{StatusQuote, StatusLabelSent, StatusInTransit, StatusReceived, StatusInspecting} {
		assert.False(t, s.Terminal(), "%s must not be terminal", s)
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t, []Status{StatusCredited, StatusDisputed}, StatusInspecting.AllowedTransitions())
	assert.Empty(t, StatusCredited.AllowedTransitions())
}
