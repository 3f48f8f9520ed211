package shipping

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueLabel(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	carrier := NewMockCarrier(WithClock(func() time.Time { return created }))

	label, err := carrier.IssueLabel(ctx, "TI-1-abc")
	require.NoError(t, err)

	assert.Equal(t, "TI-1-abc", label.TradeInID)
	assert.Regexp(t, `^EQX\d+$`, label.TrackingNumber)
	assert.Regexp(t, `^LBL-\d+-[0-9a-f]{8}$`, label.ID)
	assert.Equal(t, "EquippedExpress", label.Carrier)
	assert.Contains(t, label.LabelURL, label.TrackingNumber)
	assert.Equal(t, created, label.CreatedAt)
	assert.Equal(t, created.Add(30*24*time.Hour), label.ExpiresAt)
}

func TestIssueLabelUniqueTrackingNumbers(t *testing.T) {
	ctx := context.Background()
	carrier := NewMockCarrier()

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		label, err := carrier.IssueLabel(ctx, "TI-1-abc")
		require.NoError(t, err)
		seen[label.TrackingNumber] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestTrackUnknownNumber(t *testing.T) {
	carrier := NewMockCarrier()

	_, err := carrier.Track(context.Background(), "EQX000000")
	assert.ErrorIs(t, err, ErrShipmentNotFound)
}

func TestTrackTimeline(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := created
	carrier := NewMockCarrier(WithClock(func() time.Time { return now }))

	label, err := carrier.IssueLabel(ctx, "TI-1-abc")
	require.NoError(t, err)

	t.Run("fresh label", func(t *testing.T) {
		tracking, err := carrier.Track(ctx, label.TrackingNumber)
		require.NoError(t, err)

		assert.Equal(t, StatusLabelCreated, tracking.Status)
		require.Len(t, tracking.Events, 1)
		assert.Equal(t, "Label Created", tracking.Events[0].Description)
		require.NotNil(t, tracking.EstimatedDelivery)
		assert.Equal(t, created.Add(5*24*time.Hour), *tracking.EstimatedDelivery)
	})

	t.Run("after pickup", func(t *testing.T) {
		now = created.Add(25 * time.Hour)
		tracking, err := carrier.Track(ctx, label.TrackingNumber)
		require.NoError(t, err)

		assert.Equal(t, StatusInTransit, tracking.Status)
		assert.Equal(t, "Customer Address", tracking.CurrentLocation)
		require.Len(t, tracking.Events, 2)
		assert.Equal(t, "Package picked up", tracking.Events[0].Description)
	})

	t.Run("after departure", func(t *testing.T) {
		now = created.Add(49 * time.Hour)
		tracking, err := carrier.Track(ctx, label.TrackingNumber)
		require.NoError(t, err)

		assert.Equal(t, StatusInTransit, tracking.Status)
		assert.Equal(t, "Regional Sort Facility", tracking.CurrentLocation)
		require.Len(t, tracking.Events, 3)
	})

	t.Run("delivered", func(t *testing.T) {
		now = created.Add(100 * time.Hour)
		tracking, err := carrier.Track(ctx, label.TrackingNumber)
		require.NoError(t, err)

		assert.Equal(t, StatusDelivered, tracking.Status)
		assert.Equal(t, "Equipped Processing Center", tracking.CurrentLocation)
		require.Len(t, tracking.Events, 4)
		assert.Nil(t, tracking.EstimatedDelivery)
	})
}

func TestTrackEventsNewestFirst(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := created.Add(100 * time.Hour)
	carrier := NewMockCarrier(WithClock(func() time.Time {
		return now
	}))

	// Backdate the label so the full timeline exists immediately.
	now = created
	label, err := carrier.IssueLabel(ctx, "TI-1-abc")
	require.NoError(t, err)
	now = created.Add(100 * time.Hour)

	tracking, err := carrier.Track(ctx, label.TrackingNumber)
	require.NoError(t, err)
	require.Len(t, tracking.Events, 4)

	for i := 1; i < len(tracking.Events); i++ {
		assert.True(t, !tracking.Events[i-1].Timestamp.Before(tracking.Events[i].Timestamp),
			"events must be ordered newest first")
	}
	assert.Equal(t, StatusDelivered, tracking.Events[0].Status)
	assert.Equal(t, StatusLabelCreated, tracking.Events[len(tracking.Events)-1].Status)
}

func TestTrackTimelineOnlyExtends(t *testing.T) {
	ctx := context.Background()
	created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	now := created
	carrier := NewMockCarrier(WithClock(func() time.Time { return now }))

	label, err := carrier.IssueLabel(ctx, "TI-1-abc")
	require.NoError(t, err)

	prevLen := 0
	for _, age := range []time.Duration{0, 24 * time.Hour, 48 * time.Hour, 96 * time.Hour} {
		now = created.Add(age)
		tracking, err := carrier.Track(ctx, label.TrackingNumber)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(tracking.Events), prevLen)
		prevLen = len(tracking.Events)
	}
}
