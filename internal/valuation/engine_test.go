package valuation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGetValuation(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	engine := NewEngine(NewStaticCatalog(nil), NewRegistry(), WithClock(fixedClock(now)))

	t.Run("known serial with perfect condition", func(t *testing.T) {
		resp := engine.GetValuation("C02XK1TYJHD3", "", Assessment{
			PowerOn:          true,
			ScreenGood:       true,
			CosmeticDamage:   false,
			KeyboardTrackpad: true,
		})

		require.True(t, resp.Success)
		assert.Equal(t, "MacBook Air M1", resp.Model)
		assert.Equal(t, GradeExcellent, resp.Grade)
		assert.Equal(t, 600, resp.BaseValue)
		assert.Equal(t, 1.00, resp.Multiplier)
		assert.Equal(t, 600, resp.EstimatedValue)
		assert.Equal(t, now, resp.CreatedAt)
		assert.Equal(t, now.Add(30*24*time.Hour), resp.ExpiresAt)
		require.NotNil(t, resp.Device)
		assert.Equal(t, "2020", resp.Device.Year)
	})

	t.Run("dead device pays a quarter of base", func(t *testing.T) {
		resp := engine.GetValuation("C02XK1TYJHD3", "", Assessment{PowerOn: false})

		require.True(t, resp.Success)
		assert.Equal(t, GradePoor, resp.Grade)
		assert.Equal(t, 150, resp.EstimatedValue)
	})

	t.Run("unknown serial fails without an error", func(t *testing.T) {
		resp := engine.GetValuation("ZZZ999UNKNOWN", "", Assessment{PowerOn: true})

		assert.False(t, resp.Success)
		assert.Contains(t, resp.Error, "ZZZ999UNKNOWN")
		assert.Empty(t, resp.ValuationID)
	})

	t.Run("explicit model skips registry lookup", func(t *testing.T) {
		resp := engine.GetValuation("ZZZ999UNKNOWN", "MacBook Pro 14 M1", Assessment{
			PowerOn:          true,
			ScreenGood:       true,
			KeyboardTrackpad: true,
		})

		require.True(t, resp.Success)
		assert.Equal(t, "MacBook Pro 14 M1", resp.Model)
		assert.Equal(t, 900, resp.BaseValue)
	})

	t.Run("unknown model falls back to default base value", func(t *testing.T) {
		resp := engine.GetValuation("C02XK1TYJHD3", "Some Obscure Laptop", Assessment{
			PowerOn:          true,
			ScreenGood:       true,
			KeyboardTrackpad: true,
		})

		require.True(t, resp.Success)
		assert.Equal(t, DefaultBaseValue, resp.BaseValue)
	})

	t.Run("serial is normalized before lookup", func(t *testing.T) {
		resp := engine.GetValuation("  c02xk1tyjhd3 ", "", Assessment{PowerOn: true, ScreenGood: true, KeyboardTrackpad: true})

		require.True(t, resp.Success)
		assert.Equal(t, "C02XK1TYJHD3", resp.Serial)
	})
}

func TestGetValuationIDsUnique(t *testing.T) {
	engine := NewEngine(NewStaticCatalog(nil), NewRegistry())

	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		resp := engine.GetValuation("C02XK1TYJHD3", "", Assessment{PowerOn: true})
		require.True(t, resp.Success)
		assert.Regexp(t, `^VAL-\d+-\d{6}$`, resp.ValuationID)
		seen[resp.ValuationID] = struct{}{}
	}
	assert.Len(t, seen, 50)
}

func TestLookupDevice(t *testing.T) {
	engine := NewEngine(NewStaticCatalog(nil), NewRegistry())

	t.Run("exact serial", func(t *testing.T) {
		resp := engine.LookupDevice("C02ZW081MD6V")
		require.True(t, resp.Success)
		assert.Equal(t, "MacBook Pro 14 M1", resp.Device.Name)
	})

	t.Run("prefix fallback", func(t *testing.T) {
		resp := engine.LookupDevice("DMPABCDEF123")
		require.True(t, resp.Success)
		assert.Equal(t, "iPad Pro 11", resp.Device.Name)
	})

	t.Run("unknown serial", func(t *testing.T) {
		resp := engine.LookupDevice("XYZ000")
		assert.False(t, resp.Success)
		assert.Nil(t, resp.Device)
	})
}

func TestFindMyStatus(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	engine := NewEngine(NewStaticCatalog(nil), NewRegistry(), WithClock(fixedClock(now)))

	locked := engine.FindMyStatus("FVFG73ELQ6LC")
	assert.True(t, locked.Success)
	assert.True(t, locked.Locked)
	assert.Equal(t, now, locked.CheckedAt)

	unlocked := engine.FindMyStatus("C02XK1TYJHD3")
	assert.False(t, unlocked.Locked)

	unknown := engine.FindMyStatus("XYZ000")
	assert.False(t, unknown.Locked)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()
	store := NewMemoryStore()

	live := ValuationResponse{
		Success:     true,
		ValuationID: "VAL-1-000001",
		ExpiresAt:   now.Add(time.Hour),
	}
	require.NoError(t, store.Save(ctx, live))

	got, err := store.Get(ctx, "VAL-1-000001")
	require.NoError(t, err)
	assert.Equal(t, live.ValuationID, got.ValuationID)

	_, err = store.Get(ctx, "VAL-404-000000")
	assert.ErrorIs(t, err, ErrValuationNotFound)

	expired := ValuationResponse{
		Success:     true,
		ValuationID: "VAL-2-000002",
		ExpiresAt:   now.Add(-time.Minute),
	}
	require.NoError(t, store.Save(ctx, expired))

	_, err = store.Get(ctx, "VAL-2-000002")
	assert.ErrorIs(t, err, ErrValuationNotFound)
}

func TestStaticCatalogOverrides(t *testing.T) {
	catalog := NewStaticCatalog(map[string]int{"MacBook Air M1": 550})

	value, ok := catalog.BaseValue("MacBook Air M1")
	require.True(t, ok)
	assert.Equal(t, 550, value)

	_, ok = catalog.BaseValue("Not A Real Model")
	assert.False(t, ok)
}
