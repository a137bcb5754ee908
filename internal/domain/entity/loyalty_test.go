package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() LoyaltySettings {
	return DefaultLoyaltySettings()
}

func TestQuoteRedemption_Scenario(t *testing.T) {
	settings := defaultSettings()

	quote := settings.QuoteRedemption(120, 50, true)
	require.True(t, quote.Eligible)
	assert.Equal(t, float64(12), quote.Discount)
	assert.Equal(t, 120, quote.PointsUsed)
}

func TestQuoteRedemption_BelowFloor(t *testing.T) {
	settings := defaultSettings()

	quote := settings.QuoteRedemption(49, 100, true)
	assert.False(t, quote.Eligible)
	assert.Zero(t, quote.Discount)
	assert.Zero(t, quote.PointsUsed)
}

func TestQuoteRedemption_CappedAtSubtotal(t *testing.T) {
	settings := defaultSettings()

	// 1000 points would be worth 100, but the subtotal is only 30
	quote := settings.QuoteRedemption(1000, 30, true)
	require.True(t, quote.Eligible)
	assert.Equal(t, float64(30), quote.Discount)
	assert.Equal(t, 300, quote.PointsUsed)
}

func TestQuoteRedemption_FractionalSubtotalCap(t *testing.T) {
	settings := defaultSettings()

	// Capped at a fractional subtotal: the full 20.5 of discount costs
	// 205 points, not the truncated 200.
	quote := settings.QuoteRedemption(600, 20.5, true)
	require.True(t, quote.Eligible)
	assert.Equal(t, 20.5, quote.Discount)
	assert.Equal(t, 205, quote.PointsUsed)
}

func TestQuoteRedemption_OptOutIsZero(t *testing.T) {
	settings := defaultSettings()

	quote := settings.QuoteRedemption(120, 50, false)
	assert.True(t, quote.Eligible)
	assert.Zero(t, quote.Discount)
	assert.Zero(t, quote.PointsUsed)
}

func TestPointsEarned(t *testing.T) {
	settings := defaultSettings()

	assert.Equal(t, 7, settings.PointsEarned(72))
	assert.Equal(t, 0, settings.PointsEarned(9))
	assert.Equal(t, 0, settings.PointsEarned(-5))
}

func TestTierFor_HighestQualifyingFloor(t *testing.T) {
	settings := defaultSettings()

	tier, ok := settings.TierFor(0)
	require.True(t, ok)
	assert.Equal(t, "bronze", tier.Name)

	tier, ok = settings.TierFor(499)
	require.True(t, ok)
	assert.Equal(t, "bronze", tier.Name)

	tier, ok = settings.TierFor(500)
	require.True(t, ok)
	assert.Equal(t, "silver", tier.Name)

	tier, ok = settings.TierFor(9000)
	require.True(t, ok)
	assert.Equal(t, "gold", tier.Name)

	empty := LoyaltySettings{RedemptionRate: 10}
	_, ok = empty.TierFor(100)
	assert.False(t, ok)
}

func TestNormalize_GuardsAndSorts(t *testing.T) {
	settings := LoyaltySettings{
		PointsPerPound:         -1,
		RedemptionRate:         0,
		MinPointsForRedemption: -5,
		BirthdayBonus:          -2,
		Tiers: []Tier{
			{Name: "gold", MinPoints: 1500},
			{Name: "bronze", MinPoints: 0},
			{Name: "silver", MinPoints: 500},
		},
	}
	settings.Normalize()

	assert.Equal(t, float64(0), settings.PointsPerPound)
	assert.Equal(t, 10, settings.RedemptionRate)
	assert.Equal(t, 0, settings.MinPointsForRedemption)
	assert.Equal(t, 0, settings.BirthdayBonus)
	assert.Equal(t, "bronze", settings.Tiers[0].Name)
	assert.Equal(t, "gold", settings.Tiers[2].Name)
}
