package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPoints(t *testing.T) {
	p, err := NewPoints(42)
	assert.NoError(t, err)
	assert.Equal(t, 42, p.Int())

	_, err = NewPoints(-1)
	assert.ErrorIs(t, err, ErrNegativePoints)
}

func TestPointsSubtractSaturating(t *testing.T) {
	assert.Equal(t, Points(3), Points(10).SubtractSaturating(7))
	assert.Equal(t, Points(0), Points(5).SubtractSaturating(5))
	assert.Equal(t, Points(0), Points(5).SubtractSaturating(100))
}

func TestNewCompletionPercentage(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{0, false},
		{25, false},
		{100, false},
		{30, true},
		{-25, true},
		{125, true},
	}

	for _, tt := range tests {
		pct, err := NewCompletionPercentage(tt.value)
		if tt.wantErr {
			assert.ErrorIs(t, err, ErrInvalidPercentage, "value %d", tt.value)
		} else {
			assert.NoError(t, err, "value %d", tt.value)
			assert.Equal(t, tt.value, pct.Int())
		}
	}
}

func TestSpecialRewardTierThresholds(t *testing.T) {
	var prev CompletionPercentage
	for _, tier := range AllSpecialRewardTiers {
		assert.Greater(t, tier.Threshold(), prev, "tiers must be in ascending threshold order")
		assert.Greater(t, tier.BasePoints().Int(), 0)
		prev = tier.Threshold()
	}
	assert.Equal(t, CompletionPercentage(100), TierPlatinum.Threshold())
}
