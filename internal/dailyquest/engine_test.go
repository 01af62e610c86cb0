package dailyquest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-ko/habitquest/internal/domain"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		completed, total int
		want             domain.CompletionPercentage
	}{
		{0, 4, 0},
		{1, 4, 25},
		{2, 4, 50},
		{3, 4, 75},
		{4, 4, 100},
		{5, 4, 100},
		{-1, 4, 0},
		{2, 0, 0},
		{1, 3, 25}, // 33 floors to 25
		{2, 3, 50}, // 66 floors to 50
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Percentage(tt.completed, tt.total), "%d/%d", tt.completed, tt.total)
	}
}

func TestTierFor(t *testing.T) {
	tier, ok := TierFor(50)
	require.True(t, ok)
	assert.Equal(t, domain.TierSilver, tier)

	_, ok = TierFor(0)
	assert.False(t, ok)
}

func TestAvailableTiers(t *testing.T) {
	assert.Empty(t, AvailableTiers(0))
	assert.Equal(t, []domain.SpecialRewardTier{domain.TierBronze, domain.TierSilver}, AvailableTiers(50))
	assert.Len(t, AvailableTiers(100), 4)
}

func TestNewlyCrossed(t *testing.T) {
	t.Run("jump from zero to full crosses all four", func(t *testing.T) {
		summary := domain.DailyQuestSummary{}
		crossed := NewlyCrossed(summary, 100)
		assert.Equal(t, domain.AllSpecialRewardTiers, crossed)
		assert.Equal(t, domain.Points(185), TierPoints(crossed))
	})

	t.Run("already-earned tiers are skipped", func(t *testing.T) {
		summary := domain.DailyQuestSummary{
			SpecialRewardsEarned: []domain.SpecialRewardTier{domain.TierBronze, domain.TierSilver},
		}
		crossed := NewlyCrossed(summary, 75)
		assert.Equal(t, []domain.SpecialRewardTier{domain.TierGold}, crossed)
	})

	t.Run("no new tiers below bronze", func(t *testing.T) {
		assert.Empty(t, NewlyCrossed(domain.DailyQuestSummary{}, 0))
	})
}

func TestNextMilestone(t *testing.T) {
	next := NextMilestone(0)
	require.NotNil(t, next)
	assert.Equal(t, 25, *next)

	next = NextMilestone(75)
	require.NotNil(t, next)
	assert.Equal(t, 100, *next)

	assert.Nil(t, NextMilestone(100))
}

func TestStatusMessageFor(t *testing.T) {
	for _, band := range []int{0, 25, 50, 75, 100} {
		assert.NotEmpty(t, StatusMessageFor(band), "band %d", band)
	}
	assert.NotEqual(t, StatusMessageFor(0), StatusMessageFor(100))
}
