package achievement

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/minjae-ko/habitquest/internal/domain"
)

func TestProgressFor(t *testing.T) {
	t.Run("first mission is boolean", func(t *testing.T) {
		assert.Equal(t, 0, ProgressFor(domain.AchFirstMission, domain.UserAggregateStats{}))
		assert.Equal(t, 100, ProgressFor(domain.AchFirstMission, domain.UserAggregateStats{CompletedMissions: 1}))
		assert.Equal(t, 100, ProgressFor(domain.AchFirstMission, domain.UserAggregateStats{CompletedMissions: 7}))
	})

	t.Run("mission counts scale against thresholds", func(t *testing.T) {
		agg := domain.UserAggregateStats{CompletedMissions: 10}
		assert.Equal(t, 100, ProgressFor(domain.AchMissions10, agg))
		assert.Equal(t, 20, ProgressFor(domain.AchMissions50, agg))
		assert.Equal(t, 10, ProgressFor(domain.AchMissions100, agg))
	})

	t.Run("progress clamps at 100", func(t *testing.T) {
		agg := domain.UserAggregateStats{CompletedMissions: 500}
		assert.Equal(t, 100, ProgressFor(domain.AchMissions100, agg))
	})

	t.Run("streaks", func(t *testing.T) {
		agg := domain.UserAggregateStats{CurrentStreak: 7}
		assert.Equal(t, 100, ProgressFor(domain.AchStreak3, agg))
		assert.Equal(t, 100, ProgressFor(domain.AchStreak7, agg))
		assert.Equal(t, 23, ProgressFor(domain.AchStreak30, agg))
	})

	t.Run("points", func(t *testing.T) {
		agg := domain.UserAggregateStats{TotalPoints: 2500}
		assert.Equal(t, 100, ProgressFor(domain.AchPoints1000, agg))
		assert.Equal(t, 25, ProgressFor(domain.AchPoints10000, agg))
	})

	t.Run("specialists count their own category", func(t *testing.T) {
		agg := domain.UserAggregateStats{
			CompletedMissions: 40,
			CategoryCompleted: map[domain.MissionCategory]int{
				domain.CategoryHealth:   10,
				domain.CategoryCreative: 5,
			},
		}
		assert.Equal(t, 100, ProgressFor(domain.AchHealthSpecialist, agg))
		assert.Equal(t, 50, ProgressFor(domain.AchCreativeArtist, agg))
		assert.Equal(t, 0, ProgressFor(domain.AchSocialButterfly, agg))
	})

	t.Run("specialists stay at zero without category counts", func(t *testing.T) {
		// Even a heavy overall mission count grants nothing without the
		// per-category breakdown.
		agg := domain.UserAggregateStats{CompletedMissions: 200}
		assert.Equal(t, 0, ProgressFor(domain.AchHealthSpecialist, agg))
	})

	t.Run("unknown type", func(t *testing.T) {
		assert.Equal(t, 0, ProgressFor(domain.AchievementType("SLEEP_CHAMPION"), domain.UserAggregateStats{CompletedMissions: 100}))
	})
}

func TestCatalog(t *testing.T) {
	assert.Len(t, Catalog, 12)

	seen := make(map[domain.AchievementType]bool)
	for _, def := range Catalog {
		assert.False(t, seen[def.Type], "duplicate %s", def.Type)
		seen[def.Type] = true
		assert.NotEmpty(t, def.Name)
		assert.Positive(t, def.Rarity.Order(), "%s has unknown rarity", def.Type)
		assert.Positive(t, def.Threshold)
	}

	def, ok := Lookup(domain.AchStreak30)
	assert.True(t, ok)
	assert.Equal(t, domain.RarityLegendary, def.Rarity)

	_, ok = Lookup(domain.AchievementType("NOPE"))
	assert.False(t, ok)
}
