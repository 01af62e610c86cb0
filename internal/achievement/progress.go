package achievement

import (
	"github.com/minjae-ko/habitquest/internal/domain"
)

// ProgressFor computes the [0,100] progress of one achievement against the
// user's aggregate counters. Unknown types report zero.
func ProgressFor(t domain.AchievementType, agg domain.UserAggregateStats) int {
	def, ok := Lookup(t)
	if !ok {
		return 0
	}

	var current int
	switch def.Category {
	case CategoryMission:
		current = agg.CompletedMissions
	case CategoryStreak:
		current = agg.CurrentStreak
	case CategoryPoints:
		current = agg.TotalPoints.Int()
	case CategorySpecial:
		// Nil category counts mean the read side could not supply them;
		// specialists then stay at zero rather than guessing.
		current = agg.CategoryCompleted[specialistCategory[t]]
	}

	if def.Type == domain.AchFirstMission {
		if current >= 1 {
			return 100
		}
		return 0
	}

	return ratio(current, def.Threshold)
}

func ratio(current, threshold int) int {
	if threshold <= 0 {
		return 0
	}
	if current >= threshold {
		return 100
	}
	if current <= 0 {
		return 0
	}
	return current * 100 / threshold
}
