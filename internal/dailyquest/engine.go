package dailyquest

import (
	"github.com/minjae-ko/habitquest/internal/domain"
)

// Percentage converts a completed/total pair into the quantized daily
// completion band. Values floor to the nearest multiple of 25, so 1/4 of the
// catalog is 25 and 3/4 is 75.
func Percentage(completed, total int) domain.CompletionPercentage {
	if total <= 0 || completed <= 0 {
		return 0
	}
	if completed >= total {
		return 100
	}
	raw := completed * 100 / total
	return domain.CompletionPercentage(raw - raw%25)
}

// TierFor returns the tier whose threshold exactly matches pct, if any.
func TierFor(pct domain.CompletionPercentage) (domain.SpecialRewardTier, bool) {
	for _, tier := range domain.AllSpecialRewardTiers {
		if tier.Threshold() == pct {
			return tier, true
		}
	}
	return "", false
}

// AvailableTiers returns every tier whose threshold is at or below pct, in
// ascending threshold order.
func AvailableTiers(pct domain.CompletionPercentage) []domain.SpecialRewardTier {
	var out []domain.SpecialRewardTier
	for _, tier := range domain.AllSpecialRewardTiers {
		if tier.Threshold() <= pct {
			out = append(out, tier)
		}
	}
	return out
}

// NewlyCrossed returns the tiers reachable at pct that the summary has not
// earned yet. A jump from 0 to 100 in one update crosses all four.
func NewlyCrossed(summary domain.DailyQuestSummary, pct domain.CompletionPercentage) []domain.SpecialRewardTier {
	var out []domain.SpecialRewardTier
	for _, tier := range AvailableTiers(pct) {
		if !summary.HasEarned(tier) {
			out = append(out, tier)
		}
	}
	return out
}

// NextMilestone returns the smallest tier threshold above pct, or nil at 100.
func NextMilestone(pct domain.CompletionPercentage) *int {
	for _, tier := range domain.AllSpecialRewardTiers {
		if tier.Threshold() > pct {
			next := tier.Threshold().Int()
			return &next
		}
	}
	return nil
}

// TierPoints sums the bonus points of the given tiers.
func TierPoints(tiers []domain.SpecialRewardTier) domain.Points {
	var total domain.Points
	for _, tier := range tiers {
		total = total.Add(tier.BasePoints())
	}
	return total
}
