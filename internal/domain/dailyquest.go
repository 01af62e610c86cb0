package domain

import "time"

// QuestType is one of the four fixed daily routine checks.
type QuestType string

const (
	QuestExercise   QuestType = "EXERCISE"
	QuestReading    QuestType = "READING"
	QuestMeditation QuestType = "MEDITATION"
	QuestJournaling QuestType = "JOURNALING"
)

// AllQuestTypes lists the daily quest catalog in fixed display order.
var AllQuestTypes = []QuestType{QuestExercise, QuestReading, QuestMeditation, QuestJournaling}

// Valid reports whether t belongs to the fixed daily quest catalog.
func (t QuestType) Valid() bool {
	switch t {
	case QuestExercise, QuestReading, QuestMeditation, QuestJournaling:
		return true
	}
	return false
}

// CompletionPercentage is a daily completion value quantized down to the
// nearest multiple of 25. Only {0,25,50,75,100} are representable.
type CompletionPercentage int

// NewCompletionPercentage validates a raw percentage value.
func NewCompletionPercentage(v int) (CompletionPercentage, error) {
	if v < 0 || v > 100 || v%25 != 0 {
		return 0, ErrInvalidPercentage
	}
	return CompletionPercentage(v), nil
}

// Int returns the percentage as a plain int.
func (p CompletionPercentage) Int() int {
	return int(p)
}

// SpecialRewardTier is a bonus tier earned when daily completion crosses its
// threshold.
type SpecialRewardTier string

const (
	TierBronze   SpecialRewardTier = "BRONZE"
	TierSilver   SpecialRewardTier = "SILVER"
	TierGold     SpecialRewardTier = "GOLD"
	TierPlatinum SpecialRewardTier = "PLATINUM"
)

// AllSpecialRewardTiers lists tiers in ascending threshold order.
var AllSpecialRewardTiers = []SpecialRewardTier{TierBronze, TierSilver, TierGold, TierPlatinum}

// Threshold returns the completion percentage at which the tier is earned.
func (t SpecialRewardTier) Threshold() CompletionPercentage {
	switch t {
	case TierBronze:
		return 25
	case TierSilver:
		return 50
	case TierGold:
		return 75
	case TierPlatinum:
		return 100
	}
	return 0
}

// BasePoints returns the bonus points granted when the tier is first earned.
func (t SpecialRewardTier) BasePoints() Points {
	switch t {
	case TierBronze:
		return 10
	case TierSilver:
		return 25
	case TierGold:
		return 50
	case TierPlatinum:
		return 100
	}
	return 0
}

// DailyQuestProgress is the per (user, date, quest type) completion flag.
// RewardBanked records that the base reward for this record was already
// granted once, so unchecking and re-checking the same quest cannot earn it
// again.
type DailyQuestProgress struct {
	UserID       string     `json:"user_id"`
	QuestDate    time.Time  `json:"quest_date"`
	QuestType    QuestType  `json:"quest_type"`
	Completed    bool       `json:"completed"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	RewardBanked bool       `json:"reward_banked"`
}

// DailyQuestSummary is the per (user, date) aggregate over the four progress
// records. It is derived and recomputed from progress rows, never edited
// directly.
type DailyQuestSummary struct {
	UserID               string               `json:"user_id"`
	QuestDate            time.Time            `json:"quest_date"`
	CompletedCount       int                  `json:"completed_count"`
	CompletionPct        CompletionPercentage `json:"completion_pct"`
	SpecialRewardsEarned []SpecialRewardTier  `json:"special_rewards_earned"`
	TotalRewardPoints    Points               `json:"total_reward_points"`
}

// HasEarned reports whether the tier is already recorded for the day.
func (s DailyQuestSummary) HasEarned(tier SpecialRewardTier) bool {
	for _, t := range s.SpecialRewardsEarned {
		if t == tier {
			return true
		}
	}
	return false
}

// QuestCheckResult is what one check-off returns: the recomputed summary plus
// the rewards granted by this particular update.
type QuestCheckResult struct {
	Summary          DailyQuestSummary   `json:"summary"`
	AlreadyCompleted bool                `json:"already_completed"`
	BasePointsGained Points              `json:"base_points_gained"`
	NewTiers         []SpecialRewardTier `json:"new_tiers"`
	TierPointsGained Points              `json:"tier_points_gained"`
	NewTotal         Points              `json:"new_total_points"`
	LevelUp          *LevelUp            `json:"level_up,omitempty"`
	StatusMessage    string              `json:"status_message"`
	NextMilestone    *int                `json:"next_milestone,omitempty"`
}
