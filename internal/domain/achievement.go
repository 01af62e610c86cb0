package domain

import "time"

// AchievementType identifies an entry in the fixed achievement catalog.
type AchievementType string

const (
	AchFirstMission     AchievementType = "FIRST_MISSION"
	AchMissions10       AchievementType = "MISSIONS_10"
	AchMissions50       AchievementType = "MISSIONS_50"
	AchMissions100      AchievementType = "MISSIONS_100"
	AchStreak3          AchievementType = "STREAK_3"
	AchStreak7          AchievementType = "STREAK_7"
	AchStreak30         AchievementType = "STREAK_30"
	AchPoints1000       AchievementType = "POINTS_1000"
	AchPoints10000      AchievementType = "POINTS_10000"
	AchHealthSpecialist AchievementType = "HEALTH_SPECIALIST"
	AchCreativeArtist   AchievementType = "CREATIVE_ARTIST"
	AchSocialButterfly  AchievementType = "SOCIAL_BUTTERFLY"
)

// AchievementRarity is used only for display ordering.
type AchievementRarity string

const (
	RarityCommon    AchievementRarity = "COMMON"
	RarityRare      AchievementRarity = "RARE"
	RarityEpic      AchievementRarity = "EPIC"
	RarityLegendary AchievementRarity = "LEGENDARY"
	RarityMythic    AchievementRarity = "MYTHIC"
)

// Order returns the ascending sort key for the rarity.
func (r AchievementRarity) Order() int {
	switch r {
	case RarityCommon:
		return 1
	case RarityRare:
		return 2
	case RarityEpic:
		return 3
	case RarityLegendary:
		return 4
	case RarityMythic:
		return 5
	}
	return 0
}

// UserAchievement is the per (user, achievement type) progress record.
// UnlockedAt is meaningful only once Progress has reached 100.
type UserAchievement struct {
	UserID     string          `json:"user_id"`
	Type       AchievementType `json:"type"`
	Progress   int             `json:"progress"`
	UnlockedAt *time.Time      `json:"unlocked_at,omitempty"`
	IsNotified bool            `json:"is_notified"`
}

// Unlocked reports whether the achievement has been earned.
func (a UserAchievement) Unlocked() bool {
	return a.Progress >= 100 && a.UnlockedAt != nil
}

// UserAggregateStats is the read-side input for achievement evaluation.
// CategoryCompleted may be nil when per-category counts are unavailable;
// specialist achievements then evaluate to zero progress.
type UserAggregateStats struct {
	CompletedMissions int
	CurrentStreak     int
	TotalPoints       Points
	CategoryCompleted map[MissionCategory]int
}
