package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "mission.completed")
const (
	// EventTypeMissionStarted is published when a mission moves to IN_PROGRESS
	EventTypeMissionStarted = "mission.started"

	// EventTypeMissionCompleted is published when a mission is completed and
	// its rewards have been applied
	EventTypeMissionCompleted = "mission.completed"

	// EventTypeMissionExpired is published when the expiry sweep marks a
	// mission EXPIRED
	EventTypeMissionExpired = "mission.expired"

	// EventTypeLevelUp is published when a point award crosses a level
	// threshold
	EventTypeLevelUp = "user.level_up"

	// EventTypeQuestCompleted is published when a daily quest is checked off
	EventTypeQuestCompleted = "quest.completed"

	// EventTypeTierEarned is published when a special reward tier is newly
	// crossed
	EventTypeTierEarned = "quest.tier_earned"

	// EventTypeAchievementUnlocked is published when an achievement reaches
	// 100 progress for the first time
	EventTypeAchievementUnlocked = "achievement.unlocked"

	// EventTypeDailyResetComplete is published when the midnight reset
	// finishes
	EventTypeDailyResetComplete = "daily_reset.complete"
)
