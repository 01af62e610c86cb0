package mission

// Admission control constants
const (
	// DailyStartLimit is the maximum number of missions a user may start per day
	DailyStartLimit = 3

	// MissionsPerDay is the number of missions generated per user per day
	MissionsPerDay = 3

	// MissionLifetimeHours is how long a generated mission stays startable
	MissionLifetimeHours = 24

	// ExpirySweepBatchSize caps how many due missions one sweep processes
	ExpirySweepBatchSize = 500
)

// Error message constants
const (
	ErrMsgUserIDRequired  = "user id is required"
	ErrMsgMissionNotOwned = "mission does not belong to user"
)

// Log message constants
const (
	LogMsgMissionStarted      = "Mission started"
	LogMsgMissionCompleted    = "Mission completed"
	LogMsgMissionExpired      = "Mission expired"
	LogMsgMissionsGenerated   = "Generated daily missions"
	LogMsgFailedToRollback    = "Failed to rollback mission start transaction"
	LogMsgProgressUpdated     = "Mission progress updated"
	LogMsgTemplatePoolTooThin = "Template pool has no entry for difficulty, filling randomly"
)
