package worker

import "time"

// Log messages for daily reset worker operations
const (
	LogMsgDailyResetStandby   = "Daily reset worker on standby"
	LogMsgDailyResetApproach  = "Daily reset scheduled"
	LogMsgDailyResetStarting  = "Daily reset starting"
	LogMsgDailyResetCompleted = "Daily reset completed"
	LogMsgDailyResetFailed    = "Daily reset failed"
)

// Log messages for mission expiry worker operations
const (
	LogMsgExpirySweepFailed    = "Mission expiry sweep failed"
	LogMsgExpirySweepCompleted = "Mission expiry sweep completed"
)

// DefaultExpirySweepInterval is how often the expiry worker scans for missions
// past their deadline.
const DefaultExpirySweepInterval = 5 * time.Minute
