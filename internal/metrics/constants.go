package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameMissionsStarted      = "missions_started_total"
	MetricNameMissionsCompleted    = "missions_completed_total"
	MetricNameMissionsExpired      = "missions_expired_total"
	MetricNameLevelUps             = "level_ups_total"
	MetricNameQuestsCompleted      = "daily_quests_completed_total"
	MetricNameQuestTiersEarned     = "quest_tiers_earned_total"
	MetricNameAchievementsUnlocked = "achievements_unlocked_total"
	MetricNameDailyResets          = "daily_resets_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextMissionsStarted      = "Total number of missions started"
	HelpTextMissionsCompleted    = "Total number of missions completed"
	HelpTextMissionsExpired      = "Total number of missions expired"
	HelpTextLevelUps             = "Total number of level ups"
	HelpTextQuestsCompleted      = "Total number of daily quest check-offs"
	HelpTextQuestTiersEarned     = "Total number of special reward tiers earned"
	HelpTextAchievementsUnlocked = "Total number of achievements unlocked"
	HelpTextDailyResets          = "Total number of daily resets completed"
)

// Common label names used across metrics
const (
	LabelMethod     = "method"
	LabelPath       = "path"
	LabelStatus     = "status"
	LabelType       = "type"
	LabelCategory   = "category"
	LabelDifficulty = "difficulty"
	LabelQuestType  = "quest_type"
	LabelTier       = "tier"
	LabelRarity     = "rarity"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}
