package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// User operation error messages
	ErrMsgRegisterUserFailed = "Failed to register user"
	ErrMsgGetProfileFailed   = "Failed to get profile"

	// Stat operation error messages
	ErrMsgGetStatsFailed     = "Failed to get stats"
	ErrMsgAllocateStatFailed = "Failed to allocate stat points"

	// Mission operation error messages
	ErrMsgListMissionsFailed    = "Failed to list missions"
	ErrMsgStartMissionFailed    = "Failed to start mission"
	ErrMsgUpdateProgressFailed  = "Failed to update mission progress"
	ErrMsgCompleteMissionFailed = "Failed to complete mission"
	ErrMsgInvalidMissionID      = "Invalid mission id"

	// Daily quest operation error messages
	ErrMsgGetDailyQuestsFailed  = "Failed to get daily quests"
	ErrMsgCompleteQuestFailed   = "Failed to complete daily quest"
	ErrMsgUncompleteQuestFailed = "Failed to uncheck daily quest"

	// Achievement operation error messages
	ErrMsgListAchievementsFailed = "Failed to list achievements"

	// Admin operation error messages
	ErrMsgDailyResetFailed = "Failed to run daily reset"
)
