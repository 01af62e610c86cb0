package dailyquest

// Reward constants
const (
	// QuestBasePoints is awarded per individual quest check-off
	QuestBasePoints = 5

	// DisciplineGainPerQuest is the Discipline stat gain per check-off
	DisciplineGainPerQuest = 1

	// QuestsPerDay is the size of the fixed daily catalog
	QuestsPerDay = 4
)

// Error message constants
const (
	ErrMsgUserIDRequired     = "user id is required"
	ErrMsgUncompleteNotToday = "only today's quests can be unchecked"
)

// Log message constants
const (
	LogMsgQuestCompleted   = "Daily quest completed"
	LogMsgQuestUncompleted = "Daily quest unchecked"
	LogMsgTierEarned       = "Special reward tier earned"
	LogMsgFailedToRollback = "Failed to rollback quest check transaction"
)

// Status messages keyed by completion band.
var statusMessages = map[int]string{
	0:   "A fresh day. Pick a quest and get moving!",
	25:  "Good start! Three quests to go.",
	50:  "Halfway there. Keep the momentum!",
	75:  "One more quest for a perfect day!",
	100: "Perfect day! Every quest completed.",
}

// StatusMessageFor returns the encouragement line for a completion band.
func StatusMessageFor(pct int) string {
	return statusMessages[pct]
}
