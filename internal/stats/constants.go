package stats

import "github.com/minjae-ko/habitquest/internal/domain"

// QuestDisciplineGain is the Discipline earned per daily quest check-off.
const QuestDisciplineGain = 1

// Error message constants
const (
	ErrMsgUserIDRequired = "user id is required"
)

// Log message constants
const (
	LogMsgStatAllocated    = "Stat points allocated"
	LogMsgStatEarned       = "Stat points earned"
	LogMsgFailedToGetStat  = "Failed to get stat"
	LogMsgFailedToEarnStat = "Failed to earn stat from event"
)

// gradeBands maps contiguous value ranges to display grades. Fixed data,
// loaded once.
var gradeBands = []struct {
	min, max int
	grade    domain.StatGrade
}{
	{0, 99, domain.GradeNovice},
	{100, 249, domain.GradeApprentice},
	{250, 399, domain.GradeAdept},
	{400, 549, domain.GradeExpert},
	{550, 699, domain.GradeMaster},
	{700, 849, domain.GradeGrandmaster},
	{850, 999, domain.GradeLegend},
}

// GradeFor returns the grade band containing value. Values outside [0,999]
// clamp into the nearest band.
func GradeFor(value int) domain.StatGrade {
	for _, band := range gradeBands {
		if value >= band.min && value <= band.max {
			return band.grade
		}
	}
	if value < 0 {
		return domain.GradeNovice
	}
	return domain.GradeLegend
}
