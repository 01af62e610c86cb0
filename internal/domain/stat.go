package domain

// StatType identifies one of the six character dimensions.
type StatType string

const (
	StatStrength     StatType = "STRENGTH"
	StatIntelligence StatType = "INTELLIGENCE"
	StatCreativity   StatType = "CREATIVITY"
	StatSociability  StatType = "SOCIABILITY"
	StatAdventurous  StatType = "ADVENTUROUS"
	StatDiscipline   StatType = "DISCIPLINE"
)

// AllStatTypes lists every stat dimension in display order.
var AllStatTypes = []StatType{
	StatStrength,
	StatIntelligence,
	StatCreativity,
	StatSociability,
	StatAdventurous,
	StatDiscipline,
}

// Valid reports whether t is one of the six known stat types.
func (t StatType) Valid() bool {
	switch t {
	case StatStrength, StatIntelligence, StatCreativity,
		StatSociability, StatAdventurous, StatDiscipline:
		return true
	}
	return false
}

// StatGrade is the display band a stat value falls into.
type StatGrade string

const (
	GradeNovice      StatGrade = "NOVICE"
	GradeApprentice  StatGrade = "APPRENTICE"
	GradeAdept       StatGrade = "ADEPT"
	GradeExpert      StatGrade = "EXPERT"
	GradeMaster      StatGrade = "MASTER"
	GradeGrandmaster StatGrade = "GRANDMASTER"
	GradeLegend      StatGrade = "LEGEND"
)

// StatValueCap is the maximum Current value for any stat.
const StatValueCap = 999

// StatValue holds one stat dimension for one user. Current includes both
// allocated and earned points; Base is always derived, never stored.
type StatValue struct {
	Current   int `json:"current"`
	Allocated int `json:"allocated"`
}

// Base returns the earned (non-allocated) portion of the stat.
func (v StatValue) Base() int {
	return v.Current - v.Allocated
}

// Allocate returns a copy with points added to both Current and Allocated.
// points must be positive and the result must stay within StatValueCap.
func (v StatValue) Allocate(points int) (StatValue, error) {
	if points <= 0 {
		return v, ErrNonPositiveStatPoints
	}
	if v.Current+points > StatValueCap {
		return v, ErrStatCapacityExceeded
	}
	v.Current += points
	v.Allocated += points
	return v, nil
}

// Earn returns a copy with points added to Current only. Used for automatic
// stat gains from completed activity.
func (v StatValue) Earn(points int) (StatValue, error) {
	if points <= 0 {
		return v, ErrNonPositiveStatPoints
	}
	if v.Current+points > StatValueCap {
		return v, ErrStatCapacityExceeded
	}
	v.Current += points
	return v, nil
}

// UserStat pairs a stat dimension with its value for persistence and listing.
type UserStat struct {
	UserID string    `json:"user_id"`
	Type   StatType  `json:"type"`
	Value  StatValue `json:"value"`
}
