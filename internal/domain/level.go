package domain

// Level is derived from cumulative Points via the level table. It is never set
// directly and is always >= 1.
type Level int

// LevelTitle is the display band a level falls into.
type LevelTitle string

const (
	TitleBeginner    LevelTitle = "BEGINNER"
	TitleApprentice  LevelTitle = "APPRENTICE"
	TitleAdept       LevelTitle = "ADEPT"
	TitleExpert      LevelTitle = "EXPERT"
	TitleMaster      LevelTitle = "MASTER"
	TitleGrandmaster LevelTitle = "GRANDMASTER"
	TitleLegend      LevelTitle = "LEGEND"
	TitleMythic      LevelTitle = "MYTHIC"
)

// LevelProgress describes where a point total sits within the level curve.
type LevelProgress struct {
	Level              Level      `json:"level"`
	Title              LevelTitle `json:"title"`
	TotalPoints        Points     `json:"total_points"`
	PointsToNext       Points     `json:"points_to_next"`
	PercentWithinLevel int        `json:"percent_within_level"`
}

// LevelUp captures an observed level transition for downstream notification.
type LevelUp struct {
	OldLevel Level      `json:"old_level"`
	NewLevel Level      `json:"new_level"`
	OldTitle LevelTitle `json:"old_title"`
	NewTitle LevelTitle `json:"new_title"`
}
