package level

import "github.com/minjae-ko/habitquest/internal/domain"

// MaxLevel is the level cap. Point totals beyond the last threshold still
// resolve to MaxLevel.
const MaxLevel = 50

// thresholds maps level N to the cumulative points required to reach it
// (index 0 = level 1). Strictly increasing; level 1 requires 0 points so every
// non-negative total resolves. Loaded once, never mutated.
var thresholds = [MaxLevel]domain.Points{
	0, 50, 100, 150, 200, 250, 300, 350, 400, 450,
	600, 750, 900, 1050, 1200, 1350, 1500, 1650, 1800, 1950,
	2300, 2650, 3000, 3350, 3700, 4050, 4400, 4750, 5100, 5450,
	6150, 6850, 7550, 8250, 8950, 9650, 10350, 11050, 11750, 12450,
	13755, 15060, 16365, 17670, 18975, 20280, 21585, 22890, 24195, 25500,
}

// titleBands maps contiguous level ranges to display titles. The final band
// is a catch-all for anything at or beyond the table's maximum.
var titleBands = []struct {
	min, max domain.Level
	title    domain.LevelTitle
}{
	{1, 5, domain.TitleBeginner},
	{6, 10, domain.TitleApprentice},
	{11, 20, domain.TitleAdept},
	{21, 30, domain.TitleExpert},
	{31, 40, domain.TitleMaster},
	{41, 45, domain.TitleGrandmaster},
	{46, 50, domain.TitleLegend},
}

// For returns the greatest level whose threshold is <= totalPoints.
func For(totalPoints domain.Points) domain.Level {
	// Binary search over the strictly increasing table.
	lo, hi := 0, MaxLevel-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if thresholds[mid] <= totalPoints {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return domain.Level(lo + 1)
}

// TitleFor returns the display title band for a level. Levels beyond the
// table's maximum fall into the mythic catch-all.
func TitleFor(l domain.Level) domain.LevelTitle {
	for _, band := range titleBands {
		if l >= band.min && l <= band.max {
			return band.title
		}
	}
	return domain.TitleMythic
}

// ThresholdFor returns the cumulative points required for a level.
func ThresholdFor(l domain.Level) domain.Points {
	if l < 1 {
		return 0
	}
	if l > MaxLevel {
		l = MaxLevel
	}
	return thresholds[l-1]
}

// Compute resolves the full level progress for a point total.
func Compute(totalPoints domain.Points) domain.LevelProgress {
	lvl := For(totalPoints)
	progress := domain.LevelProgress{
		Level:       lvl,
		Title:       TitleFor(lvl),
		TotalPoints: totalPoints,
	}

	if lvl >= MaxLevel {
		// At the cap there is no further growth.
		progress.PointsToNext = 0
		progress.PercentWithinLevel = 100
		return progress
	}

	current := thresholds[lvl-1]
	next := thresholds[lvl]
	progress.PointsToNext = next - totalPoints

	pct := int((totalPoints - current) * 100 / (next - current))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	progress.PercentWithinLevel = pct
	return progress
}

// Detect compares two point totals and reports the level transition between
// them, if any.
func Detect(before, after domain.Points) *domain.LevelUp {
	oldLevel := For(before)
	newLevel := For(after)
	if newLevel <= oldLevel {
		return nil
	}
	return &domain.LevelUp{
		OldLevel: oldLevel,
		NewLevel: newLevel,
		OldTitle: TitleFor(oldLevel),
		NewTitle: TitleFor(newLevel),
	}
}
