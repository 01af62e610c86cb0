package level

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-ko/habitquest/internal/domain"
)

func TestTableIsStrictlyIncreasing(t *testing.T) {
	for i := 1; i < MaxLevel; i++ {
		require.Greater(t, thresholds[i].Int(), thresholds[i-1].Int(),
			"threshold for level %d must exceed level %d", i+1, i)
	}
}

func TestForAnchors(t *testing.T) {
	assert.Equal(t, domain.Level(1), For(0))
	assert.Equal(t, domain.Level(1), For(49))
	assert.Equal(t, domain.Level(2), For(50))
	assert.Equal(t, domain.Level(50), For(25500))
	assert.Equal(t, domain.Level(50), For(999999))
}

func TestForIsMonotonic(t *testing.T) {
	prev := For(0)
	for pts := domain.Points(0); pts <= 26000; pts += 7 {
		lvl := For(pts)
		require.GreaterOrEqual(t, lvl, prev, "level must not decrease at %d points", pts)
		prev = lvl
	}
}

func TestForMatchesThresholdBoundaries(t *testing.T) {
	for l := domain.Level(1); l <= MaxLevel; l++ {
		th := ThresholdFor(l)
		assert.Equal(t, l, For(th), "exact threshold resolves to its level")
		if l > 1 {
			assert.Equal(t, l-1, For(th-1), "one point short stays on previous level")
		}
	}
}

func TestTitleBands(t *testing.T) {
	cases := []struct {
		level domain.Level
		title domain.LevelTitle
	}{
		{1, domain.TitleBeginner},
		{5, domain.TitleBeginner},
		{6, domain.TitleApprentice},
		{10, domain.TitleApprentice},
		{11, domain.TitleAdept},
		{20, domain.TitleAdept},
		{21, domain.TitleExpert},
		{30, domain.TitleExpert},
		{31, domain.TitleMaster},
		{40, domain.TitleMaster},
		{41, domain.TitleGrandmaster},
		{45, domain.TitleGrandmaster},
		{46, domain.TitleLegend},
		{50, domain.TitleLegend},
		{51, domain.TitleMythic},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.title, TitleFor(tc.level), "level %d", tc.level)
	}
}

func TestComputeMidLevel(t *testing.T) {
	// Level 2 spans [50,100); 75 points is halfway through it.
	p := Compute(75)
	assert.Equal(t, domain.Level(2), p.Level)
	assert.Equal(t, domain.TitleBeginner, p.Title)
	assert.Equal(t, domain.Points(25), p.PointsToNext)
	assert.Equal(t, 50, p.PercentWithinLevel)
}

func TestComputeAtCap(t *testing.T) {
	p := Compute(30000)
	assert.Equal(t, domain.Level(50), p.Level)
	assert.Equal(t, domain.Points(0), p.PointsToNext)
	assert.Equal(t, 100, p.PercentWithinLevel)
	assert.Equal(t, domain.TitleLegend, p.Title)
}

func TestComputeAtExactThreshold(t *testing.T) {
	p := Compute(50)
	assert.Equal(t, domain.Level(2), p.Level)
	assert.Equal(t, 0, p.PercentWithinLevel)
	assert.Equal(t, domain.Points(50), p.PointsToNext)
}

func TestDetect(t *testing.T) {
	up := Detect(40, 60)
	require.NotNil(t, up)
	assert.Equal(t, domain.Level(1), up.OldLevel)
	assert.Equal(t, domain.Level(2), up.NewLevel)
	assert.Equal(t, domain.TitleBeginner, up.OldTitle)
	assert.Equal(t, domain.TitleBeginner, up.NewTitle)

	assert.Nil(t, Detect(60, 60))
	assert.Nil(t, Detect(60, 70), "no threshold crossed within level 2")
}
