package stats

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-ko/habitquest/internal/domain"
)

type statKey struct {
	userID string
	t      domain.StatType
}

type fakeStatsRepo struct {
	values map[statKey]domain.StatValue
}

func newFakeStatsRepo() *fakeStatsRepo {
	return &fakeStatsRepo{values: make(map[statKey]domain.StatValue)}
}

func (f *fakeStatsRepo) GetUserStats(_ context.Context, userID string) ([]domain.UserStat, error) {
	var out []domain.UserStat
	for k, v := range f.values {
		if k.userID == userID {
			out = append(out, domain.UserStat{UserID: userID, Type: k.t, Value: v})
		}
	}
	return out, nil
}

func (f *fakeStatsRepo) GetStat(_ context.Context, userID string, t domain.StatType) (domain.StatValue, error) {
	return f.values[statKey{userID: userID, t: t}], nil
}

func (f *fakeStatsRepo) SaveStat(_ context.Context, userID string, t domain.StatType, v domain.StatValue) error {
	f.values[statKey{userID: userID, t: t}] = v
	return nil
}

func TestGetUserStats(t *testing.T) {
	ctx := context.Background()
	repo := newFakeStatsRepo()
	repo.values[statKey{userID: "user-1", t: domain.StatStrength}] = domain.StatValue{Current: 120, Allocated: 20}
	svc := NewService(repo)

	stats, err := svc.GetUserStats(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, stats, len(domain.AllStatTypes))

	// Fixed display order, gaps zero-filled
	assert.Equal(t, domain.StatStrength, stats[0].Type)
	assert.Equal(t, 120, stats[0].Current)
	assert.Equal(t, 100, stats[0].Base)
	assert.Equal(t, domain.GradeApprentice, stats[0].Grade)

	assert.Equal(t, domain.StatIntelligence, stats[1].Type)
	assert.Zero(t, stats[1].Current)
	assert.Equal(t, domain.GradeNovice, stats[1].Grade)
}

func TestAllocate(t *testing.T) {
	ctx := context.Background()

	t.Run("raises current and allocated", func(t *testing.T) {
		repo := newFakeStatsRepo()
		svc := NewService(repo)

		got, err := svc.Allocate(ctx, "user-1", domain.StatCreativity, 30)
		require.NoError(t, err)
		assert.Equal(t, 30, got.Current)
		assert.Equal(t, 30, got.Allocated)
		assert.Equal(t, 0, got.Base)
	})

	t.Run("rejects non-positive points", func(t *testing.T) {
		svc := NewService(newFakeStatsRepo())

		_, err := svc.Allocate(ctx, "user-1", domain.StatCreativity, 0)
		assert.ErrorIs(t, err, domain.ErrNonPositiveStatPoints)

		_, err = svc.Allocate(ctx, "user-1", domain.StatCreativity, -1)
		assert.ErrorIs(t, err, domain.ErrNonPositiveStatPoints)
	})

	t.Run("cap at 999", func(t *testing.T) {
		repo := newFakeStatsRepo()
		repo.values[statKey{userID: "user-1", t: domain.StatStrength}] = domain.StatValue{Current: 10}
		svc := NewService(repo)

		got, err := svc.Allocate(ctx, "user-1", domain.StatStrength, 989)
		require.NoError(t, err)
		assert.Equal(t, domain.StatValueCap, got.Current)
		assert.Equal(t, domain.GradeLegend, got.Grade)

		_, err = svc.Allocate(ctx, "user-1", domain.StatStrength, 1)
		assert.ErrorIs(t, err, domain.ErrStatCapacityExceeded)

		// Failed allocation must not move the stored value
		stored, _ := repo.GetStat(ctx, "user-1", domain.StatStrength)
		assert.Equal(t, domain.StatValueCap, stored.Current)
	})

	t.Run("overshoot fails instead of clamping", func(t *testing.T) {
		repo := newFakeStatsRepo()
		repo.values[statKey{userID: "user-1", t: domain.StatStrength}] = domain.StatValue{Current: 10}
		svc := NewService(repo)

		_, err := svc.Allocate(ctx, "user-1", domain.StatStrength, 990)
		assert.ErrorIs(t, err, domain.ErrStatCapacityExceeded)
	})

	t.Run("invalid stat type", func(t *testing.T) {
		svc := NewService(newFakeStatsRepo())
		_, err := svc.Allocate(ctx, "user-1", domain.StatType("LUCK"), 5)
		assert.ErrorIs(t, err, domain.ErrInvalidStatType)
	})
}

func TestEarn(t *testing.T) {
	ctx := context.Background()

	t.Run("raises current only", func(t *testing.T) {
		repo := newFakeStatsRepo()
		repo.values[statKey{userID: "user-1", t: domain.StatDiscipline}] = domain.StatValue{Current: 50, Allocated: 20}
		svc := NewService(repo)

		got, err := svc.Earn(ctx, "user-1", domain.StatDiscipline, 3)
		require.NoError(t, err)
		assert.Equal(t, 53, got.Current)
		assert.Equal(t, 20, got.Allocated)
		assert.Equal(t, 33, got.Base)
	})

	t.Run("respects the cap", func(t *testing.T) {
		repo := newFakeStatsRepo()
		repo.values[statKey{userID: "user-1", t: domain.StatDiscipline}] = domain.StatValue{Current: 999}
		svc := NewService(repo)

		_, err := svc.Earn(ctx, "user-1", domain.StatDiscipline, 1)
		assert.ErrorIs(t, err, domain.ErrStatCapacityExceeded)
	})
}

func TestGradeFor(t *testing.T) {
	tests := []struct {
		value int
		want  domain.StatGrade
	}{
		{0, domain.GradeNovice},
		{99, domain.GradeNovice},
		{100, domain.GradeApprentice},
		{249, domain.GradeApprentice},
		{250, domain.GradeAdept},
		{400, domain.GradeExpert},
		{550, domain.GradeMaster},
		{700, domain.GradeGrandmaster},
		{850, domain.GradeLegend},
		{999, domain.GradeLegend},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(tt.value), "value %d", tt.value)
	}
}
