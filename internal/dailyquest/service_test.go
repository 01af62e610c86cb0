package dailyquest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/repository"
)

type questKey struct {
	day       string
	questType domain.QuestType
}

type fakeQuestRepo struct {
	progress  map[questKey]*domain.DailyQuestProgress
	summaries map[string]*domain.DailyQuestSummary
	totals    map[string]domain.Points
	streak    int
}

func newFakeQuestRepo() *fakeQuestRepo {
	return &fakeQuestRepo{
		progress:  make(map[questKey]*domain.DailyQuestProgress),
		summaries: make(map[string]*domain.DailyQuestSummary),
		totals:    make(map[string]domain.Points),
	}
}

func (f *fakeQuestRepo) ListProgress(_ context.Context, userID string, day time.Time) ([]domain.DailyQuestProgress, error) {
	var out []domain.DailyQuestProgress
	for k, p := range f.progress {
		if p.UserID == userID && k.day == day.Format(time.DateOnly) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeQuestRepo) GetSummary(_ context.Context, _ string, day time.Time) (*domain.DailyQuestSummary, error) {
	s, ok := f.summaries[day.Format(time.DateOnly)]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeQuestRepo) BeginCheck(_ context.Context, userID string, day time.Time) (repository.QuestCheckTx, error) {
	return &fakeQuestTx{repo: f, userID: userID, day: day}, nil
}

func (f *fakeQuestRepo) GetCurrentStreak(_ context.Context, _ string, _ time.Time) (int, error) {
	return f.streak, nil
}

type fakeQuestTx struct {
	repo   *fakeQuestRepo
	userID string
	day    time.Time
}

func (t *fakeQuestTx) key(questType domain.QuestType) questKey {
	return questKey{day: t.day.Format(time.DateOnly), questType: questType}
}

func (t *fakeQuestTx) ProgressForUpdate(_ context.Context, questType domain.QuestType) (*domain.DailyQuestProgress, error) {
	p, ok := t.repo.progress[t.key(questType)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (t *fakeQuestTx) SaveProgress(_ context.Context, p domain.DailyQuestProgress) error {
	cp := p
	t.repo.progress[t.key(p.QuestType)] = &cp
	return nil
}

func (t *fakeQuestTx) Summary(_ context.Context) (*domain.DailyQuestSummary, error) {
	return t.repo.GetSummary(context.Background(), t.userID, t.day)
}

func (t *fakeQuestTx) SaveSummary(_ context.Context, s domain.DailyQuestSummary) error {
	cp := s
	t.repo.summaries[t.day.Format(time.DateOnly)] = &cp
	return nil
}

func (t *fakeQuestTx) AddUserPoints(_ context.Context, delta domain.Points) (domain.Points, error) {
	t.repo.totals[t.userID] = t.repo.totals[t.userID].Add(delta)
	return t.repo.totals[t.userID], nil
}

func (t *fakeQuestTx) Commit(_ context.Context) error   { return nil }
func (t *fakeQuestTx) Rollback(_ context.Context) error { return nil }

func newTestService(repo *fakeQuestRepo, now time.Time) *service {
	return &service{
		repo: repo,
		now:  func() time.Time { return now },
	}
}

func TestCompleteQuest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC)

	t.Run("first check-off earns base points and bronze", func(t *testing.T) {
		repo := newFakeQuestRepo()
		svc := newTestService(repo, now)

		result, err := svc.CompleteQuest(ctx, "user-1", domain.QuestExercise)
		require.NoError(t, err)
		assert.False(t, result.AlreadyCompleted)
		assert.Equal(t, domain.Points(QuestBasePoints), result.BasePointsGained)
		assert.Equal(t, []domain.SpecialRewardTier{domain.TierBronze}, result.NewTiers)
		assert.Equal(t, domain.Points(10), result.TierPointsGained)
		assert.Equal(t, domain.Points(15), result.NewTotal)
		assert.Equal(t, 1, result.Summary.CompletedCount)
		assert.Equal(t, domain.CompletionPercentage(25), result.Summary.CompletionPct)
		require.NotNil(t, result.NextMilestone)
		assert.Equal(t, 50, *result.NextMilestone)
	})

	t.Run("re-check is an idempotent no-op", func(t *testing.T) {
		repo := newFakeQuestRepo()
		svc := newTestService(repo, now)

		_, err := svc.CompleteQuest(ctx, "user-1", domain.QuestReading)
		require.NoError(t, err)
		totalAfterFirst := repo.totals["user-1"]

		result, err := svc.CompleteQuest(ctx, "user-1", domain.QuestReading)
		require.NoError(t, err)
		assert.True(t, result.AlreadyCompleted)
		assert.Zero(t, result.BasePointsGained)
		assert.Empty(t, result.NewTiers)
		assert.Equal(t, totalAfterFirst, repo.totals["user-1"])
		assert.Equal(t, 1, result.Summary.CompletedCount)
	})

	t.Run("perfect day earns all four tiers and 185 special points", func(t *testing.T) {
		repo := newFakeQuestRepo()
		svc := newTestService(repo, now)

		var last *domain.QuestCheckResult
		for _, qt := range domain.AllQuestTypes {
			var err error
			last, err = svc.CompleteQuest(ctx, "user-1", qt)
			require.NoError(t, err)
		}

		assert.Equal(t, 4, last.Summary.CompletedCount)
		assert.Equal(t, domain.CompletionPercentage(100), last.Summary.CompletionPct)
		assert.Equal(t, []domain.SpecialRewardTier{domain.TierPlatinum}, last.NewTiers)
		assert.Nil(t, last.NextMilestone)
		assert.Len(t, last.Summary.SpecialRewardsEarned, 4)

		// 4 quests * 5 base + 10+25+50+100 tier bonuses
		assert.Equal(t, domain.Points(205), repo.totals["user-1"])
		assert.Equal(t, domain.Points(205), last.Summary.TotalRewardPoints)
	})

	t.Run("invalid quest type", func(t *testing.T) {
		svc := newTestService(newFakeQuestRepo(), now)
		_, err := svc.CompleteQuest(ctx, "user-1", domain.QuestType("NAPPING"))
		assert.ErrorIs(t, err, domain.ErrInvalidQuestType)
	})
}

func TestUncompleteQuest(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	today := DateOf(now)

	t.Run("unchecks today's quest without clawing back tiers", func(t *testing.T) {
		repo := newFakeQuestRepo()
		svc := newTestService(repo, now)

		_, err := svc.CompleteQuest(ctx, "user-1", domain.QuestMeditation)
		require.NoError(t, err)

		summary, err := svc.UncompleteQuest(ctx, "user-1", domain.QuestMeditation, today)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.CompletedCount)
		assert.Equal(t, domain.CompletionPercentage(0), summary.CompletionPct)
		assert.Equal(t, []domain.SpecialRewardTier{domain.TierBronze}, summary.SpecialRewardsEarned)
		assert.Equal(t, domain.Points(15), summary.TotalRewardPoints)
		assert.Equal(t, domain.Points(15), repo.totals["user-1"])
	})

	t.Run("re-completing after uncheck pays no reward twice", func(t *testing.T) {
		repo := newFakeQuestRepo()
		svc := newTestService(repo, now)

		_, err := svc.CompleteQuest(ctx, "user-1", domain.QuestMeditation)
		require.NoError(t, err)
		_, err = svc.UncompleteQuest(ctx, "user-1", domain.QuestMeditation, today)
		require.NoError(t, err)

		result, err := svc.CompleteQuest(ctx, "user-1", domain.QuestMeditation)
		require.NoError(t, err)
		assert.Empty(t, result.NewTiers)
		assert.Zero(t, result.BasePointsGained)
		assert.Equal(t, 1, result.Summary.CompletedCount)
		assert.Equal(t, domain.Points(15), repo.totals["user-1"])
	})

	t.Run("uncheck and re-check cycles cannot farm points", func(t *testing.T) {
		repo := newFakeQuestRepo()
		svc := newTestService(repo, now)

		_, err := svc.CompleteQuest(ctx, "user-1", domain.QuestJournaling)
		require.NoError(t, err)

		for i := 0; i < 5; i++ {
			_, err = svc.UncompleteQuest(ctx, "user-1", domain.QuestJournaling, today)
			require.NoError(t, err)
			_, err = svc.CompleteQuest(ctx, "user-1", domain.QuestJournaling)
			require.NoError(t, err)
		}

		summary, err := svc.GetDay(ctx, "user-1", today)
		require.NoError(t, err)
		assert.Equal(t, domain.Points(15), repo.totals["user-1"])
		assert.Equal(t, domain.Points(15), summary.Summary.TotalRewardPoints)
	})

	t.Run("rejects past days", func(t *testing.T) {
		svc := newTestService(newFakeQuestRepo(), now)
		_, err := svc.UncompleteQuest(ctx, "user-1", domain.QuestExercise, today.AddDate(0, 0, -1))
		assert.ErrorIs(t, err, domain.ErrBusinessRuleViolation)
	})

	t.Run("unchecking a never-completed quest is a no-op", func(t *testing.T) {
		svc := newTestService(newFakeQuestRepo(), now)
		summary, err := svc.UncompleteQuest(ctx, "user-1", domain.QuestExercise, today)
		require.NoError(t, err)
		assert.Equal(t, 0, summary.CompletedCount)
	})
}

func TestGetDay(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	repo := newFakeQuestRepo()
	svc := newTestService(repo, now)

	_, err := svc.CompleteQuest(ctx, "user-1", domain.QuestReading)
	require.NoError(t, err)

	day, err := svc.GetDay(ctx, "user-1", now)
	require.NoError(t, err)

	// All four catalog entries appear even though only one has a row.
	require.Len(t, day.Quests, 4)
	assert.Equal(t, domain.AllQuestTypes[0], day.Quests[0].QuestType)

	completed := 0
	for _, q := range day.Quests {
		if q.Completed {
			completed++
			assert.Equal(t, domain.QuestReading, q.QuestType)
		}
	}
	assert.Equal(t, 1, completed)
	assert.Equal(t, 1, day.Summary.CompletedCount)
}

func TestGetStreak(t *testing.T) {
	repo := newFakeQuestRepo()
	repo.streak = 6
	svc := newTestService(repo, time.Now())

	streak, err := svc.GetStreak(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, 6, streak)
}
