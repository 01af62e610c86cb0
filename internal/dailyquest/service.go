package dailyquest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/event"
	"github.com/minjae-ko/habitquest/internal/level"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/repository"
)

// DayStatus is the read view for one user day.
type DayStatus struct {
	Summary domain.DailyQuestSummary    `json:"summary"`
	Quests  []domain.DailyQuestProgress `json:"quests"`
}

// Service defines the interface for daily quest operations
type Service interface {
	// CompleteQuest checks off one of today's quests. Re-checking an already
	// completed quest is a no-op.
	CompleteQuest(ctx context.Context, userID string, questType domain.QuestType) (*domain.QuestCheckResult, error)

	// UncompleteQuest unchecks a quest. Only today's records may be unchecked.
	UncompleteQuest(ctx context.Context, userID string, questType domain.QuestType, day time.Time) (*domain.DailyQuestSummary, error)

	GetDay(ctx context.Context, userID string, day time.Time) (*DayStatus, error)
	GetStreak(ctx context.Context, userID string) (int, error)
}

type service struct {
	repo      repository.DailyQuests
	publisher *event.ResilientPublisher
	now       func() time.Time
}

// NewService creates a new daily quest service
func NewService(repo repository.DailyQuests, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

// DateOf truncates t to its UTC calendar day.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *service) CompleteQuest(ctx context.Context, userID string, questType domain.QuestType) (*domain.QuestCheckResult, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}
	if !questType.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidQuestType, questType)
	}

	now := s.now()
	today := DateOf(now)

	tx, err := s.repo.BeginCheck(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to begin quest check transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			log.Warn(LogMsgFailedToRollback, "error", err)
		}
	}()

	progress, err := tx.ProgressForUpdate(ctx, questType)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &domain.DailyQuestProgress{UserID: userID, QuestDate: today, QuestType: questType}
	}

	summary, err := tx.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		summary = &domain.DailyQuestSummary{UserID: userID, QuestDate: today}
	}

	if progress.Completed {
		return &domain.QuestCheckResult{
			Summary:          *summary,
			AlreadyCompleted: true,
			StatusMessage:    StatusMessageFor(summary.CompletionPct.Int()),
			NextMilestone:    NextMilestone(summary.CompletionPct),
		}, nil
	}

	// The base reward banks once per (user, date, quest). Unchecking and
	// re-checking the same quest flips the flag back on without paying again.
	newlyBanked := !progress.RewardBanked

	progress.Completed = true
	progress.CompletedAt = &now
	progress.RewardBanked = true
	if err := tx.SaveProgress(ctx, *progress); err != nil {
		return nil, fmt.Errorf("failed to save quest progress: %w", err)
	}

	summary.CompletedCount++
	summary.CompletionPct = Percentage(summary.CompletedCount, QuestsPerDay)

	var basePoints domain.Points
	if newlyBanked {
		basePoints = QuestBasePoints
	}
	newTiers := NewlyCrossed(*summary, summary.CompletionPct)
	tierPoints := TierPoints(newTiers)
	summary.SpecialRewardsEarned = append(summary.SpecialRewardsEarned, newTiers...)
	summary.TotalRewardPoints = summary.TotalRewardPoints.Add(basePoints).Add(tierPoints)

	if err := tx.SaveSummary(ctx, *summary); err != nil {
		return nil, fmt.Errorf("failed to save quest summary: %w", err)
	}

	gained := basePoints.Add(tierPoints)
	newTotal, err := tx.AddUserPoints(ctx, gained)
	if err != nil {
		return nil, fmt.Errorf("failed to award quest points: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit quest check: %w", err)
	}

	result := &domain.QuestCheckResult{
		Summary:          *summary,
		BasePointsGained: basePoints,
		NewTiers:         newTiers,
		TierPointsGained: tierPoints,
		NewTotal:         newTotal,
		LevelUp:          level.Detect(newTotal.SubtractSaturating(gained), newTotal),
		StatusMessage:    StatusMessageFor(summary.CompletionPct.Int()),
		NextMilestone:    NextMilestone(summary.CompletionPct),
	}

	log.Info(LogMsgQuestCompleted,
		"user_id", userID,
		"quest_type", questType,
		"completed_count", summary.CompletedCount,
		"completion_pct", summary.CompletionPct.Int(),
		"new_tiers", len(newTiers))

	if s.publisher != nil {
		if newlyBanked {
			s.publisher.PublishWithRetry(ctx, event.NewQuestCompletedEvent(
				userID, questType, today.Format(time.DateOnly),
				summary.CompletedCount, summary.CompletionPct.Int()))
		}
		for _, tier := range newTiers {
			log.Info(LogMsgTierEarned, "user_id", userID, "tier", tier)
			s.publisher.PublishWithRetry(ctx, event.NewTierEarnedEvent(userID, tier))
		}
		if result.LevelUp != nil {
			s.publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(userID, *result.LevelUp))
		}
	}

	return result, nil
}

// UncompleteQuest unchecks today's record. Earned tiers and already-granted
// points are never clawed back; only the count and percentage are recomputed.
// The record stays reward-banked, so a later re-check pays no base reward.
func (s *service) UncompleteQuest(ctx context.Context, userID string, questType domain.QuestType, day time.Time) (*domain.DailyQuestSummary, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}
	if !questType.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidQuestType, questType)
	}

	today := DateOf(s.now())
	if !DateOf(day).Equal(today) {
		return nil, fmt.Errorf("%w: %s", domain.ErrBusinessRuleViolation, ErrMsgUncompleteNotToday)
	}

	tx, err := s.repo.BeginCheck(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to begin quest check transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			log.Warn(LogMsgFailedToRollback, "error", err)
		}
	}()

	progress, err := tx.ProgressForUpdate(ctx, questType)
	if err != nil {
		return nil, err
	}

	summary, err := tx.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		summary = &domain.DailyQuestSummary{UserID: userID, QuestDate: today}
	}

	if progress == nil || !progress.Completed {
		return summary, nil
	}

	progress.Completed = false
	progress.CompletedAt = nil
	if err := tx.SaveProgress(ctx, *progress); err != nil {
		return nil, fmt.Errorf("failed to save quest progress: %w", err)
	}

	summary.CompletedCount--
	summary.CompletionPct = Percentage(summary.CompletedCount, QuestsPerDay)
	if err := tx.SaveSummary(ctx, *summary); err != nil {
		return nil, fmt.Errorf("failed to save quest summary: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit quest uncheck: %w", err)
	}

	log.Info(LogMsgQuestUncompleted, "user_id", userID, "quest_type", questType, "completed_count", summary.CompletedCount)
	return summary, nil
}

func (s *service) GetDay(ctx context.Context, userID string, day time.Time) (*DayStatus, error) {
	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}

	day = DateOf(day)

	progress, err := s.repo.ListProgress(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	summary, err := s.repo.GetSummary(ctx, userID, day)
	if err != nil {
		return nil, err
	}
	if summary == nil {
		summary = &domain.DailyQuestSummary{UserID: userID, QuestDate: day}
	}

	// Fill catalog gaps so the client always sees all four quests.
	byType := make(map[domain.QuestType]domain.DailyQuestProgress, len(progress))
	for _, p := range progress {
		byType[p.QuestType] = p
	}
	quests := make([]domain.DailyQuestProgress, 0, len(domain.AllQuestTypes))
	for _, qt := range domain.AllQuestTypes {
		p, ok := byType[qt]
		if !ok {
			p = domain.DailyQuestProgress{UserID: userID, QuestDate: day, QuestType: qt}
		}
		quests = append(quests, p)
	}

	return &DayStatus{Summary: *summary, Quests: quests}, nil
}

func (s *service) GetStreak(ctx context.Context, userID string) (int, error) {
	if userID == "" {
		return 0, errors.New(ErrMsgUserIDRequired)
	}
	return s.repo.GetCurrentStreak(ctx, userID, DateOf(s.now()))
}
