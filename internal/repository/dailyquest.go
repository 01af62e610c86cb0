package repository

import (
	"context"
	"time"

	"github.com/minjae-ko/habitquest/internal/domain"
)

// DailyQuests defines the interface for daily quest persistence
type DailyQuests interface {
	ListProgress(ctx context.Context, userID string, day time.Time) ([]domain.DailyQuestProgress, error)
	GetSummary(ctx context.Context, userID string, day time.Time) (*domain.DailyQuestSummary, error)

	// BeginCheck opens a transaction scoped to one (user, day) so a check-off
	// and its summary recomputation are atomic against concurrent check-offs
	// of other quests in the same day.
	BeginCheck(ctx context.Context, userID string, day time.Time) (QuestCheckTx, error)

	// GetCurrentStreak returns the number of consecutive fully-completed days
	// ending today or yesterday.
	GetCurrentStreak(ctx context.Context, userID string, today time.Time) (int, error)
}

// QuestCheckTx is the transactional view used by quest check-off.
type QuestCheckTx interface {
	ProgressForUpdate(ctx context.Context, questType domain.QuestType) (*domain.DailyQuestProgress, error)
	SaveProgress(ctx context.Context, progress domain.DailyQuestProgress) error
	Summary(ctx context.Context) (*domain.DailyQuestSummary, error)
	SaveSummary(ctx context.Context, summary domain.DailyQuestSummary) error

	// AddUserPoints adjusts the user's total within the transaction, so the
	// award commits or rolls back together with the check-off.
	AddUserPoints(ctx context.Context, delta domain.Points) (domain.Points, error)
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
