package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/repository"
)

type achievementRepository struct {
	db       *pgxpool.Pool
	missions repository.Missions
	quests   repository.DailyQuests
	users    repository.Users
}

// NewAchievementRepository creates a new PostgreSQL achievement repository.
// The sibling repositories supply the aggregate counters evaluation reads.
func NewAchievementRepository(db *pgxpool.Pool, missions repository.Missions, quests repository.DailyQuests, users repository.Users) repository.Achievements {
	return &achievementRepository{db: db, missions: missions, quests: quests, users: users}
}

func (r *achievementRepository) ListByUser(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	query := `
		SELECT user_id, achievement_type, progress, unlocked_at, is_notified
		FROM user_achievements
		WHERE user_id = $1
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var achievements []domain.UserAchievement
	for rows.Next() {
		var a domain.UserAchievement
		if err := rows.Scan(&a.UserID, &a.Type, &a.Progress, &a.UnlockedAt, &a.IsNotified); err != nil {
			return nil, err
		}
		achievements = append(achievements, a)
	}
	return achievements, rows.Err()
}

// Upsert writes the record with monotone progress and write-once unlocked_at.
// The (user_id, achievement_type) unique constraint makes concurrent unlocks
// converge on a single row; the stored row is returned.
func (r *achievementRepository) Upsert(ctx context.Context, a domain.UserAchievement) (domain.UserAchievement, error) {
	query := `
		INSERT INTO user_achievements (user_id, achievement_type, progress, unlocked_at, is_notified)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, achievement_type)
		DO UPDATE SET
			progress = GREATEST(user_achievements.progress, EXCLUDED.progress),
			unlocked_at = COALESCE(user_achievements.unlocked_at, EXCLUDED.unlocked_at)
		RETURNING user_id, achievement_type, progress, unlocked_at, is_notified
	`

	var saved domain.UserAchievement
	err := r.db.QueryRow(ctx, query, a.UserID, string(a.Type), a.Progress, a.UnlockedAt, a.IsNotified).
		Scan(&saved.UserID, &saved.Type, &saved.Progress, &saved.UnlockedAt, &saved.IsNotified)
	if err != nil {
		return domain.UserAchievement{}, fmt.Errorf("failed to upsert achievement: %w", err)
	}
	return saved, nil
}

func (r *achievementRepository) GetAggregateStats(ctx context.Context, userID string) (domain.UserAggregateStats, error) {
	var agg domain.UserAggregateStats

	completed, err := r.missions.CountCompleted(ctx, userID)
	if err != nil {
		return agg, fmt.Errorf("failed to count completed missions: %w", err)
	}
	agg.CompletedMissions = completed

	byCategory, err := r.missions.CountCompletedByCategory(ctx, userID)
	if err != nil {
		return agg, fmt.Errorf("failed to count missions by category: %w", err)
	}
	agg.CategoryCompleted = byCategory

	u, err := r.users.GetUser(ctx, userID)
	if err != nil {
		return agg, err
	}
	agg.TotalPoints = u.TotalPoints

	streak, err := r.quests.GetCurrentStreak(ctx, userID, today())
	if err != nil {
		return agg, fmt.Errorf("failed to compute streak: %w", err)
	}
	agg.CurrentStreak = streak

	return agg, nil
}
