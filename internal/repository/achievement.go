package repository

import (
	"context"

	"github.com/minjae-ko/habitquest/internal/domain"
)

// Achievements defines the interface for achievement persistence
type Achievements interface {
	ListByUser(ctx context.Context, userID string) ([]domain.UserAchievement, error)

	// Upsert inserts or updates the (user, type) record. Progress never
	// decreases and unlocked_at is write-once: a concurrent duplicate unlock
	// resolves to the winner's row, which is returned.
	Upsert(ctx context.Context, achievement domain.UserAchievement) (domain.UserAchievement, error)

	// GetAggregateStats reads the counters achievement progress is computed
	// from.
	GetAggregateStats(ctx context.Context, userID string) (domain.UserAggregateStats, error)
}
