package repository

import (
	"context"

	"github.com/minjae-ko/habitquest/internal/domain"
)

// Stats defines the interface for stat ledger persistence
type Stats interface {
	GetUserStats(ctx context.Context, userID string) ([]domain.UserStat, error)
	GetStat(ctx context.Context, userID string, statType domain.StatType) (domain.StatValue, error)
	SaveStat(ctx context.Context, userID string, statType domain.StatType, value domain.StatValue) error
}
