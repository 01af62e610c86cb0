package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/minjae-ko/habitquest/internal/domain"
)

// Missions defines the interface for mission persistence
type Missions interface {
	GetMission(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	ListUserMissions(ctx context.Context, userID string, day time.Time) ([]domain.Mission, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.Mission, error)
	CreateMissions(ctx context.Context, missions []domain.Mission) error
	UpdateMission(ctx context.Context, mission domain.Mission) error

	// SaveCompletion persists a completed mission and applies its point reward
	// to the owning user atomically, returning the user's new total.
	SaveCompletion(ctx context.Context, mission domain.Mission, reward domain.Points) (domain.Points, error)

	CountCompleted(ctx context.Context, userID string) (int, error)
	CountCompletedByCategory(ctx context.Context, userID string) (map[domain.MissionCategory]int, error)
	ListTemplates(ctx context.Context) ([]domain.MissionTemplate, error)

	// BeginStart opens a transaction holding a row-level lock on the user, so
	// the ongoing/started-today reads and the start write are atomic against
	// concurrent start attempts for the same user.
	BeginStart(ctx context.Context, userID string) (MissionStartTx, error)
}

// MissionStartTx is the transactional view used by mission start admission.
// The lock is released on Commit or Rollback.
type MissionStartTx interface {
	Mission(ctx context.Context, id uuid.UUID) (*domain.Mission, error)
	HasOngoing(ctx context.Context, userID string) (bool, error)
	StartedToday(ctx context.Context, userID string, day time.Time) (int, error)
	UpdateMission(ctx context.Context, mission domain.Mission) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
