package stats

import (
	"context"
	"errors"
	"fmt"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/repository"
)

// GradedStat is a stat value together with its display grade and derived base.
type GradedStat struct {
	Type      domain.StatType  `json:"type"`
	Current   int              `json:"current"`
	Allocated int              `json:"allocated"`
	Base      int              `json:"base"`
	Grade     domain.StatGrade `json:"grade"`
}

// Service defines the interface for stat ledger operations
type Service interface {
	GetUserStats(ctx context.Context, userID string) ([]GradedStat, error)
	Allocate(ctx context.Context, userID string, statType domain.StatType, points int) (*GradedStat, error)
	Earn(ctx context.Context, userID string, statType domain.StatType, points int) (*GradedStat, error)
}

// service implements the Service interface
type service struct {
	repo repository.Stats
}

// NewService creates a new stats service
func NewService(repo repository.Stats) Service {
	return &service{repo: repo}
}

// GetUserStats returns all six stat dimensions with grades. Dimensions with no
// stored row report zero values.
func (s *service) GetUserStats(ctx context.Context, userID string) ([]GradedStat, error) {
	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}

	stored, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	byType := make(map[domain.StatType]domain.StatValue, len(stored))
	for _, st := range stored {
		byType[st.Type] = st.Value
	}

	graded := make([]GradedStat, 0, len(domain.AllStatTypes))
	for _, t := range domain.AllStatTypes {
		graded = append(graded, grade(t, byType[t]))
	}
	return graded, nil
}

// Allocate spends user-chosen points on a stat, raising both current and
// allocated.
func (s *service) Allocate(ctx context.Context, userID string, statType domain.StatType, points int) (*GradedStat, error) {
	return s.apply(ctx, userID, statType, points, domain.StatValue.Allocate, LogMsgStatAllocated)
}

// Earn applies an automatic stat gain from completed activity, raising current
// only.
func (s *service) Earn(ctx context.Context, userID string, statType domain.StatType, points int) (*GradedStat, error) {
	return s.apply(ctx, userID, statType, points, domain.StatValue.Earn, LogMsgStatEarned)
}

func (s *service) apply(
	ctx context.Context,
	userID string,
	statType domain.StatType,
	points int,
	op func(domain.StatValue, int) (domain.StatValue, error),
	logMsg string,
) (*GradedStat, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}
	if !statType.Valid() {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatType, statType)
	}

	current, err := s.repo.GetStat(ctx, userID, statType)
	if err != nil {
		log.Error(LogMsgFailedToGetStat, "error", err, "user_id", userID, "stat", statType)
		return nil, fmt.Errorf("failed to get stat: %w", err)
	}

	// Validation failures leave the stored value untouched.
	updated, err := op(current, points)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SaveStat(ctx, userID, statType, updated); err != nil {
		return nil, fmt.Errorf("failed to save stat: %w", err)
	}

	log.Info(logMsg, "user_id", userID, "stat", statType, "points", points, "current", updated.Current)

	result := grade(statType, updated)
	return &result, nil
}

func grade(t domain.StatType, v domain.StatValue) GradedStat {
	return GradedStat{
		Type:      t,
		Current:   v.Current,
		Allocated: v.Allocated,
		Base:      v.Base(),
		Grade:     GradeFor(v.Current),
	}
}
