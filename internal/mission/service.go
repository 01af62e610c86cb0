package mission

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/event"
	"github.com/minjae-ko/habitquest/internal/level"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/repository"
)

// Service defines the interface for mission lifecycle operations
type Service interface {
	ListUserMissions(ctx context.Context, userID string, day time.Time) ([]domain.Mission, error)
	StartMission(ctx context.Context, userID string, missionID uuid.UUID) (*domain.Mission, error)
	UpdateProgress(ctx context.Context, userID string, missionID uuid.UUID, percent int) (*domain.Mission, error)
	CompleteMission(ctx context.Context, userID string, missionID uuid.UUID) (*domain.MissionCompletion, error)

	// ExpireDueMissions sweeps missions whose expiry has passed. Called by the
	// background worker; safe to re-run.
	ExpireDueMissions(ctx context.Context, now time.Time) (int, error)

	// GenerateDailyMissions creates the day's mission set for every user.
	// Called by the daily reset worker.
	GenerateDailyMissions(ctx context.Context, day time.Time) (int64, error)
}

// service implements the Service interface
type service struct {
	repo      repository.Missions
	users     repository.Users
	publisher *event.ResilientPublisher
	now       func() time.Time
}

// NewService creates a new mission service
func NewService(repo repository.Missions, users repository.Users, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		users:     users,
		publisher: publisher,
		now:       time.Now,
	}
}

// ListUserMissions returns the user's missions for a day.
func (s *service) ListUserMissions(ctx context.Context, userID string, day time.Time) ([]domain.Mission, error) {
	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}
	return s.repo.ListUserMissions(ctx, userID, day)
}

// StartMission runs admission control and the ASSIGNED -> IN_PROGRESS
// transition inside one locking transaction, so concurrent starts for the same
// user serialize.
func (s *service) StartMission(ctx context.Context, userID string, missionID uuid.UUID) (*domain.Mission, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}

	tx, err := s.repo.BeginStart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to begin start transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil {
			log.Warn(LogMsgFailedToRollback, "error", err)
		}
	}()

	m, err := tx.Mission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.ErrMissionNotFound
	}
	if m.UserID != userID {
		return nil, fmt.Errorf("%w: %s", domain.ErrMissionNotFound, ErrMsgMissionNotOwned)
	}

	now := s.now()

	hasOngoing, err := tx.HasOngoing(ctx, userID)
	if err != nil {
		return nil, err
	}
	startedToday, err := tx.StartedToday(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	if _, err := ValidateStart(hasOngoing, startedToday); err != nil {
		return nil, err
	}
	if err := Start(m, now); err != nil {
		return nil, err
	}

	if err := tx.UpdateMission(ctx, *m); err != nil {
		return nil, fmt.Errorf("failed to persist mission start: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit mission start: %w", err)
	}

	log.Info(LogMsgMissionStarted, "user_id", userID, "mission_id", missionID, "started_today", startedToday+1)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewMissionStartedEvent(userID, missionID.String(), m.Title))
	}

	return m, nil
}

// UpdateProgress records progress on an in-progress mission.
func (s *service) UpdateProgress(ctx context.Context, userID string, missionID uuid.UUID, percent int) (*domain.Mission, error) {
	log := logger.FromContext(ctx)

	m, err := s.ownedMission(ctx, userID, missionID)
	if err != nil {
		return nil, err
	}

	if err := UpdateProgress(m, percent); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateMission(ctx, *m); err != nil {
		return nil, fmt.Errorf("failed to persist mission progress: %w", err)
	}

	log.Debug(LogMsgProgressUpdated, "user_id", userID, "mission_id", missionID, "progress", m.Progress)
	return m, nil
}

// CompleteMission finishes a mission, applies the point reward to the user's
// total, and reports any level change. Stat gains and achievement evaluation
// ride on the published completion event.
func (s *service) CompleteMission(ctx context.Context, userID string, missionID uuid.UUID) (*domain.MissionCompletion, error) {
	log := logger.FromContext(ctx)

	m, err := s.ownedMission(ctx, userID, missionID)
	if err != nil {
		return nil, err
	}

	reward, err := Complete(m, s.now())
	if err != nil {
		return nil, err
	}

	newTotal, err := s.repo.SaveCompletion(ctx, *m, reward)
	if err != nil {
		return nil, fmt.Errorf("failed to persist mission completion: %w", err)
	}

	completion := &domain.MissionCompletion{
		Mission:      *m,
		RewardPoints: reward,
		StatType:     m.Category.Stat(),
		StatGain:     m.Difficulty.StatGain(),
		NewTotal:     newTotal,
		LevelUp:      level.Detect(newTotal.SubtractSaturating(reward), newTotal),
	}

	log.Info(LogMsgMissionCompleted,
		"user_id", userID,
		"mission_id", missionID,
		"difficulty", m.Difficulty,
		"reward_points", reward.Int(),
		"new_total", newTotal.Int(),
		"leveled_up", completion.LevelUp != nil)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewMissionCompletedEvent(*completion))
		if completion.LevelUp != nil {
			s.publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(userID, *completion.LevelUp))
		}
	}

	return completion, nil
}

// ExpireDueMissions marks due missions EXPIRED. Already-terminal missions in
// the batch are skipped, so re-running after a partial failure is safe.
func (s *service) ExpireDueMissions(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.repo.ListDue(ctx, now, ExpirySweepBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to list due missions: %w", err)
	}

	expired := 0
	for i := range due {
		m := due[i]
		if !Expire(&m, now) {
			continue
		}
		if err := s.repo.UpdateMission(ctx, m); err != nil {
			return expired, fmt.Errorf("failed to persist mission expiry: %w", err)
		}
		expired++

		log.Info(LogMsgMissionExpired, "user_id", m.UserID, "mission_id", m.ID)
		if s.publisher != nil {
			s.publisher.PublishWithRetry(ctx, event.NewMissionExpiredEvent(m.UserID, m.ID.String()))
		}
	}

	return expired, nil
}

func (s *service) ownedMission(ctx context.Context, userID string, missionID uuid.UUID) (*domain.Mission, error) {
	if userID == "" {
		return nil, errors.New(ErrMsgUserIDRequired)
	}

	m, err := s.repo.GetMission(ctx, missionID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.UserID != userID {
		return nil, domain.ErrMissionNotFound
	}
	return m, nil
}
