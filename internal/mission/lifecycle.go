package mission

import (
	"fmt"
	"time"

	"github.com/minjae-ko/habitquest/internal/domain"
)

// StartValidation reports the admission-control outcome for a start attempt.
type StartValidation struct {
	StartedToday int `json:"started_today"`
	DailyLimit   int `json:"daily_limit"`
}

// ValidateStart applies per-user admission control. The inputs must come from
// an atomic read (row lock) held by the caller so two concurrent starts cannot
// both pass.
func ValidateStart(hasOngoing bool, startedToday int) (StartValidation, error) {
	v := StartValidation{StartedToday: startedToday, DailyLimit: DailyStartLimit}
	if hasOngoing {
		return v, domain.ErrMissionInProgress
	}
	if startedToday >= DailyStartLimit {
		return v, fmt.Errorf("%w: limit %d", domain.ErrDailyLimitExceeded, DailyStartLimit)
	}
	return v, nil
}

// Start moves an assigned mission to IN_PROGRESS.
func Start(m *domain.Mission, now time.Time) error {
	if m.Status != domain.MissionAssigned {
		return domain.ErrMissionNotAssigned
	}
	m.Status = domain.MissionInProgress
	m.StartedAt = &now
	return nil
}

// UpdateProgress records progress on an in-progress mission. The percentage is
// clamped to [0,100]. Reaching 100 does not complete the mission; completion
// is a distinct transition.
func UpdateProgress(m *domain.Mission, percent int) error {
	switch m.Status {
	case domain.MissionInProgress:
	case domain.MissionCompleted:
		return domain.ErrMissionAlreadyCompleted
	default:
		return domain.ErrMissionNotInProgress
	}

	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	m.Progress = percent
	return nil
}

// Complete moves an in-progress mission to COMPLETED and returns the fixed
// point reward for the caller to apply to user aggregates.
func Complete(m *domain.Mission, now time.Time) (domain.Points, error) {
	switch m.Status {
	case domain.MissionCompleted:
		return 0, domain.ErrMissionAlreadyCompleted
	case domain.MissionAssigned:
		return 0, domain.ErrMissionNotAssigned
	case domain.MissionInProgress:
	default:
		return 0, domain.ErrMissionNotInProgress
	}

	m.Status = domain.MissionCompleted
	m.CompletedAt = &now
	m.Progress = 100
	return m.RewardPoints, nil
}

// Expire marks a due non-terminal mission EXPIRED and reports whether a
// transition happened. Terminal and not-yet-due missions are left untouched;
// re-invoking is a no-op, never an error.
func Expire(m *domain.Mission, now time.Time) bool {
	if m.Status.Terminal() {
		return false
	}
	if !now.After(m.ExpiresAt) {
		return false
	}
	m.Status = domain.MissionExpired
	return true
}
