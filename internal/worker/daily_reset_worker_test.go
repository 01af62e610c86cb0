package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-ko/habitquest/internal/domain"
)

type fakeMissionService struct {
	expired     int
	generated   int64
	expireErr   error
	generateErr error

	expireCalls   int
	generateCalls int
	generatedDay  time.Time
}

func (f *fakeMissionService) ListUserMissions(context.Context, string, time.Time) ([]domain.Mission, error) {
	return nil, nil
}

func (f *fakeMissionService) StartMission(context.Context, string, uuid.UUID) (*domain.Mission, error) {
	return nil, nil
}

func (f *fakeMissionService) UpdateProgress(context.Context, string, uuid.UUID, int) (*domain.Mission, error) {
	return nil, nil
}

func (f *fakeMissionService) CompleteMission(context.Context, string, uuid.UUID) (*domain.MissionCompletion, error) {
	return nil, nil
}

func (f *fakeMissionService) ExpireDueMissions(context.Context, time.Time) (int, error) {
	f.expireCalls++
	return f.expired, f.expireErr
}

func (f *fakeMissionService) GenerateDailyMissions(_ context.Context, day time.Time) (int64, error) {
	f.generateCalls++
	f.generatedDay = day
	return f.generated, f.generateErr
}

func TestRunDailyReset(t *testing.T) {
	svc := &fakeMissionService{expired: 2, generated: 9}
	w := NewDailyResetWorker(svc, nil)

	day := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	generated, err := w.RunDailyReset(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, int64(9), generated)
	assert.Equal(t, 1, svc.expireCalls)
	assert.Equal(t, 1, svc.generateCalls)
	assert.Equal(t, day, svc.generatedDay)
}

func TestRunDailyReset_ExpiryFailureAbortsGeneration(t *testing.T) {
	svc := &fakeMissionService{expireErr: errors.New("db down")}
	w := NewDailyResetWorker(svc, nil)

	_, err := w.RunDailyReset(context.Background(), time.Now().UTC())

	require.Error(t, err)
	assert.Zero(t, svc.generateCalls)
}

func TestRunDailyReset_GenerationFailure(t *testing.T) {
	svc := &fakeMissionService{generateErr: errors.New("template pool empty")}
	w := NewDailyResetWorker(svc, nil)

	_, err := w.RunDailyReset(context.Background(), time.Now().UTC())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "template pool empty")
}

func TestDailyResetWorker_Shutdown(t *testing.T) {
	svc := &fakeMissionService{}
	w := NewDailyResetWorker(svc, nil)
	w.Start()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))

	// Shutdown is idempotent
	require.NoError(t, w.Shutdown(ctx))
}

func TestTimeUntilNextReset(t *testing.T) {
	d := timeUntilNextReset()
	assert.Greater(t, d, time.Duration(0))
	assert.LessOrEqual(t, d, 24*time.Hour)
}
