package worker

import (
	"context"
	"sync"
	"time"

	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/mission"
)

// MissionExpiryWorker periodically sweeps missions whose deadline has passed
// and marks them EXPIRED. The sweep is idempotent, so overlapping runs after a
// restart are harmless.
type MissionExpiryWorker struct {
	missionService mission.Service
	interval       time.Duration
	shutdown       chan struct{}
	wg             sync.WaitGroup
	once           sync.Once
}

// NewMissionExpiryWorker creates a new MissionExpiryWorker. A non-positive
// interval falls back to DefaultExpirySweepInterval.
func NewMissionExpiryWorker(missionService mission.Service, interval time.Duration) *MissionExpiryWorker {
	if interval <= 0 {
		interval = DefaultExpirySweepInterval
	}
	return &MissionExpiryWorker{
		missionService: missionService,
		interval:       interval,
		shutdown:       make(chan struct{}),
	}
}

// Start launches the sweep loop. The first sweep runs immediately so missions
// that expired while the service was down are cleaned up on boot.
func (w *MissionExpiryWorker) Start() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		w.sweep()

		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-w.shutdown:
				return
			case <-ticker.C:
				w.sweep()
			}
		}
	}()
}

func (w *MissionExpiryWorker) sweep() {
	ctx := context.Background()
	log := logger.FromContext(ctx)

	expired, err := w.missionService.ExpireDueMissions(ctx, time.Now().UTC())
	if err != nil {
		log.Error(LogMsgExpirySweepFailed, "error", err)
		return
	}

	if expired > 0 {
		log.Info(LogMsgExpirySweepCompleted, "missions_expired", expired)
	}
}

// Shutdown stops the sweep loop and waits for an in-flight sweep to finish
func (w *MissionExpiryWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down mission expiry worker")

	w.once.Do(func() { close(w.shutdown) })

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Mission expiry worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Mission expiry worker shutdown timeout")
		return ctx.Err()
	}
}
