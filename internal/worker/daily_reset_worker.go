package worker

import (
	"context"
	"sync"
	"time"

	"github.com/minjae-ko/habitquest/internal/event"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/metrics"
	"github.com/minjae-ko/habitquest/internal/mission"
)

// DailyResetWorker runs the midnight UTC reset: it expires leftover missions,
// generates the new day's mission set for every user, and announces the reset.
type DailyResetWorker struct {
	missionService mission.Service
	publisher      *event.ResilientPublisher
	timer          *time.Timer
	shutdown       chan struct{}
	wg             sync.WaitGroup
	mu             sync.Mutex
}

// NewDailyResetWorker creates a new DailyResetWorker
func NewDailyResetWorker(missionService mission.Service, publisher *event.ResilientPublisher) *DailyResetWorker {
	return &DailyResetWorker{
		missionService: missionService,
		publisher:      publisher,
		shutdown:       make(chan struct{}),
	}
}

// Start initializes the worker and schedules the first reset
func (w *DailyResetWorker) Start() {
	w.scheduleNext()
}

// scheduleNext calculates the time until the next 00:00 UTC and schedules the
// reset
func (w *DailyResetWorker) scheduleNext() {
	duration := timeUntilNextReset()
	log := logger.FromContext(context.Background())

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}

	// Two-stage scheduling to prevent "tight loop" rescheduling caused by early triggers
	if duration > 1*time.Hour {
		// Stage 1: Long-range (Standby). Wake up 45 minutes before reset.
		waitDuration := duration - 45*time.Minute
		w.timer = time.AfterFunc(waitDuration, func() {
			w.scheduleNext()
		})
		w.mu.Unlock()

		nextCheck := time.Now().UTC().Add(waitDuration)
		log.Info(LogMsgDailyResetStandby, "next_check_at", nextCheck)
		return
	}

	// Stage 2: Final approach. Schedule the actual reset.
	w.timer = time.AfterFunc(duration, func() {
		select {
		case <-w.shutdown:
			return
		default:
		}

		// Jitter protection: if the timer triggered early (jitter > 10s),
		// simply reschedule for the remaining time.
		// If duration is > 23h, it means we are actually on time or slightly late.
		rem := timeUntilNextReset()
		if rem > 10*time.Second && rem < 23*time.Hour {
			w.scheduleNext()
			return
		}

		w.executeReset()
		w.scheduleNext() // This will now calculate ~24h and jump back to Stage 1
	})
	w.mu.Unlock()

	nextReset := time.Now().UTC().Add(duration)
	log.Info(LogMsgDailyResetApproach, "next_reset_at", nextReset)
}

// executeReset performs the daily reset in a tracked goroutine
func (w *DailyResetWorker) executeReset() {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		ctx := context.Background()
		if _, err := w.RunDailyReset(ctx, time.Now().UTC()); err != nil {
			logger.FromContext(ctx).Error(LogMsgDailyResetFailed, "error", err)
		}
	}()
}

// RunDailyReset executes one full reset cycle for the given day and returns
// the number of missions generated. The admin endpoint calls this directly.
func (w *DailyResetWorker) RunDailyReset(ctx context.Context, day time.Time) (int64, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgDailyResetStarting, "day", day.Format("2006-01-02"))

	// Expire anything left over from the previous day before assigning the
	// new set, so users never see stale and fresh missions side by side.
	expired, err := w.missionService.ExpireDueMissions(ctx, day)
	if err != nil {
		return 0, err
	}

	generated, err := w.missionService.GenerateDailyMissions(ctx, day)
	if err != nil {
		return 0, err
	}

	log.Info(LogMsgDailyResetCompleted,
		"day", day.Format("2006-01-02"),
		"missions_expired", expired,
		"missions_generated", generated)
	metrics.DailyResets.Inc()

	if w.publisher != nil {
		w.publisher.PublishWithRetry(ctx, event.NewDailyResetCompleteEvent(day, generated))
	}

	return generated, nil
}

// Shutdown gracefully shuts down the daily reset worker.
// Cancels the pending timer and waits for any in-flight resets to complete.
func (w *DailyResetWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info("Shutting down daily reset worker")

	// Signal shutdown to timer callback (safe to close once)
	select {
	case <-w.shutdown:
		// Already closed, nothing to do
	default:
		close(w.shutdown)
	}

	// Cancel pending timer
	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		log.Info("Cancelled pending daily reset")
	}
	w.mu.Unlock()

	// Wait for any in-flight resets to complete
	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info("Daily reset worker shutdown complete")
		return nil
	case <-ctx.Done():
		log.Warn("Daily reset worker shutdown timeout, a reset may still be running")
		return ctx.Err()
	}
}

// timeUntilNextReset calculates the duration until the next 00:00 UTC
func timeUntilNextReset() time.Duration {
	now := time.Now().UTC()
	nextReset := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !nextReset.After(now) {
		nextReset = nextReset.AddDate(0, 0, 1)
	}
	return nextReset.Sub(now)
}
