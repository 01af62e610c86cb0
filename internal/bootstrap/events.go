package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/minjae-ko/habitquest/internal/achievement"
	"github.com/minjae-ko/habitquest/internal/config"
	"github.com/minjae-ko/habitquest/internal/event"
	"github.com/minjae-ko/habitquest/internal/metrics"
	"github.com/minjae-ko/habitquest/internal/stats"
	"github.com/minjae-ko/habitquest/internal/user"
)

// InitializeEventSystem creates and configures the event bus and resilient
// publisher. It creates the dead-letter directory and initializes the
// publisher with the standard retry configuration.
func InitializeEventSystem(cfg *config.Config) (*event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	resilientCfg := event.DefaultResilientConfig(cfg.DeadLetterPath)

	// Ensure dead-letter directory exists
	if dir := filepath.Dir(resilientCfg.DeadLetterPath); dir != "." {
		if err := os.MkdirAll(dir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
	}

	resilientPublisher := event.NewResilientPublisher(eventBus, resilientCfg)

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", resilientCfg.MaxRetries,
		"retry_delay", resilientCfg.RetryDelay,
		"deadletter_path", resilientCfg.DeadLetterPath)

	return resilientPublisher, nil
}

// EventHandlerDependencies holds the services wired to event subscriptions.
type EventHandlerDependencies struct {
	Publisher          *event.ResilientPublisher
	StatsService       stats.Service
	AchievementService achievement.Service
	UserService        user.Service
}

// RegisterEventHandlers sets up all event subscribers:
// stat gains from mission and quest completions, achievement re-evaluation,
// user cache invalidation, and the event-driven metrics collector.
func RegisterEventHandlers(deps EventHandlerDependencies) {
	stats.RegisterEventHandlers(deps.Publisher, deps.StatsService)
	achievement.RegisterEventHandlers(deps.Publisher, deps.AchievementService)
	user.RegisterEventHandlers(deps.Publisher, deps.UserService)

	metricsCollector := metrics.NewEventMetricsCollector()
	metricsCollector.Register(deps.Publisher)
	slog.Info(LogMsgMetricsCollectorRegd)

	slog.Info(LogMsgEventHandlersRegistered)
}
