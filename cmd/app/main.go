package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/minjae-ko/habitquest/internal/achievement"
	"github.com/minjae-ko/habitquest/internal/bootstrap"
	"github.com/minjae-ko/habitquest/internal/config"
	"github.com/minjae-ko/habitquest/internal/dailyquest"
	"github.com/minjae-ko/habitquest/internal/database"
	"github.com/minjae-ko/habitquest/internal/handler"
	"github.com/minjae-ko/habitquest/internal/mission"
	"github.com/minjae-ko/habitquest/internal/server"
	"github.com/minjae-ko/habitquest/internal/stats"
	"github.com/minjae-ko/habitquest/internal/user"
	"github.com/minjae-ko/habitquest/internal/worker"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), database.PoolSettings{
		MaxConns:    cfg.DBMaxConns,
		MaxIdleTime: 30 * time.Minute,
		MaxLifetime: time.Hour,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	repos := bootstrap.InitializeRepositories(pool)

	publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		return err
	}

	statsService := stats.NewService(repos.Stats)
	userService := user.NewService(repos.Users, repos.Stats)
	missionService := mission.NewService(repos.Missions, repos.Users, publisher)
	questService := dailyquest.NewService(repos.DailyQuests, publisher)
	achievementService := achievement.NewService(repos.Achievements, publisher)

	bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		Publisher:          publisher,
		StatsService:       statsService,
		AchievementService: achievementService,
		UserService:        userService,
	})

	handler.InitValidator()

	resetWorker := worker.NewDailyResetWorker(missionService, publisher)
	resetWorker.Start()

	expiryWorker := worker.NewMissionExpiryWorker(missionService, worker.DefaultExpirySweepInterval)
	expiryWorker.Start()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, pool, server.Services{
		User:        userService,
		Stats:       statsService,
		Mission:     missionService,
		DailyQuest:  questService,
		Achievement: achievementService,
		ResetRunner: resetWorker,
	})

	serverErrors := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		DailyResetWorker:   resetWorker,
		ExpiryWorker:       expiryWorker,
		ResilientPublisher: publisher,
	})

	return nil
}
