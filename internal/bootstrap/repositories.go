package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/minjae-ko/habitquest/internal/database/postgres"
	"github.com/minjae-ko/habitquest/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	Users        repository.Users
	Stats        repository.Stats
	Missions     repository.Missions
	DailyQuests  repository.DailyQuests
	Achievements repository.Achievements
}

// InitializeRepositories creates all repository implementations. The
// achievement repository composes the others to build its aggregate view of a
// user's activity.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	users := postgres.NewUserRepository(dbPool)
	missions := postgres.NewMissionRepository(dbPool)
	quests := postgres.NewDailyQuestRepository(dbPool)

	return &Repositories{
		Users:        users,
		Stats:        postgres.NewStatsRepository(dbPool),
		Missions:     missions,
		DailyQuests:  quests,
		Achievements: postgres.NewAchievementRepository(dbPool, missions, quests, users),
	}
}
