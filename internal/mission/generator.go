package mission

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/logger"
)

// GenerateDailyMissions assigns the day's mission set to every user. Each user
// gets one mission per difficulty tier when the template pool allows it,
// otherwise the gaps are filled from the whole pool. The run is safe to repeat
// for the same day: users who already have missions assigned for the day are
// skipped, and the day seeds the RNG so a re-run after a partial failure picks
// the same templates for the users that were not yet provisioned.
func (s *service) GenerateDailyMissions(ctx context.Context, day time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	templates, err := s.repo.ListTemplates(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load mission templates: %w", err)
	}
	if len(templates) < MissionsPerDay {
		return 0, fmt.Errorf("mission template pool has fewer than %d entries", MissionsPerDay)
	}

	byDifficulty := make(map[domain.MissionDifficulty][]domain.MissionTemplate)
	for _, t := range templates {
		byDifficulty[t.Difficulty] = append(byDifficulty[t.Difficulty], t)
	}

	userIDs, err := s.users.ListUserIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list users: %w", err)
	}

	// Use the day as seed for deterministic randomization
	y, m, d := day.UTC().Date()
	seed := int64(y*10000 + int(m)*100 + d)
	rng := rand.New(rand.NewSource(seed)) //nolint:gosec

	assignedAt := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	expiresAt := assignedAt.Add(MissionLifetimeHours * time.Hour)

	var generated int64
	var skipped int
	for _, userID := range userIDs {
		// Draw before the skip check so every run consumes the same RNG
		// stream and later users keep their first-run templates.
		selected := pickTemplates(rng, templates, byDifficulty, log)

		existing, err := s.repo.ListUserMissions(ctx, userID, assignedAt)
		if err != nil {
			return generated, fmt.Errorf("failed to check existing missions for user %s: %w", userID, err)
		}
		if len(existing) > 0 {
			skipped++
			continue
		}

		missions := make([]domain.Mission, 0, len(selected))
		for _, t := range selected {
			missions = append(missions, domain.Mission{
				ID:           uuid.New(),
				UserID:       userID,
				Title:        t.Title,
				Category:     t.Category,
				Difficulty:   t.Difficulty,
				Status:       domain.MissionAssigned,
				RewardPoints: t.Difficulty.RewardPoints(),
				AssignedAt:   assignedAt,
				ExpiresAt:    expiresAt,
			})
		}

		if err := s.repo.CreateMissions(ctx, missions); err != nil {
			return generated, fmt.Errorf("failed to create missions for user %s: %w", userID, err)
		}
		generated += int64(len(missions))
	}

	log.Info(LogMsgMissionsGenerated,
		"day", assignedAt.Format(time.DateOnly),
		"users", len(userIDs),
		"already_provisioned", skipped,
		"missions", generated)
	return generated, nil
}

// pickTemplates selects one template per difficulty tier, falling back to the
// whole pool for tiers with no templates.
func pickTemplates(rng *rand.Rand, pool []domain.MissionTemplate, byDifficulty map[domain.MissionDifficulty][]domain.MissionTemplate, log *slog.Logger) []domain.MissionTemplate {
	tiers := []domain.MissionDifficulty{domain.DifficultyEasy, domain.DifficultyMedium, domain.DifficultyHard}

	selected := make([]domain.MissionTemplate, 0, MissionsPerDay)
	for _, tier := range tiers {
		candidates := byDifficulty[tier]
		if len(candidates) == 0 {
			log.Warn(LogMsgTemplatePoolTooThin, "difficulty", tier)
			candidates = pool
		}
		selected = append(selected, candidates[rng.Intn(len(candidates))])
	}
	return selected
}
