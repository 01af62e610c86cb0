package achievement

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/event"
	"github.com/minjae-ko/habitquest/internal/logger"
	"github.com/minjae-ko/habitquest/internal/repository"
)

// Entry is one row of a user's achievement list: the catalog definition plus
// the user's progress on it.
type Entry struct {
	Type       domain.AchievementType   `json:"type"`
	Name       string                   `json:"name"`
	Rarity     domain.AchievementRarity `json:"rarity"`
	Progress   int                      `json:"progress"`
	UnlockedAt *time.Time               `json:"unlocked_at,omitempty"`
}

// ListResult carries the full catalog view plus whatever the read unlocked.
type ListResult struct {
	Entries       []Entry `json:"entries"`
	NewlyUnlocked []Entry `json:"newly_unlocked,omitempty"`
}

// Service defines the interface for achievement operations
type Service interface {
	// EvaluateAndUnlock recomputes progress for every catalog entry and
	// persists changes. Returns the achievements that crossed 100 in this
	// evaluation.
	EvaluateAndUnlock(ctx context.Context, userID string) ([]domain.UserAchievement, error)

	// ListForUser returns the whole catalog with the user's progress filled
	// in, persisting any entry the read finds at full progress.
	ListForUser(ctx context.Context, userID string) (*ListResult, error)
}

type service struct {
	repo      repository.Achievements
	publisher *event.ResilientPublisher
	now       func() time.Time
}

// NewService creates a new achievement service
func NewService(repo repository.Achievements, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       time.Now,
	}
}

const errMsgUserIDRequired = "user id is required"

func (s *service) EvaluateAndUnlock(ctx context.Context, userID string) ([]domain.UserAchievement, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, errors.New(errMsgUserIDRequired)
	}

	agg, err := s.repo.GetAggregateStats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to read aggregate stats: %w", err)
	}

	existing, err := s.existingByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	var unlocked []domain.UserAchievement
	for _, def := range Catalog {
		progress := ProgressFor(def.Type, agg)
		prev, had := existing[def.Type]

		if had && prev.Unlocked() {
			continue
		}
		if had && prev.Progress == progress {
			continue
		}

		record := domain.UserAchievement{UserID: userID, Type: def.Type, Progress: progress}
		if progress >= 100 {
			now := s.now()
			record.UnlockedAt = &now
		}

		saved, err := s.repo.Upsert(ctx, record)
		if err != nil {
			return unlocked, fmt.Errorf("failed to save achievement %s: %w", def.Type, err)
		}

		// The storage row wins races, so only report an unlock when this
		// evaluation is the one that set it.
		if saved.Unlocked() && (!had || !prev.Unlocked()) {
			unlocked = append(unlocked, saved)

			log.Info("Achievement unlocked", "user_id", userID, "achievement", def.Type, "rarity", def.Rarity)
			if s.publisher != nil {
				s.publisher.PublishWithRetry(ctx, event.NewAchievementUnlockedEvent(userID, def.Type, def.Rarity))
			}
		}
	}

	return unlocked, nil
}

func (s *service) ListForUser(ctx context.Context, userID string) (*ListResult, error) {
	if userID == "" {
		return nil, errors.New(errMsgUserIDRequired)
	}

	// A read may observe counters that crossed a threshold since the last
	// evaluation. Unlock lazily so the list never shows 100 still locked.
	newly, err := s.EvaluateAndUnlock(ctx, userID)
	if err != nil {
		return nil, err
	}

	existing, err := s.existingByType(ctx, userID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(Catalog))
	for _, def := range Catalog {
		e := Entry{Type: def.Type, Name: def.Name, Rarity: def.Rarity}
		if rec, ok := existing[def.Type]; ok {
			e.Progress = rec.Progress
			e.UnlockedAt = rec.UnlockedAt
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := entries[i].Rarity.Order(), entries[j].Rarity.Order()
		if ri != rj {
			return ri < rj
		}
		return catalogIndex[entries[i].Type] < catalogIndex[entries[j].Type]
	})

	result := &ListResult{Entries: entries}
	for _, rec := range newly {
		if def, ok := Lookup(rec.Type); ok {
			result.NewlyUnlocked = append(result.NewlyUnlocked, Entry{
				Type:       rec.Type,
				Name:       def.Name,
				Rarity:     def.Rarity,
				Progress:   rec.Progress,
				UnlockedAt: rec.UnlockedAt,
			})
		}
	}

	return result, nil
}

func (s *service) existingByType(ctx context.Context, userID string) (map[domain.AchievementType]domain.UserAchievement, error) {
	records, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	byType := make(map[domain.AchievementType]domain.UserAchievement, len(records))
	for _, r := range records {
		byType[r.Type] = r
	}
	return byType, nil
}
