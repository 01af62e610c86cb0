package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/minjae-ko/habitquest/internal/domain"
)

// Type represents the type of an event
type Type string

// Common event types
const (
	MissionStarted      Type = Type(domain.EventTypeMissionStarted)
	MissionCompleted    Type = Type(domain.EventTypeMissionCompleted)
	MissionExpired      Type = Type(domain.EventTypeMissionExpired)
	LevelUp             Type = Type(domain.EventTypeLevelUp)
	QuestCompleted      Type = Type(domain.EventTypeQuestCompleted)
	TierEarned          Type = Type(domain.EventTypeTierEarned)
	AchievementUnlocked Type = Type(domain.EventTypeAchievementUnlocked)
	DailyResetComplete  Type = Type(domain.EventTypeDailyResetComplete)
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// MissionStartedPayloadV1 is the typed payload for mission start events
type MissionStartedPayloadV1 struct {
	UserID    string `json:"user_id"`
	MissionID string `json:"mission_id"`
	Title     string `json:"title"`
	Timestamp int64  `json:"timestamp"`
}

// MissionCompletedPayloadV1 is the typed payload for mission completion events
type MissionCompletedPayloadV1 struct {
	UserID       string                   `json:"user_id"`
	MissionID    string                   `json:"mission_id"`
	Category     domain.MissionCategory   `json:"category"`
	Difficulty   domain.MissionDifficulty `json:"difficulty"`
	RewardPoints int                      `json:"reward_points"`
	NewTotal     int                      `json:"new_total_points"`
	Timestamp    int64                    `json:"timestamp"`
}

// MissionExpiredPayloadV1 is the typed payload for mission expiry events
type MissionExpiredPayloadV1 struct {
	UserID    string `json:"user_id"`
	MissionID string `json:"mission_id"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayloadV1 is the typed payload for level up events
type LevelUpPayloadV1 struct {
	UserID    string            `json:"user_id"`
	OldLevel  int               `json:"old_level"`
	NewLevel  int               `json:"new_level"`
	OldTitle  domain.LevelTitle `json:"old_title"`
	NewTitle  domain.LevelTitle `json:"new_title"`
	Timestamp int64             `json:"timestamp"`
}

// QuestCompletedPayloadV1 is the typed payload for daily quest check-off events
type QuestCompletedPayloadV1 struct {
	UserID         string           `json:"user_id"`
	QuestType      domain.QuestType `json:"quest_type"`
	QuestDate      string           `json:"quest_date"`
	CompletedCount int              `json:"completed_count"`
	CompletionPct  int              `json:"completion_pct"`
	Timestamp      int64            `json:"timestamp"`
}

// TierEarnedPayloadV1 is the typed payload for special reward tier events
type TierEarnedPayloadV1 struct {
	UserID      string                   `json:"user_id"`
	Tier        domain.SpecialRewardTier `json:"tier"`
	Threshold   int                      `json:"threshold"`
	BonusPoints int                      `json:"bonus_points"`
	Timestamp   int64                    `json:"timestamp"`
}

// AchievementUnlockedPayloadV1 is the typed payload for achievement unlocks
type AchievementUnlockedPayloadV1 struct {
	UserID    string                   `json:"user_id"`
	Type      domain.AchievementType   `json:"type"`
	Rarity    domain.AchievementRarity `json:"rarity"`
	Timestamp int64                    `json:"timestamp"`
}

// DailyResetCompletePayloadV1 is the typed payload for daily reset complete events
type DailyResetCompletePayloadV1 struct {
	ResetTime         time.Time `json:"reset_time"`
	MissionsGenerated int64     `json:"missions_generated"`
}

// Type-safe event constructors

// NewMissionStartedEvent creates a new mission started event
func NewMissionStartedEvent(userID, missionID, title string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionStarted,
		Payload: MissionStartedPayloadV1{
			UserID:    userID,
			MissionID: missionID,
			Title:     title,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewMissionCompletedEvent creates a new mission completed event
func NewMissionCompletedEvent(completion domain.MissionCompletion) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionCompleted,
		Payload: MissionCompletedPayloadV1{
			UserID:       completion.Mission.UserID,
			MissionID:    completion.Mission.ID.String(),
			Category:     completion.Mission.Category,
			Difficulty:   completion.Mission.Difficulty,
			RewardPoints: completion.RewardPoints.Int(),
			NewTotal:     completion.NewTotal.Int(),
			Timestamp:    time.Now().Unix(),
		},
	}
}

// NewMissionExpiredEvent creates a new mission expired event
func NewMissionExpiredEvent(userID, missionID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    MissionExpired,
		Payload: MissionExpiredPayloadV1{
			UserID:    userID,
			MissionID: missionID,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(userID string, up domain.LevelUp) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: LevelUpPayloadV1{
			UserID:    userID,
			OldLevel:  int(up.OldLevel),
			NewLevel:  int(up.NewLevel),
			OldTitle:  up.OldTitle,
			NewTitle:  up.NewTitle,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewQuestCompletedEvent creates a new daily quest check-off event
func NewQuestCompletedEvent(userID string, questType domain.QuestType, questDate string, completedCount, completionPct int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    QuestCompleted,
		Payload: QuestCompletedPayloadV1{
			UserID:         userID,
			QuestType:      questType,
			QuestDate:      questDate,
			CompletedCount: completedCount,
			CompletionPct:  completionPct,
			Timestamp:      time.Now().Unix(),
		},
	}
}

// NewTierEarnedEvent creates a new special reward tier event
func NewTierEarnedEvent(userID string, tier domain.SpecialRewardTier) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    TierEarned,
		Payload: TierEarnedPayloadV1{
			UserID:      userID,
			Tier:        tier,
			Threshold:   tier.Threshold().Int(),
			BonusPoints: tier.BasePoints().Int(),
			Timestamp:   time.Now().Unix(),
		},
	}
}

// NewAchievementUnlockedEvent creates a new achievement unlocked event
func NewAchievementUnlockedEvent(userID string, achType domain.AchievementType, rarity domain.AchievementRarity) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: AchievementUnlockedPayloadV1{
			UserID:    userID,
			Type:      achType,
			Rarity:    rarity,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewDailyResetCompleteEvent creates a new daily reset complete event
func NewDailyResetCompleteEvent(resetTime time.Time, missionsGenerated int64) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    DailyResetComplete,
		Payload: DailyResetCompletePayloadV1{
			ResetTime:         resetTime,
			MissionsGenerated: missionsGenerated,
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously in
// subscription order; all handlers run even when earlier ones fail.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
