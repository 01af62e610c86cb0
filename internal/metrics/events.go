package metrics

import (
	"context"

	"github.com/minjae-ko/habitquest/internal/event"
)

// EventMetricsCollector subscribes to events and records business metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events that back a business metric
func (e *EventMetricsCollector) Register(publisher *event.ResilientPublisher) {
	eventTypes := []event.Type{
		event.MissionStarted,
		event.MissionCompleted,
		event.MissionExpired,
		event.LevelUp,
		event.QuestCompleted,
		event.TierEarned,
		event.AchievementUnlocked,
		event.DailyResetComplete,
	}

	for _, eventType := range eventTypes {
		publisher.Subscribe(eventType, e.HandleEvent)
	}
}

// HandleEvent records the metric for one event
func (e *EventMetricsCollector) HandleEvent(_ context.Context, ev event.Event) error {
	EventsPublished.WithLabelValues(string(ev.Type)).Inc()

	switch ev.Type {
	case event.MissionStarted:
		MissionsStarted.Inc()

	case event.MissionCompleted:
		p, err := event.DecodePayload[event.MissionCompletedPayloadV1](ev.Payload)
		if err != nil {
			return err
		}
		MissionsCompleted.WithLabelValues(string(p.Category), string(p.Difficulty)).Inc()

	case event.MissionExpired:
		MissionsExpired.Inc()

	case event.LevelUp:
		LevelUps.Inc()

	case event.QuestCompleted:
		p, err := event.DecodePayload[event.QuestCompletedPayloadV1](ev.Payload)
		if err != nil {
			return err
		}
		QuestsCompleted.WithLabelValues(string(p.QuestType)).Inc()

	case event.TierEarned:
		p, err := event.DecodePayload[event.TierEarnedPayloadV1](ev.Payload)
		if err != nil {
			return err
		}
		QuestTiersEarned.WithLabelValues(string(p.Tier)).Inc()

	case event.AchievementUnlocked:
		p, err := event.DecodePayload[event.AchievementUnlockedPayloadV1](ev.Payload)
		if err != nil {
			return err
		}
		AchievementsUnlocked.WithLabelValues(string(p.Type), string(p.Rarity)).Inc()

	case event.DailyResetComplete:
		DailyResets.Inc()
	}

	return nil
}
