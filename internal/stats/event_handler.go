package stats

import (
	"context"

	"github.com/minjae-ko/habitquest/internal/domain"
	"github.com/minjae-ko/habitquest/internal/event"
	"github.com/minjae-ko/habitquest/internal/logger"
)

// RegisterEventHandlers wires automatic stat gains to activity events:
// completing a mission earns its category's stat by difficulty, and each daily
// quest check-off earns one Discipline.
func RegisterEventHandlers(publisher *event.ResilientPublisher, svc Service) {
	publisher.Subscribe(event.MissionCompleted, func(ctx context.Context, e event.Event) error {
		p, err := event.DecodePayload[event.MissionCompletedPayloadV1](e.Payload)
		if err != nil {
			return err
		}

		statType := p.Category.Stat()
		gain := p.Difficulty.StatGain()
		if _, err := svc.Earn(ctx, p.UserID, statType, gain); err != nil {
			logger.FromContext(ctx).Error(LogMsgFailedToEarnStat, "error", err, "user_id", p.UserID, "stat", statType)
			return err
		}
		return nil
	})

	publisher.Subscribe(event.QuestCompleted, func(ctx context.Context, e event.Event) error {
		p, err := event.DecodePayload[event.QuestCompletedPayloadV1](e.Payload)
		if err != nil {
			return err
		}

		if _, err := svc.Earn(ctx, p.UserID, domain.StatDiscipline, QuestDisciplineGain); err != nil {
			logger.FromContext(ctx).Error(LogMsgFailedToEarnStat, "error", err, "user_id", p.UserID, "stat", domain.StatDiscipline)
			return err
		}
		return nil
	})
}
