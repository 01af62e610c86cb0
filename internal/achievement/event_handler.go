package achievement

import (
	"context"
	"fmt"

	"github.com/minjae-ko/habitquest/internal/event"
)

// RegisterEventHandlers re-evaluates a user's achievements whenever an event
// that moves one of the underlying counters fires.
func RegisterEventHandlers(publisher *event.ResilientPublisher, svc Service) {
	publisher.Subscribe(event.MissionCompleted, onEvent(svc, decodeMissionCompleted))
	publisher.Subscribe(event.QuestCompleted, onEvent(svc, decodeQuestCompleted))
	publisher.Subscribe(event.LevelUp, onEvent(svc, decodeLevelUp))
}

func onEvent(svc Service, userID func(event.Event) (string, error)) event.Handler {
	return func(ctx context.Context, e event.Event) error {
		id, err := userID(e)
		if err != nil {
			return err
		}
		if _, err := svc.EvaluateAndUnlock(ctx, id); err != nil {
			return fmt.Errorf("failed to evaluate achievements for %s: %w", id, err)
		}
		return nil
	}
}

func decodeMissionCompleted(e event.Event) (string, error) {
	p, err := event.DecodePayload[event.MissionCompletedPayloadV1](e.Payload)
	if err != nil {
		return "", err
	}
	return p.UserID, nil
}

func decodeQuestCompleted(e event.Event) (string, error) {
	p, err := event.DecodePayload[event.QuestCompletedPayloadV1](e.Payload)
	if err != nil {
		return "", err
	}
	return p.UserID, nil
}

func decodeLevelUp(e event.Event) (string, error) {
	p, err := event.DecodePayload[event.LevelUpPayloadV1](e.Payload)
	if err != nil {
		return "", err
	}
	return p.UserID, nil
}
