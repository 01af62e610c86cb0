package user

import (
	"context"

	"github.com/minjae-ko/habitquest/internal/event"
)

// RegisterEventHandlers invalidates cached user records whenever an event
// moves a point total, so profile reads never serve a stale total past the
// cache TTL plus one event.
func RegisterEventHandlers(publisher *event.ResilientPublisher, svc Service) {
	invalidate := func(ctx context.Context, e event.Event) error {
		switch p := e.Payload.(type) {
		case event.MissionCompletedPayloadV1:
			svc.InvalidateCache(p.UserID)
		case event.QuestCompletedPayloadV1:
			svc.InvalidateCache(p.UserID)
		case event.TierEarnedPayloadV1:
			svc.InvalidateCache(p.UserID)
		}
		return nil
	}

	publisher.Subscribe(event.MissionCompleted, invalidate)
	publisher.Subscribe(event.QuestCompleted, invalidate)
	publisher.Subscribe(event.TierEarned, invalidate)
}
