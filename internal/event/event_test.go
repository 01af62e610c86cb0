package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minjae-ko/habitquest/internal/domain"
)

func TestMemoryBusPublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()

	var received []Event
	bus.Subscribe(LevelUp, func(ctx context.Context, e Event) error {
		received = append(received, e)
		return nil
	})

	evt := NewLevelUpEvent("user-1", domain.LevelUp{
		OldLevel: 1, NewLevel: 2,
		OldTitle: domain.TitleBeginner, NewTitle: domain.TitleBeginner,
	})
	err := bus.Publish(context.Background(), evt)
	require.NoError(t, err)

	require.Len(t, received, 1)
	payload, err := DecodePayload[LevelUpPayloadV1](received[0].Payload)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, 2, payload.NewLevel)
}

func TestMemoryBusNoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	err := bus.Publish(context.Background(), NewMissionExpiredEvent("u", "m"))
	assert.NoError(t, err)
}

func TestMemoryBusAllHandlersRunDespiteErrors(t *testing.T) {
	bus := NewMemoryBus()

	calls := 0
	bus.Subscribe(QuestCompleted, func(ctx context.Context, e Event) error {
		calls++
		return errors.New("boom")
	})
	bus.Subscribe(QuestCompleted, func(ctx context.Context, e Event) error {
		calls++
		return nil
	})

	err := bus.Publish(context.Background(), NewQuestCompletedEvent("u", domain.QuestReading, "2026-08-28", 1, 25))
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestDecodePayloadFromMap(t *testing.T) {
	raw := map[string]interface{}{
		"user_id":   "u-1",
		"tier":      "GOLD",
		"threshold": 75,
	}

	payload, err := DecodePayload[TierEarnedPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, domain.TierGold, payload.Tier)
	assert.Equal(t, 75, payload.Threshold)
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0), "attempts below 1 clamp to the base delay")
}

func TestTierEarnedEventCarriesTierData(t *testing.T) {
	evt := NewTierEarnedEvent("u-9", domain.TierPlatinum)
	payload, err := DecodePayload[TierEarnedPayloadV1](evt.Payload)
	require.NoError(t, err)
	assert.Equal(t, 100, payload.Threshold)
	assert.Equal(t, 100, payload.BonusPoints)
	assert.Equal(t, EventSchemaVersion, evt.Version)
}
