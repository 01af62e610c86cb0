package event

import (
	"encoding/json"
	"fmt"
)

// DecodePayload converts a raw event payload into the typed payload T.
// Payloads published through the in-process MemoryBus are already the right
// struct and pass through via type assertion; anything else (for example a
// payload re-read from the dead-letter file) goes through a JSON round-trip.
func DecodePayload[T any](raw interface{}) (T, error) {
	var payload T

	if typed, ok := raw.(T); ok {
		return typed, nil
	}

	encoded, err := json.Marshal(raw)
	if err != nil {
		return payload, fmt.Errorf("encode payload: %w", err)
	}
	if err := json.Unmarshal(encoded, &payload); err != nil {
		return payload, fmt.Errorf("decode payload: %w", err)
	}
	return payload, nil
}
