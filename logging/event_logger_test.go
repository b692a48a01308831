package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/colossus/event"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestEventLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	el := NewEventLogger(zerolog.New(&buf).Level(zerolog.InfoLevel))

	el.HandleEvent(event.GameEvent{Type: event.EventGripEnd, Frame: 3, Time: 60 * time.Millisecond,
		Payload: &event.GripEndPayload{Actor: 2, Host: 1, Reason: event.DetachReleased}})
	el.HandleEvent(event.GameEvent{Type: event.EventGripEnd, Frame: 4, Time: 80 * time.Millisecond,
		Payload: &event.GripEndPayload{Actor: 2, Host: 1, Reason: event.DetachLostContact}})
	el.HandleEvent(event.GameEvent{Type: event.EventStaminaChanged, Frame: 4,
		Payload: &event.PoolChangedPayload{Actor: 2, Current: 50, Max: 100}})
	el.HandleEvent(event.GameEvent{Type: event.EventHostDeath, Frame: 5,
		Payload: &event.HostDeathPayload{Host: 1}})

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 2, "only forced detach and death pass the info level")

	assert.Equal(t, "GripEnd", recs[0]["message"])
	assert.Equal(t, "lost_contact", recs[0]["reason"])
	assert.Equal(t, true, recs[0]["forced"])
	assert.Equal(t, float64(4), recs[0]["frame"])
	assert.Equal(t, "events", recs[0]["component"])

	assert.Equal(t, "HostDeath", recs[1]["message"])
	assert.Equal(t, float64(1), recs[1]["host"])
}

func TestEventLogger_AllTypesHandled(t *testing.T) {
	var buf bytes.Buffer
	el := NewEventLogger(zerolog.New(&buf).Level(zerolog.TraceLevel))

	types := el.EventTypes()
	assert.Equal(t, event.AllTypes(), types)

	payloads := []any{
		&event.HostShakePayload{Host: 1, Intensity: 0.1},
		&event.HostMovedPayload{Host: 1},
		&event.HostDamagedPayload{Host: 1, Amount: 5, Multiplier: 1, Point: event.NoPoint},
		&event.GripStartPayload{Actor: 2, Host: 1},
		&event.GripFailedPayload{Actor: 2, Reason: event.DenyNoSurface},
		&event.GripPointChangedPayload{Actor: 2, From: event.NoPoint, To: 0},
		&event.JumpOffPayload{Actor: 2, Host: 1},
		&event.ChargePayload{Actor: 2, Host: 1},
		&event.AttackResolvedPayload{Actor: 2, Host: 1, Damage: 50, Dealt: 50},
		&event.AttackDeniedPayload{Actor: 2, Reason: event.DenyAttackCooldown},
		nil,
	}
	for _, p := range payloads {
		el.HandleEvent(event.GameEvent{Type: event.EventHostMoved, Payload: p})
	}
	assert.Len(t, decodeLines(t, &buf), len(payloads))
}
