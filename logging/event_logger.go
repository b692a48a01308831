package logging

import (
	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/event"
)

// EventLogger is an observer writing every simulation event as a structured log line
// Forced detaches and host deaths log at info, pool changes at trace, the rest at debug
type EventLogger struct {
	log zerolog.Logger
}

func NewEventLogger(l zerolog.Logger) *EventLogger {
	return &EventLogger{log: l.With().Str("component", "events").Logger()}
}

func (el *EventLogger) EventTypes() []event.EventType {
	return event.AllTypes()
}

func (el *EventLogger) HandleEvent(ev event.GameEvent) {
	var e *zerolog.Event
	switch p := ev.Payload.(type) {
	case *event.HostShakePayload:
		e = el.log.Debug().Uint64("host", uint64(p.Host)).
			Float64("intensity", p.Intensity).
			Float64("drain_multiplier", p.DrainMultiplier)
	case *event.HostMovedPayload:
		e = el.log.Trace().Uint64("host", uint64(p.Host)).
			Float64("x", p.Position.X).Float64("y", p.Position.Y).Float64("z", p.Position.Z)
	case *event.HostDamagedPayload:
		e = el.log.Debug().Uint64("host", uint64(p.Host)).
			Float64("amount", p.Amount).
			Float64("multiplier", p.Multiplier).
			Int("point", p.Point).
			Float64("remaining", p.Remaining)
	case *event.HostDeathPayload:
		e = el.log.Info().Uint64("host", uint64(p.Host))
	case *event.GripStartPayload:
		e = el.log.Debug().Uint64("actor", uint64(p.Actor)).Uint64("host", uint64(p.Host)).Int("point", p.Point)
	case *event.GripEndPayload:
		e = el.log.Debug()
		if p.Reason.Forced() {
			e = el.log.Info()
		}
		e = e.Uint64("actor", uint64(p.Actor)).Uint64("host", uint64(p.Host)).
			Str("reason", p.Reason.String()).Bool("forced", p.Reason.Forced())
	case *event.GripFailedPayload:
		e = el.log.Debug().Uint64("actor", uint64(p.Actor)).Str("reason", p.Reason.String())
	case *event.GripPointChangedPayload:
		e = el.log.Debug().Uint64("actor", uint64(p.Actor)).Int("from", p.From).Int("to", p.To)
	case *event.PoolChangedPayload:
		e = el.log.Trace().Uint64("actor", uint64(p.Actor)).
			Float64("current", p.Current).Float64("max", p.Max).Bool("depleted", p.Depleted)
	case *event.JumpOffPayload:
		e = el.log.Debug().Uint64("actor", uint64(p.Actor)).Uint64("host", uint64(p.Host)).
			Float64("vx", p.Impulse.X).Float64("vy", p.Impulse.Y).Float64("vz", p.Impulse.Z)
	case *event.ChargePayload:
		e = el.log.Debug().Uint64("actor", uint64(p.Actor)).Uint64("host", uint64(p.Host))
	case *event.AttackResolvedPayload:
		e = el.log.Debug().Uint64("actor", uint64(p.Actor)).Uint64("host", uint64(p.Host)).
			Float64("charge", p.ChargePercent).
			Float64("damage", p.Damage).
			Float64("dealt", p.Dealt)
	case *event.AttackDeniedPayload:
		e = el.log.Debug().Uint64("actor", uint64(p.Actor)).Str("reason", p.Reason.String())
	default:
		e = el.log.Debug()
	}
	e.Int64("frame", ev.Frame).Dur("t", ev.Time).Msg(ev.Type.String())
}
