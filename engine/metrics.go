package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/colossus/event"
)

const instrumentationName = "github.com/lixenwraith/colossus/engine"

// Metrics is an observer that exports simulation counters through OpenTelemetry
// Uses the global meter provider unless one is supplied (no-op if not configured)
type Metrics struct {
	session attribute.KeyValue

	ticks       metric.Int64Counter
	dropped     metric.Int64Counter
	grips       metric.Int64Counter
	detaches    metric.Int64Counter
	shakes      metric.Int64Counter
	attacks     metric.Int64Counter
	hostDeaths  metric.Int64Counter
	damage      metric.Float64Histogram
	lastDropped uint64
}

// NewMetrics creates the instruments; mp may be nil
func NewMetrics(session uuid.UUID, mp metric.MeterProvider) (*Metrics, error) {
	var m metric.Meter
	if mp != nil {
		m = mp.Meter(instrumentationName)
	} else {
		m = otel.Meter(instrumentationName)
	}

	mt := &Metrics{session: attribute.String("session", session.String())}
	var err error

	if mt.ticks, err = m.Int64Counter(
		"colossus.ticks",
		metric.WithDescription("Simulation steps executed"),
	); err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	if mt.dropped, err = m.Int64Counter(
		"colossus.events.dropped",
		metric.WithDescription("Observer events overwritten before dispatch"),
	); err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}
	if mt.grips, err = m.Int64Counter(
		"colossus.grip.attempts",
		metric.WithDescription("Grip commands by outcome"),
	); err != nil {
		return nil, fmt.Errorf("creating grip counter: %w", err)
	}
	if mt.detaches, err = m.Int64Counter(
		"colossus.grip.detaches",
		metric.WithDescription("Detaches by reason"),
	); err != nil {
		return nil, fmt.Errorf("creating detach counter: %w", err)
	}
	if mt.shakes, err = m.Int64Counter(
		"colossus.host.shakes",
		metric.WithDescription("Host shakes started"),
	); err != nil {
		return nil, fmt.Errorf("creating shake counter: %w", err)
	}
	if mt.attacks, err = m.Int64Counter(
		"colossus.attacks",
		metric.WithDescription("Charge attacks by outcome"),
	); err != nil {
		return nil, fmt.Errorf("creating attack counter: %w", err)
	}
	if mt.hostDeaths, err = m.Int64Counter(
		"colossus.host.deaths",
		metric.WithDescription("Hosts killed"),
	); err != nil {
		return nil, fmt.Errorf("creating death counter: %w", err)
	}
	if mt.damage, err = m.Float64Histogram(
		"colossus.host.damage",
		metric.WithDescription("Effective damage per hit"),
	); err != nil {
		return nil, fmt.Errorf("creating damage histogram: %w", err)
	}
	return mt, nil
}

// RecordStep counts one step and any newly dropped events
func (m *Metrics) RecordStep(res StepResult) {
	ctx := context.Background()
	m.ticks.Add(ctx, 1, metric.WithAttributes(m.session))
	if res.Dropped > m.lastDropped {
		m.dropped.Add(ctx, int64(res.Dropped-m.lastDropped), metric.WithAttributes(m.session))
		m.lastDropped = res.Dropped
	}
}

func (m *Metrics) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventGripStart,
		event.EventGripFailed,
		event.EventGripEnd,
		event.EventHostShakeStart,
		event.EventHostDamaged,
		event.EventHostDeath,
		event.EventAttackResolved,
		event.EventAttackDenied,
	}
}

func (m *Metrics) HandleEvent(ev event.GameEvent) {
	ctx := context.Background()
	switch p := ev.Payload.(type) {
	case *event.GripStartPayload:
		m.grips.Add(ctx, 1, metric.WithAttributes(m.session, attribute.String("result", "ok")))
	case *event.GripFailedPayload:
		m.grips.Add(ctx, 1, metric.WithAttributes(m.session, attribute.String("result", p.Reason.String())))
	case *event.GripEndPayload:
		m.detaches.Add(ctx, 1, metric.WithAttributes(
			m.session,
			attribute.String("reason", p.Reason.String()),
			attribute.Bool("forced", p.Reason.Forced()),
		))
	case *event.HostShakePayload:
		if ev.Type == event.EventHostShakeStart {
			m.shakes.Add(ctx, 1, metric.WithAttributes(m.session))
		}
	case *event.HostDamagedPayload:
		m.damage.Record(ctx, p.Amount, metric.WithAttributes(m.session, attribute.Bool("weak_point", p.Multiplier > 1)))
	case *event.HostDeathPayload:
		m.hostDeaths.Add(ctx, 1, metric.WithAttributes(m.session))
	case *event.AttackResolvedPayload:
		m.attacks.Add(ctx, 1, metric.WithAttributes(m.session, attribute.String("result", "resolved")))
	case *event.AttackDeniedPayload:
		m.attacks.Add(ctx, 1, metric.WithAttributes(m.session, attribute.String("result", p.Reason.String())))
	}
}
