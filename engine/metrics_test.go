package engine

import (
	"context"
	"testing"
	"time"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Metrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collect: %v", err)
	}
	out := make(map[string]metricdata.Metrics)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m
		}
	}
	return out
}

func sumBy(t *testing.T, m metricdata.Metrics, key, value string) int64 {
	t.Helper()
	sum, ok := m.Data.(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("%s: data is %T, want Sum[int64]", m.Name, m.Data)
	}
	var total int64
	for _, dp := range sum.DataPoints {
		if key != "" {
			v, ok := dp.Attributes.Value(attribute.Key(key))
			if !ok || v.AsString() != value {
				continue
			}
		}
		total += dp.Value
	}
	return total
}

func TestMetricsObserveWorld(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	// Shaking on but far off, so only the forced shake lands in the window
	hc := calmHost()
	hc.Shake.Enabled = true
	hc.Shake.BaseInterval = time.Hour
	w, h, a := newClimbWorld(t, hc)
	m, err := NewMetrics(w.SessionID(), mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	w.Register(m)

	step := func(in ...traction.Input) {
		for _, i := range in {
			w.Submit(a.ID(), i)
		}
		m.RecordStep(w.Step(stepDt))
	}

	// Nothing in reach from far away, then a real grip
	far := w.SpawnActor(traction.DefaultConfig(), traction.WithPosition(vmath.Vec3F{X: 100}))
	w.Submit(far.ID(), traction.Input{GripPressed: true})
	step(traction.Input{GripPressed: true})
	step(traction.Input{GripReleased: true})

	if !h.ForceShake() {
		t.Fatal("ForceShake refused on a live calm host")
	}
	step()
	step()

	got := collect(t, reader)

	if n := sumBy(t, got["colossus.ticks"], "session", w.SessionID().String()); n != 4 {
		t.Errorf("ticks = %d, want 4", n)
	}
	if n := sumBy(t, got["colossus.grip.attempts"], "result", "ok"); n != 1 {
		t.Errorf("successful grips = %d, want 1", n)
	}
	if n := sumBy(t, got["colossus.grip.attempts"], "", ""); n != 2 {
		t.Errorf("grip attempts = %d, want 2", n)
	}
	if n := sumBy(t, got["colossus.grip.detaches"], "reason", "released"); n != 1 {
		t.Errorf("released detaches = %d, want 1", n)
	}
	if n := sumBy(t, got["colossus.host.shakes"], "", ""); n != 1 {
		t.Errorf("shakes = %d, want 1", n)
	}
}

func TestMetricsDamageHistogram(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer mp.Shutdown(context.Background())

	w := NewWorld()
	h := w.SpawnHost(host.DefaultConfig())
	m, err := NewMetrics(w.SessionID(), mp)
	if err != nil {
		t.Fatalf("NewMetrics: %v", err)
	}
	w.Register(m)

	h.TakeDamage(40, nil)
	h.TakeDamage(h.Health().Max, nil)
	w.Step(stepDt)

	got := collect(t, reader)
	hist, ok := got["colossus.host.damage"].Data.(metricdata.Histogram[float64])
	if !ok {
		t.Fatalf("damage data is %T", got["colossus.host.damage"].Data)
	}
	var count uint64
	var sum float64
	for _, dp := range hist.DataPoints {
		count += dp.Count
		sum += dp.Sum
	}
	if count != 2 || sum != h.Health().Max {
		t.Errorf("damage count=%d sum=%v, want 2 and %v", count, sum, h.Health().Max)
	}
	if n := sumBy(t, got["colossus.host.deaths"], "", ""); n != 1 {
		t.Errorf("deaths = %d, want 1", n)
	}
}

func TestMetricsGlobalProvider(t *testing.T) {
	m, err := NewMetrics(NewWorld().SessionID(), nil)
	if err != nil {
		t.Fatalf("NewMetrics with global provider: %v", err)
	}
	m.RecordStep(StepResult{Dropped: 3})
	if m.lastDropped != 3 {
		t.Errorf("lastDropped = %d, want 3", m.lastDropped)
	}
}
