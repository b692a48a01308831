package engine

import (
	"testing"
	"time"
)

func TestMonotonicTimeProvider(t *testing.T) {
	p := NewMonotonicTimeProvider()
	t1 := p.Now()
	time.Sleep(5 * time.Millisecond)
	if d := p.Now().Sub(t1); d < 5*time.Millisecond {
		t.Errorf("elapsed %v, want >= 5ms", d)
	}
}

func TestPausableClock(t *testing.T) {
	src := NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	pc := NewPausableClock(src)

	src.Advance(3 * time.Second)
	if pc.Elapsed() != 3*time.Second {
		t.Fatalf("elapsed = %v", pc.Elapsed())
	}

	pc.Pause()
	pc.Pause()
	src.Advance(10 * time.Second)
	if pc.Elapsed() != 3*time.Second {
		t.Errorf("elapsed while paused = %v", pc.Elapsed())
	}
	if pc.TotalPaused() != 10*time.Second {
		t.Errorf("total paused = %v", pc.TotalPaused())
	}

	pc.Resume()
	src.Advance(time.Second)
	if pc.Elapsed() != 4*time.Second {
		t.Errorf("elapsed after resume = %v", pc.Elapsed())
	}
	if pc.IsPaused() {
		t.Error("still paused")
	}
}
