package component

import (
	"testing"

	"pgregory.net/rapid"
)

func TestPoolDrainRestore(t *testing.T) {
	p := NewPool(100)

	if got := p.Drain(30); got != 30 {
		t.Errorf("Drain returned %v, want 30", got)
	}
	if p.Current != 70 {
		t.Errorf("Current = %v, want 70", p.Current)
	}

	// Over-drain clamps at zero and reports the actual amount
	if got := p.Drain(500); got != 70 {
		t.Errorf("over-drain returned %v, want 70", got)
	}
	if !p.Empty() {
		t.Error("pool should be empty")
	}

	if got := p.Restore(250); got != 100 {
		t.Errorf("over-restore returned %v, want 100", got)
	}
	if !p.Full() {
		t.Error("pool should be full")
	}
}

func TestPoolIgnoresNonPositive(t *testing.T) {
	p := NewPool(10)
	p.Drain(-5)
	p.Restore(-5)
	if p.Current != 10 {
		t.Errorf("negative amounts changed pool: %v", p.Current)
	}
	if NewPool(-3).Max != 0 {
		t.Error("negative capacity should clamp to zero")
	}
}

func TestPoolFraction(t *testing.T) {
	p := Pool{Current: 25, Max: 100}
	if p.Fraction() != 0.25 {
		t.Errorf("Fraction = %v", p.Fraction())
	}
	var zero Pool
	if zero.Fraction() != 0 {
		t.Error("zero capacity fraction must be 0")
	}
}

func TestPoolQueriesOnReturnedValue(t *testing.T) {
	full := func() Pool { return NewPool(5) }
	if !full().Full() || full().Empty() || full().Fraction() != 1 {
		t.Errorf("queries on returned pool: full=%v empty=%v fraction=%v",
			full().Full(), full().Empty(), full().Fraction())
	}
}

// TestPoolBoundsProperty drives random drain/restore sequences and checks the bounds invariant
func TestPoolBoundsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := NewPool(rapid.Float64Range(0, 1000).Draw(t, "max"))
		ops := rapid.SliceOf(rapid.Float64Range(-500, 500)).Draw(t, "ops")
		for _, op := range ops {
			if op < 0 {
				p.Drain(-op)
			} else {
				p.Restore(op)
			}
			if p.Current < 0 || p.Current > p.Max {
				t.Fatalf("pool out of bounds: %+v", p)
			}
		}
	})
}
