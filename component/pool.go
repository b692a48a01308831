package component

// Pool is a bounded depletable resource (stamina, grip strength, health)
// Invariant: 0 <= Current <= Max after every mutation through its methods
type Pool struct {
	Current float64
	Max     float64
}

// NewPool creates a full pool; negative capacity is treated as zero
func NewPool(max float64) Pool {
	if max < 0 {
		max = 0
	}
	return Pool{Current: max, Max: max}
}

// Drain removes up to amount and returns what was actually removed
// Non-positive amounts are ignored
func (p *Pool) Drain(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	if amount > p.Current {
		amount = p.Current
	}
	p.Current -= amount
	return amount
}

// Restore adds up to amount, capped at Max, and returns what was actually added
func (p *Pool) Restore(amount float64) float64 {
	if amount <= 0 {
		return 0
	}
	room := p.Max - p.Current
	if amount > room {
		amount = room
	}
	p.Current += amount
	return amount
}

// Fill sets Current to Max
func (p *Pool) Fill() {
	p.Current = p.Max
}

// Empty reports whether nothing remains
func (p Pool) Empty() bool {
	return p.Current <= 0
}

// Full reports whether the pool is at capacity
func (p Pool) Full() bool {
	return p.Current >= p.Max
}

// Fraction returns Current/Max in [0, 1]; zero capacity reads as empty
func (p Pool) Fraction() float64 {
	if p.Max <= 0 {
		return 0
	}
	return p.Current / p.Max
}
