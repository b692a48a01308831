package core

import (
	"time"
)

// Tick describes one fixed simulation step
type Tick struct {
	// Frame is the monotonically increasing tick number
	Frame int64

	// Now is the simulation time at the end of this step
	Now time.Duration

	// Dt is the step length
	Dt time.Duration
}

// Seconds returns Dt as float seconds for rate math
func (t Tick) Seconds() float64 {
	return t.Dt.Seconds()
}
