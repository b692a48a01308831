package parameter

import "time"

// Simulation Loop & Engine Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// GameUpdateInterval is the fixed simulation tick
	GameUpdateInterval = 20 * time.Millisecond

	// MaxTickCatchUp caps how many missed ticks the scheduler replays after a stall
	MaxTickCatchUp = 5
)

// Event Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 2048

	// EventBufferMask is the bitmask for fast modulo operations (2048 - 1)
	EventBufferMask = 2047
)

// Spatial Search
const (
	// SweepSkin extends sweep reach so an actor resting on a surface still registers it
	SweepSkin = 0.01
)
