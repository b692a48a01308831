package host

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/component"
	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/vmath"
)

// GripperQuery answers whether any actor near a position is currently gripping
// Implemented by the actor registry; the host never holds actor references
type GripperQuery interface {
	AnyGrippingWithin(center vmath.Vec3F, radius float64) bool
}

// Host is a large climbable entity with health, a shake scheduler and optional waypoint movement
type Host struct {
	id  core.Entity
	cfg Config

	position vmath.Vec3F
	yaw      float64

	points []AttachPoint

	health component.Pool
	alive  bool

	// Shake state
	shaking        bool
	shakeRemaining time.Duration
	shakeElapsed   time.Duration
	nextShakeAt    time.Duration
	shakeOffset    vmath.Vec3F
	noise          *vmath.ShakeNoise
	rng            *vmath.FastRand

	// Movement state
	waypoints     []vmath.Vec3F
	waypointIndex int
	moving        bool
	lastDelta     vmath.Vec3F

	subs      []*subscription
	nextSubID SubscriptionID
	sink      event.Sink
	tick      core.Tick

	log zerolog.Logger
}

// Option configures a Host at construction
type Option func(*Host)

// WithPosition sets the initial world position
func WithPosition(p vmath.Vec3F) Option {
	return func(h *Host) { h.position = p }
}

// WithYaw sets the initial heading in radians
func WithYaw(yaw float64) Option {
	return func(h *Host) { h.yaw = yaw }
}

// WithPoints authors the attach point arena
func WithPoints(points ...AttachPoint) Option {
	return func(h *Host) {
		for _, p := range points {
			h.addPoint(p)
		}
	}
}

// WithWaypoints sets the movement path
func WithWaypoints(waypoints ...vmath.Vec3F) Option {
	return func(h *Host) {
		h.waypoints = append(h.waypoints[:0], waypoints...)
		h.waypointIndex = 0
		h.moving = len(h.waypoints) > 0
	}
}

// WithSink routes host events to the observer queue
func WithSink(sink event.Sink) Option {
	return func(h *Host) { h.sink = sink }
}

// WithSeed fixes the shake randomness
func WithSeed(seed uint64) Option {
	return func(h *Host) { h.rng = vmath.NewFastRand(seed) }
}

// WithLogger attaches a logger
func WithLogger(l zerolog.Logger) Option {
	return func(h *Host) { h.log = l }
}

// WithStartTime schedules the first shake relative to the given simulation time
func WithStartTime(now time.Duration) Option {
	return func(h *Host) { h.tick.Now = now }
}

// New creates a living host; the first shake is scheduled one jittered interval after start time
func New(id core.Entity, cfg Config, opts ...Option) *Host {
	h := &Host{
		id:     id,
		cfg:    cfg,
		health: component.NewPool(cfg.MaxHealth),
		log:    zerolog.Nop(),
	}
	h.alive = !h.health.Empty()
	for _, opt := range opts {
		opt(h)
	}
	if h.rng == nil {
		h.rng = vmath.NewFastRand(uint64(id)*0x9E3779B97F4A7C15 + 1)
	}
	h.noise = vmath.NewShakeNoise(cfg.Shake.Frequency, h.rng)
	h.scheduleNextShake(h.tick.Now)
	h.log = h.log.With().Uint64("host", uint64(id)).Logger()
	return h
}

func (h *Host) addPoint(p AttachPoint) {
	p.normalize()
	p.host = h
	p.index = len(h.points)
	h.points = append(h.points, p)
}

func (h *Host) ID() core.Entity            { return h.id }
func (h *Host) Config() Config             { return h.cfg }
func (h *Host) Position() vmath.Vec3F      { return h.position }
func (h *Host) Yaw() float64               { return h.yaw }
func (h *Host) Alive() bool                { return h.alive }
func (h *Host) Health() component.Pool     { return h.health }
func (h *Host) CollisionRadius() float64   { return h.cfg.CollisionRadius }
func (h *Host) LastDelta() vmath.Vec3F     { return h.lastDelta }
func (h *Host) NextShakeAt() time.Duration { return h.nextShakeAt }

// Shaking reports whether a shake is in progress
func (h *Host) Shaking() bool {
	return h.shaking
}

// ShakeOffset is the current displacement produced by the shake, zero when calm
func (h *Host) ShakeOffset() vmath.Vec3F {
	return h.shakeOffset
}

// ShakeDrainMultiplier is the stamina drain factor while shaking, 1 when calm
func (h *Host) ShakeDrainMultiplier() float64 {
	if !h.shaking {
		return 1
	}
	return h.cfg.Shake.DrainMultiplier
}

// PointCount returns the arena size
func (h *Host) PointCount() int {
	return len(h.points)
}

// Point returns the attach point at index i
func (h *Host) Point(i int) (*AttachPoint, bool) {
	if i < 0 || i >= len(h.points) {
		return nil, false
	}
	return &h.points[i], true
}

// NearestPoint finds the closest attach point within maxDist of pos
// Ties keep the lower index; a host without points returns false
func (h *Host) NearestPoint(pos vmath.Vec3F, maxDist float64) (int, bool) {
	best := -1
	bestDist := maxDist
	for i := range h.points {
		d := vmath.V3FDistance(pos, h.points[i].WorldPosition())
		if d <= bestDist && (best < 0 || d < bestDist) {
			best = i
			bestDist = d
		}
	}
	return best, best >= 0
}

// Waypoints returns a copy of the movement path
func (h *Host) Waypoints() []vmath.Vec3F {
	out := make([]vmath.Vec3F, len(h.waypoints))
	copy(out, h.waypoints)
	return out
}

// Moving reports whether the host is still following its path
func (h *Host) Moving() bool {
	return h.moving && h.alive
}

// Update advances aggro, shake and movement for one tick
// Must run before any actor reads this host in the same tick
func (h *Host) Update(tick core.Tick, grippers GripperQuery) {
	h.tick = tick
	if !h.alive {
		return
	}
	h.updateAggro(tick.Now, grippers)
	h.updateShake(tick)
	h.updateMovement(tick)
}

// emit stamps and delivers an event to direct subscribers, then to the observer sink
func (h *Host) emit(t event.EventType, payload any) {
	ev := event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   h.tick.Frame,
		Time:    h.tick.Now,
	}
	h.notify(ev)
	if h.sink != nil {
		h.sink.Push(ev)
	}
}
