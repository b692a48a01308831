package traction

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/component"
	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/spatial"
	"github.com/lixenwraith/colossus/vmath"
)

// HostLookup resolves a host ID to the live host
// The controller never owns hosts; it re-resolves every tick
type HostLookup interface {
	Host(id core.Entity) (*host.Host, bool)
}

// Controller is one actor's attachment state machine with stamina and grip strength accounting
// Not safe for concurrent use; driven from the simulation goroutine only
type Controller struct {
	id     core.Entity
	cfg    Config
	hosts  HostLookup
	search spatial.Searcher
	sink   event.Sink
	log    zerolog.Logger

	position vmath.Vec3F
	aim      vmath.Vec3F
	move     vmath.Vec3F

	state    State
	climbing bool
	charging bool

	stamina  component.Pool
	grip     component.Pool
	depleted bool

	// Attachment, valid only while Attached
	hostID        core.Entity
	point         int
	sub           host.SubscriptionID
	normal        vmath.Vec3F
	anchor        vmath.Vec3F
	localAnchor   vmath.Vec3F // Raw surface contact in the host frame
	localNormal   vmath.Vec3F
	hostYaw       float64 // Host heading at the last sync
	contactOffset float64
	appliedShake  vmath.Vec3F
	hostDelta     vmath.Vec3F // Host translation reported this tick

	climbVelocity    vmath.Vec3F
	externalVelocity vmath.Vec3F

	chargeTime     time.Duration
	releasePending bool

	lastJumpOff time.Duration
	lastAttack  time.Duration
	lastDrain   time.Duration

	pending Input
	tick    core.Tick
	report  *Report
}

// Option configures a Controller at construction
type Option func(*Controller)

// WithPosition sets the initial world position
func WithPosition(p vmath.Vec3F) Option {
	return func(c *Controller) { c.position = p }
}

// WithAim sets the initial sweep direction
func WithAim(dir vmath.Vec3F) Option {
	return func(c *Controller) {
		if !vmath.V3FIsZero(dir) {
			c.aim = vmath.V3FNormalize(dir)
		}
	}
}

// WithSink routes actor events to the observer queue
func WithSink(sink event.Sink) Option {
	return func(c *Controller) { c.sink = sink }
}

// WithLogger attaches a logger
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// New creates a detached actor with full pools and every cooldown already elapsed
func New(id core.Entity, cfg Config, hosts HostLookup, search spatial.Searcher, opts ...Option) *Controller {
	c := &Controller{
		id:          id,
		cfg:         cfg,
		hosts:       hosts,
		search:      search,
		log:         zerolog.Nop(),
		aim:         vmath.V3FForward,
		stamina:     component.NewPool(cfg.Stamina.Max),
		grip:        component.NewPool(cfg.Grip.StrengthMax),
		point:       event.NoPoint,
		lastJumpOff: -cfg.Grip.WallJumpCooldown,
		lastAttack:  -cfg.Attack.Cooldown,
		lastDrain:   -cfg.Stamina.RegenDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With().Uint64("actor", uint64(id)).Logger()
	return c
}

func (c *Controller) ID() core.Entity               { return c.id }
func (c *Controller) Config() Config                { return c.cfg }
func (c *Controller) Position() vmath.Vec3F         { return c.position }
func (c *Controller) State() State                  { return c.state }
func (c *Controller) Attached() bool                { return c.state == StateAttached }
func (c *Controller) Climbing() bool                { return c.climbing }
func (c *Controller) Charging() bool                { return c.charging }
func (c *Controller) ChargeTime() time.Duration     { return c.chargeTime }
func (c *Controller) Stamina() component.Pool       { return c.stamina }
func (c *Controller) GripStrength() component.Pool  { return c.grip }
func (c *Controller) Depleted() bool                { return c.depleted }
func (c *Controller) SurfaceNormal() vmath.Vec3F    { return c.normal }
func (c *Controller) ClimbVelocity() vmath.Vec3F    { return c.climbVelocity }
func (c *Controller) ExternalVelocity() vmath.Vec3F { return c.externalVelocity }
func (c *Controller) Subscribed() bool              { return c.sub != 0 }
func (c *Controller) LastJumpOff() time.Duration    { return c.lastJumpOff }
func (c *Controller) Aim() vmath.Vec3F              { return c.aim }

// Host returns the attached host ID
func (c *Controller) Host() (core.Entity, bool) {
	return c.hostID, c.state == StateAttached
}

// PointIndex returns the attached point index, event.NoPoint for raw surface grips or when detached
func (c *Controller) PointIndex() int {
	return c.point
}

// Teleport moves a detached actor; ignored while attached since position is host-driven
func (c *Controller) Teleport(p vmath.Vec3F) bool {
	if c.state == StateAttached {
		return false
	}
	c.position = p
	return true
}

// AddImpulse adds to the decaying external velocity
func (c *Controller) AddImpulse(v vmath.Vec3F) {
	c.externalVelocity = vmath.V3FAdd(c.externalVelocity, v)
}

// Submit queues input for the next Update; multiple submissions between ticks merge
func (c *Controller) Submit(in Input) {
	c.pending.merge(in)
}

// Update runs one tick in fixed order:
// commands, climb velocity, hand-over-hand search, position sync, stamina, grip strength, charge
// Hosts must already be updated for this tick
func (c *Controller) Update(tick core.Tick) Report {
	var report Report
	c.tick = tick
	c.report = &report
	defer func() { c.report = nil }()

	in := c.pending
	c.pending = Input{}
	c.move = vmath.V3FClampMagnitude(in.Move, 1)
	if !vmath.V3FIsZero(in.Aim) {
		c.aim = vmath.V3FNormalize(in.Aim)
	}

	c.applyCommands(in, &report)
	c.updateClimbVelocity()
	c.handOverHand()
	c.syncPosition()
	c.updateStamina()
	c.updateGripStrength()
	c.updateCharge(&report)

	return report
}

// attachedHost resolves the current host, nil when detached or gone
func (c *Controller) attachedHost() *host.Host {
	if c.state != StateAttached {
		return nil
	}
	h, ok := c.hosts.Host(c.hostID)
	if !ok {
		return nil
	}
	return h
}

// attachedPoint resolves the current discrete point, nil on raw surface
func (c *Controller) attachedPoint(h *host.Host) *host.AttachPoint {
	if h == nil || c.point == event.NoPoint {
		return nil
	}
	p, ok := h.Point(c.point)
	if !ok {
		return nil
	}
	return p
}

func (c *Controller) emit(t event.EventType, payload any) {
	if c.sink == nil {
		return
	}
	c.sink.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   c.tick.Frame,
		Time:    c.tick.Now,
	})
}

func (c *Controller) emitStamina() {
	c.emit(event.EventStaminaChanged, &event.PoolChangedPayload{
		Actor:    c.id,
		Current:  c.stamina.Current,
		Max:      c.stamina.Max,
		Depleted: c.depleted,
	})
}

func (c *Controller) emitGrip() {
	c.emit(event.EventGripStrengthChanged, &event.PoolChangedPayload{
		Actor:   c.id,
		Current: c.grip.Current,
		Max:     c.grip.Max,
	})
}
