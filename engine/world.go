package engine

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/event"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/spatial"
	"github.com/lixenwraith/colossus/status"
	"github.com/lixenwraith/colossus/traction"
	"github.com/lixenwraith/colossus/vmath"
)

// World owns every host and actor of one session and advances them in fixed order
// Step and all mutators take the write lock; renderers read under RLock or RunSafe
type World struct {
	mu sync.RWMutex

	session uuid.UUID
	log     zerolog.Logger

	hosts     []*host.Host
	hostByID  map[core.Entity]*host.Host
	actors    []*traction.Controller
	actorByID map[core.Entity]*traction.Controller
	index     *spatial.Index

	queue  *event.EventQueue
	router *event.Router
	status *status.Registry
	pub    *publisher

	nextEntity core.Entity
	frame      int64
	now        time.Duration
}

// WorldOption configures a World at construction
type WorldOption func(*World)

// WithWorldLogger sets the base logger; the session ID is added to its context
func WithWorldLogger(l zerolog.Logger) WorldOption {
	return func(w *World) { w.log = l }
}

// WithStatus publishes per-tick telemetry to reg
func WithStatus(reg *status.Registry) WorldOption {
	return func(w *World) { w.status = reg }
}

// WithSessionID pins the session ID instead of generating one
func WithSessionID(id uuid.UUID) WorldOption {
	return func(w *World) { w.session = id }
}

func NewWorld(opts ...WorldOption) *World {
	queue := event.NewEventQueue()
	w := &World{
		session:   uuid.New(),
		log:       zerolog.Nop(),
		hostByID:  make(map[core.Entity]*host.Host),
		actorByID: make(map[core.Entity]*traction.Controller),
		index:     spatial.NewIndex(),
		queue:     queue,
		router:    event.NewRouter(queue),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With().Str("session", w.session.String()).Logger()
	if w.status != nil {
		w.pub = newPublisher(w.status)
	}
	return w
}

// SessionID identifies this world in logs and metrics
func (w *World) SessionID() uuid.UUID {
	return w.session
}

func (w *World) Logger() zerolog.Logger {
	return w.log
}

// Register adds an observer; observers run after every Step, in registration order
func (w *World) Register(h event.Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.router.Register(h)
}

// SpawnHost creates a host wired to the world queue, index and logger
func (w *World) SpawnHost(cfg host.Config, opts ...host.Option) *host.Host {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntity++
	id := w.nextEntity
	base := []host.Option{
		host.WithSink(w.queue),
		host.WithLogger(w.log),
		host.WithStartTime(w.now),
	}
	h := host.New(id, cfg, append(base, opts...)...)

	w.hosts = append(w.hosts, h)
	w.hostByID[id] = h
	w.index.AddHost(h)
	w.log.Debug().Uint64("host", uint64(id)).Int("points", h.PointCount()).Msg("host spawned")
	return h
}

// SpawnActor creates a controller resolving hosts and searches through this world
func (w *World) SpawnActor(cfg traction.Config, opts ...traction.Option) *traction.Controller {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextEntity++
	id := w.nextEntity
	base := []traction.Option{
		traction.WithSink(w.queue),
		traction.WithLogger(w.log),
	}
	c := traction.New(id, cfg, w, w.index, append(base, opts...)...)

	w.actors = append(w.actors, c)
	w.actorByID[id] = c
	w.log.Debug().Uint64("actor", uint64(id)).Msg("actor spawned")
	return c
}

// AddObstacle registers static non-climbable geometry
func (w *World) AddObstacle(o spatial.Obstacle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.index.AddObstacle(o)
}

// Host implements traction.HostLookup; callers inside Step already hold the lock
func (w *World) Host(id core.Entity) (*host.Host, bool) {
	h, ok := w.hostByID[id]
	return h, ok
}

// Actor returns a spawned controller
func (w *World) Actor(id core.Entity) (*traction.Controller, bool) {
	c, ok := w.actorByID[id]
	return c, ok
}

// Hosts returns hosts in update order
func (w *World) Hosts() []*host.Host {
	return w.hosts
}

// Actors returns actors in update order
func (w *World) Actors() []*traction.Controller {
	return w.actors
}

// Searcher exposes the spatial index
func (w *World) Searcher() spatial.Searcher {
	return w.index
}

// Index exposes static geometry for rendering
func (w *World) Index() *spatial.Index {
	return w.index
}

// AnyGrippingWithin implements host.GripperQuery over all actors
func (w *World) AnyGrippingWithin(center vmath.Vec3F, radius float64) bool {
	for _, a := range w.actors {
		if a.Attached() && vmath.V3FDistance(a.Position(), center) <= radius {
			return true
		}
	}
	return false
}

// Submit queues input for an actor; unknown IDs are ignored
func (w *World) Submit(actor core.Entity, in traction.Input) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, ok := w.actorByID[actor]
	if !ok {
		return false
	}
	c.Submit(in)
	return true
}

// StepResult summarizes one simulation step
type StepResult struct {
	Tick       core.Tick
	Reports    map[core.Entity]traction.Report
	Dispatched int
	Dropped    uint64
}

// Step advances one tick: every host, then every actor, then observer dispatch
func (w *World) Step(dt time.Duration) StepResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.frame++
	w.now += dt
	tick := core.Tick{Frame: w.frame, Now: w.now, Dt: dt}

	for _, h := range w.hosts {
		h.Update(tick, w)
	}

	reports := make(map[core.Entity]traction.Report, len(w.actors))
	for _, a := range w.actors {
		reports[a.ID()] = a.Update(tick)
	}

	w.markReachable()

	dispatched := w.router.DispatchAll()
	if w.pub != nil {
		w.pub.publish(w, tick)
	}

	return StepResult{
		Tick:       tick,
		Reports:    reports,
		Dispatched: dispatched,
		Dropped:    w.queue.Dropped(),
	}
}

// markReachable highlights the point each detached actor would grip next
func (w *World) markReachable() {
	for _, h := range w.hosts {
		for i := 0; i < h.PointCount(); i++ {
			if p, ok := h.Point(i); ok {
				p.SetHighlighted(false)
			}
		}
	}
	for _, a := range w.actors {
		if a.Attached() {
			continue
		}
		for _, c := range w.index.PointsWithin(a.Position(), a.Config().Grip.ReachDistance) {
			h, ok := w.hostByID[c.Ref.Host]
			if !ok {
				continue
			}
			p, ok := h.Point(c.Ref.Index)
			if ok && p.IsWithinRange(a.Position()) && p.IsValidApproach(a.Position()) {
				p.SetHighlighted(true)
				break
			}
		}
	}
}

// Now returns the current simulation time
func (w *World) Now() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.now
}

// Frame returns the number of completed steps
func (w *World) Frame() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.frame
}

// Exec runs fn under the write lock, for out-of-band mutations such as forcing a shake
func (w *World) Exec(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn()
}

// RunSafe runs fn under the read lock, for renderers walking hosts and actors
func (w *World) RunSafe(fn func()) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	fn()
}
