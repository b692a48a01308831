package engine

import (
	"fmt"
	"sync/atomic"

	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/status"
)

type hostStats struct {
	health  *status.AtomicFloat
	shaking *atomic.Bool
	alive   *atomic.Bool
}

type actorStats struct {
	stamina  *status.AtomicFloat
	grip     *status.AtomicFloat
	state    *status.AtomicString
	depleted *atomic.Bool
}

// publisher copies per-tick state into the status registry with cached pointers
type publisher struct {
	reg     *status.Registry
	frame   *atomic.Int64
	simTime *status.AtomicFloat
	dropped *atomic.Int64
	hosts   map[core.Entity]hostStats
	actors  map[core.Entity]actorStats
}

func newPublisher(reg *status.Registry) *publisher {
	return &publisher{
		reg:     reg,
		frame:   reg.Ints.Get("world.frame"),
		simTime: reg.Floats.Get("world.time_s"),
		dropped: reg.Ints.Get("events.dropped"),
		hosts:   make(map[core.Entity]hostStats),
		actors:  make(map[core.Entity]actorStats),
	}
}

func (p *publisher) publish(w *World, tick core.Tick) {
	p.frame.Store(tick.Frame)
	p.simTime.Set(tick.Now.Seconds())
	p.dropped.Store(int64(w.queue.Dropped()))

	for _, h := range w.hosts {
		s, ok := p.hosts[h.ID()]
		if !ok {
			prefix := fmt.Sprintf("host.%d.", h.ID())
			s = hostStats{
				health:  p.reg.Floats.Get(prefix + "health"),
				shaking: p.reg.Bools.Get(prefix + "shaking"),
				alive:   p.reg.Bools.Get(prefix + "alive"),
			}
			p.hosts[h.ID()] = s
		}
		s.health.Set(h.Health().Current)
		s.shaking.Store(h.Shaking())
		s.alive.Store(h.Alive())
	}

	for _, a := range w.actors {
		s, ok := p.actors[a.ID()]
		if !ok {
			prefix := fmt.Sprintf("actor.%d.", a.ID())
			s = actorStats{
				stamina:  p.reg.Floats.Get(prefix + "stamina"),
				grip:     p.reg.Floats.Get(prefix + "grip"),
				state:    p.reg.Strings.Get(prefix + "state"),
				depleted: p.reg.Bools.Get(prefix + "depleted"),
			}
			p.actors[a.ID()] = s
		}
		s.stamina.Set(a.Stamina().Current)
		s.grip.Set(a.GripStrength().Current)
		s.state.Store(a.State().String())
		s.depleted.Store(a.Depleted())
	}
}
