package spatial

import (
	"math"
	"sort"

	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/host"
	"github.com/lixenwraith/colossus/parameter"
	"github.com/lixenwraith/colossus/vmath"
)

// Obstacle is static, non-climbable sphere geometry
type Obstacle struct {
	Center vmath.Vec3F
	Radius float64
}

// Index is the in-memory Searcher over registered hosts and static obstacles
// Host transforms are read live on every query, so no rebuild step is needed after movement
type Index struct {
	hosts     []*host.Host
	obstacles []Obstacle
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{}
}

// AddHost registers a host; duplicates by ID are ignored
func (x *Index) AddHost(h *host.Host) {
	for _, existing := range x.hosts {
		if existing.ID() == h.ID() {
			return
		}
	}
	x.hosts = append(x.hosts, h)
}

// RemoveHost unregisters a host, reporting whether it was present
func (x *Index) RemoveHost(id core.Entity) bool {
	for i, h := range x.hosts {
		if h.ID() == id {
			x.hosts = append(x.hosts[:i], x.hosts[i+1:]...)
			return true
		}
	}
	return false
}

// AddObstacle registers static geometry
func (x *Index) AddObstacle(o Obstacle) {
	x.obstacles = append(x.obstacles, o)
}

// Obstacles returns the registered static geometry
func (x *Index) Obstacles() []Obstacle {
	return x.obstacles
}

// PointsWithin implements Searcher; dead hosts contribute no points
func (x *Index) PointsWithin(pos vmath.Vec3F, radius float64) []PointCandidate {
	if radius < 0 {
		return nil
	}
	var out []PointCandidate
	for _, h := range x.hosts {
		if !h.Alive() {
			continue
		}
		for i := 0; i < h.PointCount(); i++ {
			p, _ := h.Point(i)
			wp := p.WorldPosition()
			d := vmath.V3FDistance(pos, wp)
			if d > radius {
				continue
			}
			out = append(out, PointCandidate{
				Ref:      PointRef{Host: h.ID(), Index: i},
				Position: wp,
				Distance: d,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Distance < out[j].Distance
	})
	return out
}

// Sweep implements Searcher with ray-sphere tests against host collision spheres and obstacles
func (x *Index) Sweep(origin, dir vmath.Vec3F, maxDist float64) (SurfaceHit, bool) {
	if maxDist < 0 || vmath.V3FIsZero(dir) {
		return SurfaceHit{}, false
	}
	dir = vmath.V3FNormalize(dir)
	limit := maxDist + parameter.SweepSkin

	var best SurfaceHit
	found := false
	consider := func(center vmath.Vec3F, radius float64, id core.Entity, climbable bool) {
		t, ok := raySphere(origin, dir, center, radius)
		if !ok || t > limit || (found && t >= best.Distance) {
			return
		}
		hitPos := vmath.V3FAdd(origin, vmath.V3FScale(dir, t))
		normal := vmath.V3FNormalize(vmath.V3FSub(hitPos, center))
		if vmath.V3FIsZero(normal) {
			normal = vmath.V3FScale(dir, -1)
		}
		best = SurfaceHit{
			Position: hitPos,
			Normal:   normal,
			Distance: t,
			Host:     id,
			HasHost:  climbable,
		}
		found = true
	}

	for _, h := range x.hosts {
		if h.CollisionRadius() <= 0 {
			continue
		}
		consider(h.Position(), h.CollisionRadius(), h.ID(), h.Alive())
	}
	for _, o := range x.obstacles {
		consider(o.Center, o.Radius, 0, false)
	}
	return best, found
}

// raySphere returns the entry distance along a unit ray
// An origin inside the sphere reports distance 0
func raySphere(origin, dir, center vmath.Vec3F, radius float64) (float64, bool) {
	oc := vmath.V3FSub(origin, center)
	c := vmath.V3FDot(oc, oc) - radius*radius
	if c <= 0 {
		return 0, true
	}
	b := vmath.V3FDot(oc, dir)
	if b > 0 {
		// Outside and pointing away
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}
