package spatial

//go:generate go tool mockgen -destination=./mocks/searcher_mock.go -package=mocks . Searcher

import (
	"github.com/lixenwraith/colossus/core"
	"github.com/lixenwraith/colossus/vmath"
)

// PointRef addresses an attach point by owning host and arena index
type PointRef struct {
	Host  core.Entity
	Index int
}

// PointCandidate is one attach point returned by a proximity query
type PointCandidate struct {
	Ref      PointRef
	Position vmath.Vec3F
	Distance float64
}

// SurfaceHit describes the first surface struck by a sweep
// HasHost is false for static geometry and dead hosts, which cannot be climbed
type SurfaceHit struct {
	Position vmath.Vec3F
	Normal   vmath.Vec3F
	Distance float64
	Host     core.Entity
	HasHost  bool
}

// Searcher is the synchronous spatial query collaborator used by actors
type Searcher interface {
	// PointsWithin returns attach points whose world position lies within radius of pos
	// Sorted by ascending distance; equal distances keep registration order
	PointsWithin(pos vmath.Vec3F, radius float64) []PointCandidate

	// Sweep casts a ray from origin along dir and reports the nearest surface within maxDist
	Sweep(origin, dir vmath.Vec3F, maxDist float64) (SurfaceHit, bool)
}
