package host

import (
	"github.com/lixenwraith/colossus/vmath"
)

// AttachPoint is one grabbable location on a host surface
// Geometry fields are host-local; world values are derived from the owning host's transform on every call
type AttachPoint struct {
	// Name is an optional authoring label
	Name string

	// Offset is the position relative to the host origin
	Offset vmath.Vec3F

	// Forward is the outward surface normal at the point
	Forward vmath.Vec3F

	// Up is the climbing "up" along the surface
	Up vmath.Vec3F

	// Radius is the acceptance radius for proximity checks
	Radius float64

	// RequiresApproach gates grips to a cone around ApproachDirection
	RequiresApproach     bool
	ApproachDirection    vmath.Vec3F
	ApproachToleranceDeg float64

	// IsWeakPoint marks a combat modifier; DamageMultiplier is 1 otherwise
	IsWeakPoint      bool
	DamageMultiplier float64

	// HasSurfaceGrip divides stamina drain by GripBonusFactor while attached here
	HasSurfaceGrip  bool
	GripBonusFactor float64

	host        *Host
	index       int
	highlighted bool
}

// normalize fills authoring defaults
func (p *AttachPoint) normalize() {
	if vmath.V3FIsZero(p.Forward) {
		p.Forward = vmath.V3FForward
	}
	p.Forward = vmath.V3FNormalize(p.Forward)
	if vmath.V3FIsZero(p.Up) {
		p.Up = vmath.V3FUp
	}
	p.Up = vmath.V3FNormalize(p.Up)
	if !vmath.V3FIsZero(p.ApproachDirection) {
		p.ApproachDirection = vmath.V3FNormalize(p.ApproachDirection)
	}
	if !p.IsWeakPoint || p.DamageMultiplier <= 0 {
		p.DamageMultiplier = 1
	}
	if !p.HasSurfaceGrip || p.GripBonusFactor <= 0 {
		p.GripBonusFactor = 1
	}
}

// Host returns the owning host
func (p *AttachPoint) Host() *Host {
	return p.host
}

// Index returns the point's slot in its host arena
func (p *AttachPoint) Index() int {
	return p.index
}

// WorldPosition derives the point location from the host transform
func (p *AttachPoint) WorldPosition() vmath.Vec3F {
	return vmath.V3FAdd(p.host.position, vmath.V3FRotateY(p.Offset, p.host.yaw))
}

// ForwardDirection is the outward surface normal in world space
func (p *AttachPoint) ForwardDirection() vmath.Vec3F {
	return vmath.V3FRotateY(p.Forward, p.host.yaw)
}

// UpDirection is the surface "up" in world space
func (p *AttachPoint) UpDirection() vmath.Vec3F {
	return vmath.V3FRotateY(p.Up, p.host.yaw)
}

// ApproachWorld is the approach direction in world space
func (p *AttachPoint) ApproachWorld() vmath.Vec3F {
	return vmath.V3FRotateY(p.ApproachDirection, p.host.yaw)
}

// IsWithinRange reports distance(query, point) <= Radius
func (p *AttachPoint) IsWithinRange(query vmath.Vec3F) bool {
	return vmath.V3FDistance(query, p.WorldPosition()) <= p.Radius
}

// IsValidApproach checks the directional gate
// The angle between the approach direction and the vector from -> point must be within tolerance
func (p *AttachPoint) IsValidApproach(from vmath.Vec3F) bool {
	if !p.RequiresApproach {
		return true
	}
	toPoint := vmath.V3FSub(p.WorldPosition(), from)
	if vmath.V3FIsZero(toPoint) {
		return true
	}
	return vmath.V3FAngleDeg(p.ApproachWorld(), toPoint) <= p.ApproachToleranceDeg
}

// SetHighlighted toggles the cosmetic highlight; no simulation effect
func (p *AttachPoint) SetHighlighted(on bool) {
	p.highlighted = on
}

// Highlighted reports the cosmetic highlight state
func (p *AttachPoint) Highlighted() bool {
	return p.highlighted
}
