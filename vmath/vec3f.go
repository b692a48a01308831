package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector for world-space positions, directions and velocities
// Y is up
type Vec3F struct {
	X, Y, Z float64
}

// Common axis vectors
var (
	V3FZero    = Vec3F{}
	V3FUp      = Vec3F{Y: 1}
	V3FForward = Vec3F{Z: 1}
	V3FRight   = Vec3F{X: 1}
)

// Epsilon is the tolerance used for zero-length and equality checks
const Epsilon = 1e-9

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDistance returns the euclidean distance between two points
func V3FDistance(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

// V3FIsZero reports whether every component is within Epsilon of zero
func V3FIsZero(v Vec3F) bool {
	return V3FMagSq(v) <= Epsilon*Epsilon
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FClampMagnitude limits vector magnitude to maxMag
func V3FClampMagnitude(v Vec3F, maxMag float64) Vec3F {
	magSq := V3FMagSq(v)
	if magSq <= maxMag*maxMag {
		return v
	}
	return V3FScale(V3FNormalize(v), maxMag)
}

// V3FProjectOnPlane removes the component of v along the plane normal n
// n does not need to be normalized; a zero normal returns v unchanged
func V3FProjectOnPlane(v, n Vec3F) Vec3F {
	nn := V3FMagSq(n)
	if nn == 0 {
		return v
	}
	return V3FSub(v, V3FScale(n, V3FDot(v, n)/nn))
}

// V3FMoveTowards moves current toward target by at most maxDelta
func V3FMoveTowards(current, target Vec3F, maxDelta float64) Vec3F {
	diff := V3FSub(target, current)
	dist := V3FMag(diff)
	if dist <= maxDelta || dist == 0 {
		return target
	}
	return V3FAdd(current, V3FScale(diff, maxDelta/dist))
}

// V3FAngleDeg returns the unsigned angle between two vectors in degrees
// Returns 0 if either vector has zero length
func V3FAngleDeg(a, b Vec3F) float64 {
	ma, mb := V3FMag(a), V3FMag(b)
	if ma == 0 || mb == 0 {
		return 0
	}
	c := V3FDot(a, b) / (ma * mb)
	// Clamp rounding drift before acos
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math.Acos(c) * 180 / math.Pi
}

// V3FRotateY rotates v around the up axis by yaw radians (counter-clockwise seen from above)
func V3FRotateY(v Vec3F, yaw float64) Vec3F {
	if yaw == 0 {
		return v
	}
	s, c := math.Sincos(yaw)
	return Vec3F{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// V3FDampDt applies frame-rate independent exponential decay: v * e^(-rate*dt)
// rate: decay rate per second, dt: seconds
func V3FDampDt(v Vec3F, rate, dt float64) Vec3F {
	if rate <= 0 || dt <= 0 {
		return v
	}
	return V3FScale(v, math.Exp(-rate*dt))
}

// V3FApproxEqual compares component-wise within tol
func V3FApproxEqual(a, b Vec3F, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}
