package vmath

import (
	"math"
)

// noiseOctaves are relative frequency/amplitude pairs summed per axis
// Amplitudes sum to 1 so the output stays in [-1, 1]
var noiseOctaves = [3]struct{ freq, amp float64 }{
	{1.0, 0.5},
	{2.3, 0.3},
	{4.7, 0.2},
}

// ShakeNoise produces a continuous pseudo-random 3D signal from layered sines
// Phases are rolled once per Reseed so consecutive samples never jump
type ShakeNoise struct {
	// Frequency is the base oscillation frequency in Hz
	Frequency float64
	phases    [3][len(noiseOctaves)]float64
}

// NewShakeNoise creates a noise source with phases drawn from rng
func NewShakeNoise(frequency float64, rng *FastRand) *ShakeNoise {
	n := &ShakeNoise{Frequency: frequency}
	n.Reseed(rng)
	return n
}

// Reseed rolls new per-axis phases, giving each shake a distinct pattern
func (n *ShakeNoise) Reseed(rng *FastRand) {
	for axis := range n.phases {
		for o := range n.phases[axis] {
			n.phases[axis][o] = rng.Float64() * 2 * math.Pi
		}
	}
}

// Sample returns the offset at time t seconds, each component in [-1, 1]
func (n *ShakeNoise) Sample(t float64) Vec3F {
	return Vec3F{
		X: n.axis(0, t),
		Y: n.axis(1, t),
		Z: n.axis(2, t),
	}
}

func (n *ShakeNoise) axis(axis int, t float64) float64 {
	base := 2 * math.Pi * n.Frequency * t
	var v float64
	for o, oct := range noiseOctaves {
		v += math.Sin(base*oct.freq+n.phases[axis][o]) * oct.amp
	}
	return v
}
