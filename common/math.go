package common

import (
	"math"
	"math/rand/v2"

	"github.com/jakecoffman/cp"
)

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Dir returns the unit vector from (fromX, fromY) to (toX, toY) and the
// distance between them. The vector is zero when the points coincide.
func Dir(fromX, fromY, toX, toY float64) (cp.Vector, float64) {
	d := cp.Vector{X: toX - fromX, Y: toY - fromY}
	l := d.Length()
	if l == 0 {
		return cp.Vector{}, 0
	}
	return d.Mult(1 / l), l
}

// RandSquare draws a point uniformly from [-1, 1] x [-1, 1].
func RandSquare(rng *rand.Rand) cp.Vector {
	return cp.Vector{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1}
}

// RandDirection is a normalized RandSquare draw. A degenerate draw falls
// back to +x so callers always get a unit vector.
func RandDirection(rng *rand.Rand) cp.Vector {
	v := RandSquare(rng)
	if v.LengthSq() == 0 {
		return cp.Vector{X: 1}
	}
	return v.Normalize()
}

// RingPoint returns center + RandDirection*ring + RandSquare*jitter.
func RingPoint(rng *rand.Rand, center cp.Vector, ring, jitter float64) cp.Vector {
	return center.Add(RandDirection(rng).Mult(ring)).Add(RandSquare(rng).Mult(jitter))
}
