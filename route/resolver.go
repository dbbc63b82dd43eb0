// Package route - the safety/detour resolver.
//
// Given one leg (from, to), the resolver emits the ordered point sequence
// that replaces it: the leg itself when clear, or a four-point offset
// detour around the first intersecting obstacle. The correction is a
// single pass: the produced detour is not re-validated here (the planner's
// hazard scan reports any residual intersection).
package route

import (
	"math"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/obstacle"
)

// ResolveLeg applies the obstacle-offset detour policy to one leg.
//
// Behavior:
//   - The straight leg is tested against every obstacle in field order
//     under the given margin. No hit ⇒ the leg is safe as-is and the
//     two-point sequence [from, to] is returned.
//   - Otherwise the leg is replaced by the detour built around the first
//     intersecting obstacle (see Detour).
//
// The returned slice always starts at from and ends at to; callers splice
// it into a growing route by dropping its first element.
//
// Complexity: O(m) obstacle tests, O(1) construction.
func ResolveLeg(from, to geom.Point, field obstacle.Field, margin float64) ([]geom.Point, error) {
	var seg = geom.Segment{A: from, B: to}
	if !field.AnyIntersecting(seg, margin) {
		return []geom.Point{from, to}, nil
	}
	return Detour(from, to, field, margin)
}

// Detour constructs the four-point offset detour [from, o₁, o₂, to] around
// the first obstacle (field order) intersecting the leg:
//
//	θ  = Bearing(from, to)
//	r  = obstacle.Radius + margin
//	o₁ = from + polar(θ+45°, r)
//	o₂ = to   − polar(θ−45°, r)
//
// Both offset points sit on the side of the leg selected by the +45°
// convention; for a horizontal leg they share the same lateral clearance
// r/√2 above the leg.
//
// Errors:
//   - ErrNoIntersectingObstacle when no obstacle intersects the leg. The
//     planner only calls Detour behind the intersection predicate, so this
//     sentinel marks an internal invariant violation, never user input.
//
// Complexity: O(m) for the scan, O(1) for construction.
func Detour(from, to geom.Point, field obstacle.Field, margin float64) ([]geom.Point, error) {
	var (
		seg = geom.Segment{A: from, B: to}
		hit = field.FirstIntersecting(seg, margin)
	)
	if hit < 0 {
		return nil, ErrNoIntersectingObstacle
	}

	var (
		theta = geom.Bearing(from, to)
		r     = field[hit].Radius + margin
	)

	// o₂ is offset "back" from the destination: negate the θ−45° direction
	// by adding a half turn.
	var (
		o1 = geom.PolarOffset(from, theta+detourAngle, r)
		o2 = geom.PolarOffset(to, theta-detourAngle+math.Pi, r)
	)

	return []geom.Point{from, o1, o2, to}, nil
}
