// Package geom - planar primitives for obstacle-aware route planning.
//
// This file contains the complete primitive set. All functions are
// deterministic, side-effect free, and defined for every finite input;
// none of them allocates.
package geom

import "math"

// Point is an immutable pair of planar coordinates.
// Two Points are equal iff their coordinates are equal.
type Point struct {
	X float64
	Y float64
}

// Segment is an ordered pair of endpoints describing one straight leg,
// traversed from A to B. A == B (zero length) is a valid segment.
type Segment struct {
	A Point
	B Point
}

// Distance returns the Euclidean distance between a and b.
//
// Complexity: O(1).
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Bearing returns the heading from a to b as math.Atan2(Δy, Δx),
// in radians within (−π, π]. Bearing(a, a) == 0 by Atan2 convention.
//
// Complexity: O(1).
func Bearing(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// PolarOffset returns p displaced by distance r along heading theta.
//
// Complexity: O(1).
func PolarOffset(p Point, theta, r float64) Point {
	return Point{
		X: p.X + r*math.Cos(theta),
		Y: p.Y + r*math.Sin(theta),
	}
}

// Length returns the Euclidean length of the segment.
//
// Complexity: O(1).
func (s Segment) Length() float64 {
	return Distance(s.A, s.B)
}

// ClosestPoint returns the point on the finite segment nearest to p,
// computed from the projection parameter t = ((p−A)·(B−A)) / |B−A|²
// clamped to [0, 1].
//
// Contract:
//   - A degenerate segment (A == B) returns A; the |B−A|² == 0 case is
//     handled explicitly, so no division by zero can occur.
//
// Complexity: O(1).
func (s Segment) ClosestPoint(p Point) Point {
	var (
		dx = s.B.X - s.A.X
		dy = s.B.Y - s.A.Y
	)

	// Squared length of the segment; zero ⇒ degenerate ⇒ return A.
	var len2 = dx*dx + dy*dy
	if len2 == 0 {
		return s.A
	}

	// Clamped projection parameter.
	var t = ((p.X-s.A.X)*dx + (p.Y-s.A.Y)*dy) / len2
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Point{X: s.A.X + t*dx, Y: s.A.Y + t*dy}
}

// DistanceToSegment returns the minimum Euclidean distance from p to the
// finite segment s.
//
// Complexity: O(1).
func DistanceToSegment(p Point, s Segment) float64 {
	return Distance(p, s.ClosestPoint(p))
}

// SegmentIntersectsCircle reports whether s passes through the closed disk
// of the given center and radius. The boundary counts as intersecting:
// a closest approach exactly equal to radius returns true.
//
// Complexity: O(1).
func SegmentIntersectsCircle(s Segment, center Point, radius float64) bool {
	return DistanceToSegment(center, s) <= radius
}
