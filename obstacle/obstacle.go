// Package obstacle - circular keep-out zones and ordered fields.
//
// Design:
//   - Immutable values: Circle and Field are never mutated after creation.
//   - Strict sentinels: only errors declared in this package.
//   - No logging, no panics on user input.
package obstacle

import (
	"errors"

	"github.com/katalvlaran/waypath/geom"
)

// ErrNegativeRadius indicates a Circle with radius < 0 was supplied.
var ErrNegativeRadius = errors.New("obstacle: radius must be non-negative")

// Circle is a forbidden disk: a center point plus a non-negative radius.
// It is immutable for the duration of a planning run.
type Circle struct {
	Center geom.Point
	Radius float64
}

// NewCircle validates and returns a Circle.
//
// Errors: ErrNegativeRadius when radius < 0.
func NewCircle(center geom.Point, radius float64) (Circle, error) {
	if radius < 0 {
		return Circle{}, ErrNegativeRadius
	}
	return Circle{Center: center, Radius: radius}, nil
}

// Intersects reports whether the segment passes within Radius+margin of the
// circle center. The boundary is inclusive: a closest approach exactly equal
// to Radius+margin intersects.
//
// Complexity: O(1).
func (c Circle) Intersects(s geom.Segment, margin float64) bool {
	return geom.SegmentIntersectsCircle(s, c.Center, c.Radius+margin)
}

// Clearance returns the signed distance between the segment and the disk
// boundary: minimum distance from the segment to Center, minus Radius.
// Negative or zero means the segment clips the disk.
//
// Complexity: O(1).
func (c Circle) Clearance(s geom.Segment) float64 {
	return geom.DistanceToSegment(c.Center, s) - c.Radius
}

// Field is an ordered, read-only collection of circular obstacles.
// The zero value (nil) is a valid empty field.
type Field []Circle

// Validate checks every obstacle in the field.
//
// Errors: ErrNegativeRadius if any circle carries a negative radius.
//
// Complexity: O(m).
func (f Field) Validate() error {
	var i int
	for i = 0; i < len(f); i++ {
		if f[i].Radius < 0 {
			return ErrNegativeRadius
		}
	}
	return nil
}

// FirstIntersecting returns the index of the first obstacle (input order)
// intersected by the segment under the given margin, or -1 when the segment
// is clear of every obstacle. The scan order is the field order; this
// tie-break keeps detour construction deterministic.
//
// Complexity: O(m).
func (f Field) FirstIntersecting(s geom.Segment, margin float64) int {
	var i int
	for i = 0; i < len(f); i++ {
		if f[i].Intersects(s, margin) {
			return i
		}
	}
	return -1
}

// AnyIntersecting reports whether the segment intersects at least one
// obstacle under the given margin.
//
// Complexity: O(m).
func (f Field) AnyIntersecting(s geom.Segment, margin float64) bool {
	return f.FirstIntersecting(s, margin) >= 0
}
