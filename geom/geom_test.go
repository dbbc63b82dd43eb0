package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/waypath/geom"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Distance, Bearing, PolarOffset
//----------------------------------------------------------------------------//

// TestDistance verifies the Euclidean metric on axis-aligned and diagonal pairs.
func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b geom.Point
		want float64
	}{
		{"Zero", geom.Point{}, geom.Point{}, 0},
		{"UnitX", geom.Point{}, geom.Point{X: 1}, 1},
		{"UnitY", geom.Point{}, geom.Point{Y: 1}, 1},
		{"Diagonal345", geom.Point{X: 1, Y: 1}, geom.Point{X: 4, Y: 5}, 5},
		{"Symmetric", geom.Point{X: 4, Y: 5}, geom.Point{X: 1, Y: 1}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, geom.Distance(tc.a, tc.b), 1e-12)
		})
	}
}

// TestBearing checks the Atan2 convention on the four cardinal directions.
func TestBearing(t *testing.T) {
	o := geom.Point{}
	require.InDelta(t, 0, geom.Bearing(o, geom.Point{X: 1}), 1e-12)
	require.InDelta(t, math.Pi/2, geom.Bearing(o, geom.Point{Y: 1}), 1e-12)
	require.InDelta(t, math.Pi, geom.Bearing(o, geom.Point{X: -1}), 1e-12)
	require.InDelta(t, -math.Pi/2, geom.Bearing(o, geom.Point{Y: -1}), 1e-12)

	// Coincident points: Atan2(0, 0) == 0.
	require.Equal(t, 0.0, geom.Bearing(o, o))
}

// TestPolarOffset verifies displacement along a heading, including the
// round trip point → offset → distance.
func TestPolarOffset(t *testing.T) {
	p := geom.Point{X: 2, Y: 3}

	q := geom.PolarOffset(p, 0, 5)
	require.InDelta(t, 7, q.X, 1e-12)
	require.InDelta(t, 3, q.Y, 1e-12)

	q = geom.PolarOffset(p, math.Pi/4, math.Sqrt2)
	require.InDelta(t, 3, q.X, 1e-12)
	require.InDelta(t, 4, q.Y, 1e-12)

	// Offset distance equals the requested radius for any heading.
	for _, theta := range []float64{0.1, 1.3, 2.9, -2.2} {
		q = geom.PolarOffset(p, theta, 7.5)
		require.InDelta(t, 7.5, geom.Distance(p, q), 1e-12)
	}
}

//----------------------------------------------------------------------------//
// ClosestPoint
//----------------------------------------------------------------------------//

// TestClosestPoint_Interior projects onto the interior of the segment.
func TestClosestPoint_Interior(t *testing.T) {
	s := geom.Segment{A: geom.Point{}, B: geom.Point{X: 10}}

	got := s.ClosestPoint(geom.Point{X: 5, Y: 4})
	require.InDelta(t, 5, got.X, 1e-12)
	require.InDelta(t, 0, got.Y, 1e-12)
}

// TestClosestPoint_Clamped verifies that projections beyond either endpoint
// clamp to that endpoint (t pinned to 0 or 1).
func TestClosestPoint_Clamped(t *testing.T) {
	s := geom.Segment{A: geom.Point{X: 2}, B: geom.Point{X: 8}}

	before := s.ClosestPoint(geom.Point{X: -3, Y: 1})
	require.Equal(t, s.A, before)

	after := s.ClosestPoint(geom.Point{X: 99, Y: -1})
	require.Equal(t, s.B, after)
}

// TestClosestPoint_Degenerate checks the zero-length segment contract:
// the shared endpoint is returned for every query point, with no NaN.
func TestClosestPoint_Degenerate(t *testing.T) {
	a := geom.Point{X: 3, Y: -7}
	s := geom.Segment{A: a, B: a}

	for _, p := range []geom.Point{{}, {X: 1e9, Y: -1e9}, a} {
		got := s.ClosestPoint(p)
		require.Equal(t, a, got)
		require.False(t, math.IsNaN(got.X) || math.IsNaN(got.Y))
	}
}

//----------------------------------------------------------------------------//
// SegmentIntersectsCircle
//----------------------------------------------------------------------------//

// TestSegmentIntersectsCircle covers hit, miss, and the inclusive boundary.
func TestSegmentIntersectsCircle(t *testing.T) {
	s := geom.Segment{A: geom.Point{}, B: geom.Point{X: 10}}

	cases := []struct {
		name   string
		center geom.Point
		radius float64
		want   bool
	}{
		{"CenterOnSegment", geom.Point{X: 5}, 2, true},
		{"Above_Inside", geom.Point{X: 5, Y: 1}, 2, true},
		{"Above_Outside", geom.Point{X: 5, Y: 3}, 2, false},
		{"ExactBoundary", geom.Point{X: 5, Y: 2}, 2, true}, // ≤, not <
		{"BeyondEndpoint", geom.Point{X: 13, Y: 0}, 2, false},
		{"EndpointTouch", geom.Point{X: 12, Y: 0}, 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := geom.SegmentIntersectsCircle(s, tc.center, tc.radius)
			require.Equal(t, tc.want, got)
		})
	}
}

// TestSegmentIntersectsCircle_Degenerate treats a zero-length segment as a
// point-in-disk test.
func TestSegmentIntersectsCircle_Degenerate(t *testing.T) {
	a := geom.Point{X: 1, Y: 1}
	s := geom.Segment{A: a, B: a}

	require.True(t, geom.SegmentIntersectsCircle(s, geom.Point{X: 1, Y: 2}, 1))
	require.False(t, geom.SegmentIntersectsCircle(s, geom.Point{X: 1, Y: 2.5}, 1))
}
