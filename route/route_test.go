package route_test

import (
	"testing"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/route"
	"github.com/stretchr/testify/require"
)

// TestRouteLength sums leg distances; a unit square loop measures 4.
func TestRouteLength(t *testing.T) {
	r := route.Route{Points: []geom.Point{
		{}, {X: 1}, {X: 1, Y: 1}, {Y: 1}, {},
	}}
	require.InDelta(t, 4, r.Length(), 1e-12)

	// Single point and empty routes have zero length.
	require.Equal(t, 0.0, route.Route{Points: []geom.Point{{}}}.Length())
	require.Equal(t, 0.0, route.Route{}.Length())
}

// TestRouteLegs returns consecutive segments in travel order.
func TestRouteLegs(t *testing.T) {
	r := route.Route{Points: []geom.Point{{}, {X: 2}, {X: 2, Y: 3}}}

	legs := r.Legs()
	require.Len(t, legs, 2)
	require.Equal(t, geom.Segment{A: geom.Point{}, B: geom.Point{X: 2}}, legs[0])
	require.Equal(t, geom.Segment{A: geom.Point{X: 2}, B: geom.Point{X: 2, Y: 3}}, legs[1])

	require.Nil(t, route.Route{Points: []geom.Point{{}}}.Legs())
}

// TestRouteIsClosed distinguishes loops from open paths.
func TestRouteIsClosed(t *testing.T) {
	require.True(t, route.Route{Points: []geom.Point{{}, {X: 1}, {}}}.IsClosed())
	require.False(t, route.Route{Points: []geom.Point{{}, {X: 1}}}.IsClosed())
	require.False(t, route.Route{Points: []geom.Point{{}}}.IsClosed())
}

// TestRouteDebugString pins the compact debug format.
func TestRouteDebugString(t *testing.T) {
	r := route.Route{
		Points:  []geom.Point{{}, {X: 2.5, Y: -1}},
		Hazards: []route.Hazard{{Leg: 0, Obstacle: 0, Clearance: -0.1}},
	}
	require.Equal(t, "[(0,0) (2.5,-1)] hazards=1", r.DebugString())
}
