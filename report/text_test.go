package report_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/report"
	"github.com/katalvlaran/waypath/route"
	"github.com/stretchr/testify/require"
)

// TestWriteText summarizes legs with distance and heading.
func TestWriteText(t *testing.T) {
	r := route.Route{Points: []geom.Point{{}, {X: 10}, {X: 10, Y: 5}}}

	var b strings.Builder
	require.NoError(t, report.WriteText(&b, r))
	out := b.String()

	require.Contains(t, out, "route: 3 points, 2 legs")
	require.Contains(t, out, "dist=10.00")
	require.Contains(t, out, "heading=0.0°")
	require.Contains(t, out, "heading=90.0°")
	require.Contains(t, out, "total length: 15.00")
	require.NotContains(t, out, "WARNING")
}

// TestWriteText_Hazards appends one warning line per hazard.
func TestWriteText_Hazards(t *testing.T) {
	r := route.Route{
		Points:  []geom.Point{{}, {X: 10}},
		Hazards: []route.Hazard{{Leg: 0, Obstacle: 2, Clearance: -0.25}},
	}

	var b strings.Builder
	require.NoError(t, report.WriteText(&b, r))

	require.Contains(t, b.String(), "WARNING: leg 0 clips obstacle 2 (clearance -0.250)")
}

// TestWriteText_Empty degrades gracefully on an empty route.
func TestWriteText_Empty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, report.WriteText(&b, route.Route{}))
	require.Equal(t, "empty route\n", b.String())
}
