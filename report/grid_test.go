package report_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/obstacle"
	"github.com/katalvlaran/waypath/report"
	"github.com/katalvlaran/waypath/route"
	"github.com/stretchr/testify/require"
)

// TestGridString_Shape: the output is exactly rows lines of cols cells.
func TestGridString_Shape(t *testing.T) {
	r := route.Route{Points: []geom.Point{{}, {X: 10}, {X: 10, Y: 10}}}

	out := report.GridString(r, nil, 40, 20)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Len(t, lines, 20)
	for _, line := range lines {
		require.Len(t, line, 40)
	}
}

// TestGridString_Glyphs: start marker, path cells, and obstacle fill all
// appear; the start marker wins over the path at its cell.
func TestGridString_Glyphs(t *testing.T) {
	r := route.Route{Points: []geom.Point{{}, {X: 20}}}
	field := obstacle.Field{{Center: geom.Point{X: 10, Y: 6}, Radius: 3}}

	out := report.GridString(r, field, 60, 24)

	require.Equal(t, 1, strings.Count(out, "S"))
	require.Contains(t, out, "*")
	require.Contains(t, out, "#")
	require.Contains(t, out, "+")
}

// TestGridString_Degenerate handles a single-point route and bad sizes.
func TestGridString_Degenerate(t *testing.T) {
	single := route.Route{Points: []geom.Point{{X: 3, Y: 3}}}
	out := report.GridString(single, nil, 10, 10)
	require.Equal(t, 1, strings.Count(out, "S"))

	require.Equal(t, "", report.GridString(route.Route{}, nil, 10, 10))
	require.Equal(t, "", report.GridString(single, nil, 1, 10))
}
