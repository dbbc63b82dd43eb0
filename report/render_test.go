package report_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/obstacle"
	"github.com/katalvlaran/waypath/report"
	"github.com/katalvlaran/waypath/route"
	"github.com/stretchr/testify/require"
)

var renderRoute = route.Route{Points: []geom.Point{
	{}, {X: 2.12, Y: 2.12}, {X: 7.88, Y: 2.12}, {X: 10},
}}

var renderField = obstacle.Field{{Center: geom.Point{X: 5}, Radius: 2}}

// TestRenderSVG writes a parseable SVG document containing path elements.
func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewRenderer().RenderSVG(&buf, renderRoute, renderField))

	out := buf.String()
	require.Contains(t, out, "<svg")
	require.Contains(t, out, "</svg>")
	require.Contains(t, out, "<path")
}

// TestRenderPNG writes a decodable, non-empty PNG image.
func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.NewRenderer().RenderPNG(&buf, renderRoute, renderField))

	img, err := png.Decode(&buf)
	require.NoError(t, err)

	b := img.Bounds()
	require.Greater(t, b.Dx(), 0)
	require.Greater(t, b.Dy(), 0)
}

// TestRender_SinglePoint renders a legless route without error.
func TestRender_SinglePoint(t *testing.T) {
	var buf bytes.Buffer
	single := route.Route{Points: []geom.Point{{X: 1, Y: 1}}}
	require.NoError(t, report.NewRenderer().RenderSVG(&buf, single, nil))
	require.Contains(t, buf.String(), "</svg>")
}
