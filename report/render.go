package report

import (
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/katalvlaran/waypath/obstacle"
	"github.com/katalvlaran/waypath/route"
)

// Renderer draws a planned route over its obstacle field as vector
// graphics. World units map 1:1 onto canvas millimeters, scaled by Scale.
type Renderer struct {
	Scale       float64           // world units → canvas mm multiplier
	Padding     float64           // padding around the world bounds, world units
	StrokeWidth float64           // route stroke width, canvas mm
	Resolution  canvas.Resolution // PNG rasterization density
}

// NewRenderer returns a renderer with default settings: unit scale, padding
// of 2 world units, and 300 DPI PNG output.
func NewRenderer() *Renderer {
	return &Renderer{
		Scale:       1.0,
		Padding:     2.0,
		StrokeWidth: 0.3,
		Resolution:  canvas.DPI(300),
	}
}

// canvasRenderer is the surface both the svg and rasterizer backends expose.
type canvasRenderer interface {
	RenderPath(path *canvas.Path, style canvas.Style, m canvas.Matrix)
}

// RenderSVG writes the route map as an SVG document.
func (r *Renderer) RenderSVG(w io.Writer, rt route.Route, field obstacle.Field) error {
	width, height, minX, minY := r.frame(rt, field)

	svgRenderer := svg.New(w, width, height, nil)
	r.renderToCanvas(svgRenderer, rt, field, minX, minY, width, height)

	return svgRenderer.Close()
}

// RenderPNG writes the route map as a PNG image.
func (r *Renderer) RenderPNG(w io.Writer, rt route.Route, field obstacle.Field) error {
	width, height, minX, minY := r.frame(rt, field)

	rast := rasterizer.New(width, height, r.Resolution, canvas.DefaultColorSpace)
	r.renderToCanvas(rast, rt, field, minX, minY, width, height)

	return png.Encode(w, rast)
}

// frame computes the canvas size and world origin for the drawing.
func (r *Renderer) frame(rt route.Route, field obstacle.Field) (width, height, minX, minY float64) {
	bMinX, bMinY, bMaxX, bMaxY := worldBounds(rt, field)
	bMinX -= r.Padding
	bMinY -= r.Padding
	bMaxX += r.Padding
	bMaxY += r.Padding

	return (bMaxX - bMinX) * r.Scale, (bMaxY - bMinY) * r.Scale, bMinX, bMinY
}

// renderToCanvas draws background, obstacle disks, the route polyline, and
// route point markers (shared between the SVG and PNG backends).
func (r *Renderer) renderToCanvas(cr canvasRenderer, rt route.Route, field obstacle.Field, minX, minY, width, height float64) {
	toCanvas := func(x, y float64) (float64, float64) {
		return (x - minX) * r.Scale, (y - minY) * r.Scale
	}

	// White background.
	bgStyle := canvas.DefaultStyle
	bgStyle.Fill = canvas.Paint{Color: canvas.White}
	cr.RenderPath(canvas.Rectangle(width, height), bgStyle, canvas.Identity)

	// Obstacle disks: translucent fill plus a solid rim.
	diskStyle := canvas.DefaultStyle
	diskStyle.Fill = canvas.Paint{Color: color.RGBA{R: 220, G: 60, B: 60, A: 90}}
	diskStyle.Stroke = canvas.Paint{Color: color.RGBA{R: 160, G: 30, B: 30, A: 255}}
	diskStyle.StrokeWidth = r.StrokeWidth / 2
	for _, c := range field {
		cx, cy := toCanvas(c.Center.X, c.Center.Y)
		cr.RenderPath(canvas.Circle(c.Radius*r.Scale), diskStyle, canvas.Identity.Translate(cx, cy))
	}

	// Route polyline.
	if len(rt.Points) >= 2 {
		pathStyle := canvas.DefaultStyle
		pathStyle.Fill = canvas.Paint{Color: canvas.Transparent}
		pathStyle.Stroke = canvas.Paint{Color: color.RGBA{R: 20, G: 90, B: 200, A: 255}}
		pathStyle.StrokeWidth = r.StrokeWidth

		cp := &canvas.Path{}
		for i, p := range rt.Points {
			cx, cy := toCanvas(p.X, p.Y)
			if i == 0 {
				cp.MoveTo(cx, cy)
			} else {
				cp.LineTo(cx, cy)
			}
		}
		cr.RenderPath(cp, pathStyle, canvas.Identity)
	}

	// Route point markers, sized relative to the frame.
	markStyle := canvas.DefaultStyle
	markStyle.Fill = canvas.Paint{Color: color.RGBA{R: 20, G: 90, B: 200, A: 255}}
	markRadius := math.Max(r.StrokeWidth, math.Min(width, height)/150)
	for _, p := range rt.Points {
		cx, cy := toCanvas(p.X, p.Y)
		cr.RenderPath(canvas.Circle(markRadius), markStyle, canvas.Identity.Translate(cx, cy))
	}
}
