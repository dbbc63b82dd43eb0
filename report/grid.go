package report

import (
	"math"
	"strings"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/obstacle"
	"github.com/katalvlaran/waypath/route"
)

// Grid cell glyphs, later draws win: obstacles underneath, then the path,
// then route points, then the start marker.
const (
	cellEmpty    = '.'
	cellObstacle = '#'
	cellPath     = '*'
	cellPoint    = '+'
	cellStart    = 'S'
)

// GridString renders a coarse ASCII map of the route over its obstacle
// field on a cols×rows character grid. The world window is the bounding box
// of all route points and obstacle disks, expanded by a small margin; rows
// print top-down (north up).
//
// Intended for quick terminal inspection, not precision - a cell covers
// whatever world area the scale maps onto it.
//
// Complexity: O(cols·rows·m) for the obstacle fill plus O(L·samples) for
// path tracing.
func GridString(r route.Route, field obstacle.Field, cols, rows int) string {
	if cols < 2 || rows < 2 || len(r.Points) == 0 {
		return ""
	}

	minX, minY, maxX, maxY := worldBounds(r, field)

	// worldBounds pads by at least one unit, so both spans are positive
	// even for a single-point route.
	var (
		spanX = maxX - minX
		spanY = maxY - minY
	)

	cells := make([][]byte, rows)
	for i := range cells {
		cells[i] = []byte(strings.Repeat(string(cellEmpty), cols))
	}

	// toCell maps a world point to grid coordinates; row 0 is the top.
	toCell := func(p geom.Point) (int, int) {
		cx := int(math.Round((p.X - minX) / spanX * float64(cols-1)))
		cy := rows - 1 - int(math.Round((p.Y-minY)/spanY*float64(rows-1)))
		return cx, cy
	}

	// Obstacle disks: mark every cell whose world center lies inside.
	var (
		cellW = spanX / float64(cols-1)
		cellH = spanY / float64(rows-1)
	)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			wp := geom.Point{
				X: minX + float64(cx)*cellW,
				Y: minY + float64(rows-1-cy)*cellH,
			}
			for _, c := range field {
				if geom.Distance(wp, c.Center) <= c.Radius {
					cells[cy][cx] = cellObstacle
					break
				}
			}
		}
	}

	// Path: sample each leg densely enough to touch every crossed cell.
	for _, leg := range r.Legs() {
		samples := int(math.Ceil(leg.Length()/math.Min(cellW, cellH))) + 1
		for i := 0; i <= samples; i++ {
			t := float64(i) / float64(samples)
			p := geom.Point{
				X: leg.A.X + t*(leg.B.X-leg.A.X),
				Y: leg.A.Y + t*(leg.B.Y-leg.A.Y),
			}
			cx, cy := toCell(p)
			cells[cy][cx] = cellPath
		}
	}

	// Route points over the path, start marker over everything.
	for _, p := range r.Points {
		cx, cy := toCell(p)
		cells[cy][cx] = cellPoint
	}
	sx, sy := toCell(r.Points[0])
	cells[sy][sx] = cellStart

	var b strings.Builder
	for i := range cells {
		b.Write(cells[i])
		b.WriteByte('\n')
	}
	return b.String()
}

// worldBounds returns the bounding box of the route and every obstacle
// disk, padded by 5% of the larger span (minimum 1 world unit).
func worldBounds(r route.Route, field obstacle.Field) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	for _, p := range r.Points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	for _, c := range field {
		minX = math.Min(minX, c.Center.X-c.Radius)
		maxX = math.Max(maxX, c.Center.X+c.Radius)
		minY = math.Min(minY, c.Center.Y-c.Radius)
		maxY = math.Max(maxY, c.Center.Y+c.Radius)
	}

	pad := math.Max(1, 0.05*math.Max(maxX-minX, maxY-minY))
	return minX - pad, minY - pad, maxX + pad, maxY + pad
}
