// Package route - the greedy nearest-neighbor tour builder.
//
// The planner is a left-fold over three logical waypoint states:
// unvisited, current (last appended), and routed. Each step selects the
// nearest unvisited waypoint (ties break to the first input index),
// resolves the connecting leg through the detour policy, and splices the
// result into the growing route. The builder threads all state through
// locals; nothing is shared or global.
package route

import (
	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/obstacle"
)

// Plan computes a tour over the waypoint set, starting at waypoints[0].
//
// Algorithm:
//  1. While unvisited waypoints remain, pick the one nearest to the current
//     point by a linear minimum scan (strict <, so the first of equally
//     near candidates wins - deterministic for a fixed input order).
//  2. Resolve the leg through ResolveLeg; append its output minus the
//     duplicated first point.
//  3. When opts.CloseLoop is set, resolve and append a final leg from the
//     last waypoint back to the origin.
//  4. Optionally cap leg lengths by subdivision (opts.Subdivide), then scan
//     every final leg against every obstacle at zero margin and record
//     residual intersections as Hazards.
//
// Guarantees:
//   - Exactly n−1 selection steps (plus one closing step); every input
//     waypoint appears in the route exactly once, in selection order.
//   - A single-waypoint input yields a single-point route with no legs and
//     no resolver calls.
//   - Inputs are read-only; the returned Route is freshly allocated.
//
// Errors: ErrNoWaypoints, ErrNegativeMargin, ErrNonPositiveStep,
// obstacle.ErrNegativeRadius; and ErrNoIntersectingObstacle only on an
// internal defect. No partial Route accompanies an error.
//
// Complexity: O(n²) selection + O(L·m) obstacle tests (L = final legs).
func Plan(waypoints []geom.Point, field obstacle.Field, opts Options) (Route, error) {
	if err := validateAll(waypoints, field, opts); err != nil {
		return Route{}, err
	}

	var n = len(waypoints)

	// Degenerate run: one waypoint, no legs, no resolver involvement.
	if n == 1 {
		return Route{Points: []geom.Point{waypoints[0]}}, nil
	}

	var (
		visited = make([]bool, n)
		points  = make([]geom.Point, 1, 2*n) // detours grow the route past n
		current = 0
	)
	visited[0] = true
	points[0] = waypoints[0]

	// Greedy selection: n−1 steps, each an O(n) minimum scan.
	var (
		step int
		i    int
		best int
		d    float64
		min  float64
	)
	for step = 1; step < n; step++ {
		best = -1
		for i = 0; i < n; i++ {
			if visited[i] {
				continue
			}
			d = geom.Distance(waypoints[current], waypoints[i])
			// Strict < keeps the first equally-near candidate.
			if best == -1 || d < min {
				best, min = i, d
			}
		}

		leg, err := ResolveLeg(waypoints[current], waypoints[best], field, opts.Margin)
		if err != nil {
			return Route{}, err
		}
		points = append(points, leg[1:]...)

		visited[best] = true
		current = best
	}

	// Optional loop closure back to the origin.
	if opts.CloseLoop {
		leg, err := ResolveLeg(waypoints[current], waypoints[0], field, opts.Margin)
		if err != nil {
			return Route{}, err
		}
		points = append(points, leg[1:]...)
	}

	// Optional length capping, layered after detour construction.
	if opts.Subdivide {
		var err error
		if points, err = subdivideSequence(points, effectiveStep(opts)); err != nil {
			return Route{}, err
		}
	}

	return Route{Points: points, Hazards: scanHazards(points, field)}, nil
}

// scanHazards re-tests every final leg against every obstacle at zero
// margin and records residual intersections. Detours are single-pass, so a
// corrected leg can still clip a different obstacle; those legs surface
// here as warnings rather than failing the run.
//
// Complexity: O(L·m).
func scanHazards(points []geom.Point, field obstacle.Field) []Hazard {
	var hazards []Hazard

	var (
		i int
		j int
		s geom.Segment
		c float64
	)
	for i = 0; i+1 < len(points); i++ {
		s = geom.Segment{A: points[i], B: points[i+1]}
		for j = 0; j < len(field); j++ {
			if c = field[j].Clearance(s); c <= 0 {
				hazards = append(hazards, Hazard{Leg: i, Obstacle: j, Clearance: c})
			}
		}
	}
	return hazards
}
