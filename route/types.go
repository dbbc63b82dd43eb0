// Package route - option types, result types, and sentinel errors.
//
// Design principles (shared across the module):
//   - Strict sentinels: callers match errors with errors.Is; no dynamic
//     error text to parse.
//   - Options are plain values with a DefaultOptions constructor; the zero
//     value is not meaningful (margin would be zero, loop open).
//   - Results are fresh values per Plan call; inputs are never mutated.
package route

import (
	"errors"
	"math"

	"github.com/katalvlaran/waypath/geom"
)

// Sentinel errors for route planning.
var (
	// ErrNoWaypoints indicates an empty waypoint sequence; at least one
	// waypoint is required for a non-degenerate run.
	ErrNoWaypoints = errors.New("route: waypoint sequence must contain at least one point")

	// ErrNegativeMargin indicates Options.Margin < 0.
	ErrNegativeMargin = errors.New("route: safety margin must be non-negative")

	// ErrNonPositiveStep indicates subdivision was requested with a
	// non-positive maximum step length.
	ErrNonPositiveStep = errors.New("route: subdivision step must be positive")

	// ErrNoIntersectingObstacle indicates Detour was invoked on a leg that
	// no obstacle intersects. Given the predicate that triggers detour
	// construction this state is unreachable; seeing it is a defect, not a
	// recoverable condition.
	ErrNoIntersectingObstacle = errors.New("route: detour requested but no intersecting obstacle found")
)

// DefaultMargin is the extra clearance added to an obstacle radius when no
// margin is configured explicitly.
const DefaultMargin = 1.0

// DefaultMaxStep is the subdivision step length used when Subdivide is
// enabled without an explicit MaxStep.
const DefaultMaxStep = 5.0

// detourAngle is the offset heading (±45°) used to place detour points
// around the first intersecting obstacle.
const detourAngle = math.Pi / 4

// Options configures a planning run.
//
// Fields:
//   - Margin    — extra clearance added to every obstacle radius before
//     testing intersection and when placing detour points. Must be ≥ 0.
//   - Subdivide — layer bounded-step subdivision on top of detour
//     construction. Subdivision caps leg length; it does not by itself
//     guarantee clearance (sub-legs are re-checked by the hazard scan).
//   - MaxStep   — maximum sub-leg length when Subdivide is enabled.
//     Zero selects DefaultMaxStep; negative values are rejected.
//   - CloseLoop — append a final resolved leg from the last visited
//     waypoint back to the origin.
type Options struct {
	Margin    float64
	Subdivide bool
	MaxStep   float64
	CloseLoop bool
}

// DefaultOptions returns the canonical configuration: DefaultMargin
// clearance, no subdivision, loop closure enabled.
func DefaultOptions() Options {
	return Options{
		Margin:    DefaultMargin,
		Subdivide: false,
		MaxStep:   DefaultMaxStep,
		CloseLoop: true,
	}
}

// Hazard annotates one leg of a planned route that still intersects an
// obstacle after resolution (a documented single-pass detour limitation).
// It is a warning attached to a successful result, not an error.
type Hazard struct {
	// Leg is the index of the leg's starting point within Route.Points:
	// the offending segment is Points[Leg] → Points[Leg+1].
	Leg int

	// Obstacle is the index of the intersected circle within the field.
	Obstacle int

	// Clearance is the signed distance from the leg to the disk boundary;
	// ≤ 0 by construction (see obstacle.Circle.Clearance).
	Clearance float64
}

// Route is the outcome of a planning run: every input waypoint in visit
// order with detour and subdivision points spliced in, plus any hazard
// annotations. Insertion order is significant and geometrically coincident
// duplicates are kept as-is.
type Route struct {
	// Points is the travel sequence, beginning at the origin waypoint and
	// ending either at the last visited waypoint or back at the origin
	// when loop closure is requested.
	Points []geom.Point

	// Hazards lists legs that still clip an obstacle; empty on a fully
	// clear route.
	Hazards []Hazard
}
