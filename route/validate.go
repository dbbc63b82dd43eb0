// Package route - validation utilities shared by the resolver and planner.
//
// Small, deterministic, side-effect-free checks. No logging, no panics on
// user input - only sentinel errors from types.go (or the obstacle package).
package route

import (
	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/obstacle"
)

// validateAll verifies waypoints + field + options for a planning run.
//
// Contract:
//   - waypoints must be non-empty (ErrNoWaypoints).
//   - field obstacles must carry non-negative radii (obstacle.ErrNegativeRadius).
//   - opts must pass validateOptions.
//
// Complexity: O(m) for m obstacles; O(1) otherwise.
func validateAll(waypoints []geom.Point, field obstacle.Field, opts Options) error {
	// Stage 1: options-only sanity.
	if err := validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: waypoint shape.
	if len(waypoints) == 0 {
		return ErrNoWaypoints
	}

	// Stage 3: obstacle field values.
	return field.Validate()
}

// validateOptions checks internal consistency of Options without touching
// waypoints or obstacles.
//
// Rules:
//   - Margin must be non-negative; a negative margin would shrink obstacles
//     below their declared radius and silently weaken the safety property.
//   - A negative MaxStep is rejected whenever subdivision is enabled;
//     MaxStep == 0 selects DefaultMaxStep.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Margin < 0 {
		return ErrNegativeMargin
	}
	if opts.Subdivide && opts.MaxStep < 0 {
		return ErrNonPositiveStep
	}
	return nil
}

// effectiveStep resolves the subdivision step from Options: an explicit
// positive MaxStep wins, zero falls back to DefaultMaxStep.
//
// Pre-condition: validateOptions accepted opts.
func effectiveStep(opts Options) float64 {
	if opts.MaxStep > 0 {
		return opts.MaxStep
	}
	return DefaultMaxStep
}
