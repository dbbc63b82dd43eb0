// Package obstacle models circular keep-out zones ("no-fly disks") and
// ordered obstacle fields for obstacle-aware route planning.
//
// What:
//
//   - Circle — an immutable forbidden disk: center Point + non-negative
//     radius. A leg is unsafe when its minimum distance to the center is
//     less than or equal to radius plus an optional safety margin.
//   - Field — an ordered, read-only collection of Circles. Order matters:
//     the detour resolver corrects against the first intersecting obstacle
//     in input order, so Field never reorders its elements.
//
// Why:
//
//   - Aerial/ground vehicle planning: static exclusion zones around towers,
//     restricted areas, or terrain hazards.
//   - Deterministic avoidance: a stable scan order yields a stable route.
//
// Complexity:
//
//   - (Circle).Intersects / Clearance: O(1).
//   - Field.FirstIntersecting / AnyIntersecting / Validate: O(m) for m
//     obstacles.
//
// Errors:
//
//   - ErrNegativeRadius: a Circle with radius < 0 was supplied.
//
// Obstacles are opaque values: the planner never mutates or reorders a
// Field during a run, so one Field may back concurrent independent runs.
package obstacle
