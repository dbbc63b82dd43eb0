// Package route builds closed tours over small 2D waypoint sets while
// steering legs around circular obstacles.
//
// What:
//
//   - Plan — the single entry point: greedy nearest-neighbor sequencing of
//     the waypoint set (origin = first input point), per-leg obstacle
//     resolution, optional loop closure back to the origin.
//   - ResolveLeg / Detour — the obstacle-offset detour policy: an unsafe
//     leg (from, to) is replaced by [from, o₁, o₂, to], where o₁/o₂ sit at
//     radius+margin from the endpoints at ±45° off the leg bearing.
//   - SubdivideLeg — optional bounded-step subdivision that caps leg length
//     by walking the leg bearing in fixed steps.
//   - Route — the planned point sequence plus any hazard annotations.
//
// Why:
//
//   - Last-mile drone or rover missions: visit every waypoint once, avoid
//     static keep-out disks, come home.
//   - Deterministic planning: a fixed input order always yields the same
//     route (nearest-neighbor ties break to the first input index).
//
// Policy notes:
//
//   - The detour is a single-pass correction. It is not re-validated against
//     other obstacles, so in pathological fields a detour may still clip a
//     different disk. Such legs are reported as Hazards on the returned
//     Route — never silently dropped, never an error.
//   - Subdivision alone does not guarantee clearance; it is a length-capping
//     transform layered after detour construction. Every produced sub-leg
//     is re-tested by the final hazard scan.
//
// Complexity:
//
//   - Plan: O(n²) selection + O(L·m) obstacle tests, for n waypoints,
//     m obstacles, and L final legs. Memory: O(n + L).
//
// Errors:
//
//   - ErrNoWaypoints: the waypoint sequence is empty.
//   - ErrNegativeMargin: Options.Margin < 0.
//   - ErrNonPositiveStep: subdivision requested with MaxStep ≤ 0.
//   - ErrNoIntersectingObstacle: Detour invoked on a leg no obstacle
//     intersects — an internal invariant violation, reported as a defect.
//   - obstacle.ErrNegativeRadius: propagated from Field validation.
//
// The package performs no I/O and keeps no state between calls; concurrent
// independent Plan runs need no synchronization.
package route
