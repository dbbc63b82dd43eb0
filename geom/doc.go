// Package geom provides the planar primitives shared by the obstacle and
// route packages: points, segments, Euclidean distance, clamped projection
// onto a segment, and the segment↔circle intersection predicate.
//
// What:
//
//   - Point — an immutable (X, Y) coordinate pair with no identity beyond
//     its coordinates.
//   - Segment — an ordered endpoint pair describing one straight leg.
//   - Distance / Bearing / PolarOffset — Euclidean metric and polar helpers.
//   - (Segment).ClosestPoint — nearest point on the finite segment via the
//     clamped projection parameter t ∈ [0, 1].
//   - SegmentIntersectsCircle — the single predicate all obstacle-avoidance
//     logic depends on; boundary inclusive (≤, not <).
//
// Why:
//
//   - Route planning: detect legs that clip a keep-out disk.
//   - Detour construction: place offset points by bearing and radius.
//   - Reporting: distances and headings for human-readable summaries.
//
// Guarantees:
//
//   - Every function is total over finite inputs — no errors, no panics.
//   - Zero-length segments are valid: ClosestPoint degenerates to the
//     shared endpoint without dividing by zero.
//   - All operations are O(1) time and O(1) space.
package geom
