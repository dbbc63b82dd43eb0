// Package waypath plans closed tours over small 2D waypoint sets while
// steering around circular obstacles.
//
// 🚀 What is waypath?
//
//	A compact planning toolkit for point-to-point travel (aerial or ground
//	vehicles) over static waypoints and static no-fly disks:
//		• Geometry primitives: points, segments, clamped projections,
//		  segment↔circle intersection
//		• Obstacle model: immutable circular keep-out zones with safety margins
//		• Detour resolver: replaces an unsafe leg by a short offset detour,
//		  optionally capping leg length by bounded-step subdivision
//		• Tour builder: deterministic greedy nearest-neighbor sequencing with
//		  optional loop closure back to the origin
//		• Reporting: textual leg summaries, ASCII grids, GeoJSON export,
//		  SVG/PNG rendering, MQTT route publishing
//
// ✨ Why choose waypath?
//
//   - Deterministic – fixed input order in, identical route out
//   - Honest about limits – unresolved hazards are reported, never hidden
//   - Pure computation core – no I/O, safe for concurrent independent runs
//   - Small API – one Plan call, clear Options, strict sentinel errors
//
// Everything is organized under focused subpackages:
//
//	geom/     — planar primitives (distance, projection, circle tests)
//	obstacle/ — circular keep-out zones and ordered obstacle fields
//	route/    — detour resolver + greedy tour builder (the planning core)
//	scenario/ — YAML scenario files (waypoints, obstacles, safety config)
//	report/   — text/grid/GeoJSON/SVG/PNG output and MQTT publishing
//	cmd/      — the waypath command-line planner
//
// Quick ASCII example:
//
//	    S────o₁
//	    │  ⊘  │        a leg that would cross the keep-out disk ⊘
//	    │     o₂       is replaced by the detour S→o₁→o₂→T
//	    └─────T
//
// Start with route.Plan and scenario.Load; see each package's doc.go for
// contracts, complexity notes, and error taxonomies.
//
//	go get github.com/katalvlaran/waypath
package waypath
