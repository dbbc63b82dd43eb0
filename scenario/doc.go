// Package scenario loads and saves planning scenarios as YAML files: the
// waypoint list, the obstacle field, safety parameters, and the loop flag
// in one document, ready to hand to route.Plan.
//
// A minimal scenario:
//
//	name: delivery-run
//	close_loop: true
//	safety:
//	  margin: 1.0
//	waypoints:
//	  - {x: 0, y: 0}
//	  - {x: 10, y: 0}
//	obstacles:
//	  - {x: 5, y: 0, radius: 2}
//
// Omitted safety fields fall back to the route package defaults; a missing
// close_loop defaults to true (tours close unless asked otherwise).
// Validation is strict: structural problems (no waypoints, negative radius
// or margin) are reported at load time with the offending index, before any
// planning happens.
package scenario
