// Package report consumes planned routes and renders them for humans and
// machines. It is strictly a consumer: nothing here feeds back into the
// planning core, which only promises a well-formed route.Route.
//
// What:
//
//   - WriteText — leg-by-leg summary (distance, heading, hazards) to any
//     io.Writer.
//   - GridString — a coarse ASCII map of the route and obstacle field.
//   - ToGeoJSON / MarshalGeoJSON — GeoJSON FeatureCollection export with
//     optional Douglas-Peucker simplification of the route line.
//   - Renderer — SVG and PNG rendering of the route over its obstacles.
//   - Publisher — publishes the planned route as JSON to an MQTT topic for
//     a vehicle or ground station to pick up.
//
// Why:
//
//   - Mission review: eyeball the detours before flying them.
//   - Integration: GeoJSON drops straight into GIS tooling; MQTT hands the
//     route to whatever executes it.
package report
