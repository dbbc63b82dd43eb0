package report

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/simplify"

	"github.com/katalvlaran/waypath/obstacle"
	"github.com/katalvlaran/waypath/route"
)

// ToGeoJSON converts a planned route and its obstacle field into a GeoJSON
// FeatureCollection:
//
//   - one LineString feature for the route ("kind": "route") carrying its
//     length and hazard count;
//   - one Point feature per obstacle ("kind": "obstacle") carrying the
//     radius, in field order;
//   - one LineString feature per hazard ("kind": "hazard") carrying the
//     clearance, so GIS tooling can highlight offending legs.
//
// A positive simplifyTol runs Douglas-Peucker on the exported route line
// only - the planned route itself is never altered, and hazard legs are
// exported untouched so their indices stay meaningful.
func ToGeoJSON(r route.Route, field obstacle.Field, simplifyTol float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, len(r.Points))
	for i, p := range r.Points {
		line[i] = orb.Point{p.X, p.Y}
	}
	if simplifyTol > 0 && len(line) > 2 {
		line = simplify.DouglasPeucker(simplifyTol).Simplify(line.Clone()).(orb.LineString)
	}

	routeFeat := geojson.NewFeature(line)
	routeFeat.Properties["kind"] = "route"
	routeFeat.Properties["length"] = r.Length()
	routeFeat.Properties["hazards"] = len(r.Hazards)
	routeFeat.Properties["closed"] = r.IsClosed()
	fc.Append(routeFeat)

	for i, c := range field {
		f := geojson.NewFeature(orb.Point{c.Center.X, c.Center.Y})
		f.Properties["kind"] = "obstacle"
		f.Properties["index"] = i
		f.Properties["radius"] = c.Radius
		fc.Append(f)
	}

	legs := r.Legs()
	for _, h := range r.Hazards {
		leg := legs[h.Leg]
		f := geojson.NewFeature(orb.LineString{
			{leg.A.X, leg.A.Y},
			{leg.B.X, leg.B.Y},
		})
		f.Properties["kind"] = "hazard"
		f.Properties["leg"] = h.Leg
		f.Properties["obstacle"] = h.Obstacle
		f.Properties["clearance"] = h.Clearance
		fc.Append(f)
	}

	return fc
}

// MarshalGeoJSON renders the collection as indented JSON, ready to write to
// a .geojson file.
func MarshalGeoJSON(r route.Route, field obstacle.Field, simplifyTol float64) ([]byte, error) {
	return json.MarshalIndent(ToGeoJSON(r, field, simplifyTol), "", "  ")
}
