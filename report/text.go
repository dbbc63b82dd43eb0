package report

import (
	"fmt"
	"io"
	"math"

	"github.com/katalvlaran/waypath/geom"
	"github.com/katalvlaran/waypath/route"
)

// WriteText writes a leg-by-leg summary of the route: per leg the
// endpoints, straight-line distance and heading in degrees, followed by the
// total length and one warning line per unresolved hazard.
//
// Complexity: O(L) legs + O(H) hazards.
func WriteText(w io.Writer, r route.Route) error {
	if len(r.Points) == 0 {
		_, err := fmt.Fprintln(w, "empty route")
		return err
	}

	if _, err := fmt.Fprintf(w, "route: %d points, %d legs\n", len(r.Points), len(r.Points)-1); err != nil {
		return err
	}

	legs := r.Legs()
	for i, leg := range legs {
		heading := geom.Bearing(leg.A, leg.B) * 180 / math.Pi
		_, err := fmt.Fprintf(w, "  leg %2d: (%.2f, %.2f) -> (%.2f, %.2f)  dist=%.2f  heading=%.1f°\n",
			i, leg.A.X, leg.A.Y, leg.B.X, leg.B.Y, leg.Length(), heading)
		if err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "total length: %.2f\n", r.Length()); err != nil {
		return err
	}

	for _, h := range r.Hazards {
		_, err := fmt.Fprintf(w, "WARNING: leg %d clips obstacle %d (clearance %.3f)\n",
			h.Leg, h.Obstacle, h.Clearance)
		if err != nil {
			return err
		}
	}
	return nil
}
