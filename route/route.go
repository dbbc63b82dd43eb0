// Package route - Route accessors shared by reporting and tests.
//
// Compact, allocation-conscious helpers operating purely on the planned
// point sequence.
package route

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/waypath/geom"
)

// Length returns the total travel distance along the route.
//
// Complexity: O(L).
func (r Route) Length() float64 {
	var (
		sum float64
		i   int
	)
	for i = 0; i+1 < len(r.Points); i++ {
		sum += geom.Distance(r.Points[i], r.Points[i+1])
	}
	return sum
}

// Legs returns the consecutive segments of the route, in travel order.
// A single-point route has no legs and returns nil.
//
// Complexity: O(L) time and space.
func (r Route) Legs() []geom.Segment {
	if len(r.Points) < 2 {
		return nil
	}
	var (
		legs = make([]geom.Segment, len(r.Points)-1)
		i    int
	)
	for i = 0; i+1 < len(r.Points); i++ {
		legs[i] = geom.Segment{A: r.Points[i], B: r.Points[i+1]}
	}
	return legs
}

// IsClosed reports whether the route returns to its starting point.
func (r Route) IsClosed() bool {
	return len(r.Points) >= 2 && r.Points[0] == r.Points[len(r.Points)-1]
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[(0,0) (2.1,2.1) (10,0)] hazards=0".
//
// Complexity: O(L) time and space for formatting.
func (r Route) DebugString() string {
	var b strings.Builder
	b.WriteByte('[')
	var i int
	for i = 0; i < len(r.Points); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "(%g,%g)", r.Points[i].X, r.Points[i].Y)
	}
	fmt.Fprintf(&b, "] hazards=%d", len(r.Hazards))
	return b.String()
}
