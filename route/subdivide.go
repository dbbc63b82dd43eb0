// Package route - bounded-step subdivision (leg length capping).
package route

import "github.com/katalvlaran/waypath/geom"

// SubdivideLeg splits the leg (from, to) into sub-legs of length at most
// maxStep: while the remaining distance to the destination exceeds maxStep,
// an intermediate point is placed maxStep along the bearing from the
// current point to the destination; the destination is appended last.
//
// The returned sequence starts at from and ends at to. A leg no longer than
// maxStep (including a zero-length leg) returns [from, to] unchanged.
//
// Subdivision bounds leg length only - it does not verify obstacle
// clearance for the new sub-legs. Callers pairing it with avoidance must
// re-test every produced sub-leg (Plan does this via the hazard scan).
//
// Errors: ErrNonPositiveStep when maxStep ≤ 0.
//
// Complexity: O(Distance(from,to)/maxStep) time and space.
func SubdivideLeg(from, to geom.Point, maxStep float64) ([]geom.Point, error) {
	if maxStep <= 0 {
		return nil, ErrNonPositiveStep
	}

	var (
		out     = []geom.Point{from}
		current = from
	)

	// Re-deriving the bearing from the current point each iteration keeps
	// the walk on the straight line regardless of accumulated FP error.
	for geom.Distance(current, to) > maxStep {
		current = geom.PolarOffset(current, geom.Bearing(current, to), maxStep)
		out = append(out, current)
	}

	return append(out, to), nil
}

// subdivideSequence applies SubdivideLeg to every consecutive pair in pts,
// splicing results so shared endpoints are not duplicated.
//
// Pre-condition: len(pts) ≥ 1 and maxStep > 0.
func subdivideSequence(pts []geom.Point, maxStep float64) ([]geom.Point, error) {
	var out = []geom.Point{pts[0]}

	var i int
	for i = 0; i+1 < len(pts); i++ {
		sub, err := SubdivideLeg(pts[i], pts[i+1], maxStep)
		if err != nil {
			return nil, err
		}
		out = append(out, sub[1:]...)
	}
	return out, nil
}
