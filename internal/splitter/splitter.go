// Package splitter implements the deterministic range bisection that shapes
// the fork tree. The midpoint rule depends only on the range bounds, so the
// tree topology for a given number of items is identical on every run.
package splitter

// Split computes the midpoint of the half-open index range [lo, hi).
//
// A range of length 1 is a leaf and cannot be split; Split reports ok=false
// for it. For longer ranges, Split returns mid = lo + (hi-lo)/2, producing
// the two non-empty sub-ranges [lo, mid) and [mid, hi).
//
// Split is a pure function. The caller must guarantee hi > lo.
//
// Parameters:
//   - lo: The inclusive lower bound of the range.
//   - hi: The exclusive upper bound of the range.
//
// Returns:
//   - int: The midpoint, valid only when ok is true.
//   - bool: false if the range is a leaf (length 1).
func Split(lo, hi int) (int, bool) {
	if hi-lo <= 1 {
		return 0, false
	}
	return lo + (hi-lo)/2, true
}
