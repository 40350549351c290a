// Package overlap decides whether a candidate placement may join a
// scene. A candidate is rejected when it overlaps, touches within the
// clearance buffer, or nests with any committed placement.
package overlap

import (
	"github.com/kyiku/hackz-mosaic-back/internal/geometry"
	"github.com/kyiku/hackz-mosaic-back/internal/scene"
)

// Overlaps reports whether candidate violates the clearance buffer
// against any of the existing placements. It short-circuits on the
// first violation.
func Overlaps(candidate scene.Placement, existing []scene.Placement, buffer float64) bool {
	for _, other := range existing {
		if overlapsPair(candidate, other, buffer) {
			return true
		}
	}
	return false
}

// overlapsPair runs the per-pair decision procedure. The buffered
// bounding boxes gate only the proximity and edge tests; containment
// runs for every pair regardless of the box result, because one shape
// fully nested inside another never produces disjoint boxes by
// accident of the broad phase and must not be skipped.
func overlapsPair(a, b scene.Placement, buffer float64) bool {
	av := a.WorldOutline()
	bv := b.WorldOutline()

	if boxesOverlap(a, b, buffer) {
		if verticesTooClose(av, bv, buffer) || verticesTooClose(bv, av, buffer) {
			return true
		}
		if edgesIntersect(av, bv, buffer) {
			return true
		}
	}

	if geometry.PointInPolygon(geometry.Centroid(av), bv) {
		return true
	}
	if geometry.PointInPolygon(geometry.Centroid(bv), av) {
		return true
	}
	return false
}

// boxesOverlap is the broad phase: buffered world-space boxes sharing
// extent on both axes.
func boxesOverlap(a, b scene.Placement, buffer float64) bool {
	aMinX, aMaxX, aMinY, aMaxY := a.BoundingBox(buffer)
	bMinX, bMaxX, bMinY, bMaxY := b.BoundingBox(buffer)
	if aMaxX < bMinX || bMaxX < aMinX {
		return false
	}
	if aMaxY < bMinY || bMaxY < aMinY {
		return false
	}
	return true
}

// verticesTooClose reports whether any vertex of the first outline sits
// within buffer of a vertex or edge of the second. Touching at exactly
// buffer counts as too close.
func verticesTooClose(vertices, other []geometry.Point, buffer float64) bool {
	n := len(other)
	for _, v := range vertices {
		for i := 0; i < n; i++ {
			if geometry.Dist(v, other[i]) <= buffer {
				return true
			}
			if geometry.PointToSegmentDistance(v, other[i], other[(i+1)%n]) <= buffer {
				return true
			}
		}
	}
	return false
}

// edgesIntersect tests every edge pair under the buffered intersection
// predicate.
func edgesIntersect(av, bv []geometry.Point, buffer float64) bool {
	an, bn := len(av), len(bv)
	for i := 0; i < an; i++ {
		for j := 0; j < bn; j++ {
			if geometry.SegmentsIntersect(av[i], av[(i+1)%an], bv[j], bv[(j+1)%bn], buffer) {
				return true
			}
		}
	}
	return false
}
