// Package geometry provides pure 2D primitives and predicates for
// polygon placement. All functions are deterministic and side-effect
// free.
package geometry

import "math"

// Epsilon guards divisions and orientation tests against degenerate
// coordinates.
const Epsilon = 1e-9

// Point is a pair of real coordinates. Value type, no identity.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Outline is an ordered sequence of at least three points defining a
// simple polygon in template space. The last vertex connects implicitly
// back to the first. Outlines are loaded once and never mutated.
type Outline []Point

// BoundingBox returns the world-space axis-aligned box of the outline
// scaled by scale and translated by anchor, expanded by buffer on all
// sides.
func BoundingBox(outline Outline, anchor Point, scale, buffer float64) (minX, maxX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, v := range outline {
		x := anchor.X + v.X*scale
		y := anchor.Y + v.Y*scale
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return minX - buffer, maxX + buffer, minY - buffer, maxY + buffer
}

// Centroid returns the arithmetic mean of the outline's vertices. It is
// used as the interior sample point for containment tests, which is
// sufficient for convex and near-convex templates; for a highly concave
// outline the centroid can fall outside the polygon.
func Centroid(outline []Point) Point {
	var sx, sy float64
	for _, v := range outline {
		sx += v.X
		sy += v.Y
	}
	n := float64(len(outline))
	return Point{sx / n, sy / n}
}

// cross returns the z component of (b-a) x (c-a). Positive means c lies
// to the left of a->b.
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// extend stretches segment a-b outward by half the buffer at each end,
// so two extended segments jointly close a full buffer of clearance
// between their endpoints. Returns false for a near-zero-length
// segment, which has no usable direction.
func extend(a, b Point, buffer float64) (Point, Point, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length < Epsilon {
		return a, b, false
	}
	ux, uy := dx/length*buffer/2, dy/length*buffer/2
	return Point{a.X - ux, a.Y - uy}, Point{b.X + ux, b.Y + uy}, true
}

// onSegment reports whether c, already known to be colinear with a-b,
// lies within the segment's axis-aligned extent.
func onSegment(a, b, c Point) bool {
	return math.Min(a.X, b.X)-Epsilon <= c.X && c.X <= math.Max(a.X, b.X)+Epsilon &&
		math.Min(a.Y, b.Y)-Epsilon <= c.Y && c.Y <= math.Max(a.Y, b.Y)+Epsilon
}

// intervalsOverlap reports whether [min(a1,a2), max(a1,a2)] and
// [min(b1,b2), max(b1,b2)] share any point.
func intervalsOverlap(a1, a2, b1, b2 float64) bool {
	return math.Max(math.Min(a1, a2), math.Min(b1, b2)) <=
		math.Min(math.Max(a1, a2), math.Max(b1, b2))+Epsilon
}

// SegmentsIntersect reports whether segment a-b intersects segment c-d
// after each segment is extended outward along its own direction, so
// near misses within the buffer register as intersections. A
// near-zero-length segment degrades to a point tested against the other
// segment within buffer instead of dividing by its length. The general
// case uses orientation sign tests; when all four orientations vanish
// the segments are colinear and the test degrades to overlapping
// intervals on each axis.
func SegmentsIntersect(a, b, c, d Point, buffer float64) bool {
	ea, eb, okAB := extend(a, b, buffer)
	ec, ed, okCD := extend(c, d, buffer)
	switch {
	case !okAB && !okCD:
		return Dist(a, c) <= buffer
	case !okAB:
		return PointToSegmentDistance(a, c, d) <= buffer
	case !okCD:
		return PointToSegmentDistance(c, a, b) <= buffer
	}

	o1 := cross(ea, eb, ec)
	o2 := cross(ea, eb, ed)
	o3 := cross(ec, ed, ea)
	o4 := cross(ec, ed, eb)

	if math.Abs(o1) < Epsilon && math.Abs(o2) < Epsilon &&
		math.Abs(o3) < Epsilon && math.Abs(o4) < Epsilon {
		// Colinear segments overlap when their extents do on both axes.
		return intervalsOverlap(ea.X, eb.X, ec.X, ed.X) &&
			intervalsOverlap(ea.Y, eb.Y, ec.Y, ed.Y)
	}

	if o1*o2 < 0 && o3*o4 < 0 {
		return true
	}

	// One endpoint exactly on the other extended segment.
	if math.Abs(o1) < Epsilon && onSegment(ea, eb, ec) {
		return true
	}
	if math.Abs(o2) < Epsilon && onSegment(ea, eb, ed) {
		return true
	}
	if math.Abs(o3) < Epsilon && onSegment(ec, ed, ea) {
		return true
	}
	if math.Abs(o4) < Epsilon && onSegment(ec, ed, eb) {
		return true
	}
	return false
}

// PointInPolygon reports whether p lies inside the polygon using the
// even-odd rule: a horizontal ray cast from p crosses the boundary an
// odd number of times. Horizontal edges are skipped outright so the
// slope denominator never vanishes.
func PointInPolygon(p Point, polygon []Point) bool {
	inside := false
	n := len(polygon)
	for i := 0; i < n; i++ {
		a := polygon[i]
		b := polygon[(i+1)%n]
		dy := b.Y - a.Y
		if math.Abs(dy) < Epsilon {
			continue
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)*(b.X-a.X)/dy
			if xCross > p.X {
				inside = !inside
			}
		}
	}
	return inside
}

// PointToSegmentDistance returns the Euclidean distance from p to the
// closest point on the finite segment a-b, clamping the projection
// parameter to [0,1]. A degenerate segment collapses to its start
// point.
func PointToSegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq < Epsilon {
		return Dist(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return Dist(p, Point{a.X + t*dx, a.Y + t*dy})
}
