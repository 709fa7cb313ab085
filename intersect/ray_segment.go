// Package intersect provides intersection tests between geometric
// objects: a horizontal ray against a line segment, a point against a
// polygon, and a point against a face. The polygon and face tests are the
// basis of the triangulation's interior classification.
package intersect

import (
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/robust"
)

// HorizontalRay is a ray in surface coordinates, starting at Origin and
// extending in the positive u direction.
type HorizontalRay struct {
	Origin math3d.Point2
}

// Segment2 is a line segment in surface coordinates.
type Segment2 struct {
	Points [2]math3d.Point2
}

// RaySegmentIntersection classifies how a horizontal ray intersects a
// segment.
type RaySegmentIntersection int

const (
	// RayHitsSegment: the ray crosses the segment's interior.
	RayHitsSegment RaySegmentIntersection = iota + 1

	// RayHitsLowerVertex: the ray passes through the segment's lower
	// vertex.
	RayHitsLowerVertex

	// RayHitsUpperVertex: the ray passes through the segment's upper
	// vertex.
	RayHitsUpperVertex

	// RayHitsSegmentAndAreParallel: the ray overlaps the segment, which
	// is parallel to it.
	RayHitsSegmentAndAreParallel

	// RayStartsOnSegment: the ray's origin lies on the segment's
	// interior.
	RayStartsOnSegment

	// RayStartsOnFirstVertex: the ray's origin is the segment's first
	// vertex.
	RayStartsOnFirstVertex

	// RayStartsOnSecondVertex: the ray's origin is the segment's second
	// vertex.
	RayStartsOnSecondVertex
)

// RaySegment intersects a horizontal ray with a segment. The second
// return value is false if they do not intersect.
func RaySegment(ray HorizontalRay, segment Segment2) (RaySegmentIntersection, bool) {
	a, b := segment.Points[0], segment.Points[1]

	lower, upper := a, b
	if upper.V < lower.V {
		lower, upper = upper, lower
	}
	left, right := a, b
	if right.U < left.U {
		left, right = right, left
	}

	if ray.Origin.V > upper.V {
		// ray is above segment
		return 0, false
	}
	if ray.Origin.V < lower.V {
		// ray is below segment
		return 0, false
	}

	if ray.Origin.V == lower.V && lower.V == upper.V {
		// ray and segment are parallel and at the same height

		if ray.Origin.U > right.U {
			return 0, false
		}

		if ray.Origin.U == a.U {
			return RayStartsOnFirstVertex, true
		}
		if ray.Origin.U == b.U {
			return RayStartsOnSecondVertex, true
		}
		if ray.Origin.U > left.U && ray.Origin.U < right.U {
			return RayStartsOnSegment, true
		}

		return RayHitsSegmentAndAreParallel, true
	}

	orientation := robust.Orient2D(
		robust.Coord{X: lower.U.F(), Y: lower.V.F()},
		robust.Coord{X: upper.U.F(), Y: upper.V.F()},
		robust.Coord{X: ray.Origin.U.F(), Y: ray.Origin.V.F()},
	)

	if orientation == 0 {
		// ray starts on the line through the segment

		if ray.Origin.V == a.V {
			return RayStartsOnFirstVertex, true
		}
		if ray.Origin.V == b.V {
			return RayStartsOnSecondVertex, true
		}

		return RayStartsOnSegment, true
	}

	if orientation > 0 {
		// ray starts left of the segment

		if ray.Origin.V == upper.V {
			return RayHitsUpperVertex, true
		}
		if ray.Origin.V == lower.V {
			return RayHitsLowerVertex, true
		}

		return RayHitsSegment, true
	}

	return 0, false
}
