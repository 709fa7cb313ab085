package intersect

import "github.com/sksmith/brep/math3d"

// Polygon is a polygon in surface coordinates, possibly with holes. It
// supports point containment via even-odd ray casting; that is its only
// job, so it stores just the boundary segments.
type Polygon struct {
	segments []Segment2
}

// NewPolygon builds a polygon from an exterior loop and any number of
// interior loops. Loops are closed implicitly (last point connects back to
// first); zero-length segments are dropped.
func NewPolygon(exterior []math3d.Point2, interiors ...[]math3d.Point2) Polygon {
	var p Polygon
	p.appendLoop(exterior)
	for _, interior := range interiors {
		p.appendLoop(interior)
	}

	return p
}

func (p *Polygon) appendLoop(points []math3d.Point2) {
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		if a == b {
			continue
		}
		p.segments = append(p.segments, Segment2{Points: [2]math3d.Point2{a, b}})
	}
}

// ContainsPointStrictly reports whether the point lies strictly inside the
// polygon: inside the exterior, outside every hole, and not on any
// boundary segment.
//
// Containment is decided by casting a horizontal ray to the right and
// counting crossings with the half-open vertex rule: a crossing through a
// vertex is attributed to the segment whose lower endpoint it is. That
// counts each pass through a vertex exactly once and each graze not at
// all.
func (p Polygon) ContainsPointStrictly(point math3d.Point2) bool {
	ray := HorizontalRay{Origin: point}

	crossings := 0
	for _, segment := range p.segments {
		hit, ok := RaySegment(ray, segment)
		if !ok {
			continue
		}

		switch hit {
		case RayStartsOnSegment, RayStartsOnFirstVertex,
			RayStartsOnSecondVertex:
			// On the boundary, which is not strictly inside.
			return false
		case RayHitsSegment, RayHitsLowerVertex:
			crossings++
		case RayHitsUpperVertex, RayHitsSegmentAndAreParallel:
			// Attributed to the neighboring segment (or nothing).
		}
	}

	return crossings%2 == 1
}
