package intersect

import (
	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// FacePointIntersection classifies how a point in surface coordinates
// relates to a face. A nil FacePointIntersection means the point is
// outside the face.
type FacePointIntersection interface {
	isFacePointIntersection()
}

// PointIsInsideFace: the point lies in the face's region, off its
// boundary.
type PointIsInsideFace struct{}

// PointIsOnEdge: the point lies on a boundary half-edge.
type PointIsOnEdge struct {
	Edge storage.Handle[topology.HalfEdge]
}

// PointIsOnVertex: the point coincides with a boundary vertex.
type PointIsOnVertex struct {
	Vertex storage.Handle[topology.SurfaceVertex]
}

func (PointIsInsideFace) isFacePointIntersection() {}
func (PointIsOnEdge) isFacePointIntersection()    {}
func (PointIsOnVertex) isFacePointIntersection()  {}

// FacePoint intersects a face with a point given in the face's surface
// coordinates. Curved boundaries are approximated at the given tolerance
// before testing.
func FacePoint(
	face storage.Handle[topology.Face],
	point math3d.Point2,
	tolerance approx.Tolerance,
) FacePointIntersection {
	cache := approx.NewCache()
	ray := HorizontalRay{Origin: point}

	crossings := 0
	for _, cycle := range face.Get().Region().Get().AllCycles() {
		edges := cycle.Get().HalfEdges()

		for i, edge := range edges {
			next := edges[(i+1)%len(edges)]

			// The polyline of this edge: its own approximation points
			// plus the start of the next edge, all in surface
			// coordinates.
			var chain []math3d.Point2
			for _, p := range cache.HalfEdge(edge, tolerance).Points {
				chain = append(chain, p.Surface)
			}
			chain = append(chain, next.Get().StartVertex().Get().Position())

			for j := 0; j+1 < len(chain); j++ {
				segment := Segment2{
					Points: [2]math3d.Point2{chain[j], chain[j+1]},
				}

				hit, ok := RaySegment(ray, segment)
				if !ok {
					continue
				}

				switch hit {
				case RayStartsOnFirstVertex:
					if j == 0 {
						return PointIsOnVertex{
							Vertex: edge.Get().StartVertex(),
						}
					}

					return PointIsOnEdge{Edge: edge}
				case RayStartsOnSecondVertex:
					if j+2 == len(chain) {
						return PointIsOnVertex{
							Vertex: next.Get().StartVertex(),
						}
					}

					return PointIsOnEdge{Edge: edge}
				case RayStartsOnSegment:
					return PointIsOnEdge{Edge: edge}
				case RayHitsSegment, RayHitsLowerVertex:
					crossings++
				case RayHitsUpperVertex, RayHitsSegmentAndAreParallel:
					// Attributed elsewhere, or a graze.
				}
			}
		}
	}

	if crossings%2 == 1 {
		return PointIsInsideFace{}
	}

	return nil
}
