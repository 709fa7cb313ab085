package approx

import (
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// CycleApprox approximates a cycle: the concatenated approximations of
// its half-edges. Since each half-edge approximation starts with its
// start vertex and excludes its end vertex, the concatenation is a closed
// polyline without duplicate points; the loop closes from the last point
// back to the first.
type CycleApprox struct {
	Points []ApproxPoint
}

// Cycle approximates a cycle at the given tolerance.
func (c *Cache) Cycle(
	cycle storage.Handle[topology.Cycle],
	tolerance Tolerance,
) CycleApprox {
	var approx CycleApprox
	for _, edge := range cycle.Get().HalfEdges() {
		approx.Points = append(
			approx.Points, c.HalfEdge(edge, tolerance).Points...)
	}

	return approx
}

// FaceApprox approximates the boundaries of a face: its exterior cycle
// and its interior cycles.
type FaceApprox struct {
	Exterior  CycleApprox
	Interiors []CycleApprox
}

// Face approximates a face's boundaries at the given tolerance.
func (c *Cache) Face(
	face storage.Handle[topology.Face],
	tolerance Tolerance,
) FaceApprox {
	region := face.Get().Region().Get()

	approx := FaceApprox{
		Exterior: c.Cycle(region.Exterior(), tolerance),
	}
	for _, interior := range region.Interiors().Handles() {
		approx.Interiors = append(
			approx.Interiors, c.Cycle(interior, tolerance))
	}

	return approx
}
