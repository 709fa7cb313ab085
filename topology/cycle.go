package topology

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/robust"
	"github.com/sksmith/brep/storage"
)

// Winding is the orientation of a closed 2D loop in surface coordinates.
type Winding int

const (
	WindingCw         Winding = -1
	WindingDegenerate Winding = 0
	WindingCcw        Winding = 1
)

// Cycle is an ordered sequence of half-edges forming a closed loop.
//
// Invariant: the end of each half-edge is the start of the next, and
// consecutive half-edges share that vertex by identity (through the next
// half-edge's start vertex).
type Cycle struct {
	halfEdges []storage.Handle[HalfEdge]
}

// NewCycle constructs a cycle from half-edges in loop order.
func NewCycle(halfEdges []storage.Handle[HalfEdge]) Cycle {
	owned := make([]storage.Handle[HalfEdge], len(halfEdges))
	copy(owned, halfEdges)

	return Cycle{halfEdges: owned}
}

// HalfEdges returns the cycle's half-edges in loop order. The returned
// slice must not be modified.
func (c Cycle) HalfEdges() []storage.Handle[HalfEdge] {
	return c.halfEdges
}

// Len returns the number of half-edges in the cycle.
func (c Cycle) Len() int {
	return len(c.halfEdges)
}

// Winding determines the cycle's orientation in the coordinate system of
// the surface its half-edges are defined in.
//
// A cycle consisting of a single half-edge on a circle is oriented by the
// traversal direction of the circle. Any other cycle is oriented by the
// signed area of the polygon of its start vertices, accumulated from
// robust triangle orientations.
func (c Cycle) Winding() Winding {
	if len(c.halfEdges) == 1 {
		edge := c.halfEdges[0].Get()
		circle, ok := edge.Curve().Get().Path().(geometry.Circle2)
		if !ok {
			return WindingDegenerate
		}

		boundary := edge.Boundary()
		direction := boundary.Inner[1].Sub(boundary.Inner[0]).Sign()
		handedness := circle.A.Cross(circle.B).Sign()

		return Winding(direction) * Winding(handedness)
	}

	points := make([]math3d.Point2, 0, len(c.halfEdges))
	for _, h := range c.halfEdges {
		points = append(points, h.Get().StartVertex().Get().Position())
	}

	if len(points) < 3 {
		return WindingDegenerate
	}

	anchor := robust.Coord{X: points[0].U.F(), Y: points[0].V.F()}

	var area float64
	for i := 1; i+1 < len(points); i++ {
		area += robust.Orient2D(
			anchor,
			robust.Coord{X: points[i].U.F(), Y: points[i].V.F()},
			robust.Coord{X: points[i+1].U.F(), Y: points[i+1].V.F()},
		)
	}

	switch {
	case area > 0:
		return WindingCcw
	case area < 0:
		return WindingCw
	default:
		return WindingDegenerate
	}
}
