package topology

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
)

// GlobalEdge establishes that multiple local edge uses trace the same edge
// in 3D space. It is an unordered pair of global vertices: constructing a
// global edge from (a, b) or (b, a) yields the same normalized value, so
// two half-edges running along the same edge in opposite directions share
// a structurally equal global form.
type GlobalEdge struct {
	vertices [2]storage.Handle[GlobalVertex]
}

// NewGlobalEdge constructs a global edge from its two endpoint vertices,
// in either order.
func NewGlobalEdge(a, b storage.Handle[GlobalVertex]) GlobalEdge {
	if b.ID() < a.ID() {
		a, b = b, a
	}

	return GlobalEdge{vertices: [2]storage.Handle[GlobalVertex]{a, b}}
}

// Vertices returns the endpoint vertices in normalized order.
func (e GlobalEdge) Vertices() [2]storage.Handle[GlobalVertex] {
	return e.vertices
}

// HalfEdge is a directed use of an edge by the face it bounds. The pair of
// opposite half-edges on adjacent faces represents the same underlying
// edge, which both reference through the same GlobalEdge handle.
//
// Invariants: the boundary is non-degenerate (its two points differ); the
// start vertex lies at the curve evaluated at the boundary's first point;
// the global form's vertices are the half-edge's endpoint global vertices,
// in normalized order.
//
// A half-edge stores only its start vertex. Its end vertex is the start
// vertex of the next half-edge in the cycle that contains it.
type HalfEdge struct {
	curve       storage.Handle[Curve]
	boundary    geometry.CurveBoundary
	startVertex storage.Handle[SurfaceVertex]
	globalForm  storage.Handle[GlobalEdge]
}

// NewHalfEdge constructs a half-edge.
func NewHalfEdge(
	curve storage.Handle[Curve],
	boundary geometry.CurveBoundary,
	startVertex storage.Handle[SurfaceVertex],
	globalForm storage.Handle[GlobalEdge],
) HalfEdge {
	return HalfEdge{
		curve:       curve,
		boundary:    boundary,
		startVertex: startVertex,
		globalForm:  globalForm,
	}
}

// Curve returns the curve the half-edge runs along.
func (e HalfEdge) Curve() storage.Handle[Curve] {
	return e.curve
}

// Boundary returns the half-edge's range on the curve, directed from start
// to end.
func (e HalfEdge) Boundary() geometry.CurveBoundary {
	return e.boundary
}

// StartVertex returns the surface vertex at the start of the half-edge.
func (e HalfEdge) StartVertex() storage.Handle[SurfaceVertex] {
	return e.startVertex
}

// GlobalForm returns the edge identity shared with the opposite half-edge.
func (e HalfEdge) GlobalForm() storage.Handle[GlobalEdge] {
	return e.globalForm
}
