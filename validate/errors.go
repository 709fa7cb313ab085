package validate

import (
	"fmt"

	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// VertexPositionMismatch: a vertex's curve, evaluated at the vertex's
// position, does not land on the vertex's surface form.
type VertexPositionMismatch struct {
	CurvePosition  math3d.Point2
	VertexPosition math3d.Point2
	Distance       math3d.Scalar
}

func (e VertexPositionMismatch) Error() string {
	return fmt.Sprintf(
		"vertex position mismatch: curve evaluates to %v, surface vertex is at %v (distance %v)",
		e.CurvePosition, e.VertexPosition, e.Distance)
}

// SurfaceVertexPositionMismatch: a surface vertex's surface, evaluated at
// the vertex's position, does not land on the global vertex.
type SurfaceVertexPositionMismatch struct {
	SurfacePosition math3d.Point3
	GlobalPosition  math3d.Point3
	Distance        math3d.Scalar
}

func (e SurfaceVertexPositionMismatch) Error() string {
	return fmt.Sprintf(
		"surface vertex position mismatch: surface evaluates to %v, global vertex is at %v (distance %v)",
		e.SurfacePosition, e.GlobalPosition, e.Distance)
}

// HalfEdgeSurfaceMismatch: a half-edge's curve and its start vertex
// reference different surfaces.
type HalfEdgeSurfaceMismatch struct {
	CurveSurface  storage.Handle[geometry.Surface]
	VertexSurface storage.Handle[geometry.Surface]
}

func (e HalfEdgeSurfaceMismatch) Error() string {
	return fmt.Sprintf(
		"half-edge surface mismatch: curve is on %s, start vertex on %s",
		e.CurveSurface, e.VertexSurface)
}

// HalfEdgeVerticesCoincident: a half-edge's boundary points coincide, so
// the edge has zero length on its curve.
type HalfEdgeVerticesCoincident struct {
	Position math3d.Point1
}

func (e HalfEdgeVerticesCoincident) Error() string {
	return fmt.Sprintf(
		"half-edge vertices are coincident on the curve (at %v)", e.Position)
}

// HalfEdgeGlobalEdgeMismatch: a half-edge's global form does not connect
// the half-edge's endpoint global vertices.
type HalfEdgeGlobalEdgeMismatch struct {
	HalfEdge storage.Handle[topology.HalfEdge]
}

func (e HalfEdgeGlobalEdgeMismatch) Error() string {
	return fmt.Sprintf(
		"half-edge %s has a global form that does not connect its endpoint vertices",
		e.HalfEdge)
}

// CycleNotClosed: consecutive half-edges of a cycle do not share a
// vertex.
type CycleNotClosed struct {
	Index       int
	EndPosition math3d.Point2
	NextStart   math3d.Point2
	Distance    math3d.Scalar
}

func (e CycleNotClosed) Error() string {
	return fmt.Sprintf(
		"cycle is not closed: half-edge %d ends at %v, next starts at %v (distance %v)",
		e.Index, e.EndPosition, e.NextStart, e.Distance)
}

// FaceMissingBoundary: a face's exterior cycle is empty.
type FaceMissingBoundary struct{}

func (e FaceMissingBoundary) Error() string {
	return "face has no exterior boundary"
}

// FaceInvalidInteriorWinding: an interior cycle of a face winds the same
// way as the exterior.
type FaceInvalidInteriorWinding struct {
	Interior storage.Handle[topology.Cycle]
	Winding  topology.Winding
}

func (e FaceInvalidInteriorWinding) Error() string {
	return fmt.Sprintf(
		"interior cycle %s has the same winding as the exterior (%d)",
		e.Interior, e.Winding)
}

// SketchClockwiseExterior: a sketch region's exterior winds clockwise.
type SketchClockwiseExterior struct {
	Exterior storage.Handle[topology.Cycle]
}

func (e SketchClockwiseExterior) Error() string {
	return fmt.Sprintf("sketch exterior cycle %s is clockwise", e.Exterior)
}

// SketchCounterClockwiseInterior: a sketch region's interior winds
// counter-clockwise.
type SketchCounterClockwiseInterior struct {
	Interior storage.Handle[topology.Cycle]
}

func (e SketchCounterClockwiseInterior) Error() string {
	return fmt.Sprintf(
		"sketch interior cycle %s is counter-clockwise", e.Interior)
}

// ShellNotWatertight: some global edges of a shell are not referenced by
// exactly two half-edges.
type ShellNotWatertight struct {
	Edges []storage.Handle[topology.GlobalEdge]
}

func (e ShellNotWatertight) Error() string {
	return fmt.Sprintf(
		"shell is not watertight: %d global edges are not referenced by exactly two half-edges",
		len(e.Edges))
}

// ShellCoincidentEdgesNotIdentical: two half-edges of a shell run along
// the same points in space but reference different global edges.
type ShellCoincidentEdgesNotIdentical struct {
	Edge1, Edge2 storage.Handle[topology.HalfEdge]
}

func (e ShellCoincidentEdgesNotIdentical) Error() string {
	return fmt.Sprintf(
		"shell contains half-edges that are coincident but refer to different global edges: %s, %s",
		e.Edge1, e.Edge2)
}

// ShellIdenticalEdgesNotCoincident: two half-edges of a shell reference
// the same global edge but are geometrically apart.
type ShellIdenticalEdgesNotCoincident struct {
	Edge1, Edge2 storage.Handle[topology.HalfEdge]
}

func (e ShellIdenticalEdgesNotCoincident) Error() string {
	return fmt.Sprintf(
		"shell contains half-edges that refer to the same global edge but do not coincide: %s, %s",
		e.Edge1, e.Edge2)
}

// MultipleReferencesToCycle: a cycle is referenced more than once across
// a sketch's regions.
type MultipleReferencesToCycle struct {
	Cycle storage.Handle[topology.Cycle]
}

func (e MultipleReferencesToCycle) Error() string {
	return fmt.Sprintf("cycle %s is referenced multiple times", e.Cycle)
}

// MultipleReferencesToHalfEdge: a half-edge is referenced by more than
// one cycle of a sketch.
type MultipleReferencesToHalfEdge struct {
	HalfEdge storage.Handle[topology.HalfEdge]
}

func (e MultipleReferencesToHalfEdge) Error() string {
	return fmt.Sprintf("half-edge %s is referenced multiple times", e.HalfEdge)
}
