package validate

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// Vertex checks that the vertex's curve, evaluated at the vertex's
// position, lands on its surface form, and that curve and surface form
// agree on the surface.
func Vertex(h storage.Handle[topology.Vertex], cfg Config) []error {
	var errs []error

	v := h.Get()
	curve := v.Curve().Get()
	surfaceForm := v.SurfaceForm().Get()

	if curve.Surface() != surfaceForm.Surface() {
		errs = append(errs, HalfEdgeSurfaceMismatch{
			CurveSurface:  curve.Surface(),
			VertexSurface: surfaceForm.Surface(),
		})
	}

	onCurve := curve.Path().PointFromPath(v.Position())
	distance := onCurve.DistanceTo(surfaceForm.Position())
	if distance > cfg.IdenticalMaxDistance {
		errs = append(errs, VertexPositionMismatch{
			CurvePosition:  onCurve,
			VertexPosition: surfaceForm.Position(),
			Distance:       distance,
		})
	}

	return errs
}

// SurfaceVertex checks that the vertex's surface, evaluated at the
// vertex's position, lands on its global form.
func SurfaceVertex(h storage.Handle[topology.SurfaceVertex], cfg Config) []error {
	var errs []error

	v := h.Get()
	onSurface := v.Surface().Get().PointFromSurface(v.Position())
	global := v.GlobalForm().Get().Position()

	distance := onSurface.DistanceTo(global)
	if distance > cfg.IdenticalMaxDistance {
		errs = append(errs, SurfaceVertexPositionMismatch{
			SurfacePosition: onSurface,
			GlobalPosition:  global,
			Distance:        distance,
		})
	}

	return errs
}

// HalfEdge checks that the half-edge's boundary is non-degenerate, that
// its curve and start vertex share a surface, and that the start vertex
// sits where the curve starts.
func HalfEdge(h storage.Handle[topology.HalfEdge], cfg Config) []error {
	var errs []error

	e := h.Get()
	curve := e.Curve().Get()
	start := e.StartVertex().Get()

	if e.Boundary().IsEmpty() {
		errs = append(errs, HalfEdgeVerticesCoincident{
			Position: e.Boundary().Inner[0],
		})
	}

	if curve.Surface() != start.Surface() {
		errs = append(errs, HalfEdgeSurfaceMismatch{
			CurveSurface:  curve.Surface(),
			VertexSurface: start.Surface(),
		})
	}

	onCurve := curve.Path().PointFromPath(e.Boundary().Inner[0])
	distance := onCurve.DistanceTo(start.Position())
	if distance > cfg.IdenticalMaxDistance {
		errs = append(errs, VertexPositionMismatch{
			CurvePosition:  onCurve,
			VertexPosition: start.Position(),
			Distance:       distance,
		})
	}

	return errs
}

// Cycle checks that consecutive half-edges connect: each half-edge's
// curve, evaluated at the end of its boundary, must land on the next
// half-edge's start vertex, and each half-edge's global form must connect
// its endpoint global vertices.
func Cycle(h storage.Handle[topology.Cycle], cfg Config) []error {
	var errs []error

	edges := h.Get().HalfEdges()
	for i, edge := range edges {
		next := edges[(i+1)%len(edges)]

		e := edge.Get()
		end := e.Curve().Get().Path().PointFromPath(e.Boundary().Inner[1])
		nextStart := next.Get().StartVertex().Get().Position()

		distance := end.DistanceTo(nextStart)
		if distance > cfg.IdenticalMaxDistance {
			errs = append(errs, CycleNotClosed{
				Index:       i,
				EndPosition: end,
				NextStart:   nextStart,
				Distance:    distance,
			})
		}

		want := topology.NewGlobalEdge(
			e.StartVertex().Get().GlobalForm(),
			next.Get().StartVertex().Get().GlobalForm(),
		).Vertices()
		got := e.GlobalForm().Get().Vertices()
		if got[0] != want[0] || got[1] != want[1] {
			errs = append(errs, HalfEdgeGlobalEdgeMismatch{HalfEdge: edge})
		}
	}

	return errs
}

// Face checks that the face has a non-empty exterior and that interiors
// wind opposite to the exterior.
func Face(h storage.Handle[topology.Face], cfg Config) []error {
	var errs []error

	region := h.Get().Region().Get()
	exterior := region.Exterior().Get()

	if exterior.Len() == 0 {
		errs = append(errs, FaceMissingBoundary{})

		return errs
	}

	winding := exterior.Winding()
	for _, interior := range region.Interiors().Handles() {
		interiorWinding := interior.Get().Winding()
		if interiorWinding == winding {
			errs = append(errs, FaceInvalidInteriorWinding{
				Interior: interior,
				Winding:  interiorWinding,
			})
		}
	}

	return errs
}

// Sketch checks the winding convention (exteriors counter-clockwise,
// interiors clockwise) and that no cycle or half-edge is referenced more
// than once across the sketch.
func Sketch(h storage.Handle[topology.Sketch], cfg Config) []error {
	var errs []error

	seenCycles := make(map[storage.ObjectID]struct{})
	seenEdges := make(map[storage.ObjectID]struct{})

	for _, region := range h.Get().Regions().Handles() {
		r := region.Get()

		if r.Exterior().Get().Winding() == topology.WindingCw {
			errs = append(errs, SketchClockwiseExterior{
				Exterior: r.Exterior(),
			})
		}
		for _, interior := range r.Interiors().Handles() {
			if interior.Get().Winding() == topology.WindingCcw {
				errs = append(errs, SketchCounterClockwiseInterior{
					Interior: interior,
				})
			}
		}

		for _, cycle := range r.AllCycles() {
			if _, dup := seenCycles[cycle.ID()]; dup {
				errs = append(errs, MultipleReferencesToCycle{Cycle: cycle})

				continue
			}
			seenCycles[cycle.ID()] = struct{}{}

			for _, edge := range cycle.Get().HalfEdges() {
				if _, dup := seenEdges[edge.ID()]; dup {
					errs = append(errs,
						MultipleReferencesToHalfEdge{HalfEdge: edge})

					continue
				}
				seenEdges[edge.ID()] = struct{}{}
			}
		}
	}

	return errs
}

// shellEdge pairs a half-edge with the surface of the face that uses it.
type shellEdge struct {
	edge    storage.Handle[topology.HalfEdge]
	surface geometry.Surface
}

// Shell checks watertightness and edge coincidence: every global edge
// must be referenced by exactly two half-edges of the shell, coincident
// half-edges must reference the same global edge, and half-edges sharing
// a global edge must coincide.
func Shell(h storage.Handle[topology.Shell], cfg Config) []error {
	var errs []error

	var edges []shellEdge
	for _, face := range h.Get().Faces().Handles() {
		surface := *face.Get().Surface().Get()
		for _, cycle := range face.Get().Region().Get().AllCycles() {
			for _, edge := range cycle.Get().HalfEdges() {
				edges = append(edges, shellEdge{edge: edge, surface: surface})
			}
		}
	}

	counts := make(map[storage.ObjectID]int)
	byID := make(map[storage.ObjectID]storage.Handle[topology.GlobalEdge])
	for _, se := range edges {
		global := se.edge.Get().GlobalForm()
		counts[global.ID()]++
		byID[global.ID()] = global
	}

	var offenders []storage.Handle[topology.GlobalEdge]
	reported := make(map[storage.ObjectID]struct{})
	for _, se := range edges {
		id := se.edge.Get().GlobalForm().ID()
		if _, done := reported[id]; done {
			continue
		}
		if counts[id] != 2 {
			offenders = append(offenders, byID[id])
			reported[id] = struct{}{}
		}
	}
	if len(offenders) > 0 {
		errs = append(errs, ShellNotWatertight{Edges: offenders})
	}

	// This is O(N^2), but a map doesn't work here: coincidence is a
	// question of distances, not exact positions.
	for i := range edges {
		for j := i + 1; j < len(edges); j++ {
			identical :=
				edges[i].edge.Get().GlobalForm() ==
					edges[j].edge.Get().GlobalForm()

			if identical {
				if anyDistanceAbove(
					edges[i], edges[j], cfg.IdenticalMaxDistance, cfg) {
					errs = append(errs, ShellIdenticalEdgesNotCoincident{
						Edge1: edges[i].edge,
						Edge2: edges[j].edge,
					})
				}
			} else {
				if allDistancesBelow(
					edges[i], edges[j], cfg.DistinctMinDistance, cfg) {
					errs = append(errs, ShellCoincidentEdgesNotIdentical{
						Edge1: edges[i].edge,
						Edge2: edges[j].edge,
					})
				}
			}
		}
	}

	return errs
}

// sampleEdge evaluates a half-edge's 3D position at a fraction of its
// boundary.
func sampleEdge(se shellEdge, percent math3d.Scalar) math3d.Point3 {
	e := se.edge.Get()
	boundary := e.Boundary()
	t := boundary.Inner[0].T +
		(boundary.Inner[1].T-boundary.Inner[0].T)*percent

	onSurface := e.Curve().Get().Path().PointFromPath(math3d.Point1{T: t})

	return se.surface.PointFromSurface(onSurface)
}

// edgeDistances samples two half-edges at the start, middle, and end of
// their boundaries and returns the distances between the samples. If the
// start positions do not match, the second edge is treated as flipped.
//
// Three samples are enough to tell lines and circles apart; if more curve
// kinds are added, this needs revisiting.
func edgeDistances(a, b shellEdge, cfg Config) [3]math3d.Scalar {
	flip := sampleEdge(a, 0).DistanceTo(sampleEdge(b, 0)) >
		cfg.IdenticalMaxDistance

	var distances [3]math3d.Scalar
	for i, percent := range []math3d.Scalar{0, 0.5, 1} {
		other := percent
		if flip {
			other = 1 - percent
		}
		distances[i] = sampleEdge(a, percent).DistanceTo(sampleEdge(b, other))
	}

	return distances
}

func anyDistanceAbove(a, b shellEdge, limit math3d.Scalar, cfg Config) bool {
	for _, d := range edgeDistances(a, b, cfg) {
		if d > limit {
			return true
		}
	}

	return false
}

func allDistancesBelow(a, b shellEdge, limit math3d.Scalar, cfg Config) bool {
	for _, d := range edgeDistances(a, b, cfg) {
		if d >= limit {
			return false
		}
	}

	return true
}

// Solid checks all shells of a solid.
func Solid(h storage.Handle[topology.Solid], cfg Config) []error {
	var errs []error
	for _, shell := range h.Get().Shells().Handles() {
		errs = append(errs, Shell(shell, cfg)...)
	}

	return errs
}

// Object validates any supported object handle. Unknown types validate
// clean.
func Object(obj any, cfg Config) []error {
	switch h := obj.(type) {
	case storage.Handle[topology.Vertex]:
		return Vertex(h, cfg)
	case storage.Handle[topology.SurfaceVertex]:
		return SurfaceVertex(h, cfg)
	case storage.Handle[topology.HalfEdge]:
		return HalfEdge(h, cfg)
	case storage.Handle[topology.Cycle]:
		return Cycle(h, cfg)
	case storage.Handle[topology.Face]:
		return Face(h, cfg)
	case storage.Handle[topology.Sketch]:
		return Sketch(h, cfg)
	case storage.Handle[topology.Shell]:
		return Shell(h, cfg)
	case storage.Handle[topology.Solid]:
		return Solid(h, cfg)
	default:
		return nil
	}
}
