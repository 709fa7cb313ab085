package sweep

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// SweptHalfEdge is the result of sweeping a half-edge: the side face the
// sweep created, and the top half-edge running along the face's upper
// boundary in reversed direction, ready for assembly into a top cycle.
type SweptHalfEdge struct {
	Face    storage.Handle[topology.Face]
	TopEdge storage.Handle[topology.HalfEdge]
}

// HalfEdge sweeps a half-edge along path into a side face.
//
// Since a half-edge stores only its start vertex, the caller must provide
// the edge's end vertex: the start vertex of the next half-edge in the
// containing cycle. topSurface is the bottom surface translated by path,
// shared across the whole sweep so that the top rim stitches together.
//
// The side face's cycle runs bottom, up, top (reversed), down. Its bottom
// edge reuses the source half-edge's global form, its vertical edges come
// from the cache, and its top edge shares a global form with the returned
// top half-edge — which is what makes a closed sweep watertight.
func HalfEdge(
	o *topology.Objects,
	edge storage.Handle[topology.HalfEdge],
	endVertex storage.Handle[topology.SurfaceVertex],
	topSurface storage.Handle[geometry.Surface],
	color *topology.Color,
	path math3d.Vector3,
	cache *Cache,
) SweptHalfEdge {
	e := edge.Get()
	curve := e.Curve().Get()
	bottomSurface := curve.Surface()

	sideSurface := o.Surfaces.Insert(geometry.Surface{
		U: bottomSurface.Get().PathToGlobal(curve.Path()),
		V: path,
	})

	b0 := e.Boundary().Inner[0].T
	b1 := e.Boundary().Inner[1].T

	// Corner global vertices. The bottom ones come from the source
	// edge; the top ones from the cache, so neighboring walls agree.
	gvBottomStart := e.StartVertex().Get().GlobalForm()
	gvBottomEnd := endVertex.Get().GlobalForm()
	gvTopStart := cache.topGlobalVertex(o, gvBottomStart, path)
	gvTopEnd := cache.topGlobalVertex(o, gvBottomEnd, path)

	// Corner surface vertices, in side-surface coordinates: u follows
	// the source curve's parameter, v the sweep.
	corner := func(u, v math3d.Scalar, global storage.Handle[topology.GlobalVertex]) storage.Handle[topology.SurfaceVertex] {
		return o.SurfaceVertices.Insert(topology.NewSurfaceVertex(
			math3d.Point2{U: u, V: v}, sideSurface, global))
	}
	svBottomStart := corner(b0, 0, gvBottomStart)
	svBottomEnd := corner(b1, 0, gvBottomEnd)
	svTopEnd := corner(b1, 1, gvTopEnd)
	svTopStart := corner(b0, 1, gvTopStart)

	geBottom := e.GlobalForm()
	geUp, _ := SweepGlobalVertex(o, gvBottomEnd, path, cache)
	geTop := cache.topGlobalEdge(o, geBottom, path)
	geDown, _ := SweepGlobalVertex(o, gvBottomStart, path, cache)

	sideCurve := func(from, to math3d.Point2) storage.Handle[topology.Curve] {
		return o.Curves.Insert(topology.NewCurve(
			sideSurface,
			geometry.LineFromPoints2(from, to),
			o.GlobalCurves.Insert(topology.GlobalCurve{}),
		))
	}
	unit := geometry.BoundaryFromValues(0, 1)

	sideCycle := o.Cycles.Insert(topology.NewCycle(
		[]storage.Handle[topology.HalfEdge]{
			o.HalfEdges.Insert(topology.NewHalfEdge(
				sideCurve(math3d.Point2{U: b0}, math3d.Point2{U: b1}),
				unit, svBottomStart, geBottom)),
			o.HalfEdges.Insert(topology.NewHalfEdge(
				sideCurve(math3d.Point2{U: b1}, math3d.Point2{U: b1, V: 1}),
				unit, svBottomEnd, geUp)),
			o.HalfEdges.Insert(topology.NewHalfEdge(
				sideCurve(math3d.Point2{U: b1, V: 1}, math3d.Point2{U: b0, V: 1}),
				unit, svTopEnd, geTop)),
			o.HalfEdges.Insert(topology.NewHalfEdge(
				sideCurve(math3d.Point2{U: b0, V: 1}, math3d.Point2{U: b0}),
				unit, svTopStart, geDown)),
		}))

	region := o.Regions.Insert(topology.NewRegion(sideCycle))

	var face storage.Handle[topology.Face]
	if color != nil {
		face = o.Faces.Insert(
			topology.NewFaceWithColor(sideSurface, region, *color))
	} else {
		face = o.Faces.Insert(topology.NewFace(sideSurface, region))
	}

	// The top half-edge: the source edge translated to the top surface
	// and reversed. Same 2D path (the top surface is translated, so the
	// path carries over), reversed boundary, start vertex at the source
	// edge's end.
	topCurve := o.Curves.Insert(topology.NewCurve(
		topSurface,
		curve.Path(),
		o.GlobalCurves.Insert(topology.GlobalCurve{}),
	))
	topEdge := o.HalfEdges.Insert(topology.NewHalfEdge(
		topCurve,
		e.Boundary().Reverse(),
		cache.topSurfaceVertex(o, endVertex, topSurface, path),
		geTop,
	))

	return SweptHalfEdge{Face: face, TopEdge: topEdge}
}
