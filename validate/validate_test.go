package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

func containsErrorType[T error](t *testing.T, errs []error) bool {
	t.Helper()

	for _, err := range errs {
		if _, ok := err.(T); ok {
			return true
		}
	}

	return false
}

func validTriangleFace(o *topology.Objects) storage.Handle[topology.Face] {
	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})

	return o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(cycle))))
}

func TestValidTopologyPassesAllChecks(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1},
	})

	assert.Empty(t, Cycle(cycle, cfg))
	for _, edge := range cycle.Get().HalfEdges() {
		assert.Empty(t, HalfEdge(edge, cfg))
		assert.Empty(t, SurfaceVertex(edge.Get().StartVertex(), cfg))
	}

	face := o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(cycle))))
	assert.Empty(t, Face(face, cfg))
}

func TestVertexPositionMismatch(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	surface := o.XYPlane()
	curve := o.Curves.Insert(topology.NewCurve(
		surface,
		geometry.LineFromPoints2(
			math3d.Point2{U: 0, V: 0}, math3d.Point2{U: 1, V: 0}),
		o.GlobalCurves.Insert(topology.GlobalCurve{}),
	))

	// Surface vertex deliberately off the curve's start.
	global := o.GlobalVertices.Insert(
		topology.NewGlobalVertex(math3d.Point3{Y: 0.5}))
	surfaceVertex := o.SurfaceVertices.Insert(topology.NewSurfaceVertex(
		math3d.Point2{U: 0, V: 0.5}, surface, global))

	vertex := o.Vertices.Insert(topology.NewVertex(
		math3d.Point1{T: 0}, curve, surfaceVertex))

	errs := Vertex(vertex, cfg)
	assert.True(t, containsErrorType[VertexPositionMismatch](t, errs))
}

func TestSurfaceVertexPositionMismatch(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	global := o.GlobalVertices.Insert(
		topology.NewGlobalVertex(math3d.Point3{Z: 1}))
	surfaceVertex := o.SurfaceVertices.Insert(topology.NewSurfaceVertex(
		math3d.Point2{U: 0, V: 0}, o.XYPlane(), global))

	errs := SurfaceVertex(surfaceVertex, cfg)
	assert.True(t,
		containsErrorType[SurfaceVertexPositionMismatch](t, errs))
}

func TestHalfEdgeVerticesCoincident(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	surface := o.XYPlane()
	curve := o.Curves.Insert(topology.NewCurve(
		surface,
		geometry.LineFromPoints2(
			math3d.Point2{U: 0, V: 0}, math3d.Point2{U: 1, V: 0}),
		o.GlobalCurves.Insert(topology.GlobalCurve{}),
	))
	global := o.GlobalVertices.Insert(
		topology.NewGlobalVertex(math3d.Point3{}))
	start := o.SurfaceVertices.Insert(topology.NewSurfaceVertex(
		math3d.Point2{U: 0, V: 0}, surface, global))

	edge := o.HalfEdges.Insert(topology.NewHalfEdge(
		curve,
		geometry.BoundaryFromValues(0, 0),
		start,
		o.GlobalEdges.Insert(topology.NewGlobalEdge(global, global)),
	))

	errs := HalfEdge(edge, cfg)
	assert.True(t, containsErrorType[HalfEdgeVerticesCoincident](t, errs))
}

func TestHalfEdgeSurfaceMismatch(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	curve := o.Curves.Insert(topology.NewCurve(
		o.XYPlane(),
		geometry.LineFromPoints2(
			math3d.Point2{U: 0, V: 0}, math3d.Point2{U: 1, V: 0}),
		o.GlobalCurves.Insert(topology.GlobalCurve{}),
	))
	global := o.GlobalVertices.Insert(
		topology.NewGlobalVertex(math3d.Point3{}))

	// Start vertex on a different surface than the curve.
	start := o.SurfaceVertices.Insert(topology.NewSurfaceVertex(
		math3d.Point2{U: 0, V: 0}, o.XZPlane(), global))

	edge := o.HalfEdges.Insert(topology.NewHalfEdge(
		curve,
		geometry.BoundaryFromValues(0, 1),
		start,
		o.GlobalEdges.Insert(topology.NewGlobalEdge(global, global)),
	))

	errs := HalfEdge(edge, cfg)
	assert.True(t, containsErrorType[HalfEdgeSurfaceMismatch](t, errs))
}

func TestCycleNotClosed(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	// Two half-edges that do not connect: the second starts away from
	// the first one's end.
	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	other := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 5, V: 5}, {U: 6, V: 5}, {U: 5, V: 6},
	})

	broken := o.Cycles.Insert(topology.NewCycle(
		[]storage.Handle[topology.HalfEdge]{
			cycle.Get().HalfEdges()[0],
			other.Get().HalfEdges()[1],
		}))

	errs := Cycle(broken, cfg)
	assert.True(t, containsErrorType[CycleNotClosed](t, errs))
}

func TestFaceMissingBoundary(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	empty := o.Cycles.Insert(topology.NewCycle(nil))
	face := o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(empty))))

	errs := Face(face, cfg)
	assert.True(t, containsErrorType[FaceMissingBoundary](t, errs))
}

func TestFaceInvalidInteriorWinding(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	exterior := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 4, V: 0}, {U: 4, V: 4}, {U: 0, V: 4},
	})

	// Interior with the same (counter-clockwise) winding as the
	// exterior.
	interior := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 1, V: 1}, {U: 3, V: 1}, {U: 3, V: 3}, {U: 1, V: 3},
	})

	face := o.Faces.Insert(topology.NewFace(
		o.XYPlane(),
		o.Regions.Insert(topology.NewRegion(exterior, interior))))

	errs := Face(face, cfg)
	assert.True(t, containsErrorType[FaceInvalidInteriorWinding](t, errs))
}

func TestSketchWindingConvention(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	// Exterior clockwise: broken.
	clockwise := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 0, V: 1}, {U: 1, V: 0},
	})
	sketch := o.Sketches.Insert(topology.NewSketch(
		o.Regions.Insert(topology.NewRegion(clockwise))))

	errs := Sketch(sketch, cfg)
	assert.True(t, containsErrorType[SketchClockwiseExterior](t, errs))

	// Interior counter-clockwise: broken.
	exterior := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 4, V: 0}, {U: 4, V: 4}, {U: 0, V: 4},
	})
	interior := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 1, V: 1}, {U: 3, V: 1}, {U: 3, V: 3}, {U: 1, V: 3},
	})
	sketch2 := o.Sketches.Insert(topology.NewSketch(
		o.Regions.Insert(topology.NewRegion(exterior, interior))))

	errs = Sketch(sketch2, cfg)
	assert.True(t,
		containsErrorType[SketchCounterClockwiseInterior](t, errs))
}

func TestSketchMultipleReferences(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})

	// The same cycle handle as exterior of two regions.
	sketch := o.Sketches.Insert(topology.NewSketch(
		o.Regions.Insert(topology.NewRegion(cycle)),
		o.Regions.Insert(topology.NewRegion(cycle)),
	))

	errs := Sketch(sketch, cfg)
	assert.True(t, containsErrorType[MultipleReferencesToCycle](t, errs))

	// A distinct cycle sharing half-edge handles.
	aliased := o.Cycles.Insert(
		topology.NewCycle(cycle.Get().HalfEdges()))
	sketch2 := o.Sketches.Insert(topology.NewSketch(
		o.Regions.Insert(topology.NewRegion(cycle)),
		o.Regions.Insert(topology.NewRegion(aliased)),
	))

	errs = Sketch(sketch2, cfg)
	assert.True(t,
		containsErrorType[MultipleReferencesToHalfEdge](t, errs))
}

func TestShellNotWatertight(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	// A single face cannot be watertight: every global edge is
	// referenced once.
	face := validTriangleFace(o)
	shell := o.Shells.Insert(topology.NewShell(face))

	errs := Shell(shell, cfg)
	assert.True(t, containsErrorType[ShellNotWatertight](t, errs))
}

func TestShellCoincidentEdgesNotIdentical(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	// Two unit squares, one in the xy plane and one in the xz plane.
	// They share the segment from (0,0,0) to (1,0,0) geometrically, but
	// each built its own global edge for it.
	square := []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1},
	}

	face1 := o.Faces.Insert(topology.NewFace(
		o.XYPlane(),
		o.Regions.Insert(topology.NewRegion(
			topology.BuildPolygonCycle(o, o.XYPlane(), square)))))
	face2 := o.Faces.Insert(topology.NewFace(
		o.XZPlane(),
		o.Regions.Insert(topology.NewRegion(
			topology.BuildPolygonCycle(o, o.XZPlane(), square)))))

	shell := o.Shells.Insert(topology.NewShell(face1, face2))

	errs := Shell(shell, cfg)
	assert.True(t,
		containsErrorType[ShellCoincidentEdgesNotIdentical](t, errs))
}

func TestShellIdenticalEdgesNotCoincident(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	// Two far-apart triangles whose edges are forced to share global
	// forms: identical identity, no geometric coincidence.
	near := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})

	farPoints := []math3d.Point2{
		{U: 10, V: 10}, {U: 11, V: 10}, {U: 10, V: 11},
	}
	farCycle := topology.BuildPolygonCycle(o, o.XYPlane(), farPoints)

	// Rebuild the far cycle's half-edges, stealing the near cycle's
	// global forms.
	var stolen []storage.Handle[topology.HalfEdge]
	for i, edge := range farCycle.Get().HalfEdges() {
		e := edge.Get()
		stolen = append(stolen, o.HalfEdges.Insert(topology.NewHalfEdge(
			e.Curve(),
			e.Boundary(),
			e.StartVertex(),
			near.Get().HalfEdges()[i].Get().GlobalForm(),
		)))
	}
	far := o.Cycles.Insert(topology.NewCycle(stolen))

	face1 := o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(near))))
	face2 := o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(far))))

	shell := o.Shells.Insert(topology.NewShell(face1, face2))

	errs := Shell(shell, cfg)
	assert.True(t,
		containsErrorType[ShellIdenticalEdgesNotCoincident](t, errs))
}

func TestValidationReportsAllErrors(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	// A single triangular face as a shell: every global edge count is
	// wrong, and the one watertightness error lists all three edges.
	face := validTriangleFace(o)
	shell := o.Shells.Insert(topology.NewShell(face))

	errs := Shell(shell, cfg)
	require.NotEmpty(t, errs)

	var watertight ShellNotWatertight
	found := false
	for _, err := range errs {
		if e, ok := err.(ShellNotWatertight); ok {
			watertight = e
			found = true
		}
	}
	require.True(t, found)
	assert.Len(t, watertight.Edges, 3)
}

func TestObjectDispatch(t *testing.T) {
	o := topology.NewObjects()
	cfg := DefaultConfig()

	face := validTriangleFace(o)
	assert.Empty(t, Object(face, cfg))

	shell := o.Shells.Insert(topology.NewShell(face))
	assert.NotEmpty(t, Object(shell, cfg))

	assert.Nil(t, Object(42, cfg))
}
