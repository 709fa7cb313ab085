package triangulate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/intersect"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// triangleArea2 returns the doubled signed area of a 2D triangle.
func triangleArea2(t math3d.Triangle2) float64 {
	a, b, c := t.Points[0], t.Points[1], t.Points[2]

	return ((b.U-a.U)*(c.V-a.V) - (b.V-a.V)*(c.U-a.U)).F()
}

// triangleArea3 returns the area of a 3D triangle.
func triangleArea3(t math3d.Triangle3) float64 {
	return t.Normal().Magnitude().F() / 2
}

func buildFace(
	t *testing.T,
	o *topology.Objects,
	exterior []math3d.Point2,
	interiors ...[]math3d.Point2,
) storage.Handle[topology.Face] {
	t.Helper()

	ext := topology.BuildPolygonCycle(o, o.XYPlane(), exterior)
	var ints []storage.Handle[topology.Cycle]
	for _, interior := range interiors {
		ints = append(ints,
			topology.BuildPolygonCycle(o, o.XYPlane(), interior))
	}

	return o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(ext, ints...))))
}

func TestTriangulateSquare(t *testing.T) {
	o := topology.NewObjects()
	face := buildFace(t, o, []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 1, V: 1}, {U: 0, V: 1},
	})

	triangles := Face(face, approx.MustTolerance(0.01), approx.NewCache(), nil)

	require.Len(t, triangles, 2)

	total := 0.0
	for _, triangle := range triangles {
		total += triangleArea3(triangle.Inner)
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}

func TestTriangulateSquareWithHole(t *testing.T) {
	o := topology.NewObjects()
	face := buildFace(t, o,
		[]math3d.Point2{
			{U: 0, V: 0}, {U: 4, V: 0}, {U: 4, V: 4}, {U: 0, V: 4},
		},
		[]math3d.Point2{
			{U: 1, V: 1}, {U: 1, V: 3}, {U: 3, V: 3}, {U: 3, V: 1},
		},
	)

	triangles := Face(face, approx.MustTolerance(0.01), approx.NewCache(), nil)
	require.NotEmpty(t, triangles)

	total := 0.0
	for _, triangle := range triangles {
		total += triangleArea3(triangle.Inner)
	}
	assert.InDelta(t, 12.0, total, 1e-12, "16 minus the 4 of the hole")
}

func TestTriangulationCentroidsAreInside(t *testing.T) {
	o := topology.NewObjects()
	face := buildFace(t, o,
		[]math3d.Point2{
			{U: 0, V: 0}, {U: 4, V: 0}, {U: 4, V: 4}, {U: 0, V: 4},
		},
		[]math3d.Point2{
			{U: 1, V: 1}, {U: 1, V: 3}, {U: 3, V: 3}, {U: 3, V: 1},
		},
	)

	var debug DebugFace
	triangles := Face(
		face, approx.MustTolerance(0.01), approx.NewCache(), &debug)

	polygon := intersect.NewPolygon(
		[]math3d.Point2{
			{U: 0, V: 0}, {U: 4, V: 0}, {U: 4, V: 4}, {U: 0, V: 4},
		},
		[]math3d.Point2{
			{U: 1, V: 1}, {U: 1, V: 3}, {U: 3, V: 3}, {U: 3, V: 1},
		},
	)

	for _, triangle := range triangles {
		centroid2 := math3d.Point2{
			U: (triangle.Inner.Points[0].X +
				triangle.Inner.Points[1].X +
				triangle.Inner.Points[2].X) / 3,
			V: (triangle.Inner.Points[0].Y +
				triangle.Inner.Points[1].Y +
				triangle.Inner.Points[2].Y) / 3,
		}
		assert.True(t, polygon.ContainsPointStrictly(centroid2))
	}

	// Some probes were rejected: the hole produced candidate triangles
	// that the containment filter dropped.
	rejected := 0
	for _, check := range debug.ContainmentChecks {
		if !check.Inside {
			rejected++
		}
	}
	assert.Positive(t, rejected)
}

func TestTriangulateCircleFace(t *testing.T) {
	o := topology.NewObjects()

	cycle := topology.BuildCircleCycle(o, o.XYPlane(), math3d.Point2{}, 1)
	face := o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(cycle))))

	triangles := Face(face, approx.MustTolerance(0.375), approx.NewCache(), nil)

	// Four boundary points triangulate into two triangles covering the
	// inscribed square.
	require.Len(t, triangles, 2)

	total := 0.0
	for _, triangle := range triangles {
		total += triangleArea3(triangle.Inner)
	}
	assert.InDelta(t, 2.0, total, 1e-12)
}

func TestTriangulationOutputIsCcw(t *testing.T) {
	o := topology.NewObjects()
	face := buildFace(t, o, []math3d.Point2{
		{U: 0, V: 0}, {U: 2, V: 0}, {U: 0, V: 2},
	})

	triangles := Face(face, approx.MustTolerance(0.01), approx.NewCache(), nil)
	require.NotEmpty(t, triangles)

	for _, triangle := range triangles {
		t2 := math3d.Triangle2{Points: [3]math3d.Point2{
			{U: triangle.Inner.Points[0].X, V: triangle.Inner.Points[0].Y},
			{U: triangle.Inner.Points[1].X, V: triangle.Inner.Points[1].Y},
			{U: triangle.Inner.Points[2].X, V: triangle.Inner.Points[2].Y},
		}}
		assert.Positive(t, triangleArea2(t2))
	}
}

func TestTriangulationFollowsExteriorWinding(t *testing.T) {
	o := topology.NewObjects()

	ccwCycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 2, V: 0}, {U: 0, V: 2},
	})
	cwCycle := topology.ReverseCycle(o, ccwCycle)
	face := o.Faces.Insert(topology.NewFace(
		o.XYPlane(), o.Regions.Insert(topology.NewRegion(cwCycle))))

	triangles := Face(face, approx.MustTolerance(0.01), approx.NewCache(), nil)
	require.NotEmpty(t, triangles)

	// A clockwise exterior produces clockwise triangles.
	for _, triangle := range triangles {
		t2 := math3d.Triangle2{Points: [3]math3d.Point2{
			{U: triangle.Inner.Points[0].X, V: triangle.Inner.Points[0].Y},
			{U: triangle.Inner.Points[1].X, V: triangle.Inner.Points[1].Y},
			{U: triangle.Inner.Points[2].X, V: triangle.Inner.Points[2].Y},
		}}
		assert.Negative(t, triangleArea2(t2))
	}
}

func TestTriangleColorAndInternalFlag(t *testing.T) {
	o := topology.NewObjects()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	region := o.Regions.Insert(topology.NewRegion(cycle))

	color := topology.Color{1, 2, 3, 255}
	face := o.Faces.Insert(topology.NewFaceWithColor(
		o.XYPlane(), region, color).AsInternal())

	triangles := Face(face, approx.MustTolerance(0.01), approx.NewCache(), nil)
	require.NotEmpty(t, triangles)
	for _, triangle := range triangles {
		assert.Equal(t, color, triangle.Color)
		assert.True(t, triangle.IsInternal)
	}
}
