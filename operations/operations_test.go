package operations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/sweep"
	"github.com/sksmith/brep/topology"
)

func triangleSolid(o *topology.Objects) storage.Handle[topology.Solid] {
	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	sketch := o.Sketches.Insert(topology.NewSketch(
		o.Regions.Insert(topology.NewRegion(cycle))))

	return sweep.Sketch(o, sketch, o.XYPlane(), nil, math3d.Vector3{Z: 1})
}

func TestReplaceHalfEdgeInCycle(t *testing.T) {
	o := topology.NewObjects()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	edges := cycle.Get().HalfEdges()

	replacement := o.HalfEdges.Insert(*edges[0].Get())

	result := ReplaceHalfEdgeInCycle(o, cycle, edges[0], replacement)
	require.True(t, result.Updated)
	assert.NotEqual(t, cycle, result.Object)
	assert.Equal(t, replacement, result.Object.Get().HalfEdges()[0])
	assert.Equal(t, edges[1], result.Object.Get().HalfEdges()[1])
}

func TestReplaceMatchesByIdentityNotEquality(t *testing.T) {
	o := topology.NewObjects()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	edges := cycle.Get().HalfEdges()

	// A structurally equal copy of the first half-edge. Replacing it
	// must not touch the cycle: matching goes by handle identity.
	doppelganger := o.HalfEdges.Insert(*edges[0].Get())
	replacement := o.HalfEdges.Insert(*edges[1].Get())

	result := ReplaceHalfEdgeInCycle(o, cycle, doppelganger, replacement)
	assert.False(t, result.Updated)
	assert.Equal(t, cycle, result.Object)
}

func TestReplaceCurveInSolid(t *testing.T) {
	o := topology.NewObjects()

	solid := triangleSolid(o)

	// Pick a curve out of the solid and replace it with a copy.
	shell := solid.Get().Shells().Handles()[0]
	faces := shell.Get().Faces().Handles()
	victim := faces[0].Get().Region().Get().Exterior().Get().
		HalfEdges()[0].Get().Curve()

	replacement := o.Curves.Insert(*victim.Get())

	result := ReplaceCurveInSolid(o, solid, victim, replacement)
	require.True(t, result.Updated)
	assert.NotEqual(t, solid, result.Object)

	// The untouched faces are aliased, not rebuilt.
	newFaces := result.Object.Get().Shells().Handles()[0].
		Get().Faces().Handles()
	require.Len(t, newFaces, len(faces))

	rebuilt := 0
	for i := range faces {
		if newFaces[i] != faces[i] {
			rebuilt++
		}
	}
	assert.Equal(t, 1, rebuilt)

	// Replacing a curve that is not in the solid changes nothing.
	unrelated := o.Curves.Insert(topology.NewCurve(
		o.XYPlane(),
		geometry.LineFromPoints2(
			math3d.Point2{U: 7, V: 7}, math3d.Point2{U: 8, V: 7}),
		o.GlobalCurves.Insert(topology.GlobalCurve{}),
	))
	unchanged := ReplaceCurveInSolid(o, result.Object, unrelated, replacement)
	assert.False(t, unchanged.Updated)
	assert.Equal(t, result.Object, unchanged.Object)
}

func TestReplaceCurveInSketch(t *testing.T) {
	o := topology.NewObjects()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	sketch := o.Sketches.Insert(topology.NewSketch(
		o.Regions.Insert(topology.NewRegion(cycle))))

	victim := cycle.Get().HalfEdges()[2].Get().Curve()
	replacement := o.Curves.Insert(*victim.Get())

	result := ReplaceCurveInSketch(o, sketch, victim, replacement)
	require.True(t, result.Updated)

	got := result.Object.Get().Regions().Handles()[0].Get().
		Exterior().Get().HalfEdges()[2].Get().Curve()
	assert.Equal(t, replacement, got)
}

func TestSelectors(t *testing.T) {
	o := topology.NewObjects()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	edges := cycle.Get().HalfEdges()

	tests := []struct {
		name     string
		selector Selector[topology.HalfEdge]
		want     []int
	}{
		{"First", First[topology.HalfEdge]{}, []int{0}},
		{"Nth", Nth[topology.HalfEdge]{N: 2}, []int{2}},
		{"NthOutOfRange", Nth[topology.HalfEdge]{N: 9}, nil},
		{"All", All[topology.HalfEdge]{}, []int{0, 1, 2}},
		{"ByHandle", ByHandle[topology.HalfEdge]{Handle: edges[1]}, []int{1}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.selector.Select(edges))
		})
	}
}

func TestUpdateHalfEdgesInCycle(t *testing.T) {
	o := topology.NewObjects()

	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
	})
	original := cycle.Get().HalfEdges()[1]
	replacement := o.HalfEdges.Insert(*original.Get())

	result := UpdateHalfEdgesInCycle(o, cycle,
		Nth[topology.HalfEdge]{N: 1},
		func(edge storage.Handle[topology.HalfEdge]) storage.Handle[topology.HalfEdge] {
			return replacement
		})

	require.True(t, result.Updated)
	assert.Equal(t, replacement, result.Object.Get().HalfEdges()[1])

	// An update function returning its input changes nothing.
	identity := UpdateHalfEdgesInCycle(o, cycle,
		All[topology.HalfEdge]{},
		func(edge storage.Handle[topology.HalfEdge]) storage.Handle[topology.HalfEdge] {
			return edge
		})
	assert.False(t, identity.Updated)
	assert.Equal(t, cycle, identity.Object)
}

func TestUpdateFacesInShell(t *testing.T) {
	o := topology.NewObjects()

	solid := triangleSolid(o)
	shell := solid.Get().Shells().Handles()[0]
	faces := shell.Get().Faces().Handles()

	recolored := o.Faces.Insert(topology.NewFaceWithColor(
		faces[0].Get().Surface(),
		faces[0].Get().Region(),
		topology.Color{9, 9, 9, 255},
	))

	result := UpdateFacesInShell(o, shell,
		ByHandle[topology.Face]{Handle: faces[0]},
		func(storage.Handle[topology.Face]) storage.Handle[topology.Face] {
			return recolored
		})

	require.True(t, result.Updated)
	assert.Equal(t, recolored, result.Object.Get().Faces().Handles()[0])
	assert.Equal(t, faces[1], result.Object.Get().Faces().Handles()[1])
}
