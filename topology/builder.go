package topology

import (
	"errors"
	"fmt"

	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
)

// Construction errors. These are geometric impossibilities or precondition
// violations; the builders panic with them (wrapped) at the construction
// site, since callers are expected to validate inputs first.
var (
	ErrPolygonTooFewPoints = errors.New("polygon needs at least 3 points")
	ErrArcRadiusTooSmall   = errors.New(
		"arc radius is smaller than half the distance between its endpoints")
)

// BuildPolygonCycle constructs a cycle of line half-edges through the
// given points on a surface, in order, closing back to the first point.
// Consecutive half-edges share their surface vertices by identity, and
// every corner resolves to a single global vertex.
func BuildPolygonCycle(
	o *Objects,
	surface storage.Handle[geometry.Surface],
	points []math3d.Point2,
) storage.Handle[Cycle] {
	if len(points) < 3 {
		panic(fmt.Errorf("%w: got %d", ErrPolygonTooFewPoints, len(points)))
	}

	vertices := make([]storage.Handle[SurfaceVertex], len(points))
	for i, p := range points {
		global := o.GlobalVertices.Insert(
			NewGlobalVertex(surface.Get().PointFromSurface(p)))
		vertices[i] = o.SurfaceVertices.Insert(
			NewSurfaceVertex(p, surface, global))
	}

	halfEdges := make([]storage.Handle[HalfEdge], len(points))
	for i := range points {
		j := (i + 1) % len(points)
		halfEdges[i] = buildLineHalfEdge(o, surface, vertices[i], vertices[j])
	}

	return o.Cycles.Insert(NewCycle(halfEdges))
}

// buildLineHalfEdge constructs a half-edge running along a straight line
// from one surface vertex to another, with the line parameterized so that
// the edge covers [0, 1].
func buildLineHalfEdge(
	o *Objects,
	surface storage.Handle[geometry.Surface],
	from, to storage.Handle[SurfaceVertex],
) storage.Handle[HalfEdge] {
	path := geometry.LineFromPoints2(
		from.Get().Position(), to.Get().Position())
	curve := o.Curves.Insert(NewCurve(
		surface, path, o.GlobalCurves.Insert(GlobalCurve{})))
	global := o.GlobalEdges.Insert(NewGlobalEdge(
		from.Get().GlobalForm(), to.Get().GlobalForm()))

	return o.HalfEdges.Insert(NewHalfEdge(
		curve, geometry.BoundaryFromValues(0, 1), from, global))
}

// BuildCircleCycle constructs a cycle consisting of a single half-edge
// covering a full circle, traversed counter-clockwise. The start vertex
// sits at angle zero.
func BuildCircleCycle(
	o *Objects,
	surface storage.Handle[geometry.Surface],
	center math3d.Point2,
	radius math3d.Scalar,
) storage.Handle[Cycle] {
	path := geometry.CircleFromCenterAndRadius(center, radius)
	curve := o.Curves.Insert(NewCurve(
		surface, path, o.GlobalCurves.Insert(GlobalCurve{})))

	start := path.PointFromPath(math3d.Point1{})
	global := o.GlobalVertices.Insert(
		NewGlobalVertex(surface.Get().PointFromSurface(start)))
	vertex := o.SurfaceVertices.Insert(
		NewSurfaceVertex(start, surface, global))

	edge := o.HalfEdges.Insert(NewHalfEdge(
		curve,
		geometry.BoundaryFromValues(0, math3d.Tau),
		vertex,
		o.GlobalEdges.Insert(NewGlobalEdge(global, global)),
	))

	return o.Cycles.Insert(NewCycle([]storage.Handle[HalfEdge]{edge}))
}

// BuildArcHalfEdge constructs a half-edge running along a circular arc
// from one surface vertex to another. A positive radius traverses the
// arc counter-clockwise, a negative radius clockwise. Panics if the
// absolute radius is smaller than half the chord, which makes the arc
// geometrically impossible.
func BuildArcHalfEdge(
	o *Objects,
	surface storage.Handle[geometry.Surface],
	from, to storage.Handle[SurfaceVertex],
	radius math3d.Scalar,
) storage.Handle[HalfEdge] {
	a := from.Get().Position()
	b := to.Get().Position()

	chord := b.Sub(a)
	halfChord := chord.Magnitude() / 2
	if radius.Abs() < halfChord {
		panic(fmt.Errorf("%w: radius %v, chord %v",
			ErrArcRadiusTooSmall, radius, halfChord*2))
	}

	// Center is offset from the chord midpoint along the perpendicular;
	// the side depends on the sign of the radius.
	midpoint := a.Add(chord.Scale(0.5))
	perpendicular := math3d.Vector2{U: -chord.V, V: chord.U}
	offset := (radius*radius - halfChord*halfChord).Sqrt()
	if radius < 0 {
		offset = -offset
	}
	center := midpoint.Add(
		perpendicular.Scale(offset / chord.Magnitude()))

	path := geometry.CircleFromCenterAndRadius(center, radius.Abs())
	startAngle := path.ProjectPoint(a)
	endAngle := path.ProjectPoint(b)

	// Orient the boundary so traversal matches the radius sign.
	if radius > 0 && endAngle.T < startAngle.T {
		endAngle.T += math3d.Tau
	}
	if radius < 0 && endAngle.T > startAngle.T {
		endAngle.T -= math3d.Tau
	}

	curve := o.Curves.Insert(NewCurve(
		surface, path, o.GlobalCurves.Insert(GlobalCurve{})))
	global := o.GlobalEdges.Insert(NewGlobalEdge(
		from.Get().GlobalForm(), to.Get().GlobalForm()))

	return o.HalfEdges.Insert(NewHalfEdge(
		curve,
		geometry.CurveBoundary{Inner: [2]math3d.Point1{startAngle, endAngle}},
		from,
		global,
	))
}

// ReverseCycle constructs the cycle traversing the same edges in the
// opposite direction. Each new half-edge shares its curve and global form
// with the original, satisfying the rule that geometrically equivalent
// half-edges of opposite direction have identical global forms.
func ReverseCycle(
	o *Objects,
	cycle storage.Handle[Cycle],
) storage.Handle[Cycle] {
	edges := cycle.Get().HalfEdges()

	reversed := make([]storage.Handle[HalfEdge], 0, len(edges))
	for i := len(edges) - 1; i >= 0; i-- {
		edge := edges[i].Get()

		// The reversed edge starts where the original ends: at the start
		// vertex of the original's successor.
		endVertex := edges[(i+1)%len(edges)].Get().StartVertex()

		reversed = append(reversed, o.HalfEdges.Insert(NewHalfEdge(
			edge.Curve(),
			edge.Boundary().Reverse(),
			endVertex,
			edge.GlobalForm(),
		)))
	}

	return o.Cycles.Insert(NewCycle(reversed))
}

// ReverseRegion constructs the region with all cycles reversed.
func ReverseRegion(
	o *Objects,
	region storage.Handle[Region],
) storage.Handle[Region] {
	r := region.Get()

	interiors := make([]storage.Handle[Cycle], 0, r.Interiors().Len())
	for _, interior := range r.Interiors().Handles() {
		interiors = append(interiors, ReverseCycle(o, interior))
	}

	return o.Regions.Insert(
		NewRegion(ReverseCycle(o, r.Exterior()), interiors...))
}
