package approx

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// ApproxPoint is one point of a curve approximation: its position on the
// curve, its position in the coordinates of the surface the curve is
// defined in, and its position in model space.
//
// The surface coordinates are carried through from the curve's path
// rather than recovered by projecting the model-space point: projection
// would wrap around the seam of a closed surface and collapse a boundary
// that spans the full parameter range.
type ApproxPoint struct {
	LocalCurve math3d.Point1
	Surface    math3d.Point2
	Global     math3d.Point3
}

// HalfEdgeApprox approximates a half-edge: the start vertex's point
// followed by the sampled interior points, in traversal order. The end
// vertex is deliberately excluded, so that chained half-edge
// approximations concatenate without duplicate points.
type HalfEdgeApprox struct {
	Points []ApproxPoint
}

// Cache reuses interior approximations between the half-edges that share
// a global edge. The second half-edge of a pair receives the exact points
// computed for the first (re-oriented to its own traversal direction),
// which is what makes the meshes of adjacent faces meet exactly.
//
// A cache is valid for a single tolerance; use one cache per
// approximation run.
type Cache struct {
	edges map[storage.ObjectID][]ApproxPoint
}

// NewCache constructs an empty cache.
func NewCache() *Cache {
	return &Cache{edges: make(map[storage.ObjectID][]ApproxPoint)}
}

// HalfEdge approximates a half-edge at the given tolerance.
func (c *Cache) HalfEdge(
	edge storage.Handle[topology.HalfEdge],
	tolerance Tolerance,
) HalfEdgeApprox {
	e := edge.Get()

	start := ApproxPoint{
		LocalCurve: e.Boundary().Inner[0],
		Surface:    e.StartVertex().Get().Position(),
		Global:     e.StartVertex().Get().GlobalForm().Get().Position(),
	}

	points := make([]ApproxPoint, 0, 1)
	points = append(points, start)
	points = append(points, c.interior(edge, tolerance)...)

	return HalfEdgeApprox{Points: points}
}

// interior returns the interior points of a half-edge approximation,
// consulting the cache first.
func (c *Cache) interior(
	edge storage.Handle[topology.HalfEdge],
	tolerance Tolerance,
) []ApproxPoint {
	own := approxInterior(edge, tolerance)
	if len(own) == 0 {
		return own
	}

	key := edge.Get().GlobalForm().ID()
	cached, ok := c.edges[key]
	if !ok {
		c.edges[key] = own

		return own
	}

	// The twin half-edge was approximated first. Reuse its exact global
	// points, oriented to this half-edge's traversal direction; the
	// local parameters stay our own, since the twins parameterize their
	// shared curve differently.
	oriented := cached
	first := own[0].Global
	if first.DistanceTo(cached[0].Global) >
		first.DistanceTo(cached[len(cached)-1].Global) {
		oriented = make([]ApproxPoint, len(cached))
		for i, p := range cached {
			oriented[len(cached)-1-i] = p
		}
	}

	merged := make([]ApproxPoint, len(own))
	for i := range own {
		merged[i] = ApproxPoint{
			LocalCurve: own[i].LocalCurve,
			Surface:    own[i].Surface,
			Global:     oriented[i].Global,
		}
	}

	return merged
}

// approxInterior computes the interior points of a half-edge
// approximation from scratch.
//
// The sampled 3D points are evaluated on the curve's global form (not by
// composing path and surface), so that the same circle sampled through
// different local parameterizations yields the same model-space points.
func approxInterior(
	edge storage.Handle[topology.HalfEdge],
	tolerance Tolerance,
) []ApproxPoint {
	e := edge.Get()
	curve := e.Curve().Get()
	surface := curve.Surface().Get()

	switch path := curve.Path().(type) {
	case geometry.Circle2:
		global, ok := surface.PathToGlobal(path).(geometry.Circle3)
		if !ok {
			return nil
		}

		params := ParamsForCircle(global.Radius(), tolerance)

		var points []ApproxPoint
		for _, t := range params.Points(e.Boundary()) {
			points = append(points, ApproxPoint{
				LocalCurve: t,
				Surface:    path.PointFromPath(t),
				Global:     global.PointFromPath(t),
			})
		}

		return points

	case geometry.Line2:
		circle, ok := surface.U.(geometry.Circle3)
		if !ok || path.Direction.U == 0 {
			// A line on a plane, or a line running straight along the
			// sweep direction of a curved surface, is straight in 3D.
			// No interior samples needed.
			return nil
		}

		// The line crosses the curved direction of a swept surface: the
		// 3D curve is an arc (possibly a helix). Sample the underlying
		// circle at the tolerance and map the samples back to the
		// line's parameter.
		params := ParamsForCircle(circle.Radius(), tolerance)

		boundary := e.Boundary()
		angleBoundary := geometry.BoundaryFromValues(
			path.Origin.U+path.Direction.U*boundary.Inner[0].T,
			path.Origin.U+path.Direction.U*boundary.Inner[1].T,
		)

		var points []ApproxPoint
		for _, angle := range params.Points(angleBoundary) {
			t := (angle.T - path.Origin.U) / path.Direction.U
			v := path.Origin.V + path.Direction.V*t

			points = append(points, ApproxPoint{
				LocalCurve: math3d.Point1{T: t},
				Surface:    path.PointFromPath(math3d.Point1{T: t}),
				Global: circle.PointFromPath(angle).
					Add(surface.V.Scale(v)),
			})
		}

		return points

	default:
		panic("approx: unknown surface path kind")
	}
}
