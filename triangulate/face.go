package triangulate

import (
	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/intersect"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// Triangle is one output triangle of a face triangulation, carrying the
// face's color and internal flag.
type Triangle struct {
	Inner      math3d.Triangle3
	Color      topology.Color
	IsInternal bool
}

// DefaultColor is applied to faces without an explicit color.
var DefaultColor = topology.Color{255, 0, 0, 255}

// ContainmentCheck records one centroid-in-polygon probe, for
// diagnostics.
type ContainmentCheck struct {
	Centroid math3d.Point2
	Inside   bool
}

// DebugFace collects per-face diagnostics of a triangulation run.
type DebugFace struct {
	BoundaryPoints    []math3d.Point3
	ContainmentChecks []ContainmentCheck
}

// Face triangulates a face at the given tolerance. The cache must be
// shared across all faces of a shell, so that shared edges reuse the same
// boundary points. Pass a non-nil debug to collect diagnostics.
func Face(
	face storage.Handle[topology.Face],
	tolerance approx.Tolerance,
	cache *approx.Cache,
	debug *DebugFace,
) []Triangle {
	faceApprox := cache.Face(face, tolerance)

	// Boundary points in surface coordinates, with the mapping back to
	// the exact 3D points they came from. Coincident surface points (at
	// cycle joins) unify on the first 3D point seen.
	lift := make(map[math3d.Point2]math3d.Point3)

	project := func(cycle approx.CycleApprox) []math3d.Point2 {
		points := make([]math3d.Point2, 0, len(cycle.Points))
		for _, p := range cycle.Points {
			p2 := p.Surface
			if _, seen := lift[p2]; !seen {
				lift[p2] = p.Global
			}
			points = append(points, p2)
			if debug != nil {
				debug.BoundaryPoints = append(debug.BoundaryPoints, p.Global)
			}
		}

		return points
	}

	exterior := project(faceApprox.Exterior)
	interiors := make([][]math3d.Point2, 0, len(faceApprox.Interiors))
	for _, interior := range faceApprox.Interiors {
		interiors = append(interiors, project(interior))
	}

	polygon := intersect.NewPolygon(exterior, interiors...)

	// Unique triangulation points in boundary traversal order, plus the
	// constraint edges between consecutive boundary points.
	var points []math3d.Point2
	index := make(map[math3d.Point2]int)
	indexOf := func(p math3d.Point2) int {
		if i, ok := index[p]; ok {
			return i
		}
		index[p] = len(points)
		points = append(points, p)

		return index[p]
	}

	var constraints [][2]int
	addLoop := func(loop []math3d.Point2) {
		for i := range loop {
			a := indexOf(loop[i])
			b := indexOf(loop[(i+1)%len(loop)])
			if a != b {
				constraints = append(constraints, [2]int{a, b})
			}
		}
	}
	addLoop(exterior)
	for _, interior := range interiors {
		addLoop(interior)
	}

	color, ok := face.Get().Color()
	if !ok {
		color = DefaultColor
	}
	internal := face.Get().IsInternal()

	// Triangle orientation follows the exterior's winding: a
	// counter-clockwise exterior produces counter-clockwise triangles,
	// a clockwise one (a face oriented against its surface normal)
	// clockwise triangles.
	ccw := loopArea(exterior) >= 0

	var out []Triangle
	for _, t := range constrainedDelaunay(points, constraints) {
		if !ccw {
			t[1], t[2] = t[2], t[1]
		}

		t2 := math3d.Triangle2{Points: [3]math3d.Point2{
			points[t[0]], points[t[1]], points[t[2]],
		}}

		centroid := t2.Centroid()
		inside := polygon.ContainsPointStrictly(centroid)
		if debug != nil {
			debug.ContainmentChecks = append(debug.ContainmentChecks,
				ContainmentCheck{Centroid: centroid, Inside: inside})
		}
		if !inside {
			continue
		}

		out = append(out, Triangle{
			Inner: math3d.Triangle3{Points: [3]math3d.Point3{
				lift[t2.Points[0]],
				lift[t2.Points[1]],
				lift[t2.Points[2]],
			}},
			Color:      color,
			IsInternal: internal,
		})
	}

	return out
}

// loopArea returns the doubled signed area of a closed 2D loop.
func loopArea(points []math3d.Point2) float64 {
	var area math3d.Scalar
	for i := range points {
		a := points[i]
		b := points[(i+1)%len(points)]
		area += a.U*b.V - b.U*a.V
	}

	return area.F()
}
