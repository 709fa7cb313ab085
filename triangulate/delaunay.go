// Package triangulate converts faces into triangles: it approximates the
// face boundaries, runs a constrained Delaunay triangulation over the
// boundary points in surface coordinates, keeps the triangles whose
// centroid lies strictly inside the face's polygon, and lifts the result
// back to 3D.
package triangulate

import (
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/robust"
)

// delaunay is an incremental triangulation over a fixed point set. The
// last three points are the corners of a super triangle enclosing all
// input points; triangles touching them are discarded on output.
type delaunay struct {
	points    []math3d.Point2
	super     int // index of the first super-triangle vertex
	triangles []triangle
}

type triangle struct {
	v    [3]int
	dead bool
}

// constrainedDelaunay triangulates the given points and recovers the
// given constraint edges (as index pairs into points). The returned
// triangles are CCW index triples. The result is deterministic for a
// given input order.
func constrainedDelaunay(
	points []math3d.Point2,
	constraints [][2]int,
) [][3]int {
	if len(points) < 3 {
		return nil
	}

	d := newDelaunay(points)
	for i := range points {
		d.insert(i)
	}
	for _, c := range constraints {
		d.recoverConstraint(c[0], c[1])
	}

	return d.collect()
}

func newDelaunay(points []math3d.Point2) *delaunay {
	aabb := pointsAabb(points)
	center := math3d.Point2{
		U: (aabb[0].U + aabb[1].U) / 2,
		V: (aabb[0].V + aabb[1].V) / 2,
	}
	span := math3d.MaxScalar(
		math3d.MaxScalar(aabb[1].U-aabb[0].U, aabb[1].V-aabb[0].V), 1)

	// A super triangle comfortably enclosing every input point.
	const reach = 16
	super := []math3d.Point2{
		{U: center.U - reach*span, V: center.V - reach*span},
		{U: center.U + reach*span, V: center.V - reach*span},
		{U: center.U, V: center.V + reach*span},
	}

	d := &delaunay{
		points: append(append([]math3d.Point2{}, points...), super...),
		super:  len(points),
	}
	d.triangles = []triangle{{
		v: [3]int{d.super, d.super + 1, d.super + 2},
	}}

	return d
}

func pointsAabb(points []math3d.Point2) [2]math3d.Point2 {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min.U = math3d.MinScalar(min.U, p.U)
		min.V = math3d.MinScalar(min.V, p.V)
		max.U = math3d.MaxScalar(max.U, p.U)
		max.V = math3d.MaxScalar(max.V, p.V)
	}

	return [2]math3d.Point2{min, max}
}

func (d *delaunay) orient(a, b, c int) float64 {
	return robust.Orient2D(
		robust.Coord{X: d.points[a].U.F(), Y: d.points[a].V.F()},
		robust.Coord{X: d.points[b].U.F(), Y: d.points[b].V.F()},
		robust.Coord{X: d.points[c].U.F(), Y: d.points[c].V.F()},
	)
}

// inCircumcircle reports whether point p lies inside the circumcircle of
// triangle t. The triangle's corners are taken in CCW order.
func (d *delaunay) inCircumcircle(t triangle, p int) bool {
	a, b, c := t.v[0], t.v[1], t.v[2]
	if d.orient(a, b, c) < 0 {
		b, c = c, b
	}

	pa, pb, pc, pp := d.points[a], d.points[b], d.points[c], d.points[p]

	ax := (pa.U - pp.U).F()
	ay := (pa.V - pp.V).F()
	bx := (pb.U - pp.U).F()
	by := (pb.V - pp.V).F()
	cx := (pc.U - pp.U).F()
	cy := (pc.V - pp.V).F()

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	return det > 0
}

// insert adds point p via Bowyer-Watson: remove every triangle whose
// circumcircle contains p, then fan the resulting cavity from p. All
// triangles are kept in CCW order, so the cavity boundary consists of the
// directed edges whose reverse does not appear among the removed
// triangles.
func (d *delaunay) insert(p int) {
	type edge struct{ a, b int }

	var bad []int
	directed := make(map[edge]struct{})
	for i, t := range d.triangles {
		if t.dead || !d.inCircumcircle(t, p) {
			continue
		}
		bad = append(bad, i)

		a, b, c := t.v[0], t.v[1], t.v[2]
		if d.orient(a, b, c) < 0 {
			b, c = c, b
		}
		directed[edge{a, b}] = struct{}{}
		directed[edge{b, c}] = struct{}{}
		directed[edge{c, a}] = struct{}{}
	}

	for _, i := range bad {
		d.triangles[i].dead = true
	}

	// Walk the bad triangles again, in order, so that new triangles are
	// appended deterministically.
	for _, i := range bad {
		t := d.triangles[i]
		a, b, c := t.v[0], t.v[1], t.v[2]
		if d.orient(a, b, c) < 0 {
			b, c = c, b
		}
		for _, e := range []edge{{a, b}, {b, c}, {c, a}} {
			if _, interior := directed[edge{e.b, e.a}]; interior {
				continue
			}
			if e.a == p || e.b == p {
				continue
			}
			d.triangles = append(d.triangles, triangle{v: [3]int{e.a, e.b, p}})
		}
	}
}

// edgeExists reports whether (a, b) is an edge of a live triangle.
func (d *delaunay) edgeExists(a, b int) bool {
	for _, t := range d.triangles {
		if t.dead {
			continue
		}
		for i := 0; i < 3; i++ {
			u, v := t.v[i], t.v[(i+1)%3]
			if (u == a && v == b) || (u == b && v == a) {
				return true
			}
		}
	}

	return false
}

// trianglesSharing returns the indices of live triangles containing edge
// (a, b).
func (d *delaunay) trianglesSharing(a, b int) []int {
	var sharing []int
	for i, t := range d.triangles {
		if t.dead {
			continue
		}
		hasA, hasB := false, false
		for _, v := range t.v {
			hasA = hasA || v == a
			hasB = hasB || v == b
		}
		if hasA && hasB {
			sharing = append(sharing, i)
		}
	}

	return sharing
}

func third(t triangle, a, b int) int {
	for _, v := range t.v {
		if v != a && v != b {
			return v
		}
	}

	return -1
}

// properIntersect reports whether segments (a, b) and (c, e) cross
// strictly, endpoints excluded.
func (d *delaunay) properIntersect(a, b, c, e int) bool {
	o1 := d.orient(a, b, c)
	o2 := d.orient(a, b, e)
	o3 := d.orient(c, e, a)
	o4 := d.orient(c, e, b)

	return ((o1 > 0) != (o2 > 0)) && o1 != 0 && o2 != 0 &&
		((o3 > 0) != (o4 > 0)) && o3 != 0 && o4 != 0
}

// recoverConstraint flips edges until (a, b) is an edge of the
// triangulation. Constraints that already exist, or that run through
// intermediate collinear vertices, are left as they are.
func (d *delaunay) recoverConstraint(a, b int) {
	if a == b {
		return
	}

	guard := 16 * len(d.points)
	for !d.edgeExists(a, b) && guard > 0 {
		guard--

		if !d.flipSomeCrossingEdge(a, b) {
			return
		}
	}
}

// flipSomeCrossingEdge finds an edge crossing segment (a, b) whose
// containing quad is convex, and flips it. Returns false if no crossing
// edge can be flipped.
func (d *delaunay) flipSomeCrossingEdge(a, b int) bool {
	for _, t := range d.triangles {
		if t.dead {
			continue
		}
		for i := 0; i < 3; i++ {
			u, v := t.v[i], t.v[(i+1)%3]
			if u == a || u == b || v == a || v == b {
				continue
			}
			if !d.properIntersect(a, b, u, v) {
				continue
			}
			if d.flip(u, v) {
				return true
			}
		}
	}

	return false
}

// flip replaces the two triangles sharing edge (u, v) with the two
// triangles on the quad's other diagonal. Returns false if the edge is
// not shared by exactly two triangles or the quad is not strictly convex.
func (d *delaunay) flip(u, v int) bool {
	sharing := d.trianglesSharing(u, v)
	if len(sharing) != 2 {
		return false
	}

	e := third(d.triangles[sharing[0]], u, v)
	f := third(d.triangles[sharing[1]], u, v)

	// The flip is only valid if u and v lie strictly on opposite sides
	// of the new diagonal.
	oe := d.orient(e, f, u)
	of := d.orient(e, f, v)
	if oe == 0 || of == 0 || (oe > 0) == (of > 0) {
		return false
	}

	d.triangles[sharing[0]].dead = true
	d.triangles[sharing[1]].dead = true

	for _, corners := range [][3]int{{e, f, u}, {e, v, f}} {
		if d.orient(corners[0], corners[1], corners[2]) < 0 {
			corners[1], corners[2] = corners[2], corners[1]
		}
		d.triangles = append(d.triangles, triangle{v: corners})
	}

	return true
}

// collect returns the live triangles not touching the super triangle, in
// CCW order.
func (d *delaunay) collect() [][3]int {
	var out [][3]int
	for _, t := range d.triangles {
		if t.dead {
			continue
		}
		if t.v[0] >= d.super || t.v[1] >= d.super || t.v[2] >= d.super {
			continue
		}

		a, b, c := t.v[0], t.v[1], t.v[2]
		orientation := d.orient(a, b, c)
		if orientation == 0 {
			continue
		}
		if orientation < 0 {
			b, c = c, b
		}
		out = append(out, [3]int{a, b, c})
	}

	return out
}
