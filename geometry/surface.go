package geometry

import "github.com/sksmith/brep/math3d"

// Surface is a surface in 3D space, defined by sweeping a global path U
// along a vector V. A plane is a swept line; sweeping a circle yields a
// cylinder. Surface coordinates are (u, v): u is the parameter on the
// swept path, v the distance along the sweep vector.
type Surface struct {
	U GlobalPath
	V math3d.Vector3
}

// Plane builds the plane through origin spanned by two vectors. The
// u-axis follows uAxis, the v-axis vAxis.
func Plane(origin math3d.Point3, uAxis, vAxis math3d.Vector3) Surface {
	return Surface{
		U: Line3{Origin: origin, Direction: uAxis},
		V: vAxis,
	}
}

// XYPlane returns the canonical xy plane (normal +z).
func XYPlane() Surface {
	return Plane(math3d.Point3{}, math3d.Vector3{X: 1}, math3d.Vector3{Y: 1})
}

// XZPlane returns the canonical xz plane (normal -y).
func XZPlane() Surface {
	return Plane(math3d.Point3{}, math3d.Vector3{X: 1}, math3d.Vector3{Z: 1})
}

// YZPlane returns the canonical yz plane (normal +x).
func YZPlane() Surface {
	return Plane(math3d.Point3{}, math3d.Vector3{Y: 1}, math3d.Vector3{Z: 1})
}

// PointFromSurface converts a point in surface coordinates to model space.
func (s Surface) PointFromSurface(p math3d.Point2) math3d.Point3 {
	return s.U.PointFromPath(math3d.Point1{T: p.U}).Add(s.V.Scale(p.V))
}

// ProjectGlobal converts a model-space point on the surface to surface
// coordinates. For points off the surface, the result is the coordinates
// of a nearby surface point; callers that care validate the round trip.
func (s Surface) ProjectGlobal(p math3d.Point3) math3d.Point2 {
	switch u := s.U.(type) {
	case Line3:
		// Solve w = u*du + v*dv (+ s*n) with the triple-product form of
		// Cramer's rule, n = du x dv.
		w := p.Sub(u.Origin)
		n := u.Direction.Cross(s.V)
		denom := n.Dot(n)

		return math3d.Point2{
			U: w.Cross(s.V).Dot(n) / denom,
			V: u.Direction.Cross(w).Dot(n) / denom,
		}
	case Circle3:
		// Split off the sweep component via the circle's plane normal,
		// then project the remainder onto the circle.
		n := u.A.Cross(u.B)
		v := p.Sub(u.Center).Dot(n) / s.V.Dot(n)
		onCircle := p.Add(s.V.Scale(-v))

		return math3d.Point2{
			U: u.ProjectPoint(onCircle).T,
			V: v,
		}
	default:
		panic("geometry: unknown global path kind")
	}
}

// PathToGlobal lifts a path in this surface's coordinates into model
// space. Exact for planes; this is how sweep turns a sketch curve into the
// swept path of a side surface.
func (s Surface) PathToGlobal(path SurfacePath) GlobalPath {
	switch p := path.(type) {
	case Line2:
		origin := s.PointFromSurface(p.Origin)
		tip := s.PointFromSurface(p.Origin.Add(p.Direction))

		return Line3{Origin: origin, Direction: tip.Sub(origin)}
	case Circle2:
		center := s.PointFromSurface(p.Center)

		return Circle3{
			Center: center,
			A:      s.PointFromSurface(p.Center.Add(p.A)).Sub(center),
			B:      s.PointFromSurface(p.Center.Add(p.B)).Sub(center),
		}
	default:
		panic("geometry: unknown surface path kind")
	}
}

// Translated returns the surface moved by offset.
func (s Surface) Translated(offset math3d.Vector3) Surface {
	return s.Transformed(math3d.Translation(offset))
}

// Transformed returns the surface moved by the given transform.
func (s Surface) Transformed(t math3d.Transform) Surface {
	var u GlobalPath
	switch path := s.U.(type) {
	case Line3:
		u = path.Transformed(t)
	case Circle3:
		u = path.Transformed(t)
	default:
		panic("geometry: unknown global path kind")
	}

	return Surface{U: u, V: t.ApplyVector(s.V)}
}
