package geometry

import (
	"fmt"

	"github.com/sksmith/brep/math3d"
)

// GlobalPath is a path in 3D model space. Surfaces are defined by sweeping
// a global path along a vector.
type GlobalPath interface {
	// PointFromPath converts a point in path coordinates to model space.
	PointFromPath(p math3d.Point1) math3d.Point3

	// ProjectPoint converts a model-space point on the path back to path
	// coordinates.
	ProjectPoint(p math3d.Point3) math3d.Point1
}

// Line3 is a line in model space, parameterized as Origin + Direction * t.
type Line3 struct {
	Origin    math3d.Point3
	Direction math3d.Vector3
}

// LineFromPoints3 builds the line through a and b, with a at t=0 and b at
// t=1.
func LineFromPoints3(a, b math3d.Point3) Line3 {
	return Line3{Origin: a, Direction: b.Sub(a)}
}

func (l Line3) PointFromPath(p math3d.Point1) math3d.Point3 {
	return l.Origin.Add(l.Direction.Scale(p.T))
}

func (l Line3) ProjectPoint(p math3d.Point3) math3d.Point1 {
	d := l.Direction.Dot(l.Direction)

	return math3d.Point1{T: p.Sub(l.Origin).Dot(l.Direction) / d}
}

// Transformed returns the line moved by the given transform.
func (l Line3) Transformed(t math3d.Transform) GlobalPath {
	return Line3{
		Origin:    t.ApplyPoint(l.Origin),
		Direction: t.ApplyVector(l.Direction),
	}
}

// Circle3 is a circle in model space, parameterized by angle:
// Center + A*cos(t) + B*sin(t).
type Circle3 struct {
	Center math3d.Point3
	A, B   math3d.Vector3
}

// Circle3FromCenterAndRadius builds a circle of the given radius in the
// plane spanned by the x and y axes through center. Panics if the radius
// is not positive.
func Circle3FromCenterAndRadius(center math3d.Point3, radius math3d.Scalar) Circle3 {
	if radius <= 0 {
		panic(fmt.Errorf("%w: %v", ErrDegenerateCircle, radius))
	}

	return Circle3{
		Center: center,
		A:      math3d.Vector3{X: radius},
		B:      math3d.Vector3{Y: radius},
	}
}

// Radius returns the circle's radius.
func (c Circle3) Radius() math3d.Scalar {
	return c.A.Magnitude()
}

func (c Circle3) PointFromPath(p math3d.Point1) math3d.Point3 {
	return c.Center.
		Add(c.A.Scale(p.T.Cos())).
		Add(c.B.Scale(p.T.Sin()))
}

func (c Circle3) ProjectPoint(p math3d.Point3) math3d.Point1 {
	v := p.Sub(c.Center)

	aa := c.A.Dot(c.A)
	bb := c.B.Dot(c.B)

	angle := (v.Dot(c.B) / bb).Atan2(v.Dot(c.A) / aa)
	if angle < 0 {
		angle += math3d.Tau
	}

	return math3d.Point1{T: angle}
}

// Transformed returns the circle moved by the given transform.
func (c Circle3) Transformed(t math3d.Transform) GlobalPath {
	return Circle3{
		Center: t.ApplyPoint(c.Center),
		A:      t.ApplyVector(c.A),
		B:      t.ApplyVector(c.B),
	}
}
