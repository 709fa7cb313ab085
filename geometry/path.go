package geometry

import (
	"errors"
	"fmt"

	"github.com/sksmith/brep/math3d"
)

// ErrDegenerateCircle is returned when constructing a circle with a
// non-positive radius.
var ErrDegenerateCircle = errors.New("circle radius must be positive")

// SurfacePath is a path in a surface's 2D coordinate system. The only path
// kinds are lines and circles; code that needs to distinguish them
// switches exhaustively on the concrete type.
type SurfacePath interface {
	// PointFromPath converts a point in path coordinates to surface
	// coordinates.
	PointFromPath(p math3d.Point1) math3d.Point2

	// ProjectPoint converts a point in surface coordinates to path
	// coordinates. The point is assumed to be on the path; for points off
	// the path the result is the parameter of the closest point on the
	// path's infinite extension.
	ProjectPoint(p math3d.Point2) math3d.Point1
}

// Line2 is a line in surface coordinates, parameterized as
// Origin + Direction * t.
type Line2 struct {
	Origin    math3d.Point2
	Direction math3d.Vector2
}

// LineFromPoints2 builds the line through a and b, with a at t=0 and b at
// t=1.
func LineFromPoints2(a, b math3d.Point2) Line2 {
	return Line2{Origin: a, Direction: b.Sub(a)}
}

func (l Line2) PointFromPath(p math3d.Point1) math3d.Point2 {
	return l.Origin.Add(l.Direction.Scale(p.T))
}

func (l Line2) ProjectPoint(p math3d.Point2) math3d.Point1 {
	d := l.Direction.Dot(l.Direction)

	return math3d.Point1{T: p.Sub(l.Origin).Dot(l.Direction) / d}
}

// Circle2 is a circle in surface coordinates, parameterized by angle:
// Center + A*cos(t) + B*sin(t). A and B are the radius vectors at t=0 and
// t=pi/2; for circles built by CircleFromCenterAndRadius they are the
// positive u and v axes scaled by the radius.
type Circle2 struct {
	Center math3d.Point2
	A, B   math3d.Vector2
}

// CircleFromCenterAndRadius builds an axis-aligned circle. Panics if the
// radius is not positive; a degenerate circle is a geometric impossibility
// at the construction site.
func CircleFromCenterAndRadius(center math3d.Point2, radius math3d.Scalar) Circle2 {
	if radius <= 0 {
		panic(fmt.Errorf("%w: %v", ErrDegenerateCircle, radius))
	}

	return Circle2{
		Center: center,
		A:      math3d.Vector2{U: radius},
		B:      math3d.Vector2{V: radius},
	}
}

// Radius returns the circle's radius.
func (c Circle2) Radius() math3d.Scalar {
	return c.A.Magnitude()
}

func (c Circle2) PointFromPath(p math3d.Point1) math3d.Point2 {
	return c.Center.
		Add(c.A.Scale(p.T.Cos())).
		Add(c.B.Scale(p.T.Sin()))
}

func (c Circle2) ProjectPoint(p math3d.Point2) math3d.Point1 {
	v := p.Sub(c.Center)

	aa := c.A.Dot(c.A)
	bb := c.B.Dot(c.B)

	angle := (v.Dot(c.B) / bb).Atan2(v.Dot(c.A) / aa)
	if angle < 0 {
		angle += math3d.Tau
	}

	return math3d.Point1{T: angle}
}
