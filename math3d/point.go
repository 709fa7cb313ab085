package math3d

// Point1 is a position in a 1D coordinate system, typically the parameter
// space of a curve.
type Point1 struct {
	T Scalar
}

// Add returns the point translated by t.
func (p Point1) Add(t Scalar) Point1 {
	return Point1{p.T + t}
}

// Sub returns the displacement from other to p.
func (p Point1) Sub(other Point1) Scalar {
	return p.T - other.T
}

// Point2 is a position in a 2D coordinate system, typically a surface's
// (u, v) parameter space.
type Point2 struct {
	U, V Scalar
}

// Add returns the point translated by v.
func (p Point2) Add(v Vector2) Point2 {
	return Point2{p.U + v.U, p.V + v.V}
}

// Sub returns the displacement from other to p.
func (p Point2) Sub(other Point2) Vector2 {
	return Vector2{p.U - other.U, p.V - other.V}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point2) DistanceTo(other Point2) Scalar {
	return p.Sub(other).Magnitude()
}

// Point3 is a position in 3D model space.
type Point3 struct {
	X, Y, Z Scalar
}

// Add returns the point translated by v.
func (p Point3) Add(v Vector3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the displacement from other to p.
func (p Point3) Sub(other Point3) Vector3 {
	return Vector3{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// DistanceTo returns the Euclidean distance between p and other.
func (p Point3) DistanceTo(other Point3) Scalar {
	return p.Sub(other).Magnitude()
}

// Vec returns the point as a vector from the origin.
func (p Point3) Vec() Vector3 {
	return Vector3{p.X, p.Y, p.Z}
}
