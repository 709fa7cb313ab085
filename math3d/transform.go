package math3d

// Transform is a rigid-body affine transform in 3D: a rotation followed by
// a translation. Transforms compose and apply to points, vectors, and
// bounding boxes.
type Transform struct {
	// Rotation rows. The zero value is not a valid transform; use
	// Identity or one of the constructors.
	rotation [3]Vector3

	translation Vector3
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		rotation: [3]Vector3{
			{X: 1}, {Y: 1}, {Z: 1},
		},
	}
}

// Translation returns a transform that translates by offset.
func Translation(offset Vector3) Transform {
	t := Identity()
	t.translation = offset

	return t
}

// ApplyPoint transforms a point.
func (t Transform) ApplyPoint(p Point3) Point3 {
	v := t.ApplyVector(p.Vec())

	return Point3{v.X, v.Y, v.Z}.Add(t.translation)
}

// ApplyVector rotates a vector. Translation does not apply to vectors.
func (t Transform) ApplyVector(v Vector3) Vector3 {
	return Vector3{
		X: t.rotation[0].Dot(v),
		Y: t.rotation[1].Dot(v),
		Z: t.rotation[2].Dot(v),
	}
}

// ApplyAabb transforms a bounding box, re-normalizing the corners.
func (t Transform) ApplyAabb(a Aabb) Aabb {
	return NewAabb(t.ApplyPoint(a.Min), t.ApplyPoint(a.Max))
}

// Compose returns the transform that applies t after other.
func (t Transform) Compose(other Transform) Transform {
	columns := [3]Vector3{
		other.ApplyVector(Vector3{X: 1}),
		other.ApplyVector(Vector3{Y: 1}),
		other.ApplyVector(Vector3{Z: 1}),
	}

	var composed Transform
	for i := range columns {
		rotated := t.ApplyVector(columns[i])
		composed.rotation[0] = setComponent(composed.rotation[0], i, rotated.X)
		composed.rotation[1] = setComponent(composed.rotation[1], i, rotated.Y)
		composed.rotation[2] = setComponent(composed.rotation[2], i, rotated.Z)
	}
	composed.translation = t.ApplyVector(other.translation).Add(t.translation)

	return composed
}

func setComponent(v Vector3, i int, value Scalar) Vector3 {
	switch i {
	case 0:
		v.X = value
	case 1:
		v.Y = value
	default:
		v.Z = value
	}

	return v
}
