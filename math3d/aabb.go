package math3d

// Aabb is a 3D axis-aligned bounding box. Min <= Max holds componentwise
// for every Aabb produced by this package.
type Aabb struct {
	Min, Max Point3
}

// NewAabb constructs a bounding box from two corner points, normalizing
// them so that Min <= Max componentwise.
func NewAabb(a, b Point3) Aabb {
	return Aabb{
		Min: Point3{
			X: MinScalar(a.X, b.X),
			Y: MinScalar(a.Y, b.Y),
			Z: MinScalar(a.Z, b.Z),
		},
		Max: Point3{
			X: MaxScalar(a.X, b.X),
			Y: MaxScalar(a.Y, b.Y),
			Z: MaxScalar(a.Z, b.Z),
		},
	}
}

// AabbFromPoints computes the bounding box of a non-empty point set.
// Returns the zero Aabb for an empty slice.
func AabbFromPoints(points []Point3) Aabb {
	if len(points) == 0 {
		return Aabb{}
	}

	aabb := Aabb{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		aabb = aabb.IncludePoint(p)
	}

	return aabb
}

// IncludePoint returns the smallest box containing both a and p.
func (a Aabb) IncludePoint(p Point3) Aabb {
	return Aabb{
		Min: Point3{
			X: MinScalar(a.Min.X, p.X),
			Y: MinScalar(a.Min.Y, p.Y),
			Z: MinScalar(a.Min.Z, p.Z),
		},
		Max: Point3{
			X: MaxScalar(a.Max.X, p.X),
			Y: MaxScalar(a.Max.Y, p.Y),
			Z: MaxScalar(a.Max.Z, p.Z),
		},
	}
}

// Merge returns the smallest box containing both a and b.
func (a Aabb) Merge(b Aabb) Aabb {
	return a.IncludePoint(b.Min).IncludePoint(b.Max)
}

// Size returns the extents of the box along each axis.
func (a Aabb) Size() Vector3 {
	return a.Max.Sub(a.Min)
}

// SmallestNonZeroExtent returns the smallest of the box's non-zero
// extents, or zero if all extents are zero. Used to infer a meaningful
// approximation tolerance from a model's size.
func (a Aabb) SmallestNonZeroExtent() Scalar {
	size := a.Size()

	smallest := Scalar(0)
	for _, extent := range []Scalar{size.X, size.Y, size.Z} {
		if extent > 0 && (smallest == 0 || extent < smallest) {
			smallest = extent
		}
	}

	return smallest
}
