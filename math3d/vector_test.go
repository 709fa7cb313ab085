package math3d

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, 5, 6}

	assert.Equal(t, Vector3{5, 7, 9}, a.Add(b))
	assert.Equal(t, Vector3{-3, -3, -3}, a.Sub(b))
	assert.Equal(t, Vector3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Scalar(32), a.Dot(b))
}

func TestVector3Cross(t *testing.T) {
	x := Vector3{X: 1}
	y := Vector3{Y: 1}

	assert.Equal(t, Vector3{Z: 1}, x.Cross(y))
	assert.Equal(t, Vector3{Z: -1}, y.Cross(x))
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{3, 0, 4}

	normalized := v.Normalize()
	assert.InDelta(t, 1.0, normalized.Magnitude().F(), 1e-15)
	assert.Equal(t, Vector3{0.6, 0, 0.8}, normalized)

	zero := Vector3{}
	assert.Equal(t, zero, zero.Normalize())
}

func TestPointDistance(t *testing.T) {
	a := Point3{0, 0, 0}
	b := Point3{1, 2, 2}

	assert.Equal(t, Scalar(3), a.DistanceTo(b))
	assert.Equal(t, Vector3{1, 2, 2}, b.Sub(a))
	assert.Equal(t, b, a.Add(Vector3{1, 2, 2}))
}

func TestVector2Cross(t *testing.T) {
	assert.Equal(t, Scalar(1), Vector2{1, 0}.Cross(Vector2{0, 1}))
	assert.Equal(t, Scalar(-1), Vector2{0, 1}.Cross(Vector2{1, 0}))
}

func TestAabb(t *testing.T) {
	aabb := NewAabb(Point3{2, 0, 5}, Point3{0, 3, 1})

	assert.Equal(t, Point3{0, 0, 1}, aabb.Min)
	assert.Equal(t, Point3{2, 3, 5}, aabb.Max)

	grown := aabb.IncludePoint(Point3{-1, 10, 3})
	assert.Equal(t, Point3{-1, 0, 1}, grown.Min)
	assert.Equal(t, Point3{2, 10, 5}, grown.Max)
}

func TestAabbSmallestNonZeroExtent(t *testing.T) {
	tests := []struct {
		name string
		aabb Aabb
		want Scalar
	}{
		{
			"AllNonZero",
			NewAabb(Point3{0, 0, 0}, Point3{1, 2, 3}),
			1,
		},
		{
			"FlatInOneAxis",
			NewAabb(Point3{0, 0, 0}, Point3{2, 0, 3}),
			2,
		},
		{
			"Empty",
			Aabb{},
			0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.aabb.SmallestNonZeroExtent())
		})
	}
}

func TestTransformTranslation(t *testing.T) {
	transform := Translation(Vector3{1, 2, 3})

	assert.Equal(t, Point3{2, 4, 6}, transform.ApplyPoint(Point3{1, 2, 3}))
	assert.Equal(t, Vector3{1, 1, 1}, transform.ApplyVector(Vector3{1, 1, 1}))
}

func TestTransformCompose(t *testing.T) {
	a := Translation(Vector3{1, 0, 0})
	b := Translation(Vector3{0, 2, 0})

	composed := a.Compose(b)
	assert.Equal(t, Point3{1, 2, 0}, composed.ApplyPoint(Point3{}))
}

func TestTriangleCentroid(t *testing.T) {
	triangle := Triangle2{Points: [3]Point2{
		{0, 0}, {3, 0}, {0, 3},
	}}

	assert.Equal(t, Point2{1, 1}, triangle.Centroid())
}

func TestTriangleNormal(t *testing.T) {
	triangle := Triangle3{Points: [3]Point3{
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0},
	}}

	assert.Equal(t, Vector3{Z: 1}, triangle.Normal())
}
