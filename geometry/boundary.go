// Package geometry provides the geometric primitives the topology layer
// references: paths in surface coordinates (lines and circles), global 3D
// paths, surfaces swept from global paths, and curve boundaries.
package geometry

import "github.com/sksmith/brep/math3d"

// CurveBoundary is a range on a curve, in curve parameter space. The two
// points may be in either order; a boundary with equal points is empty.
type CurveBoundary struct {
	Inner [2]math3d.Point1
}

// BoundaryFromValues builds a boundary from two parameter values.
func BoundaryFromValues(a, b math3d.Scalar) CurveBoundary {
	return CurveBoundary{Inner: [2]math3d.Point1{{T: a}, {T: b}}}
}

// Reverse flips the direction of the boundary.
func (b CurveBoundary) Reverse() CurveBoundary {
	return CurveBoundary{Inner: [2]math3d.Point1{b.Inner[1], b.Inner[0]}}
}

// Normalize puts the boundary into a canonical order, so that a boundary
// and its reverse normalize to the same value. Useful as a map key.
func (b CurveBoundary) Normalize() CurveBoundary {
	if b.Inner[1].T < b.Inner[0].T {
		return b.Reverse()
	}

	return b
}

// IsEmpty reports whether the boundary contains no parameter range.
func (b CurveBoundary) IsEmpty() bool {
	return b.Inner[0] == b.Inner[1]
}
