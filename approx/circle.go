package approx

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
)

// PathApproxParams are the sampling parameters for approximating a
// circle: the angular increment between consecutive sample points in the
// circle's parameter space.
type PathApproxParams struct {
	increment math3d.Scalar
}

// ParamsForCircle computes sampling parameters for a circle of the given
// radius at the given tolerance. The number of vertices for a full-circle
// approximation is
//
//	n = ceil(max(pi / acos(1 - t/r), 3))
//
// and the increment is 2*pi/n. Tolerances larger than the radius are
// clamped to the radius.
func ParamsForCircle(radius math3d.Scalar, tolerance Tolerance) PathApproxParams {
	tol := math3d.MinScalar(tolerance.Inner(), radius)

	numVertices := math3d.MaxScalar(
		math3d.Pi/(1-tol/radius).Acos(),
		3,
	).Ceil()

	return PathApproxParams{increment: math3d.Tau / numVertices}
}

// Increment returns the angular step between consecutive sample points.
func (p PathApproxParams) Increment() math3d.Scalar {
	return p.increment
}

// Points returns the sample parameters within the boundary, excluding the
// boundary endpoints themselves. The caller knows the endpoints anyway,
// and excluding them is what lets chained half-edge approximations
// concatenate without duplicates.
//
// Which parameters are sampled is independent of the boundary; the
// boundary only selects the returned subset and its order (ascending for
// a forward boundary, descending for a reversed one).
func (p PathApproxParams) Points(boundary geometry.CurveBoundary) []math3d.Point1 {
	a := boundary.Inner[0].T / p.increment
	b := boundary.Inner[1].T / p.increment

	direction := (b - a).Sign()

	min, max := a, b
	if b < a {
		min, max = b, a
	}

	// No point can be generated exactly at the boundary; stay strictly
	// inside the range.
	first := min.Floor() + 1
	last := max.Ceil() - 1

	var points []math3d.Point1
	if direction == math3d.SignNegative {
		for i := last; i >= first; i-- {
			points = append(points, math3d.Point1{T: p.increment * i})
		}
	} else {
		for i := first; i <= last; i++ {
			points = append(points, math3d.Point1{T: p.increment * i})
		}
	}

	return points
}
