// Package approx approximates curves and faces with point sequences at a
// given tolerance.
//
// The central property of this package is determinism: the set of sample
// parameters produced for a circle at a given tolerance is independent of
// the boundary being approximated. The boundary only selects which subset
// of that infinite set is returned, and in what order. Together with the
// approximation cache, which reuses computed points across the two
// half-edges sharing a global edge, this guarantees that adjacent faces
// produce identical points along shared edges, so meshes close without
// gaps.
package approx

import (
	"errors"
	"fmt"

	"github.com/sksmith/brep/math3d"
)

// ErrInvalidTolerance is returned when constructing a tolerance from a
// non-positive value.
var ErrInvalidTolerance = errors.New("tolerance must be positive")

// Tolerance is the maximum allowed deviation of an approximation from the
// ideal curve or surface, in model units.
type Tolerance struct {
	inner math3d.Scalar
}

// NewTolerance constructs a tolerance, rejecting non-positive values.
func NewTolerance(value math3d.Scalar) (Tolerance, error) {
	if value <= 0 {
		return Tolerance{}, fmt.Errorf("%w: %v", ErrInvalidTolerance, value)
	}

	return Tolerance{inner: value}, nil
}

// MustTolerance constructs a tolerance and panics on invalid input.
func MustTolerance(value math3d.Scalar) Tolerance {
	t, err := NewTolerance(value)
	if err != nil {
		panic(err)
	}

	return t
}

// Inner returns the tolerance value.
func (t Tolerance) Inner() math3d.Scalar {
	return t.inner
}
