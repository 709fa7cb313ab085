// Package math3d provides the scalar and vector math underlying the kernel:
// finite-checked scalars, fixed-dimension vectors and points, axis-aligned
// bounding boxes, rigid-body transforms, and triangles.
//
// All geometric values are built on Scalar, a float64 that is guaranteed to
// be finite. Rejecting NaN and infinity at construction time means every
// Scalar has a total order and can be used as a map key, which the rest of
// the kernel relies on for deduplication and caching.
package math3d

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidScalar is returned when constructing a Scalar from a
// non-finite float64.
var ErrInvalidScalar = errors.New("scalar must be finite")

// Scalar is a finite float64. The zero value is valid (0.0).
//
// Because Scalar is a defined type over float64, the usual arithmetic
// operators apply. Operations that could produce non-finite results
// (division, sqrt of negative values) are the caller's responsibility;
// re-wrap through NewScalar at trust boundaries.
type Scalar float64

// Useful constants.
const (
	Pi  Scalar = math.Pi
	Tau Scalar = 2 * math.Pi
)

// NewScalar constructs a Scalar, rejecting NaN and infinity.
func NewScalar(v float64) (Scalar, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidScalar, v)
	}

	return Scalar(v), nil
}

// S constructs a Scalar and panics on non-finite input. Non-finite values
// reaching geometry code are programming errors, so most call sites use S.
func S(v float64) Scalar {
	s, err := NewScalar(v)
	if err != nil {
		panic(err)
	}

	return s
}

// F returns the scalar as a plain float64.
func (s Scalar) F() float64 {
	return float64(s)
}

// Abs returns the absolute value.
func (s Scalar) Abs() Scalar {
	return Scalar(math.Abs(float64(s)))
}

// Floor returns the largest integer value <= s.
func (s Scalar) Floor() Scalar {
	return Scalar(math.Floor(float64(s)))
}

// Ceil returns the smallest integer value >= s.
func (s Scalar) Ceil() Scalar {
	return Scalar(math.Ceil(float64(s)))
}

// Sqrt returns the square root. Panics if s is negative, since the result
// would not be a valid Scalar.
func (s Scalar) Sqrt() Scalar {
	return S(math.Sqrt(float64(s)))
}

// Acos returns the arc cosine in radians. Panics if s is outside [-1, 1].
func (s Scalar) Acos() Scalar {
	return S(math.Acos(float64(s)))
}

// Sin returns the sine of s (radians).
func (s Scalar) Sin() Scalar {
	return Scalar(math.Sin(float64(s)))
}

// Cos returns the cosine of s (radians).
func (s Scalar) Cos() Scalar {
	return Scalar(math.Cos(float64(s)))
}

// Atan2 returns the arc tangent of s/x, using their signs to determine the
// quadrant.
func (s Scalar) Atan2(x Scalar) Scalar {
	return Scalar(math.Atan2(float64(s), float64(x)))
}

// Sign classifies the scalar as negative, zero, or positive.
func (s Scalar) Sign() Sign {
	switch {
	case s < 0:
		return SignNegative
	case s > 0:
		return SignPositive
	default:
		return SignZero
	}
}

// MinScalar returns the smaller of a and b.
func MinScalar(a, b Scalar) Scalar {
	if a < b {
		return a
	}

	return b
}

// MaxScalar returns the larger of a and b.
func MaxScalar(a, b Scalar) Scalar {
	if a > b {
		return a
	}

	return b
}

// Sign is the sign of a scalar.
type Sign int

const (
	SignNegative Sign = -1
	SignZero     Sign = 0
	SignPositive Sign = 1
)

// ToScalar converts the sign to -1, 0, or 1.
func (s Sign) ToScalar() Scalar {
	return Scalar(s)
}
