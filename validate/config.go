// Package validate checks topology objects for structural, geometric, and
// uniqueness defects. Checks produce a list of typed errors and never
// short-circuit: a single validation run reports everything it finds.
package validate

import "github.com/sksmith/brep/math3d"

// Config carries the distances that separate "identical" from "distinct".
type Config struct {
	// DistinctMinDistance: objects closer than this are considered to be
	// at the same position.
	DistinctMinDistance math3d.Scalar

	// IdenticalMaxDistance: objects that are supposed to be identical
	// may be at most this far apart, to allow for floating-point noise.
	// The default is empirical.
	IdenticalMaxDistance math3d.Scalar
}

// DefaultConfig returns the default validation config.
func DefaultConfig() Config {
	return Config{
		DistinctMinDistance:  5e-7,
		IdenticalMaxDistance: 5e-14,
	}
}
