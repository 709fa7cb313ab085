package topology

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
)

// GlobalCurve establishes that multiple local curve uses trace the same
// curve in 3D space. It carries no structural content; only its identity
// matters.
type GlobalCurve struct{}

// Curve is a curve defined in a surface's coordinate system: the pair of a
// surface and a path within that surface, plus the identity of the 3D
// curve both together describe.
type Curve struct {
	surface    storage.Handle[geometry.Surface]
	path       geometry.SurfacePath
	globalForm storage.Handle[GlobalCurve]
}

// NewCurve constructs a curve.
func NewCurve(
	surface storage.Handle[geometry.Surface],
	path geometry.SurfacePath,
	globalForm storage.Handle[GlobalCurve],
) Curve {
	return Curve{surface: surface, path: path, globalForm: globalForm}
}

// Surface returns the surface the curve is defined in.
func (c Curve) Surface() storage.Handle[geometry.Surface] {
	return c.surface
}

// Path returns the curve's path in surface coordinates.
func (c Curve) Path() geometry.SurfacePath {
	return c.path
}

// GlobalForm returns the identity of the 3D curve.
func (c Curve) GlobalForm() storage.Handle[GlobalCurve] {
	return c.globalForm
}
