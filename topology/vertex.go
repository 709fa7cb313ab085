// Package topology defines the object graph of the kernel: vertices,
// edges, cycles, faces, shells, solids, and sketches, together with the
// identity layer (global vertices, curves, and edges) and the Objects
// registry that owns the stores.
//
// All objects are immutable once inserted into a store. The graph is
// modified by constructing new objects that structurally replace parts of
// the old graph; unchanged subgraphs are reused by handle.
package topology

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
)

// GlobalVertex is a point in 3D space, carrying identity. Distinct uses of
// a coincident point across a solid must resolve to the same GlobalVertex
// handle; that shared identity is what connects faces topologically.
type GlobalVertex struct {
	position math3d.Point3
}

// NewGlobalVertex constructs a global vertex at the given position.
func NewGlobalVertex(position math3d.Point3) GlobalVertex {
	return GlobalVertex{position: position}
}

// Position returns the vertex position in model space.
func (v GlobalVertex) Position() math3d.Point3 {
	return v.position
}

// SurfaceVertex is the use of a global vertex within a surface. It pins
// down where on the surface the vertex lies.
//
// Invariant: the surface evaluated at Position equals the global form's
// position, within the configured tolerance.
type SurfaceVertex struct {
	position   math3d.Point2
	surface    storage.Handle[geometry.Surface]
	globalForm storage.Handle[GlobalVertex]
}

// NewSurfaceVertex constructs a surface vertex.
func NewSurfaceVertex(
	position math3d.Point2,
	surface storage.Handle[geometry.Surface],
	globalForm storage.Handle[GlobalVertex],
) SurfaceVertex {
	return SurfaceVertex{
		position:   position,
		surface:    surface,
		globalForm: globalForm,
	}
}

// Position returns the vertex position in surface coordinates.
func (v SurfaceVertex) Position() math3d.Point2 {
	return v.position
}

// Surface returns the surface the vertex is defined in.
func (v SurfaceVertex) Surface() storage.Handle[geometry.Surface] {
	return v.surface
}

// GlobalForm returns the global vertex this surface vertex is a use of.
func (v SurfaceVertex) GlobalForm() storage.Handle[GlobalVertex] {
	return v.globalForm
}

// Vertex is the use of a vertex on a curve. It pins down where on the
// curve the vertex lies.
//
// Invariants: the curve's path evaluated at Position equals the surface
// form's position within tolerance, and the curve and the surface form
// reference the same surface.
type Vertex struct {
	position    math3d.Point1
	curve       storage.Handle[Curve]
	surfaceForm storage.Handle[SurfaceVertex]
}

// NewVertex constructs a curve vertex.
func NewVertex(
	position math3d.Point1,
	curve storage.Handle[Curve],
	surfaceForm storage.Handle[SurfaceVertex],
) Vertex {
	return Vertex{
		position:    position,
		curve:       curve,
		surfaceForm: surfaceForm,
	}
}

// Position returns the vertex position in curve coordinates.
func (v Vertex) Position() math3d.Point1 {
	return v.position
}

// Curve returns the curve the vertex is defined on.
func (v Vertex) Curve() storage.Handle[Curve] {
	return v.curve
}

// SurfaceForm returns the surface vertex this vertex is a use of.
func (v Vertex) SurfaceForm() storage.Handle[SurfaceVertex] {
	return v.surfaceForm
}

// GlobalForm returns the global vertex, through the surface form.
func (v Vertex) GlobalForm() storage.Handle[GlobalVertex] {
	return v.surfaceForm.Get().GlobalForm()
}
