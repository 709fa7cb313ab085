package topology

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
)

// Color is an RGBA color attached to a face, carried through to the mesh.
type Color [4]uint8

// Region is a surface area bounded by an exterior cycle, minus the areas
// of its interior cycles (holes).
//
// Invariant: the exterior winds counter-clockwise, interiors clockwise, in
// the coordinate system of the surface the region lives on.
type Region struct {
	exterior  storage.Handle[Cycle]
	interiors ObjectSet[Cycle]
}

// NewRegion constructs a region from an exterior cycle and any number of
// interior cycles.
func NewRegion(
	exterior storage.Handle[Cycle],
	interiors ...storage.Handle[Cycle],
) Region {
	return Region{
		exterior:  exterior,
		interiors: NewObjectSet(interiors...),
	}
}

// Exterior returns the region's outer boundary.
func (r Region) Exterior() storage.Handle[Cycle] {
	return r.exterior
}

// Interiors returns the region's holes.
func (r Region) Interiors() ObjectSet[Cycle] {
	return r.interiors
}

// AllCycles returns the exterior followed by the interiors.
func (r Region) AllCycles() []storage.Handle[Cycle] {
	cycles := make([]storage.Handle[Cycle], 0, 1+r.interiors.Len())
	cycles = append(cycles, r.exterior)
	cycles = append(cycles, r.interiors.Handles()...)

	return cycles
}

// Face is a bounded area on a surface: the pair of a surface and a region,
// plus an optional color and a flag marking faces that are internal to a
// larger assembly (carried through to the mesh for rendering decisions).
//
// Invariant: the exterior cycle is non-empty; interior windings are
// opposite the exterior winding.
type Face struct {
	surface  storage.Handle[geometry.Surface]
	region   storage.Handle[Region]
	color    *Color
	internal bool
}

// NewFace constructs a face without color.
func NewFace(
	surface storage.Handle[geometry.Surface],
	region storage.Handle[Region],
) Face {
	return Face{surface: surface, region: region}
}

// NewFaceWithColor constructs a colored face.
func NewFaceWithColor(
	surface storage.Handle[geometry.Surface],
	region storage.Handle[Region],
	color Color,
) Face {
	return Face{surface: surface, region: region, color: &color}
}

// Surface returns the surface the face lies on.
func (f Face) Surface() storage.Handle[geometry.Surface] {
	return f.surface
}

// Region returns the bounded area of the face.
func (f Face) Region() storage.Handle[Region] {
	return f.region
}

// Color returns the face color, or (zero, false) if none is set.
func (f Face) Color() (Color, bool) {
	if f.color == nil {
		return Color{}, false
	}

	return *f.color, true
}

// IsInternal reports whether the face is internal.
func (f Face) IsInternal() bool {
	return f.internal
}

// AsInternal returns a copy of the face marked internal.
func (f Face) AsInternal() Face {
	f.internal = true

	return f
}
