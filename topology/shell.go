package topology

import "github.com/sksmith/brep/storage"

// Shell is an ordered set of faces bounding a volume.
//
// Invariant: the shell is watertight — every global edge referenced by a
// half-edge of the shell is referenced by exactly two half-edges of the
// shell, coincident half-edges share their global edge, and half-edges
// sharing a global edge are coincident.
type Shell struct {
	faces ObjectSet[Face]
}

// NewShell constructs a shell from faces. Panics if the same face handle
// appears twice.
func NewShell(faces ...storage.Handle[Face]) Shell {
	return Shell{faces: NewObjectSet(faces...)}
}

// Faces returns the shell's faces in insertion order.
func (s Shell) Faces() ObjectSet[Face] {
	return s.faces
}

// Solid is a volume bounded by one or more shells.
type Solid struct {
	shells ObjectSet[Shell]
}

// NewSolid constructs a solid from shells.
func NewSolid(shells ...storage.Handle[Shell]) Solid {
	return Solid{shells: NewObjectSet(shells...)}
}

// Shells returns the solid's shells.
func (s Solid) Shells() ObjectSet[Shell] {
	return s.shells
}

// Sketch is a 2D figure: a set of regions, usable as input to sweep.
//
// Invariant: region exteriors wind counter-clockwise and interiors
// clockwise, and no cycle or half-edge is referenced more than once across
// the sketch.
type Sketch struct {
	regions ObjectSet[Region]
}

// NewSketch constructs a sketch from regions.
func NewSketch(regions ...storage.Handle[Region]) Sketch {
	return Sketch{regions: NewObjectSet(regions...)}
}

// Regions returns the sketch's regions.
func (s Sketch) Regions() ObjectSet[Region] {
	return s.regions
}
