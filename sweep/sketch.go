package sweep

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// SweptCycle is the result of sweeping a cycle: the side faces created by
// sweeping each half-edge, and the top cycle.
//
// The top cycle is a translated, reversed version of the source cycle, so
// top and bottom wind in opposite directions when viewed from outside.
// Whether the top cycle becomes the exterior of a top face, an interior
// of one, or nothing at all depends on the caller; the cycle sweep itself
// creates neither a top nor a bottom face.
type SweptCycle struct {
	Faces    []storage.Handle[topology.Face]
	TopCycle storage.Handle[topology.Cycle]
}

// Cycle sweeps each half-edge of a cycle along path into a side face and
// assembles the resulting top half-edges into the top cycle.
func Cycle(
	o *topology.Objects,
	cycle storage.Handle[topology.Cycle],
	topSurface storage.Handle[geometry.Surface],
	color *topology.Color,
	path math3d.Vector3,
	cache *Cache,
) SweptCycle {
	edges := cycle.Get().HalfEdges()

	var swept SweptCycle
	topEdges := make([]storage.Handle[topology.HalfEdge], len(edges))
	for i, edge := range edges {
		next := edges[(i+1)%len(edges)]

		result := HalfEdge(
			o, edge, next.Get().StartVertex(),
			topSurface, color, path, cache)

		swept.Faces = append(swept.Faces, result.Face)

		// Sweeping reverses direction, so the top half-edges come out
		// in the opposite order to the bottom iteration: each one ends
		// where the previous one starts. Reversing the list puts them
		// into cycle order.
		topEdges[len(edges)-1-i] = result.TopEdge
	}

	swept.TopCycle = o.Cycles.Insert(topology.NewCycle(topEdges))

	return swept
}

// Sketch sweeps a sketch along path into a solid.
//
// Every region of the sketch produces a bottom face (the region with all
// cycles reversed, so it faces against the sweep direction), one side
// face per half-edge of each of its cycles, and a top face bounded by the
// swept cycles. The faces close into a watertight shell.
func Sketch(
	o *topology.Objects,
	sketch storage.Handle[topology.Sketch],
	surface storage.Handle[geometry.Surface],
	color *topology.Color,
	path math3d.Vector3,
) storage.Handle[topology.Solid] {
	cache := NewCache()
	topSurface := o.Surfaces.Insert(surface.Get().Translated(path))

	var faces []storage.Handle[topology.Face]
	for _, region := range sketch.Get().Regions().Handles() {
		bottomRegion := topology.ReverseRegion(o, region)
		faces = append(faces, newFace(o, surface, bottomRegion, color))

		var topExterior storage.Handle[topology.Cycle]
		var topInteriors []storage.Handle[topology.Cycle]
		for i, cycle := range region.Get().AllCycles() {
			swept := Cycle(o, cycle, topSurface, color, path, cache)
			faces = append(faces, swept.Faces...)

			if i == 0 {
				topExterior = swept.TopCycle
			} else {
				topInteriors = append(topInteriors, swept.TopCycle)
			}
		}

		topRegion := o.Regions.Insert(
			topology.NewRegion(topExterior, topInteriors...))
		faces = append(faces, newFace(o, topSurface, topRegion, color))
	}

	shell := o.Shells.Insert(topology.NewShell(faces...))

	return o.Solids.Insert(topology.NewSolid(shell))
}

func newFace(
	o *topology.Objects,
	surface storage.Handle[geometry.Surface],
	region storage.Handle[topology.Region],
	color *topology.Color,
) storage.Handle[topology.Face] {
	if color != nil {
		return o.Faces.Insert(
			topology.NewFaceWithColor(surface, region, *color))
	}

	return o.Faces.Insert(topology.NewFace(surface, region))
}
