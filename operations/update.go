package operations

import (
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// applySelector transforms the selected members of a handle slice.
// Returns the (possibly new) slice and whether anything changed; an
// update function returning the same handle changes nothing.
func applySelector[T any](
	handles []storage.Handle[T],
	selector Selector[T],
	update func(storage.Handle[T]) storage.Handle[T],
) ([]storage.Handle[T], bool) {
	updated := false

	out := make([]storage.Handle[T], len(handles))
	copy(out, handles)
	for _, i := range selector.Select(handles) {
		replacement := update(out[i])
		if replacement != out[i] {
			out[i] = replacement
			updated = true
		}
	}

	return out, updated
}

// UpdateHalfEdgesInCycle transforms the selected half-edges of a cycle.
func UpdateHalfEdgesInCycle(
	o *topology.Objects,
	cycle storage.Handle[topology.Cycle],
	selector Selector[topology.HalfEdge],
	update func(storage.Handle[topology.HalfEdge]) storage.Handle[topology.HalfEdge],
) ReplaceOutput[topology.Cycle] {
	edges, updated := applySelector(cycle.Get().HalfEdges(), selector, update)
	if !updated {
		return ReplaceOutput[topology.Cycle]{Object: cycle}
	}

	return ReplaceOutput[topology.Cycle]{
		Object:  o.Cycles.Insert(topology.NewCycle(edges)),
		Updated: true,
	}
}

// UpdateInteriorsInRegion transforms the selected interior cycles of a
// region.
func UpdateInteriorsInRegion(
	o *topology.Objects,
	region storage.Handle[topology.Region],
	selector Selector[topology.Cycle],
	update func(storage.Handle[topology.Cycle]) storage.Handle[topology.Cycle],
) ReplaceOutput[topology.Region] {
	r := region.Get()

	interiors, updated := applySelector(
		r.Interiors().Handles(), selector, update)
	if !updated {
		return ReplaceOutput[topology.Region]{Object: region}
	}

	return ReplaceOutput[topology.Region]{
		Object: o.Regions.Insert(
			topology.NewRegion(r.Exterior(), interiors...)),
		Updated: true,
	}
}

// UpdateFacesInShell transforms the selected faces of a shell.
func UpdateFacesInShell(
	o *topology.Objects,
	shell storage.Handle[topology.Shell],
	selector Selector[topology.Face],
	update func(storage.Handle[topology.Face]) storage.Handle[topology.Face],
) ReplaceOutput[topology.Shell] {
	faces, updated := applySelector(
		shell.Get().Faces().Handles(), selector, update)
	if !updated {
		return ReplaceOutput[topology.Shell]{Object: shell}
	}

	return ReplaceOutput[topology.Shell]{
		Object:  o.Shells.Insert(topology.NewShell(faces...)),
		Updated: true,
	}
}
