// Package operations rewrites the immutable object graph: replacing one
// object with another rebuilds every container on the path to the root,
// while unchanged subgraphs are reused by handle.
//
// Every replace function recurses into the children of its container. If
// any child reports an update, the parent is rebuilt around the new child
// and reports an update itself; otherwise the original container is
// returned untouched. Matching is by handle identity, never by structural
// equality.
package operations

import (
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// ReplaceOutput is the result of a replace operation: the container
// (possibly rebuilt) and whether anything changed. Consumers must treat
// Object as a possibly-new root and never assume it aliases the input.
type ReplaceOutput[T any] struct {
	Object  storage.Handle[T]
	Updated bool
}

// ReplaceCurveInHalfEdge replaces a curve within a half-edge.
func ReplaceCurveInHalfEdge(
	o *topology.Objects,
	halfEdge storage.Handle[topology.HalfEdge],
	original, replacement storage.Handle[topology.Curve],
) ReplaceOutput[topology.HalfEdge] {
	e := halfEdge.Get()
	if e.Curve() != original {
		return ReplaceOutput[topology.HalfEdge]{Object: halfEdge}
	}

	updated := o.HalfEdges.Insert(topology.NewHalfEdge(
		replacement, e.Boundary(), e.StartVertex(), e.GlobalForm()))

	return ReplaceOutput[topology.HalfEdge]{Object: updated, Updated: true}
}

// ReplaceCurveInCycle replaces a curve within a cycle.
func ReplaceCurveInCycle(
	o *topology.Objects,
	cycle storage.Handle[topology.Cycle],
	original, replacement storage.Handle[topology.Curve],
) ReplaceOutput[topology.Cycle] {
	edges := cycle.Get().HalfEdges()

	updated := false
	newEdges := make([]storage.Handle[topology.HalfEdge], len(edges))
	for i, edge := range edges {
		result := ReplaceCurveInHalfEdge(o, edge, original, replacement)
		newEdges[i] = result.Object
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Cycle]{Object: cycle}
	}

	return ReplaceOutput[topology.Cycle]{
		Object:  o.Cycles.Insert(topology.NewCycle(newEdges)),
		Updated: true,
	}
}

// ReplaceCurveInRegion replaces a curve within a region.
func ReplaceCurveInRegion(
	o *topology.Objects,
	region storage.Handle[topology.Region],
	original, replacement storage.Handle[topology.Curve],
) ReplaceOutput[topology.Region] {
	r := region.Get()

	exterior := ReplaceCurveInCycle(o, r.Exterior(), original, replacement)

	updated := exterior.Updated
	interiors := make(
		[]storage.Handle[topology.Cycle], 0, r.Interiors().Len())
	for _, interior := range r.Interiors().Handles() {
		result := ReplaceCurveInCycle(o, interior, original, replacement)
		interiors = append(interiors, result.Object)
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Region]{Object: region}
	}

	return ReplaceOutput[topology.Region]{
		Object: o.Regions.Insert(
			topology.NewRegion(exterior.Object, interiors...)),
		Updated: true,
	}
}

// ReplaceCurveInFace replaces a curve within a face.
func ReplaceCurveInFace(
	o *topology.Objects,
	face storage.Handle[topology.Face],
	original, replacement storage.Handle[topology.Curve],
) ReplaceOutput[topology.Face] {
	f := face.Get()

	region := ReplaceCurveInRegion(o, f.Region(), original, replacement)
	if !region.Updated {
		return ReplaceOutput[topology.Face]{Object: face}
	}

	return ReplaceOutput[topology.Face]{
		Object:  o.Faces.Insert(rebuildFace(*f, region.Object)),
		Updated: true,
	}
}

// ReplaceCurveInShell replaces a curve within a shell.
func ReplaceCurveInShell(
	o *topology.Objects,
	shell storage.Handle[topology.Shell],
	original, replacement storage.Handle[topology.Curve],
) ReplaceOutput[topology.Shell] {
	faces := shell.Get().Faces().Handles()

	updated := false
	newFaces := make([]storage.Handle[topology.Face], len(faces))
	for i, face := range faces {
		result := ReplaceCurveInFace(o, face, original, replacement)
		newFaces[i] = result.Object
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Shell]{Object: shell}
	}

	return ReplaceOutput[topology.Shell]{
		Object:  o.Shells.Insert(topology.NewShell(newFaces...)),
		Updated: true,
	}
}

// ReplaceCurveInSolid replaces a curve within a solid.
func ReplaceCurveInSolid(
	o *topology.Objects,
	solid storage.Handle[topology.Solid],
	original, replacement storage.Handle[topology.Curve],
) ReplaceOutput[topology.Solid] {
	shells := solid.Get().Shells().Handles()

	updated := false
	newShells := make([]storage.Handle[topology.Shell], len(shells))
	for i, shell := range shells {
		result := ReplaceCurveInShell(o, shell, original, replacement)
		newShells[i] = result.Object
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Solid]{Object: solid}
	}

	return ReplaceOutput[topology.Solid]{
		Object:  o.Solids.Insert(topology.NewSolid(newShells...)),
		Updated: true,
	}
}

// ReplaceCurveInSketch replaces a curve within a sketch.
func ReplaceCurveInSketch(
	o *topology.Objects,
	sketch storage.Handle[topology.Sketch],
	original, replacement storage.Handle[topology.Curve],
) ReplaceOutput[topology.Sketch] {
	regions := sketch.Get().Regions().Handles()

	updated := false
	newRegions := make([]storage.Handle[topology.Region], len(regions))
	for i, region := range regions {
		result := ReplaceCurveInRegion(o, region, original, replacement)
		newRegions[i] = result.Object
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Sketch]{Object: sketch}
	}

	return ReplaceOutput[topology.Sketch]{
		Object:  o.Sketches.Insert(topology.NewSketch(newRegions...)),
		Updated: true,
	}
}

// ReplaceHalfEdgeInCycle replaces a half-edge within a cycle.
func ReplaceHalfEdgeInCycle(
	o *topology.Objects,
	cycle storage.Handle[topology.Cycle],
	original, replacement storage.Handle[topology.HalfEdge],
) ReplaceOutput[topology.Cycle] {
	edges := cycle.Get().HalfEdges()

	updated := false
	newEdges := make([]storage.Handle[topology.HalfEdge], len(edges))
	for i, edge := range edges {
		if edge == original {
			newEdges[i] = replacement
			updated = true
		} else {
			newEdges[i] = edge
		}
	}

	if !updated {
		return ReplaceOutput[topology.Cycle]{Object: cycle}
	}

	return ReplaceOutput[topology.Cycle]{
		Object:  o.Cycles.Insert(topology.NewCycle(newEdges)),
		Updated: true,
	}
}

// ReplaceHalfEdgeInRegion replaces a half-edge within a region.
func ReplaceHalfEdgeInRegion(
	o *topology.Objects,
	region storage.Handle[topology.Region],
	original, replacement storage.Handle[topology.HalfEdge],
) ReplaceOutput[topology.Region] {
	r := region.Get()

	exterior := ReplaceHalfEdgeInCycle(o, r.Exterior(), original, replacement)

	updated := exterior.Updated
	interiors := make(
		[]storage.Handle[topology.Cycle], 0, r.Interiors().Len())
	for _, interior := range r.Interiors().Handles() {
		result := ReplaceHalfEdgeInCycle(o, interior, original, replacement)
		interiors = append(interiors, result.Object)
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Region]{Object: region}
	}

	return ReplaceOutput[topology.Region]{
		Object: o.Regions.Insert(
			topology.NewRegion(exterior.Object, interiors...)),
		Updated: true,
	}
}

// ReplaceHalfEdgeInFace replaces a half-edge within a face.
func ReplaceHalfEdgeInFace(
	o *topology.Objects,
	face storage.Handle[topology.Face],
	original, replacement storage.Handle[topology.HalfEdge],
) ReplaceOutput[topology.Face] {
	f := face.Get()

	region := ReplaceHalfEdgeInRegion(o, f.Region(), original, replacement)
	if !region.Updated {
		return ReplaceOutput[topology.Face]{Object: face}
	}

	return ReplaceOutput[topology.Face]{
		Object:  o.Faces.Insert(rebuildFace(*f, region.Object)),
		Updated: true,
	}
}

// ReplaceHalfEdgeInShell replaces a half-edge within a shell.
func ReplaceHalfEdgeInShell(
	o *topology.Objects,
	shell storage.Handle[topology.Shell],
	original, replacement storage.Handle[topology.HalfEdge],
) ReplaceOutput[topology.Shell] {
	faces := shell.Get().Faces().Handles()

	updated := false
	newFaces := make([]storage.Handle[topology.Face], len(faces))
	for i, face := range faces {
		result := ReplaceHalfEdgeInFace(o, face, original, replacement)
		newFaces[i] = result.Object
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Shell]{Object: shell}
	}

	return ReplaceOutput[topology.Shell]{
		Object:  o.Shells.Insert(topology.NewShell(newFaces...)),
		Updated: true,
	}
}

// ReplaceHalfEdgeInSolid replaces a half-edge within a solid.
func ReplaceHalfEdgeInSolid(
	o *topology.Objects,
	solid storage.Handle[topology.Solid],
	original, replacement storage.Handle[topology.HalfEdge],
) ReplaceOutput[topology.Solid] {
	shells := solid.Get().Shells().Handles()

	updated := false
	newShells := make([]storage.Handle[topology.Shell], len(shells))
	for i, shell := range shells {
		result := ReplaceHalfEdgeInShell(o, shell, original, replacement)
		newShells[i] = result.Object
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Solid]{Object: solid}
	}

	return ReplaceOutput[topology.Solid]{
		Object:  o.Solids.Insert(topology.NewSolid(newShells...)),
		Updated: true,
	}
}

// ReplaceHalfEdgeInSketch replaces a half-edge within a sketch.
func ReplaceHalfEdgeInSketch(
	o *topology.Objects,
	sketch storage.Handle[topology.Sketch],
	original, replacement storage.Handle[topology.HalfEdge],
) ReplaceOutput[topology.Sketch] {
	regions := sketch.Get().Regions().Handles()

	updated := false
	newRegions := make([]storage.Handle[topology.Region], len(regions))
	for i, region := range regions {
		result := ReplaceHalfEdgeInRegion(o, region, original, replacement)
		newRegions[i] = result.Object
		updated = updated || result.Updated
	}

	if !updated {
		return ReplaceOutput[topology.Sketch]{Object: sketch}
	}

	return ReplaceOutput[topology.Sketch]{
		Object:  o.Sketches.Insert(topology.NewSketch(newRegions...)),
		Updated: true,
	}
}

// rebuildFace builds a copy of a face around a new region, carrying the
// color and internal flag over.
func rebuildFace(
	f topology.Face,
	region storage.Handle[topology.Region],
) topology.Face {
	var rebuilt topology.Face
	if color, ok := f.Color(); ok {
		rebuilt = topology.NewFaceWithColor(f.Surface(), region, color)
	} else {
		rebuilt = topology.NewFace(f.Surface(), region)
	}
	if f.IsInternal() {
		rebuilt = rebuilt.AsInternal()
	}

	return rebuilt
}
