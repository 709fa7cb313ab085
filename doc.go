// Package brep is a boundary-representation CAD kernel: it maintains a
// topological model of solids assembled from surfaces, curves, and
// points, and converts that model into triangle meshes.
//
// # Architecture
//
// The kernel is split into small packages, leaves first:
//
//   - math3d: finite-checked scalars, vectors, points, bounding boxes,
//     transforms
//   - robust: exact-sign geometric predicates
//   - storage: append-only object stores with identity-carrying handles
//   - geometry: paths, curves, and swept surfaces
//   - topology: the object graph (vertices, edges, cycles, faces,
//     shells, solids, sketches) and its identity layer
//   - intersect: ray/segment, polygon, and face/point intersection
//   - approx: deterministic curve approximation at a tolerance
//   - triangulate: constrained Delaunay triangulation of faces
//   - sweep: extrusion of sketches into solids
//   - validate: structural and geometric consistency checks
//   - operations: persistent replace/update rewrites of the graph
//   - processor: the pipeline from topology to triangle mesh
//
// # Basic Usage
//
// Build topology through an Objects registry, sweep it, and mesh it:
//
//	o := topology.NewObjects()
//
//	cycle := topology.BuildPolygonCycle(o, o.XYPlane(), []math3d.Point2{
//		{U: 0, V: 0}, {U: 1, V: 0}, {U: 0, V: 1},
//	})
//	sketch := o.Sketches.Insert(topology.NewSketch(
//		o.Regions.Insert(topology.NewRegion(cycle))))
//
//	solid := sweep.Sketch(o, sketch, o.XYPlane(), nil, math3d.Vector3{Z: 1})
//	mesh := processor.NewProcessor().TriangulateSolid(solid, nil)
//
// # Identity
//
// Objects are immutable once inserted into a store. Handles carry
// identity: two handles are the same object only if they reference the
// same storage slot, regardless of structural equality. All consistency
// checks in the kernel compare identity, never equality.
//
// # Validation
//
// Vertices, surface vertices, half-edges, cycles, faces, sketches, shells,
// and solids can be checked:
//
//	for _, err := range validate.Solid(solid, validate.DefaultConfig()) {
//		log.Printf("invalid solid: %v", err)
//	}
//
// Validation returns all findings as a list and never short-circuits.
//
// # Determinism
//
// Curve approximation is deterministic for a given curve and tolerance,
// independent of the boundary being approximated, and approximations are
// shared between the two half-edges of an edge. Adjacent faces therefore
// produce identical points along shared edges, and meshes close without
// gaps.
//
// # Thread Safety
//
// Stores serialize insertions internally; dereferencing handles is safe
// from any number of goroutines, since stored objects never move and are
// immutable.
package brep
