// Package processor runs the full shape pipeline: it takes a solid or
// sketch, determines a tolerance, triangulates every face, and aggregates
// the triangles into a mesh.
package processor

import (
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/topology"
)

// MeshTriangle is one triangle of a mesh, with the color and internal
// flag of the face it came from.
type MeshTriangle struct {
	Inner      math3d.Triangle3
	Color      topology.Color
	IsInternal bool
}

// TriMesh is an unindexed triangle mesh. Triangle order is unspecified
// but deterministic for a given input. Vertex deduplication into an
// indexed mesh is an export-time concern, not part of this contract.
type TriMesh struct {
	Triangles []MeshTriangle
}

// Aabb returns the bounding box of the mesh.
func (m TriMesh) Aabb() math3d.Aabb {
	var points []math3d.Point3
	for _, t := range m.Triangles {
		points = append(points, t.Inner.Points[:]...)
	}

	return math3d.AabbFromPoints(points)
}
