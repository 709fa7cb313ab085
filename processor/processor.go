package processor

import (
	"github.com/sksmith/brep/approx"
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
	"github.com/sksmith/brep/triangulate"
)

// toleranceDivisor relates a model's smallest extent to the inferred
// tolerance.
const toleranceDivisor = 1000

// DebugInfo collects per-face triangulation diagnostics.
type DebugInfo struct {
	Faces []triangulate.DebugFace
}

// Processor turns topology into meshes. The zero value infers the
// tolerance from the model size; WithTolerance overrides it.
type Processor struct {
	tolerance *approx.Tolerance
}

// NewProcessor constructs a processor that infers its tolerance.
func NewProcessor() *Processor {
	return &Processor{}
}

// WithTolerance constructs a processor with a fixed tolerance.
func WithTolerance(tolerance approx.Tolerance) *Processor {
	return &Processor{tolerance: &tolerance}
}

// TriangulateSolid meshes all faces of all shells of a solid. Pass a
// non-nil debug to collect diagnostics.
func (p *Processor) TriangulateSolid(
	solid storage.Handle[topology.Solid],
	debug *DebugInfo,
) TriMesh {
	var faces []storage.Handle[topology.Face]
	for _, shell := range solid.Get().Shells().Handles() {
		faces = append(faces, shell.Get().Faces().Handles()...)
	}

	return p.triangulateFaces(faces, debug)
}

// TriangulateSketch meshes a sketch by building one face per region on
// the given surface.
func (p *Processor) TriangulateSketch(
	o *topology.Objects,
	sketch storage.Handle[topology.Sketch],
	surface storage.Handle[geometry.Surface],
	debug *DebugInfo,
) TriMesh {
	var faces []storage.Handle[topology.Face]
	for _, region := range sketch.Get().Regions().Handles() {
		faces = append(faces, o.Faces.Insert(
			topology.NewFace(surface, region)))
	}

	return p.triangulateFaces(faces, debug)
}

func (p *Processor) triangulateFaces(
	faces []storage.Handle[topology.Face],
	debug *DebugInfo,
) TriMesh {
	tolerance := p.resolveTolerance(faces)

	// One approximation cache for all faces, so that shared edges reuse
	// the exact same boundary points and the mesh closes without gaps.
	cache := approx.NewCache()

	var mesh TriMesh
	for _, face := range faces {
		var faceDebug *triangulate.DebugFace
		if debug != nil {
			debug.Faces = append(debug.Faces, triangulate.DebugFace{})
			faceDebug = &debug.Faces[len(debug.Faces)-1]
		}

		for _, t := range triangulate.Face(face, tolerance, cache, faceDebug) {
			mesh.Triangles = append(mesh.Triangles, MeshTriangle{
				Inner:      t.Inner,
				Color:      t.Color,
				IsInternal: t.IsInternal,
			})
		}
	}

	return mesh
}

// resolveTolerance returns the user-specified tolerance, or infers one
// from the model: the smallest non-zero extent of the bounding box,
// divided by 1000.
func (p *Processor) resolveTolerance(
	faces []storage.Handle[topology.Face],
) approx.Tolerance {
	if p.tolerance != nil {
		return *p.tolerance
	}

	extent := facesAabb(faces).SmallestNonZeroExtent()
	if extent == 0 {
		extent = 1
	}

	return approx.MustTolerance(extent / toleranceDivisor)
}

// facesAabb computes a conservative bounding box of the given faces from
// their boundary geometry: vertex positions, plus the full extent of any
// circle a boundary edge runs along.
func facesAabb(faces []storage.Handle[topology.Face]) math3d.Aabb {
	var points []math3d.Point3

	for _, face := range faces {
		surface := face.Get().Surface().Get()
		for _, cycle := range face.Get().Region().Get().AllCycles() {
			for _, edge := range cycle.Get().HalfEdges() {
				e := edge.Get()
				points = append(points,
					e.StartVertex().Get().GlobalForm().Get().Position())

				circle, ok := e.Curve().Get().Path().(geometry.Circle2)
				if !ok {
					continue
				}

				// Bound the whole circle, not just the arc. Coarse, but
				// only the order of magnitude matters here.
				global, ok := surface.PathToGlobal(circle).(geometry.Circle3)
				if !ok {
					continue
				}
				reach := math3d.Vector3{
					X: global.A.X.Abs() + global.B.X.Abs(),
					Y: global.A.Y.Abs() + global.B.Y.Abs(),
					Z: global.A.Z.Abs() + global.B.Z.Abs(),
				}
				points = append(points,
					global.Center.Add(reach),
					global.Center.Add(reach.Scale(-1)),
				)
			}
		}
	}

	return math3d.AabbFromPoints(points)
}
