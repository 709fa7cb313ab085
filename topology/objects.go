package topology

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/storage"
)

// Objects is the registry of all object stores for one kernel session. It
// owns one store per object type and the canonical plane surfaces.
//
// Stores are append-only; objects live until the registry is dropped.
// Graph-mutating operations serialize on each store's internal lock, while
// handle dereferencing needs no synchronization.
type Objects struct {
	Curves          *storage.Store[Curve]
	Cycles          *storage.Store[Cycle]
	Faces           *storage.Store[Face]
	GlobalCurves    *storage.Store[GlobalCurve]
	GlobalEdges     *storage.Store[GlobalEdge]
	GlobalVertices  *storage.Store[GlobalVertex]
	HalfEdges       *storage.Store[HalfEdge]
	Regions         *storage.Store[Region]
	Shells          *storage.Store[Shell]
	Sketches        *storage.Store[Sketch]
	Solids          *storage.Store[Solid]
	SurfaceVertices *storage.Store[SurfaceVertex]
	Surfaces        *storage.Store[geometry.Surface]
	Vertices        *storage.Store[Vertex]

	xyPlane storage.Handle[geometry.Surface]
	xzPlane storage.Handle[geometry.Surface]
	yzPlane storage.Handle[geometry.Surface]
}

// NewObjects initializes a registry with empty stores and the canonical
// planes inserted.
func NewObjects() *Objects {
	o := &Objects{
		Curves:          storage.NewStore[Curve](),
		Cycles:          storage.NewStore[Cycle](),
		Faces:           storage.NewStore[Face](),
		GlobalCurves:    storage.NewStore[GlobalCurve](),
		GlobalEdges:     storage.NewStore[GlobalEdge](),
		GlobalVertices:  storage.NewStore[GlobalVertex](),
		HalfEdges:       storage.NewStore[HalfEdge](),
		Regions:         storage.NewStore[Region](),
		Shells:          storage.NewStore[Shell](),
		Sketches:        storage.NewStore[Sketch](),
		Solids:          storage.NewStore[Solid](),
		SurfaceVertices: storage.NewStore[SurfaceVertex](),
		Surfaces:        storage.NewStore[geometry.Surface](),
		Vertices:        storage.NewStore[Vertex](),
	}

	o.xyPlane = o.Surfaces.Insert(geometry.XYPlane())
	o.xzPlane = o.Surfaces.Insert(geometry.XZPlane())
	o.yzPlane = o.Surfaces.Insert(geometry.YZPlane())

	return o
}

// XYPlane returns the canonical xy plane.
func (o *Objects) XYPlane() storage.Handle[geometry.Surface] {
	return o.xyPlane
}

// XZPlane returns the canonical xz plane.
func (o *Objects) XZPlane() storage.Handle[geometry.Surface] {
	return o.xzPlane
}

// YZPlane returns the canonical yz plane.
func (o *Objects) YZPlane() storage.Handle[geometry.Surface] {
	return o.yzPlane
}
