// Package sweep constructs new topology by extruding existing topology
// along a vector: a vertex sweeps into an edge, a half-edge into a side
// face, a cycle into a set of connected side walls, and a sketch into a
// closed solid.
package sweep

import (
	"github.com/sksmith/brep/geometry"
	"github.com/sksmith/brep/math3d"
	"github.com/sksmith/brep/storage"
	"github.com/sksmith/brep/topology"
)

// Cache ensures identity across the boundaries of a sweep. The swept
// counterpart of each source object is created once and reused: endpoints
// shared between adjacent side faces resolve to the same global vertex,
// the vertical edge at a shared corner is one global edge referenced by
// both neighboring walls, and the top rim is stitched from shared surface
// vertices.
//
// A cache is keyed by source object identity and is only valid for a
// single sweep path; use one cache per sweep operation.
type Cache struct {
	topGlobalVertices  map[storage.ObjectID]storage.Handle[topology.GlobalVertex]
	verticalEdges      map[storage.ObjectID]storage.Handle[topology.GlobalEdge]
	topGlobalEdges     map[storage.ObjectID]storage.Handle[topology.GlobalEdge]
	topSurfaceVertices map[storage.ObjectID]storage.Handle[topology.SurfaceVertex]
}

// NewCache constructs an empty sweep cache.
func NewCache() *Cache {
	return &Cache{
		topGlobalVertices:  make(map[storage.ObjectID]storage.Handle[topology.GlobalVertex]),
		verticalEdges:      make(map[storage.ObjectID]storage.Handle[topology.GlobalEdge]),
		topGlobalEdges:     make(map[storage.ObjectID]storage.Handle[topology.GlobalEdge]),
		topSurfaceVertices: make(map[storage.ObjectID]storage.Handle[topology.SurfaceVertex]),
	}
}

// topGlobalVertex returns the swept counterpart of a global vertex,
// creating it on first use.
func (c *Cache) topGlobalVertex(
	o *topology.Objects,
	bottom storage.Handle[topology.GlobalVertex],
	path math3d.Vector3,
) storage.Handle[topology.GlobalVertex] {
	if top, ok := c.topGlobalVertices[bottom.ID()]; ok {
		return top
	}

	top := o.GlobalVertices.Insert(topology.NewGlobalVertex(
		bottom.Get().Position().Add(path)))
	c.topGlobalVertices[bottom.ID()] = top

	return top
}

// SweepGlobalVertex sweeps a global vertex into a global edge connecting
// it to its swept counterpart. Returns the edge and the ordered pair
// (bottom, top); the edge's own vertices are in normalized order, which
// the caller cannot rely on.
func SweepGlobalVertex(
	o *topology.Objects,
	bottom storage.Handle[topology.GlobalVertex],
	path math3d.Vector3,
	cache *Cache,
) (storage.Handle[topology.GlobalEdge], [2]storage.Handle[topology.GlobalVertex]) {
	top := cache.topGlobalVertex(o, bottom, path)

	edge, ok := cache.verticalEdges[bottom.ID()]
	if !ok {
		edge = o.GlobalEdges.Insert(topology.NewGlobalEdge(bottom, top))
		cache.verticalEdges[bottom.ID()] = edge
	}

	return edge, [2]storage.Handle[topology.GlobalVertex]{bottom, top}
}

// topGlobalEdge returns the swept counterpart of a global edge, creating
// it on first use.
func (c *Cache) topGlobalEdge(
	o *topology.Objects,
	bottom storage.Handle[topology.GlobalEdge],
	path math3d.Vector3,
) storage.Handle[topology.GlobalEdge] {
	if top, ok := c.topGlobalEdges[bottom.ID()]; ok {
		return top
	}

	vertices := bottom.Get().Vertices()
	top := o.GlobalEdges.Insert(topology.NewGlobalEdge(
		c.topGlobalVertex(o, vertices[0], path),
		c.topGlobalVertex(o, vertices[1], path),
	))
	c.topGlobalEdges[bottom.ID()] = top

	return top
}

// topSurfaceVertex returns the top-surface counterpart of a bottom
// surface vertex, creating it on first use. The top surface is the bottom
// surface translated by the sweep path, so the surface coordinates carry
// over unchanged.
func (c *Cache) topSurfaceVertex(
	o *topology.Objects,
	bottom storage.Handle[topology.SurfaceVertex],
	topSurface storage.Handle[geometry.Surface],
	path math3d.Vector3,
) storage.Handle[topology.SurfaceVertex] {
	if top, ok := c.topSurfaceVertices[bottom.ID()]; ok {
		return top
	}

	top := o.SurfaceVertices.Insert(topology.NewSurfaceVertex(
		bottom.Get().Position(),
		topSurface,
		c.topGlobalVertex(o, bottom.Get().GlobalForm(), path),
	))
	c.topSurfaceVertices[bottom.ID()] = top

	return top
}
