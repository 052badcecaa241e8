// Package scene holds the live objects of the 3D world: their poses, markers,
// meshes and materials, arranged as a parent/child hierarchy.
package scene

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned when an object ID is not in the scene.
var ErrNotFound = errors.New("scene object not found")

// Marker selects which per-frame systems act on an object.
type Marker uint32

const (
	MarkerWorld  Marker = 1 << iota // Created by map loading, removed on the next load
	MarkerCamera                    // Active-camera candidate
	MarkerSolid                     // Wall block
	MarkerSprite                    // Billboard that faces the camera
	MarkerStatic                    // Floor and ceiling geometry
)

// Has reports whether every bit of other is set.
func (m Marker) Has(other Marker) bool {
	return m&other == other
}

// MeshKind identifies the geometry used to draw an object.
type MeshKind int

const (
	MeshPlane  MeshKind = iota // Square in the local XZ plane, normal +Y
	MeshBlock                  // Unit cube walls standing on the local XZ plane
	MeshSprite                 // Unit quad in the local YZ plane, normal +X
)

// Mesh is the geometry of an object.
type Mesh struct {
	Kind MeshKind
	Size float32 // Edge length; planes only
}

// Material describes how an object's surface is shaded.
type Material struct {
	Texture    string // Asset path; empty for untextured
	BaseColor  [4]float32
	AlphaBlend bool
	Unlit      bool
}

// Object is one live entity in the scene.
type Object struct {
	ID        uuid.UUID
	Name      string
	Transform Transform
	Markers   Marker
	Mesh      *Mesh
	Material  *Material

	parent   uuid.UUID
	children []uuid.UUID
}

// Parent returns the parent ID, or uuid.Nil for a root object.
func (o *Object) Parent() uuid.UUID {
	return o.parent
}

// Children returns the IDs of direct children.
func (o *Object) Children() []uuid.UUID {
	return o.children
}

// Scene owns every live object. It is not safe for concurrent use; the frame
// loop is its only writer.
type Scene struct {
	objects map[uuid.UUID]*Object
	order   []uuid.UUID
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		objects: make(map[uuid.UUID]*Object),
	}
}

// Spawn adds a root object and returns the stored copy with its new ID.
func (s *Scene) Spawn(obj Object) *Object {
	o := &obj
	o.ID = uuid.New()
	o.parent = uuid.Nil
	o.children = nil
	s.objects[o.ID] = o
	s.order = append(s.order, o.ID)
	return o
}

// SpawnChild adds an object under parent.
func (s *Scene) SpawnChild(parent uuid.UUID, obj Object) (*Object, error) {
	p, ok := s.objects[parent]
	if !ok {
		return nil, ErrNotFound
	}
	o := s.Spawn(obj)
	o.parent = parent
	p.children = append(p.children, o.ID)
	return o, nil
}

// Get returns the object with the given ID.
func (s *Scene) Get(id uuid.UUID) (*Object, bool) {
	o, ok := s.objects[id]
	return o, ok
}

// DespawnRecursive removes an object and all of its descendants.
// Returns the number of objects removed.
func (s *Scene) DespawnRecursive(id uuid.UUID) int {
	o, ok := s.objects[id]
	if !ok {
		return 0
	}
	if p, ok := s.objects[o.parent]; ok {
		p.children = removeID(p.children, id)
	}

	removed := make(map[uuid.UUID]bool)
	s.collect(id, removed)
	for rid := range removed {
		delete(s.objects, rid)
	}

	kept := s.order[:0]
	for _, oid := range s.order {
		if !removed[oid] {
			kept = append(kept, oid)
		}
	}
	s.order = kept
	return len(removed)
}

func (s *Scene) collect(id uuid.UUID, into map[uuid.UUID]bool) {
	o, ok := s.objects[id]
	if !ok || into[id] {
		return
	}
	into[id] = true
	for _, c := range o.children {
		s.collect(c, into)
	}
}

// Query returns every object carrying all bits of m, in spawn order.
func (s *Scene) Query(m Marker) []*Object {
	var out []*Object
	for _, id := range s.order {
		if o := s.objects[id]; o.Markers.Has(m) {
			out = append(out, o)
		}
	}
	return out
}

// Objects returns every object in spawn order.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.objects[id])
	}
	return out
}

// Len returns the number of live objects.
func (s *Scene) Len() int {
	return len(s.order)
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
