package scene

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpawnAssignsIDsInOrder(t *testing.T) {
	s := New()
	a := s.Spawn(Object{Name: "a", Markers: MarkerWorld})
	b := s.Spawn(Object{Name: "b", Markers: MarkerWorld | MarkerCamera})

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 2, s.Len())

	got, ok := s.Get(b.ID)
	require.True(t, ok)
	assert.Same(t, b, got)

	names := []string{}
	for _, o := range s.Objects() {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestQueryByMarker(t *testing.T) {
	s := New()
	s.Spawn(Object{Name: "floor", Markers: MarkerWorld | MarkerStatic})
	s.Spawn(Object{Name: "cam", Markers: MarkerWorld | MarkerCamera})
	s.Spawn(Object{Name: "hud"})
	s.Spawn(Object{Name: "barrel", Markers: MarkerWorld | MarkerSprite})

	assert.Len(t, s.Query(MarkerWorld), 3)
	cams := s.Query(MarkerCamera)
	require.Len(t, cams, 1)
	assert.Equal(t, "cam", cams[0].Name)
	assert.Empty(t, s.Query(MarkerSolid))
	assert.Len(t, s.Query(MarkerWorld|MarkerSprite), 1)
}

func TestDespawnRecursive(t *testing.T) {
	s := New()
	root := s.Spawn(Object{Name: "root"})
	child, err := s.SpawnChild(root.ID, Object{Name: "child"})
	require.NoError(t, err)
	grandchild, err := s.SpawnChild(child.ID, Object{Name: "grandchild"})
	require.NoError(t, err)
	other := s.Spawn(Object{Name: "other"})

	assert.Equal(t, root.ID, child.Parent())
	assert.Equal(t, []uuid.UUID{grandchild.ID}, child.Children())

	assert.Equal(t, 3, s.DespawnRecursive(root.ID))
	assert.Equal(t, 1, s.Len())
	_, ok := s.Get(grandchild.ID)
	assert.False(t, ok)
	_, ok = s.Get(other.ID)
	assert.True(t, ok)

	assert.Equal(t, 0, s.DespawnRecursive(root.ID), "second despawn is a no-op")
}

func TestDespawnChildDetachesFromParent(t *testing.T) {
	s := New()
	root := s.Spawn(Object{Name: "root"})
	child, err := s.SpawnChild(root.ID, Object{Name: "child"})
	require.NoError(t, err)

	assert.Equal(t, 1, s.DespawnRecursive(child.ID))
	assert.Empty(t, root.Children())
	assert.Equal(t, 1, s.Len())
}

func TestSpawnChildUnknownParent(t *testing.T) {
	s := New()
	_, err := s.SpawnChild(uuid.New(), Object{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestMarkerHas(t *testing.T) {
	m := MarkerWorld | MarkerSprite
	assert.True(t, m.Has(MarkerWorld))
	assert.True(t, m.Has(MarkerWorld|MarkerSprite))
	assert.False(t, m.Has(MarkerCamera))
	assert.False(t, m.Has(MarkerSprite|MarkerCamera))
}
