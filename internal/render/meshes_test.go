package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pbj/internal/board"
	"pbj/internal/meshes"
)

func tri() []meshes.Vertex {
	return []meshes.Vertex{
		{Position: mgl32.Vec3{0, 0, 0}},
		{Position: mgl32.Vec3{1, 0, 0}},
		{Position: mgl32.Vec3{0, 1, 0}},
	}
}

func catalogWith(t *testing.T, names ...string) *meshes.Catalog {
	t.Helper()
	entries := make([]meshes.Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, meshes.Entry{Name: n, Vertices: tri()})
	}
	c, err := meshes.Load(meshes.Encode(entries))
	require.NoError(t, err)
	return c
}

func TestResolveMeshes(t *testing.T) {
	c := catalogWith(t, Required...)
	m, err := ResolveMeshes(c)
	require.NoError(t, err)

	for i, name := range Required {
		want := meshes.Mesh{First: uint32(3 * i), Count: 3}
		got, err := c.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, meshes.Mesh{First: 0, Count: 3}, m.Avatar)
	assert.Equal(t, meshes.Mesh{First: 3, Count: 3}, m.Keys[board.Peanut])
	assert.Equal(t, meshes.Mesh{First: 15, Count: 3}, m.Keys[board.Serve])
	assert.Equal(t, meshes.Mesh{First: 18, Count: 3}, m.Tile)
}

func TestResolveMeshesMissing(t *testing.T) {
	c := catalogWith(t, MeshAvatar, MeshPeanut, MeshBread, MeshCounter, MeshServe, MeshTile)
	_, err := ResolveMeshes(c)
	var nf *meshes.NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, MeshJelly, nf.Name)
}

func TestResolveMeshesEmpty(t *testing.T) {
	entries := make([]meshes.Entry, 0, len(Required))
	for _, n := range Required {
		v := tri()
		if n == MeshCounter {
			v = nil
		}
		entries = append(entries, meshes.Entry{Name: n, Vertices: v})
	}
	c, err := meshes.Load(meshes.Encode(entries))
	require.NoError(t, err)

	_, err = ResolveMeshes(c)
	var fe *meshes.FormatError
	require.ErrorAs(t, err, &fe)
}
