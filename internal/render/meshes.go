package render

import (
	"fmt"

	"pbj/internal/board"
	"pbj/internal/meshes"
)

// Names of the meshes every level draws.
const (
	MeshAvatar  = "Avatar"
	MeshPeanut  = "Peanut"
	MeshBread   = "Bread"
	MeshJelly   = "Jelly"
	MeshCounter = "Counter"
	MeshServe   = "Serve"
	MeshTile    = "Tile"
)

// Required lists the mesh names that must be present in the catalog.
var Required = []string{MeshAvatar, MeshPeanut, MeshBread, MeshJelly, MeshCounter, MeshServe, MeshTile}

// Meshes are the resolved ranges for everything the scene draws. Keys is indexed by board.Key.
type Meshes struct {
	Avatar  meshes.Mesh
	Counter meshes.Mesh
	Tile    meshes.Mesh
	Keys    [board.NumKeys]meshes.Mesh
}

// catalog is the part of *meshes.Catalog needed to resolve meshes.
type catalog interface {
	Lookup(name string) (meshes.Mesh, error)
}

// ResolveMeshes looks up every required mesh. A missing name returns the catalog's
// *meshes.NotFoundError; an empty range returns a *meshes.FormatError.
func ResolveMeshes(c catalog) (Meshes, error) {
	found := make(map[string]meshes.Mesh, len(Required))
	for _, name := range Required {
		m, err := c.Lookup(name)
		if err != nil {
			return Meshes{}, err
		}
		if m.Count == 0 {
			return Meshes{}, &meshes.FormatError{Reason: fmt.Sprintf("mesh %q has no vertices", name)}
		}
		found[name] = m
	}
	var out Meshes
	out.Avatar = found[MeshAvatar]
	out.Counter = found[MeshCounter]
	out.Tile = found[MeshTile]
	out.Keys[board.Peanut] = found[MeshPeanut]
	out.Keys[board.Bread] = found[MeshBread]
	out.Keys[board.Jelly] = found[MeshJelly]
	out.Keys[board.Serve] = found[MeshServe]
	return out, nil
}
