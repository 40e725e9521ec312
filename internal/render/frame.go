package render

import (
	"github.com/go-gl/mathgl/mgl32"

	"pbj/internal/board"
	"pbj/internal/meshes"
)

// tileDepth sinks floor tiles half a cell below the objects standing on them.
const tileDepth = -0.5

// DrawCall draws one mesh with an object-to-world transform.
type DrawCall struct {
	Mesh          meshes.Mesh
	ObjectToWorld mgl32.Mat4
}

// ObjectToClip returns worldToClip * ObjectToWorld.
func (d DrawCall) ObjectToClip(worldToClip mgl32.Mat4) mgl32.Mat4 {
	return worldToClip.Mul4(d.ObjectToWorld)
}

// NormalToWorld returns the inverse transpose of the upper 3x3 of ObjectToWorld, widened to a
// 4x4 so it can be uploaded as a mat4 uniform.
func (d DrawCall) NormalToWorld() mgl32.Mat4 {
	return d.ObjectToWorld.Mat3().Transpose().Inv().Mat4()
}

// Scene is everything a frame depends on.
type Scene struct {
	Board          board.Board
	Keys           board.KeyLocations
	AvatarPosition mgl32.Vec3
	AvatarRotation mgl32.Quat
	Meshes         Meshes
	Lighting       Lighting
}

// Frame is a fully resolved frame ready for the GPU.
type Frame struct {
	WorldToClip mgl32.Mat4
	Lighting    Lighting
	Calls       []DrawCall
}

// Build lays out a frame for a width x height target: a tile under every cell, a counter on
// every edge cell without a key, then the avatar and the four keys.
func Build(s Scene, width, height int) Frame {
	b := s.Board
	calls := make([]DrawCall, 0, 2*b.Cells()+1+board.NumKeys)

	ident := mgl32.QuatIdent()
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			pos := mgl32.Vec3{float32(x), float32(y), 0}
			calls = append(calls, DrawCall{
				Mesh:          s.Meshes.Tile,
				ObjectToWorld: Place(pos.Add(mgl32.Vec3{0, 0, tileDepth}), ident),
			})
			if b.OnEdge(x, y) && !s.Keys.Occupied(x, y) {
				calls = append(calls, DrawCall{
					Mesh:          s.Meshes.Counter,
					ObjectToWorld: Place(pos, ident),
				})
			}
		}
	}

	calls = append(calls, DrawCall{
		Mesh:          s.Meshes.Avatar,
		ObjectToWorld: Place(s.AvatarPosition, s.AvatarRotation),
	})
	for _, k := range board.Keys {
		calls = append(calls, DrawCall{
			Mesh:          s.Meshes.Keys[k],
			ObjectToWorld: PlaceCell(s.Keys[k], 0),
		})
	}

	return Frame{
		WorldToClip: WorldToClip(b, width, height),
		Lighting:    s.Lighting,
		Calls:       calls,
	}
}
