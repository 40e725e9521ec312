package meshes

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// VertexSize is the packed size of one vertex record in the dat0 chunk.
const VertexSize = 28

// Vertex is one interleaved vertex: position, normal, and an RGBA8 color.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	Color    [4]uint8
}

func decodeVertex(b []byte) Vertex {
	var v Vertex
	for i := 0; i < 3; i++ {
		v.Position[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
		v.Normal[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[12+i*4:]))
	}
	copy(v.Color[:], b[24:28])
	return v
}

func (v Vertex) appendTo(dst []byte) []byte {
	for _, f := range v.Position {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	for _, f := range v.Normal {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(f))
	}
	return append(dst, v.Color[:]...)
}
