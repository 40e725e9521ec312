package meshes

import (
	"encoding/binary"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Entry is one named mesh for Encode.
type Entry struct {
	Name     string
	Vertices []Vertex
}

// Encode packs entries into a blob in the format Load reads. Meshes are laid out back to
// back in entry order.
func Encode(entries []Entry) []byte {
	var dat, str, idx []byte
	var vertexCount uint32
	for _, e := range entries {
		nameBegin := uint32(len(str))
		str = append(str, e.Name...)
		for _, v := range e.Vertices {
			dat = v.appendTo(dat)
		}
		idx = binary.LittleEndian.AppendUint32(idx, nameBegin)
		idx = binary.LittleEndian.AppendUint32(idx, uint32(len(str)))
		idx = binary.LittleEndian.AppendUint32(idx, vertexCount)
		vertexCount += uint32(len(e.Vertices))
		idx = binary.LittleEndian.AppendUint32(idx, vertexCount)
	}
	out := appendChunk(nil, chunkVertices, dat)
	out = appendChunk(out, chunkNames, str)
	return appendChunk(out, chunkIndex, idx)
}

// Compress validates blob and returns it as a single zstd frame, which Open accepts in place
// of the raw blob.
func Compress(blob []byte) ([]byte, error) {
	if _, err := Load(blob); err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("meshes: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(blob, nil), nil
}
