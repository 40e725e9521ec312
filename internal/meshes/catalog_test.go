package meshes

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triangle(color uint8) []Vertex {
	return []Vertex{
		{Position: mgl32.Vec3{0, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, Color: [4]uint8{color, 0, 0, 255}},
		{Position: mgl32.Vec3{1, 0, 0}, Normal: mgl32.Vec3{0, 0, 1}, Color: [4]uint8{color, 0, 0, 255}},
		{Position: mgl32.Vec3{0, 1, 0}, Normal: mgl32.Vec3{0, 0, 1}, Color: [4]uint8{color, 0, 0, 255}},
	}
}

// rawBlob builds a blob from explicit index records so tests can corrupt them.
func rawBlob(vertices int, names string, records [][4]uint32) []byte {
	var dat []byte
	for i := 0; i < vertices; i++ {
		dat = Vertex{}.appendTo(dat)
	}
	var idx []byte
	for _, r := range records {
		for _, f := range r {
			idx = binary.LittleEndian.AppendUint32(idx, f)
		}
	}
	out := appendChunk(nil, chunkVertices, dat)
	out = appendChunk(out, chunkNames, []byte(names))
	return appendChunk(out, chunkIndex, idx)
}

func TestLoadRoundTrip(t *testing.T) {
	blob := Encode([]Entry{
		{Name: "Tile", Vertices: triangle(10)},
		{Name: "Avatar", Vertices: append(triangle(20), triangle(30)...)},
	})

	c, err := Load(blob)
	require.NoError(t, err)

	assert.Equal(t, 9, c.Len())
	assert.Equal(t, 9*VertexSize, c.Size())
	assert.Equal(t, []string{"Avatar", "Tile"}, c.Names())
	assert.Zero(t, c.Trailing())

	tile, err := c.Lookup("Tile")
	require.NoError(t, err)
	assert.Equal(t, Mesh{First: 0, Count: 3}, tile)

	avatar, err := c.Lookup("Avatar")
	require.NoError(t, err)
	assert.Equal(t, Mesh{First: 3, Count: 6}, avatar)

	v := c.Vertices()[4]
	assert.Equal(t, mgl32.Vec3{1, 0, 0}, v.Position)
	assert.Equal(t, mgl32.Vec3{0, 0, 1}, v.Normal)
	assert.Equal(t, [4]uint8{20, 0, 0, 255}, v.Color)
}

func TestLookupMissing(t *testing.T) {
	c, err := Load(Encode([]Entry{{Name: "Tile", Vertices: triangle(1)}}))
	require.NoError(t, err)

	_, err = c.Lookup("Jelly")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Jelly", nf.Name)
}

func TestLoadRejectsBadBlobs(t *testing.T) {
	good := Encode([]Entry{{Name: "Tile", Vertices: triangle(1)}})

	tests := []struct {
		name string
		blob []byte
	}{
		{"empty", nil},
		{"wrong first magic", append([]byte("xxx0"), good[4:]...)},
		{"truncated", good[:len(good)-3]},
		{"size past end of blob", binary.LittleEndian.AppendUint32([]byte(chunkVertices), 0xFFFFFFE0)},
		{"vertex chunk not a multiple of 28", appendChunk(nil, chunkVertices, make([]byte, 27))},
		{"name end past names", rawBlob(3, "Tile", [][4]uint32{{0, 5, 0, 3}})},
		{"name begin after end", rawBlob(3, "Tile", [][4]uint32{{3, 2, 0, 3}})},
		{"vertex end past buffer", rawBlob(3, "Tile", [][4]uint32{{0, 4, 0, 4}})},
		{"vertex begin after end", rawBlob(3, "Tile", [][4]uint32{{0, 4, 2, 1}})},
		{"duplicate name", rawBlob(3, "TileTile", [][4]uint32{{0, 4, 0, 3}, {4, 8, 0, 1}})},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(tc.blob)
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.NotEmpty(t, fe.Reason)
		})
	}
}

func TestLoadToleratesTrailingData(t *testing.T) {
	blob := append(Encode([]Entry{{Name: "Tile", Vertices: triangle(1)}}), 1, 2, 3, 4, 5)

	c, err := Read(bytes.NewReader(blob))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Trailing())
}

func TestVertexWordsPreservesBits(t *testing.T) {
	c, err := Load(Encode([]Entry{{Name: "Tile", Vertices: triangle(200)}}))
	require.NoError(t, err)

	words := c.VertexWords()
	require.Len(t, words, 3*VertexSize/4)
	assert.Equal(t, float32(1), words[7]) // second vertex, position x
	colorBits := binary.LittleEndian.Uint32([]byte{200, 0, 0, 255})
	got := words[6]
	assert.Equal(t, colorBits, math.Float32bits(got))
}

func TestOpenDecompressesZstd(t *testing.T) {
	blob := Encode([]Entry{{Name: "Serve", Vertices: triangle(5)}})
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	compressed := enc.EncodeAll(blob, nil)
	require.NoError(t, enc.Close())

	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.blob")
	packed := filepath.Join(dir, "packed.blob.zst")
	require.NoError(t, os.WriteFile(plain, blob, 0o644))
	require.NoError(t, os.WriteFile(packed, compressed, 0o644))

	for _, path := range []string{plain, packed} {
		c, err := Open(path)
		require.NoError(t, err, path)
		m, err := c.Lookup("Serve")
		require.NoError(t, err)
		assert.Equal(t, uint32(3), m.Count)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.blob"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestCompress(t *testing.T) {
	blob := Encode([]Entry{{Name: "Tile", Vertices: triangle(1)}, {Name: "Jelly", Vertices: triangle(2)}})
	packed, err := Compress(blob)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(packed, zstdMagic))

	path := filepath.Join(t.TempDir(), "meshes.blob")
	require.NoError(t, os.WriteFile(path, packed, 0o644))
	c, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Jelly", "Tile"}, c.Names())

	_, err = Compress([]byte("junk"))
	var fe *FormatError
	assert.ErrorAs(t, err, &fe)
}
