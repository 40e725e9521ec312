// Package meshes loads the mesh blob: one shared vertex buffer plus a name index that maps
// each mesh name to a contiguous range of vertices.
//
// The blob is three length-prefixed chunks: dat0 (packed vertices), str0 (name characters)
// and idx0 (16-byte records of name_begin, name_end, vertex_begin, vertex_end).
package meshes

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/klauspost/compress/zstd"
)

const indexEntrySize = 16

// zstdMagic is the little-endian zstd frame magic (0xFD2FB528).
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// Mesh is a range of the shared vertex buffer: Count vertices starting at First.
type Mesh struct {
	First uint32
	Count uint32
}

// Catalog is the loaded vertex buffer and its name index. Immutable after Load.
type Catalog struct {
	raw      []byte // dat0 payload, kept for GPU upload
	vertices []Vertex
	index    map[string]Mesh
	trailing int
}

// Open reads a blob from path. Files that start with a zstd frame are decompressed first.
func Open(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("meshes: %w", err)
	}
	if bytes.HasPrefix(data, zstdMagic) {
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("meshes: %w", err)
		}
		defer dec.Close()
		data, err = dec.DecodeAll(data, nil)
		if err != nil {
			return nil, formatErrorf("zstd: %v", err)
		}
	}
	return Load(data)
}

// Read loads a blob from r. Everything left in r after the idx0 chunk counts as trailing data.
func Read(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("meshes: %w", err)
	}
	return Load(data)
}

// Load parses blob and validates every index entry against the vertex and name chunks.
func Load(blob []byte) (*Catalog, error) {
	r := bytes.NewReader(blob)
	raw, err := readChunk(r, chunkVertices, VertexSize)
	if err != nil {
		return nil, err
	}
	names, err := readChunk(r, chunkNames, 1)
	if err != nil {
		return nil, err
	}
	idx, err := readChunk(r, chunkIndex, indexEntrySize)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		raw:      raw,
		vertices: make([]Vertex, len(raw)/VertexSize),
		index:    make(map[string]Mesh, len(idx)/indexEntrySize),
		trailing: r.Len(),
	}
	for i := range c.vertices {
		c.vertices[i] = decodeVertex(raw[i*VertexSize:])
	}

	for off := 0; off < len(idx); off += indexEntrySize {
		nameBegin := binary.LittleEndian.Uint32(idx[off:])
		nameEnd := binary.LittleEndian.Uint32(idx[off+4:])
		vertexBegin := binary.LittleEndian.Uint32(idx[off+8:])
		vertexEnd := binary.LittleEndian.Uint32(idx[off+12:])
		entry := off / indexEntrySize

		if nameBegin > nameEnd || uint64(nameEnd) > uint64(len(names)) {
			return nil, formatErrorf("entry %d: name range [%d,%d) outside %d name bytes", entry, nameBegin, nameEnd, len(names))
		}
		if vertexBegin > vertexEnd || uint64(vertexEnd) > uint64(len(c.vertices)) {
			return nil, formatErrorf("entry %d: vertex range [%d,%d) outside %d vertices", entry, vertexBegin, vertexEnd, len(c.vertices))
		}
		name := string(names[nameBegin:nameEnd])
		if _, dup := c.index[name]; dup {
			return nil, formatErrorf("duplicate name %q in index", name)
		}
		c.index[name] = Mesh{First: vertexBegin, Count: vertexEnd - vertexBegin}
	}
	return c, nil
}

// Lookup returns the mesh registered under name, or a *NotFoundError.
func (c *Catalog) Lookup(name string) (Mesh, error) {
	m, ok := c.index[name]
	if !ok {
		return Mesh{}, &NotFoundError{Name: name}
	}
	return m, nil
}

// Names returns all mesh names in sorted order.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.index))
	for name := range c.index {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of vertices in the shared buffer.
func (c *Catalog) Len() int {
	return len(c.vertices)
}

// Vertices returns the decoded vertex buffer. Callers must not modify it.
func (c *Catalog) Vertices() []Vertex {
	return c.vertices
}

// Trailing returns the number of bytes found after the idx0 chunk.
func (c *Catalog) Trailing() int {
	return c.trailing
}

// Size returns the size in bytes of the vertex chunk.
func (c *Catalog) Size() int {
	return len(c.raw)
}

// VertexWords returns the dat0 payload as 32-bit words, bit for bit, so it can be handed to
// a float vertex buffer upload. Colors occupy the seventh word of each vertex.
func (c *Catalog) VertexWords() []float32 {
	out := make([]float32, len(c.raw)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(c.raw[i*4:]))
	}
	return out
}
