package meshes

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
)

// Chunk magics, in the order they appear in a blob.
const (
	chunkVertices = "dat0"
	chunkNames    = "str0"
	chunkIndex    = "idx0"
)

// readChunk reads one "magic | size | payload" chunk and checks that size is a multiple of
// recordSize and fits in what is left of r.
func readChunk(r *bytes.Reader, magic string, recordSize int) ([]byte, error) {
	var header [8]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatErrorf("missing %s chunk header", magic)
		}
		return nil, err
	}
	if got := string(header[:4]); got != magic {
		return nil, formatErrorf("expected %s chunk, found %q", magic, got)
	}
	size := binary.LittleEndian.Uint32(header[4:])
	if int(size)%recordSize != 0 {
		return nil, formatErrorf("%s chunk size %d is not a multiple of %d", magic, size, recordSize)
	}
	if int64(size) > int64(r.Len()) {
		return nil, formatErrorf("%s chunk truncated (want %d bytes, have %d)", magic, size, r.Len())
	}
	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, formatErrorf("%s chunk truncated (want %d bytes)", magic, size)
		}
		return nil, err
	}
	return payload, nil
}

// appendChunk appends a chunk with the given magic and payload to dst.
func appendChunk(dst []byte, magic string, payload []byte) []byte {
	dst = append(dst, magic...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(payload)))
	return append(dst, payload...)
}
