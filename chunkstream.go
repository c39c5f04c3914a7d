package etc2

import (
	"fmt"

	"github.com/pierrec/lz4/v4"
)

const (
	// ChunkSize is the maximum decoded size of one LZ4 chunk-stream chunk.
	ChunkSize = 64 * 1024

	chunkHeaderSize = 4
	chunkLastFlag   = 0x80
)

// chunkDict is the rolling window of previously decoded output that later
// chunks may reference.
type chunkDict struct {
	buf  [ChunkSize]byte
	size int
}

func (d *chunkDict) bytes() []byte {
	return d.buf[:d.size]
}

// push appends decoded to the window, keeping the newest ChunkSize bytes.
func (d *chunkDict) push(decoded []byte) {
	if len(decoded) >= ChunkSize {
		copy(d.buf[:], decoded[len(decoded)-ChunkSize:])
		d.size = ChunkSize
		return
	}

	if overflow := d.size + len(decoded) - ChunkSize; overflow > 0 {
		copy(d.buf[:], d.buf[overflow:d.size])
		d.size -= overflow
	}
	copy(d.buf[d.size:], decoded)
	d.size += len(decoded)
}

// inflateChunkStream decodes an LZ4 chunk stream (as used in Enfusion EDDS
// mip blocks) into exactly size bytes.
//
// Each chunk is a 3-byte little endian compressed size, a flags byte (0x80
// marks the last chunk) and the compressed bytes of at most ChunkSize output
// bytes. Chunks may reference the previous 64KB of output.
func inflateChunkStream(data []byte, size int) ([]byte, error) {
	out := make([]byte, size)
	dict := new(chunkDict)
	pos, outIdx := 0, 0

	for {
		if len(data)-pos < chunkHeaderSize {
			return nil, fmt.Errorf("%w: chunk header at %d: %d bytes left", ErrInflate, pos, len(data)-pos)
		}
		cSize := int(data[pos]) | int(data[pos+1])<<8 | int(data[pos+2])<<16
		flags := data[pos+3]
		pos += chunkHeaderSize

		if flags&^chunkLastFlag != 0 {
			return nil, fmt.Errorf("%w: unknown chunk flags 0x%02x", ErrInflate, flags)
		}
		if cSize <= 0 || cSize > len(data)-pos {
			return nil, fmt.Errorf("%w: chunk size %d (remaining %d)", ErrInflate, cSize, len(data)-pos)
		}

		if outIdx >= size {
			return nil, fmt.Errorf("%w: chunk overruns %d bytes", ErrInflatedSizeMismatch, size)
		}
		want := min(ChunkSize, size-outIdx)

		n, err := lz4.UncompressBlockWithDict(data[pos:pos+cSize], out[outIdx:outIdx+want], dict.bytes())
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInflate, err)
		}
		pos += cSize

		dict.push(out[outIdx : outIdx+n])
		outIdx += n

		if flags&chunkLastFlag != 0 {
			break
		}
	}

	if outIdx != size {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrInflatedSizeMismatch, size, outIdx)
	}
	if pos != len(data) {
		return nil, fmt.Errorf("%w: %d bytes left after last chunk", ErrInflatedSizeMismatch, len(data)-pos)
	}

	return out, nil
}
