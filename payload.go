package etc2

import (
	"fmt"
	"strings"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression is the compression applied to an extracted texture payload.
type Compression uint8

const (
	// CompressionNone is a raw block stream.
	CompressionNone Compression = iota
	// CompressionLZ4 is a single raw LZ4 block.
	CompressionLZ4
	// CompressionLZ4HC is a single raw LZ4 block produced by the HC compressor.
	CompressionLZ4HC
	// CompressionZstd is a Zstandard frame (KTX2 supercompression scheme 2).
	CompressionZstd
	// CompressionLZ4ChunkStream is a sequence of LZ4 chunks sharing a 64KB
	// window, as stored in Enfusion EDDS mip blocks.
	CompressionLZ4ChunkStream
)

// String returns the compression name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionLZ4HC:
		return "lz4hc"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4ChunkStream:
		return "lz4-chunks"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

// ParseCompression maps a compression name (case-insensitive) to a Compression.
func ParseCompression(name string) (Compression, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "lz4hc":
		return CompressionLZ4HC, nil
	case "zstd", "zstandard":
		return CompressionZstd, nil
	case "lz4-chunks", "edds":
		return CompressionLZ4ChunkStream, nil
	default:
		return CompressionNone, fmt.Errorf("%w: %q", ErrUnknownCompression, name)
	}
}

// CompressionFromUnityFlags maps the compression bits of a UnityFS block
// flags word. LZMA (1) is not supported.
func CompressionFromUnityFlags(flags uint32) (Compression, error) {
	switch flags & 0x3f {
	case 0:
		return CompressionNone, nil
	case 2:
		return CompressionLZ4, nil
	case 3:
		return CompressionLZ4HC, nil
	default:
		return CompressionNone, fmt.Errorf("%w: unity flags 0x%x", ErrUnknownCompression, flags)
	}
}

var zstdDecPool = sync.Pool{
	New: func() any {
		dec, err := zstd.NewReader(
			nil,
			zstd.WithDecoderConcurrency(1),
			zstd.WithDecoderLowmem(true),
		)
		if err != nil {
			panic(err)
		}
		return dec
	},
}

// Inflate decompresses a texture payload into exactly size bytes.
// CompressionNone returns data unchanged when its length matches.
func Inflate(data []byte, size int, c Compression) ([]byte, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTargetSize, size)
	}

	switch c {
	case CompressionNone:
		if len(data) != size {
			return nil, fmt.Errorf("%w: %s: expected %d, got %d", ErrInflatedSizeMismatch, c, size, len(data))
		}
		return data, nil

	case CompressionLZ4, CompressionLZ4HC:
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInflate, c, err)
		}
		if n != size {
			return nil, fmt.Errorf("%w: %s: expected %d, got %d", ErrInflatedSizeMismatch, c, size, n)
		}
		return out, nil

	case CompressionZstd:
		dec := zstdDecPool.Get().(*zstd.Decoder)
		out, err := dec.DecodeAll(data, make([]byte, 0, size))
		zstdDecPool.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInflate, c, err)
		}
		if len(out) != size {
			return nil, fmt.Errorf("%w: %s: expected %d, got %d", ErrInflatedSizeMismatch, c, size, len(out))
		}
		return out, nil

	case CompressionLZ4ChunkStream:
		return inflateChunkStream(data, size)

	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
}
