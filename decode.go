package etc2

import (
	"fmt"
	"image"
	"runtime"
	"sync"
	"sync/atomic"
)

// codewordSize is the size of one alpha or color codeword.
const codewordSize = 8

// DecodeOptions configures validated decoding.
type DecodeOptions struct {
	// Workers is the number of goroutines sharing the block rows.
	// 0 uses runtime.GOMAXPROCS(0); 1 decodes sequentially.
	Workers int
}

// DecodeBlock decodes one 16-byte ETC2A8 block (alpha codeword first).
func DecodeBlock(data [16]byte) Block {
	var blk Block
	decodeBlock(data[:], FormatETC2RGBA8, &blk)
	return blk
}

// DecodeColorBlock decodes one 8-byte ETC2 RGB block with opaque alpha.
func DecodeColorBlock(data [8]byte) Block {
	var blk Block
	decodeBlock(data[:], FormatETC2RGB, &blk)
	return blk
}

// DecodeETC1Block decodes one 8-byte ETC1 block with opaque alpha.
func DecodeETC1Block(data [8]byte) Block {
	var blk Block
	decodeBlock(data[:], FormatETC1, &blk)
	return blk
}

// DecodeETC2A8 decodes an ETC2A8 block stream of
// 16*ceil(width/4)*ceil(height/4) bytes into dst, an RGBA8 buffer of at least
// width*height*4 bytes. Sizes are not validated; use Decode for that.
func DecodeETC2A8(src []byte, width, height int, dst []byte) {
	decodeRows(src, width, height, dst, FormatETC2RGBA8, 0, blockCount(height))
}

// DecodeETC2 decodes an ETC2 RGB block stream of
// 8*ceil(width/4)*ceil(height/4) bytes into dst with opaque alpha.
// Sizes are not validated; use Decode for that.
func DecodeETC2(src []byte, width, height int, dst []byte) {
	decodeRows(src, width, height, dst, FormatETC2RGB, 0, blockCount(height))
}

// DecodeETC1 is DecodeETC2 for ETC1 streams.
func DecodeETC1(src []byte, width, height int, dst []byte) {
	decodeRows(src, width, height, dst, FormatETC1, 0, blockCount(height))
}

// Decode validates and decodes a block stream into a new image.
func Decode(src []byte, width, height int, format Format) (*image.NRGBA, error) {
	return DecodeWithOptions(src, width, height, format, nil)
}

// DecodeWithOptions validates and decodes a block stream into a new image.
// Nil opts uses default options.
func DecodeWithOptions(src []byte, width, height int, format Format, opts *DecodeOptions) (*image.NRGBA, error) {
	if _, err := pixelBufferSize(width, height); err != nil {
		return nil, err
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	if err := DecodeInto(img.Pix, src, width, height, format, opts); err != nil {
		return nil, err
	}

	return img, nil
}

// DecodeInto validates sizes and decodes a block stream into dst, an RGBA8
// buffer of width*height*4 bytes.
func DecodeInto(dst, src []byte, width, height int, format Format, opts *DecodeOptions) error {
	want, err := pixelBufferSize(width, height)
	if err != nil {
		return err
	}
	if len(dst) < want {
		return fmt.Errorf("%w: expected %d, got %d", ErrBufferTooSmall, want, len(dst))
	}

	expected := ExpectedDataLength(format, width, height)
	if expected < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}
	if len(src) < expected {
		return fmt.Errorf("%w: %s %dx%d: expected %d, got %d", ErrDataTooShort, format, width, height, expected, len(src))
	}

	workers := 0
	if opts != nil {
		workers = opts.Workers
	}
	decodeParallel(src, width, height, dst, format, workers)

	return nil
}

// decodeParallel hands out block rows to workers. Rows write disjoint
// regions of dst, so no locking is needed.
func decodeParallel(src []byte, width, height int, dst []byte, format Format, workers int) {
	blocksY := blockCount(height)
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > blocksY {
		workers = blocksY
	}

	if workers <= 1 {
		decodeRows(src, width, height, dst, format, 0, blocksY)
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				by := int(next.Add(1) - 1)
				if by >= blocksY {
					return
				}
				decodeRows(src, width, height, dst, format, by, by+1)
			}
		}()
	}
	wg.Wait()
}

// decodeRows decodes block rows [by0, by1) of the stream.
func decodeRows(src []byte, width, height int, dst []byte, format Format, by0, by1 int) {
	stride := format.BlockSize()

	blocksX := blockCount(width)
	off := by0 * blocksX * stride

	var blk Block
	for by := by0; by < by1; by++ {
		for bx := 0; bx < blocksX; bx++ {
			decodeBlock(src[off:off+stride], format, &blk)
			copyBlock(dst, width, height, bx, by, &blk)
			off += stride
		}
	}
}

// decodeBlock decodes one block; ETC2A8 blocks carry the alpha codeword
// before the color codeword.
func decodeBlock(data []byte, format Format, blk *Block) {
	switch format {
	case FormatETC1:
		mode := ResolveETC1Mode([codewordSize]byte(data[:codewordSize]))
		mode.Synthesize(blk)
	case FormatETC2RGBA8:
		mode := ResolveColorMode([codewordSize]byte(data[codewordSize : 2*codewordSize]))
		mode.Synthesize(blk)
		ApplyAlpha([codewordSize]byte(data[:codewordSize]), blk)
	default:
		mode := ResolveColorMode([codewordSize]byte(data[:codewordSize]))
		mode.Synthesize(blk)
	}
}
