package etc2

import (
	"fmt"
	"image"
	"io"
	"os"
)

// ReadOptions configures file reading.
type ReadOptions struct {
	// DecodeOptions are passed to the block decoder (e.g. Workers).
	DecodeOptions *DecodeOptions

	// Format selects a raw payload file when not FormatUnknown; the file is
	// then read as a bare block stream of Width x Height pixels.
	Format Format
	Width  int
	Height int

	// Compression applied to a raw payload file.
	Compression Compression
	// UncompressedSize is the inflated payload size; 0 means the expected
	// block stream length for Format, Width and Height.
	UncompressedSize int
}

// ReadConfig reads PKM file configuration without decoding image data.
func ReadConfig(path string) (image.Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return image.Config{}, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return DecodePKMConfig(f)
}

// Read reads and decodes a PKM file into an image.
func Read(path string) (*image.NRGBA, error) {
	return ReadWithOptions(path, nil)
}

// ReadWithOptions reads and decodes a PKM file, or a raw payload file when
// opts.Format is set. Nil opts reads a PKM file with default decoding.
func ReadWithOptions(path string, opts *ReadOptions) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	if opts == nil || opts.Format == FormatUnknown {
		decOpts := (*DecodeOptions)(nil)
		if opts != nil {
			decOpts = opts.DecodeOptions
		}
		img, err := DecodePKMWithOptions(f, decOpts)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrDecodeImage, path, err)
		}
		return img, nil
	}

	return readRaw(f, path, opts)
}

// readRaw inflates and decodes a bare block stream.
func readRaw(r io.Reader, path string, opts *ReadOptions) (*image.NRGBA, error) {
	expected := ExpectedDataLength(opts.Format, opts.Width, opts.Height)
	if expected < 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, opts.Format)
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrReadFile, path, err)
	}

	size := opts.UncompressedSize
	if size == 0 {
		size = expected
	}
	payload, err := Inflate(data, size, opts.Compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrDecodeImage, path, err)
	}

	img, err := DecodeWithOptions(payload, opts.Width, opts.Height, opts.Format, opts.DecodeOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrDecodeImage, path, err)
	}

	return img, nil
}
