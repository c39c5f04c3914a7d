package etc2

import (
	"fmt"
	"image"
	"os"

	"github.com/woozymasta/bcn"
)

// WriteOptions configures DDS re-export.
type WriteOptions struct {
	// EncodeOptions are passed to the BCn encoder (e.g. QualityLevel, Workers).
	EncodeOptions *bcn.EncodeOptions

	// Format is the DDS pixel format; FormatUnknown means BGRA8.
	Format bcn.Format
}

// WriteDDS writes img as an uncompressed BGRA8 DDS file with a single level.
func WriteDDS(img image.Image, path string) error {
	return WriteDDSWithOptions(img, path, nil)
}

// WriteDDSWithOptions writes img as a single-level DDS file.
// Nil opts writes BGRA8 with default encoder options.
func WriteDDSWithOptions(img image.Image, path string, opts *WriteOptions) error {
	format := bcn.FormatBGRA8
	encOpts := (*bcn.EncodeOptions)(nil)
	if opts != nil {
		if opts.Format != bcn.FormatUnknown {
			format = opts.Format
		}
		encOpts = opts.EncodeOptions
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	w32, err := u32FromInt(width)
	if err != nil {
		return err
	}
	h32, err := u32FromInt(height)
	if err != nil {
		return err
	}

	expected := ddsDataLength(format, width, height)
	if expected <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidFormat, format)
	}

	data, _, _, err := bcn.EncodeImageWithOptions(img, format, encOpts)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrEncodeDDS, format, err)
	}
	if len(data) != expected {
		return fmt.Errorf("%w: expected %d, got %d", ErrDDSSizeMismatch, expected, len(data))
	}

	linear, err := u32FromInt(len(data))
	if err != nil {
		return err
	}
	header, err := makeDDSHeader(w32, h32, linear, format)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	if err := bcn.WriteDDSMagic(f); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(f, header); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}
	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSData, err)
	}

	return f.Close()
}
