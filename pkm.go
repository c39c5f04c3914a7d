package etc2

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"io"
)

const (
	// PKMMagic is the byte string prefix of every PKM file.
	PKMMagic = "PKM "

	// PKMHeaderSize is the size of the PKM header.
	PKMHeaderSize = 16
)

func init() {
	image.RegisterFormat("pkm", PKMMagic, DecodePKM, DecodePKMConfig)
}

// pkmFormats maps the PKM format code to a Format.
var pkmFormats = map[uint16]Format{
	0x00: FormatETC1,
	0x01: FormatETC2RGB,
	0x03: FormatETC2RGBA8,
}

// PKMHeader is a decoded PKM file header.
type PKMHeader struct {
	Format Format
	Width  int
	Height int
}

// ReadPKMHeader reads and validates the 16-byte PKM header.
//
// Layout: magic "PKM ", version "10" or "20", big endian format code, padded
// width and height (multiples of 4), then the real width and height.
func ReadPKMHeader(r io.Reader) (PKMHeader, error) {
	var buf [PKMHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return PKMHeader{}, fmt.Errorf("%w: %v", ErrPKMHeaderRead, err)
	}
	if string(buf[:4]) != PKMMagic || buf[5] != '0' {
		return PKMHeader{}, ErrNotPKM
	}

	code := binary.BigEndian.Uint16(buf[6:8])
	format, ok := pkmFormats[code]
	if !ok {
		return PKMHeader{}, fmt.Errorf("%w: PKM format code %d", ErrInvalidFormat, code)
	}

	switch buf[4] {
	case '1':
		if format != FormatETC1 {
			return PKMHeader{}, fmt.Errorf("%w: version 1 with %s", ErrNotPKM, format)
		}
	case '2':
	default:
		return PKMHeader{}, fmt.Errorf("%w: version %q", ErrNotPKM, buf[4])
	}

	paddedW := int(binary.BigEndian.Uint16(buf[8:10]))
	paddedH := int(binary.BigEndian.Uint16(buf[10:12]))
	width := int(binary.BigEndian.Uint16(buf[12:14]))
	height := int(binary.BigEndian.Uint16(buf[14:16]))
	if blockCount(width)*4 != paddedW || blockCount(height)*4 != paddedH {
		return PKMHeader{}, fmt.Errorf("%w: padded %dx%d for %dx%d", ErrNotPKM, paddedW, paddedH, width, height)
	}

	return PKMHeader{Format: format, Width: width, Height: height}, nil
}

// DecodePKMConfig reads the PKM image configuration from r.
func DecodePKMConfig(r io.Reader) (image.Config, error) {
	h, err := ReadPKMHeader(r)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      h.Width,
		Height:     h.Height,
		ColorModel: color.NRGBAModel,
	}, nil
}

// DecodePKM reads and decodes a PKM image from r.
func DecodePKM(r io.Reader) (image.Image, error) {
	img, err := DecodePKMWithOptions(r, nil)
	if err != nil {
		return nil, err
	}

	return img, nil
}

// DecodePKMWithOptions reads and decodes a PKM image from r.
// Nil opts uses default decoding.
func DecodePKMWithOptions(r io.Reader, opts *DecodeOptions) (*image.NRGBA, error) {
	h, err := ReadPKMHeader(r)
	if err != nil {
		return nil, err
	}
	if _, err := pixelBufferSize(h.Width, h.Height); err != nil {
		return nil, err
	}

	data := make([]byte, ExpectedDataLength(h.Format, h.Width, h.Height))
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPKMDataRead, err)
	}

	return DecodeWithOptions(data, h.Width, h.Height, h.Format, opts)
}
