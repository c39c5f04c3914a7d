package etc2

import (
	"fmt"
	"strings"
)

// Format is an ETC block stream layout.
type Format uint8

const (
	// FormatUnknown is the zero Format.
	FormatUnknown Format = iota
	// FormatETC1 is ETC1 RGB, 8 bytes per block.
	FormatETC1
	// FormatETC2RGB is ETC2 RGB, 8 bytes per block.
	FormatETC2RGB
	// FormatETC2RGBA8 is ETC2A8 (ETC2 RGB with EAC alpha), 16 bytes per block.
	FormatETC2RGBA8
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case FormatETC1:
		return "ETC1"
	case FormatETC2RGB:
		return "ETC2_RGB8"
	case FormatETC2RGBA8:
		return "ETC2_RGBA8"
	default:
		return "UNKNOWN"
	}
}

// BlockSize returns the number of bytes per 4x4 block, or 0 for unknown formats.
func (f Format) BlockSize() int {
	switch f {
	case FormatETC1, FormatETC2RGB:
		return 8
	case FormatETC2RGBA8:
		return 16
	default:
		return 0
	}
}

// HasAlpha reports whether blocks carry an alpha codeword.
func (f Format) HasAlpha() bool {
	return f == FormatETC2RGBA8
}

// ParseFormat maps a format name (case-insensitive) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "etc1":
		return FormatETC1, nil
	case "etc2", "etc2rgb", "etc2_rgb8":
		return FormatETC2RGB, nil
	case "etc2a8", "etc2rgba8", "etc2_rgba8":
		return FormatETC2RGBA8, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrInvalidFormat, name)
	}
}

// ExpectedDataLength returns the compressed stream size for a width x height
// image, or -1 for unknown formats.
func ExpectedDataLength(format Format, width, height int) int {
	size := format.BlockSize()
	if size == 0 {
		return -1
	}

	return blockCount(width) * blockCount(height) * size
}

// blockCount returns the number of 4-pixel blocks covering n pixels.
func blockCount(n int) int {
	return (n + 3) / 4
}
