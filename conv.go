package etc2

import "fmt"

const (
	maxInt32  = int(^uint32(0) >> 1)
	maxUint32 = uint64(^uint32(0))

	// maxDimension bounds width and height of decoded images.
	maxDimension = 1 << 16
)

// u32FromInt converts an int to a uint32.
func u32FromInt(n int) (uint32, error) {
	if n < 0 || uint64(n) > maxUint32 {
		return 0, ErrSizeOverflow
	}

	// #nosec G115 -- bounds checked above.
	return uint32(n), nil
}

// pixelBufferSize returns the RGBA8 buffer size for width x height.
func pixelBufferSize(width, height int) (int, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > maxDimension || height > maxDimension {
		return 0, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}

	size := uint64(width) * uint64(height) * 4
	if size > uint64(maxInt32) {
		return 0, fmt.Errorf("%w: %dx%d", ErrSizeOverflow, width, height)
	}

	return int(size), nil
}
