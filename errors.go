package etc2

import "errors"

var (
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrInvalidFormat indicates unsupported format.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrInvalidDimensions indicates a non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrDataTooShort indicates the compressed stream is shorter than the block grid.
	ErrDataTooShort = errors.New("compressed data too short")
	// ErrBufferTooSmall indicates the destination pixel buffer is undersized.
	ErrBufferTooSmall = errors.New("destination buffer too small")
	// ErrUnknownCompression indicates an unsupported payload compression.
	ErrUnknownCompression = errors.New("unknown compression")
	// ErrInflate indicates payload decompression failed.
	ErrInflate = errors.New("inflate payload failed")
	// ErrInflatedSizeMismatch indicates the inflated payload has an unexpected size.
	ErrInflatedSizeMismatch = errors.New("inflated size mismatch")
	// ErrInvalidTargetSize indicates invalid inflated target size.
	ErrInvalidTargetSize = errors.New("invalid target size")
	// ErrNotPKM indicates the input is not a PKM file.
	ErrNotPKM = errors.New("not a PKM file")
	// ErrPKMHeaderRead indicates PKM header read failed.
	ErrPKMHeaderRead = errors.New("reading PKM header failed")
	// ErrPKMDataRead indicates PKM block data read failed.
	ErrPKMDataRead = errors.New("reading PKM data failed")
	// ErrOpenFile indicates file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrReadFile indicates file read failed.
	ErrReadFile = errors.New("read file failed")
	// ErrDecodeImage indicates image decode failed.
	ErrDecodeImage = errors.New("decode image failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrEncodeDDS indicates encoding the DDS payload failed.
	ErrEncodeDDS = errors.New("encode DDS payload failed")
	// ErrDDSSizeMismatch indicates the encoded DDS payload has an unexpected size.
	ErrDDSSizeMismatch = errors.New("DDS payload size mismatch")
	// ErrWriteDDSMagic indicates DDS magic write failed.
	ErrWriteDDSMagic = errors.New("writing DDS magic failed")
	// ErrWriteDDSHeader indicates DDS header write failed.
	ErrWriteDDSHeader = errors.New("writing DDS header failed")
	// ErrWriteDDSData indicates DDS payload write failed.
	ErrWriteDDSData = errors.New("writing DDS data failed")
)
