package etc2

import "github.com/woozymasta/bcn"

// ddsDataLength returns the single-level DDS payload size, or -1 for formats
// WriteDDS does not emit.
func ddsDataLength(format bcn.Format, width, height int) int {
	blocks := blockCount(width) * blockCount(height)
	switch format {
	case bcn.FormatDXT1, bcn.FormatBC4:
		return blocks * 8
	case bcn.FormatDXT3, bcn.FormatDXT5, bcn.FormatBC5:
		return blocks * 16
	case bcn.FormatRGBA8, bcn.FormatBGRA8:
		return width * height * 4
	default:
		return -1
	}
}

func makeFourCC(a, b, c, d byte) uint32 {
	return uint32(a) | uint32(b)<<8 | uint32(c)<<16 | uint32(d)<<24
}

// makeDDSHeader builds a single-level DDS header. linearSize is the payload
// size used by block-compressed formats.
func makeDDSHeader(width, height, linearSize uint32, format bcn.Format) (*bcn.DDSHeader, error) {
	hdr := &bcn.DDSHeader{
		Size:        bcn.DDSHeaderSize,
		Flags:       uint32(bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat),
		Height:      height,
		Width:       width,
		Depth:       1,
		MipMapCount: 1,
		Caps:        uint32(bcn.DDSCapsTexture),
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize

	fourCC := func(a, b, c, d byte) {
		hdr.Flags |= bcn.DDSFlagLinearSize
		hdr.PitchOrLinearSize = linearSize
		hdr.PixelFormat.Flags = bcn.DDSPFFourCC
		hdr.PixelFormat.FourCC = makeFourCC(a, b, c, d)
	}

	switch format {
	case bcn.FormatDXT1:
		fourCC('D', 'X', 'T', '1')
	case bcn.FormatDXT3:
		fourCC('D', 'X', 'T', '3')
	case bcn.FormatDXT5:
		fourCC('D', 'X', 'T', '5')
	case bcn.FormatBC4:
		fourCC('A', 'T', 'I', '1')
	case bcn.FormatBC5:
		fourCC('A', 'T', 'I', '2')
	case bcn.FormatRGBA8:
		hdr.Flags |= bcn.DDSFlagPitch
		hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
		hdr.PixelFormat.RGBBitCount = 32
		hdr.PixelFormat.RBitMask = 0x000000ff
		hdr.PixelFormat.GBitMask = 0x0000ff00
		hdr.PixelFormat.BBitMask = 0x00ff0000
		hdr.PixelFormat.ABitMask = 0xff000000
		hdr.PitchOrLinearSize = width * 4
	case bcn.FormatBGRA8:
		hdr.Flags |= bcn.DDSFlagPitch
		hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
		hdr.PixelFormat.RGBBitCount = 32
		hdr.PixelFormat.RBitMask = 0x00ff0000
		hdr.PixelFormat.GBitMask = 0x0000ff00
		hdr.PixelFormat.BBitMask = 0x000000ff
		hdr.PixelFormat.ABitMask = 0xff000000
		hdr.PitchOrLinearSize = width * 4
	default:
		return nil, ErrInvalidFormat
	}

	return hdr, nil
}
