package etc2

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/bcn"
)

func TestWriteDDSUncompressed(t *testing.T) {
	t.Parallel()

	const width, height = 6, 5
	img, err := Decode(randomStream(FormatETC2RGB, width, height, 47), width, height, FormatETC2RGB)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	tests := []struct {
		name   string
		format bcn.Format
		// order maps output byte to source channel
		order [4]int
	}{
		{name: "bgra8", format: bcn.FormatBGRA8, order: [4]int{2, 1, 0, 3}},
		{name: "rgba8", format: bcn.FormatRGBA8, order: [4]int{0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "out.dds")
			if err := WriteDDSWithOptions(img, path, &WriteOptions{Format: tt.format}); err != nil {
				t.Fatalf("WriteDDSWithOptions: %v", err)
			}

			f, err := os.Open(path)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			defer func() { _ = f.Close() }()

			header, err := bcn.ReadDDSHeader(f)
			if err != nil {
				t.Fatalf("ReadDDSHeader: %v", err)
			}
			if header.Width != width || header.Height != height || header.MipMapCount != 1 {
				t.Fatalf("header %dx%d mips %d", header.Width, header.Height, header.MipMapCount)
			}
			if header.PixelFormat.RGBBitCount != 32 || header.PitchOrLinearSize != width*4 {
				t.Fatalf("pixel format bits %d pitch %d", header.PixelFormat.RGBBitCount, header.PitchOrLinearSize)
			}

			data, err := io.ReadAll(f)
			if err != nil {
				t.Fatalf("read payload: %v", err)
			}
			if len(data) != width*height*4 {
				t.Fatalf("payload %d bytes, want %d", len(data), width*height*4)
			}
			for i := 0; i < width*height; i++ {
				for c := 0; c < 4; c++ {
					if data[i*4+c] != img.Pix[i*4+tt.order[c]] {
						t.Fatalf("pixel %d byte %d=%d, want %d", i, c, data[i*4+c], img.Pix[i*4+tt.order[c]])
					}
				}
			}
		})
	}
}

func TestWriteDDSBlockCompressed(t *testing.T) {
	t.Parallel()

	const width, height = 8, 8
	img, err := Decode(randomStream(FormatETC2RGBA8, width, height, 53), width, height, FormatETC2RGBA8)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	tests := []struct {
		format bcn.Format
		fourCC uint32
		size   int
	}{
		{format: bcn.FormatDXT1, fourCC: makeFourCC('D', 'X', 'T', '1'), size: 32},
		{format: bcn.FormatDXT5, fourCC: makeFourCC('D', 'X', 'T', '5'), size: 64},
	}

	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "out.dds")
		opts := &WriteOptions{
			Format:        tt.format,
			EncodeOptions: &bcn.EncodeOptions{QualityLevel: bcn.QualityLevelFast, Workers: 1},
		}
		if err := WriteDDSWithOptions(img, path, opts); err != nil {
			t.Fatalf("WriteDDSWithOptions: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if want := int64(4) + int64(bcn.DDSHeaderSize) + int64(tt.size); info.Size() != want {
			t.Fatalf("file size %d, want %d", info.Size(), want)
		}

		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		header, err := bcn.ReadDDSHeader(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("ReadDDSHeader: %v", err)
		}
		if header.PixelFormat.FourCC != tt.fourCC || header.PitchOrLinearSize != uint32(tt.size) {
			t.Fatalf("fourCC 0x%08x linear size %d", header.PixelFormat.FourCC, header.PitchOrLinearSize)
		}
	}
}

func TestWriteDDSErrors(t *testing.T) {
	t.Parallel()

	img, err := Decode(make([]byte, 8), 4, 4, FormatETC2RGB)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	err = WriteDDSWithOptions(img, filepath.Join(t.TempDir(), "out.dds"), &WriteOptions{Format: bcn.Format(200)})
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}

	err = WriteDDS(img, filepath.Join(t.TempDir(), "missing", "out.dds"))
	if !errors.Is(err, ErrCreateFile) {
		t.Fatalf("expected ErrCreateFile, got %v", err)
	}
}

func TestMakeDDSHeader(t *testing.T) {
	t.Parallel()

	tests := []struct {
		format bcn.Format
		fourCC uint32
		flags  uint32
	}{
		{format: bcn.FormatDXT1, fourCC: makeFourCC('D', 'X', 'T', '1'), flags: uint32(bcn.DDSPFFourCC)},
		{format: bcn.FormatDXT3, fourCC: makeFourCC('D', 'X', 'T', '3'), flags: uint32(bcn.DDSPFFourCC)},
		{format: bcn.FormatBC4, fourCC: makeFourCC('A', 'T', 'I', '1'), flags: uint32(bcn.DDSPFFourCC)},
		{format: bcn.FormatBC5, fourCC: makeFourCC('A', 'T', 'I', '2'), flags: uint32(bcn.DDSPFFourCC)},
		{format: bcn.FormatBGRA8, flags: uint32(bcn.DDSPFRGB | bcn.DDSPFAlphaPixels)},
	}

	for _, tt := range tests {
		hdr, err := makeDDSHeader(16, 8, 128, tt.format)
		if err != nil {
			t.Fatalf("makeDDSHeader(%v): %v", tt.format, err)
		}
		if hdr.Width != 16 || hdr.Height != 8 || hdr.MipMapCount != 1 {
			t.Fatalf("%v: header %dx%d mips %d", tt.format, hdr.Width, hdr.Height, hdr.MipMapCount)
		}
		if hdr.PixelFormat.FourCC != tt.fourCC || uint32(hdr.PixelFormat.Flags) != tt.flags {
			t.Fatalf("%v: fourCC 0x%08x flags 0x%x", tt.format, hdr.PixelFormat.FourCC, hdr.PixelFormat.Flags)
		}
	}

	if _, err := makeDDSHeader(4, 4, 0, bcn.FormatUnknown); !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat, got %v", err)
	}
}
