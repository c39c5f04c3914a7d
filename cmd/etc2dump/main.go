// Command etc2dump decodes ETC1/ETC2/ETC2A8 textures (PKM files or raw
// extracted payloads) and writes them as PNG or DDS.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/woozymasta/bcn"
	"github.com/woozymasta/etc2"
)

func main() {
	var (
		inPath      string
		outPath     string
		format      string
		compression string
		ddsFormat   string
		width       int
		height      int
		size        int
		workers     int
		info        bool
	)
	flag.StringVar(&inPath, "in", "", "input file (.pkm or raw block stream)")
	flag.StringVar(&outPath, "out", "", "output file (.png or .dds)")
	flag.StringVar(&format, "format", "", "raw stream format: etc1|etc2|etc2a8 (empty reads PKM)")
	flag.StringVar(&compression, "compression", "none", "raw stream compression: none|lz4|lz4hc|zstd|lz4-chunks")
	flag.StringVar(&ddsFormat, "dds-format", "bgra8", "DDS output format: bgra8|rgba8|dxt1|dxt5")
	flag.IntVar(&width, "width", 0, "raw stream width in pixels")
	flag.IntVar(&height, "height", 0, "raw stream height in pixels")
	flag.IntVar(&size, "size", 0, "inflated raw stream size (0 = expected block stream size)")
	flag.IntVar(&workers, "workers", 0, "decode workers (0 = GOMAXPROCS)")
	flag.BoolVar(&info, "info", false, "print PKM header info and exit")
	flag.Parse()

	if inPath == "" {
		fmt.Fprintln(os.Stderr, "usage: etc2dump -in <input> -out <output.png|output.dds> [-format etc2a8 -width W -height H]")
		os.Exit(2)
	}

	if info {
		cfg, err := etc2.ReadConfig(inPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		fmt.Printf("%dx%d\n", cfg.Width, cfg.Height)
		return
	}

	if outPath == "" {
		fmt.Fprintln(os.Stderr, "missing -out")
		os.Exit(2)
	}

	opts := &etc2.ReadOptions{
		DecodeOptions:    &etc2.DecodeOptions{Workers: workers},
		Width:            width,
		Height:           height,
		UncompressedSize: size,
	}
	if format != "" {
		f, err := etc2.ParseFormat(format)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		c, err := etc2.ParseCompression(compression)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		opts.Format = f
		opts.Compression = c
	}

	img, err := etc2.ReadWithOptions(inPath, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := writeOutput(img, outPath, ddsFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeOutput(img image.Image, path, ddsFormat string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()

	case ".dds":
		format, err := parseDDSFormat(ddsFormat)
		if err != nil {
			return err
		}
		return etc2.WriteDDSWithOptions(img, path, &etc2.WriteOptions{Format: format})

	default:
		return fmt.Errorf("unsupported output extension %q", filepath.Ext(path))
	}
}

func parseDDSFormat(name string) (bcn.Format, error) {
	switch strings.ToLower(name) {
	case "bgra8":
		return bcn.FormatBGRA8, nil
	case "rgba8":
		return bcn.FormatRGBA8, nil
	case "dxt1":
		return bcn.FormatDXT1, nil
	case "dxt5":
		return bcn.FormatDXT5, nil
	default:
		return bcn.FormatUnknown, fmt.Errorf("unsupported DDS format %q", name)
	}
}
